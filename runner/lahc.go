package runner

import "github.com/solvecraft/localsearch/costmodel"

// LateAcceptanceHC accepts a candidate move when it does not worsen
// against the cost recorded Length iterations ago, not merely the
// immediately preceding cost (spec §4.4 late-acceptance hill climbing).
// The history ring buffer is reset each run by InitializeRun.
type LateAcceptanceHC[In, St any, Mv costmodel.Move[Mv]] struct {
	Length int // ring-buffer size; must be >0

	history []costmodel.CFtype
	pos     int
}

func (l *LateAcceptanceHC[In, St, Mv]) InitializeRun(r *Runner[In, St, Mv]) {
	n := l.Length
	if n <= 0 {
		n = 1
	}
	l.history = make([]costmodel.CFtype, n)
	var i int
	for i = 0; i < n; i++ {
		l.history[i] = r.currentCost.Total
	}
	l.pos = 0
}

// SelectMove draws a single random move and evaluates it (spec §4.4:
// select_move = random_move), matching anneal/sa.go's SelectMove exactly.
func (l *LateAcceptanceHC[In, St, Mv]) SelectMove(r *Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	mv, err := r.EX.RandomMove(r.in, r.currentState, r.rng)
	if err != nil {
		return costmodel.EvaluatedMove[Mv]{}, 0, false
	}
	delta := r.EX.DeltaCost(r.in, r.currentState, mv, r.Weights)
	return costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}, 1, true
}

// AcceptableMove accepts mv when the resulting total does not exceed the
// cost stored Length iterations back, or does not exceed the current
// cost (spec §4.4: "accept if not worse than the cost L steps ago, or
// not worse than the current cost").
func (l *LateAcceptanceHC[In, St, Mv]) AcceptableMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	candidate := r.currentCost.Add(mv.Cost)
	historic := l.history[l.pos]
	return costmodel.ApproxLess(candidate.Total, historic) || costmodel.ApproxEqual(candidate.Total, historic) ||
		candidate.LessEqual(r.currentCost)
}

// CompleteMove advances the ring buffer, recording the best cost seen so
// far at the slot the comparison just consulted, then rotates to the next
// slot (spec §4.4: "history[i mod L] <- best_cost"; Testable property 8).
func (l *LateAcceptanceHC[In, St, Mv]) CompleteMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	l.history[l.pos] = r.BestCost().Total
	l.pos = (l.pos + 1) % len(l.history)
}

func (l *LateAcceptanceHC[In, St, Mv]) StopCriterion(r *Runner[In, St, Mv]) bool {
	return false
}
