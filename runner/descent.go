package runner

import "github.com/solvecraft/localsearch/costmodel"

// SteepestDescent always selects the best move in the current
// neighborhood and accepts it only if it strictly improves the current
// cost; the run ends (via an empty SelectMove) once no improving move
// remains (spec §4.4).
type SteepestDescent[In, St any, Mv costmodel.Move[Mv]] struct {
	Samples int // >0 switches SelectMove to RandomBest over Samples draws
}

func (s *SteepestDescent[In, St, Mv]) InitializeRun(r *Runner[In, St, Mv]) {}

// SelectMove returns the best move in the neighborhood, but reports
// ok==false once that move fails to strictly improve: spec §4.4 ends a
// steepest-descent run "as soon as the best move in the neighborhood does
// not improve", which this framework models as an empty selection rather
// than a genuinely empty neighborhood.
func (s *SteepestDescent[In, St, Mv]) SelectMove(r *Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	var (
		mv       costmodel.EvaluatedMove[Mv]
		explored int
		err      error
	)
	if s.Samples > 0 {
		mv, explored, err = r.EX.RandomBest(r.in, r.currentState, s.Samples, nil, r.Weights, r.rng)
	} else {
		mv, explored, err = r.EX.SelectBest(r.in, r.currentState, nil, r.Weights, r.rng)
	}
	if err != nil || !mv.Cost.Less(costmodel.CostStructure{}) {
		return costmodel.EvaluatedMove[Mv]{}, explored, false
	}
	return mv, explored, true
}

func (s *SteepestDescent[In, St, Mv]) AcceptableMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	return mv.Cost.Less(costmodel.CostStructure{})
}

func (s *SteepestDescent[In, St, Mv]) CompleteMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
}

// StopCriterion always reports false: the run ends instead when SelectMove
// finds that the best move in the neighborhood does not improve and
// returns ok == false (spec §4.4).
func (s *SteepestDescent[In, St, Mv]) StopCriterion(r *Runner[In, St, Mv]) bool {
	return false
}

// FirstDescent selects the first improving move found during enumeration
// (spec §4.4), rather than the best move in the whole neighborhood;
// cheaper per iteration than SteepestDescent at the cost of potentially
// more iterations.
type FirstDescent[In, St any, Mv costmodel.Move[Mv]] struct{}

func (f *FirstDescent[In, St, Mv]) InitializeRun(r *Runner[In, St, Mv]) {}

func (f *FirstDescent[In, St, Mv]) SelectMove(r *Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	mv, explored, err := r.EX.SelectFirst(r.in, r.currentState, nil, r.Weights)
	return mv, explored, err == nil
}

func (f *FirstDescent[In, St, Mv]) AcceptableMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	return true // SelectFirst already guarantees an improving move
}

func (f *FirstDescent[In, St, Mv]) CompleteMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
}

func (f *FirstDescent[In, St, Mv]) StopCriterion(r *Runner[In, St, Mv]) bool {
	return false
}

// HillClimbing accepts any move that does not worsen the current cost
// (spec §4.4): a sideways move on a plateau is accepted, allowing the
// search to traverse flat regions that would stall SteepestDescent. Since
// accepting sideways moves forfeits SteepestDescent's natural "no
// improving move left" terminus, HillClimbing instead stops after
// MaxIdleRounds consecutive iterations produce no new best (spec §4.4).
type HillClimbing[In, St any, Mv costmodel.Move[Mv]] struct {
	MaxIdleRounds int // <=0 means no idle-based stop (caller must bound another way)

	idle int
}

func (h *HillClimbing[In, St, Mv]) InitializeRun(r *Runner[In, St, Mv]) { h.idle = 0 }

// SelectMove draws a single random move and evaluates it (spec §4.4:
// select_move = random_move), matching anneal/sa.go's SelectMove exactly.
func (h *HillClimbing[In, St, Mv]) SelectMove(r *Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	mv, err := r.EX.RandomMove(r.in, r.currentState, r.rng)
	if err != nil {
		return costmodel.EvaluatedMove[Mv]{}, 0, false
	}
	delta := r.EX.DeltaCost(r.in, r.currentState, mv, r.Weights)
	return costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}, 1, true
}

func (h *HillClimbing[In, St, Mv]) AcceptableMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	return mv.Cost.LessEqual(costmodel.CostStructure{})
}

// CompleteMove tracks idle rounds: a move that struck a new best resets
// the counter, everything else (rejected, or sideways-accepted) advances
// it toward MaxIdleRounds.
func (h *HillClimbing[In, St, Mv]) CompleteMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	if accepted && mv.Cost.Less(costmodel.CostStructure{}) {
		h.idle = 0
		return
	}
	h.idle++
}

func (h *HillClimbing[In, St, Mv]) StopCriterion(r *Runner[In, St, Mv]) bool {
	return h.MaxIdleRounds > 0 && h.idle >= h.MaxIdleRounds
}
