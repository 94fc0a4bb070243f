package tabu

import (
	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/runner"
)

// TabuSearch performs a best-improvement scan of the full neighborhood,
// excluding any move the tabu List prohibits unless it satisfies the
// aspiration criterion: a candidate whose resulting cost would beat the
// best cost seen so far is always allowed, tabu or not (spec §4.6).
//
// Grounded on the base class implied by
// original_source/include/easylocal/runners/firstimprovementtabusearch.hh
// and sampletabusearch.hh's literal "differs ... only in move selection"
// framing: those two vary SelectMove; the rest — aspiration-gated
// best-improvement scan, tabu insertion, idle-based stop — is this type.
type TabuSearch[In, St any, Mv costmodel.Move[Mv]] struct {
	List *List[Mv]

	// MaxIdleRounds, if >0, stops the run after that many consecutive
	// iterations without a new best (spec §4.6 typical stop condition).
	MaxIdleRounds int

	idle int
}

func (t *TabuSearch[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	t.List.Reset()
	t.idle = 0
}

// aspiration returns the cost improvement a tabu move must promise to be
// selected anyway (spec §4.6): best - current, always <= 0.
func aspiration[In, St any, Mv costmodel.Move[Mv]](r *runner.Runner[In, St, Mv]) costmodel.CFtype {
	return r.BestCost().Total - r.CurrentCost().Total
}

// allowed reports whether mv may be selected: either it is not
// prohibited by the tabu list, or its delta beats the aspiration bound.
func allowed[Mv costmodel.Move[Mv]](list *List[Mv], mv Mv, delta costmodel.CFtype, asp costmodel.CFtype) bool {
	if !list.Prohibits(mv) {
		return true
	}
	return costmodel.ApproxLess(delta, asp)
}

func (t *TabuSearch[In, St, Mv]) SelectMove(r *runner.Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	hooks := r.EX.Hooks()
	asp := aspiration[In, St, Mv](r)
	in, st := r.In(), r.CurrentState()

	var (
		best     costmodel.EvaluatedMove[Mv]
		have     bool
		explored int
	)
	mv, ok := hooks.FirstMove(in, st)
	for ok {
		explored++
		delta := r.EX.DeltaCost(in, st, mv, r.Weights)
		if allowed(t.List, mv, delta.Total, asp) {
			if !have || delta.Less(best.Cost) {
				best = costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}
				have = true
			}
		}
		mv, ok = hooks.NextMove(in, st, mv)
	}
	return best, explored, have
}

func (t *TabuSearch[In, St, Mv]) AcceptableMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	return true
}

// CompleteMove inserts the just-applied move into the tabu list, prunes
// expired entries, and tracks idle rounds for the stop criterion (spec
// §4.6).
func (t *TabuSearch[In, St, Mv]) CompleteMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	if accepted {
		t.List.Insert(mv.Move, r.Iteration(), r.RNG())
	}
	t.List.Prune(r.Iteration())
	if r.CurrentCost().Less(r.BestCost()) {
		t.idle = 0
	} else {
		t.idle++
	}
}

func (t *TabuSearch[In, St, Mv]) StopCriterion(r *runner.Runner[In, St, Mv]) bool {
	return t.MaxIdleRounds > 0 && t.idle >= t.MaxIdleRounds
}

// FirstImprovementTabuSearch selects the first non-prohibited (or
// aspiring) improving move in enumeration order, rather than scanning the
// whole neighborhood for the best. When no improver exists it falls back
// to the best non-tabu move seen during the same scan (spec §4.6).
type FirstImprovementTabuSearch[In, St any, Mv costmodel.Move[Mv]] struct {
	TabuSearch[In, St, Mv]
}

func (f *FirstImprovementTabuSearch[In, St, Mv]) SelectMove(r *runner.Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	hooks := r.EX.Hooks()
	asp := aspiration[In, St, Mv](r)
	in, st := r.In(), r.CurrentState()

	var (
		fallback costmodel.EvaluatedMove[Mv]
		haveFB   bool
		explored int
	)
	mv, ok := hooks.FirstMove(in, st)
	for ok {
		explored++
		delta := r.EX.DeltaCost(in, st, mv, r.Weights)
		if allowed(f.List, mv, delta.Total, asp) {
			em := costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}
			if delta.Total < 0 {
				return em, explored, true
			}
			if !haveFB || delta.Less(fallback.Cost) {
				fallback, haveFB = em, true
			}
		}
		mv, ok = hooks.NextMove(in, st, mv)
	}
	return fallback, explored, haveFB
}

// SampleTabuSearch draws Samples random candidates and applies the same
// aspiration-gated best rule to that sample, with reservoir tie-breaking
// (spec §4.6).
type SampleTabuSearch[In, St any, Mv costmodel.Move[Mv]] struct {
	TabuSearch[In, St, Mv]
	Samples int
}

func (s *SampleTabuSearch[In, St, Mv]) SelectMove(r *runner.Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	hooks := r.EX.Hooks()
	asp := aspiration[In, St, Mv](r)
	in, st := r.In(), r.CurrentState()

	reservoir := neighborhood.NewReservoir[costmodel.EvaluatedMove[Mv]](r.RNG())
	have := false
	var held costmodel.CostStructure
	var explored int

	var i int
	for i = 0; i < s.Samples; i++ {
		mv, err := hooks.RandomMove(in, st, r.RNG())
		if err != nil {
			continue
		}
		delta := r.EX.DeltaCost(in, st, mv, r.Weights)
		explored++
		if !allowed(s.List, mv, delta.Total, asp) {
			continue
		}
		em := costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}
		cmp := -1
		if have {
			switch {
			case delta.Less(held):
				cmp = -1
			case held.Less(delta):
				cmp = 1
			default:
				cmp = 0
			}
		}
		reservoir.Offer(em, cmp)
		if !have || cmp < 0 {
			held = delta
			have = true
		}
	}

	best, found := reservoir.Best()
	return best, explored, found
}
