// Package neighborhood implements move enumeration, incremental (delta)
// cost evaluation, and the move-selection operations shared by every
// metaheuristic runner (spec §4.2).
//
// Design, grounded on the teacher's tsp/two_opt.go and tsp/three_opt.go:
//   - First-improvement and best-improvement scans share one enumeration
//     order, defined by the user-supplied Neighborhood's FirstMove/NextMove,
//     exactly as two_opt.go's nested (i,k) loop defines a single
//     deterministic scan order reused by both TwoOpt's first-improvement
//     policy and three_opt.go's best-improvement policy.
//   - Reservoir.go generalizes the "accept the (k+1)-th tie with
//     probability 1/(k+1)" rule that three_opt.go applies informally when
//     BestImprovement ties occur, into a reusable primitive shared by
//     select_best, random_best, and the kicker.
package neighborhood

import (
	"errors"
	"math/rand"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/statemanager"
)

// ErrEmptyNeighborhood is returned by any selection operation that finds
// no admissible move (spec §4.2, §7). Runners recover from it locally by
// ending the current run with the best-so-far.
var ErrEmptyNeighborhood = errors.New("neighborhood: empty neighborhood")

// Predicate filters candidate moves during selection. A nil Predicate
// accepts every move (spec §4.2 default: "always true").
type Predicate[Mv any] func(Mv) bool

func (p Predicate[Mv]) accepts(mv Mv) bool {
	if p == nil {
		return true
	}
	return p(mv)
}

// Hooks is the interface a problem module implements to define one
// neighborhood over its State/Move types (spec §4.2).
type Hooks[In, St any, Mv costmodel.Move[Mv]] interface {
	// RandomMove draws a move uniformly from the neighborhood of st.
	RandomMove(in In, st St, rng *rand.Rand) (Mv, error)

	// FirstMove begins a deterministic enumeration of the neighborhood of
	// st, reproducible given the same (in, st).
	FirstMove(in In, st St) (Mv, bool)

	// NextMove advances the enumeration begun by FirstMove; returns
	// ok==false at the end of the neighborhood.
	NextMove(in In, st St, cur Mv) (Mv, bool)

	// Apply returns the state obtained by applying mv to st. Must be
	// consistent with every registered DeltaCostComponent (spec §4.2):
	// Cost(Apply(st,mv)) == Cost(st) + DeltaCost(mv), modulo tolerance.
	Apply(in In, st St, mv Mv) St

	// Modality reports the number of sub-neighborhoods this Hooks
	// implementation composes (1 for a simple, single neighborhood).
	Modality() int
}

// Explorer wraps a problem module's Hooks with the framework's reusable
// selection logic: delta evaluation, select_first, select_best,
// random_best (spec §4.2).
type Explorer[In, St any, Mv costmodel.Move[Mv]] struct {
	sm    *statemanager.StateManager[In, St]
	hooks Hooks[In, St, Mv]

	// deltaIndex maps a registered StateManager component's index to its
	// delta counterpart, when one was supplied. Components absent here
	// fall back to full recomputation (spec §4.2).
	deltaIndex map[int]costmodel.DeltaCostComponent[In, St, Mv]
}

// New constructs an Explorer over sm's registered components and the
// given Hooks.
func New[In, St any, Mv costmodel.Move[Mv]](sm *statemanager.StateManager[In, St], hooks Hooks[In, St, Mv]) *Explorer[In, St, Mv] {
	return &Explorer[In, St, Mv]{
		sm:         sm,
		hooks:      hooks,
		deltaIndex: make(map[int]costmodel.DeltaCostComponent[In, St, Mv]),
	}
}

// RegisterDelta associates a DeltaCostComponent with the StateManager
// component registered at the same index (by identity of Name()). If no
// registered component shares its name, RegisterDelta is a no-op: the
// component it would have accelerated simply is not present in the base
// cost model, so there is nothing to accelerate.
func (ex *Explorer[In, St, Mv]) RegisterDelta(dc costmodel.DeltaCostComponent[In, St, Mv]) {
	components := ex.sm.Components()
	var i int
	for i = 0; i < len(components); i++ {
		if components[i].Name() == dc.Name() {
			ex.deltaIndex[i] = dc
			return
		}
	}
}

// Modality reports the number of sub-neighborhoods (spec §4.2).
func (ex *Explorer[In, St, Mv]) Modality() int {
	return ex.hooks.Modality()
}

// Hooks returns the underlying Hooks implementation, so a caller can
// type-assert it against an optional capability interface (e.g.
// anneal.BiasSettable) without the Explorer needing to know about it.
func (ex *Explorer[In, St, Mv]) Hooks() Hooks[In, St, Mv] {
	return ex.hooks
}

// RandomMove draws a move uniformly from the neighborhood of st.
func (ex *Explorer[In, St, Mv]) RandomMove(in In, st St, rng *rand.Rand) (Mv, error) {
	return ex.hooks.RandomMove(in, st, rng)
}

// Apply returns the state obtained by applying mv to st.
func (ex *Explorer[In, St, Mv]) Apply(in In, st St, mv Mv) St {
	return ex.hooks.Apply(in, st, mv)
}

// DeltaCost sums the registered delta components' contributions for mv,
// falling back to a full recomputation on a copy of st for any registered
// component that has no delta counterpart (spec §4.2).
func (ex *Explorer[In, St, Mv]) DeltaCost(in In, st St, mv Mv, weights []costmodel.CFtype) costmodel.CostStructure {
	components := ex.sm.Components()
	out := costmodel.CostStructure{All: make([]costmodel.CFtype, len(components))}
	if weights != nil {
		out.IsWeighted = true
	}

	var applied St
	var appliedComputed bool
	applyOnce := func() St {
		if !appliedComputed {
			applied = ex.hooks.Apply(in, st, mv)
			appliedComputed = true
		}
		return applied
	}

	var i int
	for i = 0; i < len(components); i++ {
		cc := components[i]
		var rawDelta costmodel.CFtype
		if dc, ok := ex.deltaIndex[i]; ok {
			rawDelta = dc.Delta(in, st, mv)
		} else {
			post := applyOnce()
			rawDelta = cc.Compute(in, post) - cc.Compute(in, st)
		}

		weightedDelta := cc.Weight() * rawDelta
		out.All[i] = costmodel.Stabilize(weightedDelta)

		switch cc.Kind() {
		case costmodel.Hard:
			out.Violations = costmodel.Stabilize(out.Violations + weightedDelta)
		case costmodel.Soft:
			out.Objective = costmodel.Stabilize(out.Objective + weightedDelta)
		}

		if weights != nil {
			w := cc.Weight()
			if i < len(weights) {
				w = weights[i]
			}
			out.Weighted = costmodel.Stabilize(out.Weighted + w*rawDelta)
		}
	}

	out.Total = costmodel.Stabilize(costmodel.HardWeight*out.Violations + out.Objective)
	return out
}

// SelectFirst scans moves in enumeration order and returns the first whose
// evaluated cost is strictly improving (< 0 under the governing scalar)
// and satisfies predicate (spec §4.2). Returns ErrEmptyNeighborhood if no
// such move exists.
func (ex *Explorer[In, St, Mv]) SelectFirst(in In, st St, predicate Predicate[Mv], weights []costmodel.CFtype) (costmodel.EvaluatedMove[Mv], int, error) {
	var explored int
	mv, ok := ex.hooks.FirstMove(in, st)
	for ok {
		explored++
		if predicate.accepts(mv) {
			delta := ex.DeltaCost(in, st, mv, weights)
			if delta.Less(costmodel.CostStructure{}) {
				return costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}, explored, nil
			}
		}
		mv, ok = ex.hooks.NextMove(in, st, mv)
	}
	return costmodel.EvaluatedMove[Mv]{}, explored, ErrEmptyNeighborhood
}

// SelectBest scans every move in the neighborhood and returns the one with
// smallest evaluated cost satisfying predicate, with reservoir
// tie-breaking among equally-best moves (spec §4.2). Returns
// ErrEmptyNeighborhood if no move satisfies predicate.
func (ex *Explorer[In, St, Mv]) SelectBest(in In, st St, predicate Predicate[Mv], weights []costmodel.CFtype, rng *rand.Rand) (costmodel.EvaluatedMove[Mv], int, error) {
	var explored int
	reservoir := NewReservoir[costmodel.EvaluatedMove[Mv]](rng)
	have := false
	var held costmodel.CostStructure

	mv, ok := ex.hooks.FirstMove(in, st)
	for ok {
		explored++
		if predicate.accepts(mv) {
			delta := ex.DeltaCost(in, st, mv, weights)
			em := costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}
			cmp := compareCost(delta, held, have)
			reservoir.Offer(em, cmp)
			if !have || cmp < 0 {
				held = delta
				have = true
			}
		}
		mv, ok = ex.hooks.NextMove(in, st, mv)
	}

	best, found := reservoir.Best()
	if !found {
		return costmodel.EvaluatedMove[Mv]{}, explored, ErrEmptyNeighborhood
	}
	return best, explored, nil
}

// RandomBest draws samples random moves and applies the same
// best-with-ties rule as SelectBest to that sample (spec §4.2). Returns
// ErrEmptyNeighborhood if no sampled move satisfies predicate.
func (ex *Explorer[In, St, Mv]) RandomBest(in In, st St, samples int, predicate Predicate[Mv], weights []costmodel.CFtype, rng *rand.Rand) (costmodel.EvaluatedMove[Mv], int, error) {
	var explored int
	reservoir := NewReservoir[costmodel.EvaluatedMove[Mv]](rng)
	have := false
	var held costmodel.CostStructure

	var i int
	for i = 0; i < samples; i++ {
		mv, err := ex.hooks.RandomMove(in, st, rng)
		if err != nil {
			continue
		}
		if !predicate.accepts(mv) {
			continue
		}
		explored++
		delta := ex.DeltaCost(in, st, mv, weights)
		em := costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}
		cmp := compareCost(delta, held, have)
		reservoir.Offer(em, cmp)
		if !have || cmp < 0 {
			held = delta
			have = true
		}
	}

	best, found := reservoir.Best()
	if !found {
		return costmodel.EvaluatedMove[Mv]{}, explored, ErrEmptyNeighborhood
	}
	return best, explored, nil
}

// compareCost returns -1/0/1 comparing candidate to held, as required by
// Reservoir.Offer; when !haveHeld, candidate is unconditionally "better"
// (-1) so the first candidate is always taken.
func compareCost(candidate, held costmodel.CostStructure, haveHeld bool) int {
	if !haveHeld {
		return -1
	}
	switch {
	case candidate.Less(held):
		return -1
	case held.Less(candidate):
		return 1
	default:
		return 0
	}
}
