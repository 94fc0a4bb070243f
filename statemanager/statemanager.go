package statemanager

import (
	"errors"
	"math/rand"

	"github.com/solvecraft/localsearch/costmodel"
)

// Sentinel errors, grouped per-concern as in the teacher's tsp/types.go.
var (
	// ErrNotImplemented is returned by GreedyState/StateDistance when a
	// problem module has not overridden the optional hook (spec §4.1, §7).
	ErrNotImplemented = errors.New("statemanager: hook not implemented")
)

// Problem is the interface a user-supplied problem module implements. Input
// and State are opaque to the framework (spec §3): the manager never
// inspects them beyond passing them through.
type Problem[In, St any] interface {
	// RandomState produces a valid initial state from in. Must be
	// consistent: repeated calls may differ, but every returned state
	// must satisfy the problem's structural invariants.
	RandomState(in In, rng *rand.Rand) (St, error)

	// GreedyState is an optional GRASP-style hook: alpha/k are the RCL
	// parameters (see glossary). Implementations that do not support
	// greedy construction must return ErrNotImplemented, in which case
	// StateManager.GreedyState falls back to RandomState.
	GreedyState(in In, alpha float64, k int, rng *rand.Rand) (St, error)

	// StateDistance is an optional user-defined metric (e.g. Hamming
	// distance) used only by observers. Implementations that do not
	// support it must return ErrNotImplemented.
	StateDistance(in In, a, b St) (int, error)

	// CheckConsistency is a user-defined structural-invariant check used
	// by tests; implementations with nothing meaningful to check may
	// always return true.
	CheckConsistency(in In, st St) bool
}

// StateManager wraps a Problem implementation with the framework's
// reusable cost-aggregation and construction logic (spec §4.1). Cost
// components are owned by the problem module; StateManager holds only
// non-owning references, registered in the order that fixes their index
// in CostStructure.All.
type StateManager[In, St any] struct {
	problem    Problem[In, St]
	components []costmodel.CostComponent[In, St]

	// lowerBoundReached overrides the default cs.IsZero() check when set.
	lowerBoundReached func(costmodel.CostStructure) bool
}

// New constructs a StateManager around problem with no registered
// components and the default lower_bound_reached (cs == 0).
func New[In, St any](problem Problem[In, St]) *StateManager[In, St] {
	return &StateManager[In, St]{problem: problem}
}

// AddCostComponent appends cc, assigning it an index equal to the current
// number of registered components (spec §4.1).
func (sm *StateManager[In, St]) AddCostComponent(cc costmodel.CostComponent[In, St]) {
	sm.components = append(sm.components, cc)
}

// Components returns the registered components in registration order. The
// returned slice must not be mutated by the caller; it is shared with the
// manager's internal state.
func (sm *StateManager[In, St]) Components() []costmodel.CostComponent[In, St] {
	return sm.components
}

// SetLowerBoundReached overrides the default lower_bound_reached predicate
// (spec §4.1: default cs == 0; user-overridable).
func (sm *StateManager[In, St]) SetLowerBoundReached(f func(costmodel.CostStructure) bool) {
	sm.lowerBoundReached = f
}

// RandomState delegates to the problem's RandomState hook.
func (sm *StateManager[In, St]) RandomState(in In, rng *rand.Rand) (St, error) {
	return sm.problem.RandomState(in, rng)
}

// SampleState produces k independent random states and returns the one
// with the smallest CostStructure, ties broken by first-seen (spec §4.1).
func (sm *StateManager[In, St]) SampleState(in In, k int, rng *rand.Rand, weights []costmodel.CFtype) (St, costmodel.CostStructure, error) {
	var (
		best     St
		bestCost costmodel.CostStructure
		haveBest bool
		i        int
	)
	for i = 0; i < k; i++ {
		st, err := sm.problem.RandomState(in, rng)
		if err != nil {
			var zero St
			return zero, costmodel.CostStructure{}, err
		}
		cost := sm.Cost(in, st, weights)
		if !haveBest || cost.Less(bestCost) {
			best = st
			bestCost = cost
			haveBest = true
		}
	}
	return best, bestCost, nil
}

// GreedyState delegates to the problem's GreedyState hook; if the hook
// reports ErrNotImplemented, falls back to RandomState (spec §4.1).
func (sm *StateManager[In, St]) GreedyState(in In, alpha float64, k int, rng *rand.Rand) (St, error) {
	st, err := sm.problem.GreedyState(in, alpha, k, rng)
	if errors.Is(err, ErrNotImplemented) {
		return sm.problem.RandomState(in, rng)
	}
	return st, err
}

// Cost iterates the registered components in order, computes per-component
// costs, and aggregates them by hard/soft partition into a CostStructure.
// If weights is non-nil, Weighted is filled and IsWeighted is set
// (spec §4.1).
func (sm *StateManager[In, St]) Cost(in In, st St, weights []costmodel.CFtype) costmodel.CostStructure {
	return costmodel.Aggregate(in, st, sm.components, weights)
}

// LowerBoundReached reports whether cs is at the problem's lower bound:
// the overridden predicate if set via SetLowerBoundReached, else cs == 0.
func (sm *StateManager[In, St]) LowerBoundReached(cs costmodel.CostStructure) bool {
	if sm.lowerBoundReached != nil {
		return sm.lowerBoundReached(cs)
	}
	return cs.IsZero()
}

// OptimalStateReached reports LowerBoundReached(Cost(in, st, nil)).
func (sm *StateManager[In, St]) OptimalStateReached(in In, st St) bool {
	return sm.LowerBoundReached(sm.Cost(in, st, nil))
}

// StateDistance delegates to the problem's StateDistance hook.
func (sm *StateManager[In, St]) StateDistance(in In, a, b St) (int, error) {
	return sm.problem.StateDistance(in, a, b)
}

// CheckConsistency delegates to the problem's CheckConsistency hook.
func (sm *StateManager[In, St]) CheckConsistency(in In, st St) bool {
	return sm.problem.CheckConsistency(in, st)
}
