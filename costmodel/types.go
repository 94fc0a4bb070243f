package costmodel

import "errors"

// Sentinel errors (validation / invariant failures), grouped per the
// teacher's tsp/types.go convention: plain errors.New, never wrapped with
// fmt.Errorf where a sentinel suffices.
var (
	// ErrInvariantViolation is raised when a delta/cost consistency check
	// fails in a debug/test build (spec §7). Production builds need not
	// call the checks that can raise it.
	ErrInvariantViolation = errors.New("costmodel: invariant violation")
)

// CFtype is the scalar cost value type. It is float64: integral problems
// represent exact integer costs as integer-valued float64s, and both
// integral and floating problems share this single algorithmic layer for
// arithmetic and tolerance-based comparison (Stabilize, ApproxEqual,
// ApproxLess), per spec §3 and design note (d).
type CFtype = float64

// HardWeight is the fixed large constant multiplying the violations count
// in CostStructure.Total (spec §3, §6: HARD_WEIGHT = 1000 by default).
//
// It is a package-level var, not a const, so an embedding program may
// override it during process init — but per spec design note (b) it must
// be set before any CostStructure is computed; changing it mid-run
// invalidates every CostStructure computed under the previous value. If
// different sub-problems within one process need different weights, run
// them in separate processes instead of mutating HardWeight concurrently.
var HardWeight CFtype = 1000

// Kind classifies a CostComponent as contributing to feasibility (Hard) or
// to the objective (Soft).
type Kind int

const (
	// Hard components contribute to CostStructure.Violations; a non-zero
	// sum of hard components means the state is infeasible.
	Hard Kind = iota

	// Soft components contribute to CostStructure.Objective.
	Soft
)

// String renders Kind for diagnostics.
func (k Kind) String() string {
	if k == Hard {
		return "hard"
	}
	return "soft"
}

// CostComponent is a named, weighted evaluator of one term of a problem's
// cost function. Cost(in, st) = Weight * Compute(in, st). Components are
// registered with a StateManager in the order that fixes their index in
// CostStructure.All (spec §3, §4.1).
type CostComponent[In, St any] interface {
	// Name identifies the component for diagnostics; unique per manager.
	Name() string

	// Weight scales Compute's raw value before aggregation.
	Weight() CFtype

	// Kind reports whether this component is Hard or Soft.
	Kind() Kind

	// Compute evaluates the raw (unweighted) cost of st under in.
	Compute(in In, st St) CFtype
}

// DeltaCostComponent is a companion to a CostComponent that computes the
// change in cost induced by applying a move, without materializing the
// post-move state.
//
// Contract (spec §3, the central invariant exercised by the test suite):
//
//	Delta(in, st, mv) == Compute(in, apply(st, mv)) - Compute(in, st)
//
// for every (st, mv) pair reachable by the neighborhood.
type DeltaCostComponent[In, St, Mv any] interface {
	CostComponent[In, St]

	// Delta computes the incremental change in this component's raw cost
	// that applying mv to st would produce, without materializing the
	// post-move state.
	Delta(in In, st St, mv Mv) CFtype
}

// CostStructure is the aggregated cost of a state (spec §3).
//
// Invariants:
//
//	Total == HardWeight*Violations + Objective
//	Violations == sum of All over hard-component indices
//	Objective  == sum of All over soft-component indices
//
// += and -= are componentwise and grow All to the larger operand's length,
// padding missing entries with zero.
type CostStructure struct {
	// Total is the canonical scalar summary used for ordering unless
	// IsWeighted selects Weighted instead.
	Total CFtype

	// Violations is the sum over hard components.
	Violations CFtype

	// Objective is the sum over soft components.
	Objective CFtype

	// All holds one raw*weight value per registered component, in
	// registration order.
	All []CFtype

	// Weighted is an optional alternate scalar using per-component
	// weights supplied at Cost-computation time (distinct from each
	// component's own Weight()), used when IsWeighted is true.
	Weighted CFtype

	// IsWeighted selects whether ordering compares Weighted (true) or
	// Total (false).
	IsWeighted bool
}

// IsZero reports whether cs represents a zero cost under the scalar in use
// (spec §4.1 default lower_bound_reached: cs == 0).
func (cs CostStructure) IsZero() bool {
	return ApproxEqual(cs.scalar(), 0)
}

// scalar returns the operand governing ordering: Weighted if IsWeighted,
// else Total.
func (cs CostStructure) scalar() CFtype {
	if cs.IsWeighted {
		return cs.Weighted
	}
	return cs.Total
}

// Equal reports whether two CostStructures compare equal under the
// governing scalar (Weighted if both are weighted, else Total), tolerant
// of floating imprecision (spec §3, Testable property 3).
func (cs CostStructure) Equal(other CostStructure) bool {
	return ApproxEqual(cs.orderingScalar(other), other.orderingScalar(cs))
}

// orderingScalar picks which scalar to compare against other: Weighted
// only when both operands carry a weighted value, else Total.
func (cs CostStructure) orderingScalar(other CostStructure) CFtype {
	if cs.IsWeighted && other.IsWeighted {
		return cs.Weighted
	}
	return cs.Total
}

// Less reports cs < other under the governing scalar.
func (cs CostStructure) Less(other CostStructure) bool {
	return ApproxLess(cs.orderingScalar(other), other.orderingScalar(cs))
}

// LessEqual reports cs <= other.
func (cs CostStructure) LessEqual(other CostStructure) bool {
	return cs.Less(other) || cs.Equal(other)
}

// Greater reports cs > other.
func (cs CostStructure) Greater(other CostStructure) bool {
	return other.Less(cs)
}

// GreaterEqual reports cs >= other.
func (cs CostStructure) GreaterEqual(other CostStructure) bool {
	return other.Less(cs) || cs.Equal(other)
}

// Add returns the componentwise sum of cs and other, growing All to the
// longer of the two (spec §3 += semantics).
func (cs CostStructure) Add(other CostStructure) CostStructure {
	out := CostStructure{
		Total:      Stabilize(cs.Total + other.Total),
		Violations: Stabilize(cs.Violations + other.Violations),
		Objective:  Stabilize(cs.Objective + other.Objective),
		Weighted:   Stabilize(cs.Weighted + other.Weighted),
		IsWeighted: cs.IsWeighted || other.IsWeighted,
	}
	out.All = addComponentwise(cs.All, other.All)
	return out
}

// Sub returns the componentwise difference cs - other.
func (cs CostStructure) Sub(other CostStructure) CostStructure {
	out := CostStructure{
		Total:      Stabilize(cs.Total - other.Total),
		Violations: Stabilize(cs.Violations - other.Violations),
		Objective:  Stabilize(cs.Objective - other.Objective),
		Weighted:   Stabilize(cs.Weighted - other.Weighted),
		IsWeighted: cs.IsWeighted || other.IsWeighted,
	}
	out.All = subComponentwise(cs.All, other.All)
	return out
}

// addComponentwise sums two All slices, growing to the longer length and
// treating missing entries as zero.
func addComponentwise(a, b []CFtype) []CFtype {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]CFtype, n)
	var i int
	for i = 0; i < n; i++ {
		var av, bv CFtype
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = Stabilize(av + bv)
	}
	return out
}

// subComponentwise subtracts b from a componentwise, growing to the longer
// length and treating missing entries as zero.
func subComponentwise(a, b []CFtype) []CFtype {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]CFtype, n)
	var i int
	for i = 0; i < n; i++ {
		var av, bv CFtype
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = Stabilize(av - bv)
	}
	return out
}

// EvaluatedMove pairs a move with its (possibly not-yet-computed) cost, per
// spec §3's EvaluatedMove entry: IsValid==false means Cost has not yet been
// computed for this move; runners lazily populate it.
type EvaluatedMove[Mv any] struct {
	Move    Mv
	Cost    CostStructure
	IsValid bool
}
