// Package costmodel defines the scalar cost type, the aggregated
// CostStructure, and the CostComponent/DeltaCostComponent contracts shared
// by every state manager, neighborhood explorer, runner, and solver in this
// module.
//
// What & Why:
//
//	A combinatorial search problem is described as a sum of independently
//	registered cost components, each either "hard" (a feasibility
//	constraint; violations are catastrophic) or "soft" (an objective term;
//	violations merely suboptimal). CostStructure aggregates both families
//	into one comparable scalar so every metaheuristic in this module can
//	share one ordering rule.
//
// Design:
//   - CFtype is float64. Integral problems represent their costs as
//     integer-valued float64s; both share this package's one algorithmic
//     layer for arithmetic, aggregation, and tolerance-based comparison
//     (see stabilize.go).
//   - Componentwise aggregation grows All to the larger of two operands'
//     lengths on +=/-=, padding with zero, matching violations/objective
//     sums recomputed from the hard/soft partition.
//   - No logging, no panics on well-formed input; only sentinel errors.
package costmodel
