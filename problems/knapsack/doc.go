// Package knapsack is a minimal binary-variable problem module: a state is
// a bit vector, a move flips one bit. It is grounded directly on this
// system's own documented scenarios rather than a teacher file — the
// teacher's tsp/ package has no knapsack-shaped example — and is used as
// the small worked instance its own tests run through runner's
// SteepestDescent and HillClimbing end to end, without the bookkeeping a
// tour needs.
//
// Two independent soft objectives are supported, matched to the scenarios
// that motivate this package:
//
//   - ValueComponent maximizes Σ Values[i]*Bits[i] (expressed as the cost
//     -Σ Values[i]*Bits[i], since every component here is minimized). With
//     Values left nil every item is worth 1, giving the literal toy
//     objective -Σ x_i over n binary variables.
//   - TargetComponent scores the Hamming distance to an optional target bit
//     vector, for the "reach a known goal state" shape of problem.
//
// A CapacityComponent is included as a hard feasibility term for a genuine
// 0/1 knapsack (Weights/Capacity set); it contributes zero whenever
// Capacity is left at its zero value, which is what keeps the toy-mode
// scenarios unconstrained.
package knapsack
