// Package tsp is an example problem module: the symmetric Traveling
// Salesman Problem expressed against this framework's State/Move/Input
// contracts, exercising the 2-opt neighborhood as incremental delta
// evaluation, the kicker as a 3-opt-flavored escape move, and GRASP as a
// nearest-neighbor-with-RCL construction heuristic.
//
// Adapted from the teacher's tsp/ package (two_opt.go's boundary-arc delta
// formula, tour.go's closed-tour invariants and in-place segment reversal,
// validate.go's structural checks), generalized from a single hardcoded
// first-improvement/best-improvement 2-opt engine into a Hooks
// implementation the framework's runner/neighborhood/kicker/solver
// packages drive. Distances are a plain [][]float64 rather than the
// teacher's matrix.Matrix: that package mixes incompatible shape/weight
// invariants across its own constructors (see DESIGN.md), so this module
// takes the same data the teacher ultimately reads out of it.
package tsp
