// Package solver orchestrates one or more runners (and optionally a
// kicker) from an initial state to a final SolverResult (spec §4.9): a
// simple local search, a token-ring search cycling several runners, a
// VND solver alternating local search with increasing-length kicks, and
// GRASP (greedy randomized construction plus local search, repeated).
//
// The teacher has no orchestration layer of this shape: tsp/solve.go is a
// single-algorithm dispatcher (pick Christofides/Held-Karp/2-opt/3-opt by
// an Options flag) rather than a sequencer of independent search runs. The
// solvers below are grounded on spec §4.9's prose directly, reusing
// runner.Runner's Go lifecycle and kicker.Kicker's Descend for the actual
// search work, in the same plain-struct-plus-method style tsp/solve.go
// uses for its own dispatch (explicit fields, no functional options).
package solver
