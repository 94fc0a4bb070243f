// Package statemanager implements the state-level operations that are
// independent of any neighborhood: construction, full cost evaluation,
// and the optional user hooks a problem module may or may not implement
// (spec §4.1).
//
// Design:
//   - Problem[In, St] is the interface a user-supplied problem module
//     implements; StateManager wraps it with the framework's reusable
//     logic (component aggregation, sampling, lower-bound/optimality
//     checks) the way tsp.SolveWithMatrix wraps algorithm-specific
//     solvers behind one dispatcher.
//   - Optional hooks (GreedyState, StateDistance) signal
//     ErrNotImplemented via a sentinel rather than a panic when a
//     problem module leaves them unimplemented, matching the teacher's
//     "no panics on user input, only sentinel errors" discipline.
package statemanager
