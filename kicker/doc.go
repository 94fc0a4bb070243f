// Package kicker composes short sequences of moves ("kicks") into one
// macro-move, for escaping local optima a single-move neighborhood cannot
// escape, and for Variable-Neighborhood Descent (spec §4.8).
//
// A kick of length ℓ is an ordered sequence of moves (m_1..m_ℓ); each m_k
// must be a valid move from the state produced by m_1..m_{k-1}; the kick's
// cost is the sum of the per-step delta costs.
//
// Grounded on tsp/three_opt.go: its symmetric/ATSP 3-opt enumerates
// multi-step reconnections (fixed at length 3) under both a
// first-improvement and a best-improvement policy, with reservoir-style
// tie handling on repeated best candidates and periodic deadline checks
// during enumeration. Kicker generalizes that to an arbitrary runtime
// length ℓ by walking the per-step neighborhood recursively instead of
// three_opt.go's fixed triple-nested loop, since ℓ is a parameter here
// rather than a compile-time constant of 3.
package kicker
