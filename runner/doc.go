// Package runner implements the shared metaheuristic lifecycle (spec
// §4.3) plus the simplest runner family built directly on it: steepest
// descent, first descent, hill climbing, and late-acceptance hill
// climbing (spec §4.4), and great deluge (spec §4.7).
//
// Design — "deep inheritance -> capability traits" (spec §9 design
// note): rather than a Runner -> MoveRunner -> ConcreteRunner class
// hierarchy, Runner[In, St, Mv] is one concrete, non-extensible struct
// holding every field the lifecycle shares (current/best state, iteration
// counters, evaluation budget, RNG, observers); each concrete
// metaheuristic supplies a small Strategy implementation with exactly the
// four hook points spec §4.3's pseudocode varies per algorithm
// (SelectMove, AcceptableMove, CompleteMove, StopCriterion) plus
// InitializeRun for per-strategy setup (temperature, tabu list, LAHC ring
// buffer, idle counters). Runner.Go drives the shared loop and never
// needs to know which concrete strategy it holds.
//
// The main-loop shape (prefetch-once, evaluate-one-move-per-iteration,
// check a soft suspension point between iterations) is grounded on the
// teacher's tsp/two_opt.go first-improvement loop, generalized from a
// single hardcoded policy (2-opt first-improvement) to the pluggable
// Strategy seam spec §4.3-§4.8 require.
package runner
