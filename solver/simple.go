package solver

import (
	"time"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/runner"
)

// SimpleLocalSearch wraps one Runner/Strategy pair: construct an initial
// state, run to completion, report the best state found (spec §4.9).
type SimpleLocalSearch[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	Runner   *runner.Runner[In, St, Mv]
	Strategy runner.Strategy[In, St, Mv]
}

// Solve constructs a random initial state via the StateManager's
// RandomState hook and runs from it (spec §4.9 "solve").
func (s *SimpleLocalSearch[In, St, Mv]) Solve(in In, seed int64) (Result[St], error) {
	start, err := s.Runner.SM.RandomState(in, neighborhood.RNGFromSeed(seed))
	if err != nil {
		var zero Result[St]
		return zero, err
	}
	return s.Resolve(in, start, seed), nil
}

// SolveGreedy constructs the initial state via the StateManager's
// GreedyState hook with the given RCL parameters (spec §4.9 "solve ... or
// greedy_state if requested"), falling back to RandomState when the
// problem module has no greedy construction.
func (s *SimpleLocalSearch[In, St, Mv]) SolveGreedy(in In, alpha float64, k int, seed int64) (Result[St], error) {
	start, err := s.Runner.SM.GreedyState(in, alpha, k, neighborhood.RNGFromSeed(seed))
	if err != nil {
		var zero Result[St]
		return zero, err
	}
	return s.Resolve(in, start, seed), nil
}

// Resolve runs from a caller-supplied starting state (spec §4.9
// "resolve(in, start)").
func (s *SimpleLocalSearch[In, St, Mv]) Resolve(in In, start St, seed int64) Result[St] {
	began := time.Now()
	best, cost, _ := s.Runner.Go(s.Strategy, in, start, seed)
	return Result[St]{State: best, Cost: cost, RunningTime: time.Since(began)}
}
