package solver

import (
	"time"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/runner"
)

// GRASP repeats greedy-randomized construction plus local search,
// keeping the best result across restarts (spec §4.9).
type GRASP[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	Runner   *runner.Runner[In, St, Mv]
	Strategy runner.Strategy[In, St, Mv]

	// Restarts is the number of greedy-construct-then-search attempts.
	Restarts int

	// Alpha and K are the RCL parameters passed to GreedyState each
	// restart (spec §6: restarts, alpha, k).
	Alpha float64
	K     int
}

// Solve runs Restarts independent attempts, each from an independently
// seeded greedy state, and returns the best found.
func (g *GRASP[In, St, Mv]) Solve(in In, seed int64) (Result[St], error) {
	began := time.Now()
	var bestState St
	var bestCost costmodel.CostStructure
	haveBest := false

	var r int
	for r = 0; r < g.Restarts; r++ {
		restartSeed := neighborhood.DeriveSeed(seed, uint64(r))
		start, err := g.Runner.SM.GreedyState(in, g.Alpha, g.K, neighborhood.RNGFromSeed(restartSeed))
		if err != nil {
			var zero Result[St]
			return zero, err
		}
		best, cost, _ := g.Runner.Go(g.Strategy, in, start, restartSeed)
		if !haveBest || cost.Less(bestCost) {
			bestState, bestCost = best, cost
			haveBest = true
		}
	}

	return Result[St]{State: bestState, Cost: bestCost, RunningTime: time.Since(began)}, nil
}
