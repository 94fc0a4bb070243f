package solver

import (
	"time"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/runner"
)

// Stage is one runner/strategy pair participating in a TokenRing (spec
// §4.9).
type Stage[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	Runner   *runner.Runner[In, St, Mv]
	Strategy runner.Strategy[In, St, Mv]
}

// TokenRing cycles through Stages, handing each stage's best state to the
// next as its starting state, tracking the best cost seen across every
// stage and round (spec §4.9 "Token-ring search").
type TokenRing[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	Stages []Stage[In, St, Mv]

	// MaxRounds, if >0, bounds the number of full cycles through Stages.
	MaxRounds int

	// MaxIdleRounds, if >0, stops after this many consecutive rounds with
	// no improvement to the global best cost.
	MaxIdleRounds int
}

// Solve runs the ring from start, returning the overall best state/cost
// found and the wall-clock time spent (spec §4.9).
func (t *TokenRing[In, St, Mv]) Solve(in In, start St, seed int64) Result[St] {
	began := time.Now()
	cur := start
	var bestState St = start
	var bestCost costmodel.CostStructure
	haveBest := false
	idle := 0

	round := 0
	for t.MaxRounds <= 0 || round < t.MaxRounds {
		improved := false
		var i int
		for i = 0; i < len(t.Stages); i++ {
			stageSeed := neighborhood.DeriveSeed(seed, uint64(round*len(t.Stages)+i))
			best, cost, _ := t.Stages[i].Runner.Go(t.Stages[i].Strategy, in, cur, stageSeed)
			cur = best
			if !haveBest || cost.Less(bestCost) {
				bestState, bestCost = best, cost
				haveBest = true
				improved = true
			}
		}
		round++
		if improved {
			idle = 0
		} else {
			idle++
		}
		if t.MaxIdleRounds > 0 && idle >= t.MaxIdleRounds {
			break
		}
	}

	return Result[St]{State: bestState, Cost: bestCost, RunningTime: time.Since(began)}
}
