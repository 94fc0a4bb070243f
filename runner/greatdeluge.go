package runner

import "github.com/solvecraft/localsearch/costmodel"

// GreatDeluge accepts any move that keeps the resulting cost below a
// slowly-falling water level, rather than comparing against the current
// cost (spec §4.7). The level starts at InitialLevel (or the starting
// cost scaled by InitialLevelRatio when InitialLevel is zero) and falls
// by Rain in every iteration's complete_move, accepted or not.
type GreatDeluge[In, St any, Mv costmodel.Move[Mv]] struct {
	// InitialLevel, if non-zero, is the absolute starting water level.
	InitialLevel costmodel.CFtype

	// InitialLevelRatio scales the run's starting cost when InitialLevel
	// is zero (spec §4.7 default: level_0 = cost(start) * ratio, ratio>1).
	InitialLevelRatio costmodel.CFtype

	// Rain is the amount the water level falls after each iteration.
	Rain costmodel.CFtype

	// MaxIdleIterations, if >0, stops the run after this many consecutive
	// iterations produce no new best (spec §4.7: "Stop on
	// max_idle_iterations").
	MaxIdleIterations int

	level costmodel.CFtype
	idle  int
}

func (g *GreatDeluge[In, St, Mv]) InitializeRun(r *Runner[In, St, Mv]) {
	g.idle = 0
	if g.InitialLevel != 0 {
		g.level = g.InitialLevel
		return
	}
	ratio := g.InitialLevelRatio
	if ratio <= 0 {
		ratio = 1
	}
	g.level = r.currentCost.Total * ratio
}

// SelectMove draws a single random move and evaluates it (spec §4.7:
// "Accept a random move iff current_cost + delta <= L"), matching
// anneal/sa.go's SelectMove exactly.
func (g *GreatDeluge[In, St, Mv]) SelectMove(r *Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	mv, err := r.EX.RandomMove(r.in, r.currentState, r.rng)
	if err != nil {
		return costmodel.EvaluatedMove[Mv]{}, 0, false
	}
	delta := r.EX.DeltaCost(r.in, r.currentState, mv, r.Weights)
	return costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}, 1, true
}

// AcceptableMove accepts mv when the resulting total cost is at or below
// the current water level (spec §4.7).
func (g *GreatDeluge[In, St, Mv]) AcceptableMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	candidate := r.currentCost.Add(mv.Cost)
	return costmodel.ApproxLess(candidate.Total, g.level) || costmodel.ApproxEqual(candidate.Total, g.level)
}

// CompleteMove lowers the water level by Rain once per iteration,
// independent of whether mv was accepted (spec §4.7: the level falls
// monotonically with time, not with progress), and counts idle
// iterations: an accepted move that beats the best cost so far resets the
// count, every other iteration increments it.
func (g *GreatDeluge[In, St, Mv]) CompleteMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	g.level = costmodel.Stabilize(g.level - g.Rain)
	if accepted && r.currentCost.Less(r.bestCost) {
		g.idle = 0
		return
	}
	g.idle++
}

// StopCriterion ends the run after MaxIdleIterations consecutive
// iterations with no new best (spec §4.7).
func (g *GreatDeluge[In, St, Mv]) StopCriterion(r *Runner[In, St, Mv]) bool {
	return g.MaxIdleIterations > 0 && g.idle >= g.MaxIdleIterations
}
