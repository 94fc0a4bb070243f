package solver

import (
	"time"

	"github.com/solvecraft/localsearch/costmodel"
)

// Result is a solver's outcome (spec §4.9: SolverResult = (output, cost,
// running_time)). Output-state translation (the text-stream Output
// Manager of spec §6) is an external collaborator outside this
// framework's scope, so State stands in directly as the "output": a
// caller that needs a distinct Output representation supplies its own
// translation at the boundary, same as the teacher leaves CSV/JSON
// rendering of a TSResult to its own callers rather than tsp/ itself.
type Result[St any] struct {
	State       St
	Cost        costmodel.CostStructure
	RunningTime time.Duration
}
