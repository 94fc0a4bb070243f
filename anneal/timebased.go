package anneal

import (
	"math"
	"time"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/runner"
)

// TimeBased cools on a wall-clock schedule instead of a per-temperature
// move count: AllowedRunningTime is divided evenly across the expected
// number of temperatures (derived from TemperatureRange/CoolingRate, as
// in EvaluationBased), and a temperature is abandoned once its time slice
// elapses even if few moves were sampled — with the residual time
// reapportioned across the temperatures still to come (spec §4.5).
//
// Grounded on original_source's (include/runners) simulatedannealingtimebased.hh.
type TimeBased[In, St any, Mv costmodel.Move[Mv]] struct {
	SimulatedAnnealing[In, St, Mv]

	AllowedRunningTime time.Duration
	TemperatureRange   float64

	runStart             time.Time
	temperatureStart     time.Time
	allowedPerTemperature time.Duration
	residualTemperatures int
}

func (tb *TimeBased[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	tb.SimulatedAnnealing.InitializeRun(r)

	expected := int(math.Ceil(-math.Log(tb.TemperatureRange) / math.Log(tb.CoolingRate)))
	if expected <= 0 {
		expected = 1
	}
	tb.residualTemperatures = expected
	tb.allowedPerTemperature = tb.AllowedRunningTime / time.Duration(expected)
	tb.runStart = time.Now()
	tb.temperatureStart = tb.runStart
}

// StopCriterion ends the run once AllowedRunningTime elapses, in addition
// to the embedded MinTemperature stop (spec §4.5).
func (tb *TimeBased[In, St, Mv]) StopCriterion(r *runner.Runner[In, St, Mv]) bool {
	return time.Since(tb.runStart) > tb.AllowedRunningTime || tb.SimulatedAnnealing.StopCriterion(r)
}

// CompleteMove cools when either this temperature's time slice has
// elapsed or the move-count threshold is reached, and reapportions the
// remaining time across the temperatures still to come (spec §4.5).
func (tb *TimeBased[In, St, Mv]) CompleteMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	tb.neighborsSampled++
	if accepted {
		tb.neighborsAccepted++
	}

	timeUp := time.Since(tb.temperatureStart) > tb.allowedPerTemperature
	countUp := tb.neighborsSampled >= tb.MaxNeighborsSampled || tb.neighborsAccepted >= tb.MaxNeighborsAccepted
	if !timeUp && !countUp {
		return
	}

	tb.temperature = cool(tb.temperature, tb.CoolingRate)
	tb.neighborsSampled = 0
	tb.neighborsAccepted = 0
	tb.residualTemperatures--

	now := time.Now()
	if now.Sub(tb.temperatureStart) < tb.allowedPerTemperature && tb.residualTemperatures > 0 {
		residual := tb.AllowedRunningTime - now.Sub(tb.runStart)
		tb.allowedPerTemperature = residual / time.Duration(tb.residualTemperatures)
	}
	tb.temperatureStart = now
}
