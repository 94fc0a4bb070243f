package anneal

import (
	"math"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/runner"
)

// EvaluationBased stops only when the Runner's own evaluation budget is
// exhausted, rather than a fixed MinTemperature: MaxNeighborsSampled is
// instead derived once, at InitializeRun, from MaxEvaluations and the
// number of cooling steps a TemperatureRange/CoolingRate pair implies
// (spec §4.5), so the whole run performs a predictable total number of
// evaluations regardless of how many temperatures that takes.
//
// Grounded on original_source's simulatedannealingevaluationbased.hh.
type EvaluationBased[In, St any, Mv costmodel.Move[Mv]] struct {
	SimulatedAnnealing[In, St, Mv]

	// TemperatureRange is start_temperature / expected_min_temperature;
	// together with CoolingRate it fixes how many cooling steps the run
	// performs. Required (no sensible stdlib default).
	TemperatureRange float64

	// NeighborsAcceptedRatio optionally scales MaxNeighborsAccepted below
	// MaxNeighborsSampled; <=0 means "same as MaxNeighborsSampled".
	NeighborsAcceptedRatio float64

	expectedTemperatures int
}

// InitializeRun derives MaxNeighborsSampled from MaxEvaluations divided by
// the expected number of cooling steps, then delegates to the embedded
// SimulatedAnnealing for temperature estimation and counter reset (spec
// §4.5).
func (e *EvaluationBased[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	e.expectedTemperatures = int(math.Ceil(-math.Log(e.TemperatureRange) / math.Log(e.CoolingRate)))
	if e.expectedTemperatures <= 0 {
		e.expectedTemperatures = 1
	}
	if r.MaxEvaluations > 0 {
		e.MaxNeighborsSampled = r.MaxEvaluations / e.expectedTemperatures
	}
	if e.MaxNeighborsSampled <= 0 {
		e.MaxNeighborsSampled = 1
	}
	if e.NeighborsAcceptedRatio > 0 {
		e.MaxNeighborsAccepted = int(float64(e.MaxNeighborsSampled) * e.NeighborsAcceptedRatio)
	} else {
		e.MaxNeighborsAccepted = e.MaxNeighborsSampled
	}
	e.SimulatedAnnealing.InitializeRun(r)
}

// StopCriterion defers entirely to the Runner's max_evaluations check
// (spec §4.5: "the search stops when the number of evaluations is
// expired").
func (e *EvaluationBased[In, St, Mv]) StopCriterion(r *runner.Runner[In, St, Mv]) bool {
	return false
}
