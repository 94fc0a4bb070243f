package anneal

import (
	"math"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/runner"
)

// WithReheating restarts the cooling schedule from a raised temperature
// each time a fixed evaluation-budget share elapses, rather than running
// a single monotonic cooldown to MinTemperature (spec §4.5). This trades
// EvaluationBased's single descent for MaxReheats additional descents,
// escaping local optima a single cooldown would have settled into.
//
// Grounded on original_source's simulatedannealingwithreheating.hh.
type WithReheating[In, St any, Mv costmodel.Move[Mv]] struct {
	EvaluationBased[In, St, Mv]

	FirstReheatRatio             float64 // temperature multiplier applied at the first reheat
	ReheatRatio                  float64 // temperature multiplier applied at every later reheat
	FirstDescentEvaluationsShare float64 // fraction of MaxEvaluations spent before the first reheat, in ]0,1]
	MaxReheats                   int

	reheats                   int
	firstDescentEvaluations  int
	otherDescentsEvaluations int
}

func (w *WithReheating[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	w.EvaluationBased.InitializeRun(r)
	w.reheats = 0

	if w.MaxReheats <= 0 {
		return
	}
	if w.FirstReheatRatio <= 0 {
		w.FirstReheatRatio = w.ReheatRatio
	}
	share := w.FirstDescentEvaluationsShare
	if share <= 0 || share > 1 {
		share = 1
	}
	w.MaxNeighborsSampled = int(math.Ceil(float64(w.MaxNeighborsSampled) * share))
	w.firstDescentEvaluations = int(float64(r.MaxEvaluations) * share)
	w.otherDescentsEvaluations = (r.MaxEvaluations - w.firstDescentEvaluations) / w.MaxReheats
	if w.NeighborsAcceptedRatio > 0 {
		w.MaxNeighborsAccepted = int(math.Ceil(float64(w.MaxNeighborsSampled) * w.NeighborsAcceptedRatio))
	} else {
		w.MaxNeighborsAccepted = w.MaxNeighborsSampled
	}
}

// CompleteMove runs the embedded cooling bookkeeping, then reheats once
// the evaluation count crosses the next reheat boundary (spec §4.5).
func (w *WithReheating[In, St, Mv]) CompleteMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	w.EvaluationBased.CompleteMove(r, mv, accepted)
	if !w.reheatDue(r) || w.reheats > w.MaxReheats {
		return
	}

	if w.reheats == 0 {
		w.StartTemperature *= w.FirstReheatRatio
	} else if w.MaxReheats > 1 {
		w.StartTemperature *= w.ReheatRatio
	}
	w.expectedTemperatures = int(-math.Log(w.StartTemperature/w.MinTemperature) / math.Log(w.CoolingRate))
	if w.expectedTemperatures <= 0 {
		w.expectedTemperatures = 1
	}
	w.MaxNeighborsSampled = w.otherDescentsEvaluations / w.expectedTemperatures
	if w.MaxNeighborsSampled <= 0 {
		w.MaxNeighborsSampled = 1
	}
	w.MaxNeighborsAccepted = w.MaxNeighborsSampled
	w.reheats++
	w.temperature = w.StartTemperature
}

func (w *WithReheating[In, St, Mv]) reheatDue(r *runner.Runner[In, St, Mv]) bool {
	if w.MaxReheats == 0 {
		return false
	}
	return r.Evaluations() >= w.firstDescentEvaluations+w.otherDescentsEvaluations*w.reheats
}

// StopCriterion ends the run once every scheduled reheat has been spent
// (spec §4.5).
func (w *WithReheating[In, St, Mv]) StopCriterion(r *runner.Runner[In, St, Mv]) bool {
	return w.reheats > w.MaxReheats
}
