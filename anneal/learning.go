package anneal

import (
	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/runner"
)

// ModalMove is an optional capability a Move type may implement to
// identify which of a multi-neighborhood Hooks' sub-neighborhoods it
// belongs to (spec §4.2 Modality). WithLearning falls back to modality 0
// for moves that don't implement it, which is exact whenever Modality()
// is 1.
type ModalMove interface {
	ActiveModality() int
}

// BiasSettable is an optional capability a Hooks implementation may
// expose to let WithLearning's updated sampling bias actually steer which
// sub-neighborhood RandomMove draws from next. Without it, the biases
// WithLearning computes are still exposed via Bias(i) for diagnostics,
// but candidate generation itself stays uniform across modalities.
type BiasSettable interface {
	SetBias(i int, bias float64)
}

type learningDatum struct {
	accepted, improving, sideways int
	globalImprovement             costmodel.CFtype
}

// WithLearning tracks, per sub-neighborhood modality, how often moves
// drawn from it are accepted and how much they improve the objective,
// then reinforces the sampling bias toward modalities that pay off once
// per temperature batch (spec §4.5): bias[i] moves toward its
// modality's share of total reward, floored at MinThreshold so no
// modality is starved to zero.
//
// Grounded on original_source's (include/runners)
// simulatedannealingwithlearning.hh.
type WithLearning[In, St any, Mv costmodel.Move[Mv]] struct {
	EvaluationBased[In, St, Mv]

	LearningRate float64 // weight given to the new reward each batch
	MinThreshold float64 // floor on any modality's bias

	bias         []float64
	data         []learningDatum
	batchSampled int
}

func (w *WithLearning[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	w.EvaluationBased.InitializeRun(r)

	modality := r.EX.Modality()
	if modality <= 0 {
		modality = 1
	}
	w.bias = make([]float64, modality)
	w.data = make([]learningDatum, modality)
	var i int
	for i = 0; i < modality; i++ {
		w.bias[i] = 1.0 / float64(modality)
	}
	w.batchSampled = 0
	if w.LearningRate <= 0 {
		w.LearningRate = 0.05
	}
	if w.MinThreshold <= 0 {
		w.MinThreshold = 0.05
	}
}

// Bias returns the current sampling bias of modality i, for diagnostics.
func (w *WithLearning[In, St, Mv]) Bias(i int) float64 { return w.bias[i] }

func (w *WithLearning[In, St, Mv]) activeModality(mv Mv) int {
	if mm, ok := any(mv).(ModalMove); ok {
		idx := mm.ActiveModality()
		if idx >= 0 && idx < len(w.bias) {
			return idx
		}
	}
	return 0
}

// CompleteMove records per-modality acceptance/improvement statistics,
// then — once the embedded cooling step closes out a temperature batch —
// reinforces each modality's bias from its share of this batch's reward
// (spec §4.5).
func (w *WithLearning[In, St, Mv]) CompleteMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	w.batchSampled++
	idx := w.activeModality(mv.Move)
	d := &w.data[idx]
	if accepted {
		d.accepted++
	}
	switch {
	case mv.Cost.Total < 0:
		d.improving++
		d.globalImprovement += -mv.Cost.Total
	case mv.Cost.Total == 0:
		d.sideways++
	}

	w.EvaluationBased.CompleteMove(r, mv, accepted)

	if w.neighborsSampled == 0 && w.neighborsAccepted == 0 {
		w.reinforce(r)
	}
}

// reinforce implements the reward/reinforcement update (spec §4.5),
// pushing the result to the Hooks if it implements BiasSettable.
func (w *WithLearning[In, St, Mv]) reinforce(r *runner.Runner[In, St, Mv]) {
	n := len(w.bias)
	if w.batchSampled == 0 {
		return
	}
	reward := make([]float64, n)
	var totalReward float64
	var i int
	for i = 0; i < n; i++ {
		if w.bias[i] > 0 {
			reward[i] = float64(w.data[i].globalImprovement) / (w.bias[i] * float64(w.batchSampled))
		}
		totalReward += reward[i]
	}

	floored := make([]bool, n)
	var usedFloor float64
	var nFloored int
	for i = 0; i < n; i++ {
		var r float64
		if totalReward != 0 {
			r = reward[i] / totalReward
		} else {
			r = 1.0 / float64(n)
		}
		updated := (1-w.LearningRate)*w.bias[i] + w.LearningRate*r
		if updated < w.MinThreshold {
			usedFloor += w.MinThreshold - updated
			floored[i] = true
			nFloored++
			w.bias[i] = w.MinThreshold
		} else {
			w.bias[i] = updated
		}
	}
	if nFloored > 0 && nFloored < n {
		share := usedFloor / float64(n-nFloored)
		for i = 0; i < n; i++ {
			if !floored[i] {
				w.bias[i] -= share
			}
		}
	}

	w.data = make([]learningDatum, n)
	w.batchSampled = 0

	if bs, ok := r.EX.Hooks().(BiasSettable); ok {
		for i = 0; i < n; i++ {
			bs.SetBias(i, w.bias[i])
		}
	}
}
