package anneal

import (
	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/runner"
)

// WithShiftingPenalty scales the hard-constraint contribution used for
// the acceptance test by a multiplier (shift) that adapts after every
// accepted move: it relaxes toward zero while the current state stays
// feasible, and rises back toward one as soon as a move leaves it
// infeasible (spec §4.5). The cost actually recorded against the run
// (EvaluatedMove.Cost, used for best-tracking) still uses the real,
// HardWeight-scaled delta — only the acceptance test sees the shifted
// value.
//
// Grounded on original_source's simulatedannealingwithshiftingpenalty.hh.
type WithShiftingPenalty[In, St any, Mv costmodel.Move[Mv]] struct {
	SimulatedAnnealing[In, St, Mv]

	// Alpha is the multiplier applied to shift after each accepted move (>1).
	Alpha float64
	// MinShift floors shift when the state has been feasible for a
	// while; <=0 defaults to 0.01.
	MinShift float64

	shift float64
}

func (w *WithShiftingPenalty[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	w.SimulatedAnnealing.InitializeRun(r)
	if w.MinShift <= 0 {
		w.MinShift = 0.01
	}
	w.shift = 1.0
}

// AcceptableMove applies the Metropolis test to shift*violations +
// objective instead of the real (HardWeight-scaled) delta (spec §4.5).
func (w *WithShiftingPenalty[In, St, Mv]) AcceptableMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	shifted := w.shift*mv.Cost.Violations + mv.Cost.Objective
	return metropolisAccept(shifted, w.temperature, r.RNG())
}

// CompleteMove runs the embedded cooling bookkeeping, then — only after an
// accepted move — relaxes shift toward MinShift while the current state
// is feasible or pulls it back toward 1 as soon as it is not (spec §4.5).
func (w *WithShiftingPenalty[In, St, Mv]) CompleteMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	w.SimulatedAnnealing.CompleteMove(r, mv, accepted)
	if !accepted {
		return
	}
	if r.CurrentCost().Violations > 0 {
		w.shift = min(1.0, w.shift*w.Alpha)
	} else {
		w.shift = max(w.MinShift, w.shift/w.Alpha)
	}
}
