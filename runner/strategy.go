package runner

import "github.com/solvecraft/localsearch/costmodel"

// Strategy supplies the four metaheuristic-specific hook points spec
// §4.3's pseudocode varies per algorithm, plus InitializeRun for
// per-strategy setup. A Runner drives these through its shared lifecycle
// (spec §4.3-§4.8); the Strategy never needs to re-implement iteration
// bookkeeping, best-tracking, or suspension checks.
type Strategy[In, St any, Mv costmodel.Move[Mv]] interface {
	// InitializeRun resets the strategy's own parameters (temperature,
	// tabu list, LAHC ring buffer, idle counters) at the start of a run.
	// Called once, after the Runner has reset its own shared state.
	InitializeRun(r *Runner[In, St, Mv])

	// SelectMove chooses the candidate move for this iteration. ok==false
	// means the neighborhood was empty (spec §7 EmptyNeighborhood); the
	// Runner ends the run cleanly in that case. explored is the number of
	// delta evaluations performed while selecting, added to the Runner's
	// evaluations counter.
	SelectMove(r *Runner[In, St, Mv]) (mv costmodel.EvaluatedMove[Mv], explored int, ok bool)

	// AcceptableMove decides whether to apply mv to the current state.
	AcceptableMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool

	// CompleteMove runs post-iteration bookkeeping after mv was selected,
	// whether or not it was accepted (spec §4.3 complete_move: tabu
	// insertion, SA cooling, LAHC ring-buffer update, shift adaptation).
	CompleteMove(r *Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool)

	// StopCriterion reports whether the run should end, independent of
	// the Runner's own max_evaluations/external-termination checks.
	StopCriterion(r *Runner[In, St, Mv]) bool
}
