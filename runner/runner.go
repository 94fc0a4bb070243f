package runner

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/observer"
	"github.com/solvecraft/localsearch/statemanager"
)

// Runner holds the state every metaheuristic shares (spec §4.3): current
// and best state/cost, iteration counters, the evaluation budget, a
// per-run RNG, and observer delivery. Runner itself is concrete and
// final; per-algorithm behavior is supplied entirely through a Strategy
// (see strategy.go).
type Runner[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	SM        *statemanager.StateManager[In, St]
	EX        *neighborhood.Explorer[In, St, Mv]
	Observers *observer.Dispatcher

	// MaxEvaluations bounds the number of delta evaluations across the
	// whole run; zero means unbounded (spec §6 max_evaluations).
	MaxEvaluations int

	// Weights optionally selects the per-component weights used when
	// computing CostStructure.Weighted (spec §4.1 cost(...,weights?)).
	Weights []costmodel.CFtype

	// Deadline, if non-zero, bounds wall-clock time; checked at the same
	// suspension points as External (spec §5).
	Deadline time.Time

	// External is an optional shared flag a watchdog may set to request
	// cooperative termination (spec §5). A nil External is never checked.
	External *atomic.Bool

	in                In
	currentState      St
	currentCost       costmodel.CostStructure
	bestState         St
	bestCost          costmodel.CostStructure
	iteration         int
	iterationOfBest   int
	evaluations       int
	rng               *rand.Rand
}

// In returns the input the current/last run was started with.
func (r *Runner[In, St, Mv]) In() In { return r.in }

// CurrentState returns the runner's current state.
func (r *Runner[In, St, Mv]) CurrentState() St { return r.currentState }

// CurrentCost returns the runner's current cost.
func (r *Runner[In, St, Mv]) CurrentCost() costmodel.CostStructure { return r.currentCost }

// BestState returns the best state seen since the run started (spec §4.3
// ordering guarantee).
func (r *Runner[In, St, Mv]) BestState() St { return r.bestState }

// BestCost returns the best cost seen since the run started.
func (r *Runner[In, St, Mv]) BestCost() costmodel.CostStructure { return r.bestCost }

// Iteration returns the current iteration counter.
func (r *Runner[In, St, Mv]) Iteration() int { return r.iteration }

// IterationOfBest returns the iteration at which BestCost was last
// improved.
func (r *Runner[In, St, Mv]) IterationOfBest() int { return r.iterationOfBest }

// Evaluations returns the cumulative count of delta evaluations performed
// since the run started.
func (r *Runner[In, St, Mv]) Evaluations() int { return r.evaluations }

// RNG returns the runner's private RNG stream (spec §5: state/RNG are
// private to a single runner; never share across goroutines).
func (r *Runner[In, St, Mv]) RNG() *rand.Rand { return r.rng }

// SetCurrentState overwrites the current state/cost directly (used by
// solvers performing hand-offs between runners, and by a Strategy that
// needs to force an explicit assignment, e.g. great deluge re-seeding).
func (r *Runner[In, St, Mv]) SetCurrentState(st St, cost costmodel.CostStructure) {
	r.currentState = st
	r.currentCost = cost
}

// ApplyMove mutates the current state by applying mv and updates the
// current cost by mv.Cost (spec §4.3's "apply(current_state,
// current_move); current_cost += current_move.cost").
func (r *Runner[In, St, Mv]) ApplyMove(mv costmodel.EvaluatedMove[Mv]) {
	r.currentState = r.EX.Apply(r.in, r.currentState, mv.Move)
	r.currentCost = r.currentCost.Add(mv.Cost)
}

// Go executes one run from start to completion, driving strategy through
// the shared lifecycle (spec §4.3):
//
//	initialize_run; loop { stop checks; select_move; accept?; apply;
//	complete_move; store_move; complete_iteration } ; terminate_run
//
// Returns the best state/cost seen and the number of iterations executed.
func (r *Runner[In, St, Mv]) Go(strategy Strategy[In, St, Mv], in In, start St, seed int64) (St, costmodel.CostStructure, int) {
	r.initializeRun(strategy, in, start, seed)
	r.emit(observer.RunnerStart, costmodel.EvaluatedMove[Mv]{})

	for {
		if strategy.StopCriterion(r) || r.maxEvaluationsReached() || r.terminationRequested() {
			break
		}

		mv, explored, ok := strategy.SelectMove(r)
		r.evaluations += explored
		if !ok {
			// EmptyNeighborhood: recovered locally, ends the run cleanly
			// with the best-so-far (spec §7).
			break
		}

		accepted := strategy.AcceptableMove(r, mv)
		if accepted {
			r.ApplyMove(mv)
			r.emit(observer.StoreMove, mv)
		}

		strategy.CompleteMove(r, mv, accepted)
		r.storeMove()
		r.completeIteration()
		r.iteration++
	}

	r.terminateRun()
	return r.bestState, r.bestCost, r.iteration
}

// initializeRun zeroes the iteration counter, seeds best = current, and
// lets strategy reset its own parameters (spec §4.3 initialize_run).
func (r *Runner[In, St, Mv]) initializeRun(strategy Strategy[In, St, Mv], in In, start St, seed int64) {
	r.in = in
	r.currentState = start
	r.currentCost = r.SM.Cost(in, start, r.Weights)
	r.bestState = start.Clone()
	r.bestCost = r.currentCost
	r.iteration = 0
	r.iterationOfBest = 0
	r.evaluations = 0
	r.rng = neighborhood.RNGFromSeed(seed)

	strategy.InitializeRun(r)
}

// storeMove updates best_state/best_cost when the current state strictly
// improves on it (spec §4.3 store_move; ties keep the earlier iteration,
// per the ordering guarantee).
func (r *Runner[In, St, Mv]) storeMove() {
	if r.currentCost.Less(r.bestCost) {
		r.bestState = r.currentState.Clone()
		r.bestCost = r.currentCost
		r.iterationOfBest = r.iteration
		r.emit(observer.NewBest, costmodel.EvaluatedMove[Mv]{})
	}
}

// completeIteration is the second suspension point (spec §5): after this
// call returns, the next loop iteration checks termination before doing
// any further work.
func (r *Runner[In, St, Mv]) completeIteration() {
	r.emit(observer.Round, costmodel.EvaluatedMove[Mv]{})
}

// terminateRun emits the terminal notification (spec §6: observers
// receive a terminal notification in all cases).
func (r *Runner[In, St, Mv]) terminateRun() {
	r.emit(observer.RunnerStop, costmodel.EvaluatedMove[Mv]{})
}

// maxEvaluationsReached reports whether the evaluation budget is
// exhausted (spec §6 max_evaluations; zero means unbounded).
func (r *Runner[In, St, Mv]) maxEvaluationsReached() bool {
	return r.MaxEvaluations > 0 && r.evaluations >= r.MaxEvaluations
}

// terminationRequested reports whether External was set or Deadline has
// passed (spec §5 suspension points).
func (r *Runner[In, St, Mv]) terminationRequested() bool {
	if r.External != nil && r.External.Load() {
		return true
	}
	if !r.Deadline.IsZero() && time.Now().After(r.Deadline) {
		return true
	}
	return false
}

// emit delivers an Event to the runner's Observers, if any were
// registered. A nil Observers dispatcher is a no-op (most runs need no
// listeners). An error returned by the dispatcher is discarded and the run
// continues.
func (r *Runner[In, St, Mv]) emit(kind observer.Kind, mv costmodel.EvaluatedMove[Mv]) {
	if r.Observers == nil {
		return
	}
	var moveInfo any
	if mv.IsValid {
		moveInfo = mv
	}
	_ = r.Observers.Emit(observer.Event{
		Kind:        kind,
		Source:      r,
		CurrentCost: r.currentCost,
		BestCost:    r.bestCost,
		Iteration:   r.iteration,
		Move:        moveInfo,
	})
}
