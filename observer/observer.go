package observer

import "github.com/solvecraft/localsearch/costmodel"

// Kind enumerates the event types a runner, kicker, or solver may emit
// (spec §6).
type Kind int

const (
	Start Kind = iota
	NewBest
	StoreMove
	End
	Round
	RunnerStart
	RunnerStop
	KickerStart
	KickStep
	KickerStop
)

// String renders Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Start:
		return "START"
	case NewBest:
		return "NEW_BEST"
	case StoreMove:
		return "STORE_MOVE"
	case End:
		return "END"
	case Round:
		return "ROUND"
	case RunnerStart:
		return "RUNNER_START"
	case RunnerStop:
		return "RUNNER_STOP"
	case KickerStart:
		return "KICKER_START"
	case KickStep:
		return "KICK_STEP"
	case KickerStop:
		return "KICKER_STOP"
	default:
		return "UNKNOWN"
	}
}

// Event carries one notification (spec §6): a reference to the emitting
// runner/kicker/solver (opaque; observers must not mutate it), the
// current and best cost at the time of emission, the iteration count, and
// optional move information (nil when not applicable, e.g. START/END).
type Event struct {
	Kind        Kind
	Source      any
	CurrentCost costmodel.CostStructure
	BestCost    costmodel.CostStructure
	Iteration   int
	Move        any
}

// Observer receives Events. An Observer must not mutate the state reachable
// through Event.Source (spec §6). Dispatcher.Emit stops at the first
// non-nil error an Observer returns and hands it back to its caller;
// runner.Runner discards that error, so an observer error does not end a
// run and does not reach Runner.Go's caller.
type Observer interface {
	Notify(Event) error
}

// Dispatcher fans one Event out to every registered Observer, in
// registration order, synchronously (spec §9: "single-threaded delivery,
// fire-and-forget").
type Dispatcher struct {
	observers []Observer
}

// NewDispatcher constructs an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register appends o to the dispatch list.
func (d *Dispatcher) Register(o Observer) {
	d.observers = append(d.observers, o)
}

// Emit delivers e to every registered Observer in order, stopping and
// returning the first error encountered.
func (d *Dispatcher) Emit(e Event) error {
	var i int
	for i = 0; i < len(d.observers); i++ {
		if err := d.observers[i].Notify(e); err != nil {
			return err
		}
	}
	return nil
}
