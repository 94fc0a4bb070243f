package costmodel

// State is the capability contract every State type must satisfy (spec §3):
// value-copy and equality. Construction from an Input is supplied instead
// by the problem module's RandomState/GreedyState hooks (statemanager.Problem),
// not by this interface, since construction needs the Input.
type State[S any] interface {
	// Clone returns an independent copy of the receiver.
	Clone() S

	// Equal reports whether the receiver and other represent the same
	// state.
	Equal(other S) bool
}

// Move is the capability contract every Move type must satisfy (spec §3):
// value-copy, equality, and ordering. Value-copy is implicit for Go value
// types (structs/ints/strings); reference-typed moves must implement their
// own deep-copy semantics in Equal/Less if needed.
type Move[M any] interface {
	// Equal reports whether the receiver and other represent the same
	// move.
	Equal(other M) bool

	// Less imposes a total order on moves, used by neighborhood
	// enumeration and tabu-list bookkeeping that need a stable order.
	Less(other M) bool
}

// Inverter is an optional capability a Move type may implement: whether
// the receiver move undoes other (spec §3: "inverse predicate (whether
// move b undoes move a); default: equality)"). Use Inverts to consult it
// with the documented fallback.
type Inverter[M any] interface {
	// Inverts reports whether applying the receiver after other returns
	// the state other was applied from to its pre-move value.
	Inverts(other M) bool
}

// Inverts reports whether a inverts b, using a's Inverter implementation
// if present, else falling back to a.Equal(b) per spec §3's documented
// default.
func Inverts[M Move[M]](a, b M) bool {
	if inv, ok := any(a).(Inverter[M]); ok {
		return inv.Inverts(b)
	}
	return a.Equal(b)
}
