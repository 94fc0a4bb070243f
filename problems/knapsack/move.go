package knapsack

// Move flips one bit of the state.
type Move struct {
	Index int
}

// Equal reports whether m and other flip the same index.
func (m Move) Equal(other Move) bool {
	return m.Index == other.Index
}

// Less orders moves by index, for tabu-list and enumeration bookkeeping.
func (m Move) Less(other Move) bool {
	return m.Index < other.Index
}

// Inverts reports whether m undoes other: flipping the same bit twice
// returns to the original value.
func (m Move) Inverts(other Move) bool {
	return m.Equal(other)
}
