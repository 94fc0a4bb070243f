package tabu

import (
	"math/rand"

	"github.com/solvecraft/localsearch/costmodel"
)

type item[Mv any] struct {
	move   Mv
	expire int
}

// List is a bounded tabu list: each inserted move is remembered until
// iteration expire, after which it no longer prohibits anything (spec
// §4.6). Grounded on original_source's TabuListItem.hh (a move paired
// with the iteration it leaves the list), reimplemented as a plain slice
// rather than a linked list, matching the teacher's preference for
// explicit index arithmetic over container types (tsp/rng.go).
type List[Mv costmodel.Move[Mv]] struct {
	MinTenure int
	MaxTenure int

	items []item[Mv]
}

// NewList constructs a List with the given tenure range (inclusive).
func NewList[Mv costmodel.Move[Mv]](minTenure, maxTenure int) *List[Mv] {
	if maxTenure < minTenure {
		maxTenure = minTenure
	}
	return &List[Mv]{MinTenure: minTenure, MaxTenure: maxTenure}
}

// Reset empties the list; called at the start of every run.
func (l *List[Mv]) Reset() {
	l.items = l.items[:0]
}

// Insert remembers mv until a random iteration in [iteration+MinTenure,
// iteration+MaxTenure] (spec §4.6: tabu tenure is drawn per insertion).
func (l *List[Mv]) Insert(mv Mv, iteration int, rng *rand.Rand) {
	tenure := l.MinTenure
	if l.MaxTenure > l.MinTenure {
		tenure += rng.Intn(l.MaxTenure - l.MinTenure + 1)
	}
	l.items = append(l.items, item[Mv]{move: mv, expire: iteration + tenure})
}

// Prune discards every entry that has expired by iteration.
func (l *List[Mv]) Prune(iteration int) {
	out := l.items[:0]
	var i int
	for i = 0; i < len(l.items); i++ {
		if l.items[i].expire > iteration {
			out = append(out, l.items[i])
		}
	}
	l.items = out
}

// Prohibits reports whether mv inverts (undoes) any currently-listed move
// (spec §4.6's default inverse predicate, via costmodel.Inverts).
func (l *List[Mv]) Prohibits(mv Mv) bool {
	var i int
	for i = 0; i < len(l.items); i++ {
		if costmodel.Inverts(mv, l.items[i].move) {
			return true
		}
	}
	return false
}

// Len reports the number of currently-listed moves.
func (l *List[Mv]) Len() int { return len(l.items) }
