package knapsack

import (
	"math/rand"

	"github.com/solvecraft/localsearch/neighborhood"
)

// Hooks implements neighborhood.Hooks[Input, State, Move] over the flip
// neighborhood: one move per variable, toggling it.
type Hooks struct{}

// RandomMove draws a uniformly random index to flip.
func (Hooks) RandomMove(in Input, st State, rng *rand.Rand) (Move, error) {
	n := len(st.Bits)
	if n == 0 {
		return Move{}, neighborhood.ErrEmptyNeighborhood
	}
	return Move{Index: rng.Intn(n)}, nil
}

// FirstMove begins enumeration at index 0.
func (Hooks) FirstMove(in Input, st State) (Move, bool) {
	if len(st.Bits) == 0 {
		return Move{}, false
	}
	return Move{Index: 0}, true
}

// NextMove advances to the next index, in ascending order.
func (Hooks) NextMove(in Input, st State, cur Move) (Move, bool) {
	if cur.Index+1 < len(st.Bits) {
		return Move{Index: cur.Index + 1}, true
	}
	return Move{}, false
}

// Apply flips the bit at mv.Index on a copy of st.
func (Hooks) Apply(in Input, st State, mv Move) State {
	out := st.Clone()
	out.Bits[mv.Index] = 1 - out.Bits[mv.Index]
	return out
}

// Modality reports a single flip neighborhood.
func (Hooks) Modality() int { return 1 }
