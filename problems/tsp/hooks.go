package tsp

import (
	"math/rand"

	"github.com/solvecraft/localsearch/neighborhood"
)

// Hooks implements neighborhood.Hooks[Input, State, Move] over the 2-opt
// neighborhood: candidate pairs (i, k) with 1 <= i < k <= n-1, enumerated
// in the same nested order as tsp/two_opt.go's scan (spec §4.2).
type Hooks struct{}

// RandomMove draws a uniformly random (i, k) pair.
func (Hooks) RandomMove(in Input, st State, rng *rand.Rand) (Move, error) {
	n := len(st.Tour) - 1
	if n < 4 {
		return Move{}, neighborhood.ErrEmptyNeighborhood
	}
	i := 1 + rng.Intn(n-2)
	k := i + 1 + rng.Intn(n-1-i)
	return Move{I: i, K: k}, nil
}

// FirstMove begins the canonical (i, k) enumeration at (1, 2).
func (Hooks) FirstMove(in Input, st State) (Move, bool) {
	n := len(st.Tour) - 1
	if n < 4 {
		return Move{}, false
	}
	return Move{I: 1, K: 2}, true
}

// NextMove advances k, then i, matching tsp/two_opt.go's nested
// "for i { for k }" scan order.
func (Hooks) NextMove(in Input, st State, cur Move) (Move, bool) {
	n := len(st.Tour) - 1
	if cur.K+1 <= n-1 {
		return Move{I: cur.I, K: cur.K + 1}, true
	}
	if cur.I+1 <= n-2 {
		return Move{I: cur.I + 1, K: cur.I + 2}, true
	}
	return Move{}, false
}

// Apply reverses the segment [I, K] on a copy of the tour, adapted from
// tsp/two_opt.go's accepted-move mutation.
func (Hooks) Apply(in Input, st State, mv Move) State {
	out := st.Clone()
	reverseArcInPlace(out.Tour, mv.I, mv.K)
	return out
}

// Modality reports a single 2-opt neighborhood.
func (Hooks) Modality() int { return 1 }
