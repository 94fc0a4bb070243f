package kicker

import (
	"errors"
	"math/rand"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/neighborhood"
)

// ErrInvalidLength is returned for a non-positive kick length.
var ErrInvalidLength = errors.New("kicker: length must be >= 1")

// ErrNoValidKick is returned when no sequence of ℓ valid moves exists from
// the given state (e.g. the neighborhood is empty at some step).
var ErrNoValidKick = errors.New("kicker: no valid kick found")

// Kick is an ordered sequence of moves to be applied in order, one state
// transition per entry (spec §4.8).
type Kick[Mv any] []Mv

// Kicker composes sequences of moves drawn from an Explorer's neighborhood
// into single macro-moves (spec §4.8). Multi-neighborhood composition is
// delegated entirely to the Hooks implementation: as with anneal's optional
// bias capability, this framework has no separate per-sub-neighborhood
// move-generation hook, so a Hooks implementation that wants pattern-typed
// kicks over distinct sub-neighborhoods must encode that itself inside its
// own FirstMove/NextMove/RandomMove (see DESIGN.md).
type Kicker[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	EX      *neighborhood.Explorer[In, St, Mv]
	Weights []costmodel.CFtype
}

// New constructs a Kicker over ex, evaluating costs with the given weights
// (nil selects each component's own Weight()).
func New[In, St costmodel.State[St], Mv costmodel.Move[Mv]](ex *neighborhood.Explorer[In, St, Mv], weights []costmodel.CFtype) *Kicker[In, St, Mv] {
	return &Kicker[In, St, Mv]{EX: ex, Weights: weights}
}

type candidate[Mv any] struct {
	kick Kick[Mv]
	cost costmodel.CostStructure
}

// SelectRandom samples one valid kick of the given length uniformly at
// random, returning its summed delta cost (spec §4.8). Each step draws a
// random move from the neighborhood of the state the previous step
// produced; the kick fails if any step's neighborhood is empty.
func (k *Kicker[In, St, Mv]) SelectRandom(length int, in In, st St, rng *rand.Rand) (Kick[Mv], costmodel.CostStructure, error) {
	if length < 1 {
		return nil, costmodel.CostStructure{}, ErrInvalidLength
	}
	hooks := k.EX.Hooks()
	out := make(Kick[Mv], 0, length)
	total := costmodel.CostStructure{}
	cur := st

	var step int
	for step = 0; step < length; step++ {
		mv, err := hooks.RandomMove(in, cur, rng)
		if err != nil {
			return nil, costmodel.CostStructure{}, ErrNoValidKick
		}
		delta := k.EX.DeltaCost(in, cur, mv, k.Weights)
		total = total.Add(delta)
		out = append(out, mv)
		cur = hooks.Apply(in, cur, mv)
	}
	return out, total, nil
}

// SelectBest enumerates every valid kick of the given length and returns
// the one with the smallest summed cost, breaking ties by reservoir
// sampling (spec §4.8). Returns ErrNoValidKick if the neighborhood admits
// no sequence of that length.
func (k *Kicker[In, St, Mv]) SelectBest(length int, in In, st St, rng *rand.Rand) (Kick[Mv], costmodel.CostStructure, error) {
	if length < 1 {
		return nil, costmodel.CostStructure{}, ErrInvalidLength
	}
	reservoir := neighborhood.NewReservoir[candidate[Mv]](rng)
	have := false
	var held costmodel.CostStructure
	hooks := k.EX.Hooks()
	path := make(Kick[Mv], 0, length)

	var walk func(cur St, acc costmodel.CostStructure, depth int)
	walk = func(cur St, acc costmodel.CostStructure, depth int) {
		if depth == length {
			snapshot := make(Kick[Mv], len(path))
			copy(snapshot, path)
			cand := candidate[Mv]{kick: snapshot, cost: acc}
			cmp := compareCost(acc, held, have)
			reservoir.Offer(cand, cmp)
			if !have || cmp < 0 {
				held = acc
				have = true
			}
			return
		}
		mv, ok := hooks.FirstMove(in, cur)
		for ok {
			delta := k.EX.DeltaCost(in, cur, mv, k.Weights)
			next := hooks.Apply(in, cur, mv)
			path = append(path, mv)
			walk(next, acc.Add(delta), depth+1)
			path = path[:len(path)-1]
			mv, ok = hooks.NextMove(in, cur, mv)
		}
	}
	walk(st, costmodel.CostStructure{}, 0)

	best, found := reservoir.Best()
	if !found {
		return nil, costmodel.CostStructure{}, ErrNoValidKick
	}
	return best.kick, best.cost, nil
}

// SelectFirst enumerates kicks of the given length in nested
// FirstMove/NextMove order and returns the first one whose summed cost is
// strictly improving (spec §4.8). ok is false if none is found.
func (k *Kicker[In, St, Mv]) SelectFirst(length int, in In, st St) (Kick[Mv], costmodel.CostStructure, bool) {
	if length < 1 {
		return nil, costmodel.CostStructure{}, false
	}
	hooks := k.EX.Hooks()
	path := make(Kick[Mv], 0, length)

	var found Kick[Mv]
	var foundCost costmodel.CostStructure
	var ok bool

	var walk func(cur St, acc costmodel.CostStructure, depth int) bool
	walk = func(cur St, acc costmodel.CostStructure, depth int) bool {
		if depth == length {
			if acc.Less(costmodel.CostStructure{}) {
				found = make(Kick[Mv], len(path))
				copy(found, path)
				foundCost = acc
				return true
			}
			return false
		}
		mv, more := hooks.FirstMove(in, cur)
		for more {
			delta := k.EX.DeltaCost(in, cur, mv, k.Weights)
			next := hooks.Apply(in, cur, mv)
			path = append(path, mv)
			stop := walk(next, acc.Add(delta), depth+1)
			path = path[:len(path)-1]
			if stop {
				return true
			}
			mv, more = hooks.NextMove(in, cur, mv)
		}
		return false
	}
	ok = walk(st, costmodel.CostStructure{}, 0)
	return found, foundCost, ok
}

// Apply replays kick against st, mutating through each intermediate state
// in order, and returns the final state (spec §4.8).
func (k *Kicker[In, St, Mv]) Apply(in In, st St, kick Kick[Mv]) St {
	hooks := k.EX.Hooks()
	cur := st
	var i int
	for i = 0; i < len(kick); i++ {
		cur = hooks.Apply(in, cur, kick[i])
	}
	return cur
}

// compareCost mirrors neighborhood's private helper of the same shape:
// -1/0/1 comparing candidate to held, -1 unconditionally when nothing is
// held yet so the first candidate is always taken.
func compareCost(candidate, held costmodel.CostStructure, haveHeld bool) int {
	if !haveHeld {
		return -1
	}
	switch {
	case candidate.Less(held):
		return -1
	case held.Less(candidate):
		return 1
	default:
		return 0
	}
}
