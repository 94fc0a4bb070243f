package kicker

import "github.com/solvecraft/localsearch/costmodel"

// Descend runs Variable-Neighborhood Descent from st: at kick length
// ℓ = 1, 2, ..., MaxK it looks for the first strictly improving kick of
// that length; the first one found is applied and ℓ resets to 1; finding
// none at a given length advances ℓ; the descent stops once ℓ exceeds
// maxK or currentCost reaches the zero lower bound (spec §4.8).
//
// Returns the resulting state, the total cost delta accumulated across
// every applied kick (always <= 0), and the number of kicks applied.
func (k *Kicker[In, St, Mv]) Descend(in In, st St, maxK int, currentCost costmodel.CostStructure) (St, costmodel.CostStructure, int) {
	cur := st
	cost := currentCost
	total := costmodel.CostStructure{}
	applied := 0

	length := 1
	for length <= maxK {
		if cost.IsZero() {
			break
		}
		kick, delta, ok := k.SelectFirst(length, in, cur)
		if !ok {
			length++
			continue
		}
		cur = k.Apply(in, cur, kick)
		cost = cost.Add(delta)
		total = total.Add(delta)
		applied++
		length = 1
	}
	return cur, total, applied
}
