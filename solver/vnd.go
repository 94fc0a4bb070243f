package solver

import (
	"time"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/kicker"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/statemanager"
)

// VND sequences kicks of increasing length against an initial state,
// applying kicker.Kicker.Descend's escalation rule directly (spec §4.9
// "VND solver": "sequential application of kickers of increasing length as
// in §4.8").
type VND[In, St costmodel.State[St], Mv costmodel.Move[Mv]] struct {
	SM     *statemanager.StateManager[In, St]
	Kicker *kicker.Kicker[In, St, Mv]

	// MaxK is the greatest kick length the descent will escalate to
	// (spec §6 VND solver's max_k parameter).
	MaxK int
}

// Solve constructs a random initial state and descends from it.
func (v *VND[In, St, Mv]) Solve(in In, seed int64) (Result[St], error) {
	start, err := v.SM.RandomState(in, neighborhood.RNGFromSeed(seed))
	if err != nil {
		var zero Result[St]
		return zero, err
	}
	return v.Resolve(in, start), nil
}

// Resolve descends from a caller-supplied starting state.
func (v *VND[In, St, Mv]) Resolve(in In, start St) Result[St] {
	began := time.Now()
	cost := v.SM.Cost(in, start, nil)
	final, _, _ := v.Kicker.Descend(in, start, v.MaxK, cost)
	finalCost := v.SM.Cost(in, final, nil)
	return Result[St]{State: final, Cost: finalCost, RunningTime: time.Since(began)}
}
