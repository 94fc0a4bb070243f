package tsp

import (
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/statemanager"
)

// NewExplorer wires a StateManager and Explorer for this problem module:
// the length cost component plus its delta counterpart, and the 2-opt
// neighborhood Hooks (spec §4.1, §4.2).
func NewExplorer() (*statemanager.StateManager[Input, State], *neighborhood.Explorer[Input, State, Move]) {
	sm := statemanager.New[Input, State](Problem{})
	sm.AddCostComponent(LengthComponent{})

	ex := neighborhood.New[Input, State, Move](sm, Hooks{})
	ex.RegisterDelta(LengthDelta{})

	return sm, ex
}
