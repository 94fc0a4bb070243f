package knapsack

import (
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/statemanager"
)

// NewExplorer wires a StateManager and Explorer for this problem module:
// all three cost components (value, capacity, target) plus their delta
// counterparts, and the flip neighborhood's Hooks (spec §4.1, §4.2).
// Components that don't apply to a given Input (no Capacity, no Target)
// contribute zero, so registering all three unconditionally is safe.
func NewExplorer() (*statemanager.StateManager[Input, State], *neighborhood.Explorer[Input, State, Move]) {
	sm := statemanager.New[Input, State](Problem{})
	sm.AddCostComponent(ValueComponent{})
	sm.AddCostComponent(CapacityComponent{})
	sm.AddCostComponent(TargetComponent{})

	ex := neighborhood.New[Input, State, Move](sm, Hooks{})
	ex.RegisterDelta(ValueDelta{})
	ex.RegisterDelta(CapacityDelta{})
	ex.RegisterDelta(TargetDelta{})

	return sm, ex
}
