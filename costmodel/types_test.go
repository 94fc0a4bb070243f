package costmodel_test

import (
	"testing"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/stretchr/testify/require"
)

// constComponent is a trivial CostComponent returning a fixed value,
// used to exercise Aggregate's decomposition invariants in isolation.
type constComponent struct {
	name   string
	weight costmodel.CFtype
	kind   costmodel.Kind
	value  costmodel.CFtype
}

func (c constComponent) Name() string                                       { return c.name }
func (c constComponent) Weight() costmodel.CFtype                           { return c.weight }
func (c constComponent) Kind() costmodel.Kind                               { return c.kind }
func (c constComponent) Compute(in struct{}, st struct{}) costmodel.CFtype { return c.value }

// TestAggregate_Decomposition verifies Testable property 2 (spec §8):
// total == HardWeight*violations + objective, and each partial sum equals
// the sum over hard/soft indices of All.
func TestAggregate_Decomposition(t *testing.T) {
	saved := costmodel.HardWeight
	defer func() { costmodel.HardWeight = saved }()
	costmodel.HardWeight = 1000

	components := []costmodel.CostComponent[struct{}, struct{}]{
		constComponent{name: "hard1", weight: 1, kind: costmodel.Hard, value: 2},
		constComponent{name: "soft1", weight: 3, kind: costmodel.Soft, value: 4},
		constComponent{name: "hard2", weight: 2, kind: costmodel.Hard, value: 1},
	}

	cs := costmodel.Aggregate(struct{}{}, struct{}{}, components, nil)

	require.Equal(t, costmodel.CFtype(4), cs.Violations) // 1*2 + 2*1
	require.Equal(t, costmodel.CFtype(12), cs.Objective) // 3*4
	require.Equal(t, costmodel.CFtype(1000*4+12), cs.Total)
	require.Len(t, cs.All, 3)
	require.Equal(t, costmodel.CFtype(2), cs.All[0])
	require.Equal(t, costmodel.CFtype(12), cs.All[1])
	require.Equal(t, costmodel.CFtype(2), cs.All[2])
}

// TestCostStructure_OrderingTotality verifies Testable property 3: for any
// two CostStructures exactly one of <, ==, > holds.
func TestCostStructure_OrderingTotality(t *testing.T) {
	a := costmodel.CostStructure{Total: 10}
	b := costmodel.CostStructure{Total: 12}
	c := costmodel.CostStructure{Total: 10 + 1e-13} // within tolerance of a

	require.True(t, a.Less(b))
	require.False(t, a.Equal(b))
	require.False(t, a.Greater(b))

	require.True(t, a.Equal(c))
	require.False(t, a.Less(c))
	require.False(t, a.Greater(c))
}

// TestCostStructure_AddSub_GrowsToLongerOperand verifies spec §3's +=/-=
// invariant: All grows to the max of the two lengths, zero-padded.
func TestCostStructure_AddSub_GrowsToLongerOperand(t *testing.T) {
	a := costmodel.CostStructure{All: []costmodel.CFtype{1, 2}}
	b := costmodel.CostStructure{All: []costmodel.CFtype{10, 20, 30}}

	sum := a.Add(b)
	require.Equal(t, []costmodel.CFtype{11, 22, 30}, sum.All)

	diff := b.Sub(a)
	require.Equal(t, []costmodel.CFtype{9, 18, 30}, diff.All)
}

// TestCostStructure_WeightedOrdering verifies that ordering uses Weighted
// only when both operands are weighted, else falls back to Total.
func TestCostStructure_WeightedOrdering(t *testing.T) {
	a := costmodel.CostStructure{Total: 5, Weighted: 100, IsWeighted: true}
	b := costmodel.CostStructure{Total: 5, Weighted: 1, IsWeighted: true}
	require.True(t, b.Less(a)) // compares Weighted: 1 < 100

	c := costmodel.CostStructure{Total: 1} // not weighted
	require.True(t, c.Less(a))             // falls back to Total: 1 < 5
}
