package knapsack

import "github.com/solvecraft/localsearch/costmodel"

// ValueComponent is the soft objective -Σ Values[i]*Bits[i] (maximizing
// value by minimizing its negation), the literal toy objective -Σ x_i of
// this system's deterministic-seed convergence scenario when Values is
// nil. It contributes zero whenever Target is set: value-maximization and
// reach-a-target are alternate usage modes of this module, not meant to be
// combined into a single run.
type ValueComponent struct{}

func (ValueComponent) Name() string             { return "knapsack-value" }
func (ValueComponent) Weight() costmodel.CFtype { return 1 }
func (ValueComponent) Kind() costmodel.Kind     { return costmodel.Soft }

func (ValueComponent) Compute(in Input, st State) costmodel.CFtype {
	if in.Target != nil {
		return 0
	}
	var sum costmodel.CFtype
	var i int
	for i = 0; i < len(st.Bits); i++ {
		sum += costmodel.CFtype(in.value(i)) * costmodel.CFtype(st.Bits[i])
	}
	return costmodel.Stabilize(-sum)
}

// ValueDelta is ValueComponent's incremental counterpart.
type ValueDelta struct{}

func (ValueDelta) Name() string             { return ValueComponent{}.Name() }
func (ValueDelta) Weight() costmodel.CFtype { return ValueComponent{}.Weight() }
func (ValueDelta) Kind() costmodel.Kind     { return ValueComponent{}.Kind() }

func (ValueDelta) Compute(in Input, st State) costmodel.CFtype {
	return ValueComponent{}.Compute(in, st)
}

func (ValueDelta) Delta(in Input, st State, mv Move) costmodel.CFtype {
	if in.Target != nil {
		return 0
	}
	b := st.Bits[mv.Index]
	v := in.value(mv.Index)
	sign := costmodel.CFtype(2*b - 1)
	return costmodel.Stabilize(costmodel.CFtype(v) * sign)
}

// CapacityComponent is a hard feasibility term: the amount by which the
// chosen items' total weight exceeds Capacity, zero whenever Capacity is
// left at its zero value (the unconstrained toy scenarios).
type CapacityComponent struct{}

func (CapacityComponent) Name() string         { return "knapsack-capacity" }
func (CapacityComponent) Weight() costmodel.CFtype { return 1 }
func (CapacityComponent) Kind() costmodel.Kind  { return costmodel.Hard }

func (CapacityComponent) Compute(in Input, st State) costmodel.CFtype {
	if in.Capacity <= 0 {
		return 0
	}
	total := totalWeight(in, st)
	if total <= in.Capacity {
		return 0
	}
	return costmodel.Stabilize(costmodel.CFtype(total - in.Capacity))
}

// CapacityDelta is CapacityComponent's incremental counterpart.
type CapacityDelta struct{}

func (CapacityDelta) Name() string         { return CapacityComponent{}.Name() }
func (CapacityDelta) Weight() costmodel.CFtype { return CapacityComponent{}.Weight() }
func (CapacityDelta) Kind() costmodel.Kind  { return CapacityComponent{}.Kind() }

func (CapacityDelta) Compute(in Input, st State) costmodel.CFtype {
	return CapacityComponent{}.Compute(in, st)
}

func (CapacityDelta) Delta(in Input, st State, mv Move) costmodel.CFtype {
	if in.Capacity <= 0 {
		return 0
	}
	before := CapacityComponent{}.Compute(in, st)
	flipped := st.Clone()
	flipped.Bits[mv.Index] = 1 - flipped.Bits[mv.Index]
	after := CapacityComponent{}.Compute(in, flipped)
	return costmodel.Stabilize(after - before)
}

// totalWeight sums the weight of every selected item.
func totalWeight(in Input, st State) float64 {
	var total float64
	var i int
	for i = 0; i < len(st.Bits); i++ {
		if st.Bits[i] == 1 {
			total += in.weight(i)
		}
	}
	return total
}

// TargetComponent is the soft Hamming distance to Input.Target, used by
// this system's hill-climbing-termination scenario. It contributes zero
// whenever Target is nil.
type TargetComponent struct{}

func (TargetComponent) Name() string         { return "knapsack-target" }
func (TargetComponent) Weight() costmodel.CFtype { return 1 }
func (TargetComponent) Kind() costmodel.Kind  { return costmodel.Soft }

func (TargetComponent) Compute(in Input, st State) costmodel.CFtype {
	if in.Target == nil {
		return 0
	}
	var dist costmodel.CFtype
	var i int
	for i = 0; i < len(st.Bits); i++ {
		if st.Bits[i] != in.Target[i] {
			dist++
		}
	}
	return costmodel.Stabilize(dist)
}

// TargetDelta is TargetComponent's incremental counterpart.
type TargetDelta struct{}

func (TargetDelta) Name() string         { return TargetComponent{}.Name() }
func (TargetDelta) Weight() costmodel.CFtype { return TargetComponent{}.Weight() }
func (TargetDelta) Kind() costmodel.Kind  { return TargetComponent{}.Kind() }

func (TargetDelta) Compute(in Input, st State) costmodel.CFtype {
	return TargetComponent{}.Compute(in, st)
}

func (TargetDelta) Delta(in Input, st State, mv Move) costmodel.CFtype {
	if in.Target == nil {
		return 0
	}
	matched := st.Bits[mv.Index] == in.Target[mv.Index]
	if matched {
		return 1
	}
	return -1
}
