package costmodel

// Aggregate computes the CostStructure for st under in by iterating the
// registered components in order (spec §4.1 StateManager.cost).
//
// If weights is non-nil, Weighted is filled using weights[i] in place of
// each component's own Weight() and IsWeighted is set to true; weights
// shorter than components is padded with each component's own weight.
//
// Complexity: O(len(components)) calls to Compute, each component-defined.
func Aggregate[In, St any](in In, st St, components []CostComponent[In, St], weights []CFtype) CostStructure {
	out := CostStructure{All: make([]CFtype, len(components))}
	if weights != nil {
		out.IsWeighted = true
	}

	var i int
	for i = 0; i < len(components); i++ {
		cc := components[i]
		raw := cc.Compute(in, st)
		weighted := cc.Weight() * raw
		out.All[i] = Stabilize(weighted)

		switch cc.Kind() {
		case Hard:
			out.Violations = Stabilize(out.Violations + weighted)
		case Soft:
			out.Objective = Stabilize(out.Objective + weighted)
		}

		if weights != nil {
			w := cc.Weight()
			if i < len(weights) {
				w = weights[i]
			}
			out.Weighted = Stabilize(out.Weighted + w*raw)
		}
	}

	out.Total = Stabilize(HardWeight*out.Violations + out.Objective)
	return out
}

// AggregateDelta computes the delta CostStructure for applying mv to st
// under in, by summing each registered delta component's incremental
// contribution. A component with no delta implementation present in
// deltas is skipped by the caller (neighborhood.Explorer falls back to a
// full recomputation for it; see spec §4.2).
//
// Complexity: O(len(deltas)) calls to Delta.
func AggregateDelta[In, St, Mv any](in In, st St, mv Mv, deltas []DeltaCostComponent[In, St, Mv], weights []CFtype) CostStructure {
	out := CostStructure{All: make([]CFtype, len(deltas))}
	if weights != nil {
		out.IsWeighted = true
	}

	var i int
	for i = 0; i < len(deltas); i++ {
		dc := deltas[i]
		rawDelta := dc.Delta(in, st, mv)
		weightedDelta := dc.Weight() * rawDelta
		out.All[i] = Stabilize(weightedDelta)

		switch dc.Kind() {
		case Hard:
			out.Violations = Stabilize(out.Violations + weightedDelta)
		case Soft:
			out.Objective = Stabilize(out.Objective + weightedDelta)
		}

		if weights != nil {
			w := dc.Weight()
			if i < len(weights) {
				w = weights[i]
			}
			out.Weighted = Stabilize(out.Weighted + w*rawDelta)
		}
	}

	out.Total = Stabilize(HardWeight*out.Violations + out.Objective)
	return out
}
