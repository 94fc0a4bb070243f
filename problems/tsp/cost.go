package tsp

import "github.com/solvecraft/localsearch/costmodel"

// LengthComponent is the tour's total edge length: the sole cost
// component of this problem module (spec §3). Adapted from
// tsp/cost.go's TourCost.
type LengthComponent struct{}

func (LengthComponent) Name() string             { return "tour-length" }
func (LengthComponent) Weight() costmodel.CFtype { return 1 }
func (LengthComponent) Kind() costmodel.Kind     { return costmodel.Soft }

func (LengthComponent) Compute(in Input, st State) costmodel.CFtype {
	var sum costmodel.CFtype
	var i int
	for i = 0; i < len(st.Tour)-1; i++ {
		sum += costmodel.CFtype(in.Dist[st.Tour[i]][st.Tour[i+1]])
	}
	return costmodel.Stabilize(sum)
}

// LengthDelta is LengthComponent's incremental counterpart for a 2-opt
// move: only the two boundary arcs around the reversed segment change,
// the segment's own internal arcs are unaffected since reversal preserves
// adjacency within it (spec §3 DeltaCostComponent contract). Adapted from
// tsp/two_opt.go's symmetric 2-opt delta formula:
//
//	Δ = w(a,c) + w(b,d) - w(a,b) - w(c,d)
//
// where a=Tour[i-1], b=Tour[i], c=Tour[k], d=Tour[k+1].
type LengthDelta struct{}

func (LengthDelta) Name() string             { return "tour-length" }
func (LengthDelta) Weight() costmodel.CFtype { return 1 }
func (LengthDelta) Kind() costmodel.Kind     { return costmodel.Soft }

func (LengthDelta) Compute(in Input, st State) costmodel.CFtype {
	return LengthComponent{}.Compute(in, st)
}

func (LengthDelta) Delta(in Input, st State, mv Move) costmodel.CFtype {
	tour := st.Tour
	a, b := tour[mv.I-1], tour[mv.I]
	c, d := tour[mv.K], tour[mv.K+1]
	removed := in.Dist[a][b] + in.Dist[c][d]
	added := in.Dist[a][c] + in.Dist[b][d]
	return costmodel.Stabilize(costmodel.CFtype(added - removed))
}
