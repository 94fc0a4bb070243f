package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/solvecraft/localsearch/problems/tsp"
	"github.com/solvecraft/localsearch/runner"
	"github.com/stretchr/testify/require"
)

// square is a 4-city instance whose optimal tour is the unit square
// perimeter (cost 4), with the two diagonals available and costlier.
func square() tsp.Input {
	d := [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}
	return tsp.Input{Dist: d, Start: 0}
}

func TestInput_Validate(t *testing.T) {
	require.NoError(t, square().Validate())

	bad := square()
	bad.Dist[0][1] = 5 // breaks symmetry
	require.ErrorIs(t, bad.Validate(), tsp.ErrAsymmetry)
}

func TestLengthDelta_MatchesFullRecompute(t *testing.T) {
	in := square()
	st := tsp.State{Tour: []int{0, 2, 1, 3, 0}} // a crossed, suboptimal tour
	mv := tsp.Move{I: 1, K: 2}                  // reverse [2,1] -> [1,2]

	before := tsp.LengthComponent{}.Compute(in, st)
	hooks := tsp.Hooks{}
	after := tsp.LengthComponent{}.Compute(in, hooks.Apply(in, st, mv))
	delta := tsp.LengthDelta{}.Delta(in, st, mv)

	require.InDelta(t, float64(after-before), float64(delta), 1e-9)
}

func TestHooks_EnumerationCoversAllPairs(t *testing.T) {
	in := square()
	st := tsp.State{Tour: []int{0, 1, 2, 3, 0}}
	hooks := tsp.Hooks{}

	var seen []tsp.Move
	mv, ok := hooks.FirstMove(in, st)
	for ok {
		seen = append(seen, mv)
		mv, ok = hooks.NextMove(in, st, mv)
	}

	// n=4: valid pairs are (1,2),(1,3),(2,3).
	require.Len(t, seen, 3)
	require.Contains(t, seen, tsp.Move{I: 1, K: 2})
	require.Contains(t, seen, tsp.Move{I: 1, K: 3})
	require.Contains(t, seen, tsp.Move{I: 2, K: 3})
}

func TestSteepestDescent_FindsOptimalSquareTour(t *testing.T) {
	in := square()
	sm, ex := tsp.NewExplorer()
	r := &runner.Runner[tsp.Input, tsp.State, tsp.Move]{SM: sm, EX: ex, MaxEvaluations: 500}

	start := tsp.State{Tour: []int{0, 2, 1, 3, 0}}
	best, cost, _ := r.Go(&runner.SteepestDescent[tsp.Input, tsp.State, tsp.Move]{}, in, start, 1)

	require.NoError(t, tsp.ValidateTour(best.Tour, 4, 0))
	require.InDelta(t, 4.0, cost.Total, 1e-9)
}

func TestGreedyState_ProducesValidTour(t *testing.T) {
	in := square()
	rng := rand.New(rand.NewSource(2))
	st, err := tsp.Problem{}.GreedyState(in, 0.2, 0, rng)

	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(st.Tour, 4, 0))
}
