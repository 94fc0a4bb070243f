package tsp

import (
	"math/rand"
	"sort"

	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/statemanager"
)

// Problem implements statemanager.Problem[Input, State].
type Problem struct{}

// RandomState returns a uniformly random tour rotated to start at
// Input.Start (spec §4.1), adapted from tsp/tour.go's
// MakeTourFromPermutation plus neighborhood.PermRange for the shuffle.
func (Problem) RandomState(in Input, rng *rand.Rand) (State, error) {
	n := in.n()
	perm := neighborhood.PermRange(n, rng)
	return State{Tour: rotateToStart(perm, in.Start)}, nil
}

// GreedyState builds a tour by nearest-neighbor construction with a
// restricted candidate list (RCL): at each step the next vertex is drawn
// uniformly from among the k nearest unvisited vertices, or from those
// within alpha of the nearest unvisited vertex's distance when k<=0
// (spec §4.9 GRASP's (alpha, k) parameters; classic RCL construction, no
// direct teacher analogue since tsp/ has no greedy/GRASP builder).
func (p Problem) GreedyState(in Input, alpha float64, k int, rng *rand.Rand) (State, error) {
	n := in.n()
	visited := make([]bool, n)
	tour := make([]int, n+1)
	tour[0] = in.Start
	visited[in.Start] = true

	cur := in.Start
	var step int
	for step = 1; step < n; step++ {
		candidates := make([]int, 0, n-step)
		var v int
		for v = 0; v < n; v++ {
			if !visited[v] {
				candidates = append(candidates, v)
			}
		}
		sort.Slice(candidates, func(a, b int) bool {
			return in.Dist[cur][candidates[a]] < in.Dist[cur][candidates[b]]
		})

		rclSize := len(candidates)
		switch {
		case k > 0 && k < rclSize:
			rclSize = k
		case k <= 0 && alpha > 0:
			best := in.Dist[cur][candidates[0]]
			threshold := best * (1 + alpha)
			rclSize = 1
			for rclSize < len(candidates) && in.Dist[cur][candidates[rclSize]] <= threshold {
				rclSize++
			}
		}

		next := candidates[rng.Intn(rclSize)]
		tour[step] = next
		visited[next] = true
		cur = next
	}
	tour[n] = in.Start

	return State{Tour: tour}, nil
}

// StateDistance is unimplemented: this module has no natural metric
// between two tours beyond the framework's own cost comparison.
func (Problem) StateDistance(in Input, a, b State) (int, error) {
	return 0, statemanager.ErrNotImplemented
}

// CheckConsistency verifies the closed-cycle invariants.
func (Problem) CheckConsistency(in Input, st State) bool {
	return ValidateTour(st.Tour, in.n(), in.Start) == nil
}

// rotateToStart returns a closed tour built from perm, rotated so start
// is first, adapted from tsp/tour.go's RotateTourToStart.
func rotateToStart(perm []int, start int) []int {
	n := len(perm)
	pivot := 0
	var i int
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}
	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = perm[(pivot+i)%n]
	}
	out[n] = start
	return out
}
