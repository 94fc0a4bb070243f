package anneal

import (
	"math"
	"math/rand"

	"github.com/solvecraft/localsearch/costmodel"
)

// metropolisAccept reports whether a candidate move with the given delta
// total should be accepted at temperature: unconditionally if delta is
// non-positive, else with probability exp(-delta/temperature) (spec
// §4.5).
func metropolisAccept(delta costmodel.CFtype, temperature float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temperature <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(-float64(delta)/temperature)
}

// cool applies one multiplicative cooling step (spec §4.5: temperature *=
// cooling_rate, 0 < cooling_rate < 1).
func cool(temperature, rate float64) float64 {
	return temperature * rate
}

// estimateStartTemperature implements a simplified van Laarhoven-Aarts
// style heuristic (spec §4.5 "start temperature heuristic"): sample
// worsening candidate moves from the starting state and pick a
// temperature such that a move of average worsening magnitude would be
// accepted with probability chi0.
//
// Complexity: O(len(worseningDeltas)).
func estimateStartTemperature(worseningDeltas []costmodel.CFtype, chi0 float64) float64 {
	if len(worseningDeltas) == 0 {
		return 1
	}
	var sum costmodel.CFtype
	var i int
	for i = 0; i < len(worseningDeltas); i++ {
		sum += worseningDeltas[i]
	}
	avg := float64(sum) / float64(len(worseningDeltas))
	if avg <= 0 {
		return 1
	}
	if chi0 <= 0 || chi0 >= 1 {
		chi0 = 0.8
	}
	return -avg / math.Log(chi0)
}
