package costmodel

import "math"

// roundScale controls cost stabilization precision (1e-9), matching the
// teacher's tsp.round1e9. It absorbs tiny floating-point drift accumulated
// by repeated delta updates without affecting algorithmic correctness.
const roundScale = 1e9

// Stabilize rounds x to 1e-9 absolute precision.
//
// Complexity: O(1).
func Stabilize(x CFtype) CFtype {
	return math.Round(x*roundScale) / roundScale
}

// epsBase is the minimal absolute tolerance used by Stabilize-aware
// comparisons once the scaled-magnitude tolerance falls below it (operand
// magnitudes below about 4.5e6). Per design note (d), tolerance is machine
// epsilon scaled by operand magnitude, with epsBase as its floor.
const epsBase = 1e-9

// machineEpsilon is the float64 machine epsilon, 2^-52.
const machineEpsilon = 0x1p-52

// tolerance returns the comparison tolerance for a pair of operands: machine
// epsilon scaled by the larger operand's magnitude, floored at epsBase so
// comparisons near zero remain meaningful.
//
// Complexity: O(1).
func tolerance(a, b CFtype) CFtype {
	mag := math.Abs(float64(a))
	if m := math.Abs(float64(b)); m > mag {
		mag = m
	}
	t := mag * machineEpsilon
	if t < epsBase {
		t = epsBase
	}
	return CFtype(t)
}

// ApproxEqual reports whether a and b are equal within the scaled tolerance.
//
// Complexity: O(1).
func ApproxEqual(a, b CFtype) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance(a, b)
}

// ApproxLess reports whether a is strictly less than b, beyond tolerance.
//
// Complexity: O(1).
func ApproxLess(a, b CFtype) bool {
	if ApproxEqual(a, b) {
		return false
	}
	return a < b
}
