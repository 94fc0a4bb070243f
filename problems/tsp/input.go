package tsp

import "errors"

// Sentinel errors, grouped per the teacher's tsp/types.go convention.
var (
	// ErrNonSquare indicates Dist is not a square matrix.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry indicates Dist[i][j] != Dist[j][i].
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrTooSmall indicates fewer than 4 vertices, too few for a 2-opt
	// neighborhood to be non-empty. ValidateTour also returns it for a
	// tour that breaks any of its closed-tour checks.
	ErrTooSmall = errors.New("tsp: need at least 4 vertices")

	// ErrStartOutOfRange indicates Input.Start is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Input is the read-only problem instance (spec §3): a symmetric distance
// matrix and the fixed start/end vertex of the tour.
type Input struct {
	Dist  [][]float64
	Start int
}

// n returns the vertex count.
func (in Input) n() int { return len(in.Dist) }

// Validate checks the structural invariants every operation assumes:
// square, non-negative, symmetric, and large enough for 2-opt to have a
// non-empty neighborhood (spec §4.1's RandomState/GreedyState "must
// satisfy the problem's structural invariants").
func (in Input) Validate() error {
	n := in.n()
	if n < 4 {
		return ErrTooSmall
	}
	if in.Start < 0 || in.Start >= n {
		return ErrStartOutOfRange
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(in.Dist[i]) != n {
			return ErrNonSquare
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if in.Dist[i][j] < 0 {
				return ErrNegativeWeight
			}
			if in.Dist[i][j] != in.Dist[j][i] {
				return ErrAsymmetry
			}
		}
	}
	return nil
}
