package anneal

import (
	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/runner"
)

// SimulatedAnnealing is the base variant (spec §4.5): stops once the
// temperature falls to MinTemperature. A fixed number of candidate moves
// is sampled per temperature (MaxNeighborsSampled), cooling once that
// count — or MaxNeighborsAccepted, whichever comes first — is reached.
//
// Grounded on original_source's simulatedannealing.hh (min-temperature
// stop criterion) composed with the shared Metropolis/cooling mechanics
// in base.go.
type SimulatedAnnealing[In, St any, Mv costmodel.Move[Mv]] struct {
	// StartTemperature seeds the schedule; <=0 triggers the van
	// Laarhoven-Aarts-style estimate (SampleSize random moves, Chi0
	// target initial acceptance).
	StartTemperature float64
	MinTemperature   float64
	CoolingRate      float64 // 0 < rate < 1

	MaxNeighborsSampled  int
	MaxNeighborsAccepted int // 0 means "same as MaxNeighborsSampled"

	SampleSize int     // moves sampled to estimate StartTemperature
	Chi0       float64 // target initial acceptance ratio, default 0.8

	temperature       float64
	neighborsSampled  int
	neighborsAccepted int
}

func (s *SimulatedAnnealing[In, St, Mv]) InitializeRun(r *runner.Runner[In, St, Mv]) {
	s.temperature = s.resolveStartTemperature(r)
	s.neighborsSampled = 0
	s.neighborsAccepted = 0
	if s.MaxNeighborsAccepted <= 0 {
		s.MaxNeighborsAccepted = s.MaxNeighborsSampled
	}
}

// resolveStartTemperature returns StartTemperature verbatim when set,
// else samples SampleSize random moves from the starting state and
// derives a temperature via estimateStartTemperature.
func (s *SimulatedAnnealing[In, St, Mv]) resolveStartTemperature(r *runner.Runner[In, St, Mv]) float64 {
	if s.StartTemperature > 0 {
		return s.StartTemperature
	}
	n := s.SampleSize
	if n <= 0 {
		n = 30
	}
	var worsening []costmodel.CFtype
	var i int
	for i = 0; i < n; i++ {
		mv, err := r.EX.RandomMove(r.In(), r.CurrentState(), r.RNG())
		if err != nil {
			continue
		}
		delta := r.EX.DeltaCost(r.In(), r.CurrentState(), mv, r.Weights)
		if delta.Total > 0 {
			worsening = append(worsening, delta.Total)
		}
	}
	return estimateStartTemperature(worsening, s.Chi0)
}

func (s *SimulatedAnnealing[In, St, Mv]) SelectMove(r *runner.Runner[In, St, Mv]) (costmodel.EvaluatedMove[Mv], int, bool) {
	mv, err := r.EX.RandomMove(r.In(), r.CurrentState(), r.RNG())
	if err != nil {
		return costmodel.EvaluatedMove[Mv]{}, 0, false
	}
	delta := r.EX.DeltaCost(r.In(), r.CurrentState(), mv, r.Weights)
	return costmodel.EvaluatedMove[Mv]{Move: mv, Cost: delta, IsValid: true}, 1, true
}

func (s *SimulatedAnnealing[In, St, Mv]) AcceptableMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv]) bool {
	return metropolisAccept(mv.Cost.Total, s.temperature, r.RNG())
}

// CompleteMove updates the per-temperature counters and cools once either
// threshold is reached (spec §4.5).
func (s *SimulatedAnnealing[In, St, Mv]) CompleteMove(r *runner.Runner[In, St, Mv], mv costmodel.EvaluatedMove[Mv], accepted bool) {
	s.neighborsSampled++
	if accepted {
		s.neighborsAccepted++
	}
	if s.neighborsSampled >= s.MaxNeighborsSampled || s.neighborsAccepted >= s.MaxNeighborsAccepted {
		s.temperature = cool(s.temperature, s.CoolingRate)
		s.neighborsSampled = 0
		s.neighborsAccepted = 0
	}
}

// StopCriterion ends the run once the temperature reaches MinTemperature
// (spec §4.5).
func (s *SimulatedAnnealing[In, St, Mv]) StopCriterion(r *runner.Runner[In, St, Mv]) bool {
	return s.temperature <= s.MinTemperature
}

// Temperature returns the current temperature, for diagnostics/observers.
func (s *SimulatedAnnealing[In, St, Mv]) Temperature() float64 { return s.temperature }
