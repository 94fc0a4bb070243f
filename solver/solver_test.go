package solver_test

import (
	"math/rand"
	"testing"

	"github.com/solvecraft/localsearch/costmodel"
	"github.com/solvecraft/localsearch/kicker"
	"github.com/solvecraft/localsearch/neighborhood"
	"github.com/solvecraft/localsearch/runner"
	"github.com/solvecraft/localsearch/solver"
	"github.com/solvecraft/localsearch/statemanager"
	"github.com/stretchr/testify/require"
)

type flipState struct{ bits []int }

func (s flipState) Clone() flipState {
	out := make([]int, len(s.bits))
	copy(out, s.bits)
	return flipState{bits: out}
}
func (s flipState) Equal(other flipState) bool {
	if len(s.bits) != len(other.bits) {
		return false
	}
	for i := range s.bits {
		if s.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

type flipMove struct{ Index int }

func (m flipMove) Equal(other flipMove) bool   { return m.Index == other.Index }
func (m flipMove) Less(other flipMove) bool    { return m.Index < other.Index }
func (m flipMove) Inverts(other flipMove) bool { return m.Index == other.Index }

// flipProblem's GreedyState returns the all-ones state directly, standing
// in for a problem-specific greedy heuristic (GRASP's RCL construction
// itself is out of scope here; only the restart/keep-best orchestration
// is under test).
type flipProblem struct{ n int }

func (p flipProblem) RandomState(in struct{}, rng *rand.Rand) (flipState, error) {
	return flipState{bits: make([]int, p.n)}, nil
}
func (p flipProblem) GreedyState(in struct{}, alpha float64, k int, rng *rand.Rand) (flipState, error) {
	bits := make([]int, p.n)
	for i := range bits {
		bits[i] = 1
	}
	return flipState{bits: bits}, nil
}
func (p flipProblem) StateDistance(in struct{}, a, b flipState) (int, error) {
	return 0, statemanager.ErrNotImplemented
}
func (p flipProblem) CheckConsistency(in struct{}, st flipState) bool { return true }

type flipHooks struct{ n int }

func (h flipHooks) RandomMove(in struct{}, st flipState, rng *rand.Rand) (flipMove, error) {
	return flipMove{Index: rng.Intn(h.n)}, nil
}
func (h flipHooks) FirstMove(in struct{}, st flipState) (flipMove, bool) {
	if h.n == 0 {
		return flipMove{}, false
	}
	return flipMove{Index: 0}, true
}
func (h flipHooks) NextMove(in struct{}, st flipState, cur flipMove) (flipMove, bool) {
	if cur.Index+1 >= h.n {
		return flipMove{}, false
	}
	return flipMove{Index: cur.Index + 1}, true
}
func (h flipHooks) Apply(in struct{}, st flipState, mv flipMove) flipState {
	out := st.Clone()
	out.bits[mv.Index] = 1 - out.bits[mv.Index]
	return out
}
func (h flipHooks) Modality() int { return 1 }

type negSumComponent struct{}

func (negSumComponent) Name() string             { return "neg-sum" }
func (negSumComponent) Weight() costmodel.CFtype { return 1 }
func (negSumComponent) Kind() costmodel.Kind     { return costmodel.Soft }
func (negSumComponent) Compute(in struct{}, st flipState) costmodel.CFtype {
	var sum costmodel.CFtype
	for _, b := range st.bits {
		sum += costmodel.CFtype(b)
	}
	return -sum
}

func setup(n int) (*statemanager.StateManager[struct{}, flipState], *neighborhood.Explorer[struct{}, flipState, flipMove]) {
	sm := statemanager.New[struct{}, flipState](flipProblem{n: n})
	sm.AddCostComponent(negSumComponent{})
	ex := neighborhood.New[struct{}, flipState, flipMove](sm, flipHooks{n: n})
	return sm, ex
}

func TestSimpleLocalSearch_SolveFindsOptimum(t *testing.T) {
	sm, ex := setup(5)
	r := &runner.Runner[struct{}, flipState, flipMove]{SM: sm, EX: ex, MaxEvaluations: 200}
	s := &solver.SimpleLocalSearch[struct{}, flipState, flipMove]{
		Runner:   r,
		Strategy: &runner.SteepestDescent[struct{}, flipState, flipMove]{},
	}

	result, err := s.Solve(struct{}{}, 1)

	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1, 1}, result.State.bits)
	require.InDelta(t, -5.0, result.Cost.Total, 1e-9)
}

func TestTokenRing_CyclesStagesAndTracksGlobalBest(t *testing.T) {
	sm, ex := setup(5)
	r1 := &runner.Runner[struct{}, flipState, flipMove]{SM: sm, EX: ex, MaxEvaluations: 1}
	r2 := &runner.Runner[struct{}, flipState, flipMove]{SM: sm, EX: ex, MaxEvaluations: 200}

	ring := &solver.TokenRing[struct{}, flipState, flipMove]{
		Stages: []solver.Stage[struct{}, flipState, flipMove]{
			{Runner: r1, Strategy: &runner.SteepestDescent[struct{}, flipState, flipMove]{}},
			{Runner: r2, Strategy: &runner.SteepestDescent[struct{}, flipState, flipMove]{}},
		},
		MaxRounds:     3,
		MaxIdleRounds: 2,
	}

	start := flipState{bits: make([]int, 5)}
	result := ring.Solve(struct{}{}, start, 1)

	require.Equal(t, []int{1, 1, 1, 1, 1}, result.State.bits)
	require.InDelta(t, -5.0, result.Cost.Total, 1e-9)
}

func TestGRASP_KeepsBestAcrossRestarts(t *testing.T) {
	sm, ex := setup(4)
	r := &runner.Runner[struct{}, flipState, flipMove]{SM: sm, EX: ex, MaxEvaluations: 50}

	g := &solver.GRASP[struct{}, flipState, flipMove]{
		Runner:   r,
		Strategy: &runner.SteepestDescent[struct{}, flipState, flipMove]{},
		Restarts: 3,
		Alpha:    0.5,
		K:        1,
	}

	result, err := g.Solve(struct{}{}, 7)

	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1}, result.State.bits)
	require.InDelta(t, -4.0, result.Cost.Total, 1e-9)
}

// plateauState/plateauHooks reproduce the S6 kicker-escape fixture: no
// single flip improves from (0,0), but a length-2 kick does.
type plateauState struct{ bits [2]int }

func (s plateauState) Clone() plateauState { return s }
func (s plateauState) Equal(other plateauState) bool {
	return s.bits == other.bits
}

type plateauMove struct{ Index int }

func (m plateauMove) Equal(other plateauMove) bool { return m.Index == other.Index }
func (m plateauMove) Less(other plateauMove) bool  { return m.Index < other.Index }

type plateauProblem struct{}

func (plateauProblem) RandomState(in struct{}, rng *rand.Rand) (plateauState, error) {
	return plateauState{}, nil
}
func (plateauProblem) GreedyState(in struct{}, alpha float64, k int, rng *rand.Rand) (plateauState, error) {
	return plateauState{}, statemanager.ErrNotImplemented
}
func (plateauProblem) StateDistance(in struct{}, a, b plateauState) (int, error) {
	return 0, statemanager.ErrNotImplemented
}
func (plateauProblem) CheckConsistency(in struct{}, st plateauState) bool { return true }

type plateauHooks struct{}

func (plateauHooks) RandomMove(in struct{}, st plateauState, rng *rand.Rand) (plateauMove, error) {
	return plateauMove{Index: rng.Intn(2)}, nil
}
func (plateauHooks) FirstMove(in struct{}, st plateauState) (plateauMove, bool) {
	return plateauMove{Index: 0}, true
}
func (plateauHooks) NextMove(in struct{}, st plateauState, cur plateauMove) (plateauMove, bool) {
	if cur.Index == 0 {
		return plateauMove{Index: 1}, true
	}
	return plateauMove{}, false
}
func (plateauHooks) Apply(in struct{}, st plateauState, mv plateauMove) plateauState {
	out := st
	out.bits[mv.Index] = 1 - out.bits[mv.Index]
	return out
}
func (plateauHooks) Modality() int { return 1 }

type plateauComponent struct{}

func (plateauComponent) Name() string             { return "plateau" }
func (plateauComponent) Weight() costmodel.CFtype { return 1 }
func (plateauComponent) Kind() costmodel.Kind     { return costmodel.Soft }
func (plateauComponent) Compute(in struct{}, st plateauState) costmodel.CFtype {
	if st.bits[0] == 1 && st.bits[1] == 1 {
		return 0
	}
	return 3
}

func TestVND_EscapesPlateauWithLengthTwoKick(t *testing.T) {
	sm := statemanager.New[struct{}, plateauState](plateauProblem{})
	sm.AddCostComponent(plateauComponent{})
	ex := neighborhood.New[struct{}, plateauState, plateauMove](sm, plateauHooks{})
	k := kicker.New[struct{}, plateauState, plateauMove](ex, nil)

	v := &solver.VND[struct{}, plateauState, plateauMove]{SM: sm, Kicker: k, MaxK: 2}

	result := v.Resolve(struct{}{}, plateauState{bits: [2]int{0, 0}})

	require.Equal(t, [2]int{1, 1}, result.State.bits)
	require.InDelta(t, 0.0, result.Cost.Total, 1e-9)
}
