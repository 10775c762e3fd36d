package sampling_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
	"github.com/Pardoxa/net-ensembles-sub000/histogram"
	"github.com/Pardoxa/net-ensembles-sub000/sampling"
)

func TestFromWLRejectsUninitializedWL(t *testing.T) {
	e := ensemble.NewER(6, identity, 3.0, ensemble.WithSeed(31))
	hist, err := histogram.NewFastInclusive[int](0, 15)
	require.NoError(t, err)
	wl, err := sampling.NewWangLandauAdaptive[int](0.05, e, rand.New(rand.NewSource(32)), 2, 1, 3, 1, 0.2, hist, 5)
	require.NoError(t, err)

	_, err = sampling.FromWL[int](wl, 2)
	require.ErrorIs(t, err, sampling.ErrInvalidWangLandau)
}

func TestFromWLCarriesOverLogDensityAndStepGoal(t *testing.T) {
	e := ensemble.NewER(6, identity, 3.0, ensemble.WithSeed(33))
	hist, err := histogram.NewFastInclusive[int](0, 15)
	require.NoError(t, err)
	wl, err := sampling.NewWangLandauAdaptive[int](0.05, e, rand.New(rand.NewSource(34)), 2, 1, 3, 1, 0.2, hist, 5)
	require.NoError(t, err)
	require.NoError(t, wl.InitGreedyHeuristic(edgeCountEnergyOK, 500))

	for i := 0; i < 30; i++ {
		wl.WangLandauStep(edgeCountEnergyOK)
	}
	wantStepGoal := wl.StepCounter()
	wantLogDensity := append([]float64(nil), wl.LogDensity()...)

	ent, err := sampling.FromWL[int](wl, 2)
	require.NoError(t, err)
	require.Equal(t, wantStepGoal, ent.StepGoal())
	require.Equal(t, wantLogDensity, ent.LogDensity())
	require.Equal(t, 0, ent.StepCounter())
}

func TestEntropicStepDoesNotMutateLogDensity(t *testing.T) {
	e := ensemble.NewER(6, identity, 3.0, ensemble.WithSeed(35))
	hist, err := histogram.NewFastInclusive[int](0, 15)
	require.NoError(t, err)
	wl, err := sampling.NewWangLandauAdaptive[int](0.05, e, rand.New(rand.NewSource(36)), 2, 1, 3, 1, 0.2, hist, 5)
	require.NoError(t, err)
	require.NoError(t, wl.InitGreedyHeuristic(edgeCountEnergyOK, 500))

	ent, err := sampling.FromWL[int](wl, 2)
	require.NoError(t, err)
	before := append([]float64(nil), ent.LogDensity()...)

	for i := 0; i < 20; i++ {
		ent.EntropicStep(edgeCountEnergyOK)
	}
	require.Equal(t, before, ent.LogDensity())

	total := uint64(0)
	for _, c := range ent.Hist().Hist() {
		total += c
	}
	require.Equal(t, uint64(20), total)
}

func TestRefineEstimateResetsAndReturnsOldDensity(t *testing.T) {
	e := ensemble.NewER(6, identity, 3.0, ensemble.WithSeed(37))
	hist, err := histogram.NewFastInclusive[int](0, 15)
	require.NoError(t, err)
	wl, err := sampling.NewWangLandauAdaptive[int](0.05, e, rand.New(rand.NewSource(38)), 2, 1, 3, 1, 0.2, hist, 5)
	require.NoError(t, err)
	require.NoError(t, wl.InitGreedyHeuristic(edgeCountEnergyOK, 500))

	ent, err := sampling.FromWL[int](wl, 2)
	require.NoError(t, err)
	before := append([]float64(nil), ent.LogDensity()...)

	for i := 0; i < 10; i++ {
		ent.EntropicStep(edgeCountEnergyOK)
	}
	old := ent.RefineEstimate()
	require.Equal(t, before, old)
	require.Equal(t, 0, ent.StepCounter())

	total := uint64(0)
	for _, c := range ent.Hist().Hist() {
		total += c
	}
	require.Equal(t, uint64(0), total)
}
