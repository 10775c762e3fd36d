package sampling_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
	"github.com/Pardoxa/net-ensembles-sub000/histogram"
	"github.com/Pardoxa/net-ensembles-sub000/sampling"
)

func edgeCountEnergyOK(ens ensemble.MarkovChain) (int, bool) {
	er := ens.(*ensemble.ER[int])
	return er.Graph().EdgeCount(), true
}

func newTestWL(t *testing.T) (*sampling.WangLandauAdaptive[int], *ensemble.ER[int]) {
	t.Helper()
	e := ensemble.NewER(6, identity, 3.0, ensemble.WithSeed(11))
	maxEdges := 6 * 5 / 2
	hist, err := histogram.NewFastInclusive[int](0, maxEdges)
	require.NoError(t, err)

	wl, err := sampling.NewWangLandauAdaptive[int](
		0.05, e, rand.New(rand.NewSource(12)),
		2, 1, 3, 1, 0.2, hist, 5,
	)
	require.NoError(t, err)
	return wl, e
}

func TestWangLandauRejectsBadConstruction(t *testing.T) {
	e := ensemble.NewER(6, identity, 3.0, ensemble.WithSeed(1))
	hist, err := histogram.NewFastInclusive[int](0, 15)
	require.NoError(t, err)

	_, err = sampling.NewWangLandauAdaptive[int](0.05, e, rand.New(rand.NewSource(1)), 2, 3, 1, 1, 0.2, hist, 5)
	require.ErrorIs(t, err, sampling.ErrInvalidMinMaxTrialSteps)

	_, err = sampling.NewWangLandauAdaptive[int](0.05, e, rand.New(rand.NewSource(1)), 2, 1, 3, 1, 0.2, hist, 0)
	require.ErrorIs(t, err, sampling.ErrCheckRefineEvery0)
}

func TestWangLandauGreedyInitReachesInsideHistogram(t *testing.T) {
	wl, e := newTestWL(t)
	err := wl.InitGreedyHeuristic(edgeCountEnergyOK, 500)
	require.NoError(t, err)
	require.True(t, wl.Hist().IsInside(e.Graph().EdgeCount()))
}

func TestWangLandauStepAdvancesCounterAndDensity(t *testing.T) {
	wl, _ := newTestWL(t)
	require.NoError(t, wl.InitGreedyHeuristic(edgeCountEnergyOK, 500))

	for i := 0; i < 50; i++ {
		wl.WangLandauStep(edgeCountEnergyOK)
	}
	require.Equal(t, 50, wl.StepCounter())
	require.Len(t, wl.LogDensity(), wl.Hist().BinCount())

	sum := 0.0
	for _, v := range wl.LogDensity() {
		sum += v
	}
	require.Greater(t, sum, 0.0)
}

func TestWangLandauIntervalInitReachesInsideHistogram(t *testing.T) {
	wl, e := newTestWL(t)
	err := wl.InitIntervalHeuristik(2, edgeCountEnergyOK, 500)
	require.NoError(t, err)
	require.True(t, wl.Hist().IsInside(e.Graph().EdgeCount()))
}

func TestWangLandauMixedInitReachesInsideHistogram(t *testing.T) {
	wl, e := newTestWL(t)
	err := wl.InitMixedHeuristik(2, 4, edgeCountEnergyOK, 500)
	require.NoError(t, err)
	require.True(t, wl.Hist().IsInside(e.Graph().EdgeCount()))
}

func TestWangLandauModeSwitchesToRefine1T(t *testing.T) {
	// A 2-vertex ensemble has only one possible edge, so its energy
	// (edge count) covers both histogram bins within a handful of steps,
	// making the check_refine halving converge to Refine1T quickly.
	e := ensemble.NewER(2, identity, 0.5, ensemble.WithSeed(21))
	hist, err := histogram.NewFastInclusive[int](0, 1)
	require.NoError(t, err)
	wl, err := sampling.NewWangLandauAdaptive[int](
		0.0, e, rand.New(rand.NewSource(22)),
		2, 1, 1, 1, 0.5, hist, 2,
	)
	require.NoError(t, err)
	require.NoError(t, wl.InitGreedyHeuristic(edgeCountEnergyOK, 500))
	require.Equal(t, sampling.RefineOriginal, wl.Mode())

	for i := 0; i < 5000 && wl.Mode() == sampling.RefineOriginal; i++ {
		wl.WangLandauStep(edgeCountEnergyOK)
	}
	require.Equal(t, sampling.Refine1T, wl.Mode())
}
