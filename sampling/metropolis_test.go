package sampling_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
	"github.com/Pardoxa/net-ensembles-sub000/sampling"
)

func identity(id int) int { return id }

func edgeCountEnergy(e ensemble.MarkovChain) int {
	er := e.(*ensemble.ER[int])
	return er.Graph().EdgeCount()
}

func TestMetropolisRejectsNonPositiveStepsize(t *testing.T) {
	e := ensemble.NewER(10, identity, 3.0, ensemble.WithSeed(1))
	_, err := sampling.NewMetropolis[int](e, rand.New(rand.NewSource(1)), 1.0, 0, e.Graph().EdgeCount())
	require.Error(t, err)
}

func TestMetropolisRejectsNonPositiveTemperature(t *testing.T) {
	e := ensemble.NewER(10, identity, 3.0, ensemble.WithSeed(1))
	_, err := sampling.NewMetropolis[int](e, rand.New(rand.NewSource(1)), 0, 1, e.Graph().EdgeCount())
	require.Error(t, err)
}

func TestMetropolisWhileRunsToCompletionAndMeasures(t *testing.T) {
	e := ensemble.NewER(15, identity, 4.0, ensemble.WithSeed(2))
	m, err := sampling.NewMetropolis[int](e, rand.New(rand.NewSource(3)), 2.0, 1, edgeCountEnergy(e))
	require.NoError(t, err)

	measured := 0
	m.MetropolisWhile(
		25,
		func(v int) float64 { return float64(v) },
		func(ensemble.MarkovChain) bool { return true },
		edgeCountEnergy,
		func(ens ensemble.MarkovChain, counter int, energy int, rejected bool) {
			measured++
			require.Equal(t, counter, measured)
		},
		nil,
	)
	require.Equal(t, 25, measured)
	require.Equal(t, 25, m.Counter())
}

func TestMetropolisWhileBreakIfStopsEarly(t *testing.T) {
	e := ensemble.NewER(15, identity, 4.0, ensemble.WithSeed(4))
	m, err := sampling.NewMetropolis[int](e, rand.New(rand.NewSource(5)), 2.0, 1, edgeCountEnergy(e))
	require.NoError(t, err)

	m.MetropolisWhile(
		1000,
		func(v int) float64 { return float64(v) },
		nil,
		edgeCountEnergy,
		nil,
		func(ens ensemble.MarkovChain, counter int) bool { return counter >= 3 },
	)
	require.Equal(t, 3, m.Counter())
}

func TestContinueMetropolisWhileDetectsMismatch(t *testing.T) {
	e := ensemble.NewER(15, identity, 4.0, ensemble.WithSeed(6))
	m, err := sampling.NewMetropolis[int](e, rand.New(rand.NewSource(7)), 2.0, 1, 999999)
	require.NoError(t, err)

	err = m.ContinueMetropolisWhile(
		1,
		func(v int) float64 { return float64(v) },
		nil,
		edgeCountEnergy,
		nil,
		nil,
		false,
	)
	require.ErrorIs(t, err, sampling.ErrEnergyMismatch)
}
