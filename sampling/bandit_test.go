package sampling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepBanditRejectsBadRange(t *testing.T) {
	_, err := newStepBandit(rand.New(rand.NewSource(1)), 10, 5, 3, 1, 0.1)
	require.ErrorIs(t, err, ErrInvalidMinMaxTrialSteps)
}

func TestStepBanditRejectsTooManyBestOf(t *testing.T) {
	_, err := newStepBandit(rand.New(rand.NewSource(1)), 1, 3, 3, 10, 0.1)
	require.ErrorIs(t, err, ErrInvalidBestOf)
}

func TestStepBanditPhaseTransition(t *testing.T) {
	b, err := newStepBandit(rand.New(rand.NewSource(1)), 1, 4, 5, 2, 0.1)
	require.NoError(t, err)
	require.True(t, b.IsRebuildingStatistics())

	total := 4 * 5
	for i := 0; i < total; i++ {
		size := b.getStepSize()
		require.GreaterOrEqual(t, size, 1)
		require.LessOrEqual(t, size, 4)
		b.countAccepted(size)
	}
	require.False(t, b.IsRebuildingStatistics())

	size := b.getStepSize()
	require.GreaterOrEqual(t, size, 1)
	require.LessOrEqual(t, size, 4)
}

func TestStepBanditEstimateStatisticsNotEnoughYet(t *testing.T) {
	b, err := newStepBandit(rand.New(rand.NewSource(1)), 1, 3, 2, 1, 0.1)
	require.NoError(t, err)

	_, rebuilding, err := b.EstimateStatistics()
	require.True(t, rebuilding)
	require.ErrorIs(t, err, ErrNotEnoughStatistics)
}

func TestStepBanditResetStatisticsFoldsIntoLifetimeTotals(t *testing.T) {
	b, err := newStepBandit(rand.New(rand.NewSource(1)), 1, 2, 2, 1, 0.1)
	require.NoError(t, err)

	b.countAccepted(1)
	b.countRejected(2)
	b.resetStatistics()

	require.Equal(t, 1, b.totalAccepted)
	require.Equal(t, 1, b.totalRejected)
	require.Equal(t, 0, b.counter)
	require.Empty(t, b.bestOfSteps)
}
