package histogram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/histogram"
)

func TestFloatEqualWidthBinIndex(t *testing.T) {
	h, err := histogram.NewFloatEqualWidth(0.0, 10.0, 5)
	require.NoError(t, err)

	idx, err := h.GetBinIndex(7.5)
	require.NoError(t, err)
	require.Equal(t, 3, idx)
}

func TestFloatRejectsNaNAndInf(t *testing.T) {
	h, err := histogram.NewFloatEqualWidth(0.0, 10.0, 5)
	require.NoError(t, err)

	_, err = h.GetBinIndex(math.NaN())
	require.ErrorIs(t, err, histogram.ErrInvalidVal)

	require.False(t, h.IsInside(math.Inf(1)))
}

func TestFloatCountVal(t *testing.T) {
	h, err := histogram.NewFloatEqualWidth(0.0, 1.0, 4)
	require.NoError(t, err)

	require.NoError(t, h.CountVal(0.9))
	require.Equal(t, uint64(1), h.Hist()[3])
}
