package glue_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/glue"
	"github.com/Pardoxa/net-ensembles-sub000/histogram"
	"github.com/Pardoxa/net-ensembles-sub000/sampling"
)

type stubWL struct {
	hist     *histogram.Fast[int]
	log10    []float64
	steps    int
	accepted int
	rejected int
}

func (s *stubWL) Hist() sampling.DistanceHistogram[int] { return s.hist }
func (s *stubWL) LogDensityBase10() []float64           { return s.log10 }
func (s *stubWL) StepCounter() int                      { return s.steps }
func (s *stubWL) TotalStepsAccepted() int               { return s.accepted }
func (s *stubWL) TotalStepsRejected() int               { return s.rejected }

func buildOverlappingStubs(t *testing.T) (*histogram.Fast[int], []glue.WLLike[int]) {
	t.Helper()
	reference, err := histogram.NewFastInclusive[int](0, 9)
	require.NoError(t, err)

	parts, err := reference.OverlappingPartition(2, 2)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	flat := func(n int, v float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}
		return out
	}

	list := []glue.WLLike[int]{
		&stubWL{hist: parts[0], log10: flat(parts[0].BinCount(), -1.0), steps: 100, accepted: 40, rejected: 60},
		&stubWL{hist: parts[1], log10: flat(parts[1].BinCount(), -1.2), steps: 150, accepted: 50, rejected: 100},
	}
	return reference, list
}

func TestGlueWLRejectsEmptyList(t *testing.T) {
	reference, _ := buildOverlappingStubs(t)
	_, err := glue.GlueWL[int](nil, reference)
	require.ErrorIs(t, err, glue.ErrEmptyList)
}

func TestGlueWLProducesNormalizedDistribution(t *testing.T) {
	reference, list := buildOverlappingStubs(t)

	result, err := glue.GlueWL[int](list, reference)
	require.NoError(t, err)

	require.Len(t, result.Borders, reference.BinCount()+1)
	require.Len(t, result.GluedLog10Probability, reference.BinCount())
	require.Equal(t, 250, result.TotalSteps)
	require.Equal(t, 90, result.TotalStepsAccepted)
	require.Equal(t, 160, result.TotalStepsRejected)

	sum := 0.0
	for _, v := range result.GluedLog10Probability {
		require.False(t, math.IsNaN(v), "every bin should be covered by at least one window")
		sum += math.Pow(10, v)
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestGlueWLDetectsBorderMismatch(t *testing.T) {
	reference, err := histogram.NewFastInclusive[int](0, 9)
	require.NoError(t, err)

	offRange, err := histogram.NewFastInclusive[int](20, 25)
	require.NoError(t, err)

	list := []glue.WLLike[int]{
		&stubWL{hist: offRange, log10: []float64{-1, -1, -1, -1, -1, -1}, steps: 10, accepted: 5, rejected: 5},
	}
	_, err = glue.GlueWL[int](list, reference)
	require.ErrorIs(t, err, glue.ErrBinarySearch)
}

func TestGlueWLWriteProducesHeader(t *testing.T) {
	reference, list := buildOverlappingStubs(t)
	result, err := glue.GlueWL[int](list, reference)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, result.Write(&sb))
	require.Contains(t, sb.String(), "#bin_left bin_right glued_log_density curve_0 curve_1")
	require.Contains(t, sb.String(), "#total_steps 250")
}
