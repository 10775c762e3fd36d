package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
)

func TestSpatialEdgeProbabilityIsClamped(t *testing.T) {
	s := ensemble.NewSpatial(15, identity, 10.0, 2.0, ensemble.WithSeed(13))
	for i := 0; i < 15; i++ {
		for j := i + 1; j < 15; j++ {
			p := s.EdgeProbability(i, j)
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestSpatialDistanceIsSymmetric(t *testing.T) {
	s := ensemble.NewSpatial(8, identity, 1.0, 1.0, ensemble.WithSeed(14))
	require.InDelta(t, s.Distance(0, 3), s.Distance(3, 0), 1e-12)
}

func TestSpatialMStepUndoRestoresEdgeCount(t *testing.T) {
	s := ensemble.NewSpatial(12, identity, 2.0, 1.5, ensemble.WithSeed(15))
	before := s.Graph().EdgeCount()

	step := s.MStep()
	if step.Kind == ensemble.StepNothing {
		return
	}
	s.UndoStepQuiet(step)
	require.Equal(t, before, s.Graph().EdgeCount())
}
