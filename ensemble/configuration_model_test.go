package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
)

func TestConfigurationModelRejectsInvalidDegreeVec(t *testing.T) {
	_, err := ensemble.NewConfigurationModelFromVec([]int{1}, identity)
	require.ErrorIs(t, err, ensemble.ErrInvalidDegreeVec)

	_, err = ensemble.NewConfigurationModelFromVec([]int{1, 0, 0}, identity)
	require.ErrorIs(t, err, ensemble.ErrInvalidDegreeVec)

	_, err = ensemble.NewConfigurationModelFromVec([]int{5, 1, 1}, identity)
	require.ErrorIs(t, err, ensemble.ErrInvalidDegreeVec)
}

func TestConfigurationModelMatchesDegreeSequence(t *testing.T) {
	c, err := ensemble.NewConfigurationModelFromConst(12, 3, identity, ensemble.WithSeed(5))
	require.NoError(t, err)

	for i := 0; i < c.Graph().VertexCount(); i++ {
		d, ok := c.Graph().Degree(i)
		require.True(t, ok)
		require.Equal(t, 3, d)
	}
}

func TestConfigurationModelMStepUndoPreservesDegrees(t *testing.T) {
	c, err := ensemble.NewConfigurationModelFromConst(16, 4, identity, ensemble.WithSeed(6))
	require.NoError(t, err)

	degreesBefore := c.Graph().DegreeVec()

	step := c.MStep()
	if step.Kind != ensemble.StepConfigSwap {
		return
	}
	c.UndoStepQuiet(step)

	require.Equal(t, degreesBefore, c.Graph().DegreeVec())
}
