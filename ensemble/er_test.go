package ensemble_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
)

func identity(id int) int { return id }

func TestERRandomizeRespectsVertexCount(t *testing.T) {
	e := ensemble.NewER(20, identity, 4.0, ensemble.WithSeed(1))
	require.Equal(t, 20, e.Graph().VertexCount())
	require.Equal(t, 4.0, e.TargetConnectivity())
}

func TestERMStepUndoRestoresEdgeCount(t *testing.T) {
	e := ensemble.NewER(10, identity, 3.0, ensemble.WithSeed(2))
	before := e.Graph().EdgeCount()

	step := e.MStep()
	if step.Kind == ensemble.StepNothing {
		return
	}
	e.UndoStepQuiet(step)
	require.Equal(t, before, e.Graph().EdgeCount())
}

func TestERSetRandReturnsPrevious(t *testing.T) {
	e := ensemble.NewER(5, identity, 1.0, ensemble.WithSeed(3))
	old := e.SetRand(rand.New(rand.NewSource(99)))
	require.NotNil(t, old)
}

func TestERMakeConnected(t *testing.T) {
	e := ensemble.NewER(30, identity, 0.1, ensemble.WithSeed(4))
	e.MakeConnected()
	connected, ok := e.Graph().IsConnected()
	require.True(t, ok)
	require.True(t, connected)
}
