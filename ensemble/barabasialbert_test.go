package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
)

func TestBarabasiAlbertEveryNewVertexReachesM(t *testing.T) {
	b := ensemble.NewBarabasiAlbert(30, identity, 3, 5, ensemble.WithSeed(9))
	require.Equal(t, 30, b.Graph().VertexCount())

	for i := 5; i < 30; i++ {
		d, ok := b.Graph().Degree(i)
		require.True(t, ok)
		require.GreaterOrEqual(t, d, 3)
	}
}

func TestBarabasiAlbertPanicsOnTooSmallSeed(t *testing.T) {
	require.Panics(t, func() {
		ensemble.NewBarabasiAlbert(10, identity, 2, 1, ensemble.WithSeed(10))
	})
}

func TestBarabasiAlbertPanicsWhenNNotGreaterThanSeed(t *testing.T) {
	require.Panics(t, func() {
		ensemble.NewBarabasiAlbert(5, identity, 2, 5, ensemble.WithSeed(11))
	})
}

func TestBarabasiAlbertRandomizeIsRepeatable(t *testing.T) {
	b := ensemble.NewBarabasiAlbert(20, identity, 2, 4, ensemble.WithSeed(12))
	first := b.Graph().EdgeCount()
	b.Randomize()
	require.Equal(t, first, b.Graph().EdgeCount())
}
