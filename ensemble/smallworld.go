package ensemble

import (
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/graph"
)

// SmallWorld draws from the Watts-Strogatz ensemble: start from a ring
// where every vertex connects to its k nearest neighbors on each side, then
// rewire each original edge independently with probability rewireProb.
// Randomize is the only sampling mode; there is no Markov step, since a
// single rewire pass is defined relative to "still an original ring edge",
// a notion that doesn't survive repeated small perturbations.
type SmallWorld[T any] struct {
	g                *graph.Graph[T, *graph.SWAdjContainer[T]]
	rng              *rand.Rand
	neighborDistance int
	rewireProb       float64
}

// NewSmallWorld builds an n-vertex ring with neighbor distance k and draws
// an initial rewiring at probability rewireProb. Returns ErrRingTooSmall if
// n < 1+2*k, the minimum size at which the ring has no self-loops or
// doubled edges.
func NewSmallWorld[T any](n int, newT func(id int) T, neighborDistance int, rewireProb float64, opts ...EnsembleOption) (*SmallWorld[T], error) {
	if n < 1+2*neighborDistance {
		return nil, ErrRingTooSmall
	}
	cfg := newConfig(opts...)
	s := &SmallWorld[T]{
		g:                graph.NewSmallWorld(n, newT),
		rng:              cfg.rng,
		neighborDistance: neighborDistance,
		rewireProb:       rewireProb,
	}
	s.Randomize()
	return s, nil
}

// Graph returns the ensemble's underlying graph.
func (s *SmallWorld[T]) Graph() *graph.Graph[T, *graph.SWAdjContainer[T]] { return s.g }

// SetRand swaps in a new RNG, returning the old one.
func (s *SmallWorld[T]) SetRand(rng *rand.Rand) *rand.Rand {
	old := s.rng
	s.rng = rng
	return old
}

// Randomize rebuilds the ring from scratch (so every edge becomes an
// original, rewireable one again), then rewires each vertex's original
// edges independently with probability rewireProb.
func (s *SmallWorld[T]) Randomize() {
	_ = s.g.InitRing(s.neighborDistance)
	n := s.g.VertexCount()
	for v := 0; v < n; v++ {
		s.rewireVertex(v)
	}
}

// rewireVertex reverse-iterates v's original-edge list (so swap-removing
// during the walk never skips an entry), collects every edge that is still
// at its ring origin and passes the rewireProb coin flip, detaches it from
// both endpoints, and reconnects v elsewhere via addRandomEdge. Only edges
// to a higher-indexed vertex are considered, so each ring edge gets its
// coin flip once per pass, from its lower endpoint.
func (s *SmallWorld[T]) rewireVertex(v int) {
	container := s.g.Container(v)
	originals := container.OriginalEdges()
	for i := len(originals) - 1; i >= 0; i-- {
		edge := originals[i]
		if !edge.IsAtOrigin || edge.To < v {
			continue
		}
		if s.rng.Float64() > s.rewireProb {
			continue
		}
		other := edge.To
		_ = s.g.RemoveEdge(v, other)
		s.addRandomEdge(v)
		// container.OriginalEdges() may have been reallocated by the
		// swap-remove above; refresh the slice reference before continuing
		// the reverse walk.
		originals = container.OriginalEdges()
	}
}

// addRandomEdge draws a uniformly random partner for v, retrying on
// self-loop or an already-existing edge, then marks the new edge as no
// longer a ring original on both sides so it is never picked for rewiring
// again.
func (s *SmallWorld[T]) addRandomEdge(v int) {
	n := s.g.VertexCount()
	for {
		other := s.rng.Intn(n)
		if other == v {
			continue
		}
		if s.g.Container(v).IsAdjacent(other) {
			continue
		}
		if err := s.g.AddEdge(v, other); err != nil {
			continue
		}
		s.g.Container(v).SetOriginAt(other, false)
		s.g.Container(other).SetOriginAt(v, false)
		return
	}
}
