package ensemble

import (
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/graph"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// BarabasiAlbert draws from the Barabasi-Albert preferential-attachment
// ensemble: a complete seed graph of sourceN vertices, grown to n vertices
// by attaching each new vertex to m existing ones, chosen with probability
// proportional to current degree.
type BarabasiAlbert[T any] struct {
	source  *graph.Graph[T, *graph.PlainAdjContainer[T]]
	g       *graph.Graph[T, *graph.PlainAdjContainer[T]]
	rng     *rand.Rand
	m       int
	weights []float64
}

// NewBarabasiAlbert builds a complete seed graph of sourceN vertices and
// grows it to n vertices, each new one attaching to m existing ones.
// Panics if sourceN < 2 or n <= sourceN (sourceN must itself have every
// vertex at degree >= 1 for preferential attachment's weights to be
// meaningful, and a complete graph trivially satisfies that).
func NewBarabasiAlbert[T any](n int, newT func(id int) T, m, sourceN int, opts ...EnsembleOption) *BarabasiAlbert[T] {
	if sourceN < 2 {
		panic("ensemble: NewBarabasiAlbert: sourceN must be >= 2")
	}
	if n <= sourceN {
		panic("ensemble: NewBarabasiAlbert: n must be > sourceN")
	}
	source := graph.NewPlain(sourceN, newT)
	for i := 0; i < sourceN; i++ {
		for j := i + 1; j < sourceN; j++ {
			_ = source.AddEdge(i, j)
		}
	}
	return NewBarabasiAlbertFromGraph[T](n, m, source, newT, opts...)
}

// NewBarabasiAlbertFromGraph grows an arbitrary seed graph instead of a
// complete one. Panics if n <= source.VertexCount(), or if source has a
// degree-0 vertex (such a vertex could never be drawn by preferential
// attachment, so the ensemble could never connect it).
func NewBarabasiAlbertFromGraph[T any](n, m int, source *graph.Graph[T, *graph.PlainAdjContainer[T]], newT func(id int) T, opts ...EnsembleOption) *BarabasiAlbert[T] {
	sourceN := source.VertexCount()
	if n <= sourceN {
		panic("ensemble: NewBarabasiAlbertFromGraph: n must be > source.VertexCount()")
	}
	for i := 0; i < sourceN; i++ {
		if d, _ := source.Degree(i); d == 0 {
			panic("ensemble: NewBarabasiAlbertFromGraph: source graph has a degree-0 vertex")
		}
	}
	cfg := newConfig(opts...)
	b := &BarabasiAlbert[T]{
		source: source,
		g:      graph.NewPlain(n, newT),
		rng:    cfg.rng,
		m:      m,
	}
	b.Randomize()
	return b
}

// Graph returns the ensemble's underlying (grown) graph.
func (b *BarabasiAlbert[T]) Graph() *graph.Graph[T, *graph.PlainAdjContainer[T]] { return b.g }

// SetRand swaps in a new RNG, returning the old one.
func (b *BarabasiAlbert[T]) SetRand(rng *rand.Rand) *rand.Rand {
	old := b.rng
	b.rng = rng
	return old
}

// Randomize reseeds g's prefix from source, then grows the rest of g in a
// random vertex order, attaching each new vertex to m existing ones chosen
// with probability proportional to current degree.
func (b *BarabasiAlbert[T]) Randomize() {
	graph.ResetFromGraph(b.g, b.source)
	n := b.g.VertexCount()
	sourceN := b.source.VertexCount()

	b.weights = make([]float64, n)
	for i := 0; i < sourceN; i++ {
		d, _ := b.g.Degree(i)
		b.weights[i] = float64(d)
	}

	order := make([]int, 0, n-sourceN)
	for i := sourceN; i < n; i++ {
		order = append(order, i)
	}
	b.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, v := range order {
		for {
			d, _ := b.g.Degree(v)
			if d >= b.m {
				break
			}
			candidate, ok := b.drawWeighted()
			if !ok || candidate == v {
				continue
			}
			if err := b.g.AddEdge(v, candidate); err != nil {
				continue
			}
		}
		dv, _ := b.g.Degree(v)
		b.weights[v] = float64(dv)
		for _, nb := range b.g.NeighborIDs(v) {
			dn, _ := b.g.Degree(nb)
			b.weights[nb] = float64(dn)
		}
	}
}

// drawWeighted draws one vertex index with probability proportional to
// b.weights. A fresh sampleuv.Weighted is built for every single draw
// rather than reused across a vertex's whole attachment loop: Weighted's
// Take() is not documented as sampling with replacement, and rebuilding it
// per draw guarantees every draw is an independent sample of the current
// weight distribution regardless of Take's internal bookkeeping.
func (b *BarabasiAlbert[T]) drawWeighted() (int, bool) {
	w := sampleuv.NewWeighted(b.weights, b.rng)
	return w.Take()
}
