package ensemble

import (
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/graph"
)

// ER draws from the Erdos-Renyi ensemble parameterised by a target
// connectivity c rather than a raw edge probability: every pair of vertices
// is connected independently with probability p = c/(n-1), so the expected
// average degree is c.
type ER[T any] struct {
	g      *graph.Graph[T, *graph.PlainAdjContainer[T]]
	rng    *rand.Rand
	target float64
	prob   float64
}

// NewER builds an n-vertex ER ensemble targeting connectivity c and draws
// its initial sample.
func NewER[T any](n int, newT func(id int) T, c float64, opts ...EnsembleOption) *ER[T] {
	cfg := newConfig(opts...)
	e := &ER[T]{
		g:      graph.NewPlain(n, newT),
		rng:    cfg.rng,
		target: c,
		prob:   c / float64(n-1),
	}
	e.Randomize()
	return e
}

// Graph returns the ensemble's underlying graph.
func (e *ER[T]) Graph() *graph.Graph[T, *graph.PlainAdjContainer[T]] { return e.g }

// SetRand swaps in a new RNG, returning the old one.
func (e *ER[T]) SetRand(rng *rand.Rand) *rand.Rand {
	old := e.rng
	e.rng = rng
	return old
}

// TargetConnectivity returns c.
func (e *ER[T]) TargetConnectivity() float64 { return e.target }

// SetTargetConnectivity updates c (and the derived per-pair probability)
// without redrawing; call Randomize afterwards for a fresh sample at the
// new connectivity.
func (e *ER[T]) SetTargetConnectivity(c float64) {
	e.target = c
	e.prob = c / float64(e.g.VertexCount()-1)
}

// Randomize clears all edges, then adds each of the n*(n-1)/2 possible
// edges independently with probability p. O(n^2).
func (e *ER[T]) Randomize() {
	e.g.ClearEdges()
	n := e.g.VertexCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if e.rng.Float64() <= e.prob {
				_ = e.g.AddEdge(i, j)
			}
		}
	}
}

// MStep draws two distinct vertices uniformly, then with probability p
// tries to add an edge between them, else tries to remove one. Returns
// StepNothing if the attempted mutation was a no-op (edge already
// present/absent).
func (e *ER[T]) MStep() Step {
	i, j := drawTwo(e.rng, e.g.VertexCount())
	if e.rng.Float64() <= e.prob {
		if err := e.g.AddEdge(i, j); err != nil {
			return Step{Kind: StepNothing}
		}
		return Step{Kind: StepAddedEdge, I: i, J: j}
	}
	if err := e.g.RemoveEdge(i, j); err != nil {
		return Step{Kind: StepNothing}
	}
	return Step{Kind: StepRemovedEdge, I: i, J: j}
}

// UndoStep reverses step: removes an AddedEdge, re-adds a RemovedEdge, does
// nothing for StepNothing.
func (e *ER[T]) UndoStep(step Step) error {
	switch step.Kind {
	case StepAddedEdge:
		return e.g.RemoveEdge(step.I, step.J)
	case StepRemovedEdge:
		return e.g.AddEdge(step.I, step.J)
	}
	return nil
}

// UndoStepQuiet is UndoStep, panicking instead of returning an error (which
// only happens if the caller undoes steps out of order).
func (e *ER[T]) UndoStepQuiet(step Step) {
	if err := e.UndoStep(step); err != nil {
		panic("ensemble: ER.UndoStepQuiet: " + err.Error())
	}
}

// MakeConnected adds a minimal chain of edges linking one representative of
// each connected component, in whatever order SuggestConnections returns
// them. Experimental: intended as a starting point for a Markov chain that
// requires a connected graph, not as a way to sample connected graphs
// independently (doing so skews the distribution away from ER).
func (e *ER[T]) MakeConnected() {
	suggestions := e.g.SuggestConnections()
	if len(suggestions) == 0 {
		return
	}
	last := suggestions[len(suggestions)-1]
	for i := len(suggestions) - 2; i >= 0; i-- {
		_ = e.g.AddEdge(last, suggestions[i])
		last = suggestions[i]
	}
}
