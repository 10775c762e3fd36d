// Package graph implements a generic, single-threaded graph with a
// pluggable adjacency-container capability, fixed vertex count, and the
// topological measurements ensembles and samplers are built on top of.
//
// Graph[T, A] is NOT safe for concurrent use — no mutex guards any field.
// Every ensemble in package ensemble owns exactly one Graph and its own
// *rand.Rand; running several ensembles concurrently means running them in
// separate goroutines, each with its own Graph, same as running several
// independent simulations side by side.
package graph

import "math/rand"

// Graph is a fixed-size, int-indexed graph over adjacency containers of
// kind A storing payloads of type T. Vertex i's identity is always i (I4);
// adjacency is always symmetric (I1); no self-loops (I2); no multi-edges
// (I3); EdgeCount always equals half the sum of degrees (I5).
type Graph[T any, A AdjContainer[T]] struct {
	vertices     []A
	edgeCount    int
	newContainer func(id int, payload T) A
}

// New builds a Graph with n vertices and no edges. newT constructs the
// payload for vertex i (i is its eventual index); newContainer wraps a
// payload into the container kind A. Go has no "construct Self from an
// int" trait bound, so both factories are passed in explicitly rather than
// required as methods on T.
func New[T any, A AdjContainer[T]](n int, newT func(id int) T, newContainer func(id int, payload T) A) *Graph[T, A] {
	g := &Graph[T, A]{
		vertices:     make([]A, n),
		newContainer: newContainer,
	}
	for i := 0; i < n; i++ {
		g.vertices[i] = newContainer(i, newT(i))
	}
	return g
}

// FromPayloads builds a Graph from an already-constructed payload slice,
// one vertex per element, no edges.
func FromPayloads[T any, A AdjContainer[T]](payloads []T, newContainer func(id int, payload T) A) *Graph[T, A] {
	g := &Graph[T, A]{
		vertices:     make([]A, len(payloads)),
		newContainer: newContainer,
	}
	for i, p := range payloads {
		g.vertices[i] = newContainer(i, p)
	}
	return g
}

// NewPlain is the common case of New for the plain adjacency-list
// container, used by every ensemble except Watts-Strogatz.
func NewPlain[T any](n int, newT func(id int) T) *Graph[T, *PlainAdjContainer[T]] {
	return New[T, *PlainAdjContainer[T]](n, newT, func(id int, payload T) *PlainAdjContainer[T] {
		return NewPlainAdjContainer(id, payload)
	})
}

// NewSmallWorld is the common case of New for the origin-tagged container
// used by Watts-Strogatz.
func NewSmallWorld[T any](n int, newT func(id int) T) *Graph[T, *SWAdjContainer[T]] {
	return New[T, *SWAdjContainer[T]](n, newT, func(id int, payload T) *SWAdjContainer[T] {
		return NewSWAdjContainer(id, payload)
	})
}

// VertexCount returns the number of vertices. Fixed at construction.
func (g *Graph[T, A]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges.
func (g *Graph[T, A]) EdgeCount() int { return g.edgeCount }

// Container returns the adjacency container for vertex index. Panics if
// index is out of range, matching the contract that index errors are
// programming errors, not recoverable ones.
func (g *Graph[T, A]) Container(index int) A {
	return g.vertices[index]
}

// At returns a pointer to the payload stored at vertex index. Panics if
// index is out of range.
func (g *Graph[T, A]) At(index int) *T {
	return g.vertices[index].Contained()
}

// Degree returns the degree of vertex index, or (0, false) if index is out
// of range.
func (g *Graph[T, A]) Degree(index int) (int, bool) {
	if index < 0 || index >= len(g.vertices) {
		return 0, false
	}
	return g.vertices[index].Degree(), true
}

// DegreeVec returns the degree of every vertex, in index order.
func (g *Graph[T, A]) DegreeVec() []int {
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Degree()
	}
	return out
}

// NeighborIDs returns the neighbor indices of vertex index, in whatever
// order SortAdj/ShuffleAdj last left them. Panics if index is out of range.
func (g *Graph[T, A]) NeighborIDs(index int) []int {
	return g.vertices[index].Neighbors()
}

// AddEdge connects index1 and index2. Returns ErrSelfLoop if they are
// equal, ErrIndexOutOfRange if either is out of bounds, or ErrEdgeExists
// if they are already adjacent.
func (g *Graph[T, A]) AddEdge(index1, index2 int) error {
	if index1 == index2 {
		return ErrSelfLoop
	}
	if index1 < 0 || index1 >= len(g.vertices) || index2 < 0 || index2 >= len(g.vertices) {
		return ErrIndexOutOfRange
	}
	if err := g.vertices[index1].push(g.vertices[index2]); err != nil {
		return err
	}
	g.edgeCount++
	return nil
}

// RemoveEdge disconnects index1 and index2. Returns ErrIndexOutOfRange if
// either is out of bounds, or ErrEdgeDoesNotExist if they were not
// adjacent.
func (g *Graph[T, A]) RemoveEdge(index1, index2 int) error {
	if index1 < 0 || index1 >= len(g.vertices) || index2 < 0 || index2 >= len(g.vertices) {
		return ErrIndexOutOfRange
	}
	if err := g.vertices[index1].remove(g.vertices[index2]); err != nil {
		return err
	}
	g.edgeCount--
	return nil
}

// ClearEdges removes every edge, leaving payloads untouched.
func (g *Graph[T, A]) ClearEdges() {
	if g.edgeCount == 0 {
		return
	}
	for _, v := range g.vertices {
		v.clearEdges()
	}
	g.edgeCount = 0
}

// InitRing clears all edges, then connects every vertex i to (i+1)..(i+k)
// mod n. Fails (with whatever AddEdge returns, typically ErrEdgeExists)
// if k is large enough relative to n that some connection would double up
// or self-loop.
func (g *Graph[T, A]) InitRing(k int) error {
	g.ClearEdges()
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		for add := 1; add <= k; add++ {
			j := i + add
			if j >= n {
				j -= n
			}
			if err := g.AddEdge(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}

// SortAdj sorts every vertex's adjacency list ascending.
func (g *Graph[T, A]) SortAdj() {
	for _, v := range g.vertices {
		v.SortAdj()
	}
}

// ShuffleAdj randomizes the order of every vertex's adjacency list without
// changing the topology.
func (g *Graph[T, A]) ShuffleAdj(rng *rand.Rand) {
	for _, v := range g.vertices {
		v.ShuffleAdj(rng)
	}
}
