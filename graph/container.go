package graph

import (
	"math/rand"
	"sort"
)

// AdjContainer is the per-vertex storage capability that GenericGraph is
// parameterised over: identity, payload access, neighbor iteration, degree,
// membership, and the unchecked edge-mutation primitives used only through
// Graph's own AddEdge/RemoveEdge/ClearEdges.
//
// Two implementations ship: PlainAdjContainer (a bare adjacency list) and
// SWAdjContainer (which additionally tags each incident edge with its ring
// origin, for Watts-Strogatz rewiring). Both live in this package; push/
// remove/clearEdges are unexported on purpose — callers mutate topology
// through Graph, never through a container directly.
type AdjContainer[T any] interface {
	// id returns this container's index in the owning graph's vertex slice.
	id() int

	// setID rewrites the container's own identity. The graph's rebuild
	// paths (CloneEmpty, ClonedSubgraph, ResetFromGraph) do not call it:
	// they construct containers with the right id, or keep the existing ones.
	setID(id int)

	// Contained returns a pointer to the stored payload. Mutating through
	// it mutates the graph's vertex in place.
	Contained() *T

	// Neighbors returns the adjacency list as neighbor indices, in whatever
	// order SortAdj/ShuffleAdj last left it.
	Neighbors() []int

	// Degree is len(Neighbors()).
	Degree() int

	// AdjFirst returns the first neighbor index and true, or (0, false) if
	// the container has no neighbors. Used by vertex_biconnected_components
	// to repeatedly peel one edge at a time.
	AdjFirst() (int, bool)

	// IsAdjacent reports whether other is currently a neighbor.
	IsAdjacent(other int) bool

	// SortAdj sorts the neighbor list ascending.
	SortAdj()

	// ShuffleAdj randomizes the order of the neighbor list without changing
	// the topology.
	ShuffleAdj(rng *rand.Rand)

	// clearEdges empties this container's adjacency, without touching any
	// neighbor's adjacency. Only safe when the caller (Graph.ClearEdges)
	// does this for every vertex in the same pass.
	clearEdges()

	// push links self and other as neighbors of each other. Returns
	// ErrEdgeExists if they are already adjacent. Unchecked against
	// self-loops — Graph.AddEdge rejects those first.
	push(other AdjContainer[T]) error

	// remove unlinks self and other. Returns ErrEdgeDoesNotExist if they
	// were not adjacent.
	remove(other AdjContainer[T]) error
}

// PlainAdjContainer is the bare adjacency-list AdjContainer: an id, a
// payload, and a neighbor-index slice. It is the container used by every
// ensemble except Watts-Strogatz.
type PlainAdjContainer[T any] struct {
	index   int
	payload T
	adj     []int
}

// NewPlainAdjContainer builds a container for vertex id holding payload,
// with no neighbors.
func NewPlainAdjContainer[T any](id int, payload T) *PlainAdjContainer[T] {
	return &PlainAdjContainer[T]{index: id, payload: payload}
}

func (c *PlainAdjContainer[T]) id() int        { return c.index }
func (c *PlainAdjContainer[T]) setID(id int)   { c.index = id }
func (c *PlainAdjContainer[T]) Contained() *T  { return &c.payload }
func (c *PlainAdjContainer[T]) Neighbors() []int { return c.adj }
func (c *PlainAdjContainer[T]) Degree() int    { return len(c.adj) }

func (c *PlainAdjContainer[T]) AdjFirst() (int, bool) {
	if len(c.adj) == 0 {
		return 0, false
	}
	return c.adj[0], true
}

func (c *PlainAdjContainer[T]) IsAdjacent(other int) bool {
	for _, n := range c.adj {
		if n == other {
			return true
		}
	}
	return false
}

func (c *PlainAdjContainer[T]) SortAdj() {
	sort.Ints(c.adj)
}

func (c *PlainAdjContainer[T]) ShuffleAdj(rng *rand.Rand) {
	rng.Shuffle(len(c.adj), func(i, j int) { c.adj[i], c.adj[j] = c.adj[j], c.adj[i] })
}

func (c *PlainAdjContainer[T]) clearEdges() {
	c.adj = c.adj[:0]
}

func (c *PlainAdjContainer[T]) push(otherI AdjContainer[T]) error {
	other := otherI.(*PlainAdjContainer[T])
	if c.IsAdjacent(other.index) {
		return ErrEdgeExists
	}
	c.adj = append(c.adj, other.index)
	other.adj = append(other.adj, c.index)
	return nil
}

func (c *PlainAdjContainer[T]) remove(otherI AdjContainer[T]) error {
	other := otherI.(*PlainAdjContainer[T])
	if !c.IsAdjacent(other.index) {
		return ErrEdgeDoesNotExist
	}
	c.adj = swapRemoveInt(c.adj, other.index)
	other.adj = swapRemoveInt(other.adj, c.index)
	return nil
}

// swapRemoveInt removes the first occurrence of val from s via swap-remove
// (O(1), order-disturbing), mirroring the original's Vec::swap_remove use
// in edge removal.
func swapRemoveInt(s []int, val int) []int {
	for i, v := range s {
		if v == val {
			last := len(s) - 1
			s[i] = s[last]
			return s[:last]
		}
	}
	return s
}

