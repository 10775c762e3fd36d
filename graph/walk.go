package graph

// Walker holds the O(n) scratch buffers (visited flags, queue/stack,
// per-vertex depth) behind BFS and DFS, so that algorithms issuing many
// traversals over the same graph — diameter, connected_components — pay
// for one allocation and reuse it via Reuse.
//
// A Walker is tied to one Graph and is not safe for concurrent traversals;
// that is consistent with the rest of this package (single-threaded,
// single-owner).
type Walker[T any, A AdjContainer[T]] struct {
	g       *Graph[T, A]
	visited []bool
	depth   []int
	order   []int
	buf     []int // FIFO queue for BFS, LIFO stack for DFS
}

// NewWalker allocates a Walker's scratch buffers sized to g's current
// vertex count.
func NewWalker[T any, A AdjContainer[T]](g *Graph[T, A]) *Walker[T, A] {
	n := g.VertexCount()
	return &Walker[T, A]{
		g:       g,
		visited: make([]bool, n),
		depth:   make([]int, n),
		order:   make([]int, 0, n),
		buf:     make([]int, 0, n),
	}
}

// Reuse clears the walker's scratch buffers and marks start as the root of
// a fresh traversal, without allocating — the buffers BFS/DFS allocated at
// NewWalker time are kept and overwritten in place. Exported so callers
// issuing many traversals over the same graph (as diameter and
// connected_components do) can pay for one Walker and drive it directly.
func (w *Walker[T, A]) Reuse(start int) {
	for i := range w.visited {
		w.visited[i] = false
	}
	w.order = w.order[:0]
	w.buf = w.buf[:0]
	w.visited[start] = true
	w.buf = append(w.buf, start)
}

// BFS runs breadth-first search from start and returns the visit order and
// each visited vertex's depth (unvisited vertices keep depth -1). The
// returned slices are owned by the Walker and are invalidated by the next
// BFS/DFS/Reuse call.
func (w *Walker[T, A]) BFS(start int) (order []int, depth []int) {
	return w.BFSFiltered(start, nil)
}

// BFSFiltered is BFS with an edge predicate: a neighbor is only enqueued
// if pred(from, to) is true (or pred is nil, meaning no filtering).
func (w *Walker[T, A]) BFSFiltered(start int, pred func(from, to int) bool) (order []int, depth []int) {
	w.Reuse(start)
	for i := range w.depth {
		w.depth[i] = -1
	}
	w.depth[start] = 0

	for len(w.buf) > 0 {
		idx := w.buf[0]
		w.buf = w.buf[1:]
		w.order = append(w.order, idx)
		d := w.depth[idx]
		for _, nb := range w.g.NeighborIDs(idx) {
			if w.visited[nb] {
				continue
			}
			if pred != nil && !pred(idx, nb) {
				continue
			}
			w.visited[nb] = true
			w.depth[nb] = d + 1
			w.buf = append(w.buf, nb)
		}
	}
	return w.order, w.depth
}

// DFS runs depth-first search from start and returns the visit order. The
// returned slice is owned by the Walker and invalidated by the next
// BFS/DFS/Reuse call.
func (w *Walker[T, A]) DFS(start int) []int {
	w.Reuse(start)

	for len(w.buf) > 0 {
		idx := w.buf[len(w.buf)-1]
		w.buf = w.buf[:len(w.buf)-1]
		w.order = append(w.order, idx)
		for _, nb := range w.g.NeighborIDs(idx) {
			if !w.visited[nb] {
				w.visited[nb] = true
				w.buf = append(w.buf, nb)
			}
		}
	}
	return w.order
}
