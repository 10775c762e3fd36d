package graph

import "sort"

// CloneEmpty returns a new Graph with the same vertex count and payloads
// (copied by value — T's own copy semantics apply, the graph does nothing
// deeper) but no edges.
func (g *Graph[T, A]) CloneEmpty() *Graph[T, A] {
	out := &Graph[T, A]{
		vertices:     make([]A, len(g.vertices)),
		newContainer: g.newContainer,
	}
	for i, v := range g.vertices {
		out.vertices[i] = g.newContainer(i, *v.Contained())
	}
	return out
}

// Clone returns a deep-enough copy of g: same payloads (by value) and the
// same topology, with fresh adjacency slices so mutating the clone never
// touches g.
func (g *Graph[T, A]) Clone() *Graph[T, A] {
	out := g.CloneEmpty()
	for i, v := range g.vertices {
		for _, n := range v.Neighbors() {
			if n > i {
				// AddEdge is called once per undirected edge; the
				// symmetric mirror comes from push itself.
				_ = out.AddEdge(i, n)
			}
		}
	}
	return out
}

// ResetFromGraph clears every edge in g, copies src's payloads and topology
// onto g's first len(src.vertices) vertices, and leaves any vertices beyond
// that range edgeless. g keeps its own vertex count throughout — this is
// the shape Barabasi-Albert needs: its target graph is larger than its seed
// graph, and each draw re-seeds the target's prefix from the (unchanging)
// seed rather than reallocating the target.
func ResetFromGraph[T any, A AdjContainer[T]](g *Graph[T, A], src *Graph[T, A]) {
	g.ClearEdges()
	n := len(g.vertices)
	for i := 0; i < len(src.vertices) && i < n; i++ {
		*g.vertices[i].Contained() = *src.vertices[i].Contained()
	}
	for i, v := range src.vertices {
		if i >= n {
			break
		}
		for _, nb := range v.Neighbors() {
			if nb > i && nb < n {
				_ = g.AddEdge(i, nb)
			}
		}
	}
}

// ClonedSubgraph builds a new plain-container graph containing exactly the
// vertices named in nodes (order: sorted, deduplicated), with edges among
// them preserved and edges leaving the set dropped. Returns ErrEmptyNodeList
// if nodes is empty or its largest entry is out of range.
//
// The result always uses PlainAdjContainer, matching the original's choice
// to fall back to the plain container type regardless of the source's A:
// a small-world container's origin tags would become meaningless once
// vertices are renumbered and some ring edges dropped.
//
// Complexity: O(k log k + edges among k), for k = len(dedup(nodes)).
func (g *Graph[T, A]) ClonedSubgraph(nodes []int) (*Graph[T, *PlainAdjContainer[T]], error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNodeList
	}
	sorted := append([]int(nil), nodes...)
	sort.Ints(sorted)
	if sorted[len(sorted)-1] >= len(g.vertices) || sorted[0] < 0 {
		return nil, ErrEmptyNodeList
	}
	sorted = dedupSortedInts(sorted)

	indexMap := make(map[int]int, len(sorted))
	for newIdx, oldIdx := range sorted {
		indexMap[oldIdx] = newIdx
	}

	out := &Graph[T, *PlainAdjContainer[T]]{
		vertices: make([]*PlainAdjContainer[T], len(sorted)),
		newContainer: func(id int, payload T) *PlainAdjContainer[T] {
			return NewPlainAdjContainer(id, payload)
		},
	}
	for newIdx, oldIdx := range sorted {
		out.vertices[newIdx] = NewPlainAdjContainer(newIdx, *g.vertices[oldIdx].Contained())
	}
	for newIdx, oldIdx := range sorted {
		for _, n := range g.vertices[oldIdx].Neighbors() {
			if newN, ok := indexMap[n]; ok && newN > newIdx {
				_ = out.AddEdge(newIdx, newN)
			}
		}
	}
	return out, nil
}

func dedupSortedInts(s []int) []int {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
