package graph

import "sort"

// IsConnected reports whether every vertex is reachable from vertex 0.
// ok is false for an empty graph (connected is then false too), so callers
// can tell "empty" apart from "disconnected".
func (g *Graph[T, A]) IsConnected() (connected bool, ok bool) {
	n := g.VertexCount()
	if n == 0 {
		return false, false
	}
	w := NewWalker(g)
	order := w.DFS(0)
	return len(order) == n, true
}

// ConnectedComponentIDs assigns every vertex an integer id, 0-based, such
// that two vertices share an id iff they are in the same connected
// component. Returns the number of components and the per-vertex id
// vector.
func (g *Graph[T, A]) ConnectedComponentIDs() (numComponents int, componentID []int) {
	n := g.VertexCount()
	componentID = make([]int, n)
	for i := range componentID {
		componentID[i] = -1
	}
	w := NewWalker(g)
	current := 0
	for i := 0; i < n; i++ {
		if componentID[i] != -1 {
			continue
		}
		for _, j := range w.DFS(i) {
			componentID[j] = current
		}
		current++
	}
	return current, componentID
}

// ConnectedComponents returns the sizes of every connected component,
// sorted largest-first.
func (g *Graph[T, A]) ConnectedComponents() []int {
	numComponents, componentID := g.ConnectedComponentIDs()
	sizes := make([]int, numComponents)
	for _, id := range componentID {
		sizes[id]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// SuggestConnections returns one vertex index per connected component (the
// first vertex DFS reaches it from), suitable as a starting point for
// reconnecting a fragmented graph.
func (g *Graph[T, A]) SuggestConnections() []int {
	n := g.VertexCount()
	componentID := make([]int, n)
	for i := range componentID {
		componentID[i] = -1
	}
	w := NewWalker(g)
	var suggestions []int
	current := 0
	for i := 0; i < n; i++ {
		if componentID[i] != -1 {
			continue
		}
		suggestions = append(suggestions, i)
		for _, j := range w.DFS(i) {
			componentID[j] = current
		}
		current++
	}
	return suggestions
}

// LeafCount returns the number of vertices with exactly one neighbor.
func (g *Graph[T, A]) LeafCount() int {
	count := 0
	for _, v := range g.vertices {
		if v.Degree() == 1 {
			count++
		}
	}
	return count
}

// QCore returns the size of the largest connected component remaining
// after iteratively removing every vertex with fewer than q neighbors
// still in the core, until a fixed point. Returns (0, false) if n==0 or
// q<2.
func (g *Graph[T, A]) QCore(q int) (size int, ok bool) {
	n := g.VertexCount()
	if q < 2 || n == 0 {
		return 0, false
	}

	degree := make([]int, n)
	for i, v := range g.vertices {
		degree[i] = v.Degree()
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if degree[i] == 0 || degree[i] >= q {
				continue
			}
			for _, nb := range g.vertices[i].Neighbors() {
				if degree[nb] > 0 {
					degree[nb]--
				}
			}
			degree[i] = 0
			changed = true
		}
	}

	result := 0
	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if degree[i] == 0 {
			continue
		}
		counter := 0
		stack = append(stack, i)
		degree[i] = 0
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			counter++
			for _, j := range g.vertices[idx].Neighbors() {
				if degree[j] == 0 {
					continue
				}
				degree[j] = 0
				stack = append(stack, j)
			}
		}
		if counter > result {
			result = counter
		}
	}
	return result, true
}

// Diameter returns the length of the longest shortest path in the graph,
// or (0, false) if the graph is disconnected or empty. Reuses a single
// Walker across all n BFS runs.
func (g *Graph[T, A]) Diameter() (int, bool) {
	connected, ok := g.IsConnected()
	if !ok || !connected {
		return 0, false
	}
	n := g.VertexCount()
	w := NewWalker(g)
	max := 0
	for start := 0; start < n; start++ {
		_, depth := w.BFS(start)
		for _, d := range depth {
			if d > max {
				max = d
			}
		}
	}
	return max, true
}

// LongestShortestPathFromIndex returns the eccentricity of vertex index:
// the length of the longest shortest path starting there.
func (g *Graph[T, A]) LongestShortestPathFromIndex(index int) int {
	w := NewWalker(g)
	_, depth := w.BFS(index)
	max := 0
	for _, d := range depth {
		if d > max {
			max = d
		}
	}
	return max
}

// VertexBiconnectedComponents runs Hopcroft-Tarjan on a clone of g (the
// algorithm destructively removes edges as it walks) and returns component
// sizes, largest first. strict=true drops size-2 components (bridge
// endpoints), matching the "node-independent-paths" alternative
// definition.
func (g *Graph[T, A]) VertexBiconnectedComponents(strict bool) []int {
	clone := g.Clone()
	n := clone.VertexCount()

	low := make([]int, n)
	number := make([]int, n)
	handled := make([]bool, n)
	var edgeStack [][2]int
	var vertexStack []int
	var components [][][2]int

	for pivot := 0; pivot < n; pivot++ {
		if handled[pivot] {
			continue
		}
		low[pivot] = 0
		number[pivot] = 0
		handled[pivot] = true
		vertexStack = append(vertexStack, pivot)

		for len(vertexStack) > 0 {
			top := vertexStack[len(vertexStack)-1]
			deg, _ := clone.Degree(top)
			if deg > 0 {
				nb, _ := clone.Container(top).AdjFirst()
				edgeStack = append(edgeStack, [2]int{top, nb})
				nextVertex := nb
				_ = clone.RemoveEdge(top, nb)

				if !handled[nextVertex] {
					number[nextVertex] = len(vertexStack)
					vertexStack = append(vertexStack, nextVertex)
					low[nextVertex] = number[top]
					handled[nextVertex] = true
				} else if number[nextVertex] < low[top] {
					low[top] = number[nextVertex]
				}
				continue
			}

			vertexStack = vertexStack[:len(vertexStack)-1]
			if len(vertexStack) == 0 {
				break
			}
			nextVertex := vertexStack[len(vertexStack)-1]
			if low[top] == number[nextVertex] {
				var component [][2]int
				for len(edgeStack) > 0 {
					cur := edgeStack[len(edgeStack)-1]
					if number[cur[1]] < number[nextVertex] || number[cur[0]] < number[nextVertex] {
						break
					}
					component = append(component, cur)
					edgeStack = edgeStack[:len(edgeStack)-1]
				}
				if len(component) > 0 {
					components = append(components, component)
				}
			} else if low[top] < low[nextVertex] {
				low[nextVertex] = low[top]
			}
		}
	}

	result := make([]int, 0, len(components))
	for _, component := range components {
		seen := make(map[int]struct{})
		for _, e := range component {
			seen[e[0]] = struct{}{}
			seen[e[1]] = struct{}{}
		}
		result = append(result, len(seen))
	}

	if strict {
		filtered := result[:0]
		for _, v := range result {
			if v > 2 {
				filtered = append(filtered, v)
			}
		}
		result = filtered
	}
	sort.Sort(sort.Reverse(sort.IntSlice(result)))
	return result
}

// VertexLoad computes Newman's shortest-path vertex load: for each source
// vertex, BFS-layer the graph, then walk vertices in reverse BFS order
// splitting each vertex's accumulated load equally among its BFS
// predecessors. With includeEndpoints false, each vertex's own visit (as
// an endpoint of its own shortest path) is subtracted out.
func (g *Graph[T, A]) VertexLoad(includeEndpoints bool) []float64 {
	n := g.VertexCount()
	load := make([]float64, n)
	bK := make([]float64, n)
	distance := make([]int, n)
	predecessor := make([][]int, n)
	order := make([]int, 0, n)
	queue := make([]int, 0, n)
	next := make([]int, 0, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			bK[j] = 1.0
			distance[j] = -1
			predecessor[j] = predecessor[j][:0]
		}
		order = order[:0]
		queue = queue[:0]
		next = next[:0]

		depth := 0
		queue = append(queue, i)
		distance[i] = 0

		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			order = append(order, idx)
			for _, nb := range g.vertices[idx].Neighbors() {
				if distance[nb] >= 0 {
					if distance[nb] == depth+1 {
						predecessor[nb] = append(predecessor[nb], idx)
					}
					continue
				}
				distance[nb] = depth + 1
				next = append(next, nb)
				predecessor[nb] = append(predecessor[nb], idx)
			}
			if len(queue) == 0 && len(next) > 0 {
				queue, next = next, queue[:0]
				depth++
			}
		}

		for k := len(order) - 1; k >= 0; k-- {
			if k == 0 {
				break
			}
			idx := order[k]
			load[idx] += bK[idx]
			if !includeEndpoints {
				load[idx] -= 1.0
			}
			if len(predecessor[idx]) > 0 {
				fraction := bK[idx] / float64(len(predecessor[idx]))
				for _, p := range predecessor[idx] {
					bK[p] += fraction
				}
			}
		}
	}
	return load
}

// Transitivity is the ratio of closed length-2 paths to all length-2
// paths. NaN if there are no length-2 paths.
func (g *Graph[T, A]) Transitivity() float64 {
	var pathCount, closedCount int
	for source := 0; source < g.VertexCount(); source++ {
		for _, n1 := range g.vertices[source].Neighbors() {
			for _, n2 := range g.vertices[n1].Neighbors() {
				if n2 == source {
					continue
				}
				if g.vertices[n2].IsAdjacent(source) {
					closedCount++
				}
				pathCount++
			}
		}
	}
	return float64(closedCount) / float64(pathCount)
}
