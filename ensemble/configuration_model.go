package ensemble

import (
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/graph"
)

// ConfigurationModel draws graphs whose vertices match a fixed target
// degree sequence. Randomize pairs up "edge halves" uniformly at random and
// restarts from scratch whenever a pairing gets stuck (the same rejection
// strategy as the Rust original, not a per-pair retry); MStep proposes a
// degree-preserving 2-edge swap.
type ConfigurationModel[T any] struct {
	g      *graph.Graph[T, *graph.PlainAdjContainer[T]]
	degree []int
	rng    *rand.Rand

	// backup holds one entry per edge half: backup[k] is the vertex that
	// owns the k-th half. halves is the scratch copy consumed (popped from)
	// during one randomize draw.
	backup []int
	halves []int
}

// degreeVecIsValid rejects degree vectors the model does not accept: too
// short, a negative entry or one of n-1 or more, or an odd sum (the
// handshake lemma).
func degreeVecIsValid(degree []int) bool {
	n := len(degree)
	if n <= 1 {
		return false
	}
	sum := 0
	for _, d := range degree {
		if d < 0 || d >= n-1 {
			return false
		}
		sum += d
	}
	return sum%2 == 0
}

// NewConfigurationModelFromVec builds a configuration model targeting an
// explicit per-vertex degree vector.
func NewConfigurationModelFromVec[T any](degree []int, newT func(id int) T, opts ...EnsembleOption) (*ConfigurationModel[T], error) {
	if !degreeVecIsValid(degree) {
		return nil, ErrInvalidDegreeVec
	}
	cfg := newConfig(opts...)
	c := &ConfigurationModel[T]{
		g:      graph.NewPlain(len(degree), newT),
		degree: append([]int(nil), degree...),
		rng:    cfg.rng,
	}
	c.initEdgeHalves()
	c.Randomize()
	return c, nil
}

// NewConfigurationModelFromConst builds a configuration model targeting a
// constant degree d for all n vertices (a random regular graph).
func NewConfigurationModelFromConst[T any](n, d int, newT func(id int) T, opts ...EnsembleOption) (*ConfigurationModel[T], error) {
	degree := make([]int, n)
	for i := range degree {
		degree[i] = d
	}
	return NewConfigurationModelFromVec(degree, newT, opts...)
}

// Graph returns the ensemble's underlying graph.
func (c *ConfigurationModel[T]) Graph() *graph.Graph[T, *graph.PlainAdjContainer[T]] { return c.g }

// SetRand swaps in a new RNG, returning the old one.
func (c *ConfigurationModel[T]) SetRand(rng *rand.Rand) *rand.Rand {
	old := c.rng
	c.rng = rng
	return old
}

// initEdgeHalves rebuilds backup: degree[v] copies of v, one per half-edge
// owned by v.
func (c *ConfigurationModel[T]) initEdgeHalves() {
	total := 0
	for _, d := range c.degree {
		total += d
	}
	c.backup = make([]int, 0, total)
	for v, d := range c.degree {
		for k := 0; k < d; k++ {
			c.backup = append(c.backup, v)
		}
	}
}

// Randomize clears all edges and redraws a fresh pairing of edge halves,
// restarting the entire draw whenever the scratch list gets stuck with two
// halves belonging to the same vertex (or to already-adjacent vertices) and
// no other pair left to swap in.
func (c *ConfigurationModel[T]) Randomize() {
	for {
		c.g.ClearEdges()
		c.halves = append(c.halves[:0], c.backup...)
		if c.addMultipleRandomEdges() {
			return
		}
	}
}

// addMultipleRandomEdges shuffles halves, then repeatedly pops the last
// entry and pairs it with a scan-backward search for a partner that is
// neither the same vertex nor already adjacent; the chosen partner is
// removed via swap-with-last. Returns false if it gets stuck with >1 half
// left and no valid partner anywhere in the remaining list.
func (c *ConfigurationModel[T]) addMultipleRandomEdges() bool {
	c.rng.Shuffle(len(c.halves), func(i, j int) {
		c.halves[i], c.halves[j] = c.halves[j], c.halves[i]
	})
	for len(c.halves) > 1 {
		last := len(c.halves) - 1
		a := c.halves[last]
		c.halves = c.halves[:last]

		found := -1
		for k := len(c.halves) - 1; k >= 0; k-- {
			b := c.halves[k]
			if b == a {
				continue
			}
			if c.g.Container(a).IsAdjacent(b) {
				continue
			}
			found = k
			break
		}
		if found == -1 {
			return false
		}
		b := c.halves[found]
		c.halves[found] = c.halves[len(c.halves)-1]
		c.halves = c.halves[:len(c.halves)-1]
		_ = c.g.AddEdge(a, b)
	}
	return true
}

// drawTwoDistinctVertices draws two distinct positions from backup and
// returns the vertices they name, retrying until the drawn vertices differ
// (a vertex with multiple edge halves can otherwise draw itself twice).
func (c *ConfigurationModel[T]) drawTwoDistinctVertices() (int, int) {
	for {
		i, j := drawTwo(c.rng, len(c.backup))
		v1, v2 := c.backup[i], c.backup[j]
		if v1 != v2 {
			return v1, v2
		}
	}
}

// MStep proposes a degree-preserving double edge swap: pick two vertices
// v1, v2 (weighted by degree, via the backup edge-half list), each
// contributes one random neighbor n1, n2, and the edges (v1,n1)/(v2,n2) are
// replaced by (v1,v2)/(n1,n2) provided the result stays simple. Returns
// StepError if no legal swap was found.
func (c *ConfigurationModel[T]) MStep() Step {
	v1, v2 := c.drawTwoDistinctVertices()

	n1s := c.g.NeighborIDs(v1)
	n2s := c.g.NeighborIDs(v2)
	if len(n1s) == 0 || len(n2s) == 0 {
		return Step{Kind: StepError}
	}
	n1 := n1s[c.rng.Intn(len(n1s))]
	n2 := n2s[c.rng.Intn(len(n2s))]

	if n1 == n2 {
		return Step{Kind: StepError}
	}

	if err := c.g.AddEdge(v1, v2); err != nil {
		return Step{Kind: StepError}
	}
	if err := c.g.AddEdge(n1, n2); err != nil {
		_ = c.g.RemoveEdge(v1, v2)
		return Step{Kind: StepError}
	}

	_ = c.g.RemoveEdge(v1, n1)
	_ = c.g.RemoveEdge(v2, n2)

	return Step{Kind: StepConfigSwap, I: v1, J: n1, K: v2, L: n2}
}

// UndoStep reverses a ConfigSwap: restores the two edges the swap removed
// and removes the two it added.
func (c *ConfigurationModel[T]) UndoStep(step Step) error {
	if step.Kind != StepConfigSwap {
		return nil
	}
	if err := c.g.AddEdge(step.K, step.L); err != nil {
		return err
	}
	if err := c.g.AddEdge(step.I, step.J); err != nil {
		return err
	}
	if err := c.g.RemoveEdge(step.J, step.L); err != nil {
		return err
	}
	return c.g.RemoveEdge(step.I, step.K)
}

// UndoStepQuiet is UndoStep, panicking instead of returning an error.
func (c *ConfigurationModel[T]) UndoStepQuiet(step Step) {
	if err := c.UndoStep(step); err != nil {
		panic("ensemble: ConfigurationModel.UndoStepQuiet: " + err.Error())
	}
}
