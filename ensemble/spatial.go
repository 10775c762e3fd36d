package ensemble

import (
	"math"
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/graph"
)

// Point is a vertex's location in the unit square.
type Point struct {
	X, Y float64
}

// Spatial draws from the random geometric ensemble: n vertices placed
// uniformly in the unit square, connected with probability decaying in
// their Euclidean distance. Coordinates live in an ensemble-owned parallel
// slice rather than inside the generic payload T, since plain adjacency
// containers carry no metadata slot beyond T itself.
type Spatial[T any] struct {
	g      *graph.Graph[T, *graph.PlainAdjContainer[T]]
	coords []Point
	rng    *rand.Rand

	f       float64
	alpha   float64
	sqrtNPi float64
}

// NewSpatial places n vertices uniformly at random in the unit square and
// draws an initial sample with base rate f and decay exponent alpha.
func NewSpatial[T any](n int, newT func(id int) T, f, alpha float64, opts ...EnsembleOption) *Spatial[T] {
	cfg := newConfig(opts...)
	s := &Spatial[T]{
		g:       graph.NewPlain(n, newT),
		rng:     cfg.rng,
		f:       f,
		alpha:   alpha,
		sqrtNPi: math.Sqrt(float64(n) * math.Pi),
	}
	s.placeVertices()
	s.Randomize()
	return s
}

// Graph returns the ensemble's underlying graph.
func (s *Spatial[T]) Graph() *graph.Graph[T, *graph.PlainAdjContainer[T]] { return s.g }

// SetRand swaps in a new RNG, returning the old one.
func (s *Spatial[T]) SetRand(rng *rand.Rand) *rand.Rand {
	old := s.rng
	s.rng = rng
	return old
}

// Coordinates returns vertex index's location.
func (s *Spatial[T]) Coordinates(index int) Point { return s.coords[index] }

func (s *Spatial[T]) placeVertices() {
	n := s.g.VertexCount()
	s.coords = make([]Point, n)
	for i := range s.coords {
		s.coords[i] = Point{X: s.rng.Float64(), Y: s.rng.Float64()}
	}
}

// Distance returns the plain Euclidean distance between vertices i and j
// (no torus wraparound).
func (s *Spatial[T]) Distance(i, j int) float64 {
	a, b := s.coords[i], s.coords[j]
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// EdgeProbability returns P(i,j) = clamp(f * (1 + sqrt(n*pi)*d/alpha)^-alpha,
// 0, 1), the connection probability for the random geometric ensemble.
func (s *Spatial[T]) EdgeProbability(i, j int) float64 {
	d := s.Distance(i, j)
	p := s.f * math.Pow(1+s.sqrtNPi*d/s.alpha, -s.alpha)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Randomize clears all edges, then adds each pair independently with
// probability EdgeProbability(i,j). O(n^2).
func (s *Spatial[T]) Randomize() {
	s.g.ClearEdges()
	n := s.g.VertexCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.rng.Float64() <= s.EdgeProbability(i, j) {
				_ = s.g.AddEdge(i, j)
			}
		}
	}
}

// MStep draws two distinct vertices uniformly, then with probability
// EdgeProbability(i,j) tries to add an edge between them, else tries to
// remove one. Returns StepNothing if the attempted mutation was a no-op.
func (s *Spatial[T]) MStep() Step {
	i, j := drawTwo(s.rng, s.g.VertexCount())
	if s.rng.Float64() <= s.EdgeProbability(i, j) {
		if err := s.g.AddEdge(i, j); err != nil {
			return Step{Kind: StepNothing}
		}
		return Step{Kind: StepAddedEdge, I: i, J: j}
	}
	if err := s.g.RemoveEdge(i, j); err != nil {
		return Step{Kind: StepNothing}
	}
	return Step{Kind: StepRemovedEdge, I: i, J: j}
}

// UndoStep reverses step: removes an AddedEdge, re-adds a RemovedEdge, does
// nothing for StepNothing.
func (s *Spatial[T]) UndoStep(step Step) error {
	switch step.Kind {
	case StepAddedEdge:
		return s.g.RemoveEdge(step.I, step.J)
	case StepRemovedEdge:
		return s.g.AddEdge(step.I, step.J)
	}
	return nil
}

// UndoStepQuiet is UndoStep, panicking instead of returning an error.
func (s *Spatial[T]) UndoStepQuiet(step Step) {
	if err := s.UndoStep(step); err != nil {
		panic("ensemble: Spatial.UndoStepQuiet: " + err.Error())
	}
}
