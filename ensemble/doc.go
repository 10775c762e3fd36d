// Package ensemble implements the graph ensembles sampled by package
// sampling: Erdos-Renyi with target connectivity (ER), the configuration
// model, Watts-Strogatz small-world, Barabasi-Albert, and a spatial
// (random geometric) ensemble.
//
// Every ensemble owns exactly one graph.Graph and one *rand.Rand (swap it
// with SetRand) and implements two small contracts: SimpleSample
// (Randomize, an independent draw) and, where a Markov chain over the
// ensemble makes sense, MarkovChain (MStep/UndoStep/UndoStepQuiet). Step is
// a small tagged struct rather than an interface, since the set of step
// shapes across all five ensembles is fixed and known up front.
package ensemble
