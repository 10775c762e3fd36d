// Package sampling estimates the probability density p(E) of a scalar
// observable E(G) over a random graph ensemble. Each driver consumes an
// ensemble.MarkovChain plus a caller-supplied energy_fn and a
// histogram.Histogram over E, and produces a log-density vector aligned
// with the histogram's bins:
//
//   - Metropolis: plain temperature-biased acceptance, no histogram.
//   - WangLandauAdaptive: flat-histogram sampling with 1/t refinement and
//     an adaptive step-size bandit, converging log_f to a threshold.
//   - EntropicAdaptive: built from a converged WangLandauAdaptive, samples
//     against log_density held fixed as a bias and refines it from the
//     gathered histogram.
//
// All three are single-threaded, synchronous, and own their rng — running
// several in parallel means constructing one per goroutine with
// independent rngs; nothing here is safe to share across goroutines.
package sampling
