// Package netensembles is the module root for net-ensembles-sub000, a
// library for building random graph ensembles and sampling the large
// deviations of their topological observables.
//
// What is net-ensembles-sub000?
//
//	A single-threaded, generic toolkit for:
//
//	  - graph:     a generic adjacency-container graph with topological
//	               measurements (components, q-core, diameter, load, ...)
//	  - ensemble:  random graph generators (ER-C, configuration model,
//	               Watts-Strogatz, Barabasi-Albert, spatial) exposed as
//	               Markov chains over graph space
//	  - histogram: integer and float binning with overlapping windows
//	  - sampling:  Metropolis, Wang-Landau adaptive (with 1/t refinement)
//	              and entropic sampling drivers
//	  - glue:      stitching overlapping Wang-Landau windows into one
//	               normalized density estimate
//
// Everything here is owned by a single goroutine: ensembles carry their
// own *rand.Rand, graphs carry no locks, and samplers mutate their own
// state in place. Concurrent use is the caller's problem, same as
// running several independent simulations in separate goroutines, each
// with its own ensemble and sampler.
//
//	go get github.com/Pardoxa/net-ensembles-sub000
package netensembles
