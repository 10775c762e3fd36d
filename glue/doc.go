// Package glue combines the log-density estimates of several
// Wang-Landau runs, each covering an overlapping sub-interval of a
// larger energy range, into one log-density over the full range.
//
// GlueWL sorts the contributing windows by their first border, cuts any
// precision drift with a per-curve re-normalization, computes a height
// correction from each pair of adjacent windows' overlap so their curves
// agree there, averages in the overlaps, and finally re-normalizes the
// combined curve so its probabilities sum to 1. Result.Write renders the
// outcome as a text table for external plotting.
package glue
