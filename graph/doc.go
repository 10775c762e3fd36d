// Two container kinds ship: PlainAdjContainer for the common case, and
// SWAdjContainer for Watts-Strogatz, which additionally remembers each
// edge's ring origin so a second randomisation pass rewires only
// original, never-yet-rewired edges.
package graph
