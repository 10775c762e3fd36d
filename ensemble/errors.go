package ensemble

import "errors"

// ErrInvalidDegreeVec indicates a degree vector that cannot be the degree
// sequence of any simple graph: length <= 1, some entry >= len-1, or an odd
// sum.
var ErrInvalidDegreeVec = errors.New("ensemble: invalid degree vector")

// ErrRingTooSmall indicates a Watts-Strogatz vertex count too small to
// support the requested neighbor distance (need n >= 1+2*k).
var ErrRingTooSmall = errors.New("ensemble: ring too small for neighbor distance")
