package histogram

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Int bins values of an integer type T by dividing the covered interval
// into bins of equal width: get_bin_index(v) = (v-left)/bin_width. The
// interval width must divide evenly into the requested bin count — use
// Fast instead if you want bin_width fixed at 1 with no division, or if
// the interval doesn't divide evenly.
type Int[T constraints.Integer] struct {
	left, right     T
	lowInt, highInt int64
	bins            int
	binWidth        int64
	counts          []uint64
}

// NewInt builds an Int histogram covering the half-open interval
// [left, right).
func NewInt[T constraints.Integer](left, right T, bins int) (*Int[T], error) {
	return newIntRange(left, right, int64(right)-1, bins)
}

// NewIntInclusive builds an Int histogram covering [left, right].
func NewIntInclusive[T constraints.Integer](left, right T, bins int) (*Int[T], error) {
	return newIntRange(left, right, int64(right), bins)
}

func newIntRange[T constraints.Integer](left, right T, highInt int64, bins int) (*Int[T], error) {
	if bins < 1 {
		return nil, ErrNoBins
	}
	lowInt := int64(left)
	width := highInt - lowInt + 1
	if width <= 0 {
		return nil, ErrIntervalWidthZero
	}
	if width%int64(bins) != 0 {
		return nil, ErrModulo
	}
	return &Int[T]{
		left: left, right: right,
		lowInt: lowInt, highInt: highInt,
		bins: bins, binWidth: width / int64(bins),
		counts: make([]uint64, bins),
	}, nil
}

// GetBinIndex returns (v-left)/bin_width, or ErrOutsideHist if v falls
// outside [left, right].
func (h *Int[T]) GetBinIndex(v T) (int, error) {
	vi := int64(v)
	if vi < h.lowInt || vi > h.highInt {
		return 0, fmt.Errorf("histogram: Int.GetBinIndex: %w", ErrOutsideHist)
	}
	return int((vi - h.lowInt) / h.binWidth), nil
}

// IsInside reports whether v falls within [left, right].
func (h *Int[T]) IsInside(v T) bool {
	vi := int64(v)
	return vi >= h.lowInt && vi <= h.highInt
}

// Distance is IntervalDistanceOverlap(v, 1).
func (h *Int[T]) Distance(v T) float64 { return h.IntervalDistanceOverlap(v, 1) }

// IntervalDistanceOverlap implements the WL initialiser's coarse distance
// heuristic: 0 if v is inside; otherwise, with W = max(1, bins/k) the
// width of a "super-bin" in bin units, 1 + floor(bin-units past the
// nearest border / W).
func (h *Int[T]) IntervalDistanceOverlap(v T, k int) float64 {
	vi := int64(v)
	if vi >= h.lowInt && vi <= h.highInt {
		return 0
	}
	w := float64(h.bins) / float64(k)
	if w < 1 {
		w = 1
	}
	var diff int64
	if vi < h.lowInt {
		diff = h.lowInt - vi
	} else {
		diff = vi - h.highInt
	}
	diffBins := float64(diff) / float64(h.binWidth)
	return 1 + math.Floor(diffBins/w)
}

// CountVal increments the bin v falls into.
func (h *Int[T]) CountVal(v T) error {
	idx, err := h.GetBinIndex(v)
	if err != nil {
		return err
	}
	h.counts[idx]++
	return nil
}

// Hist returns the live counter vector.
func (h *Int[T]) Hist() []uint64 { return h.counts }

// BinCount returns the number of bins.
func (h *Int[T]) BinCount() int { return h.bins }

// Reset zeroes every bin's counter.
func (h *Int[T]) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
}

// Left returns the histogram's left (inclusive) bound.
func (h *Int[T]) Left() T { return h.left }

// Right returns the right bound as given to the constructor: inclusive for
// NewIntInclusive, exclusive for NewInt.
func (h *Int[T]) Right() T { return h.right }

// Borders returns the bins+1 bin-edge values: borders[i] is the inclusive
// left edge of bin i, and borders[bins] the exclusive right edge of the
// last bin — the shape package glue needs to locate a sub-histogram's
// first/second-to-last border inside a wider reference histogram.
func (h *Int[T]) Borders() []T {
	out := make([]T, h.bins+1)
	for i := 0; i <= h.bins; i++ {
		out[i] = T(h.lowInt + int64(i)*h.binWidth)
	}
	return out
}
