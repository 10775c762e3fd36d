package histogram

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Fast bins values of an integer type T with bin_width fixed at 1: every
// representable value in [left, right] is its own bin, and get_bin_index
// is a plain subtraction with no division. The overlapping Wang-Landau
// sub-windows (OverlappingPartition) are only defined on this variant.
type Fast[T constraints.Integer] struct {
	left, right     T
	lowInt, highInt int64
	counts          []uint64
}

// NewFast builds a Fast histogram covering the half-open interval
// [left, right).
func NewFast[T constraints.Integer](left, right T) (*Fast[T], error) {
	return newFastRange(left, right, int64(right)-1)
}

// NewFastInclusive builds a Fast histogram covering [left, right].
func NewFastInclusive[T constraints.Integer](left, right T) (*Fast[T], error) {
	return newFastRange(left, right, int64(right))
}

func newFastRange[T constraints.Integer](left, right T, highInt int64) (*Fast[T], error) {
	lowInt := int64(left)
	width := highInt - lowInt + 1
	if width <= 0 {
		return nil, ErrIntervalWidthZero
	}
	return &Fast[T]{left: left, right: right, lowInt: lowInt, highInt: highInt, counts: make([]uint64, width)}, nil
}

// GetBinIndex returns v-left with no division, or ErrOutsideHist if v
// falls outside [left, right].
func (h *Fast[T]) GetBinIndex(v T) (int, error) {
	vi := int64(v)
	if vi < h.lowInt || vi > h.highInt {
		return 0, fmt.Errorf("histogram: Fast.GetBinIndex: %w", ErrOutsideHist)
	}
	return int(vi - h.lowInt), nil
}

// IsInside reports whether v falls within [left, right].
func (h *Fast[T]) IsInside(v T) bool {
	vi := int64(v)
	return vi >= h.lowInt && vi <= h.highInt
}

// Distance is IntervalDistanceOverlap(v, 1).
func (h *Fast[T]) Distance(v T) float64 { return h.IntervalDistanceOverlap(v, 1) }

// IntervalDistanceOverlap mirrors Int's heuristic, specialized to
// bin_width=1 so bin units and value units coincide directly.
func (h *Fast[T]) IntervalDistanceOverlap(v T, k int) float64 {
	vi := int64(v)
	if vi >= h.lowInt && vi <= h.highInt {
		return 0
	}
	bins := len(h.counts)
	w := float64(bins) / float64(k)
	if w < 1 {
		w = 1
	}
	var diff int64
	if vi < h.lowInt {
		diff = h.lowInt - vi
	} else {
		diff = vi - h.highInt
	}
	return 1 + math.Floor(float64(diff)/w)
}

// CountVal increments the bin v falls into.
func (h *Fast[T]) CountVal(v T) error {
	idx, err := h.GetBinIndex(v)
	if err != nil {
		return err
	}
	h.counts[idx]++
	return nil
}

// Hist returns the live counter vector.
func (h *Fast[T]) Hist() []uint64 { return h.counts }

// BinCount returns the number of bins (= right-left+1).
func (h *Fast[T]) BinCount() int { return len(h.counts) }

// Reset zeroes every bin's counter.
func (h *Fast[T]) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
}

// Left returns the histogram's left (inclusive) bound.
func (h *Fast[T]) Left() T { return h.left }

// Right returns the right bound as given to the constructor: inclusive for
// NewFastInclusive, exclusive for NewFast.
func (h *Fast[T]) Right() T { return h.right }

// Borders returns the bin_count+1 bin-edge values, borders[i] the left
// edge of bin i (bin_width fixed at 1) and borders[len-1] the exclusive
// right edge of the last bin.
func (h *Fast[T]) Borders() []T {
	out := make([]T, len(h.counts)+1)
	for i := range out {
		out[i] = T(h.lowInt + int64(i))
	}
	return out
}

// OverlappingPartition splits [left, right] into n sub-histograms such
// that adjacent ones overlap by a fraction overlap/(n+overlap) of the
// total width: left_i = left + floor(i*size/denom), right_i = left +
// floor((i+overlap+1)*size/denom), size = bin_count-1, denom = n+overlap.
// Floor division on both ends means adjacent windows share a border even
// at overlap=0, which is what lets glue average across the seam. These
// are the sub-windows fed to independent Wang-Landau runs whose results
// are later glued back together.
func (h *Fast[T]) OverlappingPartition(n, overlap int) ([]*Fast[T], error) {
	if n < 1 {
		return nil, ErrNoBins
	}
	size := int64(len(h.counts)) - 1
	denom := int64(n + overlap)
	out := make([]*Fast[T], n)
	for i := 0; i < n; i++ {
		loOffset := int64(i) * size / denom
		hiOffset := int64(i+overlap+1) * size / denom
		left := T(h.lowInt + loOffset)
		right := T(h.lowInt + hiOffset)
		sub, err := NewFastInclusive(left, right)
		if err != nil {
			return nil, err
		}
		out[i] = sub
	}
	return out, nil
}
