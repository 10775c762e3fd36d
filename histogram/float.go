package histogram

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Float bins values of a floating-point type T by binary-searching a
// sorted border vector rather than computing an index arithmetically —
// the representation that supports unequal bin widths.
type Float[T constraints.Float] struct {
	borders []T
	counts  []uint64
}

// NewFloat builds a Float histogram from borders, which must be strictly
// ascending and have at least two entries (one bin).
func NewFloat[T constraints.Float](borders []T) (*Float[T], error) {
	if len(borders) < 2 {
		return nil, ErrNoBins
	}
	for i := 1; i < len(borders); i++ {
		if !(borders[i] > borders[i-1]) {
			return nil, ErrIntervalWidthZero
		}
	}
	cp := append([]T(nil), borders...)
	return &Float[T]{borders: cp, counts: make([]uint64, len(cp)-1)}, nil
}

// NewFloatEqualWidth builds a Float histogram covering [left, right] split
// into bins equal-width bins.
func NewFloatEqualWidth[T constraints.Float](left, right T, bins int) (*Float[T], error) {
	if bins < 1 {
		return nil, ErrNoBins
	}
	if !(right > left) {
		return nil, ErrIntervalWidthZero
	}
	borders := make([]T, bins+1)
	width := (right - left) / T(bins)
	for i := range borders {
		borders[i] = left + T(i)*width
	}
	borders[bins] = right
	return NewFloat(borders)
}

func (f *Float[T]) validate(v T) error {
	fv := float64(v)
	if math.IsNaN(fv) || math.IsInf(fv, 0) {
		return ErrInvalidVal
	}
	return nil
}

// GetBinIndex binary-searches the border vector for the bin containing v.
func (f *Float[T]) GetBinIndex(v T) (int, error) {
	if err := f.validate(v); err != nil {
		return 0, err
	}
	if v < f.borders[0] || v > f.borders[len(f.borders)-1] {
		return 0, fmt.Errorf("histogram: Float.GetBinIndex: %w", ErrOutsideHist)
	}
	last := len(f.borders) - 1
	idx := sort.Search(last, func(i int) bool { return f.borders[i+1] > v })
	if idx == last {
		idx--
	}
	return idx, nil
}

// IsInside reports whether v falls within the covered interval.
func (f *Float[T]) IsInside(v T) bool {
	if err := f.validate(v); err != nil {
		return false
	}
	return v >= f.borders[0] && v <= f.borders[len(f.borders)-1]
}

// Distance returns 0 if v is inside; otherwise, using the nearest edge
// bin's width as the unit, 1 + floor(distance past the nearest border /
// unit width).
func (f *Float[T]) Distance(v T) float64 {
	if err := f.validate(v); err != nil {
		return math.Inf(1)
	}
	low, high := f.borders[0], f.borders[len(f.borders)-1]
	if v >= low && v <= high {
		return 0
	}
	if v < low {
		width := f.borders[1] - f.borders[0]
		return 1 + math.Floor(float64(low-v)/float64(width))
	}
	width := f.borders[len(f.borders)-1] - f.borders[len(f.borders)-2]
	return 1 + math.Floor(float64(v-high)/float64(width))
}

// CountVal increments the bin v falls into.
func (f *Float[T]) CountVal(v T) error {
	idx, err := f.GetBinIndex(v)
	if err != nil {
		return err
	}
	f.counts[idx]++
	return nil
}

// Hist returns the live counter vector.
func (f *Float[T]) Hist() []uint64 { return f.counts }

// BinCount returns the number of bins.
func (f *Float[T]) BinCount() int { return len(f.counts) }

// Reset zeroes every bin's counter.
func (f *Float[T]) Reset() {
	for i := range f.counts {
		f.counts[i] = 0
	}
}

// Borders returns the sorted border vector (length BinCount()+1).
func (f *Float[T]) Borders() []T { return f.borders }
