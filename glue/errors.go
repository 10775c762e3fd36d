package glue

import "errors"

var (
	// ErrEmptyList is returned by GlueWL when the input list is empty.
	ErrEmptyList = errors.New("glue: list of distributions is empty")
	// ErrBorderCreation wraps a failure to read a contributing
	// distribution's energy-histogram borders.
	ErrBorderCreation = errors.New("glue: could not read a histogram's borders")
	// ErrBinarySearch is returned when a contributing distribution's first
	// or second-to-last border is not present in the reference histogram's
	// border vector.
	ErrBinarySearch = errors.New("glue: border value not found in reference histogram")
	// ErrOutOfBounds is returned when a contributing distribution's last
	// border index falls outside the reference histogram.
	ErrOutOfBounds = errors.New("glue: contributing distribution extends past the reference histogram")
	// ErrNoOverlap is returned when two adjacent (by first border)
	// distributions do not actually overlap.
	ErrNoOverlap = errors.New("glue: adjacent distributions do not overlap")
)
