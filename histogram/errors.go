package histogram

import "errors"

// Construction errors. All fatal to the caller per spec: a histogram that
// fails to construct must not be used.
var (
	ErrIntervalWidthZero = errors.New("histogram: interval has zero width")
	ErrNoBins            = errors.New("histogram: bin count must be >= 1")
	ErrModulo            = errors.New("histogram: interval width is not evenly divisible by bin count")
	ErrUsizeCast         = errors.New("histogram: value does not fit the index type")
)

// Indexing errors. Returned to the caller, not fatal: drivers treat them as
// a rejected Markov step.
var (
	ErrOutsideHist = errors.New("histogram: value outside the histogram's range")
	ErrInvalidVal  = errors.New("histogram: value is NaN or infinite")
)
