// Package glue stitches together the log-density estimates of several
// overlapping Wang-Landau windows into one log-density over a single
// reference histogram spanning their union.
package glue

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/Pardoxa/net-ensembles-sub000/sampling"
)

// WLLike is what GlueWL needs from a finished Wang-Landau window:
// sampling.WangLandauAdaptive[E] satisfies it directly.
type WLLike[E any] interface {
	Hist() sampling.DistanceHistogram[E]
	LogDensityBase10() []float64
	StepCounter() int
	TotalStepsAccepted() int
	TotalStepsRejected() int
}

// borderedHistogram is the capability GlueWL needs from a histogram
// beyond sampling.DistanceHistogram: a usable border vector. Int, Fast
// and Float all implement it.
type borderedHistogram[E any] interface {
	Borders() []E
	BinCount() int
}

// GlueWL combines list (sorted internally by each window's first border)
// into one Result over referenceHist's bins. referenceHist must cover
// every border used by every window in list, with a bin width constant
// across all of them — in practice, referenceHist should be built first
// and each window's histogram derived from it via
// (*histogram.Fast[E]).OverlappingPartition.
func GlueWL[E constraints.Ordered](list []WLLike[E], referenceHist borderedHistogram[E]) (*Result[E], error) {
	if len(list) == 0 {
		return nil, ErrEmptyList
	}

	totalSteps, totalAccepted, totalRejected := 0, 0, 0
	for _, wl := range list {
		totalSteps += wl.StepCounter()
		totalAccepted += wl.TotalStepsAccepted()
		totalRejected += wl.TotalStepsRejected()
	}

	sorted := append([]WLLike[E](nil), list...)
	firstBorder := func(wl WLLike[E]) (E, error) {
		b, ok := wl.Hist().(borderedHistogram[E])
		if !ok {
			var zero E
			return zero, ErrBorderCreation
		}
		borders := b.Borders()
		return borders[0], nil
	}
	var sortErr error
	sort.SliceStable(sorted, func(i, j int) bool {
		bi, err := firstBorder(sorted[i])
		if err != nil {
			sortErr = err
		}
		bj, err := firstBorder(sorted[j])
		if err != nil {
			sortErr = err
		}
		return bi < bj
	})
	if sortErr != nil {
		return nil, sortErr
	}

	borders := append([]E(nil), referenceHist.Borders()...)

	leftList := make([]int, len(sorted))
	rightList := make([]int, len(sorted))
	for i, wl := range sorted {
		b, ok := wl.Hist().(borderedHistogram[E])
		if !ok {
			return nil, ErrBorderCreation
		}
		wlBorders := b.Borders()
		first := wlBorders[0]
		secondLast := wlBorders[len(wlBorders)-2]

		l, err := binarySearchExact(borders, first)
		if err != nil {
			return nil, err
		}
		r, err := binarySearchExact(borders, secondLast)
		if err != nil {
			return nil, err
		}
		leftList[i] = l
		rightList[i] = r
	}

	log10Vec := make([][]float64, len(sorted))
	for i, wl := range sorted {
		log10Vec[i] = wl.LogDensityBase10()
	}

	reNormalizeDensity(log10Vec)

	zVec, err := calcZ(log10Vec, leftList, rightList)
	if err != nil {
		return nil, err
	}

	heightCorrection(log10Vec, zVec)

	glueLogDensity, err := mergeLog10(referenceHist.BinCount(), log10Vec, leftList, rightList)
	if err != nil {
		return nil, err
	}

	normSumTo1(glueLogDensity)

	return &Result[E]{
		GluedLog10Probability: glueLogDensity,
		Borders:               borders,
		Log10Vec:              log10Vec,
		LeftList:              leftList,
		TotalSteps:            totalSteps,
		TotalStepsAccepted:    totalAccepted,
		TotalStepsRejected:    totalRejected,
	}, nil
}
