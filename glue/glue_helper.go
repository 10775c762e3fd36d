package glue

import (
	"math"

	"golang.org/x/exp/constraints"
)

// normSumTo1 shifts glueLogDensity (in place) so that sum(10^v) == 1,
// ignoring non-finite entries (uncovered bins stay NaN).
func normSumTo1(glueLogDensity []float64) {
	sum := 0.0
	for _, v := range glueLogDensity {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			sum += math.Pow(10, v)
		}
	}
	logSum := math.Log10(sum)
	for i, v := range glueLogDensity {
		glueLogDensity[i] = v - logSum
	}
}

// mergeLog10 averages the height-corrected log10 curves over the union
// histogram's bins, bin by bin, over however many curves cover that bin.
func mergeLog10(size int, log10Vec [][]float64, leftList, rightList []int) ([]float64, error) {
	glueLogDensity := make([]float64, size)
	for i := range glueLogDensity {
		glueLogDensity[i] = math.NaN()
	}

	first := log10Vec[0]
	l, r := leftList[0], rightList[0]
	if r >= size {
		return nil, ErrOutOfBounds
	}
	copy(glueLogDensity[l:r+1], first)
	count := make([]int, size)
	for i := l; i <= r; i++ {
		count[i] = 1
	}

	for i := 1; i < len(log10Vec); i++ {
		left, right := leftList[i], rightList[i]
		if right >= size {
			return nil, ErrOutOfBounds
		}
		curve := log10Vec[i]
		for j := left; j <= right; j++ {
			count[j]++
			v := curve[j-left]
			if !math.IsInf(glueLogDensity[j], 0) && !math.IsNaN(glueLogDensity[j]) {
				glueLogDensity[j] += v
			} else {
				glueLogDensity[j] = v
			}
		}
	}

	for i, c := range count {
		if c > 0 {
			glueLogDensity[i] /= float64(c)
		}
	}
	return glueLogDensity, nil
}

// heightCorrection shifts every curve but the first by its accumulated
// z-offset, in place.
func heightCorrection(log10Vec [][]float64, zVec []float64) {
	for i := 1; i < len(log10Vec); i++ {
		z := zVec[i-1]
		for j := range log10Vec[i] {
			log10Vec[i][j] += z
		}
	}
}

// calcZ computes, for each adjacent pair of curves (sorted by first
// border), the mean height offset over their overlap that makes the
// second curve's overlap match the first's — accumulated, so curve i's
// offset already folds in every earlier curve's correction.
func calcZ(log10Vec [][]float64, leftList, rightList []int) ([]float64, error) {
	zVec := make([]float64, 0, len(leftList)-1)
	for i := 1; i < len(leftList); i++ {
		leftPrev, left := leftList[i-1], leftList[i]
		rightPrev, right := rightList[i-1], rightList[i]
		lM := max(left, leftPrev)
		rM := min(right, rightPrev)
		if lM > rM {
			return nil, ErrNoOverlap
		}
		overlapSize := rM - lM

		var prev, cur []float64
		if leftPrev >= left {
			diff := leftPrev - left
			prev = log10Vec[i-1][0 : overlapSize+1]
			cur = log10Vec[i][diff : diff+overlapSize+1]
		} else {
			diff := left - leftPrev
			prev = log10Vec[i-1][diff : diff+overlapSize+1]
			cur = log10Vec[i][0 : overlapSize+1]
		}

		sum := 0.0
		for k := range prev {
			sum += prev[k] - cur[k]
		}
		z := sum / float64(len(prev))
		if len(zVec) > 0 {
			z += zVec[len(zVec)-1]
		}
		zVec = append(zVec, z)
	}
	return zVec, nil
}

// reNormalizeDensity subtracts each curve's own max from itself, in
// place, to keep later precision errors small.
func reNormalizeDensity(log10Vec [][]float64) {
	for _, v := range log10Vec {
		m := math.Inf(-1)
		for _, val := range v {
			if val > m {
				m = val
			}
		}
		if math.IsInf(m, 0) {
			continue
		}
		for i := range v {
			v[i] -= m
		}
	}
}

// binarySearchExact finds val's exact index in a strictly-ascending
// borders slice.
func binarySearchExact[T constraints.Ordered](borders []T, val T) (int, error) {
	lo, hi := 0, len(borders)
	for lo < hi {
		mid := (lo + hi) / 2
		if borders[mid] < val {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(borders) || borders[lo] != val {
		return 0, ErrBinarySearch
	}
	return lo, nil
}
