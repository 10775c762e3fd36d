package sampling

import (
	"math"
	"math/rand"
	"sort"
)

// stepBandit picks the Markov step size for a single WL/entropic step.
// Phase 1 drives a shuffled, deterministic trial list (every size in
// [minStep, minStep+len(acceptedHist)-1] repeated samplesPerTrial times) so
// every size's acceptance rate gets measured. Once the list is exhausted,
// phase 2 draws uniformly from bestOfSteps, the sizes whose measured
// acceptance rate landed closest to 0.5 — the step sizes a Metropolis-style
// chain mixes fastest with. is_rebuilding_statistics (counter < len(trial
// list)) tells a caller which phase it's in.
type stepBandit struct {
	rng             *rand.Rand
	minStep         int
	trialList       []int
	counter         int
	acceptedHist    []int
	rejectedHist    []int
	totalAccepted   int
	totalRejected   int
	bestOfSteps     []int
	minBestOfCount  int
	bestOfThreshold float64
}

func newStepBandit(rng *rand.Rand, trialMin, trialMax, samplesPerTrial, minBestOfCount int, bestOfThreshold float64) (*stepBandit, error) {
	if trialMax < trialMin {
		return nil, ErrInvalidMinMaxTrialSteps
	}
	distinct := trialMax - trialMin + 1
	if minBestOfCount > distinct {
		return nil, ErrInvalidBestOf
	}
	if !(bestOfThreshold >= 0 && bestOfThreshold <= 0.5) || math.IsNaN(bestOfThreshold) {
		bestOfThreshold = 0
	}

	trialList := make([]int, 0, distinct*samplesPerTrial)
	for s := trialMin; s <= trialMax; s++ {
		for k := 0; k < samplesPerTrial; k++ {
			trialList = append(trialList, s)
		}
	}
	rng.Shuffle(len(trialList), func(i, j int) { trialList[i], trialList[j] = trialList[j], trialList[i] })

	return &stepBandit{
		rng:             rng,
		minStep:         trialMin,
		trialList:       trialList,
		acceptedHist:    make([]int, distinct),
		rejectedHist:    make([]int, distinct),
		minBestOfCount:  minBestOfCount,
		bestOfThreshold: bestOfThreshold,
	}, nil
}

// IsRebuildingStatistics reports whether the bandit is still in phase 1.
func (b *stepBandit) IsRebuildingStatistics() bool { return b.counter < len(b.trialList) }

// FractionOfStatisticsGathered tracks phase-1 progress, 0 <= val <= 1.
func (b *stepBandit) FractionOfStatisticsGathered() float64 {
	if len(b.trialList) == 0 {
		return 1
	}
	f := float64(b.counter) / float64(len(b.trialList))
	if f > 1 {
		return 1
	}
	return f
}

func (b *stepBandit) minStepSize() int { return b.minStep }
func (b *stepBandit) maxStepSize() int { return b.minStep + len(b.acceptedHist) - 1 }

func (b *stepBandit) fractionAcceptedTotal() float64 {
	acc := b.totalAccepted + sumInts(b.acceptedHist)
	total := acc + b.totalRejected + sumInts(b.rejectedHist)
	if total == 0 {
		return math.NaN()
	}
	return float64(acc) / float64(total)
}

func (b *stepBandit) fractionAcceptedCurrent() float64 {
	acc := sumInts(b.acceptedHist)
	total := acc + sumInts(b.rejectedHist)
	if total == 0 {
		return math.NaN()
	}
	return float64(acc) / float64(total)
}

func (b *stepBandit) statisticBinNotHit() bool {
	for i := range b.acceptedHist {
		if b.acceptedHist[i]+b.rejectedHist[i] == 0 {
			return true
		}
	}
	return false
}

// EstimateStatistics returns the per-size estimated acceptance rate,
// list[i] corresponding to step size i+minStep. rebuilding reports whether
// phase 1 is still in progress; if so and some size has never been tried,
// err is ErrNotEnoughStatistics and estimate is nil.
func (b *stepBandit) EstimateStatistics() (estimate []float64, rebuilding bool, err error) {
	calc := func() []float64 {
		out := make([]float64, len(b.acceptedHist))
		for i := range out {
			a, r := float64(b.acceptedHist[i]), float64(b.rejectedHist[i])
			out[i] = a / (a + r)
		}
		return out
	}
	rebuilding = b.IsRebuildingStatistics()
	if rebuilding && b.statisticBinNotHit() {
		return nil, true, ErrNotEnoughStatistics
	}
	return calc(), rebuilding, nil
}

func (b *stepBandit) generateBestOf() {
	estimate, _, err := b.EstimateStatistics()
	if err != nil {
		return
	}
	type probIndex struct {
		prob  float64
		index int
	}
	ranked := make([]probIndex, len(estimate))
	for i, p := range estimate {
		ranked[i] = probIndex{prob: p, index: i}
	}
	sort.Slice(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].prob-0.5) < math.Abs(ranked[j].prob-0.5)
	})
	for _, pi := range ranked {
		if math.Abs(pi.prob-0.5) <= b.bestOfThreshold || len(b.bestOfSteps) < b.minBestOfCount {
			b.bestOfSteps = append(b.bestOfSteps, pi.index+b.minStep)
		} else {
			break
		}
	}
}

func (b *stepBandit) adjustBestOf() {
	b.bestOfSteps = b.bestOfSteps[:0]
	b.generateBestOf()
}

func (b *stepBandit) getStepSize() int {
	if b.counter < len(b.trialList) {
		return b.trialList[b.counter]
	}
	if len(b.bestOfSteps) == 0 {
		b.generateBestOf()
	}
	return b.bestOfSteps[b.rng.Intn(len(b.bestOfSteps))]
}

func (b *stepBandit) countAccepted(size int) {
	b.acceptedHist[size-b.minStep]++
	b.counter++
}

func (b *stepBandit) countRejected(size int) {
	b.rejectedHist[size-b.minStep]++
	b.counter++
}

// resetStatistics folds the current accept/reject histograms into the
// lifetime totals, zeroes them, clears bestOfSteps, and restarts phase 1's
// counter (not the trial list itself — callers that want a fresh shuffled
// trial list reshuffle separately).
func (b *stepBandit) resetStatistics() {
	b.bestOfSteps = b.bestOfSteps[:0]
	b.totalAccepted += sumInts(b.acceptedHist)
	for i := range b.acceptedHist {
		b.acceptedHist[i] = 0
	}
	b.totalRejected += sumInts(b.rejectedHist)
	for i := range b.rejectedHist {
		b.rejectedHist[i] = 0
	}
	b.counter = 0
}

func (b *stepBandit) reshuffleTrialList() {
	b.rng.Shuffle(len(b.trialList), func(i, j int) { b.trialList[i], b.trialList[j] = b.trialList[j], b.trialList[i] })
}

func sumInts(s []int) int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}
