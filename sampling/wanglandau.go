package sampling

import (
	"math"
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
	"github.com/Pardoxa/net-ensembles-sub000/histogram"
)

// WLMode is Wang-Landau adaptive's two-state refinement machine. The
// transition RefineOriginal -> Refine1T is one-way, triggered from inside
// CheckRefine.
type WLMode int

const (
	RefineOriginal WLMode = iota
	Refine1T
)

func (m WLMode) String() string {
	if m == Refine1T {
		return "Refine1T"
	}
	return "RefineOriginal"
}

// DistanceHistogram is histogram.Histogram plus the overlap-widened
// distance measure the interval/mixed init heuristics need. Int and Fast
// implement it; Float does not, since that heuristic is defined in integer
// bin units.
type DistanceHistogram[V any] interface {
	histogram.Histogram[V]
	IntervalDistanceOverlap(v V, k int) float64
}

func anyBinZero[V any](h histogram.Histogram[V]) bool {
	for _, c := range h.Hist() {
		if c == 0 {
			return true
		}
	}
	return false
}

func mSteps(e ensemble.MarkovChain, k int) []ensemble.Step {
	steps := make([]ensemble.Step, k)
	for i := range steps {
		steps[i] = e.MStep()
	}
	return steps
}

func undoStepsQuiet(e ensemble.MarkovChain, steps []ensemble.Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		e.UndoStepQuiet(steps[i])
	}
}

// WangLandauAdaptive drives an ensemble.MarkovChain through the adaptive
// 1/t Wang-Landau algorithm, estimating log_density(E) over a histogram's
// bins. E is the energy type returned by the caller's energy_fn.
type WangLandauAdaptive[E any] struct {
	rng              *rand.Rand
	bandit           *stepBandit
	ensemble         ensemble.MarkovChain
	histogram        DistanceHistogram[E]
	logF             float64
	logFThreshold    float64
	stepCount        int
	logDensity       []float64
	oldEnergy        *E
	oldBin           *int
	mode             WLMode
	checkRefineEvery int
}

// NewWangLandauAdaptive builds a Wang-Landau adaptive driver. One of the
// Init* heuristics must be called before stepping.
func NewWangLandauAdaptive[E any](
	logFThreshold float64,
	ens ensemble.MarkovChain,
	rng *rand.Rand,
	samplesPerTrial, trialStepMin, trialStepMax, minBestOfCount int,
	bestOfThreshold float64,
	hist DistanceHistogram[E],
	checkRefineEvery int,
) (*WangLandauAdaptive[E], error) {
	if checkRefineEvery <= 0 {
		return nil, ErrCheckRefineEvery0
	}
	if !(logFThreshold >= 0) || math.IsInf(logFThreshold, 0) || math.IsNaN(logFThreshold) {
		return nil, ErrInvalidLogFThreshold
	}
	bandit, err := newStepBandit(rng, trialStepMin, trialStepMax, samplesPerTrial, minBestOfCount, bestOfThreshold)
	if err != nil {
		return nil, err
	}
	return &WangLandauAdaptive[E]{
		rng:              rng,
		bandit:           bandit,
		ensemble:         ens,
		histogram:        hist,
		logF:             1.0,
		logFThreshold:    logFThreshold,
		logDensity:       make([]float64, hist.BinCount()),
		mode:             RefineOriginal,
		checkRefineEvery: checkRefineEvery,
	}, nil
}

// LogF returns the current refinement factor.
func (w *WangLandauAdaptive[E]) LogF() float64 { return w.logF }

// LogFThreshold returns the convergence threshold.
func (w *WangLandauAdaptive[E]) LogFThreshold() float64 { return w.logFThreshold }

// LogDensity returns the live (non-normalized, natural-log) density estimate.
func (w *WangLandauAdaptive[E]) LogDensity() []float64 { return w.logDensity }

// LogDensityBase10 returns LogDensity converted to base 10.
func (w *WangLandauAdaptive[E]) LogDensityBase10() []float64 { return logDensityBase(w.logDensity, 10) }

// LogDensityBase returns LogDensity converted to an arbitrary base.
func (w *WangLandauAdaptive[E]) LogDensityBase(base float64) []float64 {
	return logDensityBase(w.logDensity, base)
}

func logDensityBase(logDensity []float64, base float64) []float64 {
	out := make([]float64, len(logDensity))
	div := math.Log(base)
	for i, v := range logDensity {
		out[i] = v / div
	}
	return out
}

// Mode returns the current refinement-machine state.
func (w *WangLandauAdaptive[E]) Mode() WLMode { return w.mode }

// StepCounter returns the number of Wang-Landau steps taken.
func (w *WangLandauAdaptive[E]) StepCounter() int { return w.stepCount }

// Hist returns the live energy histogram.
func (w *WangLandauAdaptive[E]) Hist() DistanceHistogram[E] { return w.histogram }

// BestOfSteps returns the step sizes the bandit is currently sampling from.
func (w *WangLandauAdaptive[E]) BestOfSteps() []int { return w.bandit.bestOfSteps }

// FractionAcceptedTotal and FractionAcceptedCurrent report the bandit's
// lifetime and current-window acceptance ratios.
func (w *WangLandauAdaptive[E]) FractionAcceptedTotal() float64 { return w.bandit.fractionAcceptedTotal() }
func (w *WangLandauAdaptive[E]) FractionAcceptedCurrent() float64 {
	return w.bandit.fractionAcceptedCurrent()
}

// TotalStepsAccepted and TotalStepsRejected report the bandit's lifetime
// accept/reject counts, folding in whatever hasn't been rolled into the
// lifetime totals by a resetStatistics call yet.
func (w *WangLandauAdaptive[E]) TotalStepsAccepted() int {
	return w.bandit.totalAccepted + sumInts(w.bandit.acceptedHist)
}
func (w *WangLandauAdaptive[E]) TotalStepsRejected() int {
	return w.bandit.totalRejected + sumInts(w.bandit.rejectedHist)
}

// EstimateStatistics exposes the bandit's per-step-size acceptance
// estimate and whether it is still being gathered.
func (w *WangLandauAdaptive[E]) EstimateStatistics() ([]float64, bool, error) {
	return w.bandit.EstimateStatistics()
}

// IsConverged reports log_f <= log_f_threshold.
func (w *WangLandauAdaptive[E]) IsConverged() bool { return w.logF <= w.logFThreshold }

func (w *WangLandauAdaptive[E]) logF1T() float64 {
	return float64(w.histogram.BinCount()) / float64(w.stepCount)
}

func (w *WangLandauAdaptive[E]) resetStatistics() { w.bandit.resetStatistics() }

// CheckRefine runs the per-step refinement check. RefineOriginal: every
// checkRefineEvery steps, if no histogram bin is zero, tentatively halve
// log_f; if it would fall at or below the 1/t reference, switch to
// Refine1T at exactly that value; otherwise reset the bandit statistics;
// either way reset the histogram. Refine1T: log_f tracks the 1/t reference
// every step, and best_of_steps is re-ranked every max(2000, 4*checkRefineEvery)
// steps.
func (w *WangLandauAdaptive[E]) CheckRefine() {
	switch w.mode {
	case Refine1T:
		w.logF = w.logF1T()
		adjust := 2000
		if 4*w.checkRefineEvery > adjust {
			adjust = 4 * w.checkRefineEvery
		}
		if w.stepCount%adjust == 0 {
			w.bandit.adjustBestOf()
		}
	case RefineOriginal:
		if w.stepCount%w.checkRefineEvery == 0 && !anyBinZero(w.histogram) {
			ref1T := w.logF1T()
			w.logF *= 0.5
			if w.logF <= ref1T {
				w.logF = ref1T
				w.mode = Refine1T
			} else {
				w.resetStatistics()
			}
			w.histogram.Reset()
		}
	}
}

func (w *WangLandauAdaptive[E]) endInit() {
	w.resetStatistics()
	idx, err := w.histogram.GetBinIndex(*w.oldEnergy)
	if err != nil {
		panic("sampling: WangLandauAdaptive.endInit: old_bin invalid after heuristic init")
	}
	w.oldBin = &idx
}

// init repeatedly proposes steps until energyFn returns a valid energy,
// counting every rejected attempt towards the bandit's warm-up statistics.
// stepLimit < 0 means unlimited.
func (w *WangLandauAdaptive[E]) init(energyFn func(ensemble.MarkovChain) (E, bool), stepLimit int) error {
	if e, ok := energyFn(w.ensemble); ok {
		w.oldEnergy = &e
		return nil
	}
	for attempt := 0; stepLimit < 0 || attempt < stepLimit; attempt++ {
		size := w.bandit.getStepSize()
		_ = mSteps(w.ensemble, size)
		if e, ok := energyFn(w.ensemble); ok {
			w.oldEnergy = &e
			w.bandit.countAccepted(size)
			return nil
		}
		w.bandit.countRejected(size)
	}
	return ErrInitFailed
}

func (w *WangLandauAdaptive[E]) greedyHelper(oldDistance *float64, energyFn func(ensemble.MarkovChain) (E, bool), distanceFn func(DistanceHistogram[E], E) float64) {
	size := w.bandit.getStepSize()
	steps := mSteps(w.ensemble, size)

	if e, ok := energyFn(w.ensemble); ok {
		d := distanceFn(w.histogram, e)
		if d <= *oldDistance {
			w.oldEnergy = &e
			*oldDistance = d
			w.bandit.countAccepted(size)
			return
		}
	}
	w.bandit.countRejected(size)
	undoStepsQuiet(w.ensemble, steps)
}

// InitGreedyHeuristic drives histogram distance monotonically to 0 by
// accepting steps that do not increase it.
func (w *WangLandauAdaptive[E]) InitGreedyHeuristic(energyFn func(ensemble.MarkovChain) (E, bool), stepLimit int) error {
	if err := w.init(energyFn, stepLimit); err != nil {
		return err
	}
	oldDistance := w.histogram.Distance(*w.oldEnergy)
	steps := 0
	for oldDistance != 0 {
		w.greedyHelper(&oldDistance, energyFn, DistanceHistogram[E].Distance)
		if stepLimit >= 0 && steps == stepLimit {
			return ErrInitFailed
		}
		steps++
	}
	w.endInit()
	return nil
}

// InitIntervalHeuristik is InitGreedyHeuristic using the coarser
// overlap-widened distance metric.
func (w *WangLandauAdaptive[E]) InitIntervalHeuristik(overlap int, energyFn func(ensemble.MarkovChain) (E, bool), stepLimit int) error {
	if overlap < 1 {
		overlap = 1
	}
	if err := w.init(energyFn, stepLimit); err != nil {
		return err
	}
	dist := func(h DistanceHistogram[E], v E) float64 { return h.IntervalDistanceOverlap(v, overlap) }
	oldDistance := dist(w.histogram, *w.oldEnergy)
	steps := 0
	for oldDistance != 0 {
		w.greedyHelper(&oldDistance, energyFn, dist)
		if stepLimit >= 0 && steps == stepLimit {
			return ErrInitFailed
		}
		steps++
	}
	w.endInit()
	return nil
}

// InitMixedHeuristik alternates the greedy and interval metrics, switching
// every `mid` steps of a counter wrapping at 0 — the recommended default
// when unsure which single heuristic to use.
func (w *WangLandauAdaptive[E]) InitMixedHeuristik(overlap, mid int, energyFn func(ensemble.MarkovChain) (E, bool), stepLimit int) error {
	if overlap < 1 {
		overlap = 1
	}
	if err := w.init(energyFn, stepLimit); err != nil {
		return err
	}
	if w.histogram.IsInside(*w.oldEnergy) {
		w.endInit()
		return nil
	}

	dist := func(h DistanceHistogram[E], v E) float64 { return h.IntervalDistanceOverlap(v, overlap) }
	oldDist := math.Inf(1)
	oldDistInterval := math.Inf(1)
	counter := 0
	steps := 0
	for {
		current := *w.oldEnergy
		if counter == 0 {
			oldDist = w.histogram.Distance(current)
		} else if counter == mid {
			oldDistInterval = dist(w.histogram, current)
		}
		if counter < mid {
			w.greedyHelper(&oldDist, energyFn, DistanceHistogram[E].Distance)
			if oldDist == 0 {
				break
			}
		} else {
			w.greedyHelper(&oldDistInterval, energyFn, dist)
			if oldDistInterval == 0 {
				break
			}
		}
		counter++
		if mid > 0 && counter == 2*mid {
			counter = 0
		}
		if stepLimit >= 0 {
			if steps == stepLimit {
				return ErrInitFailed
			}
			steps++
		}
	}
	w.endInit()
	return nil
}

func (w *WangLandauAdaptive[E]) metropolisAcceptionProb(oldBin, newBin int) float64 {
	return math.Exp(w.logDensity[oldBin] - w.logDensity[newBin])
}

// WangLandauStep performs one Wang-Landau step. Panics if no Init*
// heuristic has been called yet.
func (w *WangLandauAdaptive[E]) WangLandauStep(energyFn func(ensemble.MarkovChain) (E, bool)) {
	if w.oldBin == nil {
		panic("sampling: WangLandauAdaptive.WangLandauStep: call an Init* heuristic first")
	}
	oldBin := *w.oldBin

	w.stepCount++
	size := w.bandit.getStepSize()
	steps := mSteps(w.ensemble, size)

	w.CheckRefine()

	energy, ok := energyFn(w.ensemble)
	if !ok {
		w.bandit.countRejected(size)
		_ = w.histogram.CountVal(*w.oldEnergy)
		w.logDensity[oldBin] += w.logF
		undoStepsQuiet(w.ensemble, steps)
		return
	}

	currentBin, err := w.histogram.GetBinIndex(energy)
	if err != nil {
		w.bandit.countRejected(size)
		undoStepsQuiet(w.ensemble, steps)
	} else {
		acceptProb := w.metropolisAcceptionProb(oldBin, currentBin)
		if w.rng.Float64() > acceptProb {
			w.bandit.countRejected(size)
			undoStepsQuiet(w.ensemble, steps)
		} else {
			w.bandit.countAccepted(size)
			w.oldEnergy = &energy
			w.oldBin = &currentBin
		}
	}

	_ = w.histogram.CountVal(*w.oldEnergy)
	w.logDensity[*w.oldBin] += w.logF
}

// WangLandauConvergence steps until IsConverged.
func (w *WangLandauAdaptive[E]) WangLandauConvergence(energyFn func(ensemble.MarkovChain) (E, bool)) {
	for !w.IsConverged() {
		w.WangLandauStep(energyFn)
	}
}

// WangLandauWhile steps until IsConverged or condition returns false.
func (w *WangLandauAdaptive[E]) WangLandauWhile(energyFn func(ensemble.MarkovChain) (E, bool), condition func(*WangLandauAdaptive[E]) bool) {
	for !w.IsConverged() && condition(w) {
		w.WangLandauStep(energyFn)
	}
}
