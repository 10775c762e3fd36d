package sampling

import (
	"math"
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
	"github.com/Pardoxa/net-ensembles-sub000/histogram"
)

// EntropicAdaptive drives an ensemble.MarkovChain with Metropolis
// acceptance against a fixed log_density bias, refining that bias by
// folding in the energy histogram gathered along the way. It is built
// from a converged WangLandauAdaptive via FromWL, never directly.
type EntropicAdaptive[E any] struct {
	rng               *rand.Rand
	bandit            *stepBandit
	ensemble          ensemble.MarkovChain
	histogram         histogram.Histogram[E]
	logDensity        []float64
	stepCount         int
	stepGoal          int
	oldEnergy         E
	oldBin            int
	adjustBestOfEvery int
}

// FromWL builds an EntropicAdaptive from a Wang-Landau run. wl must have
// been initialised by one of its Init* heuristics (old_energy/old_bin set),
// and is normally converged.
func FromWL[E any](wl *WangLandauAdaptive[E], samplesPerTrial int) (*EntropicAdaptive[E], error) {
	if wl.oldEnergy == nil || wl.oldBin == nil {
		return nil, ErrInvalidWangLandau
	}

	trialMin := wl.bandit.minStepSize()
	trialMax := wl.bandit.maxStepSize()
	bandit, err := newStepBandit(wl.rng, trialMin, trialMax, samplesPerTrial, wl.bandit.minBestOfCount, wl.bandit.bestOfThreshold)
	if err != nil {
		return nil, err
	}

	logDensity := make([]float64, len(wl.logDensity))
	copy(logDensity, wl.logDensity)

	adjustEvery := 10
	if 4*wl.checkRefineEvery > adjustEvery {
		adjustEvery = 4 * wl.checkRefineEvery
	}

	wl.histogram.Reset()

	return &EntropicAdaptive[E]{
		rng:               wl.rng,
		bandit:            bandit,
		ensemble:          wl.ensemble,
		histogram:         wl.histogram,
		logDensity:        logDensity,
		stepGoal:          wl.stepCount,
		oldEnergy:         *wl.oldEnergy,
		oldBin:            *wl.oldBin,
		adjustBestOfEvery: adjustEvery,
	}, nil
}

// LogDensity returns the fixed bias entropic sampling is accepting moves
// against. It is never mutated by EntropicStep — only RefineEstimate
// replaces it.
func (e *EntropicAdaptive[E]) LogDensity() []float64 { return e.logDensity }

// StepCounter returns the number of entropic steps taken since
// construction or the last RefineEstimate.
func (e *EntropicAdaptive[E]) StepCounter() int { return e.stepCount }

// StepGoal returns the step count entropic sampling should aim for before
// calling RefineEstimate, initially the WangLandauAdaptive run's
// step_count at the time of FromWL.
func (e *EntropicAdaptive[E]) StepGoal() int { return e.stepGoal }

// SetStepGoal overrides StepGoal.
func (e *EntropicAdaptive[E]) SetStepGoal(goal int) { e.stepGoal = goal }

// Hist returns the live energy histogram, reset to zero by FromWL and
// every RefineEstimate.
func (e *EntropicAdaptive[E]) Hist() histogram.Histogram[E] { return e.histogram }

// FractionAcceptedTotal and FractionAcceptedCurrent report the bandit's
// lifetime and current-window acceptance ratios.
func (e *EntropicAdaptive[E]) FractionAcceptedTotal() float64 { return e.bandit.fractionAcceptedTotal() }
func (e *EntropicAdaptive[E]) FractionAcceptedCurrent() float64 {
	return e.bandit.fractionAcceptedCurrent()
}

func (e *EntropicAdaptive[E]) metropolisAcceptionProb(oldBin, newBin int) float64 {
	p := math.Exp(e.logDensity[oldBin] - e.logDensity[newBin])
	if p > 1 {
		return 1
	}
	return p
}

// EntropicStep performs one entropic-sampling step. log_density is never
// mutated here — only the energy histogram is incremented, exactly as
// with Wang-Landau but without the log_f bump, since the bias is fixed
// for the duration of a sampling run.
func (e *EntropicAdaptive[E]) EntropicStep(energyFn func(ensemble.MarkovChain) (E, bool)) {
	oldBin := e.oldBin

	e.stepCount++
	size := e.bandit.getStepSize()
	steps := mSteps(e.ensemble, size)

	adjustEvery := e.adjustBestOfEvery
	if adjustEvery > 0 && e.stepCount%adjustEvery == 0 {
		e.bandit.adjustBestOf()
	}

	energy, ok := energyFn(e.ensemble)
	if !ok {
		e.bandit.countRejected(size)
		_ = e.histogram.CountVal(e.oldEnergy)
		undoStepsQuiet(e.ensemble, steps)
		return
	}

	newBin, err := e.histogram.GetBinIndex(energy)
	if err != nil {
		e.bandit.countRejected(size)
		undoStepsQuiet(e.ensemble, steps)
	} else if e.rng.Float64() > e.metropolisAcceptionProb(oldBin, newBin) {
		e.bandit.countRejected(size)
		undoStepsQuiet(e.ensemble, steps)
	} else {
		e.bandit.countAccepted(size)
		e.oldEnergy = energy
		e.oldBin = newBin
	}

	_ = e.histogram.CountVal(e.oldEnergy)
}

// EntropicSampling calls EntropicStep until StepCounter reaches StepGoal.
func (e *EntropicAdaptive[E]) EntropicSampling(energyFn func(ensemble.MarkovChain) (E, bool)) {
	for e.stepCount < e.stepGoal {
		e.EntropicStep(energyFn)
	}
}

// LogDensityRefined folds the gathered histogram into LogDensity,
// per-bin: log_density[i] + ln(hist[i]) where hist[i] != 0, else
// log_density[i] unchanged.
func (e *EntropicAdaptive[E]) LogDensityRefined() []float64 {
	hist := e.histogram.Hist()
	out := make([]float64, len(e.logDensity))
	for i, ld := range e.logDensity {
		if hist[i] != 0 {
			out[i] = ld + math.Log(float64(hist[i]))
		} else {
			out[i] = ld
		}
	}
	return out
}

// RefineEstimate swaps LogDensityRefined into LogDensity, resets the
// histogram and step counter, resets the bandit's step-size statistics
// (clearing its best-of step sizes and reshuffling its trial list, so it
// gathers statistics anew), and returns the pre-refinement estimate.
func (e *EntropicAdaptive[E]) RefineEstimate() []float64 {
	old := e.logDensity
	e.logDensity = e.LogDensityRefined()
	e.histogram.Reset()
	e.stepCount = 0
	e.bandit.resetStatistics()
	e.bandit.reshuffleTrialList()
	return old
}
