package sampling

import (
	"math"
	"math/rand"

	"github.com/Pardoxa/net-ensembles-sub000/ensemble"
)

// Metropolis drives an ensemble.MarkovChain with temperature-biased
// acceptance, min(1, exp(-(E_new-E_old)/T)), against no histogram at all —
// it is the plain Metropolis-Hastings chain the other drivers specialize.
// Its fields hold the state ContinueMetropolisWhile resumes from.
type Metropolis[E any] struct {
	rng      *rand.Rand
	ensemble ensemble.MarkovChain
	stepsize int
	mBeta    float64
	energy   E
	counter  int
}

// NewMetropolis builds a Metropolis driver at temperature T (must be > 0)
// with the given step size (must be > 0) and starting energy.
func NewMetropolis[E any](ens ensemble.MarkovChain, rng *rand.Rand, temperature float64, stepsize int, startEnergy E) (*Metropolis[E], error) {
	if stepsize <= 0 {
		return nil, ErrInvalidStepsize
	}
	if !(temperature > 0) {
		return nil, ErrInvalidTemperature
	}
	return &Metropolis[E]{
		rng:      rng,
		ensemble: ens,
		stepsize: stepsize,
		mBeta:    -1 / temperature,
		energy:   startEnergy,
		counter:  0,
	}, nil
}

// Stepsize, Counter and Energy expose resumable state.
func (m *Metropolis[E]) Stepsize() int { return m.stepsize }
func (m *Metropolis[E]) Counter() int  { return m.counter }
func (m *Metropolis[E]) Energy() E     { return m.energy }

// SetStepsize changes the Markov step size used by subsequent iterations.
func (m *Metropolis[E]) SetStepsize(s int) error {
	if s <= 0 {
		return ErrInvalidStepsize
	}
	m.stepsize = s
	return nil
}

func (m *Metropolis[E]) acceptProb(oldEnergy, newEnergy float64) float64 {
	p := math.Exp(m.mBeta * (newEnergy - oldEnergy))
	if p > 1 {
		return 1
	}
	return p
}

// MetropolisWhile runs the chain for up to `steps` iterations, or until
// breakIf(ensemble, counter) returns true (checked after each iteration).
// Each iteration: take stepsize Markov steps, reject-and-undo if validFn
// is false, else evaluate energyFn (as float64 via toFloat) and accept
// with min(1, exp(-(E_new-E_old)/T)). measureFn is called at the end of
// every iteration, before breakIf.
func (m *Metropolis[E]) MetropolisWhile(
	steps int,
	toFloat func(E) float64,
	validFn func(ensemble.MarkovChain) bool,
	energyFn func(ensemble.MarkovChain) E,
	measureFn func(ens ensemble.MarkovChain, counter int, energy E, rejected bool),
	breakIf func(ens ensemble.MarkovChain, counter int) bool,
) {
	for i := 0; i < steps; i++ {
		m.counter++
		undo := mSteps(m.ensemble, m.stepsize)

		rejected := true
		if validFn == nil || validFn(m.ensemble) {
			newEnergy := energyFn(m.ensemble)
			if m.rng.Float64() <= m.acceptProb(toFloat(m.energy), toFloat(newEnergy)) {
				m.energy = newEnergy
				rejected = false
			}
		}
		if rejected {
			undoStepsQuiet(m.ensemble, undo)
		}

		if measureFn != nil {
			measureFn(m.ensemble, m.counter, m.energy, rejected)
		}
		if breakIf != nil && breakIf(m.ensemble, m.counter) {
			break
		}
	}
}

// ContinueMetropolisWhile resumes a Metropolis chain, asserting (unless
// ignoreEnergyMismatch) that the ensemble's current energy still matches
// the stored one before proceeding — a caller-supplied energyFn re-derives
// it from the live ensemble state for comparison.
func (m *Metropolis[E]) ContinueMetropolisWhile(
	steps int,
	toFloat func(E) float64,
	validFn func(ensemble.MarkovChain) bool,
	energyFn func(ensemble.MarkovChain) E,
	measureFn func(ens ensemble.MarkovChain, counter int, energy E, rejected bool),
	breakIf func(ens ensemble.MarkovChain, counter int) bool,
	ignoreEnergyMismatch bool,
) error {
	if !ignoreEnergyMismatch {
		current := energyFn(m.ensemble)
		if toFloat(current) != toFloat(m.energy) {
			return ErrEnergyMismatch
		}
	}
	m.MetropolisWhile(steps, toFloat, validFn, energyFn, measureFn, breakIf)
	return nil
}
