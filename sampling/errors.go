package sampling

import "errors"

// Wang-Landau construction errors — fatal to the caller.
var (
	ErrInvalidMinMaxTrialSteps = errors.New("sampling: trial_step_max must be >= trial_step_min")
	ErrInvalidLogFThreshold    = errors.New("sampling: log_f_threshold must be finite and non-negative")
	ErrCheckRefineEvery0       = errors.New("sampling: check_refine_every must be >= 1")
	ErrInvalidBestOf           = errors.New("sampling: min_best_of_count exceeds the number of distinct trial step sizes")
)

// Querying the bandit's estimated acceptance rates during warm-up — advisory.
var ErrNotEnoughStatistics = errors.New("sampling: not enough statistics gathered yet")

// Heuristic initialisers hitting their step budget — fatal to this run.
var ErrInitFailed = errors.New("sampling: heuristic initializer exhausted its step budget")

// EntropicAdaptive.FromWL source-state requirement.
var ErrInvalidWangLandau = errors.New("sampling: source WangLandauAdaptive has no valid old_energy/old_bin")

// ContinueMetropolisWhile's resumption check.
var ErrEnergyMismatch = errors.New("sampling: ensemble's current energy does not match the stored Metropolis state")

// Metropolis construction errors.
var (
	ErrInvalidStepsize    = errors.New("sampling: stepsize must be > 0")
	ErrInvalidTemperature = errors.New("sampling: temperature must be > 0")
)
