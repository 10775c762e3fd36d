package ensemble

import "math/rand"

// config collects the tunables shared by every ensemble constructor. It
// mirrors the teacher's builderConfig: an injected RNG and nothing else —
// this package has no analogue to builder's idFn/weightFn since node
// identity is always the int index and edges carry no weight.
type config struct {
	rng *rand.Rand
}

// EnsembleOption configures an ensemble constructor.
type EnsembleOption func(cfg *config)

func newConfig(opts ...EnsembleOption) config {
	cfg := config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand injects an explicit RNG, overriding the default source.
func WithRand(rng *rand.Rand) EnsembleOption {
	return func(cfg *config) { cfg.rng = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) EnsembleOption {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}
