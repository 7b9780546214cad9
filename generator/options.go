package generator

import (
	"math/rand"
	"time"

	"github.com/ilanschnell/perfect-hash/logging"
)

type config struct {
	trialsBeforeGrow int
	growthFactor     float64
	hardTrialCap     int
	hardTrialCapSet  bool
	rng              *rand.Rand
	logger           logging.Logger
}

// Option customizes the retry loop's behavior.
type Option func(*config)

// DefaultOptions returns the retry loop's defaults: 5 trials before
// growing N, a growth factor of 1.05, a hard cap of 100x trialsBeforeGrow
// (100 growth blocks), a time-seeded RNG, and no logging.
func DefaultOptions() config {
	return config{
		trialsBeforeGrow: 5,
		growthFactor:     1.05,
		hardTrialCap:     500,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:           logging.NopLogger{},
	}
}

// WithTrialsBeforeGrow sets the number of failed trials at a given N
// before N is grown. Panics if n < 1.
func WithTrialsBeforeGrow(n int) Option {
	if n < 1 {
		panic("generator: WithTrialsBeforeGrow(n<1)")
	}
	return func(c *config) {
		c.trialsBeforeGrow = n
	}
}

// WithGrowthFactor sets the multiplicative growth factor applied to N
// after each full block of failed trials. Panics if factor <= 1.
func WithGrowthFactor(factor float64) Option {
	if factor <= 1 {
		panic("generator: WithGrowthFactor(factor<=1)")
	}
	return func(c *config) {
		c.growthFactor = factor
	}
}

// WithHardTrialCap overrides the total-trial ceiling independently of
// trialsBeforeGrow. Panics if cap < 1.
func WithHardTrialCap(cap int) Option {
	if cap < 1 {
		panic("generator: WithHardTrialCap(cap<1)")
	}
	return func(c *config) {
		c.hardTrialCap = cap
		c.hardTrialCapSet = true
	}
}

// WithRand supplies an explicit RNG, for reproducible runs or for sharing
// one RNG stream across independent calls deliberately. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG from seed. Use this in tests
// and anywhere reproducibility matters.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger attaches a progress logger. Logging never affects results.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.logger = logging.Fallback(l)
	}
}

func resolve(opts []Option) config {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hardTrialCapSet {
		cfg.hardTrialCap = 100 * cfg.trialsBeforeGrow
	}
	return cfg
}
