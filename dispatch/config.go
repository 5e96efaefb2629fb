// Package dispatch wires Bootstrap, the constructive inserter, and local
// search into one pure per-round entry point.
package dispatch

import "time"

// Config holds every tunable parameter a round needs, in a
// functional-options-friendly shape: a plain struct with an accompanying
// DefaultConfig rather
// than package-level constants, since every field here is a per-round
// override a caller may reasonably want to change.
type Config struct {
	// DockApproachingTime is the fixed seconds a vehicle spends
	// maneuvering into a dock before loading/unloading can begin.
	DockApproachingTime time.Duration
	// Lambda weights tardiness against distance in the objective.
	Lambda float64
	// TimeBudget bounds local search's wall-clock descent loop. Zero
	// means unlimited.
	TimeBudget time.Duration
	// Epsilon gates local-search move acceptance: a move must improve
	// the score by more than Epsilon to be applied.
	Epsilon float64
}

// Option mutates a Config in place (the functional-options pattern).
type Option func(*Config)

// WithDockApproachingTime overrides DockApproachingTime.
func WithDockApproachingTime(d time.Duration) Option {
	return func(c *Config) { c.DockApproachingTime = d }
}

// WithLambda overrides Lambda.
func WithLambda(lambda float64) Option {
	return func(c *Config) { c.Lambda = lambda }
}

// WithTimeBudget overrides TimeBudget.
func WithTimeBudget(d time.Duration) Option {
	return func(c *Config) { c.TimeBudget = d }
}

// WithEpsilon overrides Epsilon.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// DefaultConfig returns the reference defaults: a 570s local-search
// budget, 1e-6 acceptance epsilon, no tardiness weight, and no dock
// approach delay. Apply opts to override individual fields.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		DockApproachingTime: 0,
		Lambda:              0,
		TimeBudget:          570 * time.Second,
		Epsilon:             1e-6,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
