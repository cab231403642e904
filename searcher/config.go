package searcher

import "runtime"

// Option customizes a Search call. As a rule, option constructors
// never panic at runtime and ignore out-of-range inputs.
type Option func(cfg *searchConfig)

type searchConfig struct {
	maxWorkers  int
	stableOrder bool
}

func newSearchConfig(opts ...Option) *searchConfig {
	cfg := &searchConfig{maxWorkers: runtime.GOMAXPROCS(0), stableOrder: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxWorkers bounds the number of candidates evaluated
// concurrently per target. Values below 1 are ignored.
func WithMaxWorkers(n int) Option {
	return func(cfg *searchConfig) {
		if n >= 1 {
			cfg.maxWorkers = n
		}
	}
}

// WithStableOrder toggles the traversal-index tiebreak among equal
// (heuristic, cost) candidates. Enabled by default for reproducible
// results; disabling it lets the first finisher win, which is
// marginally cheaper under heavy contention.
func WithStableOrder(enabled bool) Option {
	return func(cfg *searchConfig) { cfg.stableOrder = enabled }
}
