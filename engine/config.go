package engine

import (
	"runtime"

	"github.com/synthcore/airs/searcher"
)

// Option customizes an Engine. As a rule, option constructors never
// panic at runtime and ignore out-of-range inputs.
type Option func(cfg *engineConfig)

type engineConfig struct {
	maxWorkers  int
	stableOrder bool
}

func newEngineConfig(opts ...Option) *engineConfig {
	cfg := &engineConfig{maxWorkers: runtime.GOMAXPROCS(0), stableOrder: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxWorkers bounds the number of candidates the searcher
// evaluates concurrently per target. Values below 1 are ignored.
func WithMaxWorkers(n int) Option {
	return func(cfg *engineConfig) {
		if n >= 1 {
			cfg.maxWorkers = n
		}
	}
}

// WithStableOrder toggles the searcher's traversal-index tiebreak
// among equal-scoring candidates. Enabled by default.
func WithStableOrder(enabled bool) Option {
	return func(cfg *engineConfig) { cfg.stableOrder = enabled }
}

func (cfg *engineConfig) searcherOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithMaxWorkers(cfg.maxWorkers),
		searcher.WithStableOrder(cfg.stableOrder),
	}
}
