package pairwise

import "github.com/YuminosukeSato/plotkit/pkg/log"

// Option configures a matrix build.
type Option func(*config)

type config struct {
	workers int
	logger  log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{workers: 1}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("pairwise")
	}
	return cfg
}

// WithWorkers evaluates rows on n goroutines; -1 uses every CPU core.
// Custom scoring functions must then be safe for concurrent use.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
