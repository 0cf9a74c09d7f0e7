package setmap

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/setmap/internal/sources/smogon"
	"github.com/agentstation/setmap/internal/sources/usage"
	"github.com/agentstation/setmap/pkg/constants"
	"github.com/agentstation/setmap/pkg/logging"
)

// Option is a function that configures a Setmap instance.
type Option func(*options)

// options holds the configured options for a Setmap instance.
type options struct {
	generations []int
	setsURL     string
	statsURL    string
	httpTimeout time.Duration
	logger      *zerolog.Logger
}

// defaults returns the default options: every supported generation, the
// public data hosts, and the package-level logger.
func defaults() *options {
	gens := make([]int, 0, constants.LastGeneration)
	for gen := constants.FirstGeneration; gen <= constants.LastGeneration; gen++ {
		gens = append(gens, gen)
	}
	return &options{
		generations: gens,
		setsURL:     smogon.DefaultBaseURL,
		statsURL:    usage.DefaultBaseURL,
		httpTimeout: constants.DefaultHTTPTimeout,
		logger:      logging.Default(),
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithGenerations restricts the import to the given generations. Values
// outside the supported range are dropped; an empty result falls back to
// the full range.
func WithGenerations(gens ...int) Option {
	return func(o *options) {
		filtered := make([]int, 0, len(gens))
		for _, gen := range gens {
			if gen >= constants.FirstGeneration && gen <= constants.LastGeneration {
				filtered = append(filtered, gen)
			}
		}
		if len(filtered) > 0 {
			o.generations = filtered
		}
	}
}

// WithSetsURL overrides the curated-sets host. An empty url keeps the
// default.
func WithSetsURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.setsURL = url
		}
	}
}

// WithStatsURL overrides the usage-statistics host. An empty url keeps the
// default.
func WithStatsURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.statsURL = url
		}
	}
}

// WithTimeout configures the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.httpTimeout = timeout
		}
	}
}

// WithLogger configures the logger used by the pipeline.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
