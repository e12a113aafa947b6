package ontology

import (
	"log/slog"

	"github.com/aretw0/poaf/pkg/core"
)

type options struct {
	logger *slog.Logger
	policy core.EmptyQueryPolicy
}

// Option configures parsing and searching.
type Option func(*options)

func defaultOptions() *options {
	return &options{policy: core.EmptyQueryNone}
}

// WithLogger sets the logger used to report parse statistics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEmptyQueryPolicy sets what an empty search query matches.
func WithEmptyQueryPolicy(p core.EmptyQueryPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}
