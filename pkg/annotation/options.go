package annotation

import (
	"log/slog"

	"github.com/aretw0/poaf/pkg/core"
)

type options struct {
	logger           *slog.Logger
	policy           core.EmptyQueryPolicy
	idColumn         string
	annotationColumn string
}

// Option configures parsing and searching.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		policy:           core.EmptyQueryNone,
		idColumn:         ColumnProteinID,
		annotationColumn: ColumnObjectTerm,
	}
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

// WithIDColumn names the identifier column (default PRO_ID).
func WithIDColumn(name string) Option {
	return func(o *options) {
		if name != "" {
			o.idColumn = name
		}
	}
}

// WithAnnotationColumn names the primary annotation column (default Object_term).
func WithAnnotationColumn(name string) Option {
	return func(o *options) {
		if name != "" {
			o.annotationColumn = name
		}
	}
}
