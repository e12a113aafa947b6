package platform

import (
	"log/slog"

	"github.com/aretw0/poaf/pkg/adapters/remote"
	"github.com/aretw0/poaf/pkg/core"
)

// options holds the internal configuration for loading a snapshot.
type options struct {
	source           core.Source
	logger           *slog.Logger
	fetcher          remote.Fetcher
	ontologyURL      string
	annotationURL    string
	ontologyFile     string
	annotationFile   string
	idColumn         string
	annotationColumn string
	emptyQuery       core.EmptyQueryPolicy
	offline          bool
	force            bool
	skipUpdate       bool
	mustExist        bool
}

// Option defines a functional option for configuring poaf.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		ontologyURL:   remote.DefaultOntologyURL,
		annotationURL: remote.DefaultAnnotationURL,
		emptyQuery:    core.EmptyQueryNone,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource injects a custom text source (e.g. core.StaticSource).
// If provided, the data directory is neither created nor refreshed.
func WithSource(src core.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithFetcher replaces the go-getter downloader.
func WithFetcher(f remote.Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithOntologyURL sets where the ontology is downloaded from.
func WithOntologyURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.ontologyURL = url
		}
	}
}

// WithAnnotationURL sets where the annotations are downloaded from.
func WithAnnotationURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.annotationURL = url
		}
	}
}

// WithFileNames overrides the file names inside the data directory.
// Empty names keep the defaults.
func WithFileNames(ontology, annotation string) Option {
	return func(o *options) {
		o.ontologyFile = ontology
		o.annotationFile = annotation
	}
}

// WithIDColumn names the annotation identifier column (default PRO_ID).
func WithIDColumn(name string) Option {
	return func(o *options) {
		o.idColumn = name
	}
}

// WithAnnotationColumn names the primary annotation column (default Object_term).
func WithAnnotationColumn(name string) Option {
	return func(o *options) {
		o.annotationColumn = name
	}
}

// WithEmptyQueryPolicy sets what an empty search query matches.
// The default returns no hits.
func WithEmptyQueryPolicy(p core.EmptyQueryPolicy) Option {
	return func(o *options) {
		o.emptyQuery = p
	}
}

// WithOffline disables downloads. Missing files become an error.
func WithOffline(offline bool) Option {
	return func(o *options) {
		o.offline = offline
	}
}

// WithForceUpdate downloads both sources even when their hashes match.
func WithForceUpdate(force bool) Option {
	return func(o *options) {
		o.force = force
	}
}

// WithSkipUpdate loads whatever is on disk without the refresh step.
func WithSkipUpdate(skip bool) Option {
	return func(o *options) {
		o.skipUpdate = skip
	}
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}
