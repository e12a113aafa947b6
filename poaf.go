package poaf

import (
	"context"
	"log/slog"

	"github.com/aretw0/poaf/internal/platform"
	"github.com/aretw0/poaf/pkg/adapters/fs"
	"github.com/aretw0/poaf/pkg/adapters/remote"
	"github.com/aretw0/poaf/pkg/core"
	"github.com/aretw0/poaf/pkg/query"
)

// --- Types ---

// Service is a public alias for the loaded query service.
type Service = query.Service

// Result is a public alias for the outcome of refreshing one source.
type Result = remote.Result

// Config is a public alias for the poaf.yaml file shape.
type Config = platform.FileConfig

// ConfigFileName is the optional project configuration file.
const ConfigFileName = platform.ConfigFileName

// DefaultDataDir is the data directory used when none is given.
const DefaultDataDir = fs.DefaultDir

// --- Configuration ---

// Option defines a functional option for configuring poaf.
type Option = platform.Option

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom text source instead of the data directory.
func WithSource(src core.Source) Option {
	return platform.WithSource(src)
}

// WithFetcher replaces the downloader used by Update.
func WithFetcher(f remote.Fetcher) Option {
	return platform.WithFetcher(f)
}

// WithOntologyURL sets where the OBO file is downloaded from.
func WithOntologyURL(url string) Option {
	return platform.WithOntologyURL(url)
}

// WithAnnotationURL sets where the PAF file is downloaded from.
func WithAnnotationURL(url string) Option {
	return platform.WithAnnotationURL(url)
}

// WithFileNames overrides the file names inside the data directory.
func WithFileNames(ontology, annotation string) Option {
	return platform.WithFileNames(ontology, annotation)
}

// WithIDColumn names the annotation identifier column.
func WithIDColumn(name string) Option {
	return platform.WithIDColumn(name)
}

// WithAnnotationColumn names the primary annotation column.
func WithAnnotationColumn(name string) Option {
	return platform.WithAnnotationColumn(name)
}

// WithEmptyQueryPolicy sets what an empty search query matches.
func WithEmptyQueryPolicy(p core.EmptyQueryPolicy) Option {
	return platform.WithEmptyQueryPolicy(p)
}

// WithOffline disables downloads.
func WithOffline(offline bool) Option {
	return platform.WithOffline(offline)
}

// WithForceUpdate downloads both sources even when they look current.
func WithForceUpdate(force bool) Option {
	return platform.WithForceUpdate(force)
}

// WithSkipUpdate makes New load whatever is on disk.
func WithSkipUpdate(skip bool) Option {
	return platform.WithSkipUpdate(skip)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// --- Factory ---

// New refreshes the data directory when needed and loads a Service.
func New(ctx context.Context, dataDir string, opts ...Option) (*Service, error) {
	return platform.New(ctx, dataDir, opts...)
}

// Load parses the data directory (or injected source) without downloading.
func Load(ctx context.Context, dataDir string, opts ...Option) (*Service, error) {
	return platform.Load(ctx, dataDir, opts...)
}

// Update downloads missing or changed source files.
func Update(ctx context.Context, dataDir string, opts ...Option) ([]Result, error) {
	return platform.Update(ctx, dataDir, opts...)
}

// NewSource returns the data directory adapter, e.g. to watch it for changes.
func NewSource(dataDir string, opts ...Option) *fs.Source {
	return platform.NewSource(dataDir, opts...)
}

// --- Utils ---

// LoadConfig reads poaf.yaml. A missing file yields a zero config.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// FindRoot recursively looks upwards for a .PRO directory or poaf.yaml.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
