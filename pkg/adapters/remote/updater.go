package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/poaf/pkg/adapters/fs"
	"github.com/aretw0/poaf/pkg/core"
)

// ErrOffline is returned when a source file is missing and downloads are
// disabled.
var ErrOffline = errors.New("source missing and downloads are disabled")

// Status describes what Update did with one source.
type Status string

const (
	StatusCurrent    Status = "current"    // hash matches the manifest
	StatusDownloaded Status = "downloaded" // fetched and recorded
	StatusKept       Status = "kept"       // offline, local copy used as is
)

// Result reports the outcome for one source.
type Result struct {
	Kind   core.SourceKind `json:"kind"`
	Status Status          `json:"status"`
	Hash   string          `json:"hash"`
	URL    string          `json:"url,omitempty"`
}

// Config holds the configuration for an Updater.
type Config struct {
	OntologyURL   string
	AnnotationURL string
	Fetcher       Fetcher
	Logger        *slog.Logger
	Now           func() time.Time
}

// Updater keeps the data directory in step with the manifest: a source is
// downloaded when its file is missing or its hash differs from the hash
// recorded at the last download.
type Updater struct {
	source *fs.Source
	config Config
}

// NewUpdater creates an Updater for a data directory.
func NewUpdater(source *fs.Source, config Config) *Updater {
	if config.OntologyURL == "" {
		config.OntologyURL = DefaultOntologyURL
	}
	if config.AnnotationURL == "" {
		config.AnnotationURL = DefaultAnnotationURL
	}
	if config.Fetcher == nil {
		config.Fetcher = GetterFetcher{}
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Updater{source: source, config: config}
}

// UpdateOptions tunes a single Update run.
type UpdateOptions struct {
	Force   bool // download even when the hash matches
	Offline bool // never download; fail if a file is missing
}

// Update refreshes both sources, ontology first. It stops at the first
// failure; the manifest is saved only when every source succeeded.
func (u *Updater) Update(ctx context.Context, opts UpdateOptions) ([]Result, error) {
	if err := u.source.Initialize(ctx); err != nil {
		return nil, err
	}

	manifest, err := u.source.Manifest()
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, kind := range []core.SourceKind{core.SourceOntology, core.SourceAnnotation} {
		res, err := u.updateOne(ctx, manifest, kind, opts)
		if err != nil {
			return results, fmt.Errorf("update %s: %w", kind, err)
		}
		results = append(results, res)
	}

	if err := manifest.Save(); err != nil {
		return results, fmt.Errorf("failed to save manifest: %w", err)
	}
	u.logInfo("data files are up to date", "path", u.source.Path)
	return results, nil
}

func (u *Updater) updateOne(ctx context.Context, manifest *fs.Manifest, kind core.SourceKind, opts UpdateOptions) (Result, error) {
	url := u.url(kind)
	hash, err := u.source.Hash(kind)
	if err != nil {
		return Result{}, err
	}

	if !opts.Force && hash != "" && hash == manifest.Hash(kind) {
		u.logDebug("source is current", "kind", kind, "hash", hash)
		return Result{Kind: kind, Status: StatusCurrent, Hash: hash}, nil
	}

	if opts.Offline {
		if hash == "" {
			return Result{}, fmt.Errorf("%s: %w", u.source.PathFor(kind), ErrOffline)
		}
		return Result{Kind: kind, Status: StatusKept, Hash: hash}, nil
	}

	u.logInfo("source needs update", "kind", kind, "url", url)
	if err := u.download(ctx, kind, url); err != nil {
		return Result{}, err
	}

	newHash, err := u.source.Hash(kind)
	if err != nil {
		return Result{}, err
	}
	manifest.Record(kind, newHash, u.config.Now())
	u.logInfo("downloaded source", "kind", kind, "path", u.source.PathFor(kind))

	return Result{Kind: kind, Status: StatusDownloaded, Hash: newHash, URL: url}, nil
}

// download fetches into a scratch directory and installs the file
// atomically, so an interrupted download never replaces a good copy.
func (u *Updater) download(ctx context.Context, kind core.SourceKind, url string) error {
	scratch, err := os.MkdirTemp(u.source.Path, fs.TempFilePrefix+"dl-*")
	if err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	dst := filepath.Join(scratch, filepath.Base(u.source.PathFor(kind)))
	if err := u.config.Fetcher.Fetch(ctx, url, dst); err != nil {
		return err
	}

	f, err := os.Open(dst)
	if err != nil {
		return fmt.Errorf("failed to open download: %w", err)
	}
	defer f.Close()

	return u.source.Install(kind, f)
}

func (u *Updater) url(kind core.SourceKind) string {
	if kind == core.SourceOntology {
		return u.config.OntologyURL
	}
	return u.config.AnnotationURL
}

func (u *Updater) logDebug(msg string, args ...any) {
	if u.config.Logger != nil {
		u.config.Logger.Debug(msg, args...)
	}
}

func (u *Updater) logInfo(msg string, args ...any) {
	if u.config.Logger != nil {
		u.config.Logger.Info(msg, args...)
	}
}
