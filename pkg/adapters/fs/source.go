package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/poaf/pkg/core"
)

// Default file layout of a data directory.
const (
	DefaultDir            = ".PRO"
	DefaultOntologyFile   = "protein_ontology.obo"
	DefaultAnnotationFile = "protein_annotations.paf"
)

// Source implements core.Source over a local data directory.
type Source struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastRead      map[core.SourceKind]time.Time
}

// Config holds the configuration for the data directory source.
type Config struct {
	Path           string // e.g. ".PRO"
	OntologyFile   string // file name inside Path
	AnnotationFile string // file name inside Path
	ManifestFile   string // file name inside Path
	MustExist      bool
	Logger         *slog.Logger
	ErrorHandler   func(error) // receives watcher errors
}

// NewSource creates a data directory source, filling unset file names
// with the defaults.
func NewSource(config Config) *Source {
	if config.Path == "" {
		config.Path = DefaultDir
	}
	if config.OntologyFile == "" {
		config.OntologyFile = DefaultOntologyFile
	}
	if config.AnnotationFile == "" {
		config.AnnotationFile = DefaultAnnotationFile
	}
	if config.ManifestFile == "" {
		config.ManifestFile = ManifestFileName
	}
	return &Source{
		Path:     config.Path,
		config:   config,
		lastRead: make(map[core.SourceKind]time.Time),
	}
}

// Initialize ensures the data directory exists.
func (s *Source) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(s.Path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("data path is not a directory: %s", s.Path)
	case err == nil:
		s.logDebug("using existing data directory", "path", s.Path)
		return nil
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to stat data directory: %w", err)
	case s.config.MustExist:
		return fmt.Errorf("data path does not exist: %s", s.Path)
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.logInfo("created data directory", "path", s.Path)
	return nil
}

// PathFor returns the file path backing a source.
func (s *Source) PathFor(kind core.SourceKind) string {
	switch kind {
	case core.SourceOntology:
		return filepath.Join(s.Path, s.config.OntologyFile)
	case core.SourceAnnotation:
		return filepath.Join(s.Path, s.config.AnnotationFile)
	}
	return ""
}

// ManifestPath returns the path of the version manifest.
func (s *Source) ManifestPath() string {
	return filepath.Join(s.Path, s.config.ManifestFile)
}

// Manifest loads the version manifest of this directory.
func (s *Source) Manifest() (*Manifest, error) {
	m := NewManifest(s.ManifestPath())
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}

// OntologyText implements core.Source.
func (s *Source) OntologyText(ctx context.Context) (string, error) {
	return s.read(ctx, core.SourceOntology)
}

// AnnotationText implements core.Source.
func (s *Source) AnnotationText(ctx context.Context) (string, error) {
	return s.read(ctx, core.SourceAnnotation)
}

func (s *Source) read(ctx context.Context, kind core.SourceKind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := s.PathFor(kind)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s source: %w", kind, err)
	}

	s.mu.Lock()
	s.lastRead[kind] = time.Now()
	s.mu.Unlock()

	s.logDebug("read source", "kind", kind, "path", path, "bytes", len(data))
	return string(data), nil
}

// Exists reports whether the file backing a source is present.
func (s *Source) Exists(kind core.SourceKind) bool {
	info, err := os.Stat(s.PathFor(kind))
	return err == nil && !info.IsDir()
}

// Hash returns the SHA-256 of the file backing a source ("" when missing).
func (s *Source) Hash(kind core.SourceKind) (string, error) {
	hash, _, err := HashFile(s.PathFor(kind))
	return hash, err
}

// Install atomically replaces the file backing a source with the contents
// of r. A failed copy leaves the previous file in place.
func (s *Source) Install(kind core.SourceKind, r io.Reader) error {
	path := s.PathFor(kind)
	if path == "" {
		return fmt.Errorf("unknown source kind %q", kind)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	return copyFileAtomic(path, func(w io.Writer) error {
		_, err := io.Copy(w, r)
		return err
	}, 0644)
}

func (s *Source) logDebug(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}

func (s *Source) logInfo(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, args...)
	}
}

var _ core.Source = (*Source)(nil)
