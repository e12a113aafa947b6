package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/poaf/pkg/core"
)

// ManifestFileName is the default name of the version manifest.
const ManifestFileName = "versions.json"

// manifestLayouts are the accepted timestamp formats, newest first.
// Older manifests carry timestamps without a zone.
var manifestLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// manifestData is the persisted shape of versions.json.
type manifestData struct {
	OntologyHash          string `json:"obo_hash,omitempty"`
	OntologyLastUpdated   string `json:"obo_last_updated,omitempty"`
	AnnotationHash        string `json:"paf_hash,omitempty"`
	AnnotationLastUpdated string `json:"paf_last_updated,omitempty"`
}

// Manifest records the content hash and update time of each source file,
// so a refresh only downloads what is missing or changed.
type Manifest struct {
	Path  string
	data  manifestData
	dirty bool
	mu    sync.RWMutex
}

// NewManifest creates an empty manifest persisted at path.
func NewManifest(path string) *Manifest {
	return &Manifest{Path: path}
}

// Load reads the manifest from disk. If not found or invalid, it starts
// empty without error.
func (m *Manifest) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.Path)
	if os.IsNotExist(err) {
		return nil // Start fresh
	}
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var parsed manifestData
	if err := json.Unmarshal(data, &parsed); err != nil {
		// Corrupt manifest: every source looks stale and is fetched again.
		m.data = manifestData{}
		return nil
	}

	m.data = parsed
	m.dirty = false
	return nil
}

// Save persists the manifest if it changed since the last Load or Save.
func (m *Manifest) Save() error {
	m.mu.RLock()
	if !m.dirty {
		m.mu.RUnlock()
		return nil
	}
	data, err := json.MarshalIndent(m.data, "", "  ")
	m.mu.RUnlock()

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.Path), 0755); err != nil {
		return err
	}

	if err := writeFileAtomic(m.Path, data, 0644); err != nil {
		return err
	}

	m.mu.Lock()
	m.dirty = false
	m.mu.Unlock()

	return nil
}

// Hash returns the recorded hash of a source, or "".
func (m *Manifest) Hash(kind core.SourceKind) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hash, _ := m.fields(kind)
	return hash
}

// LastUpdated returns when a source was last refreshed, or nil if unknown.
func (m *Manifest) LastUpdated(kind core.SourceKind) *time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, stamp := m.fields(kind)
	if stamp == "" {
		return nil
	}
	for _, layout := range manifestLayouts {
		if t, err := time.Parse(layout, stamp); err == nil {
			return &t
		}
	}
	return nil
}

// Record stores a new hash and update time for a source.
func (m *Manifest) Record(kind core.SourceKind, hash string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp := at.Format(time.RFC3339)
	switch kind {
	case core.SourceOntology:
		m.data.OntologyHash = hash
		m.data.OntologyLastUpdated = stamp
	case core.SourceAnnotation:
		m.data.AnnotationHash = hash
		m.data.AnnotationLastUpdated = stamp
	default:
		return
	}
	m.dirty = true
}

func (m *Manifest) fields(kind core.SourceKind) (hash, stamp string) {
	switch kind {
	case core.SourceOntology:
		return m.data.OntologyHash, m.data.OntologyLastUpdated
	case core.SourceAnnotation:
		return m.data.AnnotationHash, m.data.AnnotationLastUpdated
	}
	return "", ""
}
