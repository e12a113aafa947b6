package fs

import (
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/poaf/pkg/core"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	Path           string                        `json:"path"`
	OntologyFile   string                        `json:"ontology_file"`
	AnnotationFile string                        `json:"annotation_file"`
	MustExist      bool                          `json:"must_exist"`
	WatcherActive  bool                          `json:"watcher_active"`
	LastRead       map[core.SourceKind]time.Time `json:"last_read,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lastRead := make(map[core.SourceKind]time.Time, len(s.lastRead))
	for k, v := range s.lastRead {
		lastRead[k] = v
	}

	return SourceState{
		Path:           s.Path,
		OntologyFile:   s.config.OntologyFile,
		AnnotationFile: s.config.AnnotationFile,
		MustExist:      s.config.MustExist,
		WatcherActive:  s.watcherActive,
		LastRead:       lastRead,
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "source"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

func (s *Source) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
