package query

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Terms            int    `json:"terms"`
	Records          int    `json:"records"`
	IDColumn         string `json:"id_column"`
	AnnotationColumn string `json:"annotation_column"`
	DataDir          string `json:"data_dir,omitempty"`
	LoadedAt         string `json:"loaded_at"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	return ServiceState{
		Terms:            s.ontology.Len(),
		Records:          s.annotations.Len(),
		IDColumn:         s.annotations.IDColumn(),
		AnnotationColumn: s.annotations.AnnotationColumn(),
		DataDir:          s.meta.DataDir,
		LoadedAt:         s.meta.LoadedAt.Format(time.RFC3339),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "query"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
