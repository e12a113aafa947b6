package query

import (
	"time"

	"github.com/aretw0/poaf/pkg/annotation"
	"github.com/aretw0/poaf/pkg/ontology"
)

// SourceInfo describes where one store's text came from.
type SourceInfo struct {
	Location    string     `json:"location,omitempty"`
	Hash        string     `json:"hash,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Metadata identifies the snapshot a Service was loaded from.
type Metadata struct {
	DataDir    string     `json:"data_dir,omitempty"`
	Ontology   SourceInfo `json:"ontology"`
	Annotation SourceInfo `json:"annotation"`
	LoadedAt   time.Time  `json:"loaded_at"`
}

// Stats summarizes a loaded snapshot.
type Stats struct {
	Terms           int                   `json:"terms"`
	Records         int                   `json:"records"`
	Columns         []string              `json:"columns"`
	OntologyParse   ontology.ParseStats   `json:"ontology_parse"`
	AnnotationParse annotation.ParseStats `json:"annotation_parse"`
	Metadata        Metadata              `json:"metadata"`
}

// Service composes the ontology and annotation stores.
type Service struct {
	ontology    *ontology.Store
	annotations *annotation.Store
	meta        Metadata
}

// New creates a Service over already parsed stores.
func New(ont *ontology.Store, ann *annotation.Store, meta Metadata) *Service {
	if meta.LoadedAt.IsZero() {
		meta.LoadedAt = time.Now()
	}
	return &Service{ontology: ont, annotations: ann, meta: meta}
}

// SearchOntology searches terms in the given field priority order
// (ontology.DefaultSearchFields when none). Hits are sorted by id.
func (s *Service) SearchOntology(q string, fields ...string) []ontology.SearchHit {
	hits := s.ontology.SearchByFields(q, fields...)
	ontology.SortHits(hits)
	return hits
}

// SearchAnnotations searches every field of every record, in source order.
func (s *Service) SearchAnnotations(q string) []annotation.SearchHit {
	return s.annotations.SearchAll(q)
}

// GetTerm returns the term with exactly this id, or core.ErrNotFound.
func (s *Service) GetTerm(id string) (ontology.Term, error) {
	return s.ontology.GetByID(id)
}

// GetAnnotationsForKey returns the records whose identifier column equals
// key, or core.ErrNotFound.
func (s *Service) GetAnnotationsForKey(key string) ([]annotation.Record, error) {
	return s.annotations.GetByID(key)
}

// Ontology exposes the underlying ontology store.
func (s *Service) Ontology() *ontology.Store {
	return s.ontology
}

// Annotations exposes the underlying annotation store.
func (s *Service) Annotations() *annotation.Store {
	return s.annotations
}

// Stats returns counts of loaded terms and records plus snapshot metadata.
// Compare the parse statistics to detect silently dropped input.
func (s *Service) Stats() Stats {
	return Stats{
		Terms:           s.ontology.Len(),
		Records:         s.annotations.Len(),
		Columns:         s.annotations.Header().Names(),
		OntologyParse:   s.ontology.Stats(),
		AnnotationParse: s.annotations.Stats(),
		Metadata:        s.meta,
	}
}
