package annotation

import (
	"fmt"
	"maps"

	"github.com/aretw0/poaf/pkg/core"
)

// Store is an immutable, source-ordered sequence of records sharing one
// Header. It is safe for concurrent reads; records and hits it returns
// are copies.
type Store struct {
	header           Header
	records          []Record
	stats            ParseStats
	policy           core.EmptyQueryPolicy
	idColumn         string
	annotationColumn string
}

// SearchHit is one record matched by SearchAll.
type SearchHit struct {
	LineNumber    int               `json:"line_number"`
	Fields        map[string]string `json:"fields"`
	MatchedColumn string            `json:"matched_column"`

	idColumn         string
	annotationColumn string
}

// Identifier returns the value of the store's identifier column.
func (h SearchHit) Identifier() string {
	return h.Fields[h.idColumn]
}

// Annotation returns the value of the store's primary annotation column.
func (h SearchHit) Annotation() string {
	return h.Fields[h.annotationColumn]
}

// SearchAll returns the records with any field containing query, ignoring
// case, in source order. Fields are tried in header order.
func (s *Store) SearchAll(query string) []SearchHit {
	m := core.NewMatcher(query, s.policy)
	if m.Disabled() {
		return nil
	}

	names := s.header.names
	var hits []SearchHit
	for _, rec := range s.records {
		for _, name := range names {
			if !m.Match(rec.Fields[name]) {
				continue
			}
			hits = append(hits, SearchHit{
				LineNumber:       rec.LineNumber,
				Fields:           maps.Clone(rec.Fields),
				MatchedColumn:    name,
				idColumn:         s.idColumn,
				annotationColumn: s.annotationColumn,
			})
			break
		}
	}
	return hits
}

// GetByKey returns every record whose column equals key exactly, in source
// order. It returns core.ErrNotFound when nothing matches and
// core.ErrUnknownColumn when the header has no such column.
func (s *Store) GetByKey(column, key string) ([]Record, error) {
	if !s.header.Has(column) {
		return nil, fmt.Errorf("column %q: %w", column, core.ErrUnknownColumn)
	}

	var out []Record
	for _, rec := range s.records {
		if rec.Fields[column] == key {
			out = append(out, rec.clone())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s %q: %w", column, key, core.ErrNotFound)
	}
	return out, nil
}

// GetByID looks up records by the store's identifier column.
func (s *Store) GetByID(key string) ([]Record, error) {
	return s.GetByKey(s.idColumn, key)
}

// Header returns the column schema.
func (s *Store) Header() Header {
	return s.header
}

// Len returns the number of accepted records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the record sequence.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.clone()
	}
	return out
}

// Stats returns what the parse pass kept and dropped.
func (s *Store) Stats() ParseStats {
	return s.stats
}

// IDColumn returns the identifier column name.
func (s *Store) IDColumn() string {
	return s.idColumn
}

// AnnotationColumn returns the primary annotation column name.
func (s *Store) AnnotationColumn() string {
	return s.annotationColumn
}
