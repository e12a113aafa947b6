package ontology

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/poaf/pkg/core"
)

// Store is an immutable id → Term index built by Parse.
// It is safe for concurrent reads; every Term it returns is a copy.
type Store struct {
	terms  map[string]Term
	stats  ParseStats
	policy core.EmptyQueryPolicy
}

// SearchHit is one term matched by SearchByFields.
type SearchHit struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Definition   string `json:"definition"`
	MatchedField string `json:"matched_field"`
	Term         Term   `json:"-"`
}

// SearchByFields returns the terms whose fields contain query, ignoring case.
//
// Fields are tried in the given priority order (DefaultSearchFields when
// none are given). The first present field that matches produces one hit
// tagged with that field; later fields of the same term are not checked.
//
// The order of hits is not source order and not stable across calls.
// Use SortHits when a stable order is needed.
func (s *Store) SearchByFields(query string, fields ...string) []SearchHit {
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}

	m := core.NewMatcher(query, s.policy)
	if m.Disabled() {
		return nil
	}

	var hits []SearchHit
	for id, term := range s.terms {
		for _, field := range fields {
			v, ok := term.Fields[field]
			if !ok || !m.Match(v.String()) {
				continue
			}
			hits = append(hits, SearchHit{
				ID:           id,
				Name:         term.Name(),
				Definition:   term.Definition(),
				MatchedField: field,
				Term:         term.clone(),
			})
			break
		}
	}
	return hits
}

// GetByID returns the term with exactly this id.
// Matching is case-sensitive and applies no trimming.
func (s *Store) GetByID(id string) (Term, error) {
	t, ok := s.terms[id]
	if !ok {
		return Term{}, fmt.Errorf("term %q: %w", id, core.ErrNotFound)
	}
	return t.clone(), nil
}

// Len returns the number of terms.
func (s *Store) Len() int {
	return len(s.terms)
}

// IDs returns every term id in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.terms))
	for id := range s.terms {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Stats returns what the parse pass kept and dropped.
func (s *Store) Stats() ParseStats {
	return s.stats
}

// SortHits orders hits by term id, in place.
func SortHits(hits []SearchHit) {
	slices.SortFunc(hits, func(a, b SearchHit) int {
		return strings.Compare(a.ID, b.ID)
	})
}
