// Package annotation parses header-driven, tab-delimited annotation text
// (PAF) into ordered records and serves whole-record search and key lookup.
package annotation

import "slices"

// Default column names of the PAF schema.
const (
	ColumnProteinID    = "PRO_ID"
	ColumnObjectTerm   = "Object_term"
	ColumnOntologyID   = "Ontology_ID"
	ColumnOntologyTerm = "Ontology_term"
	ColumnRelation     = "Relation"
)

// Header is the column schema read once from the first line of the source.
// It is immutable and shared by every record of a store.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader builds a schema from ordered column names. When a name repeats,
// its last position wins.
func NewHeader(names []string) Header {
	h := Header{
		names: slices.Clone(names),
		index: make(map[string]int, len(names)),
	}
	for i, n := range h.names {
		h.index[n] = i
	}
	return h
}

// Len returns the number of columns.
func (h Header) Len() int {
	return len(h.names)
}

// Names returns a copy of the column names in order.
func (h Header) Names() []string {
	return slices.Clone(h.names)
}

// Index returns the position of column name.
func (h Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

// Has reports whether the header defines column name.
func (h Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// fields zips columns onto the header. columns must be at least as long.
func (h Header) fields(columns []string) map[string]string {
	m := make(map[string]string, len(h.index))
	for n, i := range h.index {
		m[n] = columns[i]
	}
	return m
}
