package annotation

import (
	"maps"
	"slices"
)

// Record is one accepted row of the annotation source.
type Record struct {
	// LineNumber is 1-based; the header is line 1.
	LineNumber int `json:"line_number"`
	// RawText is the line as read, without its terminator.
	RawText string `json:"raw_text"`
	// Columns is the exact tab split, including columns past the header.
	Columns []string `json:"columns"`
	// Fields maps header names to the aligned column values.
	Fields map[string]string `json:"fields"`
}

// Get returns the value of column name and whether the record has it.
func (r Record) Get(name string) (string, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// GetOr returns the value of column name, or fallback when absent.
func (r Record) GetOr(name, fallback string) string {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	return fallback
}

// clone returns a Record that shares no slice or map with r.
func (r Record) clone() Record {
	r.Columns = slices.Clone(r.Columns)
	r.Fields = maps.Clone(r.Fields)
	return r
}
