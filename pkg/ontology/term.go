// Package ontology parses stanza-based OBO text into Terms and serves
// field-scoped substring search and exact id lookup over them.
package ontology

import (
	"maps"
	"slices"
	"strings"
)

// Field names with special meaning to the store.
const (
	FieldID   = "id"
	FieldName = "name"
	FieldDef  = "def"
)

// DefaultSearchFields is the field priority used when a search names none.
var DefaultSearchFields = []string{FieldID, FieldName, FieldDef}

// Value is the text stored under one field of a Term.
// A field seen once holds a single scalar; a field repeated within one
// stanza holds every occurrence in source order.
type Value struct {
	values []string
}

// Scalar builds a single-valued Value.
func Scalar(s string) Value {
	return Value{values: []string{s}}
}

// List builds a multi-valued Value.
func List(values ...string) Value {
	return Value{values: append([]string(nil), values...)}
}

// IsList reports whether the field was repeated in its stanza.
func (v Value) IsList() bool {
	return len(v.values) > 1
}

// Values returns a copy of the scalars in source order.
func (v Value) Values() []string {
	return append([]string(nil), v.values...)
}

// First returns the first scalar, or "" for a zero Value.
func (v Value) First() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// String joins the scalars with a single space. This is the form searched.
func (v Value) String() string {
	return strings.Join(v.values, " ")
}

// Join joins the scalars with sep, for display.
func (v Value) Join(sep string) string {
	return strings.Join(v.values, sep)
}

func (v Value) appendValue(s string) Value {
	return Value{values: append(v.values, s)}
}

// Term is one parsed ontology entry.
type Term struct {
	ID     string
	Fields map[string]Value
}

// Get returns the named field and whether it is present.
func (t Term) Get(field string) (Value, bool) {
	v, ok := t.Fields[field]
	return v, ok
}

// Name returns the first "name" value, or "".
func (t Term) Name() string {
	return t.Fields[FieldName].First()
}

// Definition returns the first "def" value, or "".
func (t Term) Definition() string {
	return t.Fields[FieldDef].First()
}

// clone returns a Term that shares no map with t. Values are immutable.
func (t Term) clone() Term {
	return Term{ID: t.ID, Fields: maps.Clone(t.Fields)}
}

// FieldNames returns the field names of the term in sorted order.
func (t Term) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for k := range t.Fields {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
