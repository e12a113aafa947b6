// Package core holds the domain primitives shared by the ontology and
// annotation stores: the Source port, sentinel errors, change events and
// the substring matcher used by every search.
package core

import "fmt"

// SourceKind identifies one of the two knowledge sources.
type SourceKind string

const (
	SourceOntology   SourceKind = "ontology"
	SourceAnnotation SourceKind = "annotation"
)

// EventType represents the type of change observed on a source file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to one of the source files.
type Event struct {
	Type      EventType
	Kind      SourceKind
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s %s (%s)", e.Type, e.Kind, e.Path)
}
