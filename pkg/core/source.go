package core

import "context"

// Source provides the raw text of both knowledge sources.
// Implementations decide where the text comes from (local cache, fresh
// download, memory); the stores only ever see the text.
type Source interface {
	// OntologyText returns the full contents of the ontology (OBO) source.
	OntologyText(ctx context.Context) (string, error)

	// AnnotationText returns the full contents of the annotation (PAF) source.
	AnnotationText(ctx context.Context) (string, error)
}

// Watchable defines an interface for sources that can report changes.
type Watchable interface {
	// Watch emits an Event whenever a source file matching pattern changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// StaticSource serves fixed text. Useful for tests and batch callers that
// already hold the file contents.
type StaticSource struct {
	Ontology   string
	Annotation string
}

// OntologyText implements Source.
func (s StaticSource) OntologyText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Ontology, nil
}

// AnnotationText implements Source.
func (s StaticSource) AnnotationText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Annotation, nil
}

var _ Source = StaticSource{}
