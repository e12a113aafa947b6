package ontology

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/poaf/pkg/core"
)

// StanzaMarker opens a term stanza.
const StanzaMarker = "[Term]"

// ParseStats counts what a parse pass kept and dropped.
type ParseStats struct {
	Lines      int `json:"lines"`
	Stanzas    int `json:"stanzas"`
	Terms      int `json:"terms"`
	MissingID  int `json:"missing_id"`
	Duplicates int `json:"duplicates"`
	MultiID    int `json:"multi_id"` // stanzas carrying more than one id line
}

// Parse reads OBO text from r and builds a Store.
// Malformed stanzas are dropped, never reported; only read errors fail.
func Parse(r io.Reader, opts ...Option) (*Store, error) {
	b := newBuilder()
	if err := core.EachLine(r, b.line); err != nil {
		return nil, fmt.Errorf("failed to read ontology: %w", err)
	}

	return b.finish(opts...), nil
}

// ParseString parses OBO text held in memory. It cannot fail.
func ParseString(text string, opts ...Option) *Store {
	b := newBuilder()
	for line := range strings.Lines(text) {
		b.line(line)
	}
	return b.finish(opts...)
}

// builder folds lines into terms. Each stanza accumulates into its own
// fresh field map; nothing is shared between parses.
type builder struct {
	terms  map[string]Term
	fields map[string]Value // nil outside a stanza
	stats  ParseStats
}

func newBuilder() *builder {
	return &builder{terms: make(map[string]Term)}
}

func (b *builder) line(raw string) {
	b.stats.Lines++
	line := strings.TrimSpace(raw)

	if line == StanzaMarker {
		b.emit()
		b.fields = make(map[string]Value)
		return
	}
	if b.fields == nil {
		return
	}

	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if existing, seen := b.fields[key]; seen {
		b.fields[key] = existing.appendValue(value)
	} else {
		b.fields[key] = Scalar(value)
	}
}

// emit closes the current stanza. Stanzas without a non-empty id are
// dropped and a repeated id replaces the earlier term. A stanza with
// several id lines (e.g. a following [Typedef] folded into the last term)
// is keyed by the first one; Fields keeps them all.
func (b *builder) emit() {
	if b.fields == nil {
		return
	}
	b.stats.Stanzas++

	id, ok := b.fields[FieldID]
	key := id.First()
	if !ok || key == "" {
		b.stats.MissingID++
		return
	}
	if id.IsList() {
		b.stats.MultiID++
	}
	if _, dup := b.terms[key]; dup {
		b.stats.Duplicates++
	}
	b.terms[key] = Term{ID: key, Fields: b.fields}
}

func (b *builder) finish(opts ...Option) *Store {
	b.emit()
	b.fields = nil

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	b.stats.Terms = len(b.terms)
	if o.logger != nil {
		o.logger.Debug("parsed ontology",
			"terms", b.stats.Terms,
			"stanzas", b.stats.Stanzas,
			"missing_id", b.stats.MissingID,
			"duplicates", b.stats.Duplicates,
			"multi_id", b.stats.MultiID,
		)
	}

	return &Store{terms: b.terms, stats: b.stats, policy: o.policy}
}
