package annotation

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/poaf/pkg/core"
)

const (
	// Separator splits columns.
	Separator = "\t"
	// CommentPrefix marks lines that are skipped.
	CommentPrefix = "#"
)

// ParseStats counts what a parse pass kept and dropped.
type ParseStats struct {
	Lines   int `json:"lines"`
	Records int `json:"records"`
	Skipped int `json:"skipped"` // blank and comment lines
	Short   int `json:"short"`   // fewer columns than the header
}

// Parse reads tab-delimited text from r and builds a Store.
//
// The first non-blank line is the header. Header and data lines are split
// the same way: only the line terminator is removed, never surrounding
// whitespace. Blank and '#' lines are skipped.
// A line with fewer columns than the header is dropped; extra columns are
// kept in Record.Columns but not aligned into Record.Fields.
// Text without a header returns core.ErrEmptySource.
func Parse(r io.Reader, opts ...Option) (*Store, error) {
	b := &builder{}
	if err := core.EachLine(r, b.line); err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}

	return b.finish(opts...)
}

// ParseString parses annotation text held in memory.
func ParseString(text string, opts ...Option) (*Store, error) {
	b := &builder{}
	for line := range strings.Lines(text) {
		b.line(line)
	}
	return b.finish(opts...)
}

type builder struct {
	header    Header
	hasHeader bool
	records   []Record
	stats     ParseStats
}

func (b *builder) line(raw string) {
	b.stats.Lines++
	line := strings.TrimRight(raw, "\r\n")

	if !b.hasHeader {
		if strings.TrimSpace(line) == "" {
			return
		}
		b.header = NewHeader(strings.Split(line, Separator))
		b.hasHeader = true
		return
	}

	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, CommentPrefix) {
		b.stats.Skipped++
		return
	}

	columns := strings.Split(line, Separator)
	if len(columns) < b.header.Len() {
		b.stats.Short++
		return
	}

	b.records = append(b.records, Record{
		LineNumber: b.stats.Lines,
		RawText:    line,
		Columns:    columns,
		Fields:     b.header.fields(columns),
	})
}

func (b *builder) finish(opts ...Option) (*Store, error) {
	if !b.hasHeader {
		return nil, fmt.Errorf("annotation header: %w", core.ErrEmptySource)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	b.stats.Records = len(b.records)
	if o.logger != nil {
		o.logger.Debug("parsed annotations",
			"columns", b.header.Len(),
			"records", b.stats.Records,
			"skipped", b.stats.Skipped,
			"short", b.stats.Short,
		)
	}

	return &Store{
		header:           b.header,
		records:          b.records,
		stats:            b.stats,
		policy:           o.policy,
		idColumn:         o.idColumn,
		annotationColumn: o.annotationColumn,
	}, nil
}
