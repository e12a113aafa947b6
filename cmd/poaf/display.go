package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pterm/pterm"

	"github.com/aretw0/poaf/pkg/adapters/remote"
	"github.com/aretw0/poaf/pkg/annotation"
	"github.com/aretw0/poaf/pkg/ontology"
	"github.com/aretw0/poaf/pkg/query"
)

const notAvailable = "N/A"

// display renders query results for humans. Every line goes to w so the
// shell can be driven from tests.
type display struct {
	w     io.Writer
	limit int
}

func newDisplay(w io.Writer, limit int) *display {
	return &display{w: w, limit: limit}
}

func (d *display) println(a ...any) {
	pterm.Fprintln(d.w, a...)
}

func (d *display) printf(format string, a ...any) {
	pterm.Fprint(d.w, pterm.Sprintf(format, a...))
}

func (d *display) info(msg string) {
	pterm.Info.WithWriter(d.w).Println(msg)
}

func (d *display) success(msg string) {
	pterm.Success.WithWriter(d.w).Println(msg)
}

func (d *display) warning(msg string) {
	pterm.Warning.WithWriter(d.w).Println(msg)
}

func (d *display) failure(msg string) {
	pterm.Error.WithWriter(d.w).Println(msg)
}

// more prints the truncation notice when part of a list was left out.
func (d *display) more(remaining int, noun string) {
	if remaining > 0 {
		d.println(pterm.Gray(fmt.Sprintf("   ... and %d more %s", remaining, noun)))
	}
}

func (d *display) updateResults(results []remote.Result) {
	for _, r := range results {
		switch r.Status {
		case remote.StatusDownloaded:
			d.success(fmt.Sprintf("%s: downloaded from %s", r.Kind, r.URL))
		case remote.StatusKept:
			d.warning(fmt.Sprintf("%s: offline, using local copy", r.Kind))
		default:
			d.info(fmt.Sprintf("%s: current", r.Kind))
		}
	}
}

func (d *display) termHits(q string, hits []ontology.SearchHit) {
	d.printf("\nSearching OBO terms for: '%s'\n", q)
	if len(hits) == 0 {
		d.warning("No results found")
		return
	}

	d.printf("\nFound %d results:\n", len(hits))
	shown, remaining := query.Page(hits, d.limit)
	for i, hit := range shown {
		d.printf("%d. ID: %s\n", i+1, pterm.LightCyan(hit.ID))
		d.printf("   Name: %s\n", orNA(hit.Name))
		d.printf("   Matched field: %s\n", hit.MatchedField)
	}
	d.more(remaining, "results")
	d.println()
}

func (d *display) annotationHits(q string, hits []annotation.SearchHit) {
	d.printf("\nSearching PAF annotations for: '%s'\n", q)
	if len(hits) == 0 {
		d.warning("No results found")
		return
	}

	d.printf("\nFound %d results:\n", len(hits))
	shown, remaining := query.Page(hits, d.limit)
	for i, hit := range shown {
		d.printf("%d. Line %d: %s\n", i+1, hit.LineNumber, pterm.LightCyan(orNA(hit.Identifier())))
		d.printf("   Term: %s\n", orNA(hit.Annotation()))
		d.printf("   Ontology: %s\n", fieldOrNA(hit.Fields, annotation.ColumnOntologyTerm))
	}
	d.more(remaining, "results")
	d.println()
}

// term prints every field of a term: id, name and def first, then the
// rest alphabetically. List values are joined with "; ".
func (d *display) term(t ontology.Term) {
	d.println()
	d.println(pterm.LightGreen("Term Details:"))
	for _, name := range termFieldOrder(t) {
		v, _ := t.Get(name)
		d.printf("%s: %s\n", name, v.Join("; "))
	}
	d.println()
}

func termFieldOrder(t ontology.Term) []string {
	lead := []string{ontology.FieldID, ontology.FieldName, ontology.FieldDef}
	var order []string
	for _, name := range lead {
		if _, ok := t.Get(name); ok {
			order = append(order, name)
		}
	}
	for _, name := range t.FieldNames() {
		if !slices.Contains(lead, name) {
			order = append(order, name)
		}
	}
	return order
}

func (d *display) annotations(recs []annotation.Record, annotationColumn string) {
	d.printf("\nFound %d annotations:\n", len(recs))
	shown, remaining := query.Page(recs, d.limit)
	for i, rec := range shown {
		d.printf("%d. Line %d: %s\n", i+1, rec.LineNumber, rec.GetOr(annotationColumn, notAvailable))
		d.printf("   Ontology ID: %s\n", rec.GetOr(annotation.ColumnOntologyID, notAvailable))
		d.printf("   Ontology Term: %s\n", rec.GetOr(annotation.ColumnOntologyTerm, notAvailable))
		d.printf("   Relation: %s\n", rec.GetOr(annotation.ColumnRelation, notAvailable))
	}
	d.more(remaining, "annotations")
	d.println()
}

// table prints records restricted to the given columns, line number first.
func (d *display) table(lines []int, rows []map[string]string, columns []string) error {
	data := pterm.TableData{append([]string{"Line"}, columns...)}
	shown, remaining := query.Page(rows, d.limit)
	for i, row := range shown {
		cells := []string{strconv.Itoa(lines[i])}
		for _, c := range columns {
			cells = append(cells, row[c])
		}
		data = append(data, cells)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(d.w).WithData(data).Render(); err != nil {
		return err
	}
	d.more(remaining, "rows")
	return nil
}

func (d *display) stats(s query.Stats) {
	d.println()
	d.println(pterm.LightGreen("=== Dataset Statistics ==="))
	d.printf("OBO terms loaded: %d\n", s.Terms)
	d.printf("PAF annotations loaded: %d\n", s.Records)
	if s.Metadata.DataDir != "" {
		d.printf("Data directory: %s\n", s.Metadata.DataDir)
		d.printf("OBO file: %s\n", s.Metadata.Ontology.Location)
		d.printf("PAF file: %s\n", s.Metadata.Annotation.Location)
	}

	ont, ann := s.OntologyParse, s.AnnotationParse
	if ont.MissingID > 0 || ont.Duplicates > 0 || ont.MultiID > 0 {
		d.warning(fmt.Sprintf("ontology: %d stanzas without id, %d duplicate ids, %d stanzas with several ids",
			ont.MissingID, ont.Duplicates, ont.MultiID))
	}
	if ann.Short > 0 {
		d.warning(fmt.Sprintf("annotations: %d lines with fewer columns than the header were dropped", ann.Short))
	}

	d.println()
	d.println("Last updates:")
	d.printf("OBO: %s\n", stamp(s.Metadata.Ontology.LastUpdated))
	d.printf("PAF: %s\n", stamp(s.Metadata.Annotation.LastUpdated))
	d.println()
}

func stamp(t *time.Time) string {
	if t == nil {
		return "Unknown"
	}
	return t.Format(time.RFC3339)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func fieldOrNA(fields map[string]string, name string) string {
	if v, ok := fields[name]; ok {
		return v
	}
	return notAvailable
}

// selectColumns returns the header names matching any of the glob
// patterns, in header order. No patterns selects every column.
func selectColumns(names []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid column pattern %q", p)
		}
	}

	var selected []string
	for _, name := range names {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, name); ok {
				selected = append(selected, name)
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no column matches %v", patterns)
	}
	return selected, nil
}

// project keeps only the selected columns of each row.
func project(rows []map[string]string, columns []string) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, row := range rows {
		p := make(map[string]string, len(columns))
		for _, c := range columns {
			if v, ok := row[c]; ok {
				p[c] = v
			}
		}
		out[i] = p
	}
	return out
}
