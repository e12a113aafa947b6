package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/poaf/pkg/adapters/remote"
	"github.com/aretw0/poaf/pkg/core"
	"github.com/aretw0/poaf/pkg/ontology"
	"github.com/aretw0/poaf/pkg/query"
)

func TestSelectColumns(t *testing.T) {
	names := []string{"PRO_ID", "Object_term", "Ontology_ID", "Ontology_term", "Relation"}

	tests := []struct {
		name     string
		patterns []string
		want     []string
		wantErr  bool
	}{
		{"No Patterns", nil, names, false},
		{"Prefix Glob", []string{"Ontology_*"}, []string{"Ontology_ID", "Ontology_term"}, false},
		{"Header Order Kept", []string{"Relation", "PRO_ID"}, []string{"PRO_ID", "Relation"}, false},
		{"Character Class", []string{"*_[It]*"}, []string{"PRO_ID", "Object_term", "Ontology_ID", "Ontology_term"}, false},
		{"No Match", []string{"Evidence"}, nil, true},
		{"Invalid Pattern", []string{"[unclosed"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectColumns(names, tt.patterns)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProject(t *testing.T) {
	rows := []map[string]string{
		{"PRO_ID": "PR:1", "Relation": "enables", "Object_term": "x"},
		{"PRO_ID": "PR:2"},
	}
	got := project(rows, []string{"PRO_ID", "Relation"})
	assert.Equal(t, map[string]string{"PRO_ID": "PR:1", "Relation": "enables"}, got[0])
	assert.Equal(t, map[string]string{"PRO_ID": "PR:2"}, got[1])
	assert.Len(t, rows[0], 3, "input rows are not modified")
}

func TestTermFieldOrder(t *testing.T) {
	store := ontology.ParseString("[Term]\nis_a: PR:0\nname: n\nalt_id: PR:2\nid: PR:1\n")
	term, err := store.GetByID("PR:1")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "alt_id", "is_a"}, termFieldOrder(term))
}

func TestDisplay_Table(t *testing.T) {
	var out bytes.Buffer
	d := newDisplay(&out, 1)

	rows := []map[string]string{
		{"PRO_ID": "PR:1", "Relation": "enables"},
		{"PRO_ID": "PR:2", "Relation": "part_of"},
	}
	require.NoError(t, d.table([]int{2, 5}, rows, []string{"PRO_ID", "Relation"}))

	s := out.String()
	assert.Contains(t, s, "Line")
	assert.Contains(t, s, "PR:1")
	assert.NotContains(t, s, "PR:2")
	assert.Contains(t, s, "... and 1 more rows")
}

func TestDisplay_Stats(t *testing.T) {
	var out bytes.Buffer
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	newDisplay(&out, query.DefaultLimit).stats(query.Stats{
		Terms:         3,
		Records:       7,
		OntologyParse: ontology.ParseStats{MissingID: 1, MultiID: 2},
		Metadata: query.Metadata{
			DataDir:  ".PRO",
			Ontology: query.SourceInfo{Location: ".PRO/protein_ontology.obo", LastUpdated: &at},
		},
	})

	s := out.String()
	assert.Contains(t, s, "OBO terms loaded: 3")
	assert.Contains(t, s, "PAF annotations loaded: 7")
	assert.Contains(t, s, "OBO file: .PRO/protein_ontology.obo")
	assert.Contains(t, s, "1 stanzas without id")
	assert.Contains(t, s, "2 stanzas with several ids")
	assert.Contains(t, s, "OBO: 2026-10-16T09:30:00Z")
	assert.Contains(t, s, "PAF: Unknown")
}

func TestDisplay_UpdateResults(t *testing.T) {
	var out bytes.Buffer
	newDisplay(&out, query.DefaultLimit).updateResults([]remote.Result{
		{Kind: core.SourceOntology, Status: remote.StatusDownloaded, URL: "http://example.org/pr.obo"},
		{Kind: core.SourceAnnotation, Status: remote.StatusKept},
	})

	s := out.String()
	assert.Contains(t, s, "ontology: downloaded from http://example.org/pr.obo")
	assert.Contains(t, s, "annotation: offline, using local copy")
}

func TestComponentStates(t *testing.T) {
	svc := newTestService(t, shellOBO, shellPAF)

	states := componentStates(svc)
	require.Contains(t, states, "query")
	state, ok := states["query"].(query.ServiceState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Terms)
	assert.Equal(t, "PRO_ID", state.IDColumn)
}
