package ontology_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/poaf/pkg/core"
	"github.com/aretw0/poaf/pkg/ontology"
)

const sampleOBO = `format-version: 1.2
ontology: pr

[Term]
id: PR:000001
name: alpha protein
synonym: alpha-P
synonym: aP
[Term]
id: PR:000002
name: beta protein
`

func TestParse_EndToEnd(t *testing.T) {
	store := ontology.ParseString(sampleOBO)
	require.Equal(t, 2, store.Len())

	hits := store.SearchByFields("protein")
	require.Len(t, hits, 2)
	for _, h := range hits {
		assert.Equal(t, "name", h.MatchedField)
	}

	term, err := store.GetByID("PR:000001")
	require.NoError(t, err)
	syn, ok := term.Get("synonym")
	require.True(t, ok)
	assert.True(t, syn.IsList())
	assert.Equal(t, []string{"alpha-P", "aP"}, syn.Values())
}

func TestParse_Stanzas(t *testing.T) {
	t.Run("Header Lines Are Ignored", func(t *testing.T) {
		store := ontology.ParseString(sampleOBO)
		_, err := store.GetByID("1.2")
		assert.ErrorIs(t, err, core.ErrNotFound)

		term, err := store.GetByID("PR:000002")
		require.NoError(t, err)
		_, ok := term.Get("format-version")
		assert.False(t, ok)
	})

	t.Run("Stanza Without ID Is Dropped", func(t *testing.T) {
		text := "[Term]\nname: orphan\n[Term]\nid: PR:1\n[Term]\nid:\nname: blank id\n"
		store := ontology.ParseString(text)

		assert.Equal(t, 1, store.Len())
		assert.Equal(t, 3, store.Stats().Stanzas)
		assert.Equal(t, 2, store.Stats().MissingID)
	})

	t.Run("First Colon Splits", func(t *testing.T) {
		text := "[Term]\nid: PR:000003\nxref: UniProtKB:P12345 \n"
		term, err := ontology.ParseString(text).GetByID("PR:000003")
		require.NoError(t, err)

		assert.Equal(t, "PR:000003", term.ID)
		assert.Equal(t, "UniProtKB:P12345", term.Fields["xref"].First())
	})

	t.Run("Whitespace And CRLF Are Trimmed", func(t *testing.T) {
		text := "  [Term]  \r\n  id :  PR:9 \r\nname:\tnine\r\n"
		term, err := ontology.ParseString(text).GetByID("PR:9")
		require.NoError(t, err)
		assert.Equal(t, "nine", term.Name())
	})

	t.Run("Repeated Field Keeps Source Order", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("[Term]\nid: PR:7\n")
		for _, s := range []string{"c", "a", "b", "a"} {
			sb.WriteString("is_a: " + s + "\n")
		}
		term, err := ontology.ParseString(sb.String()).GetByID("PR:7")
		require.NoError(t, err)

		v := term.Fields["is_a"]
		assert.Equal(t, []string{"c", "a", "b", "a"}, v.Values())
		assert.Equal(t, "c a b a", v.String())
		assert.Equal(t, "c; a; b; a", v.Join("; "))
	})

	t.Run("Single Field Stays Scalar", func(t *testing.T) {
		term, err := ontology.ParseString(sampleOBO).GetByID("PR:000002")
		require.NoError(t, err)
		assert.False(t, term.Fields["name"].IsList())
	})

	t.Run("Duplicate ID Last Wins", func(t *testing.T) {
		text := "[Term]\nid: PR:1\nname: first\n[Term]\nid: PR:1\nname: second\n"
		store := ontology.ParseString(text)

		require.Equal(t, 1, store.Len())
		term, err := store.GetByID("PR:1")
		require.NoError(t, err)
		assert.Equal(t, "second", term.Name())
		assert.Equal(t, 1, store.Stats().Duplicates)
	})

	t.Run("Trailing Typedef Keeps Term Reachable", func(t *testing.T) {
		text := "[Term]\nid: PR:000001\nname: alpha\n\n[Typedef]\nid: part_of\nname: part of\n"
		store := ontology.ParseString(text)

		assert.Equal(t, []string{"PR:000001"}, store.IDs())
		term, err := store.GetByID("PR:000001")
		require.NoError(t, err)
		assert.Equal(t, []string{"PR:000001", "part_of"}, term.Fields["id"].Values())
		assert.Equal(t, 1, store.Stats().MultiID)
		assert.Zero(t, store.Stats().MissingID)
	})

	t.Run("Overlong Line Through Both Entry Points", func(t *testing.T) {
		long := strings.Repeat("a", 6*1024*1024)
		text := "[Term]\nid: PR:1\ndef: \"" + long + "\"\n[Term]\nid: PR:2\n"

		fromReader, err := ontology.Parse(strings.NewReader(text))
		require.NoError(t, err)
		fromString := ontology.ParseString(text)

		assert.Equal(t, []string{"PR:1", "PR:2"}, fromReader.IDs())
		assert.Equal(t, fromString.Stats(), fromReader.Stats())
		term, err := fromReader.GetByID("PR:1")
		require.NoError(t, err)
		assert.Len(t, term.Definition(), len(long)+2)
	})

	t.Run("Reader And String Agree", func(t *testing.T) {
		fromReader, err := ontology.Parse(strings.NewReader(sampleOBO))
		require.NoError(t, err)
		fromString := ontology.ParseString(sampleOBO)

		assert.Equal(t, fromString.IDs(), fromReader.IDs())
		assert.Equal(t, fromString.Stats(), fromReader.Stats())
	})

	t.Run("Read Error Is Reported", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ontology.Parse(iotest.ErrReader(boom))
		assert.ErrorIs(t, err, boom)
	})
}

func TestStore_SearchByFields(t *testing.T) {
	text := `[Term]
id: PR:000010
name: kinase
def: "An enzyme that transfers phosphate." []
[Term]
id: PR:000011
name: Phosphatase
synonym: PTPase
synonym: phospho remover
`
	store := ontology.ParseString(text)

	t.Run("Priority Order Decides Matched Field", func(t *testing.T) {
		hits := store.SearchByFields("phospha")
		ontology.SortHits(hits)

		require.Len(t, hits, 2)
		assert.Equal(t, "PR:000010", hits[0].ID)
		assert.Equal(t, "def", hits[0].MatchedField)
		assert.Equal(t, "PR:000011", hits[1].ID)
		assert.Equal(t, "name", hits[1].MatchedField)
		assert.Equal(t, "Phosphatase", hits[1].Name)
		assert.Empty(t, hits[1].Definition)
	})

	t.Run("One Hit Per Term", func(t *testing.T) {
		hits := store.SearchByFields("PR:0000", "id", "name", "def")
		assert.Len(t, hits, 2)
		for _, h := range hits {
			assert.Equal(t, "id", h.MatchedField)
		}
	})

	t.Run("Custom Fields Search List Values Joined", func(t *testing.T) {
		hits := store.SearchByFields("ptpase PHOSPHO", "synonym")
		require.Len(t, hits, 1)
		assert.Equal(t, "synonym", hits[0].MatchedField)
	})

	t.Run("Absent Field Is Skipped", func(t *testing.T) {
		assert.Empty(t, store.SearchByFields("kinase", "synonym"))
	})

	t.Run("No Match Is Empty Success", func(t *testing.T) {
		assert.Empty(t, store.SearchByFields("zzz"))
	})
}

func TestStore_EmptyQueryPolicy(t *testing.T) {
	t.Run("Default Returns No Hits", func(t *testing.T) {
		store := ontology.ParseString(sampleOBO)
		assert.Empty(t, store.SearchByFields(""))
	})

	t.Run("All Policy Matches Every Term", func(t *testing.T) {
		store := ontology.ParseString(sampleOBO, ontology.WithEmptyQueryPolicy(core.EmptyQueryAll))
		hits := store.SearchByFields("")
		require.Len(t, hits, 2)
		for _, h := range hits {
			assert.Equal(t, "id", h.MatchedField)
		}
	})
}

func TestStore_GetByID(t *testing.T) {
	store := ontology.ParseString(sampleOBO)

	_, err := store.GetByID("pr:000001")
	assert.ErrorIs(t, err, core.ErrNotFound, "lookup is case-sensitive")

	_, err = store.GetByID(" PR:000001")
	assert.ErrorIs(t, err, core.ErrNotFound, "lookup does not trim")

	assert.Equal(t, []string{"PR:000001", "PR:000002"}, store.IDs())
}

func TestTerm_FieldNames(t *testing.T) {
	term, err := ontology.ParseString(sampleOBO).GetByID("PR:000001")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "synonym"}, term.FieldNames())
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := ontology.ParseString(sampleOBO)

	term, err := store.GetByID("PR:000001")
	require.NoError(t, err)
	term.Fields["id"] = ontology.Scalar("changed")
	delete(term.Fields, "name")

	hits := store.SearchByFields("PR:000001")
	require.Len(t, hits, 1)
	hits[0].Term.Fields["name"] = ontology.Scalar("changed")

	again, err := store.GetByID("PR:000001")
	require.NoError(t, err)
	assert.Equal(t, "PR:000001", again.Fields["id"].First())
	assert.NotEqual(t, "changed", again.Name())
	assert.NotEmpty(t, again.Name())
}
