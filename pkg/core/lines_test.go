package core

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEachLine(t *testing.T) {
	collect := func(t *testing.T, text string) []string {
		t.Helper()
		var got []string
		require.NoError(t, EachLine(strings.NewReader(text), func(line string) {
			got = append(got, line)
		}))
		return got
	}

	t.Run("Matches strings.Lines", func(t *testing.T) {
		for _, text := range []string{"", "a", "a\n", "a\r\nb", "\n\nx\n", "a\nb\n\n"} {
			var want []string
			for line := range strings.Lines(text) {
				want = append(want, line)
			}
			assert.Equal(t, want, collect(t, text), "text %q", text)
		}
	})

	t.Run("No Length Limit", func(t *testing.T) {
		long := strings.Repeat("x", 5*1024*1024)
		got := collect(t, "head\n"+long+"\ntail")
		require.Len(t, got, 3)
		assert.Len(t, got[1], len(long)+1)
		assert.Equal(t, "tail", got[2])
	})

	t.Run("Read Error", func(t *testing.T) {
		err := EachLine(iotest.ErrReader(iotest.ErrTimeout), func(string) {})
		assert.ErrorIs(t, err, iotest.ErrTimeout)
	})
}
