package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/poaf/pkg/adapters/fs"
	"github.com/aretw0/poaf/pkg/adapters/remote"
	"github.com/aretw0/poaf/pkg/core"
)

// fakeFetcher serves fixed bodies by URL and counts calls.
type fakeFetcher struct {
	bodies map[string]string
	calls  map[string]int
	err    error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		bodies: map[string]string{
			"mem://obo": "[Term]\nid: PR:000001\n",
			"mem://paf": "PRO_ID\tObject_term\n",
		},
		calls: make(map[string]int),
	}
}

func (f *fakeFetcher) Fetch(ctx context.Context, src, dst string) error {
	f.calls[src]++
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(dst, []byte(f.bodies[src]), 0644)
}

func newUpdater(t *testing.T, fetcher remote.Fetcher) (*remote.Updater, *fs.Source) {
	t.Helper()
	src := fs.NewSource(fs.Config{Path: filepath.Join(t.TempDir(), ".PRO")})
	u := remote.NewUpdater(src, remote.Config{
		OntologyURL:   "mem://obo",
		AnnotationURL: "mem://paf",
		Fetcher:       fetcher,
		Now:           func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) },
	})
	return u, src
}

func TestUpdater_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Downloads Missing Then Stays Current", func(t *testing.T) {
		fetcher := newFakeFetcher()
		u, src := newUpdater(t, fetcher)

		results, err := u.Update(ctx, remote.UpdateOptions{})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, core.SourceOntology, results[0].Kind)
		assert.Equal(t, remote.StatusDownloaded, results[0].Status)
		assert.Equal(t, remote.StatusDownloaded, results[1].Status)

		text, err := src.OntologyText(ctx)
		require.NoError(t, err)
		assert.Equal(t, fetcher.bodies["mem://obo"], text)

		m, err := src.Manifest()
		require.NoError(t, err)
		assert.Equal(t, results[0].Hash, m.Hash(core.SourceOntology))
		require.NotNil(t, m.LastUpdated(core.SourceAnnotation))
		assert.Equal(t, 2026, m.LastUpdated(core.SourceAnnotation).Year())

		results, err = u.Update(ctx, remote.UpdateOptions{})
		require.NoError(t, err)
		assert.Equal(t, remote.StatusCurrent, results[0].Status)
		assert.Equal(t, remote.StatusCurrent, results[1].Status)
		assert.Equal(t, 1, fetcher.calls["mem://obo"])
	})

	t.Run("Local Change Triggers Download", func(t *testing.T) {
		fetcher := newFakeFetcher()
		u, src := newUpdater(t, fetcher)
		_, err := u.Update(ctx, remote.UpdateOptions{})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(src.PathFor(core.SourceAnnotation), []byte("edited"), 0644))

		results, err := u.Update(ctx, remote.UpdateOptions{})
		require.NoError(t, err)
		assert.Equal(t, remote.StatusCurrent, results[0].Status)
		assert.Equal(t, remote.StatusDownloaded, results[1].Status)
		assert.Equal(t, 2, fetcher.calls["mem://paf"])
	})

	t.Run("Force Downloads Everything", func(t *testing.T) {
		fetcher := newFakeFetcher()
		u, _ := newUpdater(t, fetcher)
		_, err := u.Update(ctx, remote.UpdateOptions{})
		require.NoError(t, err)

		_, err = u.Update(ctx, remote.UpdateOptions{Force: true})
		require.NoError(t, err)
		assert.Equal(t, 2, fetcher.calls["mem://obo"])
		assert.Equal(t, 2, fetcher.calls["mem://paf"])
	})

	t.Run("Offline Requires Files", func(t *testing.T) {
		fetcher := newFakeFetcher()
		u, src := newUpdater(t, fetcher)

		_, err := u.Update(ctx, remote.UpdateOptions{Offline: true})
		assert.ErrorIs(t, err, remote.ErrOffline)
		assert.Empty(t, fetcher.calls)

		require.NoError(t, os.WriteFile(src.PathFor(core.SourceOntology), []byte("[Term]\n"), 0644))
		require.NoError(t, os.WriteFile(src.PathFor(core.SourceAnnotation), []byte("PRO_ID\n"), 0644))
		results, err := u.Update(ctx, remote.UpdateOptions{Offline: true})
		require.NoError(t, err)
		assert.Equal(t, remote.StatusKept, results[0].Status)
		assert.Equal(t, remote.StatusKept, results[1].Status)
	})

	t.Run("Fetch Failure Aborts And Keeps Manifest", func(t *testing.T) {
		fetcher := newFakeFetcher()
		fetcher.err = errors.New("unreachable")
		u, src := newUpdater(t, fetcher)

		_, err := u.Update(ctx, remote.UpdateOptions{})
		require.ErrorIs(t, err, fetcher.err)
		assert.Equal(t, 0, fetcher.calls["mem://paf"], "annotation is not attempted after ontology fails")

		_, statErr := os.Stat(src.ManifestPath())
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestGetterFetcher_HTTP(t *testing.T) {
	body := "[Term]\nid: PR:000042\nname: served protein\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "pr.obo")
	err := remote.GetterFetcher{}.Fetch(context.Background(), srv.URL+"/pr.obo", dst)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}
