package setmap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/setmap"
	"github.com/agentstation/setmap/pkg/logging"
)

// newDataServer serves a minimal curated collection for generation 9 and
// 404s everything else, including all usage statistics.
func newDataServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/sets/gen9.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"Landorus-Therian": {"ou": {"Scarf": {"moves": ["Earthquake", "U-turn", "Stealth Rock", "Stone Edge"], "item": "Choice Scarf"}}}
		}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSetmap(t *testing.T, srv *httptest.Server, gens ...int) setmap.Setmap {
	t.Helper()
	sm, err := setmap.New(
		setmap.WithSetsURL(srv.URL+"/sets"),
		setmap.WithStatsURL(srv.URL+"/stats"),
		setmap.WithGenerations(gens...),
		setmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return sm
}

func TestImport(t *testing.T) {
	srv := newDataServer(t)

	t.Run("writes one artifact per generation", func(t *testing.T) {
		dir := t.TempDir()
		sm := newSetmap(t, srv, 8, 9)

		result, err := sm.Import(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, result.Generations, 2)

		// Generation 8 has no published sets: the artifact is still
		// written, just empty.
		empty, err := os.ReadFile(filepath.Join(dir, "gen8.js"))
		require.NoError(t, err)
		assert.Equal(t, "var SETDEX_SS = {};\n", string(empty))

		body, err := os.ReadFile(filepath.Join(dir, "gen9.js"))
		require.NoError(t, err)
		content := string(body)
		assert.True(t, len(content) > 0 && content[len(content)-2:] == ";\n")
		assert.Contains(t, content, "var SETDEX_SV = {")
		assert.Contains(t, content, `"Landorus-Therian"`)
		assert.Contains(t, content, `"OU Scarf"`)
	})

	t.Run("result counts the written sets", func(t *testing.T) {
		dir := t.TempDir()
		sm := newSetmap(t, srv, 9)

		result, err := sm.Import(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Sets())
		assert.Equal(t, 9, result.Generations[0].Generation)
		assert.Equal(t, 1, result.Generations[0].Species)
		assert.Equal(t, filepath.Join(dir, "gen9.js"), result.Generations[0].Path)
		assert.False(t, result.CompletedAt.Before(result.StartedAt))
	})

	t.Run("missing output directory fails", func(t *testing.T) {
		sm := newSetmap(t, srv, 9)
		_, err := sm.Import(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("output path must be a directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		sm := newSetmap(t, srv, 9)
		_, err := sm.Import(context.Background(), file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("server failure is fatal", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(bad.Close)

		sm := newSetmap(t, bad, 9)
		_, err := sm.Import(context.Background(), t.TempDir())
		require.Error(t, err)
	})
}

func TestDex(t *testing.T) {
	srv := newDataServer(t)
	sm := newSetmap(t, srv, 9)

	d := sm.Dex()
	require.NotNil(t, d)
	assert.NotNil(t, d.Species("Landorus-Therian"))
	assert.Nil(t, d.Species("Missingno"))
}
