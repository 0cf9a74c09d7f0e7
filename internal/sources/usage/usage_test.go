package usage_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/setmap/internal/sources/usage"
	"github.com/agentstation/setmap/internal/transport"
	"github.com/agentstation/setmap/pkg/errors"
)

func TestStatistics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gen9ou.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"info": {"metagame": "gen9ou", "number of battles": 4242},
			"data": {"Gholdengo": {"Moves": {"Make It Rain": 0.95}, "usage": 0.25}}
		}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := usage.New(server.URL, transport.NewWithHTTPClient(server.Client()))

	t.Run("fetches and decodes a format page", func(t *testing.T) {
		stats, err := client.Statistics(context.Background(), "gen9ou")
		require.NoError(t, err)
		assert.Equal(t, 4242, stats.Info.NumberOfBattles)
		assert.InDelta(t, 0.25, stats.Data["Gholdengo"].Usage, 1e-9)
	})

	t.Run("absent format is ErrNotFound", func(t *testing.T) {
		_, err := client.Statistics(context.Background(), "gen9doesnotexist")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
