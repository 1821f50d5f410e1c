package opencritic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		BaseURL: serverURL,
		APIKey:  "test-key",
		APIHost: "test-host",
	}, zap.NewNop())
}

func TestFetchTopTitles(t *testing.T) {
	var gotSkip, gotKey, gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSkip = r.URL.Query().Get("skip")
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 463, "name": "Elden Ring", "topCriticScore": 94.6, "numReviews": 178,
			 "percentRecommended": 96.2, "tier": "Mighty",
			 "Platforms": [{"name": "PlayStation 5", "shortName": "PS5"}],
			 "images": {"box": {"og": "game/463/o/box.jpg"}},
			 "url": "https://example.com/game/463/elden-ring"},
			{"id": 464, "name": "Hades", "topCriticScore": 92.1, "numReviews": 120,
			 "percentRecommended": 98.0, "tier": "Mighty"}
		]`))
	}))
	defer server.Close()

	games, err := newTestClient(server.URL).FetchTopTitles(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "20", gotSkip)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-host", gotHost)

	assert.Equal(t, int64(463), games[0].ID)
	assert.Equal(t, "Elden Ring", games[0].Name)
	assert.InDelta(t, 94.6, games[0].TopCriticScore, 0.001)
	assert.Equal(t, "PS5", games[0].Platforms[0].ShortName)
	assert.Equal(t, "game/463/o/box.jpg", games[0].Images.Box.OG)
	// Optional fields may simply be absent.
	assert.Empty(t, games[1].Platforms)
	assert.Empty(t, games[1].Images.Box.OG)
}

func TestFetchTopTitles_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchTopTitles(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchTopTitles_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchTopTitles(context.Background(), 0)
	assert.Error(t, err)
}
