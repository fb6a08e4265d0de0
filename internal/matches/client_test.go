package matches_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courtside/leaderboard-service/internal/matches"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMatchesForVenue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/matches", r.URL.Path)
		assert.Equal(t, "court & garden", r.URL.Query().Get("venueName"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "m1", "winnerId": "alice", "loserId": "bob", "venueName": "court & garden"},
			{"id": "m2", "winnerId": "bob", "loserId": "carol", "venueName": "court & garden"}
		]`))
	}))
	defer server.Close()

	client := matches.NewClient(server.URL)
	result, err := client.GetMatches(context.Background(), "court & garden")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "alice", result[0].WinnerID)
	assert.Equal(t, "bob", result[0].LoserID)
	assert.Equal(t, "carol", result[1].LoserID)
}

func TestGetMatchesAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No venue filter means no query string at all.
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := matches.NewClient(server.URL)
	result, err := client.GetMatches(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetMatchesEmptyVenueHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := matches.NewClient(server.URL)
	result, err := client.GetMatches(context.Background(), "empty-venue")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetMatchesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := matches.NewClient(server.URL)
	_, err := client.GetMatches(context.Background(), "v1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-OK HTTP status")
}

func TestGetMatchesContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := matches.NewClient(server.URL)
	_, err := client.GetMatches(ctx, "v1")
	require.Error(t, err)
}
