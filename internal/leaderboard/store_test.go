package leaderboard_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/courtside/leaderboard-service/internal/database"
	"github.com/courtside/leaderboard-service/internal/leaderboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (leaderboard.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	// Every pooled connection gets its own :memory: database, so pin the pool
	// to a single connection.
	db.SetMaxOpenConns(1)

	store := leaderboard.New(db)
	return store, db, dbTeardown
}

func TestUpsertThenGetRoundTrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	doc := &leaderboard.Document{
		VenueName: "v1",
		Entries: []leaderboard.Entry{
			{Rank: 1, PlayerID: "alice", Skill: 87},
			{Rank: 2, PlayerID: "bob", Skill: 42},
		},
		UpdatedAtUtc: time.Now().UTC(),
	}
	require.NoError(t, store.Upsert(ctx, doc))

	got, err := store.Get(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v1", got.ID)
	assert.Equal(t, "v1", got.VenueName)
	assert.Equal(t, doc.Entries, got.Entries)
	assert.False(t, got.UpdatedAtUtc.IsZero())
}

func TestGetUnknownVenueReturnsNil(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	got, err := store.Get(context.Background(), "never-upserted")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpsertOverwritesNotMerges(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	first := &leaderboard.Document{
		VenueName: "v1",
		Entries: []leaderboard.Entry{
			{Rank: 1, PlayerID: "alice", Skill: 90},
			{Rank: 2, PlayerID: "bob", Skill: 70},
			{Rank: 3, PlayerID: "carol", Skill: 10},
		},
		UpdatedAtUtc: time.Now().UTC(),
	}
	require.NoError(t, store.Upsert(ctx, first))

	second := &leaderboard.Document{
		VenueName: "v1",
		Entries: []leaderboard.Entry{
			{Rank: 1, PlayerID: "bob", Skill: 99},
		},
		UpdatedAtUtc: time.Now().UTC(),
	}
	require.NoError(t, store.Upsert(ctx, second))

	got, err := store.Get(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, got)
	// The previous three entries must be gone, not merged with the new one.
	assert.Equal(t, second.Entries, got.Entries)
}

func TestUpsertEmptyEntriesStillCreatesDocument(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	doc := &leaderboard.Document{
		VenueName:    "v2",
		Entries:      []leaderboard.Entry{},
		UpdatedAtUtc: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Upsert(ctx, doc))

	got, err := store.Get(ctx, "v2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Entries)
	assert.True(t, got.UpdatedAtUtc.Equal(doc.UpdatedAtUtc))
}

func TestLazyInitIsIdempotent(t *testing.T) {
	_, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	// Two stores over the same database simulate two consumer instances that
	// each attempt first-time initialization.
	first := leaderboard.New(db)
	second := leaderboard.New(db)

	require.NoError(t, first.Upsert(ctx, &leaderboard.Document{VenueName: "v1", UpdatedAtUtc: time.Now()}))
	require.NoError(t, second.Upsert(ctx, &leaderboard.Document{VenueName: "v1", UpdatedAtUtc: time.Now()}))

	got, err := second.Get(ctx, "v1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDocumentIDAlwaysEqualsVenueName(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	doc := &leaderboard.Document{ID: "stale-id", VenueName: "v1", UpdatedAtUtc: time.Now()}
	require.NoError(t, store.Upsert(ctx, doc))

	got, err := store.Get(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, got.VenueName, got.ID)
}
