package leaderboard_test

import (
	"testing"

	"github.com/courtside/leaderboard-service/internal/leaderboard"
	"github.com/courtside/leaderboard-service/internal/matches"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedScorer returns a preassigned skill per player, defaulting to 50.
type fixedScorer map[string]int

func (f fixedScorer) Score(playerID string, history []matches.Match) int {
	if skill, ok := f[playerID]; ok {
		return skill
	}
	return 50
}

func TestBuildSingleMatch(t *testing.T) {
	builder := leaderboard.NewBuilder(nil)

	entries := builder.Build([]matches.Match{
		{ID: "m1", WinnerID: "alice", LoserID: "bob", VenueName: "v1"},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	players := map[string]bool{entries[0].PlayerID: true, entries[1].PlayerID: true}
	assert.True(t, players["alice"])
	assert.True(t, players["bob"])
}

func TestBuildEmptyHistory(t *testing.T) {
	builder := leaderboard.NewBuilder(nil)
	entries := builder.Build(nil)
	assert.Empty(t, entries)
}

func TestBuildCountsDistinctPlayers(t *testing.T) {
	builder := leaderboard.NewBuilder(nil)

	entries := builder.Build([]matches.Match{
		{WinnerID: "alice", LoserID: "bob", VenueName: "v1"},
		{WinnerID: "bob", LoserID: "carol", VenueName: "v1"},
		{WinnerID: "alice", LoserID: "carol", VenueName: "v1"},
	})

	require.Len(t, entries, 3)
	seen := map[string]bool{}
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank, "ranks must be contiguous from 1")
		seen[e.PlayerID] = true
	}
	assert.Len(t, seen, 3)
	assert.True(t, seen["alice"])
	assert.True(t, seen["bob"])
	assert.True(t, seen["carol"])
}

func TestBuildSortsBySkillDescending(t *testing.T) {
	builder := leaderboard.NewBuilder(fixedScorer{"alice": 10, "bob": 90, "carol": 40})

	entries := builder.Build([]matches.Match{
		{WinnerID: "alice", LoserID: "bob"},
		{WinnerID: "carol", LoserID: "alice"},
	})

	require.Len(t, entries, 3)
	assert.Equal(t, leaderboard.Entry{Rank: 1, PlayerID: "bob", Skill: 90}, entries[0])
	assert.Equal(t, leaderboard.Entry{Rank: 2, PlayerID: "carol", Skill: 40}, entries[1])
	assert.Equal(t, leaderboard.Entry{Rank: 3, PlayerID: "alice", Skill: 10}, entries[2])
}

func TestBuildTieBreakIsFirstOccurrence(t *testing.T) {
	// Everyone scores 50; order must follow first appearance in the history.
	builder := leaderboard.NewBuilder(fixedScorer{})

	entries := builder.Build([]matches.Match{
		{WinnerID: "dave", LoserID: "erin"},
		{WinnerID: "frank", LoserID: "dave"},
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "dave", entries[0].PlayerID)
	assert.Equal(t, "erin", entries[1].PlayerID)
	assert.Equal(t, "frank", entries[2].PlayerID)
}

func TestBuildSkillWithinRange(t *testing.T) {
	builder := leaderboard.NewBuilder(leaderboard.RandomScorer{})

	history := []matches.Match{
		{WinnerID: "p1", LoserID: "p2"},
		{WinnerID: "p3", LoserID: "p4"},
	}
	for range 50 {
		for _, e := range builder.Build(history) {
			assert.GreaterOrEqual(t, e.Skill, 1)
			assert.LessOrEqual(t, e.Skill, 100)
		}
	}
}

func TestBuildDuplicatePlayerAcrossMatches(t *testing.T) {
	builder := leaderboard.NewBuilder(fixedScorer{})

	entries := builder.Build([]matches.Match{
		{WinnerID: "alice", LoserID: "bob"},
		{WinnerID: "alice", LoserID: "bob"},
	})
	assert.Len(t, entries, 2)
}
