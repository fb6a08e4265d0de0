package leaderboard

import (
	"math/rand/v2"
	"sort"

	"github.com/courtside/leaderboard-service/internal/matches"
)

// Scorer assigns a skill score to a player given the full match history the
// leaderboard is being built from. Implementations must be deterministic in
// everything except the score itself.
type Scorer interface {
	Score(playerID string, history []matches.Match) int
}

// RandomScorer assigns a uniform random skill in [1, 100].
//
// TODO: replace with an outcome-derived rating once the scoring model is
// decided; the Scorer interface exists so this swap touches nothing else.
type RandomScorer struct{}

// Score ignores the match history entirely.
func (RandomScorer) Score(playerID string, history []matches.Match) int {
	return rand.IntN(100) + 1
}

// Builder turns a list of matches into ranked leaderboard entries.
type Builder struct {
	scorer Scorer
}

// NewBuilder creates a Builder using the given scoring strategy. A nil scorer
// falls back to RandomScorer.
func NewBuilder(scorer Scorer) *Builder {
	if scorer == nil {
		scorer = RandomScorer{}
	}
	return &Builder{scorer: scorer}
}

// Build produces one entry per distinct player appearing as winner or loser,
// sorted by skill descending. The sort is stable, so players with equal skill
// keep their first-occurrence order. Ranks run 1..N with no gaps.
func (b *Builder) Build(history []matches.Match) []Entry {
	seen := make(map[string]bool)
	var players []string
	for _, m := range history {
		for _, id := range []string{m.WinnerID, m.LoserID} {
			if !seen[id] {
				seen[id] = true
				players = append(players, id)
			}
		}
	}

	entries := make([]Entry, 0, len(players))
	for _, id := range players {
		entries = append(entries, Entry{
			PlayerID: id,
			Skill:    b.scorer.Score(id, history),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Skill > entries[j].Skill
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
