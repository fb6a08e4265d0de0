package leaderboard

import "time"

// Entry is a single ranked row in a venue leaderboard. Entries are computed
// fresh on every recomputation and never partially updated.
type Entry struct {
	Rank     int    `json:"rank" msgpack:"rank"`
	PlayerID string `json:"playerId" msgpack:"playerId"`
	Skill    int    `json:"skill" msgpack:"skill"`
}

// Document is the stored leaderboard for a single venue. The venue name is
// the document identifier and the partition key at the same time.
type Document struct {
	ID           string    `json:"id"`
	VenueName    string    `json:"venueName"`
	Entries      []Entry   `json:"entries"`
	UpdatedAtUtc time.Time `json:"updatedAtUtc"`
}
