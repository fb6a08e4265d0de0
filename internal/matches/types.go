package matches

// Match is a single recorded match result, owned by the matches API.
// The leaderboard service only ever reads these.
type Match struct {
	ID        string `json:"id"`
	WinnerID  string `json:"winnerId"`
	LoserID   string `json:"loserId"`
	VenueName string `json:"venueName"`
}
