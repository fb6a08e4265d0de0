package matches

import "context"

// Client defines the interface for interacting with the matches API.
// This allows for mock implementations to be used in tests.
type Client interface {
	GetMatches(ctx context.Context, venueName string) ([]Match, error)
}
