package leaderboard

import "context"

// Store defines the persistence operations for leaderboard documents.
// This allows for mock implementations to be used in tests.
type Store interface {
	// Upsert overwrites the document keyed by its venue name, creating the
	// backing storage on first use. Last writer wins; there is no version check.
	Upsert(ctx context.Context, doc *Document) error
	// Get returns the current document for a venue, or (nil, nil) if no
	// document has been stored for it yet.
	Get(ctx context.Context, venueName string) (*Document, error)
}
