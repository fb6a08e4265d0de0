package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new leaderboard Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{db: db}
}

type store struct {
	db *sql.DB

	// Skips the ensure-table round trip after the first success. Losing this
	// flag (process restart, or two instances racing) only costs a redundant
	// create attempt, which the conflict check below makes harmless.
	initialized atomic.Bool
}

// Upsert overwrites the document for the venue. The write is a full document
// replacement keyed by venue name; concurrent recomputations for the same
// venue are not serialized and the last one to complete wins.
func (s *store) Upsert(ctx context.Context, doc *Document) error {
	if err := s.ensureInitialized(ctx); err != nil {
		return err
	}

	doc.ID = doc.VenueName
	entriesBlob, err := msgpack.Marshal(doc.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO leaderboards (venue_name, entries, updated_at_utc)
		VALUES (?, ?, ?)
		ON CONFLICT(venue_name) DO UPDATE SET
			entries = excluded.entries,
			updated_at_utc = excluded.updated_at_utc;
	`, doc.VenueName, entriesBlob, doc.UpdatedAtUtc.UTC().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert leaderboard for venue %q: %w", doc.VenueName, err)
	}
	return nil
}

// Get returns the stored document for a venue, or (nil, nil) when no
// recomputation has completed for it yet.
func (s *store) Get(ctx context.Context, venueName string) (*Document, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}

	var (
		entriesBlob []byte
		updatedAt   int64
	)
	row := s.db.QueryRowContext(ctx,
		"SELECT entries, updated_at_utc FROM leaderboards WHERE venue_name = ?", venueName)
	if err := row.Scan(&entriesBlob, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read leaderboard for venue %q: %w", venueName, err)
	}

	doc := &Document{
		ID:           venueName,
		VenueName:    venueName,
		Entries:      []Entry{},
		UpdatedAtUtc: time.Unix(updatedAt, 0).UTC(),
	}
	if len(entriesBlob) > 0 {
		if err := msgpack.Unmarshal(entriesBlob, &doc.Entries); err != nil {
			return nil, fmt.Errorf("failed to decode entries for venue %q: %w", venueName, err)
		}
	}
	return doc, nil
}

// ensureInitialized lazily creates the leaderboards table on first use.
// Concurrent first-time calls from multiple instances are expected: the
// create is attempted without a guard and an "already exists" response is
// treated as success.
func (s *store) ensureInitialized(ctx context.Context) error {
	if s.initialized.Load() {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE leaderboards (
			venue_name TEXT PRIMARY KEY,
			entries BLOB,
			updated_at_utc INTEGER NOT NULL
		);
	`)
	if err != nil && !isAlreadyExists(err) {
		return fmt.Errorf("failed to initialize leaderboard storage: %w", err)
	}
	if err != nil {
		log.Debug("Leaderboard storage already initialized", "error", err)
	}

	s.initialized.Store(true)
	return nil
}

func isAlreadyExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
