// Package accesslog records which files get touched inside a repository and
// ranks them by recency, frequency, or frecency (time-decayed frequency).
// It owns the accesses table in SQLite: repositories are opaque partition
// keys, paths are stored exactly as the caller passes them.
package accesslog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TimeFormat is the stored timestamp encoding: RFC 3339 UTC, fixed-width
// milliseconds. Fixed width keeps string comparison consistent with time
// comparison inside SQL.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Store manages the accesses table in SQLite.
type Store struct {
	db           *sql.DB
	halfLifeDays float64
}

// NewStore creates a new Store backed by the given SQLite database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, halfLifeDays: HalfLifeDays}
}

// SetHalfLifeDays overrides the frecency half-life. Non-positive values are
// ignored.
func (s *Store) SetHalfLifeDays(days float64) {
	if days > 0 {
		s.halfLifeDays = days
	}
}

// Init ensures the schema exists. Safe to call on every start; existing rows
// are untouched.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, SchemaDDL); err != nil {
		return fmt.Errorf("accesslog init: %w", err)
	}
	return nil
}

// Record inserts one access of path under repo. A zero at means "now".
// Recording the exact same (repo, path, timestamp) triple twice is a no-op:
// rapid repeated accesses within the timestamp resolution collapse into one
// event.
func (s *Store) Record(ctx context.Context, repo, path string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO accesses (repo, path, at) VALUES (?, ?, ?)`,
		repo, path, at.UTC().Format(TimeFormat),
	)
	if err != nil {
		return fmt.Errorf("accesslog record %s: %w", path, err)
	}
	return nil
}

// Forget deletes every access of path under repo. Forgetting a path that was
// never recorded is a no-op, not an error; callers invoke it speculatively on
// paths that no longer exist on disk.
func (s *Store) Forget(ctx context.Context, repo, path string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM accesses WHERE repo = ? AND path = ?`,
		repo, path,
	)
	if err != nil {
		return fmt.Errorf("accesslog forget %s: %w", path, err)
	}
	return nil
}

// Count returns the number of stored accesses for repo.
func (s *Store) Count(ctx context.Context, repo string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accesses WHERE repo = ?`, repo,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("accesslog count: %w", err)
	}
	return n, nil
}

// CountPaths returns the number of distinct recorded paths for repo.
func (s *Store) CountPaths(ctx context.Context, repo string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT path) FROM accesses WHERE repo = ?`, repo,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("accesslog count paths: %w", err)
	}
	return n, nil
}
