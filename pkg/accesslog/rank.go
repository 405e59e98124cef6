package accesslog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

// HalfLifeDays is the default age at which an access contributes half its
// fresh weight to the frecency score.
const HalfLifeDays = 30.0

// Recent returns the distinct paths accessed under repo, most recently
// accessed first. Ties break by path ascending so results are deterministic.
func (s *Store) Recent(ctx context.Context, repo string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path
		FROM accesses
		WHERE repo = ?
		GROUP BY path
		ORDER BY MAX(at) DESC, path ASC
	`, repo)
	if err != nil {
		return nil, fmt.Errorf("accesslog recent: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("accesslog recent scan: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("accesslog recent rows: %w", err)
	}
	return paths, nil
}

// Frequent returns the distinct paths accessed under repo, most accessed
// first. Ties break by path ascending.
func (s *Store) Frequent(ctx context.Context, repo string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path
		FROM accesses
		WHERE repo = ?
		GROUP BY path
		ORDER BY COUNT(*) DESC, path ASC
	`, repo)
	if err != nil {
		return nil, fmt.Errorf("accesslog frequent: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("accesslog frequent scan: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("accesslog frequent rows: %w", err)
	}
	return paths, nil
}

// Frecent returns the distinct paths accessed under repo ordered by frecency:
// each access contributes 2^(-age_days/half_life_days) and contributions sum
// per path, so files touched recently and often rank highest.
//
// Ages come from SQLite's julianday against the single now supplied by the
// caller; the decay itself is computed here because modernc.org/sqlite ships
// no pow().
//
// https://wiki.mozilla.org/User:Jesse/NewFrecency
func (s *Store) Frecent(ctx context.Context, repo string, now time.Time) ([]string, error) {
	scores, err := s.frecencyScores(ctx, repo, now)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(scores))
	for path := range scores {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		si, sj := scores[paths[i]], scores[paths[j]]
		if si != sj {
			return si > sj
		}
		return paths[i] < paths[j]
	})

	return paths, nil
}

// frecencyScores sums the decayed weight of every access per path.
func (s *Store) frecencyScores(ctx context.Context, repo string, now time.Time) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, julianday(?) - julianday(at) AS age_days
		FROM accesses
		WHERE repo = ?
	`, now.UTC().Format(TimeFormat), repo)
	if err != nil {
		return nil, fmt.Errorf("accesslog frecent: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var path string
		var ageDays float64
		if err := rows.Scan(&path, &ageDays); err != nil {
			return nil, fmt.Errorf("accesslog frecent scan: %w", err)
		}
		scores[path] += math.Exp2(-ageDays / s.halfLifeDays)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("accesslog frecent rows: %w", err)
	}

	return scores, nil
}
