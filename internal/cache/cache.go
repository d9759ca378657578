// Package cache implements the durable series cache. Entries are keyed by the
// exact (country, indicator, startYear, endYear) tuple they were fetched for;
// a request for a narrower sub-range is a miss. Storage is a sqlite
// file under the configured cache directory so entries survive restarts.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"macrotrends/internal/series"
)

// DefaultTTL is how long an entry is served without a refresh attempt.
const DefaultTTL = 24 * time.Hour

const dbFileName = "series_cache.db"

// Key identifies one cache entry. Equality is exact-tuple: there is no
// implicit sub-range reuse.
type Key struct {
	CountryCode   string
	IndicatorCode string
	StartYear     int
	EndYear       int
}

// String returns a human-readable form of the key for logging.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%d:%d", k.CountryCode, k.IndicatorCode, k.StartYear, k.EndYear)
}

// Entry is a cached series plus the moment it was stored.
type Entry struct {
	Key      Key
	Series   *series.TimeSeries
	StoredAt time.Time
}

// Store is a durable key -> series cache backed by sqlite. A single writer
// connection serializes concurrent puts; the last writer for a key wins and
// replacement is atomic at key granularity.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open creates the cache directory if needed and opens (or creates) the
// sqlite store inside it.
func Open(dir string, ttl time.Duration) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache: directory is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db, ttl: ttl, now: time.Now}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the entry stored under key, if any. Corrupt or unreadable
// entries are a miss, never an error: cache trouble must not block a live
// fetch.
func (s *Store) Get(ctx context.Context, key Key) (*Entry, bool) {
	row := s.db.QueryRowContext(ctx, `
		SELECT payload, stored_at FROM series_cache
		WHERE country_code = ? AND indicator_code = ? AND start_year = ? AND end_year = ?
	`, key.CountryCode, key.IndicatorCode, key.StartYear, key.EndYear)

	var payload string
	var storedAt string
	if err := row.Scan(&payload, &storedAt); err != nil {
		if err != sql.ErrNoRows {
			slog.Debug("cache read failed, treating as miss", "key", key.String(), "error", err)
		}
		return nil, false
	}

	var ts series.TimeSeries
	if err := json.Unmarshal([]byte(payload), &ts); err != nil {
		slog.Debug("cache entry corrupt, treating as miss", "key", key.String(), "error", err)
		return nil, false
	}

	stored, err := time.Parse(time.RFC3339Nano, storedAt)
	if err != nil {
		slog.Debug("cache timestamp corrupt, treating as miss", "key", key.String(), "error", err)
		return nil, false
	}

	return &Entry{Key: key, Series: &ts, StoredAt: stored}, true
}

// Put stores a series under key, fully replacing any prior entry.
func (s *Store) Put(ctx context.Context, key Key, ts *series.TimeSeries) error {
	payload, err := json.Marshal(ts)
	if err != nil {
		return fmt.Errorf("cache: encode series: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO series_cache (country_code, indicator_code, start_year, end_year, payload, stored_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(country_code, indicator_code, start_year, end_year)
		DO UPDATE SET payload = excluded.payload, stored_at = excluded.stored_at
	`, key.CountryCode, key.IndicatorCode, key.StartYear, key.EndYear,
		string(payload), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("cache: write entry: %w", err)
	}
	return nil
}

// Stale reports whether the entry's age exceeds the configured TTL at the
// given instant. Stale entries are still usable as a fallback when a live
// refetch fails.
func (s *Store) Stale(e *Entry, now time.Time) bool {
	return now.Sub(e.StoredAt) > s.ttl
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS series_cache (
			country_code TEXT NOT NULL,
			indicator_code TEXT NOT NULL,
			start_year INTEGER NOT NULL,
			end_year INTEGER NOT NULL,
			payload TEXT NOT NULL,
			stored_at TEXT NOT NULL,
			PRIMARY KEY (country_code, indicator_code, start_year, end_year)
		);
	`)
	return err
}
