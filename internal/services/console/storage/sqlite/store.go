// Package sqlite persists the console query cache in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/staffdesk/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/staffdesk/internal/services/console/storage"
	"github.com/louisbranch/staffdesk/internal/services/console/storage/sqlite/migrations"
)

const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

var errNotConfigured = errors.New("cache store is not configured")

// Store keeps query-cache entries in one SQLite table.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and migrates the cache database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache db path is required")
	}
	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping cache db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	return nil
}

// Get returns the entry stored under key.
func (s *Store) Get(ctx context.Context, key string) (storage.Entry, bool, error) {
	if err := s.ready(); err != nil {
		return storage.Entry{}, false, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return storage.Entry{}, false, errors.New("cache key is required")
	}

	var (
		e        storage.Entry
		stale    bool
		storedAt int64
		expires  sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT key, scope, entity_id, payload, stale, stored_at, expires_at FROM cache_entries WHERE key = ?`,
		key,
	).Scan(&e.Key, &e.Scope, &e.EntityID, &e.Payload, &stale, &storedAt, &expires)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return storage.Entry{}, false, nil
	case err != nil:
		return storage.Entry{}, false, fmt.Errorf("get cache entry %s: %w", key, err)
	}
	e.Stale = stale
	e.StoredAt = fromMillis(storedAt)
	if expires.Valid {
		e.ExpiresAt = fromMillis(expires.Int64)
	}
	return e, true, nil
}

// Generation returns the current invalidation counter.
func (s *Store) Generation(ctx context.Context) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var gen int64
	if err := s.db.QueryRowContext(ctx, `SELECT generation FROM cache_meta WHERE id = 1`).Scan(&gen); err != nil {
		return 0, fmt.Errorf("read cache generation: %w", err)
	}
	return gen, nil
}

// Put inserts or replaces the entry under e.Key when the invalidation
// counter still equals generation. A zero StoredAt is set to the current
// time; a zero ExpiresAt never expires.
func (s *Store) Put(ctx context.Context, e storage.Entry, generation int64) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	e.Key = strings.TrimSpace(e.Key)
	e.Scope = strings.TrimSpace(e.Scope)
	switch {
	case e.Key == "":
		return false, errors.New("cache key is required")
	case e.Scope == "":
		return false, errors.New("cache scope is required")
	case len(e.Payload) == 0:
		return false, errors.New("cache payload is required")
	}
	if e.StoredAt.IsZero() {
		e.StoredAt = time.Now()
	}
	var expires sql.NullInt64
	if !e.ExpiresAt.IsZero() {
		expires = sql.NullInt64{Int64: e.ExpiresAt.UnixMilli(), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO cache_entries (key, scope, entity_id, payload, stale, stored_at, expires_at)
		 SELECT ?, ?, ?, ?, ?, ?, ?
		 WHERE (SELECT generation FROM cache_meta WHERE id = 1) = ?`,
		e.Key, e.Scope, strings.TrimSpace(e.EntityID), e.Payload, e.Stale, e.StoredAt.UnixMilli(), expires, generation,
	)
	if err != nil {
		return false, fmt.Errorf("put cache entry %s: %w", e.Key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("put cache entry %s: %w", e.Key, err)
	}
	return n > 0, nil
}

// MarkStale flags keys stale in one transaction with the generation bump.
// Blank keys are skipped.
func (s *Store) MarkStale(ctx context.Context, keys ...string) error {
	if err := s.ready(); err != nil {
		return err
	}
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		if key = strings.TrimSpace(key); key != "" {
			args = append(args, key)
		}
	}
	if len(args) == 0 {
		return nil
	}
	in := strings.Repeat(",?", len(args))[1:]
	err := s.invalidate(ctx, `UPDATE cache_entries SET stale = 1 WHERE key IN (`+in+`)`, args...)
	if err != nil {
		return fmt.Errorf("mark %d cache keys stale: %w", len(args), err)
	}
	return nil
}

// MarkScopeStale flags every entry of scope stale.
func (s *Store) MarkScopeStale(ctx context.Context, scope string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if scope = strings.TrimSpace(scope); scope == "" {
		return errors.New("cache scope is required")
	}
	if err := s.invalidate(ctx, `UPDATE cache_entries SET stale = 1 WHERE scope = ?`, scope); err != nil {
		return fmt.Errorf("mark scope %s stale: %w", scope, err)
	}
	return nil
}

// invalidate runs a stale-marking statement and advances the generation
// so loads that started earlier cannot write their results back.
func (s *Store) invalidate(ctx context.Context, query string, args ...any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `UPDATE cache_meta SET generation = generation + 1 WHERE id = 1`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteExpired drops stale entries and entries expiring at or before now.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if now.IsZero() {
		now = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE stale = 1 OR expires_at <= ?`,
		now.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("sweep cache entries: %w", err)
	}
	return res.RowsAffected()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ storage.Store = (*Store)(nil)
