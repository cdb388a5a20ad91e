package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-greet-bot/internal/database"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SQLite keeps entries in the cache_entries table so daily data survives a
// restart. Expired rows are ignored on read and removed by PurgeExpired.
type SQLite struct {
	db  *sqlx.DB
	now func() time.Time
}

type cacheEntry struct {
	Value     []byte `db:"value"`
	ExpiresAt int64  `db:"expires_at"`
}

func NewSQLite(db *database.DB) *SQLite {
	return &SQLite{db: db.X(), now: time.Now}
}

func (s *SQLite) Get(ctx context.Context, key string, dest any) (bool, error) {
	var entry cacheEntry
	err := s.db.GetContext(ctx, &entry, `SELECT value, expires_at FROM cache_entries WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}

	if entry.ExpiresAt <= s.now().UnixMilli() {
		return false, nil
	}

	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return true, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, data, s.now().Add(ttl).UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// PurgeExpired deletes every expired entry and returns how many were removed.
func (s *SQLite) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE expires_at <= ?`, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache entries: %w", err)
	}
	return res.RowsAffected()
}

// RunJanitor purges expired entries every interval until ctx is done.
func (s *SQLite) RunJanitor(ctx context.Context, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				log.Warn("cache purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("cache purged", zap.Int64("entries", n))
			}
		}
	}
}
