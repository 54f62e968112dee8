// Package cache is a small SQLite-backed key/value cache with per-item expiry.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"vivo-app/internal/config"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Cache provides a SQLite-based caching mechanism.
type Cache struct {
	db  *sqlx.DB
	now func() time.Time
}

// New creates a new Cache instance.
// It opens the SQLite database at cfg.FilePath and ensures the cache table exists.
func New(cfg config.CacheConfig) (*Cache, error) {
	db, err := sqlx.Connect("sqlite", cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite cache: %w", err)
	}
	// In-memory databases exist per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode on sqlite cache: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS cache (
		key TEXT PRIMARY KEY,
		value BLOB,
		expires_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_expires_at ON cache (expires_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Cache{db: db, now: time.Now}, nil
}

// Get retrieves an item from the cache. It returns nil if the item is not found or is expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var item struct {
		Value     []byte `db:"value"`
		ExpiresAt int64  `db:"expires_at"`
	}
	err := c.db.GetContext(ctx, &item, `SELECT value, expires_at FROM cache WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found is not an error for a cache miss.
		}
		return nil, fmt.Errorf("failed to get item from cache: %w", err)
	}

	if c.now().Unix() >= item.ExpiresAt {
		_ = c.Delete(ctx, key)
		return nil, nil
	}
	return item.Value, nil
}

// Set adds an item to the cache with a specific TTL (time-to-live).
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := c.now().Add(ttl).Unix()
	query := `INSERT OR REPLACE INTO cache (key, value, expires_at) VALUES (?, ?, ?)`
	if _, err := c.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to set item in cache: %w", err)
	}
	return nil
}

// Delete removes an item from the cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete item from cache: %w", err)
	}
	return nil
}

// Purge removes every expired item and reports how many were removed.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM cache WHERE expires_at <= ?`, c.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}
