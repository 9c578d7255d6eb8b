// ABOUTME: SQLite-based result cache for persistent per-source search results
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
)

// Client implements the ResultCache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	ttl      time.Duration
}

// NewSQLiteCache creates a new SQLite result cache. Entries older than
// ttl are treated as absent and purged on the next read.
func NewSQLiteCache(filePath string, ttl time.Duration) (*Client, error) {
	if filePath == "" {
		filePath = "prixmalin.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		ttl:      ttl,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS search_cache (
			query TEXT NOT NULL,
			store TEXT NOT NULL,
			results BLOB NOT NULL,
			created_at INTEGER NOT NULL,
			UNIQUE(query, store)
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// normalizeQuery folds the cache key the same way for reads and writes.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get retrieves the cached product list for (query, store).
// Stale entries are deleted and reported as a miss (lazy expiration,
// no background sweep).
func (c *Client) Get(ctx context.Context, query, store string) ([]domain.Product, error) {
	key := normalizeQuery(query)

	var results []byte
	var createdAt int64

	row := c.db.QueryRowContext(ctx,
		"SELECT results, created_at FROM search_cache WHERE query = ? AND store = ?",
		key, store)
	if err := row.Scan(&results, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, coreerrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if time.Since(time.Unix(createdAt, 0)) > c.ttl {
		_, _ = c.db.ExecContext(ctx,
			"DELETE FROM search_cache WHERE query = ? AND store = ?", key, store)
		return nil, coreerrors.ErrCacheMiss
	}

	var products []domain.Product
	if err := json.Unmarshal(results, &products); err != nil {
		// Corrupted payload; the caller treats this as a miss and the
		// entry is overwritten on the next successful fetch.
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return products, nil
}

// Set upserts the product list for (query, store) with the current time.
func (c *Client) Set(ctx context.Context, query, store string, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO search_cache (query, store, results, created_at)
		VALUES (?, ?, ?, ?)
	`, normalizeQuery(query), store, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
