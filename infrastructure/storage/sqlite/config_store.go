// ABOUTME: SQLite-backed persistence for application settings
// ABOUTME: Stores the app configuration as JSON under a key/value table

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"prixmalin-api/core/domain"
)

const configKey = "app_config"

// ConfigStore persists the application configuration in SQLite
type ConfigStore struct {
	db       *sql.DB
	filePath string
}

// NewConfigStore creates a SQLite-backed config store at filePath.
func NewConfigStore(filePath string) (*ConfigStore, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS app_config (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create config schema: %w", err)
	}

	return &ConfigStore{db: db, filePath: filePath}, nil
}

// Load returns the stored configuration. A missing or unreadable entry
// yields a fresh default configuration rather than an error.
func (s *ConfigStore) Load(ctx context.Context) (*domain.AppConfig, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM app_config WHERE key = ?", configKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewAppConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := domain.NewAppConfig()
	if err := json.Unmarshal([]byte(raw), cfg); err != nil {
		// Corrupted entry, start over with defaults
		return domain.NewAppConfig(), nil
	}
	if cfg.Stores == nil {
		cfg.Stores = make(map[string]domain.StoreConfig)
	}

	return cfg, nil
}

// Save persists the configuration, replacing any previous entry.
func (s *ConfigStore) Save(ctx context.Context, cfg *domain.AppConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO app_config (key, value) VALUES (?, ?)",
		configKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *ConfigStore) Close() error {
	return s.db.Close()
}
