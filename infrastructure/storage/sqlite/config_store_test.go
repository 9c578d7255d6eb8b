package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"prixmalin-api/core/domain"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()

	store, err := NewConfigStore(filepath.Join(t.TempDir(), "config.db"))
	if err != nil {
		t.Fatalf("NewConfigStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestConfigStore_LoadReturnsDefaultsWhenEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PostalCode != "" {
		t.Errorf("Expected empty postal code, got %q", cfg.PostalCode)
	}
	if cfg.Stores == nil || len(cfg.Stores) != 0 {
		t.Errorf("Expected empty stores map, got %v", cfg.Stores)
	}
}

func TestConfigStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg := domain.NewAppConfig()
	cfg.PostalCode = "75011"
	cfg.Stores["carrefour"] = domain.StoreConfig{
		StoreID:   "store-42",
		StoreName: "Carrefour Paris Bastille",
	}

	if err := store.Save(ctx, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.PostalCode != "75011" {
		t.Errorf("PostalCode = %q, want 75011", got.PostalCode)
	}
	if got.Stores["carrefour"].StoreID != "store-42" {
		t.Errorf("StoreID = %q, want store-42", got.Stores["carrefour"].StoreID)
	}
	if got.Stores["carrefour"].StoreName != "Carrefour Paris Bastille" {
		t.Errorf("StoreName = %q", got.Stores["carrefour"].StoreName)
	}
}

func TestConfigStore_SaveReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.NewAppConfig()
	first.PostalCode = "13001"
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := domain.NewAppConfig()
	second.PostalCode = "69001"
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.PostalCode != "69001" {
		t.Errorf("PostalCode = %q, want 69001", got.PostalCode)
	}
}

func TestConfigStore_CorruptedEntryResetsToDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO app_config (key, value) VALUES (?, ?)",
		configKey, "{not json",
	)
	if err != nil {
		t.Fatalf("Failed to insert corrupted entry: %v", err)
	}

	cfg, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PostalCode != "" || len(cfg.Stores) != 0 {
		t.Errorf("Expected default config after corruption, got %+v", cfg)
	}
}
