// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"prixmalin-api/core/domain"
)

// ConfigStorage persists the user's application configuration
// (postal code, per-retailer store selection).
type ConfigStorage interface {
	// Load retrieves the stored configuration. Returns an empty
	// configuration when none has been saved yet.
	Load(ctx context.Context) (*domain.AppConfig, error)

	// Save persists the configuration, replacing any previous one.
	Save(ctx context.Context, cfg *domain.AppConfig) error
}
