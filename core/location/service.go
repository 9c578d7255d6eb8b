// ABOUTME: Location service managing postal code and per-store configuration
// ABOUTME: Propagates location changes to every registered product source

package location

import (
	"context"
	"fmt"
	"sync"

	"prixmalin-api/core/domain"
	"prixmalin-api/core/interfaces"
	"prixmalin-api/core/search"
)

// Service manages the persisted application configuration and keeps
// the product sources in sync with the user's location.
type Service struct {
	storage  interfaces.ConfigStorage
	registry *search.Registry
	logger   interfaces.Logger
}

// NewService creates a new location service.
func NewService(storage interfaces.ConfigStorage, registry *search.Registry, logger interfaces.Logger) *Service {
	return &Service{
		storage:  storage,
		registry: registry,
		logger:   logger,
	}
}

// GetAppConfig loads the current application configuration.
func (s *Service) GetAppConfig(ctx context.Context) (*domain.AppConfig, error) {
	return s.storage.Load(ctx)
}

// SetPostalCode persists the postal code and asks every source to
// reconfigure itself for the new location. Sources that fail to apply
// the location are logged and skipped, the postal code is saved
// regardless.
func (s *Service) SetPostalCode(ctx context.Context, postalCode string) (*domain.AppConfig, error) {
	cfg, err := s.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.PostalCode = postalCode

	var wg sync.WaitGroup
	for _, key := range s.registry.Keys() {
		source, ok := s.registry.Get(key)
		if !ok {
			continue
		}

		wg.Add(1)
		go func(src interfaces.Source) {
			defer wg.Done()

			applied, err := src.ConfigureLocation(ctx, postalCode)
			if err != nil {
				s.logWarn("Failed to configure source location", map[string]interface{}{
					"source": src.Key(),
					"error":  err.Error(),
				})
				return
			}
			if applied {
				s.logInfo("Source location configured", map[string]interface{}{
					"source":      src.Key(),
					"postal_code": postalCode,
				})
			}
		}(source)
	}
	wg.Wait()

	if err := s.storage.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return cfg, nil
}

// SetStoreConfig records the selected store for a retailer.
func (s *Service) SetStoreConfig(ctx context.Context, storeKey, storeID, storeName string) (*domain.AppConfig, error) {
	cfg, err := s.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Stores[storeKey] = domain.StoreConfig{
		StoreID:   storeID,
		StoreName: storeName,
	}

	if err := s.storage.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return cfg, nil
}

// GetConfiguredStores returns the per-retailer store selections.
func (s *Service) GetConfiguredStores(ctx context.Context) (map[string]domain.StoreConfig, error) {
	cfg, err := s.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.Stores, nil
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}
