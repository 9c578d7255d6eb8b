// ABOUTME: Main entry point for the price comparison API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prixmalin-api/api"
	"prixmalin-api/api/handlers"
	coreconfig "prixmalin-api/core/config"
	"prixmalin-api/core/interfaces"
	"prixmalin-api/core/location"
	"prixmalin-api/core/search"
	"prixmalin-api/core/services"
	"prixmalin-api/infrastructure/cache/memory"
	"prixmalin-api/infrastructure/cache/redis"
	sqlitecache "prixmalin-api/infrastructure/cache/sqlite"
	stdhttp "prixmalin-api/infrastructure/http/standard"
	logruslogger "prixmalin-api/infrastructure/logger/logrus"
	sqlitestorage "prixmalin-api/infrastructure/storage/sqlite"
	"prixmalin-api/pkg/config"
	"prixmalin-api/sources/aldi"
	"prixmalin-api/sources/browser"
	"prixmalin-api/sources/carrefour"
	"prixmalin-api/sources/intermarche"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(os.Stdout, cfg.LogLevel)
	logger.Info("Starting PrixMalin API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Cache.TTLSeconds,
	})

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	var cache interfaces.ResultCache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis, ttl)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(ttl)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	case "memory":
		cache = memory.NewMemoryCache(ttl)
		logger.Info("Using memory cache", nil)
	default:
		sqliteCache, err := sqlitecache.NewSQLiteCache(cfg.Cache.SQLite.FilePath, ttl)
		if err != nil {
			log.Fatalf("Failed to create SQLite cache: %v", err)
		}
		cache = sqliteCache
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.FilePath,
		})
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Product sources, in display order
	registry := search.NewRegistry(
		aldi.NewSource(browser.NewFetcher()),
		carrefour.NewSource(),
		intermarche.NewSource(httpClient),
	)

	searchOpts := coreconfig.NewSearchOptions(
		coreconfig.WithSourceTimeout(time.Duration(cfg.Search.SourceTimeoutSeconds)*time.Second),
		coreconfig.WithRelevanceCoverage(cfg.Search.RelevanceCoverage),
	)
	searchService := search.NewService(deps, registry, searchOpts)

	configStore, err := sqlitestorage.NewConfigStore(cfg.Search.ConfigDBPath)
	if err != nil {
		log.Fatalf("Failed to open config storage: %v", err)
	}
	locationService := location.NewService(configStore, registry, logger)

	handler := api.NewHandler(
		api.Config{
			Logger:             logger,
			RateLimitPerSecond: cfg.Server.RateLimitPerSecond,
			RateLimitBurst:     cfg.Server.RateLimitBurst,
		},
		handlers.NewSearchHandler(searchService).WithColorService(services.NewImageColorService(logger)),
		handlers.NewConfigHandler(locationService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
		// Searches fan out to slow retailers, allow the full source
		// timeout plus margin before cutting a response off
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Search.SourceTimeoutSeconds+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := cache.Close(); err != nil {
		logger.Error("Failed to close cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := configStore.Close(); err != nil {
		logger.Error("Failed to close config storage", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
