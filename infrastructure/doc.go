// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/sqlite: SQLite-backed result cache, the default backend
// - cache/memory: In-memory result cache for tests and single-shot runs
// - cache/redis: Redis-based result cache using RedisJSON
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger built on logrus
// - storage/sqlite: SQLite persistence for application settings
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// All cache backends implement the same ResultCache contract keyed on
// the normalized query and source key:
//
//	cache, err := sqlite.NewSQLiteCache("search_cache.db", 6*time.Hour)
//	err = cache.Set(ctx, "huile de tournesol", "aldi", products)
//	products, err = cache.Get(ctx, "huile de tournesol", "aldi")
//
// A miss is reported as errors.ErrCacheMiss and is a normal condition.
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(os.Stdout, "info")
//	logger.Info("Search started", map[string]interface{}{
//	    "query":  "lait",
//	    "stores": 3,
//	})
package infrastructure
