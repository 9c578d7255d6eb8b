// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, and search settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Search contains search engine configuration
	Search SearchConfig

	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimitPerSecond is the per-client request rate limit
	RateLimitPerSecond float64

	// RateLimitBurst is the per-client burst allowance
	RateLimitBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (sqlite/memory/redis)
	Type string

	// TTLSeconds is the lifetime of cached search results in seconds
	TTLSeconds int

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// FilePath is the path to the cache database file
	FilePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SearchConfig holds search engine configuration
type SearchConfig struct {
	// SourceTimeoutSeconds bounds each store query
	SourceTimeoutSeconds int

	// RelevanceCoverage is the minimum keyword coverage ratio for
	// multi-keyword queries
	RelevanceCoverage float64

	// ConfigDBPath is the path to the app settings database file
	ConfigDBPath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			RateLimitPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "sqlite"),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 21600),
			SQLite: SQLiteConfig{
				FilePath: getEnvOrDefault("CACHE_DB_PATH", "search_cache.db"),
			},
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Search: SearchConfig{
			SourceTimeoutSeconds: getEnvAsIntOrDefault("SOURCE_TIMEOUT_SECONDS", 45),
			RelevanceCoverage:    getEnvAsFloatOrDefault("RELEVANCE_COVERAGE", 0.5),
			ConfigDBPath:         getEnvOrDefault("CONFIG_DB_PATH", "app_config.db"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "sqlite" && c.Cache.Type != "memory" && c.Cache.Type != "redis" {
		return errors.New("cache type must be 'sqlite', 'memory' or 'redis'")
	}

	if c.Cache.TTLSeconds < 1 {
		return errors.New("cache TTL must be at least 1 second")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.FilePath == "" {
		return errors.New("cache db path cannot be empty when using sqlite cache")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Search.SourceTimeoutSeconds < 1 {
		return errors.New("source timeout must be at least 1 second")
	}

	if c.Search.RelevanceCoverage < 0 || c.Search.RelevanceCoverage > 1 {
		return errors.New("relevance coverage must be between 0 and 1")
	}

	return nil
}
