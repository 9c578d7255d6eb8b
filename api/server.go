// ABOUTME: HTTP server wiring for the public API
// ABOUTME: Assembles routes, CORS, logging and rate limiting middleware

package api

import (
	"net/http"

	"github.com/rs/cors"

	"prixmalin-api/api/handlers"
	"prixmalin-api/api/middleware"
	"prixmalin-api/core/interfaces"
)

// Config holds configuration for the API server
type Config struct {
	Logger             interfaces.Logger
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewHandler builds the complete HTTP handler stack.
func NewHandler(cfg Config, search *handlers.SearchHandler, config *handlers.ConfigHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/search", search.Search)
	mux.HandleFunc("POST /api/config/location", config.SetLocation)
	mux.HandleFunc("POST /api/config/store", config.SetStore)
	mux.HandleFunc("GET /api/config/stores", config.GetStores)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	var handler http.Handler = mux

	if cfg.RateLimitPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	// CORS wraps everything so preflight requests never hit the limiter
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	return c.Handler(handler)
}
