// Package core contains the business logic for the PrixMalin API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Product, SearchResult, AppConfig)
// - search: The aggregation coordinator, relevance filter, and price sort
// - location: Postal code and store selection service
// - services: Optional product enrichment (image accent colors)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, sources, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "prixmalin-api/core/interfaces"
//	    "prixmalin-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.ResultCache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create the coordinator over a source registry
//	svc := search.NewService(deps, registry, search.DefaultOptions())
//
//	// Fan a query out to every registered retailer
//	result := svc.SearchAll(ctx, "huile tournesol", nil)
package core
