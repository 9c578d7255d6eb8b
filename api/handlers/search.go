// ABOUTME: HTTP handler for the product search endpoint
// ABOUTME: Validates query parameters and delegates to the search service

package handlers

import (
	"context"
	"net/http"
	"strings"

	"prixmalin-api/api/dto/mappers"
	"prixmalin-api/api/dto/requests"
	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
	"prixmalin-api/core/interfaces"
)

// SearchService is the capability the search handler needs
type SearchService interface {
	SearchAll(ctx context.Context, query string, stores []string) *domain.SearchResult
}

// SearchHandler serves product search requests
type SearchHandler struct {
	service SearchService
	colors  interfaces.ImageColorService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// WithColorService enables accent color enrichment.
func (h *SearchHandler) WithColorService(colors interfaces.ImageColorService) *SearchHandler {
	h.colors = colors
	return h
}

// Search handles GET /api/search?q=...&stores=...
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, &coreerrors.ValidationError{Field: "q", Message: "is required"})
		return
	}

	stores := requests.ParseStores(r.URL.Query().Get("stores"))

	result := h.service.SearchAll(r.Context(), query, stores)
	resp := mappers.ToSearchResponse(result)

	if h.colors != nil && r.URL.Query().Get("colors") == "true" {
		var imageURLs []string
		for _, p := range result.Products {
			if p.ImageURL != "" {
				imageURLs = append(imageURLs, p.ImageURL)
			}
		}
		if len(imageURLs) > 0 {
			mappers.AttachColors(&resp, h.colors.ExtractColorBatch(r.Context(), imageURLs))
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
