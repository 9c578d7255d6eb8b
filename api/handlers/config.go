// ABOUTME: HTTP handlers for the configuration endpoints
// ABOUTME: Manages the user's postal code and per-retailer store selection

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"prixmalin-api/api/dto/mappers"
	"prixmalin-api/api/dto/requests"
	"prixmalin-api/core/domain"
	coreerrors "prixmalin-api/core/errors"
)

// LocationService is the capability the config handlers need
type LocationService interface {
	GetAppConfig(ctx context.Context) (*domain.AppConfig, error)
	SetPostalCode(ctx context.Context, postalCode string) (*domain.AppConfig, error)
	SetStoreConfig(ctx context.Context, storeKey, storeID, storeName string) (*domain.AppConfig, error)
}

// ConfigHandler serves configuration requests
type ConfigHandler struct {
	service LocationService
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(service LocationService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

// SetLocation handles POST /api/config/location
func (h *ConfigHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req requests.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	cfg, err := h.service.SetPostalCode(r.Context(), req.PostalCode)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToAppConfigResponse(cfg))
}

// SetStore handles POST /api/config/store
func (h *ConfigHandler) SetStore(w http.ResponseWriter, r *http.Request) {
	var req requests.StoreConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	cfg, err := h.service.SetStoreConfig(r.Context(), req.StoreKey, req.StoreID, req.StoreName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToAppConfigResponse(cfg))
}

// GetStores handles GET /api/config/stores
func (h *ConfigHandler) GetStores(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetAppConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToAppConfigResponse(cfg))
}
