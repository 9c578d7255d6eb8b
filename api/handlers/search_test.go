package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prixmalin-api/api/dto/responses"
	"prixmalin-api/core/domain"
)

type mockSearchService struct {
	lastQuery  string
	lastStores []string
	result     *domain.SearchResult
}

func (m *mockSearchService) SearchAll(ctx context.Context, query string, stores []string) *domain.SearchResult {
	m.lastQuery = query
	m.lastStores = stores
	if m.result != nil {
		return m.result
	}
	return domain.NewSearchResult(query)
}

func TestSearchHandler_EmptyQueryReturns400(t *testing.T) {
	handler := NewSearchHandler(&mockSearchService{})

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}

	var body responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body.Error == "" {
		t.Error("Expected error message in body")
	}
}

func TestSearchHandler_WhitespaceQueryReturns400(t *testing.T) {
	handler := NewSearchHandler(&mockSearchService{})

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=%20%20", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", rec.Code)
	}
}

func TestSearchHandler_ReturnsMappedResult(t *testing.T) {
	price := 1.20
	result := domain.NewSearchResult("lait")
	result.Products = append(result.Products, domain.Product{
		Name:       "Lait entier 1L",
		Price:      &price,
		ProductURL: "https://www.carrefour.fr/p/lait",
		Source:     "Carrefour",
	})
	result.Errors = append(result.Errors, "Aldi: timeout")

	service := &mockSearchService{result: result}
	handler := NewSearchHandler(service)

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=lait&stores=carrefour,aldi", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	if service.lastQuery != "lait" {
		t.Errorf("Query passed = %q", service.lastQuery)
	}
	if len(service.lastStores) != 2 || service.lastStores[0] != "carrefour" || service.lastStores[1] != "aldi" {
		t.Errorf("Stores passed = %v", service.lastStores)
	}

	var body responses.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Query != "lait" {
		t.Errorf("Query = %q", body.Query)
	}
	if len(body.Results) != 1 || body.Results[0].StoreName != "Carrefour" {
		t.Errorf("Results = %v", body.Results)
	}
	if len(body.Errors) != 1 || body.Errors[0] != "Aldi: timeout" {
		t.Errorf("Errors = %v", body.Errors)
	}
}

type mockColorService struct {
	calls int
}

func (m *mockColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	return &domain.RGBColor{R: 1, G: 2, B: 3}, nil
}

func (m *mockColorService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	m.calls++
	colors := make(map[string]*domain.RGBColor, len(imageURLs))
	for _, u := range imageURLs {
		colors[u] = &domain.RGBColor{R: 200, G: 30, B: 30}
	}
	return colors
}

func TestSearchHandler_ColorEnrichmentOptIn(t *testing.T) {
	price := 2.49
	result := domain.NewSearchResult("huile")
	result.Products = append(result.Products, domain.Product{
		Name:     "Huile de tournesol",
		Price:    &price,
		ImageURL: "https://static.aldi.fr/huile.jpg",
		Source:   "Aldi",
	})

	colors := &mockColorService{}
	handler := NewSearchHandler(&mockSearchService{result: result}).WithColorService(colors)

	// Without the flag no colors are computed
	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=huile", nil))
	if colors.calls != 0 {
		t.Errorf("Expected no color extraction without flag, got %d calls", colors.calls)
	}

	rec = httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=huile&colors=true", nil))
	if colors.calls != 1 {
		t.Fatalf("Expected 1 batch extraction, got %d", colors.calls)
	}

	var body responses.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Results[0].AccentColor == nil {
		t.Fatal("Expected accent color on result")
	}
	if body.Results[0].AccentColor.R != 200 {
		t.Errorf("AccentColor.R = %d, want 200", body.Results[0].AccentColor.R)
	}
}

func TestSearchHandler_NoStoresParamPassesNil(t *testing.T) {
	service := &mockSearchService{}
	handler := NewSearchHandler(service)

	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=pain", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	if service.lastStores != nil {
		t.Errorf("Stores passed = %v, want nil", service.lastStores)
	}
}
