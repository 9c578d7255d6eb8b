// ABOUTME: Mappers converting domain objects to response DTOs
// ABOUTME: Keeps the wire format decoupled from core domain types

package mappers

import (
	"prixmalin-api/api/dto/responses"
	"prixmalin-api/core/domain"
)

// ToSearchResponse converts a search result to its response DTO.
func ToSearchResponse(result *domain.SearchResult) responses.SearchResponse {
	products := make([]responses.ProductResponse, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, responses.ProductResponse{
			Name:         p.Name,
			Price:        p.Price,
			PricePerUnit: p.PricePerUnit,
			ImageURL:     p.ImageURL,
			ProductURL:   p.ProductURL,
			StoreName:    p.Source,
		})
	}

	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}

	return responses.SearchResponse{
		Query:   result.Query,
		Results: products,
		Errors:  errs,
	}
}

// AttachColors sets the accent color on every result whose image URL
// appears in colors.
func AttachColors(resp *responses.SearchResponse, colors map[string]*domain.RGBColor) {
	for i := range resp.Results {
		color, ok := colors[resp.Results[i].ImageURL]
		if !ok || color == nil {
			continue
		}
		resp.Results[i].AccentColor = &responses.RGBColorResponse{
			R: color.R,
			G: color.G,
			B: color.B,
		}
	}
}

// ToAppConfigResponse converts the app configuration to its response DTO.
func ToAppConfigResponse(cfg *domain.AppConfig) responses.AppConfigResponse {
	stores := make(map[string]responses.StoreConfigResponse, len(cfg.Stores))
	for key, store := range cfg.Stores {
		stores[key] = responses.StoreConfigResponse{
			StoreID:   store.StoreID,
			StoreName: store.StoreName,
		}
	}

	return responses.AppConfigResponse{
		PostalCode: cfg.PostalCode,
		Stores:     stores,
	}
}
