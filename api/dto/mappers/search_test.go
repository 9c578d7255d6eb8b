package mappers

import (
	"encoding/json"
	"strings"
	"testing"

	"prixmalin-api/core/domain"
)

func TestToSearchResponse(t *testing.T) {
	price := 2.49
	result := domain.NewSearchResult("huile")
	result.Products = append(result.Products, domain.Product{
		Name:       "Huile de tournesol",
		Price:      &price,
		ProductURL: "https://www.aldi.fr/p/huile",
		Source:     "Aldi",
	})
	result.Errors = append(result.Errors, "Carrefour: timeout")

	resp := ToSearchResponse(result)

	if resp.Query != "huile" {
		t.Errorf("Query = %q", resp.Query)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}
	if resp.Results[0].StoreName != "Aldi" {
		t.Errorf("StoreName = %q", resp.Results[0].StoreName)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Carrefour: timeout" {
		t.Errorf("Errors = %v", resp.Errors)
	}
}

func TestToSearchResponse_EmptySlicesSerializeAsArrays(t *testing.T) {
	resp := ToSearchResponse(domain.NewSearchResult("rien"))

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"results":[]`) {
		t.Errorf("Expected empty results array, got %s", body)
	}
	if !strings.Contains(body, `"errors":[]`) {
		t.Errorf("Expected empty errors array, got %s", body)
	}
}

func TestToSearchResponse_NullPriceSerialized(t *testing.T) {
	result := domain.NewSearchResult("lait")
	result.Products = append(result.Products, domain.Product{
		Name:   "Lait sans prix",
		Source: "Aldi",
	})

	data, err := json.Marshal(ToSearchResponse(result))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if !strings.Contains(string(data), `"price":null`) {
		t.Errorf("Expected explicit null price, got %s", string(data))
	}
}

func TestToAppConfigResponse(t *testing.T) {
	cfg := domain.NewAppConfig()
	cfg.PostalCode = "75011"
	cfg.Stores["intermarche"] = domain.StoreConfig{StoreID: "pdv-1", StoreName: "Intermarché Bastille"}

	resp := ToAppConfigResponse(cfg)

	if resp.PostalCode != "75011" {
		t.Errorf("PostalCode = %q", resp.PostalCode)
	}
	if resp.Stores["intermarche"].StoreName != "Intermarché Bastille" {
		t.Errorf("Stores = %v", resp.Stores)
	}
}
