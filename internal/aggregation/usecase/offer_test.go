package usecase

import (
	"testing"
	"time"

	"github.com/avelier/productgraph/internal/model"
	"github.com/avelier/productgraph/internal/schema"
)

func TestBuildOffer(t *testing.T) {
	uc := newTestAggregator(Config{Currency: "EUR"}, nil)
	end := time.Date(2026, time.August, 9, 18, 30, 0, 0, time.UTC)

	offer := uc.buildOffer(19.5, model.InStock, &end, "https://shop.example/v/1", "Nice one")

	if !offer.Type.Is("Offer") {
		t.Errorf("type = %v, want Offer", offer.Type)
	}
	if offer.Price != 19.5 {
		t.Errorf("price = %v, want 19.5", offer.Price)
	}
	if offer.PriceCurrency != "EUR" {
		t.Errorf("currency = %q, want EUR", offer.PriceCurrency)
	}
	if offer.Availability != schema.InStock {
		t.Errorf("availability = %q, want InStock marker", offer.Availability)
	}
	if offer.ItemCondition != schema.NewCondition {
		t.Errorf("itemCondition = %q, want NewCondition", offer.ItemCondition)
	}
	if offer.PriceValidUntil != "2026-08-09" {
		t.Errorf("priceValidUntil = %q, want 2026-08-09", offer.PriceValidUntil)
	}
	if offer.URL != "https://shop.example/v/1" {
		t.Errorf("url = %q", offer.URL)
	}
	if offer.Description != "Nice one" {
		t.Errorf("description = %q", offer.Description)
	}
}

func TestBuildOfferDefaults(t *testing.T) {
	uc := newTestAggregator(Config{}, nil) // clock pinned to 2026-03-14

	offer := uc.buildOffer(0, model.OutOfStock, nil, "", "")

	if offer.Price != 0 {
		t.Errorf("missing price should pass through as zero, got %v", offer.Price)
	}
	if offer.Availability != schema.OutOfStock {
		t.Errorf("availability = %q, want OutOfStock marker", offer.Availability)
	}
	if offer.PriceValidUntil != "2027-12-31" {
		t.Errorf("priceValidUntil = %q, want December 31 of next year", offer.PriceValidUntil)
	}
}

func TestPriceValidUntilZeroSaleEnd(t *testing.T) {
	uc := newTestAggregator(Config{}, nil)
	var zero time.Time

	if got := uc.priceValidUntil(&zero); got != "2027-12-31" {
		t.Errorf("zero sale end should fall back to the default, got %q", got)
	}
}

func TestAvailabilityMapping(t *testing.T) {
	tests := []struct {
		stock model.StockStatus
		want  string
	}{
		{model.OutOfStock, schema.OutOfStock},
		{model.InStock, schema.InStock},
		{"onbackorder", schema.InStock}, // anything but out-of-stock maps to in stock
		{"", schema.InStock},
	}
	for _, tt := range tests {
		if got := availability(tt.stock); got != tt.want {
			t.Errorf("availability(%q) = %q, want %q", tt.stock, got, tt.want)
		}
	}
}
