package extensions

import (
	"testing"

	"github.com/avelier/productgraph/internal/schema"
)

func TestCustomBrand(t *testing.T) {
	ext := CustomBrand("Acme")

	p := &schema.Product{Type: schema.TypeProduct, Brand: &schema.Brand{Type: schema.TypeBrand, Name: "Old"}}
	ext(p)
	if p.Brand == nil || p.Brand.Name != "Acme" {
		t.Errorf("product brand = %+v, want Acme", p.Brand)
	}

	g := &schema.ProductGroup{Type: schema.TypeProductGroup}
	ext(g)
	if g.Brand == nil || g.Brand.Name != "Acme" {
		t.Errorf("group brand = %+v, want Acme", g.Brand)
	}
}

func TestCustomBrandEmptyNameIsNoop(t *testing.T) {
	ext := CustomBrand("")
	p := &schema.Product{Type: schema.TypeProduct}
	ext(p)
	if p.Brand != nil {
		t.Errorf("brand = %+v, want untouched", p.Brand)
	}
}

func TestAdditionalProperties(t *testing.T) {
	tests := []struct {
		name    string
		kgType  string
		baseURL string
		want    string
	}{
		{"company anchors organization", "company", "https://shop.example/", "https://shop.example/#organization"},
		{"person otherwise", "person", "https://shop.example", "https://shop.example/#person"},
		{"unknown defaults to person", "", "https://shop.example", "https://shop.example/#person"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := AdditionalProperties(tt.baseURL, tt.kgType)
			p := &schema.Product{Type: schema.TypeProduct}
			ext(p)
			if p.Manufacturer == nil || p.Manufacturer.ID != tt.want {
				t.Errorf("manufacturer = %+v, want @id %q", p.Manufacturer, tt.want)
			}
		})
	}
}

func TestBrandURL(t *testing.T) {
	ext := BrandURL("https://shop.example/brand/acme")

	p := &schema.Product{Type: schema.TypeProduct, Brand: &schema.Brand{Type: schema.TypeBrand, Name: "Acme"}}
	ext(p)
	if p.Brand.URL != "https://shop.example/brand/acme" {
		t.Errorf("brand url = %q", p.Brand.URL)
	}

	// Never overwrite a link the catalog already resolved.
	p.Brand.URL = "https://other.example"
	ext(p)
	if p.Brand.URL != "https://other.example" {
		t.Errorf("brand url overwritten: %q", p.Brand.URL)
	}

	// No brand, nothing to do.
	bare := &schema.Product{Type: schema.TypeProduct}
	ext(bare)
	if bare.Brand != nil {
		t.Errorf("brand invented: %+v", bare.Brand)
	}
}
