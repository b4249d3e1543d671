package source

import (
	"context"
	"fmt"
	"os"

	"github.com/avelier/productgraph/internal/catalog"
	"github.com/avelier/productgraph/internal/model"
	"gopkg.in/yaml.v3"
)

// fileSource serves products from a YAML catalog snapshot loaded once at
// construction time. It backs the CLI and tests; live installations plug in
// their own Source.
type fileSource struct {
	products []model.Product
	byID     map[string]*model.Product
}

type catalogFile struct {
	Products []model.Product `yaml:"products"`
}

// NewFileSource loads a YAML catalog file into memory.
func NewFileSource(path string) (catalog.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Source from raw YAML catalog data.
func Parse(data []byte) (catalog.Source, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	s := &fileSource{
		products: doc.Products,
		byID:     make(map[string]*model.Product, len(doc.Products)),
	}
	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	return s, nil
}

func (s *fileSource) Products(ctx context.Context) ([]model.Product, error) {
	return s.products, nil
}

func (s *fileSource) Product(ctx context.Context, id string) (*model.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("catalog: product %q not found", id)
	}
	return p, nil
}
