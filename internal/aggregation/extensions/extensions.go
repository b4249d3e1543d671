// Package extensions carries the first-party extensions an installation can
// register into the aggregation pipeline. Nothing here registers itself;
// callers pick the set they want and register it in a stable order.
package extensions

import (
	"strings"

	"github.com/avelier/productgraph/internal/aggregation/pipeline"
	"github.com/avelier/productgraph/internal/schema"
)

// CustomBrand overrides the entity brand with a fixed installation-wide
// value, for installations that do not maintain a brand taxonomy.
func CustomBrand(name string) pipeline.Extension {
	return func(e schema.Entity) schema.Entity {
		if name == "" {
			return e
		}
		brand := &schema.Brand{Type: schema.TypeBrand, Name: name}
		switch v := e.(type) {
		case *schema.Product:
			v.Brand = brand
		case *schema.ProductGroup:
			v.Brand = brand
		}
		return e
	}
}

// AdditionalProperties attaches the optional enrichment fields: a
// manufacturer reference into the site graph and the entity URL when the
// core left it empty. knowledgeGraphType "company" points the manufacturer
// at the organization node, anything else at the person node.
func AdditionalProperties(baseURL, knowledgeGraphType string) pipeline.Extension {
	anchor := "person"
	if knowledgeGraphType == "company" {
		anchor = "organization"
	}
	ref := &schema.Reference{ID: strings.TrimRight(baseURL, "/") + "/#" + anchor}

	return func(e schema.Entity) schema.Entity {
		switch v := e.(type) {
		case *schema.Product:
			v.Manufacturer = ref
		case *schema.ProductGroup:
			v.Manufacturer = ref
		}
		return e
	}
}

// BrandURL fills in the brand's link when the platform resolved one from its
// taxonomy but the catalog entity only carried the name.
func BrandURL(url string) pipeline.Extension {
	return func(e schema.Entity) schema.Entity {
		if url == "" {
			return e
		}
		switch v := e.(type) {
		case *schema.Product:
			if v.Brand != nil && v.Brand.URL == "" {
				v.Brand.URL = url
			}
		case *schema.ProductGroup:
			if v.Brand != nil && v.Brand.URL == "" {
				v.Brand.URL = url
			}
		}
		return e
	}
}
