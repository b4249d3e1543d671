package model

import "time"

// Kind is a product's declared catalog kind.
type Kind string

const (
	KindSimple    Kind = "simple"
	KindVariable  Kind = "variable"
	KindComposite Kind = "composite"
)

// StockStatus is the catalog's two-valued stock flag.
type StockStatus string

const (
	InStock    StockStatus = "instock"
	OutOfStock StockStatus = "outofstock"
)

// Product is one catalog product as supplied by the surrounding platform.
// The aggregation engine treats it as read-only.
type Product struct {
	ID               string  `yaml:"id" json:"id"`
	SKU              string  `yaml:"sku" json:"sku"`
	Kind             Kind    `yaml:"kind" json:"kind"`
	Name             string  `yaml:"name" json:"name"`
	Permalink        string  `yaml:"permalink" json:"permalink"`
	Description      string  `yaml:"description" json:"description"`
	ShortDescription string  `yaml:"short_description" json:"short_description"`
	ImageURL         *string `yaml:"image_url" json:"image_url"` // Nullable
	Price            float64 `yaml:"price" json:"price"`

	StockStatus StockStatus `yaml:"stock_status" json:"stock_status"`
	SaleEndsAt  *time.Time  `yaml:"sale_ends_at" json:"sale_ends_at"`

	// Identifier is the candidate trade-identifier value stored against the
	// product itself. It is kind-agnostic; the installation's configured
	// identifier kind decides which output field it lands in.
	Identifier string `yaml:"identifier" json:"identifier"`

	// Identifiers are identifier fields already present on the product,
	// keyed by kind name (e.g. "isbn").
	Identifiers map[string]string `yaml:"identifiers" json:"identifiers"`

	// Attributes holds values shared by the whole product family, i.e. not
	// overridden per variant.
	Attributes map[string]string `yaml:"attributes" json:"attributes"`

	Brand *Brand `yaml:"brand" json:"brand"` // Nullable

	Variants []Variant `yaml:"variants" json:"variants"`
}

// Variant is one purchasable variation of a variable product.
type Variant struct {
	ID          string  `yaml:"id" json:"id"`
	SKU         string  `yaml:"sku" json:"sku"`
	Name        string  `yaml:"name" json:"name"`
	Description *string `yaml:"description" json:"description"` // Nullable, falls back to the product's
	ImageURL    *string `yaml:"image_url" json:"image_url"`     // Nullable
	Permalink   string  `yaml:"permalink" json:"permalink"`
	Price       float64 `yaml:"price" json:"price"`

	StockStatus StockStatus `yaml:"stock_status" json:"stock_status"`
	SaleEndsAt  *time.Time  `yaml:"sale_ends_at" json:"sale_ends_at"`

	Identifier string `yaml:"identifier" json:"identifier"`

	// Attributes contains only the attributes explicitly set on this
	// variant, possibly still carrying a taxonomy prefix from the platform.
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
}

// Brand is the product brand resolved by the platform, either from a brand
// taxonomy or from a fixed installation-wide value.
type Brand struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}
