// Package schema defines the structured-data vocabulary the aggregation
// engine emits. Downstream renderers serialize these entities into their
// final representation and may rely on the field set staying stable.
package schema

import "encoding/json"

// Type is a schema.org @type marker. A single element marshals as a bare
// string, a composite type (e.g. Product+Book) marshals as an array.
type Type []string

func (t Type) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*t = Type{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = Type(many)
	return nil
}

// Is reports whether the marker contains the given type name.
func (t Type) Is(name string) bool {
	for _, v := range t {
		if v == name {
			return true
		}
	}
	return false
}

var (
	TypeProduct      = Type{"Product"}
	TypeProductBook  = Type{"Product", "Book"}
	TypeProductGroup = Type{"ProductGroup"}
	TypeOffer        = Type{"Offer"}
	TypeBrand        = Type{"Brand"}
)

// Availability and condition markers used in offers.
const (
	InStock      = "https://schema.org/InStock"
	OutOfStock   = "https://schema.org/OutOfStock"
	NewCondition = "NewCondition"
)

// Entity is one node of the output graph. The set of implementations is
// fixed: a Product (plain product or variant entity) or a ProductGroup.
type Entity interface {
	entity()
}

func (*Product) entity()      {}
func (*ProductGroup) entity() {}

// Product is a plain product entity or one variant entity inside a group.
type Product struct {
	Type        Type   `json:"@type"`
	SKU         string `json:"sku,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`

	// Varying attribute fields, set flat on the entity.
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Material string `json:"material,omitempty"`
	Pattern  string `json:"pattern,omitempty"`

	// Trade identifiers. At most one of the gtin fields is populated per
	// entity, and never alongside isbn.
	GTIN8  string `json:"gtin8,omitempty"`
	GTIN12 string `json:"gtin12,omitempty"`
	GTIN13 string `json:"gtin13,omitempty"`
	GTIN14 string `json:"gtin14,omitempty"`
	ISBN   string `json:"isbn,omitempty"`

	Brand        *Brand     `json:"brand,omitempty"`
	Manufacturer *Reference `json:"manufacturer,omitempty"`
	Offers       *Offer     `json:"offers,omitempty"`
}

// ProductGroup represents a product family. It carries the variant entities
// and, by construction, can never carry a direct offer.
type ProductGroup struct {
	Type        Type   `json:"@type"`
	SKU         string `json:"sku,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`

	GTIN8  string `json:"gtin8,omitempty"`
	GTIN12 string `json:"gtin12,omitempty"`
	GTIN13 string `json:"gtin13,omitempty"`
	GTIN14 string `json:"gtin14,omitempty"`
	ISBN   string `json:"isbn,omitempty"`

	Brand        *Brand     `json:"brand,omitempty"`
	Manufacturer *Reference `json:"manufacturer,omitempty"`

	ProductGroupID string     `json:"productGroupID,omitempty"`
	VariesBy       []string   `json:"variesBy,omitempty"`
	HasVariant     []*Product `json:"hasVariant,omitempty"`
}

// Offer is the commerce sub-entity of one purchasable unit. Price is always
// emitted, even when the catalog supplied a zero value.
type Offer struct {
	Type            Type    `json:"@type"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	PriceCurrency   string  `json:"priceCurrency,omitempty"`
	Availability    string  `json:"availability,omitempty"`
	ItemCondition   string  `json:"itemCondition,omitempty"`
	PriceValidUntil string  `json:"priceValidUntil,omitempty"`
	URL             string  `json:"url,omitempty"`
}

// Brand is the brand sub-entity.
type Brand struct {
	Type Type   `json:"@type"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Reference points at another node in the page graph by @id.
type Reference struct {
	ID string `json:"@id"`
}

// SetAttribute sets one of the whitelisted varying-attribute fields by its
// canonical key. It reports whether the key was recognized.
func (p *Product) SetAttribute(key, value string) bool {
	switch key {
	case "color":
		p.Color = value
	case "size":
		p.Size = value
	case "age":
		p.Age = value
	case "gender":
		p.Gender = value
	case "material":
		p.Material = value
	case "pattern":
		p.Pattern = value
	default:
		return false
	}
	return true
}

// Attribute returns the value of a varying-attribute field by canonical key.
func (p *Product) Attribute(key string) string {
	switch key {
	case "color":
		return p.Color
	case "size":
		return p.Size
	case "age":
		return p.Age
	case "gender":
		return p.Gender
	case "material":
		return p.Material
	case "pattern":
		return p.Pattern
	}
	return ""
}
