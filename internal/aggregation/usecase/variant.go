package usecase

import (
	"github.com/avelier/productgraph/internal/aggregation/pipeline"
	"github.com/avelier/productgraph/internal/model"
	"github.com/avelier/productgraph/internal/schema"
	"github.com/avelier/productgraph/internal/shortcode"
)

// buildVariant composes the full entity for one variant: identity fields,
// resolved description, varying attributes, offer and identifiers.
func (uc *groupAggregator) buildVariant(v *model.Variant, p *model.Product) *schema.Product {
	variant := &schema.Product{
		Type:        schema.TypeProduct,
		SKU:         v.SKU,
		Name:        v.Name,
		Description: resolveDescription(v, p),
		Image:       strVal(v.ImageURL),
	}

	// Extensions may rewrite the raw resolved description (e.g. expand
	// embedded markers) before it is stripped for final output.
	variant = asProduct(uc.pipeline.Apply(pipeline.DescriptionResolved, variant), variant)
	variant.Description = uc.renderDescription(variant.Description)

	for key, value := range v.Attributes {
		if kind, ok := attributeKind(key, value); ok {
			variant.SetAttribute(kind, value)
		}
	}

	variant.Offers = uc.buildOffer(v.Price, v.StockStatus, v.SaleEndsAt, v.Permalink, variant.Description)
	uc.resolveIdentifier(variant, v.Identifier)

	variant = asProduct(uc.pipeline.Apply(pipeline.VariantAssembled, variant), variant)
	assertProductType(variant)
	return variant
}

// resolveDescription walks the fallback chain: the variant's own description,
// then the product's short description, then its full description.
func resolveDescription(v *model.Variant, p *model.Product) string {
	if d := strVal(v.Description); d != "" {
		return d
	}
	if p.ShortDescription != "" {
		return p.ShortDescription
	}
	return p.Description
}

// renderDescription applies the installation's shortcode policy and strips
// the remaining markup.
func (uc *groupAggregator) renderDescription(s string) string {
	if uc.cfg.ExpandShortcodes && uc.cfg.Shortcodes != nil {
		s = uc.cfg.Shortcodes.Expand(s)
	} else {
		s = shortcode.Strip(s)
	}
	return schema.StripTags(s)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
