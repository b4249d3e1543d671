package usecase

import (
	"context"
	"time"

	"github.com/avelier/productgraph/internal/aggregation"
	"github.com/avelier/productgraph/internal/aggregation/pipeline"
	"github.com/avelier/productgraph/internal/model"
	"github.com/avelier/productgraph/internal/schema"
	"github.com/avelier/productgraph/internal/shortcode"
	"go.uber.org/zap"
)

// Config carries the installation settings the engine reads. All of them are
// sourced externally and never change during a call.
type Config struct {
	IdentifierKind   schema.IdentifierKind
	Currency         string
	ExpandShortcodes bool
	Shortcodes       *shortcode.Registry
}

type groupAggregator struct {
	cfg      Config
	pipeline *pipeline.Pipeline
	logger   *zap.Logger

	// now is the clock behind the priceValidUntil default. Injected so
	// tests can pin the calendar-year rollover.
	now func() time.Time
}

// NewGroupAggregator wires the engine with its extension pipeline. A nil
// pipeline means no extensions; a nil logger silences the engine.
func NewGroupAggregator(cfg Config, pipe *pipeline.Pipeline, log *zap.Logger) aggregation.UseCase {
	if cfg.IdentifierKind == "" {
		cfg.IdentifierKind = schema.DefaultIdentifierKind
	}
	if pipe == nil {
		pipe = pipeline.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &groupAggregator{
		cfg:      cfg,
		pipeline: pipe,
		logger:   log,
		now:      time.Now,
	}
}

// Aggregate builds the entity graph for one product family. Each call works
// on its own snapshot and constructs every entity from scratch; nothing is
// cached across calls.
func (uc *groupAggregator) Aggregate(ctx context.Context, p *model.Product, variants []model.Variant) schema.Entity {
	entity := uc.buildProductEntity(p)
	entity = asProduct(uc.pipeline.Apply(pipeline.ProductAssembled, entity), entity)
	assertProductType(entity)

	if p.Kind != model.KindVariable || len(variants) == 0 {
		uc.logger.Debug("product not eligible for grouping",
			zap.String("product_id", p.ID),
			zap.String("kind", string(p.Kind)),
			zap.Int("variants", len(variants)))
		return entity
	}

	group := newGroup(p, entity)
	for i := range variants {
		group.HasVariant = append(group.HasVariant, uc.buildVariant(&variants[i], p))
	}
	group.VariesBy = variesBy(variants)

	uc.logger.Debug("assembled product group",
		zap.String("product_id", p.ID),
		zap.String("group_id", group.ProductGroupID),
		zap.Int("variants", len(group.HasVariant)),
		zap.Int("varies_by", len(group.VariesBy)))

	out := uc.pipeline.Apply(pipeline.GroupAssembled, group)
	if g, ok := out.(*schema.ProductGroup); ok && g != nil {
		group = g
	}
	// The extension output is data, not a control-flow instruction.
	group.Type = schema.TypeProductGroup
	return group
}

// buildProductEntity assembles the plain, non-grouped entity for a product.
// For non-variable products this is the final result; for variable ones it is
// the scaffold the group entity is lifted from.
func (uc *groupAggregator) buildProductEntity(p *model.Product) *schema.Product {
	desc := p.ShortDescription
	if desc == "" {
		desc = p.Description
	}

	entity := &schema.Product{
		Type:        schema.TypeProduct,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: uc.renderDescription(desc),
		Image:       strVal(p.ImageURL),
		URL:         p.Permalink,
	}
	if p.Brand != nil {
		entity.Brand = &schema.Brand{Type: schema.TypeBrand, Name: p.Brand.Name, URL: p.Brand.URL}
	}

	// Identifier fields the catalog already carries land first so the
	// resolver's first-write-wins rule sees them. Only the configured kind
	// and isbn are admitted; anything else would break the one-identifier-
	// per-entity rule.
	for key, value := range p.Identifiers {
		kind := schema.IdentifierKind(key)
		if value != "" && (kind == uc.cfg.IdentifierKind || kind == schema.ISBN) {
			entity.SetIdentifier(kind, value)
		}
	}

	for key, value := range p.Attributes {
		if kind, ok := attributeKind(key, value); ok {
			entity.SetAttribute(kind, value)
		}
	}

	entity.Offers = uc.buildOffer(p.Price, p.StockStatus, p.SaleEndsAt, p.Permalink, entity.Description)
	uc.resolveIdentifier(entity, p.Identifier)
	return entity
}

// newGroup lifts the shared fields of the plain entity into a group entity.
// The direct offer is deliberately left behind: a group never carries one.
func newGroup(p *model.Product, entity *schema.Product) *schema.ProductGroup {
	return &schema.ProductGroup{
		Type:           schema.TypeProductGroup,
		SKU:            entity.SKU,
		Name:           entity.Name,
		Description:    entity.Description,
		Image:          entity.Image,
		URL:            p.Permalink,
		GTIN8:          entity.GTIN8,
		GTIN12:         entity.GTIN12,
		GTIN13:         entity.GTIN13,
		GTIN14:         entity.GTIN14,
		ISBN:           entity.ISBN,
		Brand:          entity.Brand,
		Manufacturer:   entity.Manufacturer,
		ProductGroupID: groupID(p),
	}
}

// groupID prefers the SKU and falls back to the catalog identifier.
func groupID(p *model.Product) string {
	if p.SKU != "" {
		return p.SKU
	}
	return p.ID
}

// asProduct narrows an extension result back to a product entity, keeping
// the previous value when an extension handed back something else.
func asProduct(e schema.Entity, prev *schema.Product) *schema.Product {
	if p, ok := e.(*schema.Product); ok && p != nil {
		return p
	}
	return prev
}

// assertProductType recomputes the type marker from the entity's own data,
// so extensions can contribute identifiers but not invent kinds.
func assertProductType(p *schema.Product) {
	if p.ISBN != "" {
		p.Type = schema.TypeProductBook
		return
	}
	p.Type = schema.TypeProduct
}
