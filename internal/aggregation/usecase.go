package aggregation

import (
	"context"

	"github.com/avelier/productgraph/internal/model"
	"github.com/avelier/productgraph/internal/schema"
)

// UseCase drives one aggregation request: a product and its ordered variant
// list in, one finished entity out. Variable products with at least one
// variant come back as a ProductGroup; everything else passes through as the
// plain product entity. Missing catalog data degrades to omitted fields
// rather than errors; a fault raised by a registered extension propagates to
// the caller unhandled.
type UseCase interface {
	Aggregate(ctx context.Context, product *model.Product, variants []model.Variant) schema.Entity
}
