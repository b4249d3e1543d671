package catalog

import (
	"context"

	"github.com/avelier/productgraph/internal/model"
)

// Source supplies catalog products to the aggregation engine. Implementations
// are owned by the surrounding platform; the engine only ever reads.
type Source interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
}
