// Package pipeline implements the engine's extension points: named, ordered
// chains of entity-rewriting functions owned by the aggregator instance that
// runs them. There is no process-wide registry; the active extension set is
// whatever was registered on the instance at construction time.
package pipeline

import "github.com/avelier/productgraph/internal/schema"

// Point names one of the fixed mutation points in the aggregation flow.
type Point string

const (
	// DescriptionResolved fires on a variant entity after its description
	// fallback chain resolved but before markup is stripped.
	DescriptionResolved Point = "variant.description_resolved"
	// VariantAssembled fires on each fully-built variant entity.
	VariantAssembled Point = "variant.assembled"
	// ProductAssembled fires on the plain product entity, grouped or not.
	ProductAssembled Point = "product.assembled"
	// GroupAssembled fires on the finished group entity before it is
	// returned to the caller.
	GroupAssembled Point = "group.assembled"
)

// Extension rewrites one entity node and returns the continuation value.
// Returning nil keeps the previous value. The engine treats the output as
// data: type markers are re-asserted after every point, so an extension
// cannot redirect control flow by swapping entity kinds.
type Extension func(schema.Entity) schema.Entity

// Pipeline holds the ordered extension chains per point. Registration order
// is preserved and observable in list-valued output fields, so callers must
// register in a stable order.
type Pipeline struct {
	points map[Point][]Extension
}

func New() *Pipeline {
	return &Pipeline{points: make(map[Point][]Extension)}
}

// Register appends extensions to the chain at the given point.
func (p *Pipeline) Register(point Point, fns ...Extension) {
	p.points[point] = append(p.points[point], fns...)
}

// Apply left-folds the chain registered at point over the entity, feeding
// each extension's output into the next. Unregistered points are a no-op.
func (p *Pipeline) Apply(point Point, e schema.Entity) schema.Entity {
	if p == nil {
		return e
	}
	for _, fn := range p.points[point] {
		if next := fn(e); next != nil {
			e = next
		}
	}
	return e
}
