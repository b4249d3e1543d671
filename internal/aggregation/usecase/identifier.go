package usecase

import "github.com/avelier/productgraph/internal/schema"

// resolveIdentifier applies the installation's identifier configuration to
// one entity, given the catalog's candidate value.
//
// The configured field is write-once: an existing value is never overwritten.
// ISBN and a plain trade identifier are mutually exclusive outputs, so a
// non-empty isbn field blocks any gtin write, and its presence promotes the
// entity to the composite Product+Book type. A missing candidate is not an
// error; the field is simply left out.
func (uc *groupAggregator) resolveIdentifier(e *schema.Product, value string) {
	kind := uc.cfg.IdentifierKind

	if value != "" && e.Identifier(kind) == "" {
		switch {
		case kind == schema.ISBN:
			e.ISBN = value
		case e.ISBN == "":
			e.SetIdentifier(kind, value)
		}
	}

	if e.ISBN != "" {
		e.Type = schema.TypeProductBook
	}
}
