package schema

// IdentifierKind is one member of the fixed enumeration of trade-identifier
// formats an installation can be configured with.
type IdentifierKind string

const (
	GTIN8  IdentifierKind = "gtin8"
	GTIN12 IdentifierKind = "gtin12"
	GTIN13 IdentifierKind = "gtin13"
	GTIN14 IdentifierKind = "gtin14"
	ISBN   IdentifierKind = "isbn"
)

// DefaultIdentifierKind is used when the installation configures nothing.
const DefaultIdentifierKind = GTIN8

// ParseIdentifierKind maps a configured kind name onto the enumeration,
// falling back to the default for unknown or empty input.
func ParseIdentifierKind(s string) IdentifierKind {
	switch IdentifierKind(s) {
	case GTIN8, GTIN12, GTIN13, GTIN14, ISBN:
		return IdentifierKind(s)
	}
	return DefaultIdentifierKind
}

// Identifier returns the entity's value for the given kind.
func (p *Product) Identifier(kind IdentifierKind) string {
	switch kind {
	case GTIN8:
		return p.GTIN8
	case GTIN12:
		return p.GTIN12
	case GTIN13:
		return p.GTIN13
	case GTIN14:
		return p.GTIN14
	case ISBN:
		return p.ISBN
	}
	return ""
}

// SetIdentifier writes the entity's field for the given kind.
func (p *Product) SetIdentifier(kind IdentifierKind, value string) {
	switch kind {
	case GTIN8:
		p.GTIN8 = value
	case GTIN12:
		p.GTIN12 = value
	case GTIN13:
		p.GTIN13 = value
	case GTIN14:
		p.GTIN14 = value
	case ISBN:
		p.ISBN = value
	}
}

// FormatIdentifier prefixes an identifier value with the installation's
// display label, when one is configured.
func FormatIdentifier(label, value string) string {
	if label == "" {
		return value
	}
	return label + " " + value
}
