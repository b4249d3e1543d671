package schema

import "encoding/json"

// Context is the vocabulary every emitted document declares.
const Context = "https://schema.org"

// Document wraps aggregated entities in a JSON-LD graph envelope.
type Document struct {
	Context string   `json:"@context"`
	Graph   []Entity `json:"@graph"`
}

// NewDocument builds a document around the given entities.
func NewDocument(entities ...Entity) *Document {
	return &Document{
		Context: Context,
		Graph:   entities,
	}
}

// MarshalIndent renders the document as pretty-printed JSON-LD.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
