package usecase

import (
	"strings"

	"github.com/avelier/productgraph/internal/model"
)

// attributeKinds is the whitelist of variant attribute kinds and their
// canonical URIs. Slice order is the serialization order of variesBy,
// regardless of the order attributes were encountered in.
var attributeKinds = []struct {
	key string
	uri string
}{
	{"color", "https://schema.org/color"},
	{"size", "https://schema.org/size"},
	{"age", "https://schema.org/suggestedAge"},
	{"gender", "https://schema.org/suggestedGender"},
	{"material", "https://schema.org/material"},
	{"pattern", "https://schema.org/pattern"},
}

// normalizeAttribute strips the platform's taxonomy prefixes from an
// attribute key and lowercases it.
func normalizeAttribute(key string) string {
	key = strings.TrimPrefix(key, "attribute_")
	key = strings.TrimPrefix(key, "pa_")
	return strings.ToLower(key)
}

// attributeKind normalizes a variant attribute and reports whether it is one
// of the whitelisted varying kinds. Empty values and unknown keys are
// silently dropped.
func attributeKind(key, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	key = normalizeAttribute(key)
	for _, k := range attributeKinds {
		if k.key == key {
			return key, true
		}
	}
	return "", false
}

// variesBy computes the deduplicated set of whitelisted attribute kinds
// present on at least one variant, as canonical URIs in whitelist order.
// It returns nil when nothing varies so the field is omitted entirely.
func variesBy(variants []model.Variant) []string {
	seen := make(map[string]bool)
	for i := range variants {
		for key, value := range variants[i].Attributes {
			if kind, ok := attributeKind(key, value); ok {
				seen[kind] = true
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for _, k := range attributeKinds {
		if seen[k.key] {
			out = append(out, k.uri)
		}
	}
	return out
}
