package schema

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup from a description and collapses whitespace
// runs into single spaces, so multi-line catalog HTML flattens into one
// clean sentence-per-line string.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	out := stripPolicy.Sanitize(s)
	// The strict policy escapes remaining text; entities must be folded
	// back into plain characters before the value lands in an entity.
	out = html.UnescapeString(out)
	return strings.Join(strings.Fields(out), " ")
}
