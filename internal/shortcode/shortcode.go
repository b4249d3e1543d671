// Package shortcode handles platform-style [tag attr="v"]body[/tag] markers
// embedded in catalog descriptions. Descriptions either expand registered
// shortcodes through their handlers or strip the markers entirely before
// markup removal.
package shortcode

import "regexp"

// Handler renders one shortcode occurrence. attrs holds the parsed
// key="value" pairs and body the enclosed text (empty for self-closing tags).
type Handler func(attrs map[string]string, body string) string

var (
	tagRE  = regexp.MustCompile(`\[([a-zA-Z0-9_-]+)((?:\s+[a-zA-Z0-9_-]+="[^"]*")*)\s*\](?:([^\[\]]*)\[/([a-zA-Z0-9_-]+)\])?`)
	attrRE = regexp.MustCompile(`([a-zA-Z0-9_-]+)="([^"]*)"`)
)

// Registry maps shortcode tags onto their handlers. Registries are built
// once at setup time and are not safe for concurrent mutation.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register installs a handler for a tag, replacing any previous one.
func (r *Registry) Register(tag string, h Handler) {
	r.handlers[tag] = h
}

// Expand replaces every registered shortcode with its handler output.
// Unregistered shortcodes pass through untouched.
func (r *Registry) Expand(s string) string {
	if len(r.handlers) == 0 {
		return s
	}
	return tagRE.ReplaceAllStringFunc(s, func(match string) string {
		parts := tagRE.FindStringSubmatch(match)
		tag, rawAttrs, body, closing := parts[1], parts[2], parts[3], parts[4]
		if closing != "" && closing != tag {
			return match
		}
		h, ok := r.handlers[tag]
		if !ok {
			return match
		}
		attrs := make(map[string]string)
		for _, kv := range attrRE.FindAllStringSubmatch(rawAttrs, -1) {
			attrs[kv[1]] = kv[2]
		}
		return h(attrs, body)
	})
}

// Strip removes all shortcode markers, keeping any enclosed text.
func Strip(s string) string {
	return tagRE.ReplaceAllStringFunc(s, func(match string) string {
		parts := tagRE.FindStringSubmatch(match)
		tag, body, closing := parts[1], parts[3], parts[4]
		if closing != "" && closing != tag {
			return match
		}
		return body
	})
}
