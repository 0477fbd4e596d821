package style

import (
	"regexp"
)

// Markup renders [Name]text[/Name] tags with the styles of a registry.
type Markup struct {
	registry *Registry
	patterns map[string]*regexp.Regexp
}

// NewMarkup creates a markup parser for every style in r.
func NewMarkup(r *Registry) *Markup {
	m := &Markup{registry: r, patterns: make(map[string]*regexp.Regexp)}
	for _, name := range r.Names() {
		m.patterns[name] = regexp.MustCompile(`\[` + regexp.QuoteMeta(name) + `\](.*?)\[/` + regexp.QuoteMeta(name) + `\]`)
	}
	return m
}

// Render replaces tags with styled text. Unknown tags are left alone.
func (m *Markup) Render(text string) string {
	return m.apply(text, func(name, inner string) string {
		return m.registry.Render(name, inner)
	})
}

// Strip removes known tags and keeps their content.
func (m *Markup) Strip(text string) string {
	return m.apply(text, func(_, inner string) string { return inner })
}

// apply repeats until nothing changes so nested tags are handled.
func (m *Markup) apply(text string, fn func(name, inner string) string) string {
	for {
		before := text
		for _, name := range m.registry.Names() {
			pattern := m.patterns[name]
			text = pattern.ReplaceAllStringFunc(text, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				return fn(name, sub[1])
			})
		}
		if text == before {
			return text
		}
	}
}
