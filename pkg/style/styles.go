package style

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles file
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

// Default is the registry built from the embedded styles file.
var Default = mustDefault()

func mustDefault() *Registry {
	r, err := LoadFromData(embeddedStyles)
	if err != nil {
		return fallback()
	}
	return r
}

// fallback keeps every known name resolvable when styles.yaml is unusable.
func fallback() *Registry {
	r := &Registry{
		colors: map[string]lipgloss.AdaptiveColor{},
		styles: map[string]lipgloss.Style{},
	}
	for _, name := range []string{
		"Header", "Column", "Success", "Error", "Warning",
		"Info", "Muted", "FilePath", "Count", "Code",
	} {
		r.styles[name] = lipgloss.NewStyle()
	}
	return r
}

// LoadFromData builds a registry from YAML data.
func LoadFromData(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	r := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		r.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		style, err := r.build(name, def)
		if err != nil {
			return nil, err
		}
		r.styles[name] = style
	}
	return r, nil
}

// build constructs a lipgloss style from a style definition
func (r *Registry) build(name string, def StyleDef) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		color, ok := r.colors[def.Foreground]
		if !ok {
			return style, fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := r.colors[def.Background]
		if !ok {
			return style, fmt.Errorf("style %s: unknown color %q", name, def.Background)
		}
		style = style.Background(color)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style, nil
}

// Get returns the named style, or an empty style when unknown.
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is a registered style.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Names returns the registered style names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render applies the named style to s.
func (r *Registry) Render(name, s string) string {
	return r.Get(name).Render(s)
}
