package theme

import (
	"dario.cat/mergo"
	"github.com/charmbracelet/lipgloss"
)

// Style is a framework-neutral set of presentation properties for one visual
// element. A zero value (empty colour, zero size, nil flag) means the
// property is unspecified, which is what lets the same type act both as a
// base style and as an override delta.
type Style struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       *bool  `yaml:"bold,omitempty"`
	Italic     *bool  `yaml:"italic,omitempty"`
	Faint      *bool  `yaml:"faint,omitempty"`

	Width    int `yaml:"width,omitempty"`
	Height   int `yaml:"height,omitempty"`
	PaddingX int `yaml:"padding_x,omitempty"`
	PaddingY int `yaml:"padding_y,omitempty"`

	// Top and Right offset an absolutely positioned element from its anchor.
	// Negative Top lifts it, positive Right pushes it past the right edge.
	Top   int `yaml:"top,omitempty"`
	Right int `yaml:"right,omitempty"`
}

// Bool returns a pointer for use in Style flag fields.
func Bool(v bool) *bool {
	return &v
}

// Merge resolves delta on top of base. Every property delta specifies wins;
// everything else keeps the base value. Merge never mutates its arguments and
// Merge(Merge(b, d), d) == Merge(b, d).
func Merge(base, delta Style) Style {
	merged := base
	if err := mergo.Merge(&merged, delta, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		// Only reachable on a type mismatch, which Style-to-Style cannot produce.
		return base
	}
	return merged
}

// IsZero reports whether no property is specified.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Lipgloss converts the resolved style into a lipgloss style. Offsets are
// layout properties and are left to the caller.
func (s Style) Lipgloss() lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	if s.Bold != nil {
		style = style.Bold(*s.Bold)
	}
	if s.Italic != nil {
		style = style.Italic(*s.Italic)
	}
	if s.Faint != nil {
		style = style.Faint(*s.Faint)
	}
	if s.PaddingX > 0 || s.PaddingY > 0 {
		style = style.Padding(s.PaddingY, s.PaddingX)
	}
	return style
}
