// Package card holds the card configuration contract, the generic card
// renderer and the dashboard's built-in deck.
package card

import (
	"github.com/alexisbeaulieu97/metafront/internal/theme"
)

// Config is the immutable description of one card's content and theme.
// Build literals freely, but pass them through New before rendering so the
// construction-time contract is checked and the reference fields are
// detached from the caller.
type Config struct {
	// ID is a stable identifier used for logging and ordering checks.
	ID            string  `yaml:"id" validate:"required"`
	Title         string  `yaml:"title" validate:"required"`
	Description   string  `yaml:"description"`
	ProgressLabel string  `yaml:"progress_label"`
	ProgressRatio float64 `yaml:"progress_ratio"`
	Avatar        string  `yaml:"avatar" validate:"required"`
	CountLabel    string  `yaml:"count_label"`
	ItemsCount    int     `yaml:"items_count" validate:"min=0"`
	// Gradient holds exactly two colours, start then end.
	Gradient []string `yaml:"gradient" validate:"len=2,dive,hexcolor"`
	// Overrides replaces individual properties of a field's base style.
	Overrides map[theme.Field]theme.Style `yaml:"overrides,omitempty" validate:"dive,keys,card_field,endkeys"`
}

// New validates cfg and returns a copy that shares no memory with it.
func New(cfg Config) (Config, error) {
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg.clone(), nil
}

// MustNew is New for package-level literals; it panics on a contract violation.
func MustNew(cfg Config) Config {
	out, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return out
}

// Accent returns the card's accent colour: the count badge background when
// overridden, otherwise the end of the gradient.
func (c Config) Accent() string {
	if delta, ok := c.Overrides[theme.FieldCountBadge]; ok && delta.Background != "" {
		return delta.Background
	}
	if len(c.Gradient) == 2 {
		return c.Gradient[1]
	}
	return ""
}

func (c Config) clone() Config {
	out := c
	if c.Gradient != nil {
		out.Gradient = append([]string(nil), c.Gradient...)
	}
	if c.Overrides != nil {
		out.Overrides = make(map[theme.Field]theme.Style, len(c.Overrides))
		for field, style := range c.Overrides {
			out.Overrides[field] = style
		}
	}
	return out
}
