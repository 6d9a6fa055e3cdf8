// Package components holds small bubbles-backed widgets shared by the
// renderer and the dashboard.
package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

// Progress renders a card's fill bar as a solid run of cells.
type Progress struct {
	bar progress.Model
}

// NewProgress creates a bar width cells wide. fill colours the filled cells,
// empty the rest; either may be empty to keep the bubbles default. With
// ascii set the bar is drawn with '#' and '-'.
func NewProgress(width int, fill, empty string, ascii bool) Progress {
	opts := []progress.Option{
		progress.WithoutPercentage(),
		progress.WithWidth(max(1, width)),
	}
	if fill != "" {
		opts = append(opts, progress.WithSolidFill(fill))
	}
	bar := progress.New(opts...)
	if empty != "" {
		bar.EmptyColor = empty
	}
	if ascii {
		bar.Full = '#'
		bar.Empty = '-'
	}
	return Progress{bar: bar}
}

// Width returns the bar width in cells.
func (p Progress) Width() int {
	return p.bar.Width
}

// Filled returns how many cells View fills for fraction.
func (p Progress) Filled(fraction float64) int {
	return int(math.Round(float64(p.bar.Width) * clamp(fraction)))
}

// View renders the bar for fraction, clamped to [0,1].
func (p Progress) View(fraction float64) string {
	return p.bar.ViewAs(clamp(fraction))
}

func clamp(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return math.Min(1, f)
}
