package components

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	t.Run("creates bar with requested width", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(20, "#086378", "#FFFFFF", false)
		require.Equal(t, 20, p.Width())
	})

	t.Run("width never drops below one cell", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(0, "", "", false)
		require.Equal(t, 1, p.Width())
	})
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		fraction float64
		filled   int
	}{
		{"empty", 0, 0},
		{"seventy percent", 0.7, 14},
		{"half", 0.5, 10},
		{"full", 1, 20},
		{"beyond full is capped", 1.4, 20},
		{"negative is empty", -1, 0},
		{"nan is empty", math.NaN(), 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := NewProgress(20, "#086378", "#FFFFFF", true)
			view := ansi.Strip(p.View(tc.fraction))

			require.Equal(t, tc.filled, p.Filled(tc.fraction))
			require.Equal(t, tc.filled, strings.Count(view, "#"))
			require.Equal(t, 20-tc.filled, strings.Count(view, "-"))
			require.Equal(t, 20, ansi.StringWidth(view))
		})
	}
}
