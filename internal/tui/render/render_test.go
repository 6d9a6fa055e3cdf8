package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/metafront/internal/assets"
	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/logger"
	"github.com/alexisbeaulieu97/metafront/internal/screen"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
)

func newASCII(t *testing.T) *Renderer {
	t.Helper()
	return New(theme.Default(), Options{ASCII: true})
}

func renderCard(t *testing.T, r *Renderer, cfg card.Config, width int) string {
	t.Helper()
	node, _ := card.Render(cfg, r.Theme())
	return ansi.Strip(r.Card(node, width))
}

func overflowCard(ratio float64) card.Config {
	return card.MustNew(card.Config{
		ID:            "overflow",
		Title:         "Overflow",
		ProgressLabel: "Done",
		ProgressRatio: ratio,
		Avatar:        assets.AvatarDefault,
		CountLabel:    "Items",
		ItemsCount:    3,
		Gradient:      []string{"#9CF4F5", "#BEF8F9"},
	})
}

func TestGradientEndpoints(t *testing.T) {
	t.Parallel()

	stops := Gradient("#000000", "#ffffff", 5)
	require.Len(t, stops, 5)
	assert.Equal(t, "#000000", stops[0])
	assert.Equal(t, "#ffffff", stops[4])

	assert.Equal(t, []string{"#000000"}, Gradient("#000000", "#ffffff", 1))
	assert.Nil(t, Gradient("#000000", "#ffffff", 0))
}

func TestGradientInvalidEndpointFallsBackToFlat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"#ffffff", "#ffffff"}, Gradient("nope", "#ffffff", 2))
	assert.Equal(t, []string{"#000000", "#000000"}, Gradient("#000000", "nope", 2))
	assert.Equal(t, []string{"", ""}, Gradient("nope", "nope", 2))
}

func TestSplice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		x      int
		insert string
		want   string
	}{
		{"middle", "abcdef", 2, "XY", "abXYef"},
		{"start", "abcdef", 0, "XY", "XYcdef"},
		{"past end pads", "ab", 4, "X", "ab  X"},
		{"overhang extends", "abc", 2, "XYZ", "abXYZ"},
		{"negative clips insert", "abcdef", -1, "XY", "Ybcdef"},
		{"empty insert", "abc", 1, "", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splice(tt.line, tt.x, tt.insert))
		})
	}
}

func TestOverlayArtSpacesAreTransparent(t *testing.T) {
	t.Parallel()

	lines := []string{"......", "......"}
	plain := func(int, int) lipgloss.Style { return lipgloss.NewStyle() }
	overlayArt(lines, []string{"a b", " c"}, 1, 0, plain)

	assert.Equal(t, ".a.b..", ansi.Strip(lines[0]))
	assert.Equal(t, "..c...", ansi.Strip(lines[1]))
}

func TestOverlayBlockDropsRowsOutside(t *testing.T) {
	t.Parallel()

	lines := []string{"....", "...."}
	overlayBlock(lines, "AB\nCD\nEF", 1, -1)

	assert.Equal(t, ".CD.", lines[0])
	assert.Equal(t, ".EF.", lines[1])
}

func TestWindowPadsPastContent(t *testing.T) {
	t.Parallel()

	got := window("a\nb\nc", 2, 3)
	assert.Equal(t, []string{"c", "", ""}, got)
}

func TestFitArtCrops(t *testing.T) {
	t.Parallel()

	got := fitArt([]string{"abcd", "efgh", "ijkl"}, 2, 2)
	assert.Equal(t, []string{"ab", "ef"}, got)
}

func TestCardProgressFillMatchesRatio(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	const width = 80
	barWidth := r.ProgressWidth(width)

	tests := []struct {
		name  string
		ratio float64
		fill  float64
	}{
		{"seventy percent", 0.7, 0.7},
		{"empty", 0, 0},
		{"overflow clamps to full", 1.4, 1},
		{"negative clamps to empty", -0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderCard(t, r, overflowCard(tt.ratio), width)
			filled := int(math.Round(float64(barWidth) * tt.fill))
			assert.Equal(t, filled, strings.Count(out, "#"))
			assert.Equal(t, barWidth-filled, strings.Count(out, "-"))
		})
	}
}

func TestGroceryCardContent(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	out := renderCard(t, r, card.Deck()[0], 80)

	title := strings.Index(out, "Grocery List")
	desc := strings.Index(out, "Add needed items.")
	badge := strings.Index(out, "200 Items")
	bar := strings.Index(out, "#")
	label := strings.Index(out, "Bought 70%")

	require.True(t, title >= 0 && desc >= 0 && badge >= 0 && bar >= 0 && label >= 0, out)
	assert.Less(t, title, desc)
	assert.Less(t, desc, badge)
	assert.Less(t, badge, bar)
	assert.Less(t, bar, label, "bar sits above its label")
}

func TestCardRowsHaveScreenWidth(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	for _, width := range []int{20, 48, 80, 120} {
		node, _ := card.Render(card.Deck()[2], r.Theme())
		for i, line := range strings.Split(r.Card(node, width), "\n") {
			assert.Equal(t, width, ansi.StringWidth(line), "width %d row %d", width, i)
		}
	}
}

func TestCardArtworkBleedsAboveCard(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	node, _ := card.Render(card.Deck()[0], r.Theme())
	block := r.cardCanvas(node, 80)

	assert.Equal(t, -r.Theme().Card.Silhouette.Top, block.bleedTop)
	assert.Contains(t, ansi.Strip(block.lines[0]), ".", "silhouette paints in the bleed row")
}

func TestMissingAssetLoggedOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	r := New(theme.Default(), Options{Logger: log, ASCII: true})
	cfg := overflowCard(0.5)
	cfg.Avatar = "images/unknown.png"

	first := renderCard(t, r, cfg, 60)
	renderCard(t, r, cfg, 60)

	assert.Contains(t, first, "?", "placeholder drawn in place of the avatar")
	assert.Equal(t, 1, strings.Count(buf.String(), "asset unresolved"))
	assert.Contains(t, buf.String(), "images/unknown.png")
}

func TestContentStacksDeckWithTrailingMargin(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	scr := screen.New(card.Deck(), r.Theme())
	root, _ := scr.Compose()
	content := ansi.Strip(r.Content(root, 80))

	last := -1
	for _, cfg := range card.Deck() {
		idx := strings.Index(content, cfg.Title)
		require.GreaterOrEqual(t, idx, 0, cfg.Title)
		assert.Greater(t, idx, last, "%s out of order", cfg.Title)
		last = idx
	}

	lines := strings.Split(content, "\n")
	margin := r.Theme().Metrics.TrailingMargin
	for _, line := range lines[len(lines)-margin:] {
		assert.Empty(t, strings.TrimSpace(line))
	}
}

func TestStaticFrameFillsViewport(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	scr := screen.New(card.Deck(), r.Theme())
	out, frame := r.Static(scr, screen.Size{Width: 80, Height: 30}, 0)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	for i, line := range lines {
		assert.Equal(t, 80, ansi.StringWidth(line), "row %d", i)
	}

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "MetaFront!")
	assert.Contains(t, plain, "Search lists")
	assert.Equal(t, 27, frame.Nav.Y)

	middle := ansi.Strip(lines[frame.Nav.Y+1])
	assert.Contains(t, middle, "Notifications")
	assert.Contains(t, middle, "Profile")
}

func TestNavPinnedAtAnyOffset(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	scr := screen.New(card.Deck(), r.Theme())
	size := screen.Size{Width: 80, Height: 30}

	reference, frame := r.Static(scr, size, 0)
	refLines := strings.Split(ansi.Strip(reference), "\n")

	cells := func(line string, area screen.Rect) string {
		runes := []rune(line)
		return string(runes[area.X : area.X+area.Width])
	}

	for _, offset := range []int{1, 7, 25, 10_000} {
		out, f := r.Static(scr, size, offset)
		lines := strings.Split(ansi.Strip(out), "\n")

		assert.Equal(t, frame.Nav, f.Nav)
		assert.Equal(t, frame.Button, f.Button)
		assert.Equal(t, frame.Nav.Y-r.Theme().Metrics.ButtonLift, f.Button.Y)

		for y := f.Nav.Y; y < f.Nav.Bottom(); y++ {
			assert.Equal(t, refLines[y], lines[y], "nav row %d at offset %d", y, offset)
		}
		for y := f.Button.Y; y < f.Button.Bottom(); y++ {
			assert.Equal(t, cells(refLines[y], f.Button), cells(lines[y], f.Button),
				"button row %d at offset %d", y, offset)
		}
	}
}

func TestStaticTinyViewport(t *testing.T) {
	t.Parallel()

	r := newASCII(t)
	scr := screen.New(card.Deck(), r.Theme())

	assert.NotPanics(t, func() {
		out, _ := r.Static(scr, screen.Size{Width: 4, Height: 2}, 3)
		assert.Len(t, strings.Split(out, "\n"), 2)
	})
}
