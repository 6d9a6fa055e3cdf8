package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/tui/components"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

// cardBlock is a rendered card plus the rows its artwork bleeds above it.
type cardBlock struct {
	lines    []string
	bleedTop int
}

// cardGeometry places a card horizontally inside a screen of width cells.
type cardGeometry struct {
	left  int
	width int
	text  int
}

func (r *Renderer) geometry(width int, padX int) cardGeometry {
	m := r.theme.Metrics
	cw := int(math.Round(float64(width) * m.CardWidthRatio))
	cw = max(0, min(cw, width))
	text := int(float64(cw)*m.TextColumnRatio) - padX
	return cardGeometry{
		left:  (width - cw) / 2,
		width: cw,
		text:  max(1, text),
	}
}

// cardCanvas draws a card as full-width screen rows. The gradient runs top
// to bottom across the card rows; the avatar and silhouette are painted last
// and may spill past the card's top and right edges.
func (r *Renderer) cardCanvas(node *view.Node, width int) cardBlock {
	panel := node.Style
	geo := r.geometry(width, panel.PaddingX)

	rows := r.cardText(node, geo.text)

	avatar := node.Find(card.RoleAvatar)
	var layers []*view.Node
	if avatar != nil {
		layers = avatar.Painted()
	}

	height := len(rows) + 2*panel.PaddingY
	minTop := 0
	for _, layer := range layers {
		height = max(height, layer.Style.Height+max(0, layer.Offset.Y))
		minTop = min(minTop, layer.Offset.Y)
	}
	bleedTop := -minTop

	var colors []string
	if len(node.Colors) == 2 {
		colors = Gradient(node.Colors[0], node.Colors[1], height)
	} else {
		colors = repeat("", height)
	}

	fill := r.screenFill()
	lines := make([]string, 0, bleedTop+height)
	for i := 0; i < bleedTop; i++ {
		lines = append(lines, fill.Render(strings.Repeat(" ", width)))
	}
	for i := 0; i < height; i++ {
		rowBg := bgStyle(colors[i])
		content := ""
		if idx := i - panel.PaddingY; idx >= 0 && idx < len(rows) {
			content = rows[idx](colors[i])
		}
		inner := rowBg.Render(strings.Repeat(" ", panel.PaddingX)) + content
		inner = padLine(inner, geo.width, rowBg)

		line := fill.Render(strings.Repeat(" ", geo.left)) + inner
		lines = append(lines, padLine(line, width, fill))
	}

	for _, layer := range layers {
		art := r.art(layer.Asset)
		drawn := fitArt(art.Lines, layer.Style.Width, layer.Style.Height)
		artWidth := 0
		for _, l := range drawn {
			artWidth = max(artWidth, ansi.StringWidth(l))
		}

		x := geo.left + geo.width - artWidth + layer.Offset.X
		y := bleedTop + layer.Offset.Y
		base := layer.Style.Lipgloss()
		overlayArt(lines, drawn, x, y, func(row, col int) lipgloss.Style {
			bg := r.theme.Background
			if row >= bleedTop && col >= geo.left && col < geo.left+geo.width {
				bg = colors[row-bleedTop]
			}
			return withBackground(base, bg)
		})
	}

	for i := range lines {
		lines[i] = padLine(lines[i], width, fill)
	}
	return cardBlock{lines: lines, bleedTop: bleedTop}
}

// row renders one line of card text on the given row background.
type row func(bg string) string

// cardText lays out the text column: title, wrapped description, count
// badge, progress bar and progress label, separated by blank rows.
func (r *Renderer) cardText(node *view.Node, width int) []row {
	var rows []row
	blank := func(string) string { return "" }

	text := func(n *view.Node) {
		style := n.Style.Lipgloss()
		for _, line := range strings.Split(ansi.Wordwrap(n.Text, width, ""), "\n") {
			line = ansi.Truncate(line, width, "…")
			rows = append(rows, func(bg string) string {
				return withBackground(style, bg).Render(line)
			})
		}
	}

	if title := node.Find(card.RoleTitle); title != nil {
		style := title.Style.Lipgloss()
		line := ansi.Truncate(title.Text, width, "…")
		rows = append(rows, func(bg string) string {
			return withBackground(style, bg).Render(line)
		})
	}
	if desc := node.Find(card.RoleDescription); desc != nil && desc.Text != "" {
		text(desc)
	}
	if badge := node.Find(card.RoleCountBadge); badge != nil {
		rows = append(rows, blank)
		style := badge.Style.Lipgloss()
		rows = append(rows, func(bg string) string {
			return withBackground(style, bg).Render(badge.Text)
		})
	}
	if bar := node.Find(card.RoleProgressBar); bar != nil {
		rows = append(rows, blank)
		drawn := r.progressBar(bar, width)
		rows = append(rows, func(string) string { return drawn })
	}
	if label := node.Find(card.RoleProgressLabel); label != nil && label.Text != "" {
		text(label)
	}
	return rows
}

// ProgressWidth is the width in cells of a card's progress bar.
func (r *Renderer) ProgressWidth(screenWidth int) int {
	geo := r.geometry(screenWidth, r.theme.Card.Panel.PaddingX)
	return r.barWidth(geo.text)
}

func (r *Renderer) barWidth(textWidth int) int {
	return max(1, int(math.Round(float64(textWidth)*r.theme.Metrics.ProgressBarRatio)))
}

// progressBar draws the fill as a solid accent bar with the field's
// background as the empty colour.
func (r *Renderer) progressBar(node *view.Node, textWidth int) string {
	bar := components.NewProgress(r.barWidth(textWidth), node.Style.Foreground, node.Style.Background, r.ascii)
	return bar.View(node.Fraction)
}
