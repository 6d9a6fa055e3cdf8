package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// splice paints insert over line starting at cell x. The cells insert
// covers are replaced; everything else, escape sequences included, is kept.
func splice(line string, x int, insert string) string {
	if x < 0 {
		insert = ansi.TruncateLeft(insert, -x, "")
		x = 0
	}
	if insert == "" {
		return line
	}

	width := ansi.StringWidth(line)
	if width < x {
		line += strings.Repeat(" ", x-width)
		width = x
	}

	left := ansi.Truncate(line, x, "")
	right := ""
	if end := x + ansi.StringWidth(insert); end < width {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + insert + right
}

// overlayBlock paints block opaquely onto lines with its top-left at (x, y).
// Rows outside lines are dropped.
func overlayBlock(lines []string, block string, x, y int) {
	for i, row := range strings.Split(block, "\n") {
		target := y + i
		if target < 0 || target >= len(lines) {
			continue
		}
		lines[target] = splice(lines[target], x, row)
	}
}

// overlayArt paints plain-text art onto lines with its top-left at (x, y).
// Spaces in the art are transparent. styleAt supplies the style for the cell
// a run starts in so the art can pick up the background underneath.
func overlayArt(lines []string, art []string, x, y int, styleAt func(row, col int) lipgloss.Style) {
	for i, artLine := range art {
		target := y + i
		if target < 0 || target >= len(lines) {
			continue
		}

		runes := []rune(artLine)
		col := 0
		for col < len(runes) {
			if runes[col] == ' ' {
				col++
				continue
			}
			start := col
			for col < len(runes) && runes[col] != ' ' {
				col++
			}
			run := string(runes[start:col])
			cell := x + ansi.StringWidth(string(runes[:start]))
			lines[target] = splice(lines[target], cell, styleAt(target, cell).Render(run))
		}
	}
}

// fitArt crops art to at most width cells and height rows.
func fitArt(art []string, width, height int) []string {
	if height > 0 && len(art) > height {
		art = art[:height]
	}
	out := make([]string, len(art))
	for i, line := range art {
		if width > 0 {
			line = ansi.Truncate(line, width, "")
		}
		out[i] = line
	}
	return out
}

// padLine right-pads line to width using fill, or truncates it.
func padLine(line string, width int, fill lipgloss.Style) string {
	w := ansi.StringWidth(line)
	switch {
	case w == width:
		return line
	case w > width:
		return ansi.Truncate(line, width, "")
	default:
		return line + fill.Render(strings.Repeat(" ", width-w))
	}
}

// window returns height lines of content starting at offset, padded with
// blank lines when content runs out.
func window(content string, offset, height int) []string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		idx := offset + i
		if idx >= 0 && idx < len(lines) {
			out = append(out, lines[idx])
		} else {
			out = append(out, "")
		}
	}
	return out
}
