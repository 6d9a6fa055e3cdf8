package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/metafront/internal/screen"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

// Header renders the fixed header. inputView replaces the search
// placeholder when the dashboard owns a live text input.
func (r *Renderer) Header(root *view.Node, width int, inputView string) string {
	header := root.Find(screen.RoleHeader)
	if header == nil || width <= 0 {
		return ""
	}
	bg := r.theme.Background
	textWidth := max(1, width-2)

	var lines []string
	addText := func(role string) {
		node := header.Find(role)
		if node == nil || node.Text == "" {
			return
		}
		style := withBackground(node.Style.Lipgloss(), bg)
		for _, line := range strings.Split(ansi.Wordwrap(node.Text, textWidth, ""), "\n") {
			lines = append(lines, " "+style.Render(ansi.Truncate(line, textWidth, "…")))
		}
	}

	lines = append(lines, "")
	addText(screen.RoleGreeting)
	addText(screen.RoleAppName)
	addText(screen.RoleTagline)
	lines = append(lines, "")
	if search := header.Find(screen.RoleSearchRow); search != nil {
		lines = append(lines, r.searchRow(search, width, inputView))
	}

	fill := r.screenFill()
	for i := range lines {
		lines[i] = padLine(lines[i], width, fill)
	}
	return strings.Join(lines, "\n")
}

// SearchInputWidth is the cell width available to the search input.
func (r *Renderer) SearchInputWidth(width int) int {
	want := r.theme.Header.SearchInput.Width
	room := width - 2*r.theme.Header.SearchRow.PaddingX - 6
	if want <= 0 || want > room {
		want = room
	}
	return max(1, want)
}

func (r *Renderer) searchRow(node *view.Node, width int, inputView string) string {
	input := node.Find(screen.RoleSearchInput)
	button := node.Find(screen.RoleSearchButton)
	rowStyle := node.Style

	inputWidth := r.SearchInputWidth(width)
	field := inputView
	inputStyle := lipgloss.NewStyle()
	if input != nil {
		inputStyle = input.Style.Lipgloss()
		if field == "" {
			field = inputStyle.Faint(true).Render(input.Text)
		}
	}
	field = padLine(" "+field, inputWidth, inputStyle)
	field = inputStyle.Render(field)

	icon := ""
	if button != nil {
		icon = button.Style.Lipgloss().Render(r.art(button.Asset).Lines[0])
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, field, icon)
	rowBg := rowStyle.Background
	if rowBg == "" {
		rowBg = r.theme.Background
	}
	pad := strings.Repeat(" ", rowStyle.PaddingX)
	padded := bgStyle(rowBg).Render(pad) + joined + bgStyle(rowBg).Render(pad)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, padded,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(r.theme.Background)))
}

// navBar draws the bar behind the three nav slots: a rounded top edge, the
// side slots on the middle row, blank rows after that.
func (r *Renderer) navBar(nav *view.Node, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	bar := nav.Style
	barStyle := bar.Lipgloss().UnsetPadding()
	fill := bgStyle(bar.Background)

	edge := "╭" + strings.Repeat("─", max(0, width-2)) + "╮"
	if r.ascii {
		edge = "+" + strings.Repeat("-", max(0, width-2)) + "+"
	}
	if width < 2 {
		edge = strings.Repeat(" ", width)
	}

	lines := []string{barStyle.Render(ansi.Truncate(edge, width, ""))}
	if height > 1 {
		left := r.navSlot(nav.Find(screen.RoleNavLeft), bar.Background)
		right := r.navSlot(nav.Find(screen.RoleNavRight), bar.Background)
		pad := fill.Render(strings.Repeat(" ", bar.PaddingX))
		gap := width - 2*bar.PaddingX - ansi.StringWidth(left) - ansi.StringWidth(right)
		middle := pad + left + fill.Render(strings.Repeat(" ", max(0, gap))) + right + pad
		lines = append(lines, padLine(middle, width, fill))
	}
	for len(lines) < height {
		lines = append(lines, fill.Render(strings.Repeat(" ", width)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) navSlot(node *view.Node, bg string) string {
	if node == nil {
		return ""
	}
	icon := withBackground(r.theme.Nav.Icon.Lipgloss(), bg).Render(r.art(node.Asset).Lines[0])
	if node.Text == "" {
		return icon
	}
	label := withBackground(node.Style.Lipgloss(), bg).Render(node.Text)
	return icon + bgStyle(bg).Render(" ") + label
}

// backing draws the circle behind the raised button. Only its rounded top
// shows above the bar; the rest blends into the bar.
func (r *Renderer) backing(node *view.Node, area screen.Rect) string {
	if area.Width <= 0 || area.Height <= 0 {
		return ""
	}
	style := node.Style.Lipgloss()
	top := "╭" + strings.Repeat("─", max(0, area.Width-2)) + "╮"
	if r.ascii {
		top = "." + strings.Repeat("-", max(0, area.Width-2)) + "."
	}
	lines := []string{style.Render(ansi.Truncate(top, area.Width, ""))}
	for len(lines) < area.Height {
		lines = append(lines, style.Render(strings.Repeat(" ", area.Width)))
	}
	return strings.Join(lines, "\n")
}

// centerButton draws the raised home button as a bordered box with the icon
// centred inside.
func (r *Renderer) centerButton(node *view.Node, area screen.Rect) string {
	if area.Width < 2 || area.Height < 2 {
		return ""
	}
	s := node.Style
	border := lipgloss.RoundedBorder()
	if r.ascii {
		border = lipgloss.ASCIIBorder()
	}
	edge := r.theme.Nav.CenterBacking.Background
	style := s.Lipgloss().
		UnsetPadding().
		Width(area.Width-2).
		Height(area.Height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Border(border).
		BorderForeground(lipgloss.Color(buttonEdge(s))).
		BorderBackground(lipgloss.Color(edge))

	label := r.art(node.Asset).Lines[0]
	return style.Render(label)
}

func buttonEdge(s theme.Style) string {
	if s.Background != "" {
		return s.Background
	}
	return s.Foreground
}
