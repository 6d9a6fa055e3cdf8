// Package render draws screen view trees as ANSI text with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/metafront/internal/assets"
	"github.com/alexisbeaulieu97/metafront/internal/logger"
	"github.com/alexisbeaulieu97/metafront/internal/screen"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

// Options configures a Renderer.
type Options struct {
	Assets assets.Resolver
	Logger *logger.Logger
	// ASCII swaps box-drawing characters for plain ASCII.
	ASCII bool
}

// Renderer turns view nodes into terminal text. It is not safe for
// concurrent use; the dashboard renders from a single goroutine.
type Renderer struct {
	theme   theme.Theme
	assets  assets.Resolver
	log     *logger.Logger
	ascii   bool
	missing map[string]bool
}

// New creates a Renderer for the given theme.
func New(th theme.Theme, opts Options) *Renderer {
	resolver := opts.Assets
	if resolver == nil {
		resolver = assets.NewCatalog(!opts.ASCII)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Renderer{
		theme:   th,
		assets:  resolver,
		log:     log,
		ascii:   opts.ASCII,
		missing: make(map[string]bool),
	}
}

// Theme returns the theme the renderer draws with.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// art resolves a handle, logging each unresolved handle once and falling
// back to the resolver's placeholder.
func (r *Renderer) art(handle string) assets.Art {
	art, err := r.assets.Resolve(handle)
	if err != nil && !r.missing[handle] {
		r.missing[handle] = true
		r.log.WithFields(map[string]any{"handle": handle}).Error(err, "asset unresolved, drawing placeholder")
	}
	if len(art.Lines) == 0 {
		art.Lines = []string{"?"}
	}
	return art
}

func (r *Renderer) screenFill() lipgloss.Style {
	return bgStyle(r.theme.Background)
}

func bgStyle(color string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Background(lipgloss.Color(color))
	}
	return style
}

// withBackground sets bg on style unless the style already has a background.
func withBackground(style lipgloss.Style, bg string) lipgloss.Style {
	if bg == "" {
		return style
	}
	if _, unset := style.GetBackground().(lipgloss.NoColor); unset {
		return style.Background(lipgloss.Color(bg))
	}
	return style
}

// Content renders the scroll region: every card in composition order,
// separated by the card margin, followed by the trailing spacer.
func (r *Renderer) Content(root *view.Node, width int) string {
	scroll := root.Find(screen.RoleScroll)
	if scroll == nil {
		return ""
	}

	fill := r.screenFill()
	margin := r.theme.Metrics.CardMargin
	var lines []string

	for _, child := range scroll.Children {
		switch child.Kind {
		case view.KindGradient:
			block := r.cardCanvas(child, width)
			gap := max(0, margin-block.bleedTop)
			if len(lines) == 0 {
				gap = margin
			}
			for i := 0; i < gap; i++ {
				lines = append(lines, fill.Render(strings.Repeat(" ", width)))
			}
			lines = append(lines, block.lines...)
		case view.KindSpacer:
			for i := 0; i < child.Style.Height; i++ {
				lines = append(lines, fill.Render(strings.Repeat(" ", width)))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Card renders a single card node at the given screen width.
func (r *Renderer) Card(node *view.Node, width int) string {
	return strings.Join(r.cardCanvas(node, width).lines, "\n")
}

// Static renders a full frame without an interactive program, for
// non-terminal output and snapshots.
func (r *Renderer) Static(scr screen.Screen, size screen.Size, offset int) (string, screen.Frame) {
	root, _ := scr.Compose()
	header := r.Header(root, size.Width, "")
	content := r.Content(root, size.Width)
	frame := scr.Layout(size, lipgloss.Height(header), lipgloss.Height(content), offset)
	scroll := strings.Join(window(content, frame.Offset, frame.Scroll.Height), "\n")
	return r.Compose(root, frame, header, scroll), frame
}

// Compose stacks header, scroll view and nav bar into one frame and paints
// the raised centre backing and button over whatever lies beneath them.
func (r *Renderer) Compose(root *view.Node, frame screen.Frame, header, scrollView string) string {
	width := frame.Viewport.Width
	lines := make([]string, frame.Viewport.Height)
	fill := r.screenFill()

	place := func(block string, area screen.Rect) {
		if area.Height == 0 {
			return
		}
		rows := strings.Split(block, "\n")
		for i := 0; i < area.Height; i++ {
			row := ""
			if i < len(rows) {
				row = rows[i]
			}
			lines[area.Y+i] = padLine(row, width, fill)
		}
	}

	place(header, frame.Header)
	place(scrollView, frame.Scroll)

	nav := root.Find(screen.RoleNav)
	if nav != nil {
		place(r.navBar(nav, width, frame.Nav.Height), frame.Nav)
		backing := root.Find(screen.RoleCenterBacking)
		button := root.Find(screen.RoleCenterButton)
		if backing != nil {
			overlayBlock(lines, r.backing(backing, frame.Backing), frame.Backing.X, frame.Backing.Y)
		}
		if button != nil {
			overlayBlock(lines, r.centerButton(button, frame.Button), frame.Button.X, frame.Button.Y)
		}
	}

	for i := range lines {
		lines[i] = padLine(lines[i], width, fill)
	}
	return strings.Join(lines, "\n")
}
