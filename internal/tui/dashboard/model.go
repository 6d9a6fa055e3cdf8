// Package dashboard runs the MetaFront screen as a Bubble Tea program: a
// fixed header with a live search field, a scrollable card deck and a
// navigation overlay pinned to the bottom of the terminal.
package dashboard

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/metafront/internal/assets"
	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/logger"
	"github.com/alexisbeaulieu97/metafront/internal/screen"
	"github.com/alexisbeaulieu97/metafront/internal/tui/render"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

// Options configures a dashboard Model.
type Options struct {
	Logger *logger.Logger
	Assets assets.Resolver
	ASCII  bool
	// Width and Height seed the layout before the first WindowSizeMsg.
	Width  int
	Height int
}

// Model is the dashboard's Bubble Tea model.
type Model struct {
	screen   screen.Screen
	root     *view.Node
	renderer *render.Renderer
	log      *logger.Logger
	keys     KeyMap

	viewport viewport.Model
	search   textinput.Model

	// Cached renders; content only changes with the width.
	header       string
	content      string
	contentWidth int
	frame        screen.Frame

	warnings []card.Warning
	width    int
	height   int
}

// NewModel composes scr once and prepares the widgets. Card warnings are
// logged here and kept for inspection.
func NewModel(scr screen.Screen, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	root, warnings := scr.Compose()
	for _, w := range warnings {
		log.WithFields(map[string]any{
			"card":    w.Card,
			"field":   w.Field,
			"value":   w.Value,
			"clamped": w.Clamped,
		}).Warn("progress ratio out of range")
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = scr.Header.SearchPlaceholder
	input.TextStyle = scr.Theme.Header.SearchInput.Lipgloss().UnsetPadding()
	input.PlaceholderStyle = input.TextStyle.Faint(true)

	m := Model{
		screen: scr,
		root:   root,
		renderer: render.New(scr.Theme, render.Options{
			Assets: opts.Assets,
			Logger: log,
			ASCII:  opts.ASCII,
		}),
		log:      log,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(0, 0),
		search:   input,
		warnings: warnings,
		width:    opts.Width,
		height:   opts.Height,
	}
	if m.width == 0 || m.height == 0 {
		m.width, m.height = 80, 24
	}
	m.relayout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Warnings returns the render warnings collected at composition time.
func (m Model) Warnings() []card.Warning {
	return m.warnings
}

// Frame returns the geometry of the last layout pass.
func (m Model) Frame() screen.Frame {
	return m.frame
}

// Searching reports whether the search field has focus.
func (m Model) Searching() bool {
	return m.search.Focused()
}

// relayout re-renders the header, re-renders the deck when the width
// changed, and resizes the viewport to the scroll region.
func (m *Model) relayout() {
	m.search.Width = max(1, m.renderer.SearchInputWidth(m.width)-2)
	m.header = m.renderer.Header(m.root, m.width, m.search.View())

	if m.contentWidth != m.width || m.content == "" {
		m.content = m.renderer.Content(m.root, m.width)
		m.contentWidth = m.width
		m.viewport.SetContent(m.content)
	}

	m.frame = m.layout()
	m.viewport.Width = m.frame.Scroll.Width
	m.viewport.Height = m.frame.Scroll.Height
	if m.viewport.YOffset > m.frame.MaxOffset {
		m.viewport.SetYOffset(m.frame.MaxOffset)
	}
	m.frame.Offset = m.viewport.YOffset
}

func (m Model) layout() screen.Frame {
	size := screen.Size{Width: m.width, Height: m.height}
	return m.screen.Layout(size, lipgloss.Height(m.header), lipgloss.Height(m.content), m.viewport.YOffset)
}
