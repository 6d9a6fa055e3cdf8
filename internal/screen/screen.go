// Package screen composes the dashboard: a fixed header, a scroll region
// holding the card deck and a bottom navigation overlay with a raised
// centre button.
package screen

import (
	"github.com/alexisbeaulieu97/metafront/internal/assets"
	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

// Roles of the screen-level nodes.
const (
	RoleRoot          = "screen"
	RoleHeader        = "screen.header"
	RoleGreeting      = "screen.header.greeting"
	RoleAppName       = "screen.header.app_name"
	RoleTagline       = "screen.header.tagline"
	RoleSearchRow     = "screen.header.search"
	RoleSearchInput   = "screen.header.search.input"
	RoleSearchButton  = "screen.header.search.button"
	RoleScroll        = "screen.scroll"
	RoleTrailing      = "screen.scroll.trailing"
	RoleNav           = "screen.nav"
	RoleNavLeft       = "screen.nav.left"
	RoleNavCenter     = "screen.nav.center"
	RoleCenterBacking = "screen.nav.center.backing"
	RoleCenterButton  = "screen.nav.center.button"
	RoleNavRight      = "screen.nav.right"
)

// Layers used for painting order.
const (
	LayerContent = 0
	LayerOverlay = 10
)

// Header is the fixed, non-scrolling top section.
type Header struct {
	Greeting          string
	AppName           string
	Tagline           string
	SearchPlaceholder string
	SearchIcon        string
}

// NavSlot is one navigation control. Pressing it is handled elsewhere.
type NavSlot struct {
	Icon  string
	Label string
}

// Nav describes the three slots of the bottom overlay.
type Nav struct {
	Left   NavSlot
	Center NavSlot
	Right  NavSlot
}

// Screen is the composition root. It holds no state beyond its inputs.
type Screen struct {
	Header Header
	Cards  []card.Config
	Nav    Nav
	Theme  theme.Theme
}

// DefaultHeader is the dashboard greeting block.
func DefaultHeader() Header {
	return Header{
		Greeting:          "Hello,",
		AppName:           "MetaFront!",
		Tagline:           "Stay organized with quick access to all your essential lists!",
		SearchPlaceholder: "Search lists",
		SearchIcon:        assets.SearchIcon,
	}
}

// DefaultNav is the notifications / home / profile bar.
func DefaultNav() Nav {
	return Nav{
		Left:   NavSlot{Icon: assets.IconBell, Label: "Notifications"},
		Center: NavSlot{Icon: assets.IconHome},
		Right:  NavSlot{Icon: assets.IconUser, Label: "Profile"},
	}
}

// New returns a screen showing cards in the given order.
func New(cards []card.Config, th theme.Theme) Screen {
	return Screen{
		Header: DefaultHeader(),
		Cards:  cards,
		Nav:    DefaultNav(),
		Theme:  th,
	}
}

// Compose builds the full view tree. Card warnings are collected in card
// order and returned alongside the tree.
func (s Screen) Compose() (*view.Node, []card.Warning) {
	var warnings []card.Warning

	scroll := view.New(view.KindScroll, RoleScroll)
	scroll.Layer = LayerContent
	for _, cfg := range s.Cards {
		node, w := card.Render(cfg, s.Theme)
		scroll.Children = append(scroll.Children, node)
		warnings = append(warnings, w...)
	}
	scroll.Children = append(scroll.Children, &view.Node{
		Kind:  view.KindSpacer,
		Role:  RoleTrailing,
		Style: theme.Style{Height: s.Theme.Metrics.TrailingMargin},
	})

	root := &view.Node{
		Kind:  view.KindBox,
		Role:  RoleRoot,
		Style: theme.Style{Background: s.Theme.Background},
		Children: []*view.Node{
			s.composeHeader(),
			scroll,
			s.composeNav(),
		},
	}
	return root, warnings
}

func (s Screen) composeHeader() *view.Node {
	h := s.Theme.Header
	node := view.New(view.KindBox, RoleHeader,
		&view.Node{Kind: view.KindText, Role: RoleGreeting, Text: s.Header.Greeting, Style: h.Greeting},
		&view.Node{Kind: view.KindText, Role: RoleAppName, Text: s.Header.AppName, Style: h.AppName},
		&view.Node{Kind: view.KindText, Role: RoleTagline, Text: s.Header.Tagline, Style: h.Tagline},
		&view.Node{
			Kind:  view.KindBox,
			Role:  RoleSearchRow,
			Style: h.SearchRow,
			Children: []*view.Node{
				{Kind: view.KindInput, Role: RoleSearchInput, Text: s.Header.SearchPlaceholder, Style: h.SearchInput},
				{Kind: view.KindButton, Role: RoleSearchButton, Asset: s.Header.SearchIcon, Style: h.SearchButton},
			},
		},
	)
	node.Anchor = view.AnchorTop
	node.Layer = LayerContent
	return node
}

func (s Screen) composeNav() *view.Node {
	n := s.Theme.Nav
	m := s.Theme.Metrics

	slot := func(role string, ns NavSlot) *view.Node {
		return &view.Node{
			Kind:  view.KindButton,
			Role:  role,
			Text:  ns.Label,
			Asset: ns.Icon,
			Style: n.Label,
		}
	}

	center := &view.Node{
		Kind: view.KindBox,
		Role: RoleNavCenter,
		Children: []*view.Node{
			{
				Kind:   view.KindBox,
				Role:   RoleCenterBacking,
				Style:  n.CenterBacking,
				Anchor: view.AnchorTop,
				Offset: view.Offset{Y: -m.BackingLift},
				Layer:  0,
			},
			{
				Kind:   view.KindButton,
				Role:   RoleCenterButton,
				Asset:  s.Nav.Center.Icon,
				Text:   s.Nav.Center.Label,
				Style:  n.CenterButton,
				Anchor: view.AnchorTop,
				Offset: view.Offset{Y: -m.ButtonLift},
				Layer:  1,
			},
		},
	}

	return &view.Node{
		Kind:   view.KindOverlay,
		Role:   RoleNav,
		Style:  theme.Merge(n.Bar, theme.Style{Height: m.NavBarHeight}),
		Anchor: view.AnchorBottom,
		Layer:  LayerOverlay,
		Children: []*view.Node{
			slot(RoleNavLeft, s.Nav.Left),
			center,
			slot(RoleNavRight, s.Nav.Right),
		},
	}
}
