package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard bindings. Scrolling keys not listed here are
// handled by the viewport's own key map.
type KeyMap struct {
	Quit          key.Binding
	Search        key.Binding
	Blur          key.Binding
	Submit        key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Notifications key.Binding
	Home          key.Binding
	Profile       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "enter"),
			key.WithHelp("h", "home"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
	}
}
