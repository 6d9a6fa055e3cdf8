package dashboard

// Slot identifies one control of the bottom navigation overlay.
type Slot int

const (
	SlotNotifications Slot = iota
	SlotHome
	SlotProfile
)

func (s Slot) String() string {
	switch s {
	case SlotNotifications:
		return "notifications"
	case SlotHome:
		return "home"
	case SlotProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// NavPressedMsg reports that a nav control was activated. Routing is up to
// whoever embeds the dashboard.
type NavPressedMsg struct {
	Slot Slot
}

// SearchSubmittedMsg carries the search field contents when enter is
// pressed inside it.
type SearchSubmittedMsg struct {
	Query string
}
