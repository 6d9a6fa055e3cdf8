package dashboard

// View renders the header, the visible slice of the deck and the nav
// overlay as one frame.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.renderer.Compose(m.root, m.frame, m.header, m.viewport.View())
}
