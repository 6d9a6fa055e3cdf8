package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.handleSearchKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.frame.Offset = m.viewport.YOffset
		return m, cmd

	case NavPressedMsg:
		m.log.WithFields(map[string]any{"slot": msg.Slot.String()}).Info("nav control pressed")
		return m, nil

	case SearchSubmittedMsg:
		m.log.WithFields(map[string]any{"query": msg.Query}).Info("search submitted")
		return m, nil
	}

	return m, nil
}

// handleKeys handles keys while the deck has focus
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		m.relayout()
		return m, cmd

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.frame.Offset = m.viewport.YOffset
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.frame.Offset = m.viewport.YOffset
		return m, nil

	case key.Matches(msg, m.keys.Notifications):
		return m, navCmd(SlotNotifications)

	case key.Matches(msg, m.keys.Home):
		return m, navCmd(SlotHome)

	case key.Matches(msg, m.keys.Profile):
		return m, navCmd(SlotProfile)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.frame.Offset = m.viewport.YOffset
	return m, cmd
}

// handleSearchKeys routes keys to the search field until it loses focus
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Blur):
		m.search.Blur()
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		query := m.search.Value()
		m.search.Blur()
		m.relayout()
		return m, searchCmd(query)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.relayout()
	return m, cmd
}
