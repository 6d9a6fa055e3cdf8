package dashboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func navCmd(slot Slot) tea.Cmd {
	return func() tea.Msg {
		return NavPressedMsg{Slot: slot}
	}
}

func searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return SearchSubmittedMsg{Query: query}
	}
}

// Run starts the dashboard on the alternate screen and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
