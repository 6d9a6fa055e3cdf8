package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/metafront/internal/card"
)

func newCardsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the cards of the active deck in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := newLogger(root, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer closeLog()

			scr, err := loadScreen(root, log)
			if err != nil {
				return err
			}

			border := lipgloss.RoundedBorder()
			if root.ascii {
				border = lipgloss.ASCIIBorder()
			}

			t := table.New().
				Border(border).
				Headers("#", "ID", "TITLE", "BADGE", "PROGRESS", "LABEL")
			for i, cfg := range scr.Cards {
				ratio, _ := card.ClampRatio(cfg.ProgressRatio)
				t.Row(
					strconv.Itoa(i+1),
					cfg.ID,
					cfg.Title,
					card.BadgeText(cfg),
					fmt.Sprintf("%.0f%%", ratio*100),
					cfg.ProgressLabel,
				)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}

	return cmd
}
