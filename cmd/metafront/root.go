package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/metafront/internal/config"
	"github.com/alexisbeaulieu97/metafront/internal/tui/dashboard"
)

type rootFlags struct {
	configFile string
	logLevel   string
	logFile    string
	deck       string
	theme      string
	ascii      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "metafront",
		Short:         "MetaFront shows your lists as a scrollable dashboard of progress cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(flags.configFile)
			if err != nil {
				return err
			}
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			if !isTerminal(os.Stdout) {
				return runRender(cmd, flags, renderFlags{})
			}
			return runDashboard(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Config file (default is .metafront.yaml in $HOME or the working directory)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.StringVar(&flags.deck, "deck", "", "Load cards from a YAML deck file instead of the built-in deck")
	pf.StringVar(&flags.theme, "theme", "", "Theme name (default, dark)")
	pf.BoolVar(&flags.ascii, "ascii", false, "Draw with plain ASCII instead of box-drawing glyphs")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCardsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	log, closeLog, err := newLogger(flags, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer closeLog()

	scr, err := loadScreen(flags, log)
	if err != nil {
		return err
	}

	width, height, _ := term.GetSize(int(os.Stdout.Fd()))
	m := dashboard.NewModel(scr, dashboard.Options{
		Logger: log,
		ASCII:  flags.ascii,
		Width:  width,
		Height: height,
	})

	log.Info("dashboard starting")
	if err := dashboard.Run(cmd.Context(), m); err != nil {
		log.Error(err, "dashboard execution failed")
		return err
	}
	log.Info("dashboard exited")
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
