package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/config"
	"github.com/alexisbeaulieu97/metafront/internal/logger"
	"github.com/alexisbeaulieu97/metafront/internal/screen"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
)

// newLogger builds the command logger. The interactive dashboard owns the
// terminal, so without --log-file it logs nowhere.
func newLogger(flags *rootFlags, stderr io.Writer, interactive bool) (*logger.Logger, func(), error) {
	noop := func() {}

	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: f, Component: "metafront"})
		if err != nil {
			_ = f.Close()
			return nil, noop, fmt.Errorf("create logger: %w", err)
		}
		return log, func() { _ = f.Close() }, nil
	}

	if interactive {
		return logger.Nop(), noop, nil
	}

	log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true, Writer: stderr})
	if err != nil {
		return nil, noop, fmt.Errorf("create logger: %w", err)
	}
	return log, noop, nil
}

// loadScreen resolves the theme and deck the flags ask for. An explicit
// --theme beats a theme named in the deck file.
func loadScreen(flags *rootFlags, log *logger.Logger) (screen.Screen, error) {
	cards := card.Deck()
	themeName := flags.theme

	if flags.deck != "" {
		deck, err := config.ParseDeck(flags.deck)
		if err != nil {
			return screen.Screen{}, fmt.Errorf("load deck: %w", err)
		}
		cards = deck.Cards
		if themeName == "" {
			themeName = deck.Theme
		}
		log.WithFields(map[string]any{"path": flags.deck, "cards": len(cards)}).Debug("deck loaded")
	}

	th, ok := theme.ByName(themeName)
	if !ok {
		log.WithFields(map[string]any{"theme": themeName}).Warn("unknown theme, using default")
	}
	return screen.New(cards, th), nil
}
