// Package config loads card decks from YAML and binds CLI settings to
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/metafront/internal/card"
	apperrors "github.com/alexisbeaulieu97/metafront/pkg/errors"
)

// DeckVersion is the only deck file schema version understood.
const DeckVersion = "1"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DeckFile is the on-disk shape of a deck.
type DeckFile struct {
	Version string        `yaml:"version"`
	Theme   string        `yaml:"theme,omitempty"`
	Cards   []card.Config `yaml:"cards"`
}

// Deck is a validated deck ready for composition.
type Deck struct {
	Theme string
	Cards []card.Config
}

// ParseDeck loads a deck file from disk. Decoding failures are reported as
// *errors.ParseError, contract violations as *errors.ValidationError with
// the offending card's index in the field path.
func ParseDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return DecodeDeck(path, data)
}

// DecodeDeck decodes and validates deck YAML. path is used for error
// reporting only.
func DecodeDeck(path string, data []byte) (*Deck, error) {
	var file DeckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	if file.Version != DeckVersion {
		return nil, apperrors.NewValidationError("version",
			fmt.Sprintf("unsupported deck version %q, want %q", file.Version, DeckVersion), nil)
	}
	if len(file.Cards) == 0 {
		return nil, apperrors.NewValidationError("cards", "must contain at least one card", nil)
	}

	deck := &Deck{Theme: file.Theme, Cards: make([]card.Config, 0, len(file.Cards))}
	seen := make(map[string]int, len(file.Cards))
	for i, raw := range file.Cards {
		cfg, err := card.New(raw)
		if err != nil {
			return nil, indexed(i, err)
		}
		if first, dup := seen[cfg.ID]; dup {
			return nil, apperrors.NewValidationError(fmt.Sprintf("cards[%d].id", i),
				fmt.Sprintf("duplicate id %q, first used by cards[%d]", cfg.ID, first), nil)
		}
		seen[cfg.ID] = i
		deck.Cards = append(deck.Cards, cfg)
	}
	return deck, nil
}

// indexed prefixes a card validation error's field path with its position.
func indexed(i int, err error) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return apperrors.NewValidationError(fmt.Sprintf("cards[%d].%s", i, verr.Field), verr.Message, verr.Err)
	}
	return fmt.Errorf("cards[%d]: %w", i, err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
