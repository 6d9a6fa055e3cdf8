package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
	apperrors "github.com/alexisbeaulieu97/metafront/pkg/errors"
)

const validDeck = `version: "1"
theme: dark
cards:
  - id: grocery
    title: Grocery List
    description: Add needed items.
    progress_label: Bought 70%
    progress_ratio: 0.7
    avatar: images/avator1.png
    count_label: Items
    items_count: 200
    gradient: ["#9CF4F5", "#BEF8F9"]
    overrides:
      title:
        foreground: "#086378"
      avatar:
        width: 11
        height: 8
  - id: overflow
    title: Overflow
    progress_ratio: 1.4
    avatar: images/avator1.png
    gradient: ["#98FBCC", "#BCFBDC"]
`

func TestParseDeck(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, deck *Deck, err error)
	}{
		{
			name:     "valid deck is parsed in file order",
			contents: validDeck,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.NoError(t, err)
				require.NotNil(t, deck)
				require.Equal(t, "dark", deck.Theme)
				require.Len(t, deck.Cards, 2)
				require.Equal(t, "grocery", deck.Cards[0].ID)
				require.Equal(t, "overflow", deck.Cards[1].ID)
				require.Equal(t, "200 Items", card.BadgeText(deck.Cards[0]))
				require.Equal(t, "#086378", deck.Cards[0].Overrides[theme.FieldTitle].Foreground)
				require.Equal(t, 11, deck.Cards[0].Overrides[theme.FieldAvatar].Width)
			},
		},
		{
			name:     "out of range ratio is accepted for render-time clamping",
			contents: validDeck,
			assert: func(t *testing.T, deck *Deck, err error) {
				require.NoError(t, err)
				_, warnings := card.Render(deck.Cards[1], theme.Default())
				require.Len(t, warnings, 1)
			},
		},
		{
			name:     "malformed yaml returns parse error with line",
			contents: "version: \"1\"\ncards:\n  - id: [oops\n",
			assert: func(t *testing.T, deck *Deck, err error) {
				require.Nil(t, deck)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "type mismatch returns parse error",
			contents: "version: \"1\"\ncards:\n  - id: x\n    items_count: many\n",
			assert: func(t *testing.T, deck *Deck, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 4, parseErr.Line)
			},
		},
		{
			name:     "unknown version is rejected",
			contents: "version: \"2\"\ncards: []\n",
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "empty deck is rejected",
			contents: "version: \"1\"\ncards: []\n",
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "cards", validationErr.Field)
			},
		},
		{
			name: "three gradient colours is a validation error",
			contents: `version: "1"
cards:
  - id: a
    title: A
    avatar: images/avator1.png
    gradient: ["#000000", "#111111", "#222222"]
`,
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "cards[0].gradient", validationErr.Field)
				require.Contains(t, validationErr.Message, "exactly 2")
			},
		},
		{
			name: "missing title reports the card index",
			contents: `version: "1"
cards:
  - id: a
    title: A
    avatar: images/avator1.png
    gradient: ["#000000", "#111111"]
  - id: b
    avatar: images/avator1.png
    gradient: ["#000000", "#111111"]
`,
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "cards[1].title", validationErr.Field)
			},
		},
		{
			name: "unknown override field is rejected",
			contents: `version: "1"
cards:
  - id: a
    title: A
    avatar: images/avator1.png
    gradient: ["#000000", "#111111"]
    overrides:
      shadow:
        foreground: "#000000"
`,
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "shadow")
			},
		},
		{
			name: "duplicate ids are rejected",
			contents: `version: "1"
cards:
  - id: a
    title: A
    avatar: images/avator1.png
    gradient: ["#000000", "#111111"]
  - id: a
    title: Again
    avatar: images/avator1.png
    gradient: ["#000000", "#111111"]
`,
			assert: func(t *testing.T, deck *Deck, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "cards[1].id", validationErr.Field)
				require.Contains(t, validationErr.Message, "cards[0]")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDeck(t, tc.contents)
			deck, err := ParseDeck(path)
			tc.assert(t, deck, err)
		})
	}
}

func TestParseDeckMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDeck(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 12, extractLine(errString("yaml: line 12: did not find expected key")))
	require.Equal(t, 0, extractLine(errString("no position here")))
}

type errString string

func (e errString) Error() string { return string(e) }

func writeTempDeck(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
