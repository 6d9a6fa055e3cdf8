package card

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/metafront/internal/assets"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

// Roles of the nodes a rendered card contains.
const (
	RoleCard          = "card"
	RoleText          = "card.text"
	RoleTitle         = "card.title"
	RoleDescription   = "card.description"
	RoleCountBadge    = "card.count_badge"
	RoleProgressBar   = "card.progress_bar"
	RoleProgressLabel = "card.progress_label"
	RoleAvatar        = "card.avatar"
	RoleSilhouette    = "card.avatar.silhouette"
	RoleForeground    = "card.avatar.foreground"
)

// Warning is a recoverable render-time problem. It never stops rendering.
type Warning struct {
	Card    string
	Field   string
	Value   float64
	Clamped float64
}

func (w Warning) String() string {
	return fmt.Sprintf("card %q: %s %v clamped to %v", w.Card, w.Field, w.Value, w.Clamped)
}

// ClampRatio forces r into [0,1]. NaN maps to 0. The second result reports
// whether r had to be changed.
func ClampRatio(r float64) (float64, bool) {
	switch {
	case math.IsNaN(r):
		return 0, true
	case r < 0:
		return 0, true
	case r > 1:
		return 1, true
	default:
		return r, false
	}
}

// BadgeText is the count badge label, "{itemsCount} {countLabel}".
func BadgeText(cfg Config) string {
	return fmt.Sprintf("%d %s", cfg.ItemsCount, cfg.CountLabel)
}

// Render maps one card config to its view tree. It has no side effects and
// depends on nothing but its arguments. The progress label is rendered
// verbatim and is never derived from the ratio.
func Render(cfg Config, th theme.Theme) (*view.Node, []Warning) {
	var warnings []Warning

	fraction, clamped := ClampRatio(cfg.ProgressRatio)
	if clamped {
		warnings = append(warnings, Warning{
			Card:    cfg.ID,
			Field:   "progress_ratio",
			Value:   cfg.ProgressRatio,
			Clamped: fraction,
		})
	}

	resolve := func(f theme.Field) theme.Style {
		return th.Resolve(f, cfg.Overrides)
	}

	text := view.New(view.KindBox, RoleText,
		&view.Node{Kind: view.KindText, Role: RoleTitle, Text: cfg.Title, Style: resolve(theme.FieldTitle)},
		&view.Node{Kind: view.KindText, Role: RoleDescription, Text: cfg.Description, Style: resolve(theme.FieldDescription)},
		&view.Node{Kind: view.KindBadge, Role: RoleCountBadge, Text: BadgeText(cfg), Style: resolve(theme.FieldCountBadge)},
		&view.Node{Kind: view.KindProgress, Role: RoleProgressBar, Fraction: fraction, Style: resolve(theme.FieldProgressBar)},
		&view.Node{Kind: view.KindText, Role: RoleProgressLabel, Text: cfg.ProgressLabel, Style: resolve(theme.FieldProgressLabel)},
	)

	silhouetteStyle := resolve(theme.FieldSilhouette)
	avatarStyle := resolve(theme.FieldAvatar)
	avatar := &view.Node{
		Kind:   view.KindBox,
		Role:   RoleAvatar,
		Anchor: view.AnchorTopRight,
		Layer:  1,
		Children: []*view.Node{
			{
				Kind:   view.KindImage,
				Role:   RoleSilhouette,
				Asset:  assets.Silhouette,
				Style:  silhouetteStyle,
				Anchor: view.AnchorTopRight,
				Offset: view.Offset{X: silhouetteStyle.Right, Y: silhouetteStyle.Top},
				Layer:  0,
			},
			{
				Kind:   view.KindImage,
				Role:   RoleForeground,
				Asset:  cfg.Avatar,
				Style:  avatarStyle,
				Anchor: view.AnchorTopRight,
				Offset: view.Offset{X: avatarStyle.Right, Y: avatarStyle.Top},
				Layer:  1,
			},
		},
	}

	root := &view.Node{
		Kind:     view.KindGradient,
		Role:     RoleCard,
		Text:     cfg.ID,
		Style:    th.Card.Panel,
		Colors:   append([]string(nil), cfg.Gradient...),
		Children: []*view.Node{text, avatar},
	}
	return root, warnings
}
