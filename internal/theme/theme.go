package theme

// Field names a card sub-element that a card may override.
type Field string

const (
	FieldTitle         Field = "title"
	FieldDescription   Field = "description"
	FieldProgressLabel Field = "progress_label"
	FieldCountBadge    Field = "count_badge"
	FieldProgressBar   Field = "progress_bar"
	FieldAvatar        Field = "avatar"
	FieldSilhouette    Field = "silhouette"
)

// Fields lists every overridable field in render order.
func Fields() []Field {
	return []Field{
		FieldTitle,
		FieldDescription,
		FieldProgressLabel,
		FieldCountBadge,
		FieldProgressBar,
		FieldAvatar,
		FieldSilhouette,
	}
}

// Valid reports whether f names an overridable field.
func (f Field) Valid() bool {
	for _, known := range Fields() {
		if f == known {
			return true
		}
	}
	return false
}

// CardStyles holds the base style of each card sub-element.
type CardStyles struct {
	Panel         Style
	Title         Style
	Description   Style
	ProgressLabel Style
	CountBadge    Style
	ProgressBar   Style
	Avatar        Style
	Silhouette    Style
}

// HeaderStyles holds the fixed header styles.
type HeaderStyles struct {
	Greeting     Style
	AppName      Style
	Tagline      Style
	SearchRow    Style
	SearchInput  Style
	SearchButton Style
}

// NavStyles holds the bottom overlay styles.
type NavStyles struct {
	Bar           Style
	Icon          Style
	Label         Style
	CenterBacking Style
	CenterButton  Style
}

// Metrics are presentation constants expressed in terminal cells.
type Metrics struct {
	// CardWidthRatio is the card width as a fraction of the viewport width.
	CardWidthRatio float64
	// CardMargin is the blank rows between consecutive cards.
	CardMargin int
	// ProgressBarRatio is the bar width as a fraction of the text column.
	ProgressBarRatio float64
	// TextColumnRatio is the share of the card width reserved for text;
	// the avatar overlay owns the rest.
	TextColumnRatio float64

	NavBarHeight int
	// ButtonLift and BackingLift are how many rows the centre button and
	// its backing circle rise above the nav bar's top edge.
	ButtonLift  int
	BackingLift int
	// TrailingMargin is reserved beneath the last card so the scroll region
	// can move content clear of the raised centre button.
	TrailingMargin int
}

// Theme is the immutable base style sheet handed to every render call.
type Theme struct {
	Name       string
	Background string
	Card       CardStyles
	Header     HeaderStyles
	Nav        NavStyles
	Metrics    Metrics
}

// Base returns the base style for an overridable card field.
func (t Theme) Base(f Field) Style {
	switch f {
	case FieldTitle:
		return t.Card.Title
	case FieldDescription:
		return t.Card.Description
	case FieldProgressLabel:
		return t.Card.ProgressLabel
	case FieldCountBadge:
		return t.Card.CountBadge
	case FieldProgressBar:
		return t.Card.ProgressBar
	case FieldAvatar:
		return t.Card.Avatar
	case FieldSilhouette:
		return t.Card.Silhouette
	default:
		return Style{}
	}
}

// Resolve merges the override registered for f, if any, onto the base style.
// Each field resolves independently of every other field.
func (t Theme) Resolve(f Field, overrides map[Field]Style) Style {
	base := t.Base(f)
	delta, ok := overrides[f]
	if !ok {
		return base
	}
	return Merge(base, delta)
}

// Default returns the light theme used by the dashboard.
func Default() Theme {
	return Theme{
		Name:       "default",
		Background: "#E5F3F9",
		Card: CardStyles{
			Panel: Style{PaddingX: 2, PaddingY: 1},
			Title: Style{
				Foreground: "#0B878C",
				Bold:       Bool(true),
			},
			Description: Style{
				Foreground: "#0B878C",
			},
			ProgressLabel: Style{
				Foreground: "#0B878C",
			},
			CountBadge: Style{
				Foreground: "#FFFFFF",
				Background: "#0B878C",
				PaddingX:   1,
			},
			ProgressBar: Style{
				Foreground: "#0B878C",
				Background: "#FFFFFF",
				Height:     1,
			},
			Avatar: Style{
				Width:  16,
				Height: 7,
				Top:    0,
				Right:  2,
			},
			Silhouette: Style{
				Foreground: "#FFFFFF",
				Faint:      Bool(true),
				Width:      12,
				Height:     4,
				Top:        -1,
				Right:      3,
			},
		},
		Header: HeaderStyles{
			Greeting:     Style{Foreground: "#666666"},
			AppName:      Style{Foreground: "#000000", Bold: Bool(true)},
			Tagline:      Style{Foreground: "#666666"},
			SearchRow:    Style{Background: "#E0F7FA", PaddingX: 1},
			SearchInput:  Style{Foreground: "#333333", Background: "#F5F5F5", Width: 30},
			SearchButton: Style{Foreground: "#FFFFFF", Background: "#00BCD4", PaddingX: 1},
		},
		Nav: NavStyles{
			Bar:           Style{Foreground: "#CCCCCC", Background: "#FFFFFF", PaddingX: 3},
			Icon:          Style{Foreground: "#CCCCCC"},
			Label:         Style{Foreground: "#999999"},
			CenterBacking: Style{Foreground: "#DDDDDD", Background: "#FFFFFF", Width: 9},
			CenterButton:  Style{Foreground: "#FFFFFF", Background: "#00AAFF", Bold: Bool(true), Width: 7, Height: 3},
		},
		Metrics: Metrics{
			CardWidthRatio:   0.9,
			CardMargin:       1,
			ProgressBarRatio: 0.5,
			TextColumnRatio:  0.6,
			NavBarHeight:     3,
			ButtonLift:       1,
			BackingLift:      2,
			TrailingMargin:   3,
		},
	}
}

// Dark returns a dark variant with the same metrics.
func Dark() Theme {
	t := Default()
	t.Name = "dark"
	t.Background = "#0B1120"
	t.Header.Greeting.Foreground = "#94A3B8"
	t.Header.AppName.Foreground = "#F8FAFC"
	t.Header.Tagline.Foreground = "#94A3B8"
	t.Header.SearchRow.Background = "#1F2937"
	t.Header.SearchInput = Merge(t.Header.SearchInput, Style{Foreground: "#E5E7EB", Background: "#111827"})
	t.Nav.Bar = Merge(t.Nav.Bar, Style{Background: "#111827", Foreground: "#64748B"})
	t.Nav.CenterBacking = Merge(t.Nav.CenterBacking, Style{Background: "#111827", Foreground: "#334155"})
	return t
}

// ByName returns the named theme; unknown names fall back to Default.
func ByName(name string) (Theme, bool) {
	switch name {
	case "", "default", "light":
		return Default(), true
	case "dark":
		return Dark(), true
	default:
		return Default(), false
	}
}
