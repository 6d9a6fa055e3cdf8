// Package assets resolves opaque image handles to terminal glyph art.
package assets

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/metafront/pkg/errors"
)

// Handles referenced by the built-in deck and screen.
const (
	AvatarDefault = "images/avator1.png"
	Silhouette    = "images/Vector.png"
	SearchIcon    = "https://cdn-icons-png.flaticon.com/512/70/70115.png"
	IconBell      = "icon:bell"
	IconHome      = "icon:home"
	IconUser      = "icon:user"
)

// Art is resolved glyph art. Spaces are transparent when composited.
type Art struct {
	Handle      string
	Lines       []string
	Placeholder bool
}

// Width returns the widest line in cells.
func (a Art) Width() int {
	width := 0
	for _, line := range a.Lines {
		if w := len([]rune(line)); w > width {
			width = w
		}
	}
	return width
}

// String joins the art lines.
func (a Art) String() string {
	return strings.Join(a.Lines, "\n")
}

// Resolver maps handles to art. Resolution failure is reported as an error
// alongside a usable placeholder, never as a missing value.
type Resolver interface {
	Resolve(handle string) (Art, error)
}

// Catalog is an in-memory Resolver.
type Catalog struct {
	entries     map[string][]string
	placeholder []string
}

// NewCatalog returns a catalog preloaded with the dashboard's artwork.
// With unicode disabled every entry falls back to plain ASCII.
func NewCatalog(unicode bool) *Catalog {
	c := &Catalog{entries: make(map[string][]string)}
	if unicode {
		c.placeholder = []string{"▢"}
		c.Register(AvatarDefault,
			"   ▄▄▄▄   ",
			"  ▐•ᴗ•▌   ",
			"   ▀██▀   ",
			"  ▟████▙  ",
			" ▐██████▌ ",
			"  ██  ██  ",
			"  ▀▀  ▀▀  ",
		)
		c.Register(Silhouette,
			"  ░░░░░░   ",
			" ░░░░░░░░░ ",
			"░░░░░░░░░░░",
			" ░░░░░░░░  ",
		)
		c.Register(SearchIcon, "⌕")
		c.Register(IconBell, "♪")
		c.Register(IconHome, "⌂")
		c.Register(IconUser, "☺")
		return c
	}

	c.placeholder = []string{"?"}
	c.Register(AvatarDefault,
		"   ____   ",
		"  ( ^^ )  ",
		"   \\__/   ",
		"  /|  |\\  ",
		" / |  | \\ ",
		"   |  |   ",
		"   '  '   ",
	)
	c.Register(Silhouette,
		"  ......   ",
		" ......... ",
		"...........",
		" ........  ",
	)
	c.Register(SearchIcon, "o-")
	c.Register(IconBell, "!")
	c.Register(IconHome, "H")
	c.Register(IconUser, "@")
	return c
}

// Register adds or replaces the art for a handle.
func (c *Catalog) Register(handle string, lines ...string) {
	stored := make([]string, len(lines))
	copy(stored, lines)
	c.entries[handle] = stored
}

// Resolve returns the art for handle. Unknown handles yield the placeholder
// together with an *errors.AssetError.
func (c *Catalog) Resolve(handle string) (Art, error) {
	if lines, ok := c.entries[handle]; ok {
		return Art{Handle: handle, Lines: lines}, nil
	}
	art := Art{Handle: handle, Lines: c.placeholder, Placeholder: true}
	return art, apperrors.NewAssetError(handle, fmt.Errorf("handle not in catalog"))
}
