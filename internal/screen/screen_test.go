package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/metafront/internal/card"
	"github.com/alexisbeaulieu97/metafront/internal/theme"
	"github.com/alexisbeaulieu97/metafront/internal/view"
)

func TestComposeCardOrderMatchesDeck(t *testing.T) {
	t.Parallel()

	root, warnings := New(card.Deck(), theme.Default()).Compose()
	require.Empty(t, warnings)

	scroll := root.Find(RoleScroll)
	require.NotNil(t, scroll)

	var ids []string
	for _, child := range scroll.Children {
		if child.Role == card.RoleCard {
			ids = append(ids, child.Text)
		}
	}
	assert.Equal(t, []string{
		card.IDGrocery,
		card.IDSpiritualGoals,
		card.IDPersonalGrooming,
		card.IDToDoList,
		card.IDKitchenMenu,
	}, ids)
}

func TestComposeReservesTrailingMargin(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	root, _ := New(card.Deck(), th).Compose()
	scroll := root.Find(RoleScroll)

	last := scroll.Children[len(scroll.Children)-1]
	assert.Equal(t, RoleTrailing, last.Role)
	assert.Equal(t, view.KindSpacer, last.Kind)
	assert.Equal(t, th.Metrics.TrailingMargin, last.Style.Height)
	assert.GreaterOrEqual(t, last.Style.Height, th.Metrics.BackingLift)
}

func TestComposeOverlayAboveContent(t *testing.T) {
	t.Parallel()

	root, _ := New(card.Deck(), theme.Default()).Compose()

	nav := root.Find(RoleNav)
	scroll := root.Find(RoleScroll)
	header := root.Find(RoleHeader)
	require.NotNil(t, nav)

	assert.Equal(t, view.KindOverlay, nav.Kind)
	assert.Equal(t, view.AnchorBottom, nav.Anchor)
	assert.Greater(t, nav.Layer, scroll.Layer)
	assert.Greater(t, nav.Layer, header.Layer)

	painted := root.Painted()
	assert.Equal(t, RoleNav, painted[len(painted)-1].Role, "overlay paints last")
}

func TestComposeNavSlots(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	root, _ := New(card.Deck(), th).Compose()
	nav := root.Find(RoleNav)

	require.Len(t, nav.Children, 3)
	assert.Equal(t, RoleNavLeft, nav.Children[0].Role)
	assert.Equal(t, "Notifications", nav.Children[0].Text)
	assert.Equal(t, RoleNavCenter, nav.Children[1].Role)
	assert.Equal(t, RoleNavRight, nav.Children[2].Role)
	assert.Equal(t, "Profile", nav.Children[2].Text)

	backing := root.Find(RoleCenterBacking)
	button := root.Find(RoleCenterButton)
	assert.Equal(t, -th.Metrics.BackingLift, backing.Offset.Y)
	assert.Equal(t, -th.Metrics.ButtonLift, button.Offset.Y)
	assert.Greater(t, button.Layer, backing.Layer)
}

func TestComposeHeader(t *testing.T) {
	t.Parallel()

	root, _ := New(nil, theme.Default()).Compose()

	assert.Equal(t, "Hello,", root.Find(RoleGreeting).Text)
	assert.Equal(t, "MetaFront!", root.Find(RoleAppName).Text)
	assert.Equal(t, view.KindInput, root.Find(RoleSearchInput).Kind)
	assert.Equal(t, DefaultHeader().SearchIcon, root.Find(RoleSearchButton).Asset)
}

func TestComposeCollectsWarnings(t *testing.T) {
	t.Parallel()

	deck := card.Deck()
	deck[2].ProgressRatio = 1.4

	_, warnings := New(deck, theme.Default()).Compose()
	require.Len(t, warnings, 1)
	assert.Equal(t, card.IDPersonalGrooming, warnings[0].Card)
}

func TestLayoutOverlayPinnedAtAnyOffset(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	s := New(card.Deck(), th)
	size := Size{Width: 80, Height: 40}

	reference := s.Layout(size, 8, 120, 0)
	for _, offset := range []int{-5, 0, 1, 17, 60, 88, 500} {
		frame := s.Layout(size, 8, 120, offset)

		assert.Equal(t, reference.Nav, frame.Nav, "offset %d", offset)
		assert.Equal(t, size.Height, frame.Nav.Bottom(), "offset %d", offset)
		assert.Equal(t, th.Metrics.ButtonLift, frame.Nav.Y-frame.Button.Y, "offset %d", offset)
		assert.Equal(t, th.Metrics.BackingLift, frame.Nav.Y-frame.Backing.Y, "offset %d", offset)
		assert.GreaterOrEqual(t, frame.Offset, 0)
		assert.LessOrEqual(t, frame.Offset, frame.MaxOffset)
	}
}

func TestLayoutRegionsTileViewport(t *testing.T) {
	t.Parallel()

	frame := New(nil, theme.Default()).Layout(Size{Width: 100, Height: 30}, 8, 50, 10)

	assert.Equal(t, 0, frame.Header.Y)
	assert.Equal(t, frame.Header.Bottom(), frame.Scroll.Y)
	assert.Equal(t, frame.Scroll.Bottom(), frame.Nav.Y)
	assert.Equal(t, 30-8-3, frame.Scroll.Height)
	assert.Equal(t, 50-frame.Scroll.Height, frame.MaxOffset)
	assert.Equal(t, 10, frame.Offset)
	assert.Equal(t, (100-7)/2, frame.Button.X)
}

func TestLayoutTinyViewport(t *testing.T) {
	t.Parallel()

	frame := New(nil, theme.Default()).Layout(Size{Width: 10, Height: 2}, 8, 50, 3)

	assert.Equal(t, 2, frame.Nav.Height)
	assert.Equal(t, 0, frame.Nav.Y)
	assert.Equal(t, 0, frame.Header.Height)
	assert.Equal(t, 0, frame.Scroll.Height)
	assert.Equal(t, 2, frame.Nav.Bottom())
}

func TestRect(t *testing.T) {
	t.Parallel()

	r := NewRect(1, 2, -3, 4)
	assert.Equal(t, 0, r.Width)
	assert.Equal(t, 6, r.Bottom())
	assert.Equal(t, "(1,2 0x4)", r.String())
}
