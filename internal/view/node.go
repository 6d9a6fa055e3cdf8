// Package view defines the framework-neutral view tree produced by the card
// and screen builders. Renderers walk the tree; tests inspect it directly.
package view

import "github.com/alexisbeaulieu97/metafront/internal/theme"

// Kind identifies what a node draws.
type Kind int

const (
	KindBox Kind = iota
	KindText
	KindGradient
	KindBadge
	KindProgress
	KindImage
	KindInput
	KindButton
	KindScroll
	KindOverlay
	KindSpacer
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	case KindGradient:
		return "gradient"
	case KindBadge:
		return "badge"
	case KindProgress:
		return "progress"
	case KindImage:
		return "image"
	case KindInput:
		return "input"
	case KindButton:
		return "button"
	case KindScroll:
		return "scroll"
	case KindOverlay:
		return "overlay"
	case KindSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Anchor pins an absolutely positioned node to an edge of its parent.
type Anchor int

const (
	// AnchorFlow places the node in normal document flow.
	AnchorFlow Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorBottom
)

// Offset moves an anchored node relative to its anchor, in cells.
// Negative Y moves up, positive X moves right.
type Offset struct {
	X int
	Y int
}

// Node is one element of a view tree.
type Node struct {
	Kind Kind
	// Role is a dotted, stable identifier such as "card.title".
	Role  string
	Text  string
	Style theme.Style
	// Colors holds gradient stops for KindGradient.
	Colors []string
	// Fraction is the filled share of a KindProgress node, always in [0,1].
	Fraction float64
	// Asset is the image handle for KindImage and icon-bearing buttons.
	Asset  string
	Anchor Anchor
	Offset Offset
	// Layer orders siblings for painting; higher layers paint later.
	Layer    int
	Children []*Node
}

// New returns a node of the given kind and role.
func New(kind Kind, role string, children ...*Node) *Node {
	return &Node{Kind: kind, Role: role, Children: children}
}

// Find returns the first node in depth-first order whose role matches.
func (n *Node) Find(role string) *Node {
	if n == nil {
		return nil
	}
	if n.Role == role {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(role); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node of the given kind in depth-first order.
func (n *Node) FindAll(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(node *Node) {
		if node.Kind == kind {
			out = append(out, node)
		}
	})
	return out
}

// Walk visits n and its descendants depth-first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Painted returns children sorted by layer, preserving composition order
// inside a layer.
func (n *Node) Painted() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, len(n.Children))
	copy(out, n.Children)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Layer < out[j-1].Layer; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
