// Package textseltest contains utility functions that help with testing
// the selection engine and its document back ends.
package textseltest

import (
	"unicode/utf8"

	"github.com/rjkroege/textsel/dom"
)

var (
	_ = dom.Element((*Node)(nil))
	_ = dom.Document((*Doc)(nil))
)

// Node is a hand-placed element. Text leaves have no children.
type Node struct {
	Name string

	text     string
	isText   bool
	rect     dom.Rect
	font     dom.FontHandle
	parent   *Node
	children []*Node
}

// Text returns a text leaf with the given placement.
func Text(s string, r dom.Rect) *Node {
	return &Node{Name: "#text", text: s, isText: true, rect: r}
}

// Box returns a container element holding children.
func Box(name string, r dom.Rect, children ...*Node) *Node {
	n := &Node{Name: name, rect: r}
	return n.Add(children...)
}

// Add appends children to n and points their parent at n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// WithFont sets the node's font handle.
func (n *Node) WithFont(f dom.FontHandle) *Node {
	n.font = f
	return n
}

// Reparent points n's parent at p without registering n as a child of p.
// It builds the malformed trees that the bounded walks must survive.
func (n *Node) Reparent(p *Node) {
	n.parent = p
}

// Line lays words out left to right starting at (x, y), each adv pixels
// per code point wide and h tall.
func Line(x, y, h, adv float64, words ...string) []*Node {
	out := make([]*Node, 0, len(words))
	for _, w := range words {
		wid := adv * float64(utf8.RuneCountInString(w))
		out = append(out, Text(w, dom.Rect{X: x, Y: y, Width: wid, Height: h}))
		x += wid
	}
	return out
}

func (n *Node) IsText() bool            { return n.isText }
func (n *Node) Text() string            { return n.text }
func (n *Node) Placement() dom.Rect     { return n.rect }
func (n *Node) Font() dom.FontHandle    { return n.font }
func (n *Node) ChildCount() int         { return len(n.children) }
func (n *Node) SetPlacement(r dom.Rect) { n.rect = r }
func (n *Node) Children() []*Node       { return n.children }
func (n *Node) String() string          { return n.Name + "(" + n.text + ")" }

func (n *Node) Parent() dom.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Child(i int) dom.Element {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Doc is a dom.Document over a hand-built tree. Hit, when set, replaces
// the placement search.
type Doc struct {
	Root *Node
	Gen  uint64
	Hit  func(pt dom.Point) *Node

	Lookups int
}

// NewDoc returns a Doc rooted at root.
func NewDoc(root *Node) *Doc {
	return &Doc{Root: root, Gen: 1}
}

func (d *Doc) Generation() uint64 { return d.Gen }

// ElementAt returns the deepest node whose placement contains pt.
func (d *Doc) ElementAt(pt, client dom.Point) dom.Element {
	d.Lookups++
	var n *Node
	if d.Hit != nil {
		n = d.Hit(pt)
	} else {
		n = deepest(d.Root, pt)
	}
	if n == nil {
		return nil
	}
	return n
}

func deepest(n *Node, pt dom.Point) *Node {
	if n == nil || !n.rect.Contains(pt) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := deepest(n.children[i], pt); hit != nil {
			return hit
		}
	}
	return n
}
