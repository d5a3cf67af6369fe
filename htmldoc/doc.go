// Package htmldoc is a small laid-out document built from HTML or
// Markdown. It implements dom.Document so that selections can be made
// over real markup.
//
// Nodes live in an arena owned by the Document. Elements handed out are
// (document, index, generation) values: every Render starts a new
// generation and elements from an older one go inert.
package htmldoc

import (
	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/fonts"
	"golang.org/x/net/html/atom"
)

// Fonts picks and measures fonts for layout.
type Fonts interface {
	Font(d fonts.Desc) dom.FontHandle
	Measure(text string, h dom.FontHandle) float64
	Metrics(h dom.FontHandle) fonts.Metrics
}

var (
	_ = dom.Document((*Document)(nil))
	_ = dom.Element(Element{})
)

type node struct {
	name     string
	tag      atom.Atom
	text     string
	isText   bool
	pre      bool
	parent   int32
	children []int32

	desc fonts.Desc
	font dom.FontHandle

	rect     dom.Rect
	baseline float64
}

// Document is a parsed HTML tree with the placement of its last Render.
type Document struct {
	cfg   config
	nodes []node
	gen   uint64

	width  float64
	height float64
}

// Root returns the root element, or nil for an empty document.
func (d *Document) Root() dom.Element {
	if len(d.nodes) == 0 {
		return nil
	}
	return d.element(0)
}

func (d *Document) element(id int32) Element {
	return Element{d: d, id: id, gen: d.gen}
}

// Width and Height are the extent of the last Render.
func (d *Document) Width() float64  { return d.width }
func (d *Document) Height() float64 { return d.height }

func (d *Document) Generation() uint64 { return d.gen }

// Fonts returns the back end the document is laid out with. It measures
// text exactly as layout did.
func (d *Document) Fonts() Fonts { return d.cfg.fonts }

// ElementAt returns the deepest element containing pt. Later siblings
// are searched first, matching paint order. Points inside the document
// that hit nothing else return the root; points outside return nil.
func (d *Document) ElementAt(pt, _ dom.Point) dom.Element {
	if len(d.nodes) == 0 || !d.nodes[0].rect.Contains(pt) {
		return nil
	}
	return d.element(d.deepest(0, pt, 0))
}

func (d *Document) deepest(id int32, pt dom.Point, depth int) int32 {
	if depth >= maxDepth {
		return id
	}
	ch := d.nodes[id].children
	for i := len(ch) - 1; i >= 0; i-- {
		c := ch[i]
		if d.nodes[c].rect.Contains(pt) {
			return d.deepest(c, pt, depth+1)
		}
		// Inline boxes are the union of their children, so a miss on
		// the box is a miss on everything below it. Blocks may have
		// children that overflow them.
		if !d.nodes[c].isText && !isInline(d.nodes[c].tag) {
			if hit := d.deepest(c, pt, depth+1); hit != c {
				return hit
			}
		}
	}
	return id
}

// TextRun is a text leaf as a painter needs it.
type TextRun struct {
	Element  Element
	Text     string
	Font     dom.FontHandle
	Rect     dom.Rect
	Baseline float64
}

// TextRuns returns every non-blank text leaf in document order with its
// resolved font.
func (d *Document) TextRuns() []TextRun {
	var runs []TextRun
	for i := range d.nodes {
		n := &d.nodes[i]
		if !n.isText || n.rect.Empty() || blank(n.text) {
			continue
		}
		runs = append(runs, TextRun{
			Element:  d.element(int32(i)),
			Text:     n.text,
			Font:     d.nodes[n.parent].font,
			Rect:     n.rect,
			Baseline: n.baseline,
		})
	}
	return runs
}

// Element is a handle on one node of a Document. It is comparable, and
// two handles are equal when they name the same node in the same
// generation. A handle from an older generation has no text, placement,
// parent or children.
type Element struct {
	d   *Document
	id  int32
	gen uint64
}

func (e Element) node() *node {
	if e.d == nil || e.gen != e.d.gen || e.id < 0 || int(e.id) >= len(e.d.nodes) {
		return nil
	}
	return &e.d.nodes[e.id]
}

// Valid reports whether e belongs to its document's current layout.
func (e Element) Valid() bool { return e.node() != nil }

// Tag returns the element's tag name, or "#text" for text leaves.
func (e Element) Tag() string {
	if n := e.node(); n != nil {
		return n.name
	}
	return ""
}

func (e Element) IsText() bool {
	n := e.node()
	return n != nil && n.isText
}

func (e Element) Text() string {
	if n := e.node(); n != nil && n.isText {
		return n.text
	}
	return ""
}

func (e Element) Placement() dom.Rect {
	if n := e.node(); n != nil {
		return n.rect
	}
	return dom.Rect{}
}

// Font returns the element's font. Text leaves inherit theirs and report
// dom.NoFont.
func (e Element) Font() dom.FontHandle {
	if n := e.node(); n != nil && !n.isText {
		return n.font
	}
	return dom.NoFont
}

func (e Element) Parent() dom.Element {
	n := e.node()
	if n == nil || n.parent < 0 {
		return nil
	}
	return e.d.element(n.parent)
}

func (e Element) ChildCount() int {
	if n := e.node(); n != nil {
		return len(n.children)
	}
	return 0
}

func (e Element) Child(i int) dom.Element {
	n := e.node()
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return e.d.element(n.children[i])
}

func (e Element) String() string {
	n := e.node()
	switch {
	case n == nil:
		return "<stale>"
	case n.isText:
		return "#text(" + n.text + ")"
	}
	return "<" + n.name + ">"
}
