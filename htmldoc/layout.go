package htmldoc

import (
	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/fonts"
	"golang.org/x/net/html/atom"
)

// Blocks with paragraph spacing above and below.
var spaced = map[atom.Atom]bool{
	atom.P: true, atom.Pre: true, atom.Blockquote: true, atom.Table: true,
	atom.Ul: true, atom.Ol: true, atom.Dl: true, atom.Figure: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// Blocks whose content is indented, in body-font space widths.
var indents = map[atom.Atom]float64{
	atom.Ul: 4, atom.Ol: 4, atom.Dd: 4, atom.Blockquote: 4,
}

type flow struct {
	d *Document
	f Fonts

	left, right float64
	x, y        float64

	line        []int32
	lineH       float64
	lineAscent  float64
	atLineStart bool

	pending float64
	lines   int

	space  float64 // body space width
	bodyH  float64 // body line height
	spacer float64 // paragraph gap
}

// Render lays the document out at the given width and returns its
// height. Every call starts a new generation.
func (d *Document) Render(width float64) float64 {
	d.gen++
	d.width = width
	for i := range d.nodes {
		d.nodes[i].rect = dom.Rect{}
		d.nodes[i].baseline = 0
	}
	if len(d.nodes) == 0 {
		d.height = 0
		return 0
	}

	m := d.cfg.margin
	body := d.cfg.fonts.Font(fonts.Desc{Size: d.cfg.baseSize})
	l := &flow{
		d:           d,
		f:           d.cfg.fonts,
		left:        m,
		right:       max(width-m, m),
		x:           m,
		y:           m,
		atLineStart: true,
		space:       d.cfg.fonts.Measure(" ", body),
		bodyH:       d.cfg.fonts.Metrics(body).Height,
	}
	l.spacer = l.bodyH * d.cfg.paraSpace

	l.walk(0)
	l.flush()
	d.unionInlines()

	d.height = l.y + m
	d.nodes[0].rect = dom.Rect{X: 0, Y: 0, Width: width, Height: d.height}
	d.cfg.logf("htmldoc: generation %d: %d nodes, %d lines, %.0fx%.0f", d.gen, len(d.nodes), l.lines, width, d.height)
	return d.height
}

func (l *flow) walk(id int32) {
	n := &l.d.nodes[id]
	switch {
	case n.isText:
		l.text(id)
	case n.tag == atom.Br:
		l.newline()
	case blocks[n.tag] && id != 0:
		l.block(id)
	default:
		if n.tag == atom.Td || n.tag == atom.Th {
			l.cellGap()
		}
		for _, c := range n.children {
			l.walk(c)
		}
	}
}

func (l *flow) block(id int32) {
	n := &l.d.nodes[id]
	l.flush()

	gap := 0.0
	if spaced[n.tag] {
		gap = l.spacer
	}
	l.y += max(l.pending, gap)
	l.pending = 0

	left, top := l.left, l.y
	l.left += indents[n.tag] * l.space
	l.x = l.left
	for _, c := range n.children {
		l.walk(c)
	}
	l.flush()

	n = &l.d.nodes[id]
	n.rect = dom.Rect{X: left, Y: top, Width: l.right - left, Height: l.y - top}
	l.left = left
	l.x = left
	l.pending = gap
}

func (l *flow) text(id int32) {
	n := &l.d.nodes[id]
	f := l.d.nodes[n.parent].font

	switch {
	case n.text == "\n":
		l.place(id, 0, f)
		l.atLineStart = true
		l.flush()
	case n.text == " " && !n.pre:
		w := 0.0
		if !l.atLineStart {
			w = l.f.Measure(" ", f)
		}
		l.place(id, w, f)
		l.atLineStart = true
	default:
		w := l.f.Measure(n.text, f)
		if !n.pre && len(l.line) > 0 && l.x+w > l.right {
			l.flush()
		}
		l.place(id, w, f)
		l.atLineStart = false
	}
}

func (l *flow) place(id int32, w float64, f dom.FontHandle) {
	m := l.f.Metrics(f)
	n := &l.d.nodes[id]
	n.rect = dom.Rect{X: l.x, Width: w}
	l.x += w
	l.lineH = max(l.lineH, m.Height)
	l.lineAscent = max(l.lineAscent, m.Ascent)
	l.line = append(l.line, id)
}

func (l *flow) cellGap() {
	if len(l.line) > 0 {
		l.x += l.space
	}
}

// newline ends the current line. On an empty line it still advances by
// one body line.
func (l *flow) newline() {
	if len(l.line) == 0 {
		l.y += l.bodyH
		return
	}
	l.flush()
}

// flush gives every leaf on the current line the line's top and height
// and starts a new line.
func (l *flow) flush() {
	if len(l.line) > 0 {
		for _, id := range l.line {
			n := &l.d.nodes[id]
			n.rect.Y = l.y
			n.rect.Height = l.lineH
			n.baseline = l.y + l.lineAscent
		}
		l.y += l.lineH
		l.lines++
	}
	l.line = l.line[:0]
	l.lineH, l.lineAscent = 0, 0
	l.x = l.left
	l.atLineStart = true
}

// unionInlines sizes inline elements to cover their children. Children
// always follow their parent in the arena, so a reverse sweep sees every
// child first.
func (d *Document) unionInlines() {
	for i := len(d.nodes) - 1; i > 0; i-- {
		n := &d.nodes[i]
		if n.isText || !isInline(n.tag) {
			continue
		}
		var r dom.Rect
		for _, c := range n.children {
			r = r.Union(d.nodes[c].rect)
		}
		n.rect = r
	}
}
