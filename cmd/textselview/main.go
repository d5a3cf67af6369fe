// Command textselview shows an HTML or Markdown file in the terminal and
// lets the mouse select text in it.
//
// Usage:
//
//	textselview [-v] <file.html|file.md>
//
// Drag with the left button to select. The wheel, arrow keys, PgUp, PgDn,
// Home and End scroll; dragging against the top or bottom row scrolls
// too. Esc or q quits and prints the selection.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/fonts"
	"github.com/rjkroege/textsel/htmldoc"
	"github.com/rjkroege/textsel/internal/ui"
	"github.com/rjkroege/textsel/selection"
)

// tick paces auto-scrolling while a drag is held near an edge.
const tick = 50 * time.Millisecond

var verbose = flag.Bool("v", false, "log layout diagnostics to stderr")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: textselview [-v] <file.html|file.md>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	doc, err := load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "textselview: %v\n", err)
		os.Exit(1)
	}
	text, err := view(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textselview: %v\n", err)
		os.Exit(1)
	}
	if text != "" {
		fmt.Printf("Selected: %s\n", text)
	}
}

// load parses path as a document whose units are terminal cells.
func load(path string) (*htmldoc.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := []htmldoc.Option{
		htmldoc.WithFonts(fonts.Monospace{Advance: 1, Height: 1}),
		htmldoc.WithMargin(0),
		htmldoc.WithParagraphSpacing(1),
	}
	if *verbose {
		opts = append(opts, htmldoc.WithLogger(log.Default()))
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".md" || ext == ".markdown" {
		return htmldoc.FromMarkdown(src, opts...)
	}
	return htmldoc.Parse(bytes.NewReader(src), opts...)
}

func view(doc *htmldoc.Document) (string, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return "", err
	}
	if err := s.Init(); err != nil {
		return "", err
	}
	s.EnableMouse()

	v := newViewer(s, doc)
	t := time.NewTicker(tick)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				s.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	v.draw()
	for {
		ev := s.PollEvent()
		if ev == nil || v.handle(ev) {
			break
		}
		v.draw()
	}
	t.Stop()
	close(done)
	s.Fini()

	text, _ := v.sel.SelectedText()
	return text, nil
}

type viewer struct {
	screen tcell.Screen
	doc    *htmldoc.Document
	sel    *selection.Selection
	drag   *ui.Drag
	auto   ui.AutoScroller
	width  int
	scroll float64
	mx, my int // last pointer cell with the button down
}

func newViewer(s tcell.Screen, doc *htmldoc.Document) *viewer {
	v := &viewer{
		screen: s,
		doc:    doc,
		auto:   ui.AutoScroller{Edge: 2, Max: 1},
	}
	v.sel = selection.New(doc, doc.Fonts())
	v.drag = ui.NewDrag(v.sel)
	v.drag.Threshold = 1
	v.relayout()
	return v
}

// relayout lays the document out again if the screen width changed.
// That drops any selection.
func (v *viewer) relayout() {
	w, _ := v.screen.Size()
	if w == v.width {
		return
	}
	v.width = w
	h := v.doc.Render(float64(w))
	log.Printf("textselview: %d columns, %.0f rows", w, h)
	v.scrollBy(0)
}

func (v *viewer) rows() int {
	_, h := v.screen.Size()
	return h
}

func (v *viewer) scrollBy(n float64) {
	v.scroll = ui.ClampScroll(v.scroll+n, v.doc.Height(), float64(v.rows()))
}

// point returns the document and viewport points for screen cell x, y.
// The x coordinate is the cell's left edge so that pressing on a cell
// puts the boundary before its character.
func (v *viewer) point(x, y int) (pt, client dom.Point) {
	client = dom.Pt(float64(x), float64(y))
	return dom.Pt(float64(x), float64(y)+0.5+v.scroll), client
}

// handle applies ev and reports whether the viewer should quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.relayout()
	case *tcell.EventKey:
		return v.key(ev)
	case *tcell.EventMouse:
		v.mouse(ev)
	case *tcell.EventInterrupt:
		v.autoScroll()
	}
	return false
}

func (v *viewer) key(ev *tcell.EventKey) bool {
	page := float64(max(v.rows()-1, 1))
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	case tcell.KeyUp:
		v.scrollBy(-1)
	case tcell.KeyDown:
		v.scrollBy(1)
	case tcell.KeyPgUp:
		v.scrollBy(-page)
	case tcell.KeyPgDn:
		v.scrollBy(page)
	case tcell.KeyHome:
		v.scrollBy(-v.scroll)
	case tcell.KeyEnd:
		v.scrollBy(v.doc.Height())
	}
	return false
}

func (v *viewer) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	b := ev.Buttons()
	switch {
	case b&tcell.WheelUp != 0:
		v.scrollBy(-float64(ui.WheelLines(v.rows())))
	case b&tcell.WheelDown != 0:
		v.scrollBy(float64(ui.WheelLines(v.rows())))
	case b&tcell.Button1 != 0:
		pt, client := v.point(x, y)
		if v.drag.Pressed() {
			v.drag.Move(pt, client)
		} else {
			v.drag.Press(pt, client)
		}
		v.mx, v.my = x, y
	case v.drag.Pressed():
		v.drag.Release()
	}
}

// autoScroll scrolls while an active drag sits in an edge zone and
// extends the selection to the pointer's new document position.
func (v *viewer) autoScroll() {
	if !v.drag.Active() {
		return
	}
	n := v.auto.Speed(float64(v.my), float64(v.rows()))
	if n == 0 {
		return
	}
	before := v.scroll
	v.scrollBy(n)
	if v.scroll == before {
		return
	}
	v.sel.ExtendTo(v.point(v.mx, v.my))
}

func (v *viewer) draw() {
	v.screen.Clear()
	rows := v.rows()
	top := int(v.scroll)
	for _, run := range v.doc.TextRuns() {
		y := int(run.Rect.Y) - top
		if y < 0 || y >= rows {
			continue
		}
		x := int(run.Rect.X)
		for _, r := range run.Text {
			v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}

	for _, r := range v.sel.Rectangles() {
		y0, y1 := int(math.Floor(r.Y))-top, int(math.Ceil(r.Y+r.Height))-top
		x0, x1 := int(math.Floor(r.X)), int(math.Ceil(r.X+r.Width))
		for y := max(y0, 0); y < min(y1, rows); y++ {
			for x := max(x0, 0); x < min(x1, v.width); x++ {
				c, comb, style, _ := v.screen.GetContent(x, y)
				v.screen.SetContent(x, y, c, comb, style.Reverse(true))
			}
		}
	}
	v.screen.Show()
}
