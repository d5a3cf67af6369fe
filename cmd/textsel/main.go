// Command textsel lays out an HTML or Markdown file, replays a pointer
// drag over it and prints the selected text.
//
// Usage:
//
//	textsel [flags] <file.html|file.md|->
//
// Points are in document pixels. With -png the page is rasterised with
// the selection highlighted.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/draw"
	"github.com/rjkroege/textsel/fonts"
	"github.com/rjkroege/textsel/htmldoc"
	"github.com/rjkroege/textsel/internal/ui"
	"github.com/rjkroege/textsel/pixbuf"
	"github.com/rjkroege/textsel/selection"
	"github.com/sanity-io/litter"
)

type options struct {
	path     string
	width    float64
	from, to dom.Point
	drag     bool
	markdown bool
	fonts    string
	plan9    string
	png      string
	scale    float64
	dump     bool
	verbose  bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsel: %v\n", err)
		os.Exit(2)
	}
	if !opts.verbose {
		log.SetOutput(io.Discard)
	}
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "textsel: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("textsel", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: textsel [flags] <file.html|file.md|->\n")
		fs.PrintDefaults()
	}
	fs.Float64Var(&opts.width, "width", 800, "layout width in pixels")
	from := fs.String("from", "", "drag start `x,y` in document pixels")
	to := fs.String("to", "", "drag end `x,y` in document pixels")
	fs.BoolVar(&opts.markdown, "md", false, "input is Markdown (implied by a .md suffix)")
	fs.StringVar(&opts.fonts, "fonts", "go", "font back end: mono, go, shaped or plan9")
	fs.StringVar(&opts.plan9, "font", os.Getenv("font"), "Plan 9 font file for -fonts plan9")
	fs.StringVar(&opts.png, "png", "", "write the highlighted page to `file`")
	fs.Float64Var(&opts.scale, "scale", 1, "HiDPI factor for -png")
	fs.BoolVar(&opts.dump, "dump", false, "dump endpoints and rectangles")
	fs.BoolVar(&opts.verbose, "v", false, "log layout diagnostics")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errors.New("missing input file")
	}
	opts.path = fs.Arg(0)
	if ext := strings.ToLower(filepath.Ext(opts.path)); ext == ".md" || ext == ".markdown" {
		opts.markdown = true
	}
	if opts.width <= 0 {
		return options{}, fmt.Errorf("bad width %v", opts.width)
	}
	if opts.scale <= 0 {
		return options{}, fmt.Errorf("bad scale %v", opts.scale)
	}

	if (*from == "") != (*to == "") {
		return options{}, errors.New("-from and -to go together")
	}
	if *from != "" {
		var err error
		if opts.from, err = parsePoint(*from); err != nil {
			return options{}, fmt.Errorf("-from: %w", err)
		}
		if opts.to, err = parsePoint(*to); err != nil {
			return options{}, fmt.Errorf("-to: %w", err)
		}
		opts.drag = true
	}
	return opts, nil
}

func parsePoint(s string) (dom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return dom.Point{}, fmt.Errorf("%q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return dom.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return dom.Point{}, err
	}
	return dom.Pt(x, y), nil
}

// backend returns the fonts to lay out with and, when it has them, the
// faces to paint with.
func backend(opts options) (htmldoc.Fonts, pixbuf.Faces, func() error, error) {
	nop := func() error { return nil }
	switch opts.fonts {
	case "mono":
		return fonts.Monospace{Advance: 8, Height: 20}, nil, nop, nil
	case "go", "shaped":
		var bo []fonts.BankOption
		if opts.fonts == "shaped" {
			bo = append(bo, fonts.WithShaping())
		}
		b, err := fonts.NewBank(bo...)
		if err != nil {
			return nil, nil, nil, err
		}
		return b, b, nop, nil
	case "plan9":
		f, detach, err := draw.AttachFont("textsel", opts.plan9)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("attaching display: %w", err)
		}
		return fonts.NewPlan9(f), nil, detach, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown font back end %q", opts.fonts)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	src, err := readInput(opts.path, stdin)
	if err != nil {
		return err
	}
	f, faces, detach, err := backend(opts)
	if err != nil {
		return err
	}
	defer detach()

	docOpts := []htmldoc.Option{htmldoc.WithFonts(f)}
	if opts.verbose {
		docOpts = append(docOpts, htmldoc.WithLogger(log.Default()))
	}
	var doc *htmldoc.Document
	if opts.markdown {
		doc, err = htmldoc.FromMarkdown(src, docOpts...)
	} else {
		doc, err = htmldoc.Parse(bytes.NewReader(src), docOpts...)
	}
	if err != nil {
		return err
	}
	height := doc.Render(opts.width)
	log.Printf("laid out %s at %.0fx%.0f", opts.path, opts.width, height)

	sel := selection.New(doc, doc.Fonts())
	if opts.drag {
		d := ui.NewDrag(sel)
		d.Threshold = 0
		d.Press(opts.from, opts.from)
		d.Move(opts.to, opts.to)
		d.Release()
	}

	text, ok := sel.SelectedText()
	if ok {
		fmt.Fprintf(stdout, "Selected: %s\n", text)
	} else {
		fmt.Fprintln(stdout, "Nothing selected")
	}
	rects := sel.Rectangles()
	for _, r := range rects {
		fmt.Fprintf(stdout, "%g,%g %gx%g\n", r.X, r.Y, r.Width, r.Height)
	}
	if opts.dump {
		fmt.Fprintln(stdout, litter.Sdump(summarize(sel)))
	}

	if opts.png != "" {
		return writePNG(opts, doc, faces, rects)
	}
	return nil
}

type endpointSummary struct {
	Tag       string
	Text      string
	CharIndex int
	X         float64
}

type summary struct {
	Active     bool
	First      *endpointSummary
	Second     *endpointSummary
	Rectangles []dom.Rect
}

func summarize(sel *selection.Selection) summary {
	s := summary{Active: sel.IsActive(), Rectangles: sel.Rectangles()}
	if first, second, ok := sel.Endpoints(); ok {
		s.First = summarizeEndpoint(first)
		s.Second = summarizeEndpoint(second)
	}
	return s
}

func summarizeEndpoint(ep selection.Endpoint) *endpointSummary {
	es := &endpointSummary{Text: ep.Element.Text(), CharIndex: ep.CharIndex, X: ep.X}
	// Name the enclosing element; every endpoint sits in a text leaf.
	if el, ok := ep.Element.Parent().(htmldoc.Element); ok {
		es.Tag = el.Tag()
	}
	return es
}

func writePNG(opts options, doc *htmldoc.Document, faces pixbuf.Faces, rects []dom.Rect) error {
	img := pixbuf.Scale(pixbuf.Render(doc, faces), opts.scale)
	pixbuf.Highlight(img, rects, pixbuf.WithScale(opts.scale))

	out, err := os.Create(opts.png)
	if err != nil {
		return err
	}
	if err := pixbuf.WritePNG(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
