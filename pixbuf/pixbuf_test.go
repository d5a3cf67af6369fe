package pixbuf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/draw"
	"github.com/rjkroege/textsel/fonts"
	"github.com/rjkroege/textsel/htmldoc"
)

var highlighted = color.RGBA{R: 208, G: 223, B: 255, A: 255}

func white(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// marked lists the pixels of img that are not white.
func marked(img *image.RGBA) []image.Point {
	var out []image.Point
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}

func pts(r image.Rectangle) []image.Point {
	var out []image.Point
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out = append(out, image.Pt(x, y))
		}
	}
	return out
}

func TestBlend(t *testing.T) {
	for _, tc := range []struct {
		dst, src, want uint8
	}{
		{255, 100, 208},
		{255, 150, 223},
		{255, 255, 255},
		{0, 255, 76},
		{0, 0, 0},
	} {
		if got := blend(tc.dst, tc.src); got != tc.want {
			t.Errorf("blend(%d, %d) = %d, want %d", tc.dst, tc.src, got, tc.want)
		}
	}
}

func TestHighlight(t *testing.T) {
	for _, tc := range []struct {
		name  string
		rects []dom.Rect
		opts  []Option
		want  image.Rectangle
	}{
		{"plain", []dom.Rect{{X: 2, Y: 2, Width: 3, Height: 3}}, nil, image.Rect(2, 2, 5, 5)},
		{"fractional edges grow", []dom.Rect{{X: 1.5, Y: 1, Width: 1, Height: 1}}, nil, image.Rect(1, 1, 3, 2)},
		{"scrolled", []dom.Rect{{X: 2, Y: 4, Width: 2, Height: 2}}, []Option{WithScroll(3)}, image.Rect(2, 1, 4, 3)},
		{"scaled", []dom.Rect{{X: 1, Y: 1, Width: 1, Height: 1}}, []Option{WithScale(2)}, image.Rect(2, 2, 4, 4)},
		{"clipped", []dom.Rect{{X: -5, Y: 8, Width: 8, Height: 100}}, nil, image.Rect(0, 8, 3, 10)},
		{"gone", []dom.Rect{{X: 20, Y: 20, Width: 5, Height: 5}}, nil, image.Rectangle{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img := white(10, 10)
			Highlight(img, tc.rects, tc.opts...)
			if diff := cmp.Diff(pts(tc.want), marked(img)); diff != "" {
				t.Errorf("highlighted pixels mismatch (-want +got):\n%s", diff)
			}
			for _, p := range marked(img) {
				if got := img.RGBAAt(p.X, p.Y); got != highlighted {
					t.Errorf("pixel %v = %v, want %v", p, got, highlighted)
				}
			}
		})
	}
}

func TestHighlightColor(t *testing.T) {
	img := white(2, 1)
	Highlight(img, []dom.Rect{{Width: 1, Height: 1}}, WithColor(draw.Black))
	if got, want := img.RGBAAt(0, 0), (color.RGBA{178, 178, 178, 255}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestRender(t *testing.T) {
	bank, err := fonts.NewBank()
	if err != nil {
		t.Fatal(err)
	}
	doc, err := htmldoc.ParseString("<p>Hello</p>", htmldoc.WithFonts(bank))
	if err != nil {
		t.Fatal(err)
	}
	doc.Render(120)

	img := Render(doc, bank)
	if got, want := img.Bounds().Dx(), 120; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	runs := doc.TextRuns()
	if len(runs) != 1 {
		t.Fatalf("got %d runs", len(runs))
	}
	r := runs[0].Rect
	inked := 0
	for _, p := range marked(img) {
		if !(dom.Rect{X: r.X - 1, Y: r.Y - 1, Width: r.Width + 2, Height: r.Height + 2}).Contains(dom.Pt(float64(p.X), float64(p.Y))) {
			t.Fatalf("ink at %v outside the run %v", p, r)
		}
		inked++
	}
	if inked == 0 {
		t.Error("nothing drawn")
	}
}

func TestRenderFallbackFace(t *testing.T) {
	doc, err := htmldoc.ParseString("<p>x</p>")
	if err != nil {
		t.Fatal(err)
	}
	doc.Render(50)
	if len(marked(Render(doc, nil))) == 0 {
		t.Error("fallback face drew nothing")
	}
}

func TestScale(t *testing.T) {
	img := white(10, 6)
	if got := Scale(img, 1); got != img {
		t.Error("Scale(1) copied the image")
	}
	big := Scale(img, 2)
	if diff := cmp.Diff(image.Rect(0, 0, 20, 12), big.Bounds()); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	for _, p := range marked(big) {
		if c := big.RGBAAt(p.X, p.Y); c.R < 250 || c.G < 250 || c.B < 250 {
			t.Fatalf("scaling a white image produced %v at %v", c, p)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := white(4, 3)
	Highlight(img, []dom.Rect{{X: 1, Y: 1, Width: 1, Height: 1}})

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	back, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(back.At(1, 1)); got != highlighted {
		t.Errorf("decoded pixel = %v, want %v", got, highlighted)
	}
}
