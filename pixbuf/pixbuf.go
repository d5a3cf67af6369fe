// Package pixbuf rasterises a laid-out document into an RGBA image and
// paints selection highlights over it.
package pixbuf

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/draw"
	"github.com/rjkroege/textsel/htmldoc"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultHighlight is the selection colour, RRGGBBAA.
const DefaultHighlight draw.Color = 0x6496FFFF

// highlightPercent is how far each highlighted pixel moves toward the
// highlight colour.
const highlightPercent = 30

// Faces supplies the face to draw each font handle with.
type Faces interface {
	Face(h dom.FontHandle) font.Face
}

type options struct {
	highlight  draw.Color
	text       draw.Color
	background draw.Color
	scroll     float64
	scale      float64
}

// Option adjusts Render and Highlight.
type Option func(*options)

// WithColor sets the highlight colour.
func WithColor(c draw.Color) Option {
	return func(o *options) { o.highlight = c }
}

// WithTextColor sets the colour Render draws text in.
func WithTextColor(c draw.Color) Option {
	return func(o *options) { o.text = c }
}

// WithBackground sets the colour Render fills the image with.
func WithBackground(c draw.Color) Option {
	return func(o *options) { o.background = c }
}

// WithScroll shifts highlight rectangles up by y document pixels, for
// images that show a scrolled viewport.
func WithScroll(y float64) Option {
	return func(o *options) { o.scroll = y }
}

// WithScale maps document pixels to image pixels by f, for images made
// with Scale.
func WithScale(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.scale = f
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		highlight:  DefaultHighlight,
		text:       draw.Black,
		background: draw.White,
		scale:      1,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Render draws every text run of doc at its placement, baseline aligned,
// on a background-filled image the size of the document. Handles faces
// cannot resolve are drawn with a fixed 7x13 face.
func Render(doc *htmldoc.Document, faces Faces, opts ...Option) *image.RGBA {
	o := newOptions(opts)
	w := int(math.Ceil(doc.Width()))
	h := int(math.Ceil(doc.Height()))
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(draw.RGBA(o.background)), image.Point{}, xdraw.Src)

	d := font.Drawer{
		Dst: img,
		Src: image.NewUniform(draw.RGBA(o.text)),
	}
	for _, run := range doc.TextRuns() {
		var face font.Face
		if faces != nil {
			face = faces.Face(run.Font)
		}
		if face == nil {
			face = basicfont.Face7x13
		}
		d.Face = face
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(run.Rect.X * 64),
			Y: fixed.Int26_6(run.Baseline * 64),
		}
		d.DrawString(run.Text)
	}
	return img
}

// Highlight blends every rectangle into img, clipped to its bounds.
func Highlight(img *image.RGBA, rects []dom.Rect, opts ...Option) {
	o := newOptions(opts)
	hc := draw.RGBA(o.highlight)
	b := img.Bounds()

	for _, r := range rects {
		r.Y -= o.scroll
		r = r.Scale(o.scale)
		area := image.Rect(
			int(math.Floor(r.X)), int(math.Floor(r.Y)),
			int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
		).Intersect(b)

		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				i := img.PixOffset(x, y)
				px := img.Pix[i : i+3 : i+3]
				px[0] = blend(px[0], hc.R)
				px[1] = blend(px[1], hc.G)
				px[2] = blend(px[2], hc.B)
			}
		}
	}
}

func blend(dst, src uint8) uint8 {
	v := (uint32(dst)*(100-highlightPercent) + uint32(src)*highlightPercent) / 100
	return uint8(min(v, 255))
}

// Scale returns img resized by factor with Catmull-Rom resampling.
func Scale(img *image.RGBA, factor float64) *image.RGBA {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0,
		max(int(math.Round(float64(b.Dx())*factor)), 1),
		max(int(math.Round(float64(b.Dy())*factor)), 1)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("pixbuf: encoding PNG: %w", err)
	}
	return nil
}
