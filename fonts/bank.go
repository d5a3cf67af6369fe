package fonts

import (
	"fmt"
	"sync"

	"github.com/rjkroege/textsel/dom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Indexed by Desc.style.
var goTTFs = [8][]byte{
	goregular.TTF,
	gobold.TTF,
	goitalic.TTF,
	gobolditalic.TTF,
	gomono.TTF,
	gomonobold.TTF,
	gomonoitalic.TTF,
	gomonobolditalic.TTF,
}

// memoLimit bounds the width memo. It is dropped wholesale when full.
const memoLimit = 1 << 16

type widthKey struct {
	h    dom.FontHandle
	text string
}

// Bank serves the Go font family at 72 DPI, so sizes are pixels. It is
// safe for concurrent use.
type Bank struct {
	mu sync.Mutex

	dpi     float64
	ttfs    [8]*opentype.Font
	shaper  *shaper
	handles map[Desc]dom.FontHandle
	descs   []Desc
	faces   []font.Face
	widths  map[widthKey]float64
}

// BankOption configures a Bank.
type BankOption func(*Bank) error

// WithShaping measures through HarfBuzz shaping instead of summing
// glyph advances, so kerning and ligatures count.
func WithShaping() BankOption {
	return func(b *Bank) error {
		s, err := newShaper(goTTFs)
		if err != nil {
			return err
		}
		b.shaper = s
		return nil
	}
}

// WithDPI changes the resolution faces are built for.
func WithDPI(dpi float64) BankOption {
	return func(b *Bank) error {
		if dpi <= 0 {
			return fmt.Errorf("fonts: bad DPI %v", dpi)
		}
		b.dpi = dpi
		return nil
	}
}

// NewBank parses the Go fonts.
func NewBank(opts ...BankOption) (*Bank, error) {
	b := &Bank{
		dpi:     72,
		handles: make(map[Desc]dom.FontHandle),
		widths:  make(map[widthKey]float64),
	}
	for i, ttf := range goTTFs {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("fonts: parsing face %d: %w", i, err)
		}
		b.ttfs[i] = f
	}
	for _, o := range opts {
		if err := o(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Font returns the handle for d, building its face on first use. It
// returns dom.NoFont only if the face cannot be built.
func (b *Bank) Font(d Desc) dom.FontHandle {
	d = d.normalize()

	b.mu.Lock()
	defer b.mu.Unlock()
	if h, ok := b.handles[d]; ok {
		return h
	}
	face, err := opentype.NewFace(b.ttfs[d.style()], &opentype.FaceOptions{
		Size:    d.Size,
		DPI:     b.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return dom.NoFont
	}
	h := handleAt(len(b.faces))
	b.faces = append(b.faces, face)
	b.descs = append(b.descs, d)
	b.handles[d] = h
	return h
}

// Face returns the face behind h, or nil for an unknown handle.
func (b *Bank) Face(h dom.FontHandle) font.Face {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i, ok := indexOf(h, len(b.faces)); ok {
		return b.faces[i]
	}
	return nil
}

// Measure returns the advance width of text in pixels. Unknown handles
// measure as zero.
func (b *Bank) Measure(text string, h dom.FontHandle) float64 {
	if text == "" {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := indexOf(h, len(b.faces))
	if !ok {
		return 0
	}
	key := widthKey{h, text}
	if w, ok := b.widths[key]; ok {
		return w
	}

	var w float64
	if b.shaper != nil {
		d := b.descs[i]
		w = b.shaper.advance(text, d.style(), d.Size*b.dpi/72)
	} else {
		w = fixedToFloat(font.MeasureString(b.faces[i], text))
	}

	if len(b.widths) >= memoLimit {
		clear(b.widths)
	}
	b.widths[key] = w
	return w
}

func (b *Bank) Metrics(h dom.FontHandle) Metrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := indexOf(h, len(b.faces))
	if !ok {
		return Metrics{}
	}
	m := b.faces[i].Metrics()
	return Metrics{
		Height: fixedToFloat(m.Height),
		Ascent: fixedToFloat(m.Ascent),
	}
}
