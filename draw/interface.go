// Package draw is the thin layer over 9fans.net/go/draw used for Plan 9
// fonts and colours.
package draw

import "image/color"

// Font measures text in a Plan 9 font.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}

type fontImpl struct {
	*drawFont
}

var _ = Font((*fontImpl)(nil))

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }
func (f *fontImpl) Ascent() int  { return f.drawFont.Ascent }

// WrapFont adapts a font opened through 9fans.net/go/draw.
func WrapFont(f *drawFont) Font {
	return &fontImpl{f}
}

// OpenFont opens the named font on an attached display.
func OpenFont(d *drawDisplay, name string) (Font, error) {
	f, err := d.OpenFont(name)
	if err != nil {
		return nil, err
	}
	return &fontImpl{f}, nil
}

// RGBA unpacks a Plan 9 RRGGBBAA colour.
func RGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// AttachFont connects to the display server and opens the named font,
// or the display's default font when name is empty. The returned
// function detaches.
func AttachFont(label, name string) (Font, func() error, error) {
	d, err := drawInit(nil, "", label, "")
	if err != nil {
		return nil, nil, err
	}
	if name == "" {
		return WrapFont(d.DefaultFont), d.Close, nil
	}
	f, err := OpenFont(d, name)
	if err != nil {
		d.Close()
		return nil, nil, err
	}
	return f, d.Close, nil
}
