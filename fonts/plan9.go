package fonts

import (
	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/draw"
)

// Plan9 hands out fonts opened through 9fans.net/go/draw. Descs that
// were never registered fall back to the base font. Not safe for
// concurrent use.
type Plan9 struct {
	fonts   []draw.Font
	handles map[Desc]dom.FontHandle
}

// NewPlan9 returns a Plan9 whose fallback is base.
func NewPlan9(base draw.Font) *Plan9 {
	return &Plan9{
		fonts:   []draw.Font{base},
		handles: make(map[Desc]dom.FontHandle),
	}
}

// Register makes f the font for d.
func (p *Plan9) Register(d Desc, f draw.Font) {
	d = d.normalize()
	if h, ok := p.handles[d]; ok {
		i, _ := indexOf(h, len(p.fonts))
		p.fonts[i] = f
		return
	}
	p.handles[d] = handleAt(len(p.fonts))
	p.fonts = append(p.fonts, f)
}

func (p *Plan9) Font(d Desc) dom.FontHandle {
	if h, ok := p.handles[d.normalize()]; ok {
		return h
	}
	return handleAt(0)
}

func (p *Plan9) font(h dom.FontHandle) draw.Font {
	if i, ok := indexOf(h, len(p.fonts)); ok {
		return p.fonts[i]
	}
	return p.fonts[0]
}

func (p *Plan9) Measure(text string, h dom.FontHandle) float64 {
	return float64(p.font(h).StringWidth(text))
}

func (p *Plan9) Metrics(h dom.FontHandle) Metrics {
	f := p.font(h)
	m := Metrics{Height: float64(f.Height())}
	m.Ascent = m.Height
	if a, ok := f.(interface{ Ascent() int }); ok {
		m.Ascent = float64(a.Ascent())
	}
	return m
}
