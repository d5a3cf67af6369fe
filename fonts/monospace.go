package fonts

import (
	"unicode/utf8"

	"github.com/rjkroege/textsel/dom"
)

// Monospace measures every code point as Advance pixels wide in every
// font. All descs share one handle.
type Monospace struct {
	Advance float64
	Height  float64
}

// MonoHandle is the only handle Monospace returns.
const MonoHandle dom.FontHandle = 1

func (m Monospace) Font(Desc) dom.FontHandle { return MonoHandle }

func (m Monospace) Measure(text string, _ dom.FontHandle) float64 {
	return m.Advance * float64(utf8.RuneCountInString(text))
}

func (m Monospace) Metrics(dom.FontHandle) Metrics {
	return Metrics{Height: m.Height, Ascent: m.Height}
}
