// Package fonts hands out font handles for laid-out documents and
// measures text in them.
//
// Three back ends share the same shape: Monospace for fixed cells,
// Bank for the Go fonts rendered through golang.org/x/image and
// Plan9 for fonts opened through 9fans.net/go/draw. Handles are never
// dom.NoFont.
package fonts

import (
	"github.com/rjkroege/textsel/dom"
)

// DefaultSize is the size used for a Desc whose Size is not positive.
const DefaultSize = 16.0

// Desc describes the font wanted for a run of text.
type Desc struct {
	Size   float64
	Bold   bool
	Italic bool
	Mono   bool
}

func (d Desc) normalize() Desc {
	if d.Size <= 0 {
		d.Size = DefaultSize
	}
	return d
}

// Metrics are the vertical metrics of a font, in pixels.
type Metrics struct {
	Height float64
	Ascent float64
}

// style packs the face variant of d into an index in [0, 8).
func (d Desc) style() int {
	i := 0
	if d.Bold {
		i |= 1
	}
	if d.Italic {
		i |= 2
	}
	if d.Mono {
		i |= 4
	}
	return i
}

// handleAt and indexOf convert between handles and slice indices.
func handleAt(i int) dom.FontHandle { return dom.FontHandle(i + 1) }

func indexOf(h dom.FontHandle, n int) (int, bool) {
	i := int(h) - 1
	return i, i >= 0 && i < n
}
