package selection

import "github.com/rjkroege/textsel/dom"

// Measurer returns the pixel width of text rendered in font f. It must
// be a pure function of its arguments; memoising internally is fine.
type Measurer interface {
	Measure(text string, f dom.FontHandle) float64
}

// MeasureFunc adapts an ordinary function to Measurer.
type MeasureFunc func(text string, f dom.FontHandle) float64

func (fn MeasureFunc) Measure(text string, f dom.FontHandle) float64 {
	return fn(text, f)
}
