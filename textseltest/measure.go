package textseltest

import (
	"unicode/utf8"

	"github.com/rjkroege/textsel/dom"
)

// Measurer is a fixed-advance measurer that records every call. Fonts
// listed in Advances override Advance for that handle.
type Measurer struct {
	Advance  float64
	Advances map[dom.FontHandle]float64

	Calls int
	Texts []string
	Fonts []dom.FontHandle
}

// NewMeasurer returns a Measurer with the given advance per code point.
func NewMeasurer(advance float64) *Measurer {
	return &Measurer{Advance: advance}
}

// Measure returns advance × code-point count of text.
func (m *Measurer) Measure(text string, f dom.FontHandle) float64 {
	m.Calls++
	m.Texts = append(m.Texts, text)
	m.Fonts = append(m.Fonts, f)
	adv := m.Advance
	if a, ok := m.Advances[f]; ok {
		adv = a
	}
	return adv * float64(utf8.RuneCountInString(text))
}

// Reset forgets the recorded calls.
func (m *Measurer) Reset() {
	m.Calls = 0
	m.Texts = nil
	m.Fonts = nil
}
