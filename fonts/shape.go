package fonts

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// shaper measures left-to-right Latin runs with HarfBuzz. Callers
// serialise access.
type shaper struct {
	hb    shaping.HarfbuzzShaper
	faces [8]*gofont.Face
}

func newShaper(ttfs [8][]byte) (*shaper, error) {
	s := &shaper{}
	for i, ttf := range ttfs {
		face, err := gofont.ParseTTF(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("fonts: shaping face %d: %w", i, err)
		}
		s.faces[i] = face
	}
	return s, nil
}

// advance returns the shaped width of text at size pixels.
func (s *shaper) advance(text string, style int, size float64) float64 {
	runes := []rune(text)
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.faces[style],
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.DefaultLanguage(),
	})
	var w fixed.Int26_6
	for _, g := range out.Glyphs {
		w += g.XAdvance
	}
	return fixedToFloat(w)
}
