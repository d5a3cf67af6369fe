package selection

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/textsel/dom"
	"github.com/rjkroege/textsel/textseltest"
)

// proportional measures each code point by its byte length so that
// every prefix has a distinct, non-uniform width.
type proportional struct{}

func (proportional) Measure(text string, _ dom.FontHandle) float64 {
	w := 0.0
	for _, r := range text {
		w += 3 + float64(utf8.RuneLen(r))
	}
	return w
}

func TestTextRect(t *testing.T) {
	leaf := textseltest.Text("abcdef", rect(100, 40, 60, 16))
	textseltest.Box("p", rect(0, 0, 300, 100), leaf)
	m := textseltest.NewMeasurer(10)

	for _, tc := range []struct {
		name     string
		from, to int
		want     dom.Rect
		ok       bool
	}{
		{"middle", 1, 4, rect(110, 40, 30, 16), true},
		{"reversed", 4, 1, rect(110, 40, 30, 16), true},
		{"from the start", 0, 2, rect(100, 40, 20, 16), true},
		{"clamped past the end", 3, 99, rect(130, 40, 30, 16), true},
		{"empty range", 3, 3, dom.Rect{}, false},
		{"both clamped to the end", 50, 99, dom.Rect{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TextRect(m, leaf, tc.from, tc.to)
			if ok != tc.ok {
				t.Fatalf("TextRect(%d, %d) ok = %v, want %v", tc.from, tc.to, ok, tc.ok)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("TextRect(%d, %d) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
			}
		})
	}
}

func TestTextRectWhitespace(t *testing.T) {
	m := textseltest.NewMeasurer(10)
	if r, ok := TextRect(m, textseltest.Text(" \t ", rect(0, 0, 30, 10)), 0, 3); ok {
		t.Errorf("TextRect over whitespace = %v, want none", r)
	}
	if m.Calls != 0 {
		t.Errorf("whitespace run was measured %d times", m.Calls)
	}
}

func TestTextRectWidthProperty(t *testing.T) {
	text := "aé本x€"
	leaf := textseltest.Text(text, rect(7, 3, 50, 9))
	var m proportional
	n := utf8.RuneCountInString(text)

	for a := 0; a <= n; a++ {
		for b := a; b <= n; b++ {
			r, ok := TextRect(m, leaf, a, b)
			want := m.Measure(prefixRunes(text, b), 0) - m.Measure(prefixRunes(text, a), 0)
			if a == b {
				if ok {
					t.Errorf("TextRect(%d, %d) produced %v for an empty range", a, b, r)
				}
				continue
			}
			if !ok {
				t.Fatalf("TextRect(%d, %d) produced nothing", a, b)
			}
			if r.Width != want || r.Width < 0 {
				t.Errorf("TextRect(%d, %d).Width = %v, want %v", a, b, r.Width, want)
			}
		}
	}
}

func TestOrderedIndicesSymmetric(t *testing.T) {
	for a := 0; a < 5; a++ {
		for b := 0; b < 5; b++ {
			lo1, hi1 := orderedIndices(a, b)
			lo2, hi2 := orderedIndices(b, a)
			if lo1 != lo2 || hi1 != hi2 || lo1 > hi1 {
				t.Errorf("orderedIndices(%d, %d) = (%d, %d), reversed = (%d, %d)", a, b, lo1, hi1, lo2, hi2)
			}
		}
	}
}

func TestRuneSlicing(t *testing.T) {
	const s = "héllo wörld"
	for _, tc := range []struct {
		name string
		got  string
		want string
	}{
		{"slice", sliceRunes(s, 1, 4), "éll"},
		{"slice clamped", sliceRunes(s, 8, 99), "rld"},
		{"slice inverted", sliceRunes(s, 4, 1), ""},
		{"prefix", prefixRunes(s, 2), "hé"},
		{"prefix past end", prefixRunes(s, 50), s},
		{"suffix", suffixRunes(s, 7), "örld"},
		{"suffix past end", suffixRunes(s, 50), ""},
	} {
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
