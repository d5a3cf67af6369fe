package selection

import "github.com/rjkroege/textsel/dom"

// TextRect returns the highlight rectangle covering characters
// [from, to) of a text leaf, in either order. Offsets are clamped to the
// leaf's length. Empty ranges, whitespace-only leaves and ranges that
// measure to no width produce no rectangle.
func TextRect(m Measurer, el dom.Element, from, to int) (dom.Rect, bool) {
	lo, hi := orderedIndices(from, to)
	if lo == hi {
		return dom.Rect{}, false
	}

	text := el.Text()
	if isWhitespaceOnly(text) {
		return dom.Rect{}, false
	}

	n := runeCount(text)
	lo = clamp(lo, n)
	hi = clamp(hi, n)

	f := fontFor(el)
	placement := placementFor(el)

	startPx := 0.0
	if lo > 0 {
		startPx = m.Measure(prefixRunes(text, lo), f)
	}
	endPx := m.Measure(prefixRunes(text, hi), f)
	if endPx <= startPx {
		return dom.Rect{}, false
	}
	return dom.Rect{
		X:      placement.X + startPx,
		Y:      placement.Y,
		Width:  endPx - startPx,
		Height: placement.Height,
	}, true
}

func appendTextRect(out []dom.Rect, m Measurer, el dom.Element, from, to int) []dom.Rect {
	if r, ok := TextRect(m, el, from, to); ok {
		out = append(out, r)
	}
	return out
}
