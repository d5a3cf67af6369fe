package selection

import (
	"math"

	"github.com/rjkroege/textsel/dom"
)

// MaxTreeDepth bounds every ascent and descent through the tree. A walk
// that reaches it stops and reports nothing, so a malformed or cyclic
// tree truncates a selection instead of hanging it.
const MaxTreeDepth = 256

// YTolerance is how far (in pixels) a candidate's vertical distance may
// exceed the best one and still compete on horizontal distance in
// ClosestTextLeaf.
const YTolerance = 2.0

type frame struct {
	el    dom.Element
	depth int
}

// FirstTextLeaf returns n itself if it is a text leaf, otherwise the
// first text leaf below it in document order, or nil.
func FirstTextLeaf(n dom.Element) dom.Element {
	if n == nil {
		return nil
	}
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.el.IsText() {
			return top.el
		}
		stack = pushChildren(stack, top)
	}
	return nil
}

// pushChildren pushes the children of f in reverse so that they pop in
// document order.
func pushChildren(stack []frame, f frame) []frame {
	if f.depth >= MaxTreeDepth {
		return stack
	}
	for i := f.el.ChildCount() - 1; i >= 0; i-- {
		if c := f.el.Child(i); c != nil {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return stack
}

type candidate struct {
	el dom.Element
	r  dom.Rect
}

// textLeaves collects the non-whitespace text leaves under n in document
// order, with their effective placement.
func textLeaves(n dom.Element) []candidate {
	var out []candidate
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.el.IsText() {
			if !isWhitespaceOnly(top.el.Text()) {
				out = append(out, candidate{top.el, placementFor(top.el)})
			}
			continue
		}
		stack = pushChildren(stack, top)
	}
	return out
}

// bandDistance is 0 when v falls inside [start, start+extent) and the
// distance from v to the band's centre otherwise.
func bandDistance(v, start, extent float64) float64 {
	if v >= start && v < start+extent {
		return 0
	}
	return math.Abs(v - (start + extent/2))
}

// ClosestTextLeaf returns the non-whitespace text leaf under n nearest to
// (x, y). Leaves on the nearest line (within YTolerance) compete on
// horizontal distance; ties go to the earliest in document order.
func ClosestTextLeaf(n dom.Element, x, y float64) dom.Element {
	if n == nil {
		return nil
	}
	leaves := textLeaves(n)
	if len(leaves) == 0 {
		return nil
	}

	minY := math.MaxFloat64
	for _, c := range leaves {
		minY = math.Min(minY, bandDistance(y, c.r.Y, c.r.Height))
	}

	var best dom.Element
	bestX := math.MaxFloat64
	for _, c := range leaves {
		if bandDistance(y, c.r.Y, c.r.Height) > minY+YTolerance {
			continue
		}
		if d := bandDistance(x, c.r.X, c.r.Width); d < bestX {
			best, bestX = c.el, d
		}
	}
	return best
}

// NextTextLeaf returns the text leaf that follows from in document order.
// A later sibling equal to stop is returned as is, even when it is not a
// leaf. Otherwise the first text leaf inside the next sibling that has
// one is returned; callers compare it with stop themselves. The walk
// climbs at most MaxTreeDepth ancestors.
func NextTextLeaf(from, stop dom.Element) dom.Element {
	current := from
	for range MaxTreeDepth {
		if current == nil {
			return nil
		}
		parent := current.Parent()
		if parent == nil {
			return nil
		}
		count := parent.ChildCount()

		idx := -1
		for i := 0; i < count; i++ {
			if parent.Child(i) == current {
				idx = i
				break
			}
		}

		if idx >= 0 {
			for i := idx + 1; i < count; i++ {
				sibling := parent.Child(i)
				if sibling == nil {
					continue
				}
				if sibling == stop {
					return sibling
				}
				if leaf := FirstTextLeaf(sibling); leaf != nil {
					return leaf
				}
			}
		}

		current = parent
	}
	return nil
}

// fontFor returns the element's font, or its parent's when unset.
func fontFor(el dom.Element) dom.FontHandle {
	if f := el.Font(); f != dom.NoFont {
		return f
	}
	if p := el.Parent(); p != nil {
		return p.Font()
	}
	return dom.NoFont
}

// placementFor returns the element's placement, or its parent's when the
// element has zero width. Some text nodes carry no placement of their
// own.
func placementFor(el dom.Element) dom.Rect {
	r := el.Placement()
	if r.Width > 0 {
		return r
	}
	if p := el.Parent(); p != nil {
		return p.Placement()
	}
	return r
}
