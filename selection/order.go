package selection

import "github.com/rjkroege/textsel/dom"

// IsBefore reports whether a precedes b in document order. It walks
// forward from a with NextTextLeaf until it meets b. False means b comes
// first, a == b, or the bounded walk never reached b.
func IsBefore(a, b dom.Element) bool {
	if a == b {
		return false
	}
	for cursor := NextTextLeaf(a, b); cursor != nil; cursor = NextTextLeaf(cursor, b) {
		if cursor == b {
			return true
		}
	}
	return false
}

// orderCache remembers the last document-order comparison. During a drag
// the start element is fixed and the end element usually stays put for
// many frames, so a single entry turns most order queries into a lookup.
// Any other pair misses and must be recomputed.
type orderCache struct {
	a, b     dom.Element
	aBeforeB bool
}

// lookup returns the cached order of (a, b). Only the exact ordered pair
// hits: elements the bounded walk cannot relate are "not before" in both
// directions, so (b, a) is not the negation of (a, b).
func (c *orderCache) lookup(a, b dom.Element) (aBeforeB, ok bool) {
	if c == nil || c.a != a || c.b != b {
		return false, false
	}
	return c.aBeforeB, true
}

// normalizeEndpoints returns a and b in document order. Endpoints in one
// element are ordered by character offset. Otherwise the cache answers
// when it covers the pair and IsBefore is consulted when it does not.
func normalizeEndpoints(a, b Endpoint, cache *orderCache) (first, second Endpoint) {
	if a.Element == b.Element {
		if a.CharIndex <= b.CharIndex {
			return a, b
		}
		return b, a
	}
	aBeforeB, ok := cache.lookup(a.Element, b.Element)
	if !ok {
		aBeforeB = IsBefore(a.Element, b.Element)
	}
	if aBeforeB {
		return a, b
	}
	return b, a
}
