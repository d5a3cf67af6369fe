// Package dom describes the laid-out document tree that the selection
// engine reads. The tree is owned elsewhere (a rendering engine); this
// package only names the capabilities consumed from it.
package dom

// FontHandle is an opaque font identifier handed out by the rendering
// engine. The zero handle means the element has no font of its own and
// inherits its parent's.
type FontHandle uintptr

// NoFont is the unset font handle.
const NoFont FontHandle = 0

// Element is a non-owning reference to one node of the laid-out tree.
//
// Element values are compared with ==, so implementations must use
// comparable dynamic types (pointers or small value handles). A missing
// element is the nil interface, never a typed nil.
type Element interface {
	// IsText reports whether the node is a text leaf.
	IsText() bool
	// Text returns the node's own text content.
	Text() string
	// Placement is the node's rectangle after layout, in document space.
	Placement() Rect
	// Font returns the node's font or NoFont.
	Font() FontHandle

	Parent() Element
	ChildCount() int
	Child(i int) Element
}

// Document resolves points to elements.
type Document interface {
	// ElementAt returns the element rendered at pt, a point in document
	// space. client is the same point in viewport space; its meaning is
	// owned by the implementation (scroll or fixed-position correction).
	ElementAt(pt, client Point) Element

	// Generation identifies the current layout. It changes whenever a
	// relayout invalidates previously returned elements.
	Generation() uint64
}
