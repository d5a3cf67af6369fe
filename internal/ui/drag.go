// Package ui turns raw pointer input into selection gestures.
package ui

import (
	"math"

	"github.com/rjkroege/textsel/dom"
)

// DefaultThreshold is how far, in viewport pixels, the pointer must
// travel from the press before a drag starts selecting.
const DefaultThreshold = 4.0

// jitter is the movement below which a pointer event is ignored.
const jitter = 0.5

// Selector is the selection a Drag drives.
type Selector interface {
	StartAt(pt, client dom.Point)
	ExtendTo(pt, client dom.Point)
	Clear()
}

// Drag tracks one pointer button. Points are passed twice: pt in
// document space and client in viewport space. Their difference is the
// current scroll offset.
type Drag struct {
	Threshold float64

	sel     Selector
	pressed bool
	active  bool
	origin  dom.Point // viewport
	last    dom.Point // viewport
}

// NewDrag returns a Drag over sel with the default threshold.
func NewDrag(sel Selector) *Drag {
	return &Drag{Threshold: DefaultThreshold, sel: sel}
}

// Press clears the selection and remembers where the button went down.
func (d *Drag) Press(_, client dom.Point) {
	d.pressed = true
	d.active = false
	d.origin = client
	d.last = client
	d.sel.Clear()
}

// Move handles pointer motion with the button held. Once the pointer is
// Threshold away from the press, the selection starts at the press
// point (translated by the current scroll) and every later move extends
// it. Move reports whether the selection was extended.
func (d *Drag) Move(pt, client dom.Point) bool {
	if !d.pressed {
		return false
	}
	if math.Abs(client.X-d.last.X) <= jitter && math.Abs(client.Y-d.last.Y) <= jitter {
		return false
	}
	d.last = client

	if !d.active {
		if math.Hypot(client.X-d.origin.X, client.Y-d.origin.Y) < d.Threshold {
			return false
		}
		d.active = true
		at := dom.Pt(d.origin.X+(pt.X-client.X), d.origin.Y+(pt.Y-client.Y))
		d.sel.StartAt(at, d.origin)
	}
	d.sel.ExtendTo(pt, client)
	return true
}

// Release ends the drag. The selection is kept.
func (d *Drag) Release() {
	d.pressed = false
	d.active = false
}

// Pressed reports whether the button is down.
func (d *Drag) Pressed() bool { return d.pressed }

// Active reports whether the current drag is selecting.
func (d *Drag) Active() bool { return d.active }
