package ui

import (
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
)

// AutoScroller scrolls the view while a drag sits near its top or
// bottom edge.
type AutoScroller struct {
	Edge float64 // depth of each edge zone
	Max  float64 // speed at the very edge, per frame
}

// DefaultAutoScroll suits pixel viewports.
var DefaultAutoScroll = AutoScroller{Edge: 20, Max: 12}

// AutoScroll is DefaultAutoScroll.Speed.
func AutoScroll(y, viewHeight float64) float64 {
	return DefaultAutoScroll.Speed(y, viewHeight)
}

// Speed returns how far to scroll this frame for a pointer at viewport
// height y: negative (up) in the top zone, positive (down) in the bottom
// zone, proportional to depth into the zone and rounded away from zero.
// Pointers outside the view scroll at full speed.
func (a AutoScroller) Speed(y, viewHeight float64) float64 {
	if a.Edge <= 0 {
		return 0
	}
	switch {
	case y < a.Edge:
		depth := 1 - math.Max(y/a.Edge, 0)
		return -math.Ceil(depth * a.Max)
	case y > viewHeight-a.Edge:
		depth := math.Min((y-(viewHeight-a.Edge))/a.Edge, 1)
		return math.Ceil(depth * a.Max)
	}
	return 0
}

// ClampScroll keeps a scroll offset inside [0, content-view].
func ClampScroll(scroll, content, view float64) float64 {
	return math.Max(0, math.Min(scroll, content-view))
}

var wheel struct {
	once    sync.Once
	lines   int
	percent float64
}

// WheelLines is the number of lines one wheel click scrolls in a view
// showing maxlines lines. The default of one line can be changed with
// $mousescrollsize: an integer sets a fixed number of lines and a
// number followed by % a share of the view.
func WheelLines(maxlines int) int {
	wheel.once.Do(func() {
		wheel.lines, wheel.percent = parseScrollSize(os.Getenv("mousescrollsize"))
	})
	return wheelLines(wheel.lines, wheel.percent, maxlines)
}

// parseScrollSize reads a $mousescrollsize value. Malformed or
// non-positive values yield zeroes. Percentages are capped at 100.
func parseScrollSize(s string) (lines int, percent float64) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		pct, err := strconv.ParseFloat(p, 64)
		if err != nil || pct <= 0 {
			return 0, 0
		}
		return 0, math.Min(pct, 100)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, 0
	}
	return n, 0
}

func wheelLines(lines int, percent float64, maxlines int) int {
	switch {
	case lines > 0:
		return lines
	case percent > 0:
		if n := int(percent * float64(maxlines) / 100); n > 0 {
			return n
		}
	}
	return 1
}
