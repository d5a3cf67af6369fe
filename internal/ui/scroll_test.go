package ui

import "testing"

func TestAutoScroll(t *testing.T) {
	for _, tc := range []struct {
		y, want float64
	}{
		{-30, -12},
		{0, -12},
		{10, -6},
		{19, -1},
		{20, 0},
		{300, 0},
		{580, 0},
		{581, 1},
		{590, 6},
		{600, 12},
		{700, 12},
	} {
		if got := AutoScroll(tc.y, 600); got != tc.want {
			t.Errorf("AutoScroll(%v, 600) = %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestAutoScrollerCells(t *testing.T) {
	a := AutoScroller{Edge: 2, Max: 1}
	for _, tc := range []struct {
		y, want float64
	}{
		{0, -1}, {1, -1}, {2, 0}, {10, 0}, {22, 0}, {23, 1},
	} {
		if got := a.Speed(tc.y, 24); got != tc.want {
			t.Errorf("Speed(%v, 24) = %v, want %v", tc.y, got, tc.want)
		}
	}
	if got := (AutoScroller{}).Speed(0, 10); got != 0 {
		t.Errorf("zero AutoScroller scrolled by %v", got)
	}
}

func TestClampScroll(t *testing.T) {
	for _, tc := range []struct {
		scroll, content, view, want float64
	}{
		{-5, 1000, 600, 0},
		{100, 1000, 600, 100},
		{500, 1000, 600, 400},
		{50, 300, 600, 0},
	} {
		if got := ClampScroll(tc.scroll, tc.content, tc.view); got != tc.want {
			t.Errorf("ClampScroll(%v, %v, %v) = %v, want %v", tc.scroll, tc.content, tc.view, got, tc.want)
		}
	}
}

func TestWheelLines(t *testing.T) {
	tt := []struct {
		s        string
		maxlines int
		n        int
	}{
		{"", 200, 1},
		{"0", 200, 1},
		{"-1", 200, 1},
		{"-42", 200, 1},
		{"two", 200, 1},
		{"1", 200, 1},
		{"42", 200, 42},
		{"123", 200, 123},
		{"%", 200, 1},
		{"0%", 200, 1},
		{"-1%", 200, 1},
		{"five%", 200, 1},
		{"123%", 200, 200},
		{"10%", 200, 20},
		{"100%", 200, 200},
		{"10%", 5, 1},
	}
	for _, tc := range tt {
		lines, pct := parseScrollSize(tc.s)
		if n := wheelLines(lines, pct, tc.maxlines); n != tc.n {
			t.Errorf("mousescrollsize of %q for %v lines is %v; expected %v", tc.s, tc.maxlines, n, tc.n)
		}
	}
}
