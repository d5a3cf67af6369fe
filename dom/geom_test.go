package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 10}
	for _, tc := range []struct {
		name string
		p    Point
		want bool
	}{
		{"top left corner", Pt(10, 20), true},
		{"inside", Pt(25, 25), true},
		{"right edge exclusive", Pt(40, 25), false},
		{"bottom edge exclusive", Pt(25, 30), false},
		{"left of", Pt(9.5, 25), false},
		{"above", Pt(25, 19), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.p, got, tc.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 5, Width: 5, Height: 20}

	if diff := cmp.Diff(Rect{X: 0, Y: 0, Width: 25, Height: 25}, a.Union(b)); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, Rect{}.Union(b)); diff != "" {
		t.Errorf("empty Union mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a, a.Union(Rect{X: 100, Y: 100})); diff != "" {
		t.Errorf("Union with zero-size mismatch (-want +got):\n%s", diff)
	}
}

func TestRectScale(t *testing.T) {
	got := Rect{X: 1, Y: 2, Width: 3, Height: 4}.Scale(2)
	if diff := cmp.Diff(Rect{X: 2, Y: 4, Width: 6, Height: 8}, got); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
}
