package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/textsel/dom"
)

func TestParsePoint(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want dom.Point
		bad  bool
	}{
		{"10,20", dom.Pt(10, 20), false},
		{" 1.5 , -2 ", dom.Pt(1.5, -2), false},
		{"10", dom.Point{}, true},
		{"a,2", dom.Point{}, true},
		{"1,b", dom.Point{}, true},
	} {
		got, err := parsePoint(tc.in)
		if (err != nil) != tc.bad {
			t.Errorf("parsePoint(%q) error = %v, want error %v", tc.in, err, tc.bad)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePoint(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-from", "1,2", "-to", "3,4", "-fonts", "mono", "notes.MD"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.drag || opts.from != dom.Pt(1, 2) || opts.to != dom.Pt(3, 4) {
		t.Errorf("drag = %v %v %v", opts.drag, opts.from, opts.to)
	}
	if !opts.markdown {
		t.Error(".MD suffix did not imply -md")
	}
	if opts.width != 800 || opts.scale != 1 {
		t.Errorf("defaults width=%v scale=%v", opts.width, opts.scale)
	}

	for _, args := range [][]string{
		{},
		{"a.html", "b.html"},
		{"-from", "1,2", "a.html"},
		{"-width", "0", "a.html"},
		{"-scale", "-1", "a.html"},
		{"-from", "x", "-to", "1,1", "a.html"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q) accepted bad arguments", args)
		}
	}
}

func TestRun(t *testing.T) {
	opts := options{
		path:  "-",
		width: 800,
		from:  dom.Pt(10, 10),
		to:    dom.Pt(80, 10),
		drag:  true,
		fonts: "mono",
		scale: 1,
	}
	var out bytes.Buffer
	if err := run(opts, strings.NewReader("<p>Hello world</p>"), &out); err != nil {
		t.Fatal(err)
	}
	// The margin is 8 and the paragraph gap another 10.
	want := "Selected: Hello wor\n8,18 40x20\n56,18 24x20\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMarkdownDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("Hello *world*\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := options{
		path:     path,
		width:    800,
		from:     dom.Pt(10, 10),
		to:       dom.Pt(80, 10),
		drag:     true,
		markdown: true,
		fonts:    "mono",
		scale:    1,
		dump:     true,
	}
	var out bytes.Buffer
	if err := run(opts, nil, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, s := range []string{"Selected: Hello wor", `Tag: "em"`, "CharIndex: 3"} {
		if !strings.Contains(got, s) {
			t.Errorf("output lacks %q:\n%s", s, got)
		}
	}
}

func TestRunNoDrag(t *testing.T) {
	var out bytes.Buffer
	opts := options{path: "-", width: 300, fonts: "mono", scale: 1}
	if err := run(opts, strings.NewReader("<p>x</p>"), &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Nothing selected\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	opts := options{
		path:  "-",
		width: 200,
		from:  dom.Pt(9, 12),
		to:    dom.Pt(60, 12),
		drag:  true,
		fonts: "go",
		png:   path,
		scale: 2,
	}
	var out bytes.Buffer
	if err := run(opts, strings.NewReader("<p>Hello world</p>"), &out); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 400 {
		t.Errorf("PNG width = %d, want 400", got)
	}
}

func TestRunUnknownFonts(t *testing.T) {
	opts := options{path: "-", width: 100, fonts: "nope", scale: 1}
	if err := run(opts, strings.NewReader("x"), &bytes.Buffer{}); err == nil {
		t.Error("unknown font back end accepted")
	}
}
