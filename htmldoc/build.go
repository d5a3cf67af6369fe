package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rjkroege/textsel/fonts"
	"github.com/rjkroege/textsel/selection"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxDepth bounds the tree. Content nested deeper is dropped since the
// selection walks could not reach it.
const maxDepth = selection.MaxTreeDepth

// Subtrees that never render.
var dropped = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Noscript: true,
}

var blocks = map[atom.Atom]bool{
	atom.Html: true, atom.Body: true,
	atom.P: true, atom.Div: true, atom.Pre: true, atom.Blockquote: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.Table: true, atom.Thead: true, atom.Tbody: true, atom.Tfoot: true, atom.Tr: true, atom.Caption: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true, atom.Nav: true,
	atom.Aside: true, atom.Main: true, atom.Figure: true, atom.Figcaption: true, atom.Address: true,
	atom.Form: true, atom.Fieldset: true, atom.Details: true, atom.Summary: true, atom.Hr: true,
}

func isInline(a atom.Atom) bool { return !blocks[a] }

var headingScale = map[atom.Atom]float64{
	atom.H1: 2.0,
	atom.H2: 1.5,
	atom.H3: 1.25,
	atom.H4: 1.0,
	atom.H5: 1.0,
	atom.H6: 1.0,
}

// Parse reads HTML from r. The document has no placement until Render.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parsing HTML: %w", err)
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.fonts == nil {
		cfg.fonts = fonts.Monospace{Advance: cfg.baseSize / 2, Height: cfg.baseSize * 1.25}
	}

	d := &Document{cfg: cfg}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			d.build(c, -1, fonts.Desc{Size: cfg.baseSize}, false, 0)
			break
		}
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// FromMarkdown converts CommonMark (with GitHub extensions) to HTML and
// parses the result.
func FromMarkdown(src []byte, opts ...Option) (*Document, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("htmldoc: converting markdown: %w", err)
	}
	return Parse(&buf, opts...)
}

func (d *Document) add(n node) int32 {
	id := int32(len(d.nodes))
	d.nodes = append(d.nodes, n)
	if n.parent >= 0 {
		p := &d.nodes[n.parent]
		p.children = append(p.children, id)
	}
	return id
}

func (d *Document) build(h *html.Node, parent int32, desc fonts.Desc, pre bool, depth int) {
	if depth >= maxDepth {
		d.cfg.logf("htmldoc: dropping <%s> nested %d deep", h.Data, depth)
		return
	}
	if dropped[h.DataAtom] {
		return
	}

	desc = styleFor(h.DataAtom, desc, d.cfg.baseSize)
	pre = pre || h.DataAtom == atom.Pre
	id := d.add(node{
		name:   h.Data,
		tag:    h.DataAtom,
		pre:    pre,
		parent: parent,
		desc:   desc,
		font:   d.cfg.fonts.Font(desc),
	})

	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			d.build(c, id, desc, pre, depth+1)
		case html.TextNode:
			if depth+1 >= maxDepth {
				continue
			}
			words := splitWords
			if pre {
				words = splitLines
			}
			for _, w := range words(c.Data) {
				if w == " " && d.endsInSpace(id) {
					continue
				}
				d.add(node{name: "#text", text: w, isText: true, pre: pre, parent: id})
			}
		}
	}
}

// endsInSpace reports whether the last child of id is a collapsed space.
func (d *Document) endsInSpace(id int32) bool {
	ch := d.nodes[id].children
	if len(ch) == 0 {
		return false
	}
	last := &d.nodes[ch[len(ch)-1]]
	return last.isText && last.text == " "
}

func styleFor(a atom.Atom, desc fonts.Desc, base float64) fonts.Desc {
	if s, ok := headingScale[a]; ok {
		desc.Size = base * s
		desc.Bold = true
		return desc
	}
	switch a {
	case atom.B, atom.Strong, atom.Th, atom.Dt:
		desc.Bold = true
	case atom.I, atom.Em, atom.Cite, atom.Var, atom.Dfn:
		desc.Italic = true
	case atom.Code, atom.Pre, atom.Kbd, atom.Samp, atom.Tt:
		desc.Mono = true
	}
	return desc
}

// splitWords splits flowed text into words and single-space separators.
func splitWords(s string) []string {
	var out []string
	for len(s) > 0 {
		r, _ := utf8.DecodeRuneInString(s)
		if unicode.IsSpace(r) {
			i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
			if i < 0 {
				i = len(s)
			}
			out = append(out, " ")
			s = s[i:]
			continue
		}
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			i = len(s)
		}
		out = append(out, s[:i])
		s = s[i:]
	}
	return out
}

// splitLines splits preformatted text into lines and "\n" leaves. Tabs
// expand to the next multiple of tabWidth columns.
func splitLines(s string) []string {
	var out []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			out = append(out, expandTabs(s))
			break
		}
		if i > 0 {
			out = append(out, expandTabs(s[:i]))
		}
		out = append(out, "\n")
		s = s[i+1:]
	}
	return out
}

const tabWidth = 4

func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
