package htmldoc

import (
	"log"

	"github.com/rjkroege/textsel/fonts"
)

// Option configures a Document.
type Option func(*config)

type config struct {
	fonts     Fonts
	baseSize  float64
	margin    float64
	paraSpace float64
	logger    *log.Logger
}

func defaultConfig() config {
	return config{
		baseSize:  fonts.DefaultSize,
		margin:    8,
		paraSpace: 0.5,
	}
}

// WithFonts is an Option that sets the font back end used for layout. The
// default is a Monospace font sized from the base size.
func WithFonts(f Fonts) Option {
	return func(c *config) {
		c.fonts = f
	}
}

// WithBaseSize is an Option that sets the body text size. Headings scale
// from it.
func WithBaseSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.baseSize = size
		}
	}
}

// WithMargin is an Option that sets the page margin on every side.
func WithMargin(m float64) Option {
	return func(c *config) {
		if m >= 0 {
			c.margin = m
		}
	}
}

// WithParagraphSpacing is an Option that sets the gap around paragraphs,
// headings and lists as a multiple of the body line height.
func WithParagraphSpacing(lines float64) Option {
	return func(c *config) {
		if lines >= 0 {
			c.paraSpace = lines
		}
	}
}

// WithLogger is an Option that sends layout diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
