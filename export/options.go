package export

import "errors"

// ErrNothingToDraw is returned when every polygon passed in is nil.
var ErrNothingToDraw = errors.New("export: nothing to draw")

// Option customizes WritePDF and WritePNG.
type Option func(*config)

type config struct {
	margin    float64 // net units around the drawing
	lineWidth float64 // points (PDF) or pixels (PNG)
	size      int     // PNG long side in pixels
}

func newConfig(opts []Option) config {
	c := config{
		margin:    1,
		lineWidth: 0.5,
		size:      1024,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMargin sets the blank border around the net, in net units. Panics on
// negative values.
func WithMargin(m float64) Option {
	if m < 0 {
		panic("export: WithMargin(negative)")
	}
	return func(c *config) {
		c.margin = m
	}
}

// WithLineWidth sets the stroke width. Panics on non-positive values.
func WithLineWidth(w float64) Option {
	if w <= 0 {
		panic("export: WithLineWidth(non-positive)")
	}
	return func(c *config) {
		c.lineWidth = w
	}
}

// WithSize sets the long side of the PNG preview in pixels. Panics below 16.
func WithSize(px int) Option {
	if px < 16 {
		panic("export: WithSize(too small)")
	}
	return func(c *config) {
		c.size = px
	}
}
