package unfold

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// DefaultScale converts input units to SVG user units (353.3307 per 10
// input units).
const DefaultScale = 353.3307 / 10

// DefaultEncoder renders with DefaultScale.
var DefaultEncoder = Encoder{Scale: DefaultScale}

// Encoder turns polygons into SVG path markup, multiplying every coordinate
// by Scale.
type Encoder struct {
	Scale float64
}

func (e Encoder) point(v Vector2) string {
	return fmt.Sprintf("%.4f,%.4f", v.X*e.Scale, v.Y*e.Scale)
}

// PathData returns "M x1,y1 x2,y2 ... Z", or "" for nil polygons and
// polygons with fewer than two vertices.
func (e Encoder) PathData(p *Polygon) string {
	if p == nil || p.Arity() < 2 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M")
	for _, v := range p.vertices {
		sb.WriteString(" ")
		sb.WriteString(e.point(*v))
	}
	sb.WriteString(" Z")
	return sb.String()
}

// RenderPath wraps PathData in a <path/> element.
func (e Encoder) RenderPath(p *Polygon) string {
	d := e.PathData(p)
	if d == "" {
		return ""
	}
	return `<path d="` + d + `" />`
}

// RenderPaths renders one element per line, skipping polygons that render to
// nothing.
func (e Encoder) RenderPaths(ps []*Polygon) string {
	var sb strings.Builder
	for _, p := range ps {
		if s := e.RenderPath(p); s != "" {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Bounds is the bounding box of ps in output units.
func (e Encoder) Bounds(ps []*Polygon) (geom.Rect, bool) {
	var (
		r  geom.Rect
		ok bool
	)
	for _, p := range ps {
		if p == nil || p.Arity() == 0 {
			continue
		}
		b := p.Bounds()
		b.Min, b.Max = Scaled(b.Min, e.Scale), Scaled(b.Max, e.Scale)
		if !ok {
			r, ok = b, true
			continue
		}
		r.ExpandToContainRect(b)
	}
	return r, ok
}

func PathData(p *Polygon) string       { return DefaultEncoder.PathData(p) }
func RenderPath(p *Polygon) string     { return DefaultEncoder.RenderPath(p) }
func RenderPaths(ps []*Polygon) string { return DefaultEncoder.RenderPaths(ps) }

// Style attributes used by WriteDocument.
const (
	DocumentStyle = "stroke: black; stroke-width: 1; fill: none"
	StripeStyle   = "fill: #dddddd"
)

////////////////////////////////////////////////////////////////////////////
// SVG document writer

// SVG streams an SVG document. The first write error is kept and returned
// by Err; later writes are dropped.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

// Err returns the first write error.
func (svg *SVG) Err() error {
	return svg.err
}

// extraparams turns "k=v" strings into attributes and anything else into a
// style attribute.
// BUGBUG: not quoting aware
func extraparams(s []string) string {
	ep := ""
	for _, p := range s {
		if strings.Index(p, "=") > 0 {
			ep += p + " "
		} else if len(p) > 0 {
			ep += fmt.Sprintf("style='%s' ", p)
		}
	}
	return ep
}

func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%.4f %.4f %.4f %.4f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) StartGroup(s ...string) {
	svg.printf("<g %s>\n", extraparams(s))
}

func (svg *SVG) EndGroup() {
	svg.printf("</g>\n")
}

// Path writes a path element with precomputed path data.
func (svg *SVG) Path(d string, s ...string) {
	svg.printf("<path %sd=\"%s\" />\n", extraparams(s), d)
}

// WriteDocument writes faces and stripes as a standalone SVG document whose
// viewBox encloses everything plus margin output units on each side.
func (e Encoder) WriteDocument(w io.Writer, faces, stripes []*Polygon, margin float64) error {
	all := append(append([]*Polygon{}, faces...), stripes...)
	bounds, ok := e.Bounds(all)
	if !ok {
		bounds = geom.Rect{}
	}
	bounds.Min = bounds.Min.Minus(V(margin, margin))
	bounds.Max = bounds.Max.Plus(V(margin, margin))

	svg := NewSVG(w)
	svg.Start(bounds, DocumentStyle)
	svg.StartGroup("class=\"stripes\"", StripeStyle)
	for _, p := range stripes {
		if d := e.PathData(p); d != "" {
			svg.Path(d)
		}
	}
	svg.EndGroup()
	svg.StartGroup("class=\"faces\"")
	for _, p := range faces {
		if d := e.PathData(p); d != "" {
			svg.Path(d)
		}
	}
	svg.EndGroup()
	svg.End()
	return svg.Err()
}
