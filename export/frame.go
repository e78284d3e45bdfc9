package export

import (
	"github.com/jbeda/geom"

	"pyramid-net/unfold"
)

// frame maps net coordinates onto a page of width x height output units.
type frame struct {
	bounds        geom.Rect
	scale         float64
	margin        float64 // output units
	width, height float64
	flipY         bool
}

func netBounds(polys []*unfold.Polygon) (geom.Rect, error) {
	pts := unfold.Points(polys...)
	if len(pts) == 0 {
		return geom.Rect{}, ErrNothingToDraw
	}
	r := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p)
	}
	return r, nil
}

// newFrame scales net units by scale and adds margin net units on each side.
func newFrame(polys []*unfold.Polygon, scale, margin float64, flipY bool) (frame, error) {
	b, err := netBounds(polys)
	if err != nil {
		return frame{}, err
	}
	f := frame{bounds: b, scale: scale, margin: margin * scale, flipY: flipY}
	f.width = b.Width()*scale + 2*f.margin
	f.height = b.Height()*scale + 2*f.margin
	return f, nil
}

// fitFrame picks the scale that makes the long side of the page size output
// units, margin included.
func fitFrame(polys []*unfold.Polygon, size int, margin float64, flipY bool) (frame, error) {
	b, err := netBounds(polys)
	if err != nil {
		return frame{}, err
	}
	span := max(b.Width(), b.Height()) + 2*margin
	if span == 0 {
		span = 1
	}
	return newFrame(polys, float64(size)/span, margin, flipY)
}

func (f frame) place(v unfold.Vector2) (x, y float64) {
	x = (v.X-f.bounds.Min.X)*f.scale + f.margin
	if f.flipY {
		y = (f.bounds.Max.Y-v.Y)*f.scale + f.margin
	} else {
		y = (v.Y-f.bounds.Min.Y)*f.scale + f.margin
	}
	return x, y
}

// pather is the path subset shared by the PDF builder and the gg context.
type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

func (f frame) trace(dst pather, p *unfold.Polygon) {
	for i, v := range p.Points() {
		x, y := f.place(v)
		if i == 0 {
			dst.MoveTo(x, y)
			continue
		}
		dst.LineTo(x, y)
	}
}

func nonNil(groups ...[]*unfold.Polygon) []*unfold.Polygon {
	var out []*unfold.Polygon
	for _, g := range groups {
		for _, p := range g {
			if p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}
