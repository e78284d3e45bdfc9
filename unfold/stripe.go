package unfold

import "math"

// Altitude returns the distance from the apex opposite edge i of a triangle
// to the line carrying that edge.
func (p *Polygon) Altitude(i int) (float64, error) {
	if err := p.checkTriangle("altitude"); err != nil {
		return 0, err
	}
	a, b := p.Edge(i)
	proj, err := Project(a, b, p.At(i+2))
	if err != nil {
		return 0, wrapf(err, "altitude of edge %d", i)
	}
	return Norm(Sub(p.At(i+2), proj)), nil
}

// OuterStripe builds the glue tab of constant width along edge i of a
// triangle.
//
// With a, b the edge and c the apex opposite to it, the tab lies inside the
// mirror image of the triangle across a-b: its long sides are a-b and the
// segment between c's mirror image c1 and the edge, at distance width from
// a-b. The result is [b, a, a1, b1]; b and a are the triangle's own handles.
//
// width must satisfy 0 < width < h where h is the altitude from c, otherwise
// ErrDegenerateStripe is returned.
func (p *Polygon) OuterStripe(i int, width float64) (*Polygon, error) {
	if err := p.checkTriangle("outer stripe"); err != nil {
		return nil, err
	}
	i = p.index(i)
	a, b := p.vertices[i], p.vertices[p.index(i+1)]
	c := *p.vertices[p.index(i+2)]

	proj, err := Project(*a, *b, c)
	if err != nil {
		return nil, wrapf(err, "outer stripe on edge %d", i)
	}
	h := Norm(Sub(c, proj))
	if h == 0 {
		return nil, wrapf(ErrDegenerateStripe, "outer stripe on edge %d: apex lies on the edge", i)
	}
	if math.IsNaN(width) || width <= 0 || width >= h {
		return nil, wrapf(ErrDegenerateStripe, "outer stripe on edge %d: width %g outside (0, %g)", i, width, h)
	}

	c1 := Sub(proj.Times(2), c)
	coefProp := (h - width) / h

	out := newPolygon(4)
	out.vertices[0] = b
	out.vertices[1] = a
	*out.vertices[2] = Lerp(c1, *a, coefProp)
	*out.vertices[3] = Lerp(c1, *b, coefProp)
	return out, nil
}

func (p *Polygon) checkTriangle(op string) error {
	if p == nil || len(p.vertices) != 3 {
		n := 0
		if p != nil {
			n = len(p.vertices)
		}
		return wrapf(ErrArityViolation, "%s needs a triangle, got %d vertices", op, n)
	}
	return nil
}
