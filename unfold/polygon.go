package unfold

import (
	"math"

	"github.com/jbeda/geom"
)

// Polygon is a closed polygon with a fixed number of vertices.
//
// Each vertex is stored behind a *Vector2 handle. Polygons built by
// MirrorBySide and OuterStripe reuse the handles of the edge they were built
// from, so the two polygons keep that edge vertex-exact: writing through Set
// on one is visible on the other. Replace installs a fresh handle and ends
// the sharing for that vertex.
type Polygon struct {
	vertices []*Vector2
}

// NewPolygon returns a polygon with n distinct zero vertices. n must be at
// least 3.
func NewPolygon(n int) (*Polygon, error) {
	if n < 3 {
		return nil, wrapf(ErrArityViolation, "new polygon with %d vertices", n)
	}
	return newPolygon(n), nil
}

// NewTriangle returns a triangle with zero vertices.
func NewTriangle() *Polygon { return newPolygon(3) }

// NewQuadrilateral returns a quadrilateral with zero vertices.
func NewQuadrilateral() *Polygon { return newPolygon(4) }

// PolygonOf builds a polygon holding fresh handles for points.
func PolygonOf(points ...Vector2) (*Polygon, error) {
	p, err := NewPolygon(len(points))
	if err != nil {
		return nil, err
	}
	for i, pt := range points {
		*p.vertices[i] = pt
	}
	return p, nil
}

func newPolygon(n int) *Polygon {
	p := &Polygon{vertices: make([]*Vector2, n)}
	for i := range p.vertices {
		p.vertices[i] = new(Vector2)
	}
	return p
}

// Arity is the number of vertices.
func (p *Polygon) Arity() int {
	return len(p.vertices)
}

// index maps any integer onto a vertex slot, wrapping in both directions.
func (p *Polygon) index(i int) int {
	n := len(p.vertices)
	return ((i % n) + n) % n
}

func (p *Polygon) checkArity(op string) error {
	if p == nil || len(p.vertices) < 3 {
		return wrapf(ErrArityViolation, "%s", op)
	}
	return nil
}

// At returns a copy of vertex i.
func (p *Polygon) At(i int) Vector2 {
	return *p.vertices[p.index(i)]
}

// Handle returns the shared storage of vertex i.
func (p *Polygon) Handle(i int) *Vector2 {
	return p.vertices[p.index(i)]
}

// Set overwrites vertex i in place. Polygons sharing the handle see the
// change.
func (p *Polygon) Set(i int, v Vector2) {
	*p.vertices[p.index(i)] = v
}

// Replace gives vertex i its own storage holding v.
func (p *Polygon) Replace(i int, v Vector2) {
	p.vertices[p.index(i)] = &v
}

// Shares reports whether vertex i of p and vertex j of other are the same
// handle.
func (p *Polygon) Shares(other *Polygon, i, j int) bool {
	return p.Handle(i) == other.Handle(j)
}

// Edge returns the endpoints of edge i.
func (p *Polygon) Edge(i int) (a, b Vector2) {
	return p.At(i), p.At(i + 1)
}

// Points returns copies of all vertices in order.
func (p *Polygon) Points() []Vector2 {
	out := make([]Vector2, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = *v
	}
	return out
}

// Bounds is the axis-aligned bounding box of the vertices.
func (p *Polygon) Bounds() geom.Rect {
	r := geom.Rect{Min: *p.vertices[0], Max: *p.vertices[0]}
	for _, v := range p.vertices[1:] {
		r.ExpandToContainCoord(*v)
	}
	return r
}

// Area is the unsigned shoelace area.
func (p *Polygon) Area() float64 {
	area := 0.0
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(area) / 2
}

// MirrorBySide unfolds p across edge i.
//
// With a = vertex i and b = vertex i+1, the result starts with the handles of
// b and a (the shared edge, reversed), followed by the reflections of the
// remaining vertices across line a-b taken backwards from the vertex before
// a. That order keeps the winding of the new face consistent with the
// reversed edge, so faces unfolded from each other tile without gaps.
func (p *Polygon) MirrorBySide(i int) (*Polygon, error) {
	if err := p.checkArity("mirror by side"); err != nil {
		return nil, err
	}
	n := p.Arity()
	i = p.index(i)
	a, b := p.vertices[i], p.vertices[p.index(i+1)]

	out := newPolygon(n)
	out.vertices[0] = b
	out.vertices[1] = a
	for k := 2; k < n; k++ {
		src := *p.vertices[p.index(i-k+1)]
		r, err := Reflect(*a, *b, src)
		if err != nil {
			return nil, wrapf(err, "mirror by side %d", i)
		}
		*out.vertices[k] = r
	}
	return out, nil
}
