package unfold

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"go.uber.org/zap"
)

// Face names one of the four triangles of the net.
type Face int

const (
	FaceSeed Face = iota
	FaceBottom
	FaceRight
	FaceLeft
)

func (f Face) String() string {
	switch f {
	case FaceSeed:
		return "seed"
	case FaceBottom:
		return "bottom"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// StripeEdge selects the edge of a face that receives a glue tab.
type StripeEdge struct {
	Face Face
	Edge int
}

func (s StripeEdge) String() string {
	return fmt.Sprintf("%s/%d", s.Face, s.Edge)
}

// DefaultStripeEdges puts tabs on the three outer edges needed to glue the
// folded tetrahedron shut: two on the bottom face, one on the left face.
var DefaultStripeEdges = []StripeEdge{
	{Face: FaceBottom, Edge: 1},
	{Face: FaceBottom, Edge: 2},
	{Face: FaceLeft, Edge: 1},
}

// Net is the unfolded regular triangular pyramid: a seed face, the three
// faces unfolded across its edges, and the glue tabs.
type Net struct {
	Edge        float64
	StripeWidth float64

	faces   [4]*Polygon
	Stripes []*Polygon
	// StripeEdges[i] is where Stripes[i] is attached.
	StripeEdges []StripeEdge
}

// Part is a named polygon of the net.
type Part struct {
	Name    string
	Stripe  bool
	Polygon *Polygon
}

// BuildNet unfolds a regular triangular pyramid with the given edge length
// and attaches glue tabs of the given width.
//
// The seed face is centred on the origin with its base parallel to the X axis:
// (a/2, -r), (0, h-r), (-a/2, -r) with r = a√3/6 the inscribed radius and
// h = a√3/2 the face height. The bottom, right and left faces are the seed
// mirrored across its edges 2, 0 and 1.
func BuildNet(edge, stripeWidth float64, opts ...NetOption) (*Net, error) {
	if math.IsNaN(edge) || math.IsInf(edge, 0) || edge <= 0 {
		return nil, wrapf(ErrInvalidParameter, "build net: edge length %g", edge)
	}
	cfg := defaultNetConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With(zap.Float64("edge", edge), zap.Float64("stripe_width", stripeWidth))

	r := edge * math.Sqrt(3) / 6
	h := edge * math.Sqrt(3) / 2

	seed := NewTriangle()
	seed.Set(0, V(edge/2, -r))
	seed.Set(1, V(0, h-r))
	seed.Set(2, V(-edge/2, -r))

	n := &Net{Edge: edge, StripeWidth: stripeWidth}
	n.faces[FaceSeed] = seed

	for _, u := range []struct {
		face Face
		edge int
	}{
		{FaceBottom, 2},
		{FaceRight, 0},
		{FaceLeft, 1},
	} {
		p, err := seed.MirrorBySide(u.edge)
		if err != nil {
			return nil, wrapf(err, "build net: %s face", u.face)
		}
		n.faces[u.face] = p
		log.Debug("face unfolded",
			zap.Stringer("face", u.face),
			zap.Int("seed_edge", u.edge),
			zap.Float64("area", p.Area()))
	}

	for _, se := range cfg.stripes {
		face := n.Face(se.Face)
		if face == nil {
			return nil, wrapf(ErrInvalidParameter, "build net: stripe on unknown face %s", se.Face)
		}
		s, err := face.OuterStripe(se.Edge, stripeWidth)
		if err != nil {
			return nil, wrapf(err, "build net: stripe %s", se)
		}
		n.Stripes = append(n.Stripes, s)
		n.StripeEdges = append(n.StripeEdges, se)
		log.Debug("stripe attached",
			zap.Stringer("at", se),
			zap.Float64("area", s.Area()))
	}

	log.Debug("net built",
		zap.Int("polygons", len(n.Polygons())),
		zap.Float64("diameter", n.Diameter()))
	return n, nil
}

// Face returns one of the four faces, or nil for an unknown Face.
func (n *Net) Face(f Face) *Polygon {
	if f < FaceSeed || f > FaceLeft {
		return nil
	}
	return n.faces[f]
}

// Faces returns seed, bottom, right and left.
func (n *Net) Faces() []*Polygon {
	return append([]*Polygon(nil), n.faces[:]...)
}

// Polygons returns the faces followed by the stripes.
func (n *Net) Polygons() []*Polygon {
	return append(n.Faces(), n.Stripes...)
}

// Parts names every polygon of the net, faces first.
func (n *Net) Parts() []Part {
	out := make([]Part, 0, len(n.faces)+len(n.Stripes))
	for f, p := range n.faces {
		out = append(out, Part{Name: Face(f).String(), Polygon: p})
	}
	for i, s := range n.Stripes {
		out = append(out, Part{Name: "stripe " + n.StripeEdges[i].String(), Stripe: true, Polygon: s})
	}
	return out
}

// Diameter is the largest distance between any two vertices of the net.
func (n *Net) Diameter() float64 {
	return Diameter(Points(n.Polygons()...))
}

// Bounds is the bounding box of the whole net in input units.
func (n *Net) Bounds() geom.Rect {
	ps := n.Polygons()
	r := ps[0].Bounds()
	for _, p := range ps[1:] {
		r.ExpandToContainRect(p.Bounds())
	}
	return r
}
