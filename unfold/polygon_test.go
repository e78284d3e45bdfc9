package unfold_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyramid-net/unfold"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustPolygon(t *testing.T, pts ...unfold.Vector2) *unfold.Polygon {
	t.Helper()
	p, err := unfold.PolygonOf(pts...)
	require.NoError(t, err)
	return p
}

// rotated returns the vertices of p starting at index k.
func rotated(p *unfold.Polygon, k int) []unfold.Vector2 {
	out := make([]unfold.Vector2, p.Arity())
	for i := range out {
		out[i] = p.At(k + i)
	}
	return out
}

func TestNewPolygon_Arity(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := unfold.NewPolygon(n)
		assert.ErrorIs(t, err, unfold.ErrArityViolation, "n=%d", n)
	}
	p, err := unfold.NewPolygon(5)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Arity())
	assert.Equal(t, 3, unfold.NewTriangle().Arity())
	assert.Equal(t, 4, unfold.NewQuadrilateral().Arity())

	_, err = unfold.PolygonOf(unfold.V(0, 0), unfold.V(1, 1))
	assert.ErrorIs(t, err, unfold.ErrArityViolation)
}

func TestPolygon_FreshVerticesAreDistinct(t *testing.T) {
	p := unfold.NewTriangle()
	p.Set(0, unfold.V(1, 2))
	assert.Equal(t, unfold.V(0, 0), p.At(1))
	assert.False(t, p.Shares(p, 0, 1))
}

func TestPolygon_IndexWraps(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(1, 0), unfold.V(0, 1))
	assert.Equal(t, p.At(2), p.At(-1))
	assert.Equal(t, p.At(0), p.At(3))
	assert.Equal(t, p.At(1), p.At(-5))
	assert.Same(t, p.Handle(0), p.Handle(6))

	a, b := p.Edge(2)
	assert.Equal(t, unfold.V(0, 1), a)
	assert.Equal(t, unfold.V(0, 0), b)
}

func TestPolygon_SetAndReplace(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(0, 3))
	m, err := p.MirrorBySide(0)
	require.NoError(t, err)

	// write-through is visible on the unfolded neighbour
	p.Set(0, unfold.V(-1, 0))
	assert.Equal(t, unfold.V(-1, 0), m.At(1))

	// a replaced vertex no longer aliases
	p.Replace(0, unfold.V(-2, 0))
	assert.False(t, p.Shares(m, 0, 1))
	assert.Equal(t, unfold.V(-1, 0), m.At(1))
	assert.Equal(t, unfold.V(-2, 0), p.At(0))
}

func TestPolygon_PointsAreCopies(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(0, 3))
	pts := p.Points()
	pts[0] = unfold.V(9, 9)
	assert.Equal(t, unfold.V(0, 0), p.At(0))
}

func TestPolygon_BoundsAndArea(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(0, 3))
	b := p.Bounds()
	assert.Equal(t, unfold.V(0, 0), b.Min)
	assert.Equal(t, unfold.V(4, 3), b.Max)
	assert.InDelta(t, 6.0, p.Area(), 1e-12)

	q := mustPolygon(t, unfold.V(0, 0), unfold.V(0, 2), unfold.V(2, 2), unfold.V(2, 0))
	assert.InDelta(t, 4.0, q.Area(), 1e-12)
}

func TestMirrorBySide_SharedEdgeIsSameHandle(t *testing.T) {
	p := mustPolygon(t, unfold.V(5, -1), unfold.V(0, 7), unfold.V(-4, -2))
	for i := 0; i < 3; i++ {
		m, err := p.MirrorBySide(i)
		require.NoError(t, err)
		assert.Same(t, p.Handle(i+1), m.Handle(0), "edge %d", i)
		assert.Same(t, p.Handle(i), m.Handle(1), "edge %d", i)
		assert.False(t, m.Shares(p, 2, i+2), "edge %d", i)
	}
}

func TestMirrorBySide_ReflectsApex(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(1, 3))
	m, err := p.MirrorBySide(0)
	require.NoError(t, err)
	want := []unfold.Vector2{unfold.V(4, 0), unfold.V(0, 0), unfold.V(1, -3)}
	if diff := cmp.Diff(want, m.Points(), approx); diff != "" {
		t.Errorf("mirror (-want +got):\n%s", diff)
	}
	assert.InDelta(t, p.Area(), m.Area(), 1e-12)
}

func TestMirrorBySide_Involution(t *testing.T) {
	for _, p := range []*unfold.Polygon{
		mustPolygon(t, unfold.V(5, -1), unfold.V(0, 7), unfold.V(-4, -2)),
		mustPolygon(t, unfold.V(0, 0), unfold.V(3, -1), unfold.V(4, 2), unfold.V(1, 3)),
		mustPolygon(t, unfold.V(0, 0), unfold.V(2, 0), unfold.V(3, 1), unfold.V(2, 2), unfold.V(0, 2)),
	} {
		for i := -1; i <= p.Arity(); i++ {
			m, err := p.MirrorBySide(i)
			require.NoError(t, err)
			back, err := m.MirrorBySide(0)
			require.NoError(t, err)
			if diff := cmp.Diff(rotated(p, i), back.Points(), approx); diff != "" {
				t.Errorf("arity %d edge %d (-want +got):\n%s", p.Arity(), i, diff)
			}
			assert.Same(t, p.Handle(i), back.Handle(0))
		}
	}
}

func TestMirrorBySide_QuadTraversalOrder(t *testing.T) {
	// unit square mirrored across its right edge (1,0)-(1,1)
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(1, 0), unfold.V(1, 1), unfold.V(0, 1))
	m, err := p.MirrorBySide(1)
	require.NoError(t, err)
	want := []unfold.Vector2{unfold.V(1, 1), unfold.V(1, 0), unfold.V(2, 0), unfold.V(2, 1)}
	if diff := cmp.Diff(want, m.Points(), approx); diff != "" {
		t.Errorf("mirror (-want +got):\n%s", diff)
	}
}

func TestMirrorBySide_DegenerateEdge(t *testing.T) {
	p := mustPolygon(t, unfold.V(1, 1), unfold.V(1, 1), unfold.V(0, 3))
	m, err := p.MirrorBySide(0)
	assert.ErrorIs(t, err, unfold.ErrDegenerateVector)
	assert.Nil(t, m)
}

func TestMirrorBySide_ZeroPolygon(t *testing.T) {
	_, err := (&unfold.Polygon{}).MirrorBySide(0)
	assert.ErrorIs(t, err, unfold.ErrArityViolation)
}

func TestOuterStripe_Width(t *testing.T) {
	p := mustPolygon(t, unfold.V(5, -1), unfold.V(0, 7), unfold.V(-4, -2))
	for i := 0; i < 3; i++ {
		h, err := p.Altitude(i)
		require.NoError(t, err)
		for _, w := range []float64{0.01, 0.5, 1, h / 2, h * 0.99} {
			s, err := p.OuterStripe(i, w)
			require.NoError(t, err, "edge %d width %g", i, w)
			require.Equal(t, 4, s.Arity())

			b, a := s.At(0), s.At(1)
			a1, b1 := s.At(2), s.At(3)
			for _, q := range []unfold.Vector2{a1, b1} {
				foot, err := unfold.Project(a, b, q)
				require.NoError(t, err)
				assert.InDelta(t, w, unfold.Distance(q, foot), 1e-9, "edge %d width %g", i, w)
			}
			// long sides are parallel
			d1, d2 := unfold.Sub(b, a), unfold.Sub(b1, a1)
			assert.InDelta(t, 0.0, d1.X*d2.Y-d1.Y*d2.X, 1e-9)
		}
	}
}

func TestOuterStripe_CornersOnMirroredTriangle(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(1, 3))
	s, err := p.OuterStripe(0, 1)
	require.NoError(t, err)

	// c1 = (1, -3); a1 on c1-a and b1 on c1-b, at a third of the way from the edge
	want := []unfold.Vector2{unfold.V(4, 0), unfold.V(0, 0), unfold.V(1.0/3, -1), unfold.V(3, -1)}
	if diff := cmp.Diff(want, s.Points(), approx); diff != "" {
		t.Errorf("stripe (-want +got):\n%s", diff)
	}
	assert.Same(t, p.Handle(1), s.Handle(0))
	assert.Same(t, p.Handle(0), s.Handle(1))
}

func TestOuterStripe_WidthOutOfRange(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(1, 3))
	for _, w := range []float64{3, 3.5, 0, -1, math.NaN()} {
		s, err := p.OuterStripe(0, w)
		assert.ErrorIs(t, err, unfold.ErrDegenerateStripe, "width %g", w)
		assert.Nil(t, s)
	}
}

func TestOuterStripe_FlatTriangle(t *testing.T) {
	p := mustPolygon(t, unfold.V(0, 0), unfold.V(4, 0), unfold.V(2, 0))
	_, err := p.OuterStripe(0, 1)
	assert.ErrorIs(t, err, unfold.ErrDegenerateStripe)

	q := mustPolygon(t, unfold.V(1, 1), unfold.V(1, 1), unfold.V(2, 0))
	_, err = q.OuterStripe(0, 1)
	assert.ErrorIs(t, err, unfold.ErrDegenerateVector)
}

func TestOuterStripe_TriangleOnly(t *testing.T) {
	q := mustPolygon(t, unfold.V(0, 0), unfold.V(1, 0), unfold.V(1, 1), unfold.V(0, 1))
	_, err := q.OuterStripe(0, 0.1)
	assert.ErrorIs(t, err, unfold.ErrArityViolation)

	_, err = q.Altitude(0)
	assert.ErrorIs(t, err, unfold.ErrArityViolation)
}
