package unfold

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Vector2 is a point or displacement in the plane. It is a geom.Coord so the
// Plus/Minus/Times/Magnitude family is available directly.
type Vector2 = geom.Coord

// Epsilon is the tolerance used by AlmostEqual.
const Epsilon = 1e-9

// V builds a Vector2.
func V(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func Add(a, b Vector2) Vector2 { return a.Plus(b) }
func Sub(a, b Vector2) Vector2 { return a.Minus(b) }

// Dot returns the scalar product a·b.
func Dot(a, b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Norm returns the Euclidean length of v.
func Norm(v Vector2) float64 {
	return math.Sqrt(Dot(v, v))
}

// Scaled multiplies both coordinates by factor.
func Scaled(v Vector2, factor float64) Vector2 {
	return v.Times(factor)
}

// Normalize returns v scaled to unit length. A zero or non-finite v has no
// direction and yields ErrDegenerateVector.
func Normalize(v Vector2) (Vector2, error) {
	n := Norm(v)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Vector2{}, wrapf(ErrDegenerateVector, "normalize %s", fmtVec(v))
	}
	return v.Times(1 / n), nil
}

// Lerp interpolates linearly: p at t=0, q at t=1.
func Lerp(p, q Vector2, t float64) Vector2 {
	return p.Times(1 - t).Plus(q.Times(t))
}

// AlmostEqual reports whether a and b agree within Epsilon on both axes.
func AlmostEqual(a, b Vector2) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}

func fmtVec(v Vector2) string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
