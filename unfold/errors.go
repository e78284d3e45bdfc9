package unfold

import (
	"errors"
	"fmt"
)

// ErrDegenerateVector is returned when a direction has to be derived from a
// zero-length (or non-finite) vector, e.g. projecting onto a line through two
// coincident points.
var ErrDegenerateVector = errors.New("unfold: degenerate vector")

// ErrDegenerateStripe is returned by OuterStripe when the stripe width is not
// strictly between zero and the altitude of the apex opposite the edge.
var ErrDegenerateStripe = errors.New("unfold: degenerate stripe")

// ErrArityViolation is returned for polygons with fewer than three vertices
// and for triangle-only operations called on other polygons.
var ErrArityViolation = errors.New("unfold: arity violation")

// ErrInvalidParameter is returned by BuildNet for an unusable edge length.
var ErrInvalidParameter = errors.New("unfold: invalid parameter")

// wrapf prefixes err with the operation that failed, keeping it matchable
// with errors.Is.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
