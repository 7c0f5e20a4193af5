// Package shapes validates geometric shapes and computes their areas.
package shapes

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidRectangle = errors.New("invalid rectangle: both length and height are zero")
	ErrInvalidCircle    = errors.New("invalid circle: radius must be positive")
	ErrInvalidPolygon   = errors.New("invalid polygon: at least 4 points are required")
	ErrNegativeLength   = errors.New("Length cannot be negative")
	ErrNegativeHeight   = errors.New("Width cannot be negative!")

	// ErrInvalidShape is the fallback for a Shape whose Validate reports
	// failure without giving a reason.
	ErrInvalidShape = errors.New("the shape object is invalid")
)

// Shape is the closed set of figures this package can measure:
// Rectangle, Circle, Polygon and the legacy CornerRect.
type Shape interface {
	Validate() (bool, error)
	Area() float64
}

// ComputeArea validates s and returns its area. Validation errors are
// returned verbatim.
func ComputeArea(s Shape) (float64, error) {
	ok, err := s.Validate()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidShape
	}

	return s.Area(), nil
}

// IsInvalid reports whether err is a shape validation failure, as
// opposed to an unexpected error.
func IsInvalid(err error) bool {
	for _, e := range []error{
		ErrInvalidRectangle,
		ErrInvalidCircle,
		ErrInvalidPolygon,
		ErrNegativeLength,
		ErrNegativeHeight,
		ErrInvalidShape,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
