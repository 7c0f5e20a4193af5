package shapes

import (
	"math"
)

// Polygon is an ordered list of vertices forming a closed loop: the
// last point connects back to the first. No self-intersection check is
// done.
type Polygon[T Scalar] struct {
	Points []Point[T]
}

func (p Polygon[T]) Validate() (bool, error) {
	if len(p.Points) <= 3 {
		return false, ErrInvalidPolygon
	}

	return true, nil
}

// Area uses the shoelace formula. The absolute value makes the result
// independent of winding direction.
func (p Polygon[T]) Area() float64 {
	n := len(p.Points)

	sum := 0.0
	for i, a := range p.Points {
		b := p.Points[(i+1)%n]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}

	return math.Abs(sum) / 2
}
