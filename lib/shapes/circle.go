package shapes

import (
	"math"
)

type Circle[T Scalar] struct {
	Center Point[T]
	Radius T
}

func (c Circle[T]) Validate() (bool, error) {
	if c.Radius <= 0 {
		return false, ErrInvalidCircle
	}

	return true, nil
}

func (c Circle[T]) Area() float64 {
	r := float64(c.Radius)
	return math.Pi * r * r
}
