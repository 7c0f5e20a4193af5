package shapes

import (
	"golang.org/x/exp/constraints"
)

// Scalar constrains coordinates to any numeric type. A single shape
// uses one coordinate type throughout.
type Scalar interface {
	constraints.Integer | constraints.Float
}

type Point[T Scalar] struct {
	X T
	Y T
}
