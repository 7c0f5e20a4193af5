package shapes

// Rectangle accepts its two corners in any order and normalizes them
// before measuring, so corner orientation never makes it invalid.
type Rectangle[T Scalar] struct {
	TopLeft     Point[T]
	BottomRight Point[T]
}

func (r Rectangle[T]) normalized() Rectangle[T] {
	return Rectangle[T]{
		TopLeft: Point[T]{
			X: min(r.TopLeft.X, r.BottomRight.X),
			Y: min(r.TopLeft.Y, r.BottomRight.Y),
		},
		BottomRight: Point[T]{
			X: max(r.TopLeft.X, r.BottomRight.X),
			Y: max(r.TopLeft.Y, r.BottomRight.Y),
		},
	}
}

// length and height assume a normalized receiver.
func (r Rectangle[T]) length() float64 {
	return float64(r.BottomRight.X - r.TopLeft.X)
}

func (r Rectangle[T]) height() float64 {
	return float64(r.BottomRight.Y - r.TopLeft.Y)
}

// Validate accepts any rectangle with a positive length or a positive
// height. Note the or: a zero-length rectangle with positive height
// still validates, and measures area 0.
func (r Rectangle[T]) Validate() (bool, error) {
	n := r.normalized()

	if n.length() <= 0 && n.height() <= 0 {
		return false, ErrInvalidRectangle
	}

	return true, nil
}

func (r Rectangle[T]) Area() float64 {
	n := r.normalized()
	return n.length() * n.height()
}
