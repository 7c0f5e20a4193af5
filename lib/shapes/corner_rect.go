package shapes

// CornerRect is the original integer rectangle contract: the caller
// must supply top_left above and to the left of bottom_right. Unlike
// Rectangle it never reorders corners, it rejects them, keeping the
// original per-axis messages.
type CornerRect struct {
	TopLeft     Point[int]
	BottomRight Point[int]
}

func (r CornerRect) length() int {
	return r.BottomRight.X - r.TopLeft.X
}

func (r CornerRect) height() int {
	return r.BottomRight.Y - r.TopLeft.Y
}

func (r CornerRect) Validate() (bool, error) {
	if r.length() < 0 {
		return false, ErrNegativeLength
	}
	if r.height() < 0 {
		return false, ErrNegativeHeight
	}

	return true, nil
}

func (r CornerRect) Area() float64 {
	return float64(r.length() * r.height())
}
