package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type silentlyInvalidShape struct {
}

func (s silentlyInvalidShape) Validate() (bool, error) {
	return false, nil
}

func (s silentlyInvalidShape) Area() float64 {
	return 42
}

func TestComputeAreaFallbackError(t *testing.T) {
	t.Parallel()

	_, err := ComputeArea(silentlyInvalidShape{})

	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Equal(t, "the shape object is invalid", err.Error())
}

func TestIsInvalid(t *testing.T) {
	t.Parallel()

	_, err := ComputeArea(Circle[int]{Radius: -1})
	assert.True(t, IsInvalid(err))

	assert.False(t, IsInvalid(assert.AnError))
	assert.False(t, IsInvalid(nil))
}
