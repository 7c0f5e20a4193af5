package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/areacalc/lib/consoles"
	"github.com/pescuma/areacalc/lib/shapes"
)

func TestParsePoint(t *testing.T) {
	t.Parallel()

	p, err := parsePoint("1.5, -2")
	assert.NoError(t, err)
	assert.Equal(t, shapes.Point[float64]{X: 1.5, Y: -2}, p)

	_, err = parsePoint("1.5")
	assert.Error(t, err)

	_, err = parsePoint("a,b")
	assert.Error(t, err)
}

func TestParseIntPoint(t *testing.T) {
	t.Parallel()

	p, err := parseIntPoint("4,3")
	assert.NoError(t, err)
	assert.Equal(t, shapes.Point[int]{X: 4, Y: 3}, p)

	_, err = parseIntPoint("1.5,2")
	assert.Error(t, err)
}

func TestCalcRectangleCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := CalcRectangleCmd{TopLeft: "4,3", BottomRight: "0,0"}
	err := cmd.Run(&context{console: consoles.NewWriterConsole(&out)})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Area: 12.00")
}

func TestCalcPolygonCmdTriangle(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := CalcPolygonCmd{Points: []string{"0,0", "4,0", "0,3"}}
	err := cmd.Run(&context{console: consoles.NewWriterConsole(&out)})

	assert.ErrorIs(t, err, shapes.ErrInvalidPolygon)
	assert.Empty(t, out.String())
}

func TestCalcCornersCmdRejectsUnordered(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := CalcCornersCmd{TopLeft: "4,0", BottomRight: "0,3"}
	err := cmd.Run(&context{console: consoles.NewWriterConsole(&out)})

	assert.ErrorIs(t, err, shapes.ErrNegativeLength)
}
