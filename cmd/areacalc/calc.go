package main

import (
	"github.com/dustin/go-humanize"

	"github.com/pescuma/areacalc/lib/shapes"
)

type CalcRectangleCmd struct {
	TopLeft     string `arg:"" help:"One corner of the rectangle, as X,Y."`
	BottomRight string `arg:"" help:"The opposite corner, as X,Y."`
}

func (c *CalcRectangleCmd) Run(ctx *context) error {
	tl, err := parsePoint(c.TopLeft)
	if err != nil {
		return err
	}

	br, err := parsePoint(c.BottomRight)
	if err != nil {
		return err
	}

	return printArea(ctx, shapes.Rectangle[float64]{
		TopLeft:     tl,
		BottomRight: br,
	})
}

type CalcCircleCmd struct {
	Center string  `arg:"" help:"Center of the circle, as X,Y."`
	Radius float64 `arg:"" help:"Radius of the circle."`
}

func (c *CalcCircleCmd) Run(ctx *context) error {
	center, err := parsePoint(c.Center)
	if err != nil {
		return err
	}

	return printArea(ctx, shapes.Circle[float64]{
		Center: center,
		Radius: c.Radius,
	})
}

type CalcPolygonCmd struct {
	Points []string `arg:"" help:"Vertices of the polygon, in order, each as X,Y."`
}

func (c *CalcPolygonCmd) Run(ctx *context) error {
	points, err := parsePoints(c.Points)
	if err != nil {
		return err
	}

	return printArea(ctx, shapes.Polygon[float64]{
		Points: points,
	})
}

type CalcCornersCmd struct {
	TopLeft     string `arg:"" help:"Top left corner, as X,Y."`
	BottomRight string `arg:"" help:"Bottom right corner, as X,Y."`
}

func (c *CalcCornersCmd) Run(ctx *context) error {
	tl, err := parseIntPoint(c.TopLeft)
	if err != nil {
		return err
	}

	br, err := parseIntPoint(c.BottomRight)
	if err != nil {
		return err
	}

	return printArea(ctx, shapes.CornerRect{
		TopLeft:     tl,
		BottomRight: br,
	})
}

func printArea(ctx *context, s shapes.Shape) error {
	area, err := shapes.ComputeArea(s)
	if err != nil {
		return err
	}

	ctx.console.Printf("Area: %v\n", humanize.FormatFloat("#,###.##", area))
	return nil
}
