package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/areacalc/lib/consoles"
)

var cli struct {
	Server ServerCmd `cmd:"" help:"Start the HTTP API server."`

	Calc struct {
		Rectangle CalcRectangleCmd `cmd:"" help:"Compute the area of a rectangle. Corners may be given in any order."`
		Circle    CalcCircleCmd    `cmd:"" help:"Compute the area of a circle."`
		Polygon   CalcPolygonCmd   `cmd:"" help:"Compute the area of a polygon from its ordered vertices."`
		Corners   CalcCornersCmd   `cmd:"" help:"Compute the area of an integer rectangle from ordered top-left/bottom-right corners."`
	} `cmd:""`
}

type context struct {
	console consoles.Console
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	err := ctx.Run(&context{
		console: consoles.NewStdOutConsole(),
	})
	ctx.FatalIfErrorf(err)
}
