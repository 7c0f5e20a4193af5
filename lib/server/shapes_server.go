package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/areacalc/lib/shapes"
)

// Request payloads use snake_case field names, matching the operation
// names at the boundary.

type PointParams struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type IntPointParams struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RectangleParams struct {
	TopLeft     PointParams `json:"top_left"`
	BottomRight PointParams `json:"bottom_right"`
}

type CircleParams struct {
	Center PointParams `json:"center"`
	Radius float64     `json:"radius"`
}

type PolygonParams struct {
	Points []PointParams `json:"points"`
}

type CornerRectParams struct {
	TopLeft     IntPointParams `json:"top_left"`
	BottomRight IntPointParams `json:"bottom_right"`
}

func (s *server) initShapes(r *gin.Engine) {
	r.POST("/api/calc_rectangle_area", postP[RectangleParams](s.calcRectangleArea))
	r.POST("/api/calc_circle_area", postP[CircleParams](s.calcCircleArea))
	r.POST("/api/calc_polygon_area", postP[PolygonParams](s.calcPolygonArea))
	r.POST("/api/calc_area", postP[CornerRectParams](s.calcArea))
}

func (s *server) calcRectangleArea(params *RectangleParams) (any, error) {
	area, err := shapes.ComputeArea(shapes.Rectangle[float64]{
		TopLeft:     toPoint(params.TopLeft),
		BottomRight: toPoint(params.BottomRight),
	})
	if err != nil {
		return nil, err
	}

	return gin.H{"area": area}, nil
}

func (s *server) calcCircleArea(params *CircleParams) (any, error) {
	area, err := shapes.ComputeArea(shapes.Circle[float64]{
		Center: toPoint(params.Center),
		Radius: params.Radius,
	})
	if err != nil {
		return nil, err
	}

	return gin.H{"area": area}, nil
}

func (s *server) calcPolygonArea(params *PolygonParams) (any, error) {
	area, err := shapes.ComputeArea(shapes.Polygon[float64]{
		Points: lo.Map(params.Points, func(p PointParams, _ int) shapes.Point[float64] {
			return toPoint(p)
		}),
	})
	if err != nil {
		return nil, err
	}

	return gin.H{"area": area}, nil
}

func (s *server) calcArea(params *CornerRectParams) (any, error) {
	area, err := shapes.ComputeArea(shapes.CornerRect{
		TopLeft:     shapes.Point[int]{X: params.TopLeft.X, Y: params.TopLeft.Y},
		BottomRight: shapes.Point[int]{X: params.BottomRight.X, Y: params.BottomRight.Y},
	})
	if err != nil {
		return nil, err
	}

	return gin.H{"area": area}, nil
}

func toPoint(p PointParams) shapes.Point[float64] {
	return shapes.Point[float64]{X: p.X, Y: p.Y}
}
