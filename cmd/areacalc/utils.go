package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/areacalc/lib/shapes"
)

func splitPoint(s string) (string, string, error) {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	if len(parts) != 2 {
		return "", "", errors.Errorf("invalid point: '%v' (expected X,Y)", s)
	}

	return parts[0], parts[1], nil
}

func parsePoint(s string) (shapes.Point[float64], error) {
	xs, ys, err := splitPoint(s)
	if err != nil {
		return shapes.Point[float64]{}, err
	}

	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return shapes.Point[float64]{}, errors.Errorf("invalid point: '%v' (%v is not a number)", s, xs)
	}

	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return shapes.Point[float64]{}, errors.Errorf("invalid point: '%v' (%v is not a number)", s, ys)
	}

	return shapes.Point[float64]{X: x, Y: y}, nil
}

func parsePoints(ss []string) ([]shapes.Point[float64], error) {
	result := make([]shapes.Point[float64], 0, len(ss))

	for _, s := range ss {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}

		result = append(result, p)
	}

	return result, nil
}

func parseIntPoint(s string) (shapes.Point[int], error) {
	xs, ys, err := splitPoint(s)
	if err != nil {
		return shapes.Point[int]{}, err
	}

	x, err := strconv.Atoi(xs)
	if err != nil {
		return shapes.Point[int]{}, errors.Errorf("invalid point: '%v' (%v is not an integer)", s, xs)
	}

	y, err := strconv.Atoi(ys)
	if err != nil {
		return shapes.Point[int]{}, errors.Errorf("invalid point: '%v' (%v is not an integer)", s, ys)
	}

	return shapes.Point[int]{X: x, Y: y}, nil
}
