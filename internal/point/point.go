// Package point models a single daylighting analysis point: its identity
// (location and aim direction) and the per-point result store that holds
// total and direct illuminance samples across light sources, source states
// and hours of the year.
package point

import (
	"fmt"
	"math"
	"strings"
)

// Point is the identity of an analysis location. It is an immutable value
// type; Direction is a unit-less aim vector.
type Point struct {
	Location  [3]float64
	Direction [3]float64
}

// NewPoint creates an analysis point from location and direction tuples.
// Both must have exactly three finite components.
func NewPoint(location, direction []float64) (Point, error) {
	loc, err := triple(location)
	if err != nil {
		return Point{}, fmt.Errorf("%w: location %v: %v", ErrValidation, location, err)
	}
	dir, err := triple(direction)
	if err != nil {
		return Point{}, fmt.Errorf("%w: direction %v: %v", ErrValidation, direction, err)
	}
	return Point{Location: loc, Direction: dir}, nil
}

// NewPointFromRaw creates an analysis point from six raw coordinates:
// x, y, z for the location and dx, dy, dz for the direction.
func NewPointFromRaw(x, y, z, dx, dy, dz float64) Point {
	return Point{Location: [3]float64{x, y, z}, Direction: [3]float64{dx, dy, dz}}
}

func triple(values []float64) ([3]float64, error) {
	var t [3]float64
	if len(values) != 3 {
		return t, fmt.Errorf("want 3 components, got %d", len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return t, fmt.Errorf("component %d is not a finite number", i)
		}
		t[i] = v
	}
	return t, nil
}

// String returns the point in Radiance test-point form:
// "x y z dx dy dz".
func (p Point) String() string {
	var sb strings.Builder
	for _, v := range p.Location {
		fmt.Fprintf(&sb, "%g ", v)
	}
	fmt.Fprintf(&sb, "%g %g %g", p.Direction[0], p.Direction[1], p.Direction[2])
	return sb.String()
}
