// Package interpolate performs piecewise linear interpolation over tables of
// (x, y) points, clamping queries that fall outside the table.
package interpolate

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of types that can be used as either coordinate of a
// Point.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a single (x, y) sample. X and Y are chosen independently, so an
// integer-valued x axis can be paired with floating point values.
type Point[X, Y Number] struct {
	X X
	Y Y
}

// Pt is shorthand for Point[X, Y]{x, y}.
func Pt[X, Y Number](x X, y Y) Point[X, Y] {
	return Point[X, Y]{X: x, Y: y}
}
