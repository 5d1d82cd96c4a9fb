package interpolate

import (
	"errors"
	"fmt"
)

var (
	ErrNoTable      = errors.New("interpolate: no table bound")
	ErrActiveCount  = errors.New("interpolate: active count out of range")
	ErrTooFewPoints = errors.New("interpolate: fewer than two active points")
	ErrNotAscending = errors.New("interpolate: x values not ascending")
	ErrZeroWidth    = errors.New("interpolate: zero-width interval")
	ErrNaNQuery     = errors.New("interpolate: query is NaN")
)

// Table is a bounded view over a caller-owned slice of points. Only the first
// Active() points are visible to an interpolator; anything past that is
// ignored even if populated.
//
// The points are not copied. Changes made by the caller between calls are
// seen by the next call, so the visible window must stay ascending in x.
type Table[X, Y Number] struct {
	points []Point[X, Y]
	n      int
}

// NewTable binds a table to points with n of them active. n must be in the
// range [0, len(points)].
func NewTable[X, Y Number](points []Point[X, Y], n int) (*Table[X, Y], error) {
	tab := &Table[X, Y]{points: points}
	if err := tab.SetActive(n); err != nil {
		return nil, err
	}
	return tab, nil
}

// NewFullTable binds a table to points with every point active.
func NewFullTable[X, Y Number](points []Point[X, Y]) *Table[X, Y] {
	return &Table[X, Y]{points: points, n: len(points)}
}

// SetActive changes the number of leading points that are visible.
func (tab *Table[X, Y]) SetActive(n int) error {
	if n < 0 || n > len(tab.points) {
		return fmt.Errorf(
			"%w: %d requested, capacity is %d", ErrActiveCount, n, len(tab.points),
		)
	}
	tab.n = n
	return nil
}

// Active returns the number of visible points.
func (tab *Table[X, Y]) Active() int { return tab.n }

// Cap returns the number of points in the backing slice.
func (tab *Table[X, Y]) Cap() int { return len(tab.points) }

// At returns the i-th point of the backing slice.
func (tab *Table[X, Y]) At(i int) Point[X, Y] { return tab.points[i] }

// Window returns the visible points. The returned slice shares storage with
// the caller's slice but cannot be appended into the hidden tail.
func (tab *Table[X, Y]) Window() []Point[X, Y] {
	return tab.points[:tab.n:tab.n]
}

// Validate checks that the visible window can be interpolated over: at least
// two points, strictly ascending in x.
func (tab *Table[X, Y]) Validate() error {
	if tab.n > len(tab.points) {
		return fmt.Errorf(
			"%w: %d active, capacity is %d", ErrActiveCount, tab.n, len(tab.points),
		)
	} else if tab.n < 2 {
		return fmt.Errorf("%w: %d active", ErrTooFewPoints, tab.n)
	}

	pts := tab.points[:tab.n]
	for i := 1; i < len(pts); i++ {
		if pts[i-1].X < pts[i].X {
			continue
		}
		if pts[i-1].X == pts[i].X {
			return fmt.Errorf("%w: x[%d] = x[%d] = %v", ErrZeroWidth, i-1, i, pts[i].X)
		}
		return fmt.Errorf(
			"%w: x[%d] = %v, x[%d] = %v", ErrNotAscending, i-1, pts[i-1].X, i, pts[i].X,
		)
	}
	return nil
}
