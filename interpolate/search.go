package interpolate

import (
	"fmt"
	"sort"
	"strings"
)

// Search selects how the bracketing interval of a query is found.
type Search int

const (
	// LinearSearch scans forward from the first interval. O(N).
	LinearSearch Search = iota
	// BisectSearch does a binary search. O(log N), though each call is
	// still O(N) overall unless the interpolator uses WithValidateOnce.
	BisectSearch
)

func (s Search) String() string {
	switch s {
	case LinearSearch:
		return "linear"
	case BisectSearch:
		return "bisect"
	}
	return fmt.Sprintf("Search(%d)", int(s))
}

// ParseSearch converts a name returned by Search.String back into a Search.
func ParseSearch(name string) (Search, error) {
	switch strings.ToLower(name) {
	case "linear", "":
		return LinearSearch, nil
	case "bisect", "binary":
		return BisectSearch, nil
	}
	return LinearSearch, fmt.Errorf("Unrecognized search strategy '%s'.", name)
}

// bracket returns the index i of the first point in pts[1:] with
// pts[i].X >= x. If there is no such point, it returns len(pts) and true.
//
// pts must contain at least two points and x must not be below pts[0].X. A
// query equal to pts[i].X resolves to i, the interval ending at that point.
func bracket[X, Y Number](s Search, pts []Point[X, Y], x X) (int, bool) {
	if s == BisectSearch {
		return bisect(pts, x)
	}
	return scan(pts, x)
}

func scan[X, Y Number](pts []Point[X, Y], x X) (int, bool) {
	i := 1
	for pts[i].X < x {
		if i == len(pts)-1 {
			return i + 1, true
		}
		i++
	}
	return i, false
}

func bisect[X, Y Number](pts []Point[X, Y], x X) (int, bool) {
	n := len(pts)
	if pts[n-1].X < x {
		return n, true
	}
	// pts[n-1].X >= x, so the search always succeeds within [1, n-1].
	j := sort.Search(n-1, func(j int) bool { return pts[j+1].X >= x })
	return j + 1, false
}
