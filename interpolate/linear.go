package interpolate

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
)

// Status describes how a call to Linear.Interp resolved.
type Status int

const (
	// OK means the query fell between two active points and was
	// interpolated.
	OK Status = iota
	// XValueOutOfRange means the query fell outside the active points and
	// the nearest endpoint's value was substituted.
	XValueOutOfRange
	// InvalidTable means the active window could not be interpolated over.
	// Result.Err says why.
	InvalidTable
	// InvalidQuery means the query itself was NaN.
	InvalidQuery
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case XValueOutOfRange:
		return "X_VALUE_OUT_OF_RANGE"
	case InvalidTable:
		return "INVALID_TABLE"
	case InvalidQuery:
		return "INVALID_QUERY"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a single interpolation.
type Result[Y Number] struct {
	Status Status
	// Value is the interpolated or clamped value. It is zero if Status is
	// InvalidTable or InvalidQuery.
	Value Y
	// Section is the interval the query fell into: 0 is before the first
	// point, k is between points k-1 and k, and N (the number of active
	// points) is past the last point.
	Section uint32
	Err     error
}

type linearConfig struct {
	search  Search
	arith   Arithmetic
	logger  l.Wrapper
	trusted bool
}

// Option configures a Linear interpolator.
type Option func(*linearConfig)

// WithSearch sets the bracket search strategy. The default is LinearSearch.
func WithSearch(s Search) Option {
	return func(c *linearConfig) { c.search = s }
}

// WithArithmetic sets the blend precision. The default is AutoArithmetic.
func WithArithmetic(a Arithmetic) Option {
	return func(c *linearConfig) { c.arith = a }
}

// WithValidateOnce validates the table when it is bound, and again only when
// its active count changes, instead of on every call. Validation is O(N), so
// without this BisectSearch is no faster than LinearSearch. The caller must
// not move points out of ascending order after binding.
func WithValidateOnce() Option {
	return func(c *linearConfig) { c.trusted = true }
}

// WithLogger sets the sink for diagnostic messages. Logging never changes
// the value returned by Interp.
func WithLogger(logger l.Wrapper) Option {
	return func(c *linearConfig) { c.logger = logger }
}

// Linear is a piecewise linear interpolator over a Table. Queries outside the
// table are clamped to the nearest endpoint.
//
// Linear never modifies the table. Interp may be called from several
// goroutines at once, but the caller must not modify the table's points or
// active count while any call is in progress.
type Linear[X, Y Number] struct {
	tab    *Table[X, Y]
	search Search
	arith  Arithmetic
	logger l.Wrapper

	// Cached validation for WithValidateOnce. checked is the active count
	// checkErr was computed at, or -1.
	trusted  bool
	checked  int
	checkErr error
}

// NewLinear creates a linear interpolator bound to tab.
func NewLinear[X, Y Number](tab *Table[X, Y], opts ...Option) *Linear[X, Y] {
	c := linearConfig{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = l.NewNopLoggerWrapper()
	}

	lin := &Linear[X, Y]{
		search:  c.search,
		arith:   resolve[X, Y](c.arith),
		logger:  c.logger.WithFields(l.StringField(l.ClsKey, "Linear")),
		trusted: c.trusted,
	}
	lin.SetTable(tab)
	return lin
}

// Table returns the table lin is bound to.
func (lin *Linear[X, Y]) Table() *Table[X, Y] { return lin.tab }

// SetTable rebinds lin to a different table.
func (lin *Linear[X, Y]) SetTable(tab *Table[X, Y]) {
	lin.tab = tab
	lin.checked = -1
	if lin.trusted && tab != nil {
		lin.checked, lin.checkErr = tab.n, tab.Validate()
	}
}

func (lin *Linear[X, Y]) validate() error {
	if lin.trusted && lin.tab.n == lin.checked {
		return lin.checkErr
	}
	return lin.tab.Validate()
}

// Interp returns the value of the table at x.
//
// If x is below the first active point, the first point's value is returned
// with XValueOutOfRange and Section 0. If x is above the last active point,
// the last point's value is returned with XValueOutOfRange and Section N. A
// query exactly equal to an x value in the table belongs to the interval
// ending at that point.
func (lin *Linear[X, Y]) Interp(x X) Result[Y] {
	if lin.tab == nil {
		return Result[Y]{Status: InvalidTable, Err: ErrNoTable}
	} else if err := lin.validate(); err != nil {
		lin.logger.WithFields(l.ErrorField(err)).Warn("invalid table")
		return Result[Y]{Status: InvalidTable, Err: err}
	} else if math.IsNaN(float64(x)) {
		return Result[Y]{Status: InvalidQuery, Err: ErrNaNQuery}
	}

	pts := lin.tab.Window()
	if x < pts[0].X {
		return Result[Y]{Status: XValueOutOfRange, Value: pts[0].Y, Section: 0}
	}

	i, above := bracket(lin.search, pts, x)
	if above {
		return Result[Y]{
			Status: XValueOutOfRange, Value: pts[len(pts)-1].Y,
			Section: uint32(i),
		}
	}

	lin.logger.WithFields(l.IntField("index", i)).Debug("bracket found")

	return Result[Y]{
		Status:  OK,
		Value:   blend(lin.arith, pts[i-1], pts[i], x),
		Section: uint32(i),
	}
}

// InterpAll interpolates every value in xs. If an output array at least as
// long as xs is given, the results are written to it (the array is still
// returned as a convenience). Otherwise a new array is allocated.
//
// If more than one output array is provided, only the first is used.
func (lin *Linear[X, Y]) InterpAll(xs []X, out ...[]Result[Y]) []Result[Y] {
	if len(out) == 0 || len(out[0]) < len(xs) {
		out = [][]Result[Y]{make([]Result[Y], len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Interp(x)
	}
	return out[0]
}

// Values is like InterpAll but discards everything except the value. Clamped
// and invalid queries are not distinguished.
func (lin *Linear[X, Y]) Values(xs []X, out ...[]Y) []Y {
	if len(out) == 0 || len(out[0]) < len(xs) {
		out = [][]Y{make([]Y, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Interp(x).Value
	}
	return out[0]
}
