package interpolate

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
)

// Arithmetic selects the precision used to blend two neighbouring points.
type Arithmetic int

const (
	// AutoArithmetic uses ExtendedArithmetic when either coordinate type is
	// a 64-bit integer, since float64 can't hold every such value exactly,
	// and Float64Arithmetic otherwise.
	AutoArithmetic Arithmetic = iota
	Float64Arithmetic
	// ExtendedArithmetic blends in big.Float with extendedPrec bits of
	// mantissa.
	ExtendedArithmetic
)

const extendedPrec = 128

func (a Arithmetic) String() string {
	switch a {
	case AutoArithmetic:
		return "auto"
	case Float64Arithmetic:
		return "float64"
	case ExtendedArithmetic:
		return "extended"
	}
	return fmt.Sprintf("Arithmetic(%d)", int(a))
}

// ParseArithmetic converts a name returned by Arithmetic.String back into an
// Arithmetic.
func ParseArithmetic(name string) (Arithmetic, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return AutoArithmetic, nil
	case "float64", "float":
		return Float64Arithmetic, nil
	case "extended", "big":
		return ExtendedArithmetic, nil
	}
	return AutoArithmetic, fmt.Errorf("Unrecognized arithmetic '%s'.", name)
}

func kindOf[T Number]() reflect.Kind {
	var zero T
	return reflect.TypeOf(zero).Kind()
}

func isWideInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// resolve replaces AutoArithmetic with the concrete policy for X and Y.
func resolve[X, Y Number](a Arithmetic) Arithmetic {
	if a != AutoArithmetic {
		return a
	}
	if isWideInt(kindOf[X]()) || isWideInt(kindOf[Y]()) {
		return ExtendedArithmetic
	}
	return Float64Arithmetic
}

// blend computes (x - p0.X) * (p1.Y - p0.Y) / (p1.X - p0.X) + p0.Y. Both spans
// are taken in a signed, wider domain so that unsigned coordinates with a
// negative slope don't wrap. Integer results are truncated toward zero.
func blend[X, Y Number](a Arithmetic, p0, p1 Point[X, Y], x X) Y {
	exact := finite(p0.X) && finite(p1.X) && finite(x) &&
		finite(p0.Y) && finite(p1.Y)
	if a == ExtendedArithmetic && exact {
		return blendBig(p0, p1, x)
	}

	x0, x1, y0, y1 := float64(p0.X), float64(p1.X), float64(p0.Y), float64(p1.Y)
	xSpan, ySpan := x1-x0, y1-y0
	v := (float64(x)-x0)*ySpan/xSpan + y0
	if exact && (math.IsInf(xSpan, 0) || math.IsInf(ySpan, 0) || !finite(v)) {
		// Finite endpoints whose spans overflow float64.
		return blendBig(p0, p1, x)
	}
	return Y(v)
}

func blendBig[X, Y Number](p0, p1 Point[X, Y], x X) Y {
	x0, x1 := toBig(p0.X), toBig(p1.X)
	y0, y1 := toBig(p0.Y), toBig(p1.Y)

	dx := newBig().Sub(toBig(x), x0)
	xSpan := newBig().Sub(x1, x0)
	ySpan := newBig().Sub(y1, y0)

	v := newBig().Mul(dx, ySpan)
	v.Quo(v, xSpan)
	v.Add(v, y0)
	return fromBig[Y](v)
}

func newBig() *big.Float { return new(big.Float).SetPrec(extendedPrec) }

func toBig[T Number](v T) *big.Float {
	f := newBig()
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		f.SetInt64(rv.Int())
	case rv.CanUint():
		f.SetUint64(rv.Uint())
	default:
		f.SetFloat64(rv.Float())
	}
	return f
}

func fromBig[T Number](f *big.Float) T {
	switch k := kindOf[T](); {
	case k >= reflect.Int && k <= reflect.Int64:
		i, _ := f.Int64()
		return T(i)
	case k >= reflect.Uint && k <= reflect.Uintptr:
		u, _ := f.Uint64()
		return T(u)
	}
	v, _ := f.Float64()
	return T(v)
}

// finite reports whether v is neither NaN nor infinite. Integers always are.
func finite[T Number](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
