package interpolate

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPoint(y0, y1 float64) *Linear[float64, float64] {
	pts := []Point[float64, float64]{{0, y0}, {1, y1}}
	return NewLinear(NewFullTable(pts))
}

func ramp(n int) []Point[float64, float64] {
	pts := make([]Point[float64, float64], n)
	for i := range pts {
		pts[i] = Pt(float64(i), float64(i))
	}
	return pts
}

func TestInterpMidpoint(t *testing.T) {
	table := []struct {
		name   string
		y0, y1 float64
		want   float64
	}{
		{"positive space, positive gradient", 0, 1, 0.5},
		{"positive space, negative gradient", 1, 0, 0.5},
		{"negative space, positive gradient", -1, 0, -0.5},
		{"negative space, negative gradient", 0, -1, -0.5},
		{"zero gradient", 1, 1, 1},
	}

	for i, test := range table {
		res := twoPoint(test.y0, test.y1).Interp(0.5)
		if res.Status != OK {
			t.Errorf("%d) %s: got status %s, expected OK.", i+1, test.name, res.Status)
		}
		if res.Value != test.want {
			t.Errorf("%d) %s: got %g, expected %g.", i+1, test.name, res.Value, test.want)
		}
		assert.Equal(t, uint32(1), res.Section, test.name)
		assert.NoError(t, res.Err, test.name)
	}
}

func TestInterpBelowMinimum(t *testing.T) {
	res := twoPoint(0, 1).Interp(-1.0)
	assert.Equal(t, XValueOutOfRange, res.Status)
	assert.InDelta(t, 0.0, res.Value, 0.01)
	assert.Equal(t, uint32(0), res.Section)
	assert.NoError(t, res.Err)
}

func TestInterpAboveMaximum(t *testing.T) {
	res := twoPoint(0, 1).Interp(2.0)
	assert.Equal(t, XValueOutOfRange, res.Status)
	assert.InDelta(t, 1.0, res.Value, 0.01)
	assert.Equal(t, uint32(2), res.Section)
}

func TestInterpOnlyLooksAtActivePoints(t *testing.T) {
	tab, err := NewTable(ramp(3), 2)
	require.NoError(t, err)
	lin := NewLinear(tab)

	res := lin.Interp(1.5)
	assert.Equal(t, XValueOutOfRange, res.Status)
	assert.InDelta(t, 1.0, res.Value, 0.01)
	assert.Equal(t, uint32(2), res.Section)

	require.NoError(t, tab.SetActive(3))
	res = lin.Interp(1.5)
	assert.Equal(t, OK, res.Status)
	assert.InDelta(t, 1.5, res.Value, 1e-12)
}

func TestInterpSectionNum(t *testing.T) {
	lin := NewLinear(NewFullTable(ramp(3)))

	table := []struct {
		x       float64
		section uint32
	}{
		{-1, 0}, {0.5, 1}, {1.5, 2}, {2.5, 3},
	}
	for _, test := range table {
		assert.Equal(t, test.section, lin.Interp(test.x).Section, "x = %g", test.x)
	}
}

func TestInterpBoundaryEquality(t *testing.T) {
	pts := []Point[float64, float64]{{0, 0}, {1, 10}, {2, 0}, {3, 5}}
	for _, s := range []Search{LinearSearch, BisectSearch} {
		lin := NewLinear(NewFullTable(pts), WithSearch(s))

		res := lin.Interp(0)
		assert.Equal(t, OK, res.Status, "%s", s)
		assert.Equal(t, uint32(1), res.Section, "%s", s)
		assert.Equal(t, 0.0, res.Value, "%s", s)

		res = lin.Interp(1)
		assert.Equal(t, OK, res.Status, "%s", s)
		assert.Equal(t, uint32(1), res.Section, "%s", s)
		assert.Equal(t, 10.0, res.Value, "%s", s)

		res = lin.Interp(2)
		assert.Equal(t, uint32(2), res.Section, "%s", s)
		assert.Equal(t, 0.0, res.Value, "%s", s)

		// The last point closes the final interval rather than opening the
		// out-of-range one.
		res = lin.Interp(3)
		assert.Equal(t, OK, res.Status, "%s", s)
		assert.Equal(t, uint32(3), res.Section, "%s", s)
		assert.Equal(t, 5.0, res.Value, "%s", s)

		res = lin.Interp(math.Nextafter(3, 4))
		assert.Equal(t, XValueOutOfRange, res.Status, "%s", s)
		assert.Equal(t, uint32(4), res.Section, "%s", s)
		assert.Equal(t, 5.0, res.Value, "%s", s)
	}
}

func TestInterpDeterministic(t *testing.T) {
	lin := NewLinear(NewFullTable([]Point[float64, float64]{
		{0, 0.1}, {0.3, 0.7}, {1.1, -0.2},
	}))
	first := lin.Interp(0.71)
	for i := 0; i < 100; i++ {
		res := lin.Interp(0.71)
		if math.Float64bits(res.Value) != math.Float64bits(first.Value) ||
			res.Status != first.Status || res.Section != first.Section {

			t.Fatalf("%d) Got %+v, expected %+v.", i, res, first)
		}
	}
}

func TestInterpSeesCallerMutation(t *testing.T) {
	pts := ramp(2)
	lin := NewLinear(NewFullTable(pts))
	assert.Equal(t, 0.5, lin.Interp(0.5).Value)

	pts[1].Y = 3
	assert.Equal(t, 1.5, lin.Interp(0.5).Value)
}

func TestInterpInvalidTable(t *testing.T) {
	one, err := NewTable(ramp(3), 1)
	require.NoError(t, err)

	table := []struct {
		name string
		tab  *Table[float64, float64]
		err  error
	}{
		{"nil", nil, ErrNoTable},
		{"empty", NewFullTable[float64, float64](nil), ErrTooFewPoints},
		{"one active", one, ErrTooFewPoints},
		{"descending", NewFullTable([]Point[float64, float64]{{1, 0}, {0, 1}}), ErrNotAscending},
		{"duplicate x", NewFullTable([]Point[float64, float64]{{0, 0}, {1, 1}, {1, 2}}), ErrZeroWidth},
		{"NaN x", NewFullTable([]Point[float64, float64]{{0, 0}, {math.NaN(), 1}}), ErrNotAscending},
	}

	for _, test := range table {
		res := NewLinear(test.tab).Interp(0.5)
		assert.Equal(t, InvalidTable, res.Status, test.name)
		assert.ErrorIs(t, res.Err, test.err, test.name)
		assert.Equal(t, 0.0, res.Value, test.name)
		assert.Equal(t, uint32(0), res.Section, test.name)
	}
}

func TestInterpIgnoresInvalidTail(t *testing.T) {
	pts := []Point[float64, float64]{{0, 0}, {1, 1}, {0, 7}}
	tab, err := NewTable(pts, 2)
	require.NoError(t, err)

	res := NewLinear(tab).Interp(0.25)
	assert.Equal(t, OK, res.Status)
	assert.Equal(t, 0.25, res.Value)
}

func TestInterpNaNQuery(t *testing.T) {
	res := twoPoint(0, 1).Interp(math.NaN())
	assert.Equal(t, InvalidQuery, res.Status)
	assert.ErrorIs(t, res.Err, ErrNaNQuery)
}

func TestInterpMixedTypes(t *testing.T) {
	pts := []Point[int, float32]{{0, 0}, {10, 1}, {20, 3}}
	lin := NewLinear(NewFullTable(pts))

	res := lin.Interp(5)
	assert.Equal(t, OK, res.Status)
	assert.InDelta(t, 0.5, res.Value, 1e-6)

	res = lin.Interp(15)
	assert.Equal(t, uint32(2), res.Section)
	assert.InDelta(t, 2.0, res.Value, 1e-6)
}

func TestInterpUnsignedNegativeSlope(t *testing.T) {
	pts := []Point[uint8, uint16]{{10, 1000}, {20, 0}}
	lin := NewLinear(NewFullTable(pts))

	res := lin.Interp(15)
	assert.Equal(t, OK, res.Status)
	assert.Equal(t, uint16(500), res.Value)

	res = lin.Interp(13)
	assert.Equal(t, uint16(700), res.Value)
}

func TestInterpIntegerTruncates(t *testing.T) {
	pts := []Point[int32, int32]{{0, 0}, {3, -10}}
	res := NewLinear(NewFullTable(pts)).Interp(1)
	// -3.33... truncates toward zero.
	assert.Equal(t, int32(-3), res.Value)
}

func TestInterpWideIntegers(t *testing.T) {
	big := int64(1) << 60
	pts := []Point[int64, int64]{{0, big}, {4, big + 4}}

	res := NewLinear(NewFullTable(pts)).Interp(1)
	assert.Equal(t, OK, res.Status)
	assert.Equal(t, big+1, res.Value)

	// float64 can't represent big+1.
	res = NewLinear(NewFullTable(pts), WithArithmetic(Float64Arithmetic)).Interp(1)
	assert.NotEqual(t, big+1, res.Value)
}

func TestSearchStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(40)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.Float64()*100 - 50
		}
		sort.Float64s(xs)
		pts := make([]Point[float64, float64], n)
		for i := range pts {
			pts[i] = Pt(xs[i], rng.NormFloat64())
		}
		tab := NewFullTable(pts)
		if tab.Validate() != nil {
			continue
		}

		scan := NewLinear(tab, WithSearch(LinearSearch))
		bi := NewLinear(tab, WithSearch(BisectSearch))
		queries := append([]float64{}, xs...)
		for i := 0; i < 50; i++ {
			queries = append(queries, rng.Float64()*120-60)
		}
		for _, q := range queries {
			require.Equal(t, scan.Interp(q), bi.Interp(q), "trial %d, x = %g", trial, q)
		}
	}
}

func TestInterpAll(t *testing.T) {
	lin := NewLinear(NewFullTable(ramp(3)))
	xs := []float64{-1, 0.5, 1.5, 2.5}

	res := lin.InterpAll(xs)
	require.Len(t, res, len(xs))
	assert.Equal(t, XValueOutOfRange, res[0].Status)
	assert.Equal(t, OK, res[1].Status)
	assert.Equal(t, 1.5, res[2].Value)
	assert.Equal(t, uint32(3), res[3].Section)

	out := make([]float64, len(xs))
	vals := lin.Values(xs, out)
	assert.Equal(t, []float64{0, 0.5, 1.5, 2}, vals)
	assert.Equal(t, out, vals)
}

func TestInterpAllShortOutput(t *testing.T) {
	lin := NewLinear(NewFullTable(ramp(3)))
	xs := []float64{0.5, 1.5, 2.5}

	short := make([]Result[float64], 1)
	res := lin.InterpAll(xs, short)
	require.Len(t, res, len(xs))
	assert.Equal(t, 1.5, res[1].Value)

	vals := lin.Values(xs, make([]float64, 1))
	assert.Equal(t, []float64{0.5, 1.5, 2}, vals)

	long := make([]Result[float64], 5)
	res = lin.InterpAll(xs, long)
	assert.Len(t, res, 5)
	assert.Equal(t, uint32(3), long[2].Section)
}

func TestInterpValidateOnce(t *testing.T) {
	pts := ramp(4)
	tab := NewFullTable(pts)
	lin := NewLinear(tab, WithValidateOnce(), WithSearch(BisectSearch))

	res := lin.Interp(1.5)
	assert.Equal(t, OK, res.Status)
	assert.Equal(t, 1.5, res.Value)

	// Shrinking the window is noticed without rebinding.
	require.NoError(t, tab.SetActive(1))
	res = lin.Interp(0.5)
	assert.Equal(t, InvalidTable, res.Status)
	assert.ErrorIs(t, res.Err, ErrTooFewPoints)

	require.NoError(t, tab.SetActive(4))
	assert.Equal(t, OK, lin.Interp(2.5).Status)

	bad := NewFullTable([]Point[float64, float64]{{1, 0}, {0, 1}})
	lin.SetTable(bad)
	res = lin.Interp(0.5)
	assert.Equal(t, InvalidTable, res.Status)
	assert.ErrorIs(t, res.Err, ErrNotAscending)

	lin.SetTable(nil)
	assert.ErrorIs(t, lin.Interp(0.5).Err, ErrNoTable)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", OK.String())
	assert.Equal(t, "X_VALUE_OUT_OF_RANGE", XValueOutOfRange.String())
	assert.Equal(t, "INVALID_TABLE", InvalidTable.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}

func benchmarkInterp(b *testing.B, n int, s Search, opts ...Option) {
	lin := NewLinear(NewFullTable(ramp(n)), append(opts, WithSearch(s))...)
	xs := make([]float64, 1024)
	rng := rand.New(rand.NewSource(0))
	for i := range xs {
		xs[i] = rng.Float64() * float64(n)
	}
	out := make([]Result[float64], len(xs))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lin.InterpAll(xs, out)
	}
}

func BenchmarkLinearSearch16(b *testing.B)   { benchmarkInterp(b, 16, LinearSearch) }
func BenchmarkBisectSearch16(b *testing.B)   { benchmarkInterp(b, 16, BisectSearch) }
func BenchmarkLinearSearch1024(b *testing.B) { benchmarkInterp(b, 1024, LinearSearch) }
func BenchmarkBisectSearch1024(b *testing.B) { benchmarkInterp(b, 1024, BisectSearch) }
func BenchmarkBisectSearchValidateOnce1024(b *testing.B) {
	benchmarkInterp(b, 1024, BisectSearch, WithValidateOnce())
}
