package units_test

import (
	"math"
	"testing"

	"github.com/sghaida/semtypes/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Literal constructors / Magnitude
func TestLiteral_RoundTripIsExact(t *testing.T) {
	t.Parallel()

	for _, m := range []float64{0, 3.0, 0.1, 7.25, -42.5, 1e-9, 6.02214076e23} {
		assert.Equal(t, m, units.Ns(m).Magnitude())
		assert.Equal(t, m, units.M(m).Magnitude())
		assert.Equal(t, m, units.Scalar(m).Magnitude())
	}

	// float32 arguments widen to float64.
	assert.Equal(t, float64(float32(0.5)), units.S(float32(0.5)).Magnitude())
}

// New
func TestNew_WidensIntegers(t *testing.T) {
	t.Parallel()

	m := units.New[units.MomentumUnit](5)
	assert.Equal(t, 5.0, m.Magnitude())
	assert.Equal(t, units.Dimension{Metre: 1, Kilogram: 1, Second: -1}, m.Dimension())

	var n int64 = -12
	assert.Equal(t, -12.0, units.New[units.LengthUnit](n).Magnitude())
	assert.Equal(t, 3.0, units.New[units.TimeUnit](uint8(3)).Magnitude())
}

func TestNew_MatchesLiteralConstructor(t *testing.T) {
	t.Parallel()

	for _, m := range []float64{0, 0.2, 7.0, -1.5} {
		assert.Equal(t, units.Ns(m), units.New[units.MomentumUnit](m))
		assert.Equal(t, units.Hz(m), units.New[units.FrequencyUnit](m))
	}
	assert.Equal(t, units.Ns(10.0), units.New[units.MomentumUnit](10))
}

func TestLiteral_CarriesDimension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    units.Quantity
		want units.Dimension
	}{
		{"Scalar", units.Scalar(1.0), units.Dimension{}},
		{"M", units.M(1.0), units.Dimension{Metre: 1}},
		{"M2", units.M2(1.0), units.Dimension{Metre: 2}},
		{"M3", units.M3(1.0), units.Dimension{Metre: 3}},
		{"Kg", units.Kg(1.0), units.Dimension{Kilogram: 1}},
		{"S", units.S(1.0), units.Dimension{Second: 1}},
		{"MPerS", units.MPerS(1.0), units.Dimension{Metre: 1, Second: -1}},
		{"MPerS2", units.MPerS2(1.0), units.Dimension{Metre: 1, Second: -2}},
		{"Hz", units.Hz(1.0), units.Dimension{Second: -1}},
		{"N", units.N(1.0), units.Dimension{Metre: 1, Kilogram: 1, Second: -2}},
		{"Pa", units.Pa(1.0), units.Dimension{Metre: -1, Kilogram: 1, Second: -2}},
		{"Ns", units.Ns(1.0), units.Dimension{Metre: 1, Kilogram: 1, Second: -1}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.q.Dimension())
		})
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var m units.Mass
	assert.Zero(t, m.Magnitude())
	assert.Equal(t, units.Dimension{Kilogram: 1}, m.Dimension())
}

// Add / Sub
func TestAddSub_SameDimension(t *testing.T) {
	t.Parallel()

	a := units.M(3.5)
	b := units.M(1.25)

	sum := a.Add(b)
	diff := a.Sub(b)

	assert.Equal(t, 4.75, sum.Magnitude())
	assert.Equal(t, 2.25, diff.Magnitude())
	assert.Equal(t, units.Dimension{Metre: 1}, sum.Dimension())

	// operands are not mutated
	assert.Equal(t, 3.5, a.Magnitude())
	assert.Equal(t, 1.25, b.Magnitude())
}

// Concrete scenarios
func TestForceTimesTime_IsMomentum(t *testing.T) {
	t.Parallel()

	var momentum units.Momentum = units.ForceTimesTime(units.N(30.0), units.S(5.0))

	assert.Equal(t, 150.0, momentum.Magnitude())
	assert.Equal(t, units.Dimension{Metre: 1, Kilogram: 1, Second: -1}, momentum.Dimension())
	assert.Equal(t, "150 N·s", momentum.String())
}

func TestDimensionlessPerTime_IsFrequency(t *testing.T) {
	t.Parallel()

	var frequency units.Frequency = units.DimensionlessQuantityPerTime(units.Scalar(1.0), units.S(5.0))

	assert.Equal(t, 0.2, frequency.Magnitude())
	assert.Equal(t, units.Dimension{Second: -1}, frequency.Dimension())
}

func TestPer_ZeroDivisorFollowsIEEE754(t *testing.T) {
	t.Parallel()

	inf := units.LengthPerTime(units.M(1.0), units.S(0.0))
	assert.True(t, math.IsInf(inf.Magnitude(), 1))

	nan := units.LengthPerTime(units.M(0.0), units.S(0.0))
	assert.True(t, math.IsNaN(nan.Magnitude()))
}

// String
func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.2", units.Scalar(0.2).String())
	assert.Equal(t, "9.81 m/s^2", units.MPerS2(9.81).String())
	assert.Equal(t, "-1.5 Pa", units.Pa(-1.5).String())
}

// Law table
func TestLaws_EveryLawComposesDimensionsAndMagnitudes(t *testing.T) {
	t.Parallel()

	laws := units.Laws()
	require.NotEmpty(t, laws)

	const left, right = 6.0, 1.5

	for _, l := range laws {
		l := l
		t.Run(l.Name, func(t *testing.T) {
			t.Parallel()

			got := l.Eval(left, right)

			switch l.Op {
			case units.OpTimes:
				assert.Equal(t, l.Left.Times(l.Right), l.Result)
				assert.Equal(t, left*right, got.Magnitude())
			case units.OpPer:
				assert.Equal(t, l.Left.Per(l.Right), l.Result)
				assert.Equal(t, left/right, got.Magnitude())
			default:
				t.Fatalf("unexpected op %q", l.Op)
			}
			assert.Equal(t, l.Result, got.Dimension())
		})
	}
}

func TestLaws_UniqueNames(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, l := range units.Laws() {
		require.False(t, seen[l.Name], "duplicate law %s", l.Name)
		seen[l.Name] = true
	}
	assert.Len(t, seen, 92)
}

func TestLaws_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a := units.Laws()
	a[0].Name = "mutated"

	b := units.Laws()
	assert.NotEqual(t, "mutated", b[0].Name)
}

func TestLookupLaw(t *testing.T) {
	t.Parallel()

	l, ok := units.LookupLaw("ForceTimesTime")
	require.True(t, ok)
	assert.Equal(t, units.OpTimes, l.Op)
	assert.Equal(t, units.MomentumUnit{}.Dimension(), l.Result)
	assert.Equal(t, "*", l.Op.String())

	_, ok = units.LookupLaw("MomentumTimesMomentum")
	assert.False(t, ok)
}
