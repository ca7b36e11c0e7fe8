package units

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeRadianRoundTrip(t *testing.T) {
	for _, d := range []Degree{0, 1, -1, 45, 90, -90, 180, 359.999, 1e-9, -123.456789} {
		assert.InDelta(t, float64(d), float64(d.Radians().Degrees()), 1e-12, "degrees %v", d)
	}
	for _, r := range []Radian{0, math.Pi, -math.Pi / 2, 1, 1e-12} {
		assert.InDelta(t, float64(r), float64(r.Degrees().Radians()), 1e-15, "radians %v", r)
	}
	assert.InDelta(t, math.Pi, float64(DegreesToRadians(180)), 1e-15)
	assert.InDelta(t, 180, float64(RadiansToDegrees(math.Pi)), 1e-12)
}

func TestAngleInterop(t *testing.T) {
	a := Radian(math.Pi / 2).Angle()
	assert.InDelta(t, 90, a.Degrees(), 1e-12)
	assert.InDelta(t, math.Pi, float64(FromAngle(180*s1.Degree)), 1e-15)

	var angles = []Angle{Radian(math.Pi), Degree(180), DMS{Deg: 180}}
	for _, a := range angles {
		assert.InDelta(t, 180, float64(a.Degrees()), 1e-12, "%T", a)
		assert.InDelta(t, math.Pi, float64(a.Radians()), 1e-15, "%T", a)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want Degree
	}{
		{0, 0},
		{1, 1},
		{-1, 359},
		{359, 359},
		{360, 0},
		{361, 1},
		{720, 0},
		{-720, 0},
		{-360, 0},
		{-361, 359},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize(), "normalize %v", float64(tt.in))
	}
	assert.Equal(t, Radian(0), Radian(2*math.Pi).Normalize())
	assert.InDelta(t, 3*math.Pi/2, float64(Radian(-math.Pi/2).Normalize()), 1e-15)
	assert.True(t, math.IsNaN(float64(Degree(math.NaN()).Normalize())))
}

func TestNormalizeTinyNegative(t *testing.T) {
	assert.Equal(t, Degree(0), Degree(-1e-20).Normalize())
	assert.Equal(t, Radian(0), Radian(-1e-20).Normalize())
}

func TestNormalizeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1975))
	for i := 0; i < 100_000; i++ {
		d := Degree((rng.Float64() - 0.5) * 1e5)
		n := d.Normalize()
		require.GreaterOrEqual(t, float64(n), 0.0, "normalize(%v)", float64(d))
		require.Less(t, float64(n), 360.0, "normalize(%v)", float64(d))
		require.Equal(t, n, n.Normalize(), "idempotence at %v", float64(d))

		p := d.PlusMinusPi()
		require.Greater(t, float64(p), -180.0, "plusMinusPi(%v)", float64(d))
		require.LessOrEqual(t, float64(p), 180.0, "plusMinusPi(%v)", float64(d))

		r := Radian(d)
		rn := r.Normalize()
		require.GreaterOrEqual(t, float64(rn), 0.0)
		require.Less(t, float64(rn), 2*math.Pi)
	}
}

func TestPlusMinusPi(t *testing.T) {
	tests := []struct {
		in, want Degree
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{359, -1},
		{360, 0},
		{540, 180},
		{-179, -179},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.PlusMinusPi(), "plusMinusPi %v", float64(tt.in))
	}
	assert.True(t, math.IsNaN(float64(Degree(math.NaN()).PlusMinusPi())))
	assert.True(t, math.IsNaN(float64(Radian(math.NaN()).PlusMinusPi())))
	assert.Equal(t, Radian(math.Pi), Radian(-math.Pi).PlusMinusPi())
}

func TestPlusMinusHalfPi(t *testing.T) {
	tests := []struct {
		in   Degree
		want Degree
		ok   bool
	}{
		{0, 0, true},
		{90, 90, true},
		{-90, -90, true},
		{45.5, 45.5, true},
		{91, 0, false},
		{-91, 0, false},
		{180, 0, false},
		{270, -90, true},
		{-270, 90, true},
		{360 + 10, 10, true},
	}
	for _, tt := range tests {
		got, ok := tt.in.PlusMinusHalfPi()
		assert.Equal(t, tt.ok, ok, "plusMinusHalfPi %v", float64(tt.in))
		if tt.ok {
			assert.Equal(t, tt.want, got, "plusMinusHalfPi %v", float64(tt.in))
		}
	}

	_, ok := Radian(math.Pi / 2).PlusMinusHalfPi()
	assert.True(t, ok)
	_, ok = Degree(91).Radians().PlusMinusHalfPi()
	assert.False(t, ok)

	nan, ok := Degree(math.NaN()).PlusMinusHalfPi()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(float64(nan)))
}

func TestRotate(t *testing.T) {
	assert.Equal(t, Degree(10), Degree(350).Rotate(20))
	assert.Equal(t, Degree(0), Degree(180).Rotate(180))
	assert.Equal(t, Degree(350), Degree(10).Rotate(-20))
	assert.InDelta(t, math.Pi/2, float64(Radian(3*math.Pi/2).Rotate(math.Pi)), 1e-15)
	assert.InDelta(t, 1.0/60, float64(DMS{Deg: 359, Min: 59}.Rotate(DMS{Min: 2}).Degrees()), 1e-9)
}

func TestDiff(t *testing.T) {
	assert.Equal(t, Degree(20), Diff(350, 10))
	assert.Equal(t, Degree(340), Diff(10, 350))
	assert.Equal(t, Degree(20), AbsDiff(10, 350))
	assert.Equal(t, Degree(20), AbsDiff(350, 10))
	assert.Equal(t, Degree(180), AbsDiff(0, 180))
	assert.Equal(t, Degree(0), AbsDiff(720, 0))
}

func TestDMSFromDegreesToDegrees(t *testing.T) {
	tests := []struct {
		deg Degree
		dms DMS
	}{
		{0, DMS{}},
		{1, DMS{Deg: 1}},
		{-1, DMS{Deg: -1}},
		{169.06666666622118, DMS{Deg: 169, Min: 3, Sec: 59.99999839625161}},
		{-169.06666666622118, DMS{Deg: -169, Min: 3, Sec: 59.99999839625161}},
	}
	for _, tt := range tests {
		got := DMSFromDegrees(tt.deg)
		assert.Equal(t, tt.dms.Deg, got.Deg, "deg of %v", float64(tt.deg))
		assert.Equal(t, tt.dms.Min, got.Min, "min of %v", float64(tt.deg))
		assert.InDelta(t, tt.dms.Sec, got.Sec, 1e-9, "sec of %v", float64(tt.deg))
		assert.InDelta(t, float64(tt.deg), float64(tt.dms.Degrees()), 1e-12, "degrees of %v", tt.dms)
	}
}

func TestDMSFromDegreesOutsideInt(t *testing.T) {
	assert.Equal(t, DMS{Deg: math.MaxInt}, DMSFromDegrees(1e20))
	assert.Equal(t, DMS{Deg: -math.MaxInt}, DMSFromDegrees(-1e20))
	assert.Equal(t, DMS{Deg: math.MaxInt}, DMSFromDegrees(Degree(math.Inf(1))))
	assert.True(t, DMSFromDegrees(-1e20).Negative())

	nan := DMSFromDegrees(Degree(math.NaN()))
	assert.Equal(t, 0, nan.Deg)
	assert.Equal(t, 0, nan.Min)
	assert.True(t, math.IsNaN(nan.Sec))

	assert.Equal(t, Degree(-9223372036854775808), DMS{Deg: math.MinInt}.Degrees())
}

func TestDMSSignOnMostSignificantField(t *testing.T) {
	assert.Equal(t, DMS{Deg: 0, Min: -1, Sec: 0}, DMSFromDegrees(-1.0/60))
	assert.Equal(t, DMS{Deg: 0, Min: 0, Sec: -1}, DMSFromDegrees(-1.0/3600))
	assert.Equal(t, DMS{Deg: 0, Min: 1, Sec: 0}, DMSFromDegrees(1.0/60))
	assert.NotEqual(t, DMSFromDegrees(1.0/60), DMSFromDegrees(-1.0/60))

	assert.True(t, DMS{Min: -1}.Negative())
	assert.True(t, DMS{Sec: -1}.Negative())
	assert.False(t, DMS{Deg: 1, Min: 5}.Negative())
	assert.True(t, DMS{Deg: -1, Min: 5}.Negative())

	assert.InDelta(t, -1.0/60, float64(DMS{Min: -1}.Degrees()), 1e-15)
	assert.InDelta(t, -(59.0/60 + 53.83076/3600), float64(DMS{Min: -59, Sec: 53.83076}.Degrees()), 1e-15)
	assert.Equal(t, Degree(0), DMS{}.Degrees())
}

func TestDMSRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(60))
	for i := 0; i < 100_000; i++ {
		d := Degree((rng.Float64() - 0.5) * 720)
		got := DMSFromDegrees(d).Degrees()
		require.InDelta(t, float64(d), float64(got), 1e-9, "round trip of %v", float64(d))
	}
	for _, d := range []Degree{1e-7, -1e-7, 0.5 / 3600, -0.5 / 60, -12.5} {
		assert.InDelta(t, float64(d), float64(DMSFromDegrees(d).Degrees()), 1e-9)
	}
}

func TestDMSFolds(t *testing.T) {
	n := DMS{Deg: 0, Min: 0, Sec: 61}.Normalize()
	assert.Equal(t, 0, n.Deg)
	assert.Equal(t, 1, n.Min)
	assert.InDelta(t, 1, n.Sec, 1e-9)

	p := DMS{Deg: 190}.PlusMinusPi()
	assert.Equal(t, DMS{Deg: -170}, p)

	_, ok := DMS{Deg: 91}.PlusMinusHalfPi()
	assert.False(t, ok)
	h, ok := DMS{Deg: -45, Min: 30}.PlusMinusHalfPi()
	assert.True(t, ok)
	assert.Equal(t, DMS{Deg: -45, Min: 30}, h)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   fmt.Formatter
		verb string
		want string
	}{
		{Degree(0).Normalize(), "%.0f", "0°"},
		{Degree(1).Normalize(), "%.0f", "1°"},
		{Degree(-1).Normalize(), "%.0f", "359°"},
		{Degree(361).Normalize(), "%.0f", "1°"},
		{Degree(1.0 / 60).Normalize(), "%.4f", "0.0167°"},
		{Degree(-1.0 / 60).Normalize(), "%.4f", "359.9833°"},
		{Degree(12.5), "%v", "12.5°"},
		{DMS{Deg: 90, Min: 12, Sec: 0.999}, "%v", "90°12'0.999\""},
		{DMS{Deg: 1}, "%.3f", "1°0'0\""},
		{DMS{Min: -1}, "%.0f", "-0°1'0\""},
		{DMS{Sec: -1}, "%.0f", "-0°0'1\""},
		{DMS{Deg: -169, Min: 3, Sec: 59.99999839625161}, "%v", "-169°3'59.99999839625161\""},
		{DMS{Deg: -1, Min: 2, Sec: 3.26}, "%.1f", "-1°2'3.3\""},
		{DMS{Min: -1}.Normalize(), "%.0f", "359°59'0\""},
		{DMSFromDegrees(Degree(-1.0 / 3600).Normalize()), "%.0f", "359°59'59\""},
		{DMS{Deg: math.MinInt}, "%v", "-9223372036854775808°0'0\""},
		{DMSFromDegrees(-1e20), "%v", "-9223372036854775807°0'0\""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmt.Sprintf(tt.verb, tt.in))
	}
	assert.Equal(t, "3.5 rad", Radian(3.5).String())
	assert.Equal(t, "-0°1'0\"", DMS{Min: -1}.String())
}
