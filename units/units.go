// Package units provides the angle representations used by the geodesic
// solvers: raw radians, raw degrees, and degrees-minutes-seconds.
//
// Radian and Degree fold in their own unit. DMS folds through Degree.
package units

import (
	"math"

	"github.com/golang/geo/s1"
)

// Radian is an angle in radians.
type Radian float64

// Degree is an angle in degrees.
type Degree float64

// Angle is implemented by every angle representation in this package.
type Angle interface {
	Radians() Radian
	Degrees() Degree
	String() string
}

var (
	_ Angle = Radian(0)
	_ Angle = Degree(0)
	_ Angle = DMS{}
)

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(d Degree) Radian {
	return Radian(float64(d) * (math.Pi / 180))
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(r Radian) Degree {
	return Degree(float64(r) * (180 / math.Pi))
}

// Radians returns r.
func (r Radian) Radians() Radian { return r }

// Degrees converts r to degrees.
func (r Radian) Degrees() Degree { return RadiansToDegrees(r) }

// Radians converts d to radians.
func (d Degree) Radians() Radian { return DegreesToRadians(d) }

// Degrees returns d.
func (d Degree) Degrees() Degree { return d }

// Angle converts r to an s1.Angle.
func (r Radian) Angle() s1.Angle { return s1.Angle(r) }

// FromAngle converts an s1.Angle to radians.
func FromAngle(a s1.Angle) Radian { return Radian(a.Radians()) }

// Normalize maps r into [0, 2π).
func (r Radian) Normalize() Radian {
	return Radian(normalize(float64(r), 2*math.Pi))
}

// PlusMinusPi maps r into (-π, π]. NaN is returned unchanged.
func (r Radian) PlusMinusPi() Radian {
	return Radian(plusMinusHalfPeriod(float64(r), 2*math.Pi))
}

// PlusMinusHalfPi folds r with PlusMinusPi and reports whether the result
// lies in [-π/2, π/2]. Out of range values are rejected, never wrapped.
func (r Radian) PlusMinusHalfPi() (Radian, bool) {
	v, ok := quarterFold(float64(r), 2*math.Pi)
	return Radian(v), ok
}

// Rotate adds by to r and normalizes the sum into [0, 2π).
func (r Radian) Rotate(by Radian) Radian {
	return (r + by).Normalize()
}

// Normalize maps d into [0°, 360°).
func (d Degree) Normalize() Degree {
	return Degree(normalize(float64(d), 360))
}

// PlusMinusPi maps d into (-180°, 180°]. NaN is returned unchanged.
func (d Degree) PlusMinusPi() Degree {
	return Degree(plusMinusHalfPeriod(float64(d), 360))
}

// PlusMinusHalfPi folds d with PlusMinusPi and reports whether the result
// lies in [-90°, 90°]. Out of range values are rejected, never wrapped.
func (d Degree) PlusMinusHalfPi() (Degree, bool) {
	v, ok := quarterFold(float64(d), 360)
	return Degree(v), ok
}

// Rotate adds by to d and normalizes the sum into [0°, 360°).
func (d Degree) Rotate(by Degree) Degree {
	return (d + by).Normalize()
}

// Diff returns the clockwise separation from x to y, normalized into
// [0°, 360°).
func Diff(x, y Degree) Degree {
	return (y - x).Normalize()
}

// AbsDiff returns the smaller separation between two bearings, in
// [0°, 180°].
func AbsDiff(x, y Degree) Degree {
	d := Diff(x, y)
	if d > 180 {
		return 360 - d
	}
	return d
}

// normalize returns x mod period in [0, period). Exact multiples map to 0.
func normalize(x, period float64) float64 {
	v := math.Mod(x, period)
	switch {
	case v == 0:
		return 0
	case v < 0:
		v += period
		if v >= period {
			// a tiny negative remainder rounds up to period
			return 0
		}
	}
	return v
}

// plusMinusHalfPeriod returns x folded into (-period/2, period/2].
func plusMinusHalfPeriod(x, period float64) float64 {
	half := period / 2
	v := math.Mod(x, period)
	if v <= -half {
		v += period
	} else if v > half {
		v -= period
	}
	return v
}

func quarterFold(x, period float64) (float64, bool) {
	v := plusMinusHalfPeriod(x, period)
	if math.IsNaN(v) {
		return v, true
	}
	quarter := period / 4
	if v < -quarter || v > quarter {
		return 0, false
	}
	return v, true
}
