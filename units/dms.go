package units

import "math"

// DMS is an angle in degrees, minutes and seconds.
//
// The sign is carried by the most significant non-zero field, so -1' is
// DMS{Deg: 0, Min: -1, Sec: 0} and -1" is DMS{Deg: 0, Min: 0, Sec: -1}.
// The less significant fields of a negative angle stay non-negative.
type DMS struct {
	Deg int
	Min int
	Sec float64
}

// DMSFromDegrees splits d into whole degrees, whole minutes and fractional
// seconds, attaching the sign to the most significant non-zero field.
//
// Magnitudes that do not fit an int, infinities included, clamp to
// math.MaxInt degrees. NaN gives DMS{Sec: NaN}.
func DMSFromDegrees(d Degree) DMS {
	abs := math.Abs(float64(d))
	if math.IsNaN(abs) {
		return DMS{Sec: abs}
	}
	dd := math.Floor(abs)
	if dd >= float64(math.MaxInt) {
		if d < 0 {
			return DMS{Deg: -math.MaxInt}
		}
		return DMS{Deg: math.MaxInt}
	}
	m := float64((abs - dd) * 60)
	mm := math.Floor(m)
	ss := float64((m - mm) * 60)

	deg, mins := int(dd), int(mm)
	switch {
	case !(d < 0):
		return DMS{Deg: deg, Min: mins, Sec: ss}
	case deg == 0 && mins == 0:
		return DMS{Sec: -ss}
	case deg == 0:
		return DMS{Min: -mins, Sec: ss}
	default:
		return DMS{Deg: -deg, Min: mins, Sec: ss}
	}
}

// Negative reports whether the angle is below zero, judged by its most
// significant non-zero field.
func (a DMS) Negative() bool {
	switch {
	case a.Deg != 0:
		return a.Deg < 0
	case a.Min != 0:
		return a.Min < 0
	default:
		return a.Sec < 0
	}
}

// Degrees converts a to degrees. The zero DMS is Degree(0).
func (a DMS) Degrees() Degree {
	if a.Deg == 0 && a.Min == 0 && a.Sec == 0 {
		return 0
	}
	v := float64(uabs(a.Deg)) + float64(uabs(a.Min))/60 + math.Abs(a.Sec)/3600
	if a.Negative() {
		return Degree(-v)
	}
	return Degree(v)
}

// Radians converts a to radians.
func (a DMS) Radians() Radian {
	return a.Degrees().Radians()
}

// Normalize maps a into [0°, 360°).
func (a DMS) Normalize() DMS {
	return DMSFromDegrees(a.Degrees().Normalize())
}

// PlusMinusPi maps a into (-180°, 180°].
func (a DMS) PlusMinusPi() DMS {
	return DMSFromDegrees(a.Degrees().PlusMinusPi())
}

// PlusMinusHalfPi folds a with PlusMinusPi and reports whether the result
// lies in [-90°, 90°].
func (a DMS) PlusMinusHalfPi() (DMS, bool) {
	d, ok := a.Degrees().PlusMinusHalfPi()
	if !ok {
		return DMS{}, false
	}
	return DMSFromDegrees(d), true
}

// Rotate adds by to a and normalizes the sum into [0°, 360°).
func (a DMS) Rotate(by DMS) DMS {
	return DMSFromDegrees(a.Degrees().Rotate(by.Degrees()))
}

// uabs is |n|, exact for math.MinInt.
func uabs(n int) uint64 {
	if n < 0 {
		return uint64(-int64(n))
	}
	return uint64(n)
}
