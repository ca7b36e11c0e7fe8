package geodesic

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/auxsphere/geodesic/units"
)

// LatLng is a point on the ellipsoid. Both fields are radians; the latitude
// is expected in [-π/2, π/2] and the longitude is unconstrained.
type LatLng struct {
	Lat units.Radian
	Lng units.Radian
}

// NewLatLng returns the point at lat, lng (degrees).
func NewLatLng(lat, lng float64) LatLng {
	return LatLng{
		Lat: units.Degree(lat).Radians(),
		Lng: units.Degree(lng).Radians(),
	}
}

// LatLngFromDMS returns the point at lat, lng.
func LatLngFromDMS(lat, lng units.DMS) LatLng {
	return LatLng{Lat: lat.Radians(), Lng: lng.Radians()}
}

// LatLngFromS2 converts an s2.LatLng.
func LatLngFromS2(ll s2.LatLng) LatLng {
	return LatLng{Lat: units.FromAngle(ll.Lat), Lng: units.FromAngle(ll.Lng)}
}

// S2 converts p to an s2.LatLng.
func (p LatLng) S2() s2.LatLng {
	return s2.LatLng{Lat: p.Lat.Angle(), Lng: p.Lng.Angle()}
}

// Degrees returns the latitude and longitude in degrees.
func (p LatLng) Degrees() (lat, lng units.Degree) {
	return p.Lat.Degrees(), p.Lng.Degrees()
}

func (p LatLng) String() string {
	lat, lng := p.Degrees()
	return fmt.Sprintf("(%v, %v)", float64(lat), float64(lng))
}
