// API for the shperical routines in Go
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geodesic

import (
	"math"

	"github.com/auxsphere/geodesic/units"
)

// HaversineInverse solves the inverse problem on a sphere of the given
// radius. The end azimuth is the bearing from End back to Start rotated by
// π, normalized into [0, 2π).
func HaversineInverse(radius float64, p InverseProblem) InverseSolution {
	back := bearing(p.End, p.Start)
	return InverseSolution{
		Distance:     Distance(radius * centralAngle(p.Start, p.End)),
		StartAzimuth: Azimuth(bearing(p.Start, p.End)),
		EndAzimuth:   azimuthPtr(float64(units.Radian(back).Rotate(math.Pi))),
	}
}

// HaversineDirect solves the direct problem on a sphere of the given radius.
// The start latitude is not checked; Ellipsoid.Direct rejects one outside
// [-90°, 90°].
func HaversineDirect(radius float64, p DirectProblem) DirectSolution {
	end := destination(radius, p.Start, float64(p.Distance), float64(p.Azimuth))
	back := bearing(end, p.Start)
	return DirectSolution{
		End:        end,
		EndAzimuth: azimuthPtr(float64(units.Radian(back).Rotate(math.Pi))),
	}
}

func destination(radius float64, start LatLng, meters, θ float64) LatLng {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	// see mathforum.org/library/drmath/view/52049.html for derivation
	δ := meters / radius
	φ1 := float64(start.Lat)
	λ1 := float64(start.Lng)
	sinφ1, cosφ1 := math.Sincos(φ1)
	sinδ, cosδ := math.Sincos(δ)
	φ2 := math.Asin(sinφ1*cosδ + cosφ1*sinδ*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*sinδ*cosφ1, cosδ-sinφ1*math.Sin(φ2))
	return LatLng{Lat: units.Radian(φ2), Lng: units.Radian(λ2)}
}

// centralAngle is the haversine formula.
func centralAngle(x, y LatLng) float64 {
	φ1 := float64(x.Lat)
	φ2 := float64(y.Lat)
	sΔφ2 := math.Sin((φ2 - φ1) / 2)
	sΔλ2 := math.Sin(float64(y.Lng-x.Lng) / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	return 2 * math.Asin(math.Sqrt(haver))
}

func bearing(x, y LatLng) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	// see mathforum.org/library/drmath/view/55417.html for derivation
	φ1 := float64(x.Lat)
	φ2 := float64(y.Lat)
	Δλ := float64(y.Lng - x.Lng)
	sinφ1, cosφ1 := math.Sincos(φ1)
	sinφ2, cosφ2 := math.Sincos(φ2)
	return math.Atan2(math.Sin(Δλ)*cosφ2, cosφ1*sinφ2-sinφ1*cosφ2*math.Cos(Δλ))
}
