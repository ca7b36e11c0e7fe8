package geodesic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, 298.257223563)

// NAD83 is WGS84 with the GRS80 inverse flattening, as used by the National
// Geodetic Survey tool inverse for "GRS80 / WGS84 (NAD83)".
// https://www.ngs.noaa.gov/PC_PROD/Inv_Fwd/
var NAD83 = WGS84.WithInverseFlattening(298.25722210088)

// Bessel is the Bessel ellipsoid with the inverse flattening used in
// Vincenty (1975). Wikipedia gives 299.1528153513233 rather than
// 299.1528128.
// https://en.wikipedia.org/wiki/Bessel_ellipsoid
var Bessel = NewEllipsoid(6377397.155, 299.1528128)

// Hayford is the International ellipsoid of 1924, used in Vincenty (1975).
// https://en.wikipedia.org/wiki/Hayford_ellipsoid
var Hayford = NewEllipsoid(6378388, 297)

// Clarke is the Clarke 1866 ellipsoid in meters. Clarke defined it in
// British feet (a = 20,926,062 ft, b = 20,855,121 ft).
// https://en.wikipedia.org/wiki/North_American_Datum
var Clarke = NewEllipsoid(6378206.4, 294.978698214)

// BedfordClarke is Clarke 1866 with the inverse flattening of Delorme's
// "Evaluation Direct and Inverse Geodetic Algorithms" (Bedford Institute of
// Oceanography, 1978).
var BedfordClarke = Clarke.WithInverseFlattening(294.9786986)

// EarthRadius is the mean radius of the Earth (meters).
const EarthRadius = 6371000

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe of radius EarthRadius.
var Globe = NewSpherical(EarthRadius)

// Ellipsoid is an immutable reference ellipsoid.
type Ellipsoid struct {
	radius            float64
	inverseFlattening float64
	spherical         bool
}

// NewEllipsoid initializes a new ellipsoid.
//
// Param radius is the equatorial radius (meters).
// Param inverseFlattening is the reciprocal of the flattening factor.
//
// No validation is performed: an inverse flattening of zero yields an
// infinite flattening.
func NewEllipsoid(radius, inverseFlattening float64) Ellipsoid {
	return Ellipsoid{radius: radius, inverseFlattening: inverseFlattening}
}

// NewSpherical initializes an ellipsoid that uses simplified operations on
// a sphere.
//
// The Inverse and Direct operations use great-circle calculations such as
// the Haversine formula instead of Vincenty's formulae.
//
// Param radius is the radius of the sphere (meters).
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) Ellipsoid {
	return Ellipsoid{radius: radius, inverseFlattening: math.Inf(1), spherical: true}
}

// WithInverseFlattening returns a copy of e with the inverse flattening
// replaced.
func (e Ellipsoid) WithInverseFlattening(inverseFlattening float64) Ellipsoid {
	e.inverseFlattening = inverseFlattening
	return e
}

// EquatorialRadius of the Ellipsoid (meters).
func (e Ellipsoid) EquatorialRadius() float64 {
	return e.radius
}

// InverseFlattening of the Ellipsoid
func (e Ellipsoid) InverseFlattening() float64 {
	return e.inverseFlattening
}

// Flattening of the Ellipsoid
func (e Ellipsoid) Flattening() float64 {
	return 1 / e.inverseFlattening
}

// PolarRadius of the Ellipsoid (meters).
func (e Ellipsoid) PolarRadius() float64 {
	return e.radius * (1 - e.Flattening())
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e Ellipsoid) Spherical() bool {
	return e.spherical
}

func (e Ellipsoid) String() string {
	return fmt.Sprintf("R=%s, 1/ƒ=%s",
		strconv.FormatFloat(e.radius, 'f', -1, 64),
		strconv.FormatFloat(e.inverseFlattening, 'f', -1, 64))
}

// Inverse solves the inverse geodesic problem.
//
// Param tol is the convergence tolerance of the iteration (radians).
// Param p holds the two points.
//
// Vincenty's inverse method does not converge for nearly antipodal points.
// Any failure to solve is reported as ErrDistanceFailed; use SolveInverse to
// tell the failure modes apart.
//
// On a spherical ellipsoid the haversine method is used and tol is ignored.
func (e Ellipsoid) Inverse(tol Tolerance, p InverseProblem) (InverseSolution, error) {
	if e.spherical {
		return HaversineInverse(e.radius, p), nil
	}
	res := SolveInverse(e, tol, p)
	if res.Status != InverseSolved {
		return InverseSolution{}, ErrDistanceFailed
	}
	return res.Solution, nil
}

// Direct solves the direct geodesic problem.
//
// Param tol is the convergence tolerance of the iteration (radians).
// Param p holds the start point, the azimuth at the start point and the
// distance to travel.
//
// The start latitude must fold into [-90°, 90°], otherwise a *RangeError is
// returned. On a spherical ellipsoid the haversine method is used and tol is
// ignored.
func (e Ellipsoid) Direct(tol Tolerance, p DirectProblem) (DirectSolution, error) {
	if e.spherical {
		p, err := checkDirect(p)
		if err != nil {
			return DirectSolution{}, err
		}
		return HaversineDirect(e.radius, p), nil
	}
	res, err := SolveDirect(e, tol, p)
	if err != nil {
		return DirectSolution{}, err
	}
	return res.Solution, nil
}

// Distance returns the geodesic distance between x and y using
// DefaultTolerance.
func (e Ellipsoid) Distance(x, y LatLng) (Distance, error) {
	sol, err := e.Inverse(DefaultTolerance, InverseProblem{Start: x, End: y})
	if err != nil {
		return 0, err
	}
	return sol.Distance, nil
}

var registry = map[string]Ellipsoid{
	"wgs84":             WGS84,
	"nad83":             NAD83,
	"bessel":            Bessel,
	"hayford":           Hayford,
	"international1924": Hayford,
	"clarke":            Clarke,
	"clarke1866":        Clarke,
	"bedfordclarke":     BedfordClarke,
	"globe":             Globe,
}

// LookupEllipsoid returns the named ellipsoid. Names are matched without
// regard to case, spaces, dashes or underscores, so "Bedford-Clarke" finds
// BedfordClarke.
func LookupEllipsoid(name string) (Ellipsoid, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
	e, ok := registry[key]
	return e, ok
}

// EllipsoidNames lists the canonical names accepted by LookupEllipsoid.
func EllipsoidNames() []string {
	return []string{"WGS84", "NAD83", "Bessel", "Hayford", "Clarke", "BedfordClarke", "Globe"}
}
