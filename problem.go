package geodesic

import (
	"fmt"
	"strconv"

	"github.com/auxsphere/geodesic/units"
)

// Tolerance bounds the convergence test of the iterative solvers (radians).
// A zero tolerance may never be met; the solvers then give up after
// MaxIterations.
type Tolerance float64

// DefaultTolerance is the tolerance used by Ellipsoid.Distance.
const DefaultTolerance Tolerance = 1e-12

// MaxIterations caps every fixed-point loop.
const MaxIterations = 200

// Distance is a length along the ellipsoid in the unit of its radius
// (meters for the named ellipsoids).
type Distance float64

// String prints the distance to three decimal places.
func (d Distance) String() string {
	return strconv.FormatFloat(float64(d), 'f', 3, 64)
}

// Azimuth is a compass bearing measured clockwise from north, in raw
// radians. It is only normalized on demand.
type Azimuth units.Radian

// AzimuthFromDegrees returns the azimuth of d degrees.
func AzimuthFromDegrees(d units.Degree) Azimuth {
	return Azimuth(d.Radians())
}

// Radians returns the raw value of a.
func (a Azimuth) Radians() units.Radian {
	return units.Radian(a)
}

// Degrees converts a to degrees without normalizing.
func (a Azimuth) Degrees() units.Degree {
	return units.Radian(a).Degrees()
}

// Normalize maps a into [0, 2π).
func (a Azimuth) Normalize() Azimuth {
	return Azimuth(units.Radian(a).Normalize())
}

// String prints the azimuth in degrees to two decimal places.
func (a Azimuth) String() string {
	return fmt.Sprintf("%.2f", a.Degrees())
}

// DirectProblem is the input of the direct problem.
type DirectProblem struct {
	Start    LatLng
	Azimuth  Azimuth
	Distance Distance
}

// InverseProblem is the input of the inverse problem.
type InverseProblem struct {
	Start LatLng
	End   LatLng
}

// DirectSolution is the output of the direct problem. EndAzimuth is the
// azimuth of the geodesic at End; it is nil only for degenerate solutions.
type DirectSolution struct {
	End        LatLng
	EndAzimuth *Azimuth
}

// InverseSolution is the output of the inverse problem. EndAzimuth is the
// azimuth of the geodesic at the end point; it is nil only when the two
// points coincide after longitude normalization.
type InverseSolution struct {
	Distance     Distance
	StartAzimuth Azimuth
	EndAzimuth   *Azimuth
}

func azimuthPtr(a float64) *Azimuth {
	az := Azimuth(a)
	return &az
}
