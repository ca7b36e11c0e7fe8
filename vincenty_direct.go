package geodesic

import (
	"math"

	"github.com/auxsphere/geodesic/units"
)

// DirectResult is the full outcome of SolveDirect.
type DirectResult struct {
	Solution   DirectSolution
	Iterations int
}

// SolveDirect runs Vincenty's direct method on e.
//
// The start latitude is folded into (-π, π] and must then lie in
// [-π/2, π/2]; otherwise a *RangeError naming the latitude in degrees is
// returned. The start longitude is folded into (-π, π] and the azimuth into
// [0, 2π). The end longitude is the start longitude plus the computed
// longitude difference and is not folded again.
//
// ErrNonConvergent is returned when σ does not settle within MaxIterations.
// NaN input is not rejected; it surfaces as NaN output.
func SolveDirect(e Ellipsoid, tol Tolerance, p DirectProblem) (DirectResult, error) {
	p, err := checkDirect(p)
	if err != nil {
		return DirectResult{}, err
	}
	return solveDirect(e, tol, float64(p.Start.Lat), float64(p.Start.Lng), float64(p.Azimuth), float64(p.Distance))
}

// checkDirect folds the start point and azimuth of p, rejecting a start
// latitude outside [-π/2, π/2].
func checkDirect(p DirectProblem) (DirectProblem, error) {
	lat, ok := p.Start.Lat.PlusMinusHalfPi()
	if !ok {
		return p, &RangeError{Latitude: p.Start.Lat.Degrees()}
	}
	p.Start = LatLng{Lat: lat, Lng: p.Start.Lng.PlusMinusPi()}
	p.Azimuth = p.Azimuth.Normalize()
	return p, nil
}

func solveDirect(e Ellipsoid, tol Tolerance, phi1, lambda1, alpha1, s float64) (DirectResult, error) {
	a := e.EquatorialRadius()
	b := e.PolarRadius()
	f := e.Flattening()

	sinAlpha1, cosAlpha1 := math.Sincos(alpha1)

	tanU1 := (1 - f) * math.Tan(phi1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cos2Alpha := 1 - sinAlpha*sinAlpha
	uu := cos2Alpha * (a*a - b*b) / (b * b)
	aa := 1 + uu/16384*(4096+uu*(-768+uu*(320-175*uu)))
	bb := uu / 1024 * (256 + uu*(-128+uu*(74-47*uu)))

	first := s / (b * aa)
	sigma := first
	var sinSigma, cosSigma, cos2SigmaM float64
	n := 1
	for ; ; n++ {
		if n > MaxIterations {
			return DirectResult{Iterations: MaxIterations}, ErrNonConvergent
		}
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sincos(sigma)
		c2 := cos2SigmaM * cos2SigmaM
		deltaSigma := bb * sinSigma * (cos2SigmaM + bb/4*(cosSigma*(-1+2*c2)-
			bb/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*c2)))
		next := first + deltaSigma
		// NaN compares false and ends the loop
		converged := !(math.Abs(sigma-next) >= float64(tol))
		sigma = next
		if converged {
			break
		}
	}
	// the trigonometry below uses the settled σ
	cos2SigmaM = math.Cos(2*sigma1 + sigma)
	sinSigma, cosSigma = math.Sincos(sigma)
	c2 := cos2SigmaM * cos2SigmaM

	x := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	phi2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-f)*math.Sqrt(sinAlpha*sinAlpha+x*x))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := f / 16 * cos2Alpha * (4 + f*(4-3*cos2Alpha))
	l := lambda - (1-c)*f*sinAlpha*(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*c2)))

	return DirectResult{
		Solution: DirectSolution{
			End:        LatLng{Lat: units.Radian(phi2), Lng: units.Radian(lambda1 + l)},
			EndAzimuth: azimuthPtr(math.Atan2(sinAlpha, -x)),
		},
		Iterations: n,
	}, nil
}
