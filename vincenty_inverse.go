package geodesic

import (
	"math"

	"github.com/auxsphere/geodesic/units"
)

// InverseStatus is the outcome of SolveInverse.
type InverseStatus int

const (
	// InverseSolved means the iteration met its tolerance.
	InverseSolved InverseStatus = iota
	// InverseAntipodal means λ left [-π, π] or the iteration ran out of
	// MaxIterations. Both happen for nearly antipodal points.
	InverseAntipodal
	// InverseAbnormal is reserved for failures that are neither. No input
	// currently produces it.
	InverseAbnormal
)

func (s InverseStatus) String() string {
	switch s {
	case InverseSolved:
		return "solved"
	case InverseAntipodal:
		return "antipodal"
	case InverseAbnormal:
		return "abnormal"
	}
	return "unknown"
}

// InverseResult is the full outcome of SolveInverse. Solution is only
// meaningful when Status is InverseSolved.
type InverseResult struct {
	Status     InverseStatus
	Solution   InverseSolution
	Iterations int
}

// SolveInverse runs Vincenty's inverse method on e.
//
// Identical points short-circuit to a zero distance, a zero start azimuth
// and an end azimuth of π. Points that coincide only after longitude
// normalization give a zero distance with no end azimuth.
//
// A NaN anywhere in the iteration makes the convergence test fail open, so
// NaN input yields InverseSolved with NaN fields rather than an error.
func SolveInverse(e Ellipsoid, tol Tolerance, p InverseProblem) InverseResult {
	if p.Start == p.End {
		return InverseResult{
			Status: InverseSolved,
			Solution: InverseSolution{
				StartAzimuth: 0,
				EndAzimuth:   azimuthPtr(math.Pi),
			},
		}
	}

	f := e.Flattening()
	st := inverseState{
		a: e.EquatorialRadius(),
		b: e.PolarRadius(),
		f: f,
		l: longitudeDifference(p.Start.Lng, p.End.Lng),
	}
	u1 := reducedLatitude(f, float64(p.Start.Lat))
	u2 := reducedLatitude(f, float64(p.End.Lat))
	st.sinU1, st.cosU1 = math.Sincos(u1)
	st.sinU2, st.cosU2 = math.Sincos(u2)

	lambda := st.l
	for n := 1; n <= MaxIterations; n++ {
		if math.Abs(lambda) > math.Pi {
			return InverseResult{Status: InverseAntipodal, Iterations: n - 1}
		}
		next, sol, coincident := st.iterate(lambda)
		if coincident {
			return InverseResult{Status: InverseSolved, Iterations: n}
		}
		// NaN compares false, so it stops here too
		if !(math.Abs(lambda-next) >= float64(tol)) {
			return InverseResult{Status: InverseSolved, Solution: sol, Iterations: n}
		}
		lambda = next
	}
	return InverseResult{Status: InverseAntipodal, Iterations: MaxIterations}
}

// longitudeDifference returns lng2-lng1. When the raw difference is wider
// than π both longitudes are first normalized into [0, 2π).
func longitudeDifference(lng1, lng2 units.Radian) float64 {
	l := float64(lng2 - lng1)
	if math.Abs(l) <= math.Pi {
		return l
	}
	return float64(lng2.Normalize() - lng1.Normalize())
}

// reducedLatitude returns the parametric latitude U of phi.
func reducedLatitude(f, phi float64) float64 {
	return math.Atan((1 - f) * math.Tan(phi))
}

type inverseState struct {
	a, b, f, l   float64
	sinU1, cosU1 float64
	sinU2, cosU2 float64
}

// iterate evaluates one step of the λ fixed point. It returns the next λ
// and the solution implied by the current one.
func (st *inverseState) iterate(lambda float64) (float64, InverseSolution, bool) {
	sinLambda, cosLambda := math.Sincos(lambda)

	// (i, j) points along the geodesic at the start, (ii, jj) at the end
	i := st.cosU2 * sinLambda
	j := st.cosU1*st.sinU2 - st.sinU1*st.cosU2*cosLambda
	ii := st.cosU1 * sinLambda
	jj := -st.sinU1*st.cosU2 + st.cosU1*st.sinU2*cosLambda

	sin2Sigma := i*i + j*j
	sinSigma := math.Sqrt(sin2Sigma)
	cosSigma := st.sinU1*st.sinU2 + st.cosU1*st.cosU2*cosLambda
	if sinSigma == 0 && cosSigma > 0 {
		return lambda, InverseSolution{}, true
	}
	sigma := math.Atan2(sinSigma, cosSigma)

	sinAlpha := st.cosU1 * st.cosU2 * sinLambda / sinSigma
	cos2Alpha := 1 - sinAlpha*sinAlpha
	c := st.f / 16 * cos2Alpha * (4 + st.f*(4-3*cos2Alpha))
	uu := cos2Alpha * (st.a*st.a - st.b*st.b) / (st.b * st.b)

	// equatorial line: cos²α is zero
	var cos2SigmaM float64
	if cos2Alpha != 0 {
		cos2SigmaM = cosSigma - 2*st.sinU1*st.sinU2/cos2Alpha
	}
	cos2SigmaM2 := cos2SigmaM * cos2SigmaM

	aa := 1 + uu/16384*(4096+uu*(-768+uu*(320-175*uu)))
	bb := uu / 1024 * (256 + uu*(-128+uu*(74-47*uu)))
	y := cosSigma*(-1+2*cos2SigmaM2) -
		bb/6*cos2SigmaM*(-3+4*sin2Sigma)*(-3+4*cos2SigmaM2)
	deltaSigma := bb * sinSigma * (cos2SigmaM + bb/4*y)

	next := st.l + (1-c)*st.f*sinAlpha*
		(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM2)))

	return next, InverseSolution{
		Distance:     Distance(st.b * aa * (sigma - deltaSigma)),
		StartAzimuth: Azimuth(math.Atan2(i, j)),
		EndAzimuth:   azimuthPtr(math.Atan2(ii, jj)),
	}, false
}
