package geodesic

import (
	"errors"
	"fmt"

	"github.com/auxsphere/geodesic/units"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("latitude outside range")
	// ErrNonConvergent is returned when the direct iteration does not meet
	// its tolerance within MaxIterations.
	ErrNonConvergent = errors.New("iteration did not converge")
	// ErrDistanceFailed is returned by the inverse wrappers for every
	// unsolved outcome.
	ErrDistanceFailed = errors.New("distance calculation failed")
)

// RangeError reports a start latitude that does not fold into
// [-90°, 90°].
type RangeError struct {
	Latitude units.Degree
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrOutOfRange, e.Latitude)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
