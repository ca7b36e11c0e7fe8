// Package batch solves many geodesic problems concurrently.
//
// Every solver call is independent, so a batch only shares the read-only
// ellipsoid between workers. Outcomes are returned in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/iter"

	"github.com/auxsphere/geodesic"
)

const (
	problemInverse = "inverse"
	problemDirect  = "direct"

	outcomeSolved   = "solved"
	outcomeCanceled = "canceled"
	outcomeError    = "error"
)

// Solver solves batches of problems on one ellipsoid.
type Solver struct {
	Ellipsoid geodesic.Ellipsoid
	// Tolerance is the convergence tolerance of every solve. Zero or a
	// negative value means geodesic.DefaultTolerance; call the geodesic
	// solvers directly to iterate with such a tolerance.
	Tolerance geodesic.Tolerance
	// Workers bounds the number of goroutines. Zero means GOMAXPROCS.
	Workers int
	Metrics *Metrics
}

// InverseOutcome is the result of one inverse problem. Err is
// geodesic.ErrDistanceFailed when Status is not solved, or the context
// error when the batch was canceled before the problem was reached.
type InverseOutcome struct {
	Solution   geodesic.InverseSolution
	Status     geodesic.InverseStatus
	Iterations int
	Err        error
}

// DirectOutcome is the result of one direct problem.
type DirectOutcome struct {
	Solution   geodesic.DirectSolution
	Iterations int
	Err        error
}

func iterator[T any](workers int) iter.Iterator[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return iter.Iterator[T]{MaxGoroutines: workers}
}

func (s *Solver) tolerance() geodesic.Tolerance {
	if s.Tolerance <= 0 {
		return geodesic.DefaultTolerance
	}
	return s.Tolerance
}

// Inverse solves every problem in problems.
func (s *Solver) Inverse(ctx context.Context, problems []geodesic.InverseProblem) []InverseOutcome {
	out := make([]InverseOutcome, len(problems))
	tol := s.tolerance()
	iterator[geodesic.InverseProblem](s.Workers).ForEachIdx(problems, func(i int, p *geodesic.InverseProblem) {
		out[i] = s.inverse(ctx, tol, *p)
	})
	return out
}

func (s *Solver) inverse(ctx context.Context, tol geodesic.Tolerance, p geodesic.InverseProblem) InverseOutcome {
	if err := ctx.Err(); err != nil {
		s.Metrics.observe(problemInverse, outcomeCanceled, 0)
		return InverseOutcome{Err: err}
	}
	if s.Ellipsoid.Spherical() {
		sol, err := s.Ellipsoid.Inverse(tol, p)
		s.Metrics.observe(problemInverse, geodesic.InverseSolved.String(), 0)
		return InverseOutcome{Solution: sol, Err: err}
	}
	res := geodesic.SolveInverse(s.Ellipsoid, tol, p)
	s.Metrics.observe(problemInverse, res.Status.String(), res.Iterations)
	o := InverseOutcome{Solution: res.Solution, Status: res.Status, Iterations: res.Iterations}
	if res.Status != geodesic.InverseSolved {
		o.Err = geodesic.ErrDistanceFailed
	}
	return o
}

// Direct solves every problem in problems.
func (s *Solver) Direct(ctx context.Context, problems []geodesic.DirectProblem) []DirectOutcome {
	out := make([]DirectOutcome, len(problems))
	tol := s.tolerance()
	iterator[geodesic.DirectProblem](s.Workers).ForEachIdx(problems, func(i int, p *geodesic.DirectProblem) {
		out[i] = s.direct(ctx, tol, *p)
	})
	return out
}

func (s *Solver) direct(ctx context.Context, tol geodesic.Tolerance, p geodesic.DirectProblem) DirectOutcome {
	if err := ctx.Err(); err != nil {
		s.Metrics.observe(problemDirect, outcomeCanceled, 0)
		return DirectOutcome{Err: err}
	}
	if s.Ellipsoid.Spherical() {
		sol, err := s.Ellipsoid.Direct(tol, p)
		if err != nil {
			s.Metrics.observe(problemDirect, outcomeError, 0)
			return DirectOutcome{Err: err}
		}
		s.Metrics.observe(problemDirect, outcomeSolved, 0)
		return DirectOutcome{Solution: sol}
	}
	res, err := geodesic.SolveDirect(s.Ellipsoid, tol, p)
	if err != nil {
		s.Metrics.observe(problemDirect, outcomeError, res.Iterations)
		return DirectOutcome{Iterations: res.Iterations, Err: err}
	}
	s.Metrics.observe(problemDirect, outcomeSolved, res.Iterations)
	return DirectOutcome{Solution: res.Solution, Iterations: res.Iterations}
}

// PathLength returns the length of the path through points, the sum of the
// geodesic distances of consecutive legs. Fewer than two points give zero.
func (s *Solver) PathLength(ctx context.Context, points []geodesic.LatLng) (geodesic.Distance, error) {
	if len(points) < 2 {
		return 0, nil
	}
	legs := make([]geodesic.InverseProblem, len(points)-1)
	for i := range legs {
		legs[i] = geodesic.InverseProblem{Start: points[i], End: points[i+1]}
	}
	var total geodesic.Distance
	var errs []error
	for i, o := range s.Inverse(ctx, legs) {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("leg %d: %w", i, o.Err))
			continue
		}
		total += o.Solution.Distance
	}
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}
	return total, nil
}
