package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/twpayne/go-polyline"

	"github.com/auxsphere/geodesic"
	"github.com/auxsphere/geodesic/batch"
	"github.com/auxsphere/geodesic/internal/vincenty1975"
	"github.com/auxsphere/geodesic/units"
)

type inverseInput struct {
	Lat1 float64 `validate:"gte=-90,lte=90"`
	Lng1 float64 `validate:"gte=-180,lte=180"`
	Lat2 float64 `validate:"gte=-90,lte=90"`
	Lng2 float64 `validate:"gte=-180,lte=180"`
}

// The start latitude is left to the solver, which rejects it with a range
// error naming the value.
type directInput struct {
	Lat      float64
	Lng      float64 `validate:"gte=-180,lte=180"`
	Azimuth  float64
	Distance float64 `validate:"gte=0"`
}

type pathPoint struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lng float64 `validate:"gte=-180,lte=180"`
}

// numbers parses args in groups of n. Groups that do not parse are logged
// and skipped.
func numbers(args []string, n int) [][]float64 {
	var out [][]float64
	for i := 0; i < len(args); i += n {
		if i+n > len(args) {
			log.WithField("args", args[i:]).Errorf("expected groups of %d values", n)
			break
		}
		vals := make([]float64, n)
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(args[i+j], 64)
			if err != nil {
				log.WithError(err).WithField("arg", args[i+j]).Error("invalid number")
				ok = false
				break
			}
			vals[j] = v
		}
		if ok {
			out = append(out, vals)
		}
	}
	return out
}

type session struct {
	opts   *options
	solver batch.Solver
	reg    *prometheus.Registry
}

func newSession(name string, args []string, stderr io.Writer) (*session, []string, error) {
	fs, o := newFlagSet(name, stderr)
	if err := parse(fs, o, args); err != nil {
		return nil, nil, err
	}
	e, err := o.ellipsoid()
	if err != nil {
		return nil, nil, err
	}
	s := &session{
		opts: o,
		solver: batch.Solver{
			Ellipsoid: e,
			Tolerance: geodesic.Tolerance(o.Tolerance),
			Workers:   o.Workers,
		},
	}
	if o.Stats {
		s.reg = prometheus.NewRegistry()
		s.solver.Metrics = batch.NewMetrics(s.reg)
	}
	log.WithFields(log.Fields{
		"ellipsoid": e,
		"method":    o.Method,
		"tolerance": o.Tolerance,
	}).Debug(name)
	return s, fs.Args(), nil
}

func (s *session) close() {
	if s.reg == nil {
		return
	}
	mfs, err := s.reg.Gather()
	if err != nil {
		log.WithError(err).Warn("gathering statistics")
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			fields := log.Fields{}
			for _, l := range m.GetLabel() {
				fields[l.GetName()] = l.GetValue()
			}
			if c := m.GetCounter(); c != nil {
				fields["value"] = c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				fields["count"] = h.GetSampleCount()
				fields["sum"] = h.GetSampleSum()
			}
			log.WithFields(fields).Info(mf.GetName())
		}
	}
}

func (o *options) azimuth(a *geodesic.Azimuth) string {
	if a == nil {
		return "-"
	}
	if o.DMS {
		return fmt.Sprintf("%.*f", o.Precision, units.DMSFromDegrees(a.Normalize().Degrees()))
	}
	return a.Normalize().String()
}

func (o *options) coordinate(r units.Radian) string {
	if o.DMS {
		return fmt.Sprintf("%.*f", o.Precision, units.DMSFromDegrees(r.Degrees()))
	}
	return fmt.Sprintf("%.9f", r.Degrees())
}

func runInverse(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	s, rest, err := newSession("inverse", args, stderr)
	if err != nil {
		return err
	}
	defer s.close()

	var problems []geodesic.InverseProblem
	for _, v := range numbers(rest, 4) {
		in := inverseInput{Lat1: v[0], Lng1: v[1], Lat2: v[2], Lng2: v[3]}
		if err := validate(in); err != nil {
			log.WithError(err).WithField("input", v).Error("inverse")
			continue
		}
		problems = append(problems, geodesic.InverseProblem{
			Start: geodesic.NewLatLng(in.Lat1, in.Lng1),
			End:   geodesic.NewLatLng(in.Lat2, in.Lng2),
		})
	}
	for i, out := range s.solver.Inverse(ctx, problems) {
		p := problems[i]
		if out.Err != nil {
			log.WithError(out.Err).WithFields(log.Fields{
				"start":  p.Start,
				"end":    p.End,
				"status": out.Status,
			}).Error("inverse")
			continue
		}
		sol := out.Solution
		fmt.Fprintf(stdout, "%v\t%s\t%s\n", sol.Distance, s.opts.azimuth(&sol.StartAzimuth), s.opts.azimuth(sol.EndAzimuth))
	}
	return nil
}

func runDirect(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	s, rest, err := newSession("direct", args, stderr)
	if err != nil {
		return err
	}
	defer s.close()

	var problems []geodesic.DirectProblem
	for _, v := range numbers(rest, 4) {
		in := directInput{Lat: v[0], Lng: v[1], Azimuth: v[2], Distance: v[3]}
		if err := validate(in); err != nil {
			log.WithError(err).WithField("input", v).Error("direct")
			continue
		}
		problems = append(problems, geodesic.DirectProblem{
			Start:    geodesic.NewLatLng(in.Lat, in.Lng),
			Azimuth:  geodesic.AzimuthFromDegrees(units.Degree(in.Azimuth)),
			Distance: geodesic.Distance(in.Distance),
		})
	}
	for i, out := range s.solver.Direct(ctx, problems) {
		p := problems[i]
		if out.Err != nil {
			log.WithError(out.Err).WithFields(log.Fields{
				"start":    p.Start,
				"azimuth":  p.Azimuth,
				"distance": p.Distance,
			}).Error("direct")
			continue
		}
		sol := out.Solution
		fmt.Fprintf(stdout, "%s\t%s\t%s\n",
			s.opts.coordinate(sol.End.Lat),
			s.opts.coordinate(sol.End.Lng.PlusMinusPi()),
			s.opts.azimuth(sol.EndAzimuth))
	}
	return nil
}

func runPath(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	s, rest, err := newSession("path", args, stderr)
	if err != nil {
		return err
	}
	defer s.close()

next:
	for _, enc := range rest {
		coords, _, err := polyline.DecodeCoords([]byte(enc))
		if err != nil {
			log.WithError(err).WithField("polyline", enc).Error("path")
			continue
		}
		points := make([]geodesic.LatLng, 0, len(coords))
		for _, c := range coords {
			pt := pathPoint{Lat: c[0], Lng: c[1]}
			if err := validate(pt); err != nil {
				log.WithError(err).WithField("polyline", enc).Error("path")
				continue next
			}
			points = append(points, geodesic.NewLatLng(pt.Lat, pt.Lng))
		}
		d, err := s.solver.PathLength(ctx, points)
		if err != nil {
			log.WithError(err).WithField("polyline", enc).Error("path")
			continue
		}
		fmt.Fprintf(stdout, "%d\t%v\n", len(points), d)
	}
	return nil
}

func runVincenty1975(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, o := newFlagSet("vincenty1975", stderr)
	if err := parse(fs, o, args); err != nil {
		return err
	}
	o.DMS = true
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "line\tdistance\tpublished\tstart azimuth\tend azimuth\titerations")
	for _, line := range vincenty1975.Lines() {
		res := geodesic.SolveInverse(line.Ellipsoid, geodesic.Tolerance(o.Tolerance), line.Inverse())
		if res.Status != geodesic.InverseSolved {
			log.WithFields(log.Fields{"line": line.Name, "status": res.Status}).Error(geodesic.ErrDistanceFailed)
			continue
		}
		sol := res.Solution
		fmt.Fprintf(tw, "%s\t%v\t%v\t%s\t%s\t%d\n",
			line.Name, sol.Distance, line.Distance,
			o.azimuth(&sol.StartAzimuth), o.azimuth(sol.EndAzimuth),
			res.Iterations)
	}
	return tw.Flush()
}

func runEllipsoids(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	for _, name := range geodesic.EllipsoidNames() {
		e, _ := geodesic.LookupEllipsoid(name)
		fmt.Fprintf(stdout, "%s\t%v\n", name, e)
	}
	return nil
}
