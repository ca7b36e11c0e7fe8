// Package vincenty1975 holds the five test lines published in
// T. Vincenty, "Direct and Inverse Solutions of Geodesics on the Ellipsoid
// with Application of Nested Equations", Survey Review XXIII (1975).
//
// Line (a) is on the Bessel ellipsoid, lines (b) to (e) on the
// International (Hayford) ellipsoid. Every start point has longitude 0.
package vincenty1975

import (
	"github.com/auxsphere/geodesic"
	"github.com/auxsphere/geodesic/units"
)

// Line is one published test line.
type Line struct {
	Name         string
	Ellipsoid    geodesic.Ellipsoid
	Start        geodesic.LatLng
	End          geodesic.LatLng
	Distance     geodesic.Distance
	StartAzimuth units.DMS
	EndAzimuth   units.DMS
}

// Inverse returns the inverse problem of l.
func (l Line) Inverse() geodesic.InverseProblem {
	return geodesic.InverseProblem{Start: l.Start, End: l.End}
}

// Direct returns the direct problem of l.
func (l Line) Direct() geodesic.DirectProblem {
	return geodesic.DirectProblem{
		Start:    l.Start,
		Azimuth:  geodesic.Azimuth(l.StartAzimuth.Radians()),
		Distance: l.Distance,
	}
}

// Solution returns the published inverse solution of l.
func (l Line) Solution() geodesic.InverseSolution {
	end := geodesic.Azimuth(l.EndAzimuth.Radians())
	return geodesic.InverseSolution{
		Distance:     l.Distance,
		StartAzimuth: geodesic.Azimuth(l.StartAzimuth.Radians()),
		EndAzimuth:   &end,
	}
}

func dms(deg, mins int, sec float64) units.DMS {
	return units.DMS{Deg: deg, Min: mins, Sec: sec}
}

// Lines returns a fresh copy of the five lines, (a) to (e).
func Lines() []Line {
	return []Line{
		{
			Name:         "a",
			Ellipsoid:    geodesic.Bessel,
			Start:        geodesic.LatLngFromDMS(dms(55, 45, 0), units.DMS{}),
			End:          geodesic.LatLngFromDMS(dms(-33, 26, 0), dms(108, 13, 0)),
			Distance:     14110526.170,
			StartAzimuth: dms(96, 36, 8.79960),
			EndAzimuth:   dms(137, 52, 22.01454),
		},
		{
			Name:         "b",
			Ellipsoid:    geodesic.Hayford,
			Start:        geodesic.LatLngFromDMS(dms(37, 19, 54.95367), units.DMS{}),
			End:          geodesic.LatLngFromDMS(dms(26, 7, 42.83946), dms(41, 28, 35.50729)),
			Distance:     4085966.703,
			StartAzimuth: dms(95, 27, 59.63089),
			EndAzimuth:   dms(118, 5, 58.96161),
		},
		{
			Name:         "c",
			Ellipsoid:    geodesic.Hayford,
			Start:        geodesic.LatLngFromDMS(dms(35, 16, 11.24862), units.DMS{}),
			End:          geodesic.LatLngFromDMS(dms(67, 22, 14.77638), dms(137, 47, 28.31435)),
			Distance:     8084823.839,
			StartAzimuth: dms(15, 44, 23.74850),
			EndAzimuth:   dms(144, 55, 39.92147),
		},
		{
			Name:         "d",
			Ellipsoid:    geodesic.Hayford,
			Start:        geodesic.LatLngFromDMS(dms(1, 0, 0), units.DMS{}),
			End:          geodesic.LatLngFromDMS(dms(0, -59, 53.83076), dms(179, 17, 48.02997)),
			Distance:     19960000.000,
			StartAzimuth: dms(89, 0, 0),
			EndAzimuth:   dms(91, 0, 6.11733),
		},
		{
			Name:         "e",
			Ellipsoid:    geodesic.Hayford,
			Start:        geodesic.LatLngFromDMS(dms(1, 0, 0), units.DMS{}),
			End:          geodesic.LatLngFromDMS(dms(1, 1, 15.18952), dms(179, 46, 17.84244)),
			Distance:     19780006.558,
			StartAzimuth: dms(4, 59, 59.99995),
			EndAzimuth:   dms(174, 59, 59.88481),
		},
	}
}
