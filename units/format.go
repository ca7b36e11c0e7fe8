package units

import (
	"fmt"
	"math"
	"strconv"
)

// Format prints d as "<value>°". A precision, as in "%.4f", fixes the
// number of decimals.
func (d Degree) Format(f fmt.State, verb rune) {
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(f, "%.*f°", p, float64(d))
		return
	}
	fmt.Fprintf(f, "%s°", strconv.FormatFloat(float64(d), 'f', -1, 64))
}

func (d Degree) String() string {
	return fmt.Sprint(d)
}

func (r Radian) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64) + " rad"
}

// Format prints a as <sign><deg>°<min>'<sec>". The sign is printed once for
// the whole angle. Seconds that are exactly zero print as 0 whatever the
// precision; otherwise a precision applies to the seconds field.
func (a DMS) Format(f fmt.State, verb rune) {
	sign := ""
	if a.Deg < 0 || a.Min < 0 || a.Sec < 0 {
		sign = "-"
	}
	deg, mins, sec := uabs(a.Deg), uabs(a.Min), math.Abs(a.Sec)
	p, ok := f.Precision()
	switch {
	case a.Sec == 0:
		fmt.Fprintf(f, "%s%d°%d'0\"", sign, deg, mins)
	case ok:
		fmt.Fprintf(f, "%s%d°%d'%.*f\"", sign, deg, mins, p, sec)
	default:
		fmt.Fprintf(f, "%s%d°%d'%s\"", sign, deg, mins, strconv.FormatFloat(sec, 'f', -1, 64))
	}
}

func (a DMS) String() string {
	return fmt.Sprint(a)
}
