package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/auxsphere/geodesic"
)

const (
	methodVincenty  = "vincenty"
	methodHaversine = "haversine"
)

type options struct {
	Ellipsoid string  `validate:"required"`
	Method    string  `validate:"oneof=vincenty haversine"`
	Tolerance float64 `validate:"gt=0"`
	Workers   int     `validate:"gte=1"`
	Precision int     `validate:"gte=0,lte=12"`
	LogLevel  string  `validate:"oneof=trace debug info warn warning error"`
	DMS       bool
	Stats     bool
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *options) {
	o := &options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.Ellipsoid, "ellipsoid", "WGS84", "reference ellipsoid ("+strings.Join(geodesic.EllipsoidNames(), ", ")+")")
	fs.StringVar(&o.Method, "method", methodVincenty, "solution method (vincenty or haversine)")
	fs.Float64Var(&o.Tolerance, "tolerance", float64(geodesic.DefaultTolerance), "convergence tolerance (radians)")
	fs.IntVar(&o.Workers, "workers", 4, "number of concurrent solvers")
	fs.IntVar(&o.Precision, "precision", 5, "decimal places of arc seconds when printing DMS")
	fs.StringVar(&o.LogLevel, "log-level", "info", "log level")
	fs.BoolVar(&o.DMS, "dms", false, "print angles as degrees, minutes and seconds")
	fs.BoolVar(&o.Stats, "stats", false, "log solver statistics when done")
	_ = fs.String("config", "", "config file (optional)")
	return fs, o
}

// parse reads flags, GEODESIC_* environment variables and the optional
// config file, then validates the result.
func parse(fs *flag.FlagSet, o *options, args []string) error {
	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("GEODESIC"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return err
	}
	if err := validate(o); err != nil {
		return err
	}
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

var validate = mustValidator()

func mustValidator() func(v interface{}) error {
	fn, err := newValidator()
	if err != nil {
		panic(err)
	}
	return fn
}

// newValidator returns a struct validator whose errors read as English
// sentences.
func newValidator() (func(v interface{}) error, error) {
	v := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("no English translator")
	}
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("registering translations: %w", err)
	}
	return func(s interface{}) error {
		err := v.Struct(s)
		if err == nil {
			return nil
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		errs := make([]error, 0, len(verrs))
		for _, e := range verrs {
			errs = append(errs, errors.New(e.Translate(trans)))
		}
		return errors.Join(errs...)
	}, nil
}

// ellipsoid resolves the -ellipsoid and -method options. The haversine
// method uses a sphere of the ellipsoid's equatorial radius.
func (o *options) ellipsoid() (geodesic.Ellipsoid, error) {
	e, ok := geodesic.LookupEllipsoid(o.Ellipsoid)
	if !ok {
		return geodesic.Ellipsoid{}, fmt.Errorf("unknown ellipsoid %q", o.Ellipsoid)
	}
	if o.Method == methodHaversine && !e.Spherical() {
		e = geodesic.NewSpherical(e.EquatorialRadius())
	}
	return e, nil
}
