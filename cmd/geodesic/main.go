// Command geodesic solves geodesic problems from the command line.
//
//	geodesic inverse [flags] [--] lat1 lng1 lat2 lng2 [...]
//	geodesic direct [flags] [--] lat lng azimuth distance [...]
//	geodesic path [flags] polyline [...]
//	geodesic vincenty1975 [flags]
//	geodesic ellipsoids
//
// Angles are decimal degrees and distances are meters. Flags may also be
// set through GEODESIC_* environment variables or a -config file. A
// problem that cannot be solved is logged and the next one is processed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		log.WithError(err).Error("geodesic")
		os.Exit(2)
	}
}

type command func(ctx context.Context, args []string, stdout, stderr io.Writer) error

var commands = map[string]command{
	"inverse":      runInverse,
	"direct":       runDirect,
	"path":         runPath,
	"vincenty1975": runVincenty1975,
	"ellipsoids":   runEllipsoids,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd(ctx, args[1:], stdout, stderr)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: geodesic <inverse|direct|path|vincenty1975|ellipsoids> [flags] [args]")
}
