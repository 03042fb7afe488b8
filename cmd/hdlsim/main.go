// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hdlsim runs a simulation scenario described in a YAML file and
// prints the final value of every signal.
//
//	hdlsim -f scenario.yaml [-t horizon] [-v]
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/hdlsim"
	"github.com/db47h/hdlsim/internal/scenario"
	"github.com/db47h/hdlsim/log"
)

func main() {
	var (
		file    = flag.String("f", "", "scenario `file`")
		horizon = flag.Int64("t", -1, "run for `units` of simulated time, overriding the scenario horizon")
		verbose = flag.Bool("v", false, "log every simulation event")
	)
	flag.Parse()
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout, os.Stderr, *file, *horizon, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "hdlsim: %+v\n", err)
		os.Exit(1)
	}
}

// run runs the scenario file. Simulation output and final signal values go to
// stdout, log messages to stderr. A negative horizon keeps the scenario's.
func run(stdout, stderr io.Writer, file string, horizon int64, verbose bool) error {
	sc, err := scenario.Load(file)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(sc.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = log.LevelDebug
	}
	if horizon >= 0 {
		sc.Horizon = hdlsim.Time(horizon)
	}
	l := log.New(stderr, level)

	m, err := sc.Run(stdout, hdlsim.WithLogger(l))
	if m != nil {
		for _, s := range m.Signals {
			fmt.Fprintln(stdout, s)
		}
	}
	if err != nil {
		return err
	}
	l.Infof("simulation completed at time %d", sc.Horizon)
	return nil
}
