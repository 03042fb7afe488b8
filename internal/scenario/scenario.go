// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package scenario loads simulation scenarios from YAML files.
//
// A scenario declares a run horizon, a log level, a table of signals and a
// table of processes drawn from hwlib:
//
//	horizon: 100
//	log: info
//	signals:
//	  - name: clk
//	processes:
//	  - kind: clock
//	    out: [clk]
//	    period: 40
//	  - kind: print
//	    message: Hello World!
//	    on: negedge(clk)
//
package scenario

import (
	"io"
	"os"

	"github.com/db47h/hdlsim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SignalSpec declares a signal. A zero Width means a single bit signal.
//
type SignalSpec struct {
	Name  string `yaml:"name"`
	Width uint   `yaml:"width"`
	Init  uint64 `yaml:"init"`
}

// ProcessSpec declares a process. Which fields are used depends on Kind.
//
// Period is the full clock period for clocks, which must be even, and the
// interval between values for stimuli.
//
type ProcessSpec struct {
	Kind    string      `yaml:"kind"`
	In      []string    `yaml:"in"`
	Out     []string    `yaml:"out"`
	Clock   string      `yaml:"clock"`
	Reset   string      `yaml:"reset"`
	Period  hdlsim.Time `yaml:"period"`
	Values  []uint64    `yaml:"values"`
	Message string      `yaml:"message"`
	On      string      `yaml:"on"`
}

// Scenario is a parsed scenario file.
//
type Scenario struct {
	Horizon   hdlsim.Time   `yaml:"horizon"`
	LogLevel  string        `yaml:"log"`
	Signals   []SignalSpec  `yaml:"signals"`
	Processes []ProcessSpec `yaml:"processes"`
}

// Parse reads a scenario from r. Unknown fields are rejected.
//
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, errors.Wrap(err, "failed to decode scenario")
	}
	if sc.Horizon < 0 {
		return nil, errors.Wrapf(hdlsim.ErrConfiguration, "negative horizon %d", sc.Horizon)
	}
	return &sc, nil
}

// Load reads the named scenario file.
//
func Load(filename string) (*Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return sc, nil
}

// Model is a scenario instantiated into signals and processes.
//
type Model struct {
	Signals   []*hdlsim.Signal // in declaration order
	Processes hdlsim.Processes

	byName map[string]*hdlsim.Signal
}

// Signal returns the named signal or nil.
//
func (m *Model) Signal(name string) *hdlsim.Signal {
	return m.byName[name]
}

// Build instantiates the scenario. Output of print and probe processes goes to
// w.
//
func (sc *Scenario) Build(w io.Writer) (*Model, error) {
	m := &Model{byName: make(map[string]*hdlsim.Signal, len(sc.Signals))}
	for i := range sc.Signals {
		ss := &sc.Signals[i]
		if ss.Name == "" {
			return nil, errors.Wrapf(hdlsim.ErrConfiguration, "signal %d: missing name", i)
		}
		if _, ok := m.byName[ss.Name]; ok {
			return nil, errors.Wrapf(hdlsim.ErrConfiguration, "signal %q: redeclared", ss.Name)
		}
		width := ss.Width
		if width == 0 {
			width = 1
		}
		if width > 64 {
			return nil, errors.Wrapf(hdlsim.ErrConfiguration, "signal %q: invalid width %d", ss.Name, width)
		}
		sig := hdlsim.NewBus(ss.Name, width, ss.Init)
		m.Signals = append(m.Signals, sig)
		m.byName[ss.Name] = sig
	}
	for i := range sc.Processes {
		ps := &sc.Processes[i]
		p, err := m.process(ps, w)
		if err != nil {
			return nil, errors.Wrapf(err, "process %d (%s)", i, ps.Kind)
		}
		m.Processes = append(m.Processes, p)
	}
	return m, nil
}

// Run builds the scenario and runs it for its horizon with the given
// simulation options.
//
func (sc *Scenario) Run(w io.Writer, opts ...hdlsim.Option) (*Model, error) {
	m, err := sc.Build(w)
	if err != nil {
		return nil, err
	}
	sim, err := hdlsim.NewSimulation(m.Processes, opts...)
	if err != nil {
		return m, err
	}
	return m, sim.Run(sc.Horizon)
}
