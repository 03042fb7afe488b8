// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package scenario

import (
	"fmt"
	"io"

	"github.com/db47h/hdlsim"
	"github.com/db47h/hdlsim/hwlib"
	"github.com/pkg/errors"
)

type gate func(a, b, out *hdlsim.Signal) *hdlsim.Process

var gates = map[string]gate{
	"and":  hwlib.And,
	"nand": hwlib.Nand,
	"or":   hwlib.Or,
	"nor":  hwlib.Nor,
	"xor":  hwlib.Xor,
	"xnor": hwlib.Xnor,
}

func (m *Model) lookup(names []string, n int, what string) ([]*hdlsim.Signal, error) {
	if len(names) != n {
		return nil, errors.Wrapf(hdlsim.ErrConfiguration, "expected %d %s signals, got %d", n, what, len(names))
	}
	sigs := make([]*hdlsim.Signal, n)
	for i, name := range names {
		s := m.byName[name]
		if s == nil {
			return nil, errors.Wrapf(hdlsim.ErrConfiguration, "unknown signal %q", name)
		}
		sigs[i] = s
	}
	return sigs, nil
}

func (m *Model) one(name, what string) (*hdlsim.Signal, error) {
	if name == "" {
		return nil, errors.Wrapf(hdlsim.ErrConfiguration, "missing %s signal", what)
	}
	s, err := m.lookup([]string{name}, 1, what)
	if err != nil {
		return nil, err
	}
	return s[0], nil
}

func (m *Model) process(ps *ProcessSpec, w io.Writer) (*hdlsim.Process, error) {
	if g, ok := gates[ps.Kind]; ok {
		in, err := m.lookup(ps.In, 2, "input")
		if err != nil {
			return nil, err
		}
		out, err := m.lookup(ps.Out, 1, "output")
		if err != nil {
			return nil, err
		}
		return g(in[0], in[1], out[0]), nil
	}

	switch ps.Kind {
	case "not", "probe", "mux", "halfadder", "fulladder", "adder":
		return m.combinational(ps, w)
	case "dff", "register", "counter":
		return m.sequential(ps)
	case "clock":
		out, err := m.lookup(ps.Out, 1, "output")
		if err != nil {
			return nil, err
		}
		if ps.Period <= 0 || ps.Period%2 != 0 {
			return nil, errors.Wrapf(hdlsim.ErrConfiguration, "invalid clock period %d, must be positive and even", ps.Period)
		}
		return hwlib.Clock(out[0], ps.Period/2), nil
	case "stimulus":
		out, err := m.lookup(ps.Out, 1, "output")
		if err != nil {
			return nil, err
		}
		if ps.Period <= 0 {
			return nil, errors.Wrapf(hdlsim.ErrConfiguration, "invalid period %d", ps.Period)
		}
		return hwlib.Stimulus(out[0], ps.Period, ps.Values...), nil
	case "print":
		sens, err := hdlsim.ParseSensitivity(ps.On, m.byName)
		if err != nil {
			return nil, err
		}
		return hwlib.Printer(w, ps.Message, sens...), nil
	case "":
		return nil, errors.Wrap(hdlsim.ErrConfiguration, "missing process kind")
	}
	return nil, errors.Wrapf(hdlsim.ErrConfiguration, "unknown process kind %q", ps.Kind)
}

func (m *Model) combinational(ps *ProcessSpec, w io.Writer) (*hdlsim.Process, error) {
	var nin, nout int
	switch ps.Kind {
	case "not":
		nin, nout = 1, 1
	case "probe":
		nin = 1
	case "mux":
		nin, nout = 3, 1
	case "halfadder", "adder":
		nin, nout = 2, 2
	case "fulladder":
		nin, nout = 3, 2
	}
	in, err := m.lookup(ps.In, nin, "input")
	if err != nil {
		return nil, err
	}
	out, err := m.lookup(ps.Out, nout, "output")
	if err != nil {
		return nil, err
	}
	switch ps.Kind {
	case "not":
		return hwlib.Not(in[0], out[0]), nil
	case "probe":
		sig := in[0]
		return hwlib.Probe(sig, func(t hdlsim.Time, v uint64) {
			fmt.Fprintf(w, "%d %s\n", t, sig)
		}), nil
	case "mux":
		return hwlib.Mux(in[0], in[1], in[2], out[0]), nil
	case "halfadder":
		return hwlib.HalfAdder(in[0], in[1], out[0], out[1]), nil
	case "fulladder":
		return hwlib.FullAdder(in[0], in[1], in[2], out[0], out[1]), nil
	default:
		return hwlib.Adder(in[0], in[1], out[0], out[1]), nil
	}
}

func (m *Model) sequential(ps *ProcessSpec) (*hdlsim.Process, error) {
	clk, err := m.one(ps.Clock, "clock")
	if err != nil {
		return nil, err
	}
	out, err := m.lookup(ps.Out, 1, "output")
	if err != nil {
		return nil, err
	}
	switch ps.Kind {
	case "dff":
		in, err := m.lookup(ps.In, 1, "input")
		if err != nil {
			return nil, err
		}
		return hwlib.DFF(clk, in[0], out[0]), nil
	case "register":
		in, err := m.lookup(ps.In, 2, "input")
		if err != nil {
			return nil, err
		}
		return hwlib.Register(clk, in[0], in[1], out[0]), nil
	default:
		var rst *hdlsim.Signal
		if ps.Reset != "" {
			if rst, err = m.one(ps.Reset, "reset"); err != nil {
				return nil, err
			}
		}
		return hwlib.Counter(clk, rst, out[0]), nil
	}
}
