// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"github.com/db47h/hdlsim/internal/hdl"
	"github.com/pkg/errors"
)

// ParseSensitivity parses a sensitivity expression and resolves signal names
// in signals. The expression is a comma separated list of triggers:
//
//	negedge(clk)            // falling edges of clk
//	posedge(clk), delay(50) // rising edges of clk or a 50 units timeout
//	a, b                    // any change of a or b, same as change(a), change(b)
//
// The returned error, if any, has ErrInvalidTrigger as its cause.
//
func ParseSensitivity(expr string, signals map[string]*Signal) (Sensitivity, error) {
	terms, err := hdl.Parse(expr)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidTrigger, err.Error())
	}
	sens := make(Sensitivity, 0, len(terms))
	for _, t := range terms {
		if t.Kind == hdl.Delay {
			sens = append(sens, Delay(Time(t.Delay)))
			continue
		}
		s := signals[t.Name]
		if s == nil {
			return nil, errors.Wrapf(ErrInvalidTrigger, "in %q at pos %d: unknown signal %s", expr, t.Pos+1, t.Name)
		}
		switch t.Kind {
		case hdl.Posedge:
			sens = append(sens, Posedge(s))
		case hdl.Negedge:
			sens = append(sens, Negedge(s))
		default:
			sens = append(sens, Change(s))
		}
	}
	if err = sens.Validate(); err != nil {
		return nil, errors.Wrapf(err, "in %q", expr)
	}
	return sens, nil
}

// MustParseSensitivity is like ParseSensitivity but panics on error.
//
func MustParseSensitivity(expr string, signals map[string]*Signal) Sensitivity {
	sens, err := ParseSensitivity(expr, signals)
	if err != nil {
		panic(err)
	}
	return sens
}
