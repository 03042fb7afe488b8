// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"
	"io"

	"github.com/db47h/hdlsim"
)

// Clock returns a clock driver toggling clk every half time units.
//
//	Outputs: clk
//	Function: clk(t+half) = !clk(t)
//
func Clock(clk *hdlsim.Signal, half hdlsim.Time) *hdlsim.Process {
	return hdlsim.Always("Clock", func(c *hdlsim.Context) { c.Toggle(clk) }, hdlsim.Delay(half))
}

// Printer returns a process writing the current simulated time followed by msg
// to w every time one of the triggers fires.
//
func Printer(w io.Writer, msg string, triggers ...hdlsim.Trigger) *hdlsim.Process {
	return hdlsim.Always("Printer", func(c *hdlsim.Context) {
		if _, err := fmt.Fprintf(w, "%d %s\n", c.Now(), msg); err != nil {
			c.Logger().Errorf("printer: %v", err)
		}
	}, triggers...)
}

// Probe returns a process calling f with the current time and new value of sig
// every time sig changes.
//
//	Inputs: sig
//	Function: f(t, sig)
//
func Probe(sig *hdlsim.Signal, f func(t hdlsim.Time, v uint64)) *hdlsim.Process {
	return hdlsim.Always("Probe", func(c *hdlsim.Context) {
		f(c.Now(), sig.Get())
	}, sig.Change())
}

// Input returns a function based input. f is called every period time units,
// starting at time 0, and its result is written to out. period must be
// positive.
//
//	Outputs: out
//	Function: out = f()
//
func Input(out *hdlsim.Signal, period hdlsim.Time, f func() uint64) *hdlsim.Process {
	return hdlsim.NewProcess("Input", hdlsim.Sensitivity{hdlsim.Delay(0)}, func(c *hdlsim.Context) hdlsim.Sensitivity {
		c.Set(out, f())
		return hdlsim.Sensitivity{hdlsim.Delay(period)}
	})
}

// Stimulus returns a process driving values into out, one every period time
// units starting at time period. Once all values have been driven, out keeps
// its last value.
//
func Stimulus(out *hdlsim.Signal, period hdlsim.Time, values ...uint64) *hdlsim.Process {
	i := 0
	return hdlsim.Always("Stimulus", func(c *hdlsim.Context) {
		if i < len(values) {
			c.Set(out, values[i])
			i++
		}
	}, hdlsim.Delay(period))
}
