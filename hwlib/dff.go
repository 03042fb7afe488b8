// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hdlsim"

// DFF returns a data flip flop clocked on the rising edge of clk.
//
//	Inputs: clk, in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(clk, in, out *hdlsim.Signal) *hdlsim.Process {
	return hdlsim.Always("DFF", func(c *hdlsim.Context) {
		c.Set(out, in.Get())
	}, clk.Posedge())
}

// Register returns a register with a load enable, clocked on the rising edge
// of clk.
//
//	Inputs: clk, in, load
//	Outputs: out
//	Function: if load(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
func Register(clk, in, load, out *hdlsim.Signal) *hdlsim.Process {
	return hdlsim.Always("Register", func(c *hdlsim.Context) {
		if load.Bool() {
			c.Set(out, in.Get())
		}
	}, clk.Posedge())
}

// Counter returns a counter incremented on every rising edge of clk, and reset
// to 0 on the rising edge of clk when rst is high. rst may be nil. The counter
// wraps around at the width of out.
//
func Counter(clk, rst, out *hdlsim.Signal) *hdlsim.Process {
	return hdlsim.Always("Counter", func(c *hdlsim.Context) {
		if rst != nil && rst.Bool() {
			c.Set(out, 0)
			return
		}
		c.Set(out, out.Get()+1)
	}, clk.Posedge())
}
