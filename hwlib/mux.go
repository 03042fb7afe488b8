// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hdlsim"

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel, out *hdlsim.Signal) *hdlsim.Process {
	return combinational("MUX", func(c *hdlsim.Context) {
		if sel.Bool() {
			c.Set(out, b.Get())
		} else {
			c.Set(out, a.Get())
		}
	}, a, b, sel)
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel, a, b *hdlsim.Signal) *hdlsim.Process {
	return combinational("DMUX", func(c *hdlsim.Context) {
		if sel.Bool() {
			c.Set(a, 0)
			c.Set(b, in.Get())
		} else {
			c.Set(a, in.Get())
			c.Set(b, 0)
		}
	}, in, sel)
}

// MuxN returns a N-way multiplexer. The value of sel selects the input;
// out-of-range selections drive 0.
//
//	Inputs: ins[n], sel
//	Outputs: out
//	Function: out = ins[sel]
//
func MuxN(ins []*hdlsim.Signal, sel, out *hdlsim.Signal) *hdlsim.Process {
	inputs := append([]*hdlsim.Signal{sel}, ins...)
	return combinational("MUXN", func(c *hdlsim.Context) {
		if n := sel.Get(); n < uint64(len(ins)) {
			c.Set(out, ins[n].Get())
		} else {
			c.Set(out, 0)
		}
	}, inputs...)
}
