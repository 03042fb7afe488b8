// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"math/bits"

	"github.com/db47h/hdlsim"
)

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b, s, cout *hdlsim.Signal) *hdlsim.Process {
	return combinational("HalfAdder", func(c *hdlsim.Context) {
		va, vb := a.Bool(), b.Bool()
		c.SetBool(s, va != vb)
		c.SetBool(cout, va && vb)
	}, a, b)
}

// FullAdder returns a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(a, b, cin, s, cout *hdlsim.Signal) *hdlsim.Process {
	return combinational("FullAdder", func(c *hdlsim.Context) {
		va, vb, vc := a.Bool(), b.Bool(), cin.Bool()
		s0 := va != vb
		c.SetBool(s, s0 != vc)
		c.SetBool(cout, s0 && vc || va && vb)
	}, a, b, cin)
}

// Adder returns a N-bits adder where N is the width of out.
//
//	Inputs: a, b
//	Outputs: out, c
//	Function: out = a + b; c = carry out
//
func Adder(a, b, out, cout *hdlsim.Signal) *hdlsim.Process {
	w := out.Width()
	return combinational("Adder", func(c *hdlsim.Context) {
		sum, carry := bits.Add64(a.Get(), b.Get(), 0)
		if w < 64 {
			carry = sum >> w & 1
		}
		c.Set(out, sum)
		c.Set(cout, carry)
	}, a, b)
}
