// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable processes for hdlsim.
//
// Combinational parts (gates, muxers, adders) are sensitive to any change of
// their inputs and compute their outputs once at time 0, in the first delta
// cycle. All gates work bitwise on buses; outputs are truncated to the output
// signal width.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	"github.com/db47h/hdlsim"
)

// combinational returns a process that runs fn on startup and then every time
// one of the inputs changes.
func combinational(name string, fn func(c *hdlsim.Context), inputs ...*hdlsim.Signal) *hdlsim.Process {
	sens := make(hdlsim.Sensitivity, len(inputs))
	for i, in := range inputs {
		sens[i] = hdlsim.Change(in)
	}
	return hdlsim.NewProcess(name, hdlsim.Sensitivity{hdlsim.Delay(0)}, func(c *hdlsim.Context) hdlsim.Sensitivity {
		fn(c)
		return sens
	})
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = ^in
//
func Not(in, out *hdlsim.Signal) *hdlsim.Process {
	return combinational("NOT", func(c *hdlsim.Context) { c.Set(out, ^in.Get()) }, in)
}

// Gate returns a 2 inputs logic gate computing f.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = f(a, b)
//
func Gate(name string, f func(a, b uint64) uint64, a, b, out *hdlsim.Signal) *hdlsim.Process {
	return combinational(name, func(c *hdlsim.Context) { c.Set(out, f(a.Get(), b.Get())) }, a, b)
}

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a & b
//
func And(a, b, out *hdlsim.Signal) *hdlsim.Process {
	return Gate("AND", func(a, b uint64) uint64 { return a & b }, a, b, out)
}

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a & b)
//
func Nand(a, b, out *hdlsim.Signal) *hdlsim.Process {
	return Gate("NAND", func(a, b uint64) uint64 { return ^(a & b) }, a, b, out)
}

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a | b
//
func Or(a, b, out *hdlsim.Signal) *hdlsim.Process {
	return Gate("OR", func(a, b uint64) uint64 { return a | b }, a, b, out)
}

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a | b)
//
func Nor(a, b, out *hdlsim.Signal) *hdlsim.Process {
	return Gate("NOR", func(a, b uint64) uint64 { return ^(a | b) }, a, b, out)
}

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a ^ b
//
func Xor(a, b, out *hdlsim.Signal) *hdlsim.Process {
	return Gate("XOR", func(a, b uint64) uint64 { return a ^ b }, a, b, out)
}

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a ^ b)
//
func Xnor(a, b, out *hdlsim.Signal) *hdlsim.Process {
	return Gate("XNOR", func(a, b uint64) uint64 { return ^(a ^ b) }, a, b, out)
}

// OrReduce returns a N-Way OR gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrReduce(in, out *hdlsim.Signal) *hdlsim.Process {
	return combinational("OR_REDUCE", func(c *hdlsim.Context) { c.SetBool(out, in.Get() != 0) }, in)
}

// AndReduce returns a N-Way AND gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndReduce(in, out *hdlsim.Signal) *hdlsim.Process {
	return combinational("AND_REDUCE", func(c *hdlsim.Context) {
		all := ^uint64(0) >> (64 - in.Width())
		c.SetBool(out, in.Get() == all)
	}, in)
}
