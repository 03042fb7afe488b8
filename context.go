// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"github.com/db47h/hdlsim/log"
)

// A Context is handed to a process Body for the duration of one reaction. It
// gives access to the simulated clock and is the only way to write signals.
//
// A Context must not be retained after the Body returns.
//
type Context struct {
	s    *Scheduler
	p    *Process
	done bool
	err  error
}

func (c *Context) check() {
	if c.done {
		panic("hdlsim: Context used outside of its reaction")
	}
}

// Now returns the current simulated time.
//
func (c *Context) Now() Time { return c.s.now }

// Delta returns the current delta cycle.
//
func (c *Context) Delta() uint64 { return c.s.delta }

// Process returns the running process.
//
func (c *Context) Process() *Process { return c.p }

// Logger returns the scheduler's logger.
//
func (c *Context) Logger() log.Logger { return c.s.logger }

// Get returns the committed value of sig. Same as sig.Get().
//
func (c *Context) Get(sig *Signal) uint64 { return sig.cur }

// Set schedules v to become the value of sig in the next delta cycle. If sig is
// written several times before the commit, the last value wins.
//
func (c *Context) Set(sig *Signal, v uint64) {
	c.check()
	if c.err != nil {
		return
	}
	if err := c.s.write(sig, v); err != nil {
		c.err = err
	}
}

// SetBool is like Set for single bit values.
//
func (c *Context) SetBool(sig *Signal, b bool) {
	var v uint64
	if b {
		v = 1
	}
	c.Set(sig, v)
}

// Toggle sets the next value of sig to the complement of its committed value.
//
func (c *Context) Toggle(sig *Signal) {
	c.Set(sig, ^sig.cur)
}
