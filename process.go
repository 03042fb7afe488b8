// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"strconv"
)

// ProcessState is the scheduling state of a process.
//
type ProcessState int

// Process states.
//
const (
	Waiting ProcessState = iota
	Runnable
	Finished
)

func (s ProcessState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Runnable:
		return "runnable"
	case Finished:
		return "finished"
	}
	return "ProcessState(" + strconv.Itoa(int(s)) + ")"
}

// A Body implements one reaction of a process. It runs to completion and
// returns the sensitivity on which the process must be resumed next.
//
// Any state that must survive between reactions lives in the closure. For
// example, a process alternating between two delays:
//
//	var slow bool
//	body := func(c *hdlsim.Context) hdlsim.Sensitivity {
//		c.Toggle(out)
//		slow = !slow
//		if slow {
//			return hdlsim.Sensitivity{hdlsim.Delay(30)}
//		}
//		return hdlsim.Sensitivity{hdlsim.Delay(10)}
//	}
//
// Returning an empty sensitivity is a configuration error: processes are
// reactive loops that never end.
//
type Body func(c *Context) Sensitivity

// A Process is a unit of sequential logic that sleeps until one of the
// triggers in its sensitivity fires, then runs its Body.
//
type Process struct {
	id    int
	name  string
	body  Body
	sens  Sensitivity
	state ProcessState
	// gen is bumped every time the process wakes up. Triggers armed with an
	// older generation are stale.
	gen   uint64
	wakes uint64
	s     *Scheduler
}

// Processes is a list of processes.
//
type Processes []*Process

// NewProcess returns a new process that will first wake up on sens and then
// on whatever sensitivity body returns.
//
func NewProcess(name string, sens Sensitivity, body Body) *Process {
	return &Process{
		id:   -1,
		name: name,
		body: body,
		sens: sens,
	}
}

// Always returns a process that runs fn every time one of the given triggers
// fires.
//
func Always(name string, fn func(c *Context), triggers ...Trigger) *Process {
	sens := Sensitivity(triggers)
	return NewProcess(name, sens, func(c *Context) Sensitivity {
		fn(c)
		return sens
	})
}

// ID returns the registration index of the process in its scheduler, or -1
// if the process is not registered.
//
func (p *Process) ID() int { return p.id }

// Name returns the process name.
//
func (p *Process) Name() string { return p.name }

// State returns the process state.
//
func (p *Process) State() ProcessState { return p.state }

// Sensitivity returns the sensitivity the process is currently waiting on.
//
func (p *Process) Sensitivity() Sensitivity { return p.sens }

// Wakes returns how many reactions the process has run.
//
func (p *Process) Wakes() uint64 { return p.wakes }

func (p *Process) String() string {
	if p.name != "" {
		return p.name
	}
	return "process#" + strconv.Itoa(p.id)
}
