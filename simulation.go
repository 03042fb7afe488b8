// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "github.com/pkg/errors"

// Simulation is a runnable set of processes sharing a Scheduler.
//
type Simulation struct {
	s *Scheduler
}

// NewSimulation returns a new simulation with a fresh Scheduler configured
// with opts, and registers the given processes. An empty process list is
// valid: such a simulation just advances time.
//
func NewSimulation(procs Processes, opts ...Option) (*Simulation, error) {
	s := NewScheduler(opts...)
	for _, p := range procs {
		if err := s.Register(p); err != nil {
			return nil, errors.Wrap(err, "failed to register process")
		}
	}
	return &Simulation{s: s}, nil
}

// Run runs the simulation for d time units. See Scheduler.Run.
//
func (sim *Simulation) Run(d Time) error {
	return sim.s.Run(d)
}

// Now returns the current simulated time.
//
func (sim *Simulation) Now() Time { return sim.s.Now() }

// Scheduler returns the simulation's scheduler.
//
func (sim *Simulation) Scheduler() *Scheduler { return sim.s }
