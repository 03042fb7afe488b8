// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "github.com/db47h/hdlsim/log"

// An Option configures a Scheduler.
//
type Option func(s *Scheduler)

// WithLogger sets the logger used by the scheduler. Every executed event is
// logged at debug level.
//
func WithLogger(l log.Logger) Option {
	return func(s *Scheduler) {
		if l == nil {
			l = log.NewNull()
		}
		s.logger = l
	}
}

// WithObserver adds an observer to the scheduler.
//
func WithObserver(o Observer) Option {
	return func(s *Scheduler) {
		s.observers = append(s.observers, o)
	}
}

// WithMaxDeltas limits the number of delta cycles at any single point in
// time. Exceeding the limit stops the simulation with ErrDeltaOverflow. This
// catches combinational loops that never settle. Zero means no limit.
//
func WithMaxDeltas(n uint64) Option {
	return func(s *Scheduler) {
		s.maxDeltas = n
	}
}
