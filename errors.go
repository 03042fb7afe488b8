// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "github.com/pkg/errors"

// Errors returned by the simulation kernel. They are always returned wrapped
// with some context. Use errors.Cause to test for a specific error:
//
//	if errors.Cause(err) == hdlsim.ErrConfiguration {
//		// a process did not re-arm
//	}
//
var (
	// ErrEmptyQueue is returned when popping an event from an empty EventQueue.
	ErrEmptyQueue = errors.New("empty event queue")
	// ErrConfiguration is returned when a process reaction ends without
	// declaring its next sensitivity.
	ErrConfiguration = errors.New("process ended without a next sensitivity")
	// ErrInvalidTrigger is returned for malformed sensitivities: negative
	// delays, nil signals, more than one delay or signals bound to another
	// scheduler.
	ErrInvalidTrigger = errors.New("invalid trigger")
	// ErrDeltaOverflow is returned when the number of delta cycles at a single
	// point in time exceeds the limit set with WithMaxDeltas.
	ErrDeltaOverflow = errors.New("delta cycle limit exceeded")
)
