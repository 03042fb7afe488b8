// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// TriggerKind identifies the condition a Trigger waits for.
//
type TriggerKind int

// Trigger kinds.
//
const (
	OnDelay TriggerKind = iota
	OnChange
	OnPosedge
	OnNegedge
)

var kindNames = [...]string{
	OnDelay:   "delay",
	OnChange:  "change",
	OnPosedge: "posedge",
	OnNegedge: "negedge",
}

func (k TriggerKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "TriggerKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// A Trigger is a condition that wakes a waiting process: the expiry of a delay
// or a transition of a signal.
//
type Trigger struct {
	Kind   TriggerKind
	Signal *Signal
	Delay  Time
}

// Delay returns a trigger that fires d time units after the process suspends.
// A zero delay fires in the next delta cycle.
//
func Delay(d Time) Trigger { return Trigger{Kind: OnDelay, Delay: d} }

// Change returns a trigger that fires whenever the value of s changes.
//
func Change(s *Signal) Trigger { return Trigger{Kind: OnChange, Signal: s} }

// Posedge returns a trigger that fires when s goes from low to high.
//
func Posedge(s *Signal) Trigger { return Trigger{Kind: OnPosedge, Signal: s} }

// Negedge returns a trigger that fires when s goes from high to low.
//
func Negedge(s *Signal) Trigger { return Trigger{Kind: OnNegedge, Signal: s} }

func (t Trigger) String() string {
	if t.Kind == OnDelay {
		return "delay(" + strconv.FormatInt(int64(t.Delay), 10) + ")"
	}
	name := "<nil>"
	if t.Signal != nil {
		name = t.Signal.name
	}
	return t.Kind.String() + "(" + name + ")"
}

// A Sensitivity is a set of triggers. A process waiting on a sensitivity wakes
// up on whichever trigger fires first.
//
type Sensitivity []Trigger

// Validate checks that the sensitivity is well formed: no negative delay, at
// most one delay, and no nil signal.
//
func (sens Sensitivity) Validate() error {
	delays := 0
	for _, t := range sens {
		switch t.Kind {
		case OnDelay:
			if t.Delay < 0 {
				return errors.Wrapf(ErrInvalidTrigger, "negative delay %d", t.Delay)
			}
			delays++
			if delays > 1 {
				return errors.Wrap(ErrInvalidTrigger, "more than one delay")
			}
		case OnChange, OnPosedge, OnNegedge:
			if t.Signal == nil {
				return errors.Wrapf(ErrInvalidTrigger, "%s on nil signal", t.Kind)
			}
		default:
			return errors.Wrapf(ErrInvalidTrigger, "unknown trigger kind %d", int(t.Kind))
		}
	}
	return nil
}

func (sens Sensitivity) String() string {
	var b []byte
	for i, t := range sens {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, t.String()...)
	}
	return string(b)
}
