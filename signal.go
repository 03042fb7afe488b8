// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Time is a simulated time, in abstract time units.
//
type Time int64

// Edge is the kind of transition between two consecutive values of a signal.
//
type Edge int

// Edge kinds.
//
const (
	NoEdge Edge = iota
	Rising
	Falling
)

func (e Edge) String() string {
	switch e {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return "none"
}

// EdgeKind returns the kind of edge between two values. Zero is low, any other
// value is high.
//
func EdgeKind(old, new uint64) Edge {
	switch {
	case old == 0 && new != 0:
		return Rising
	case old != 0 && new == 0:
		return Falling
	}
	return NoEdge
}

// A Signal is a time-varying value cell shared between processes.
//
// Processes read the committed value with Get or Bool. Writes go through the
// Context of a running process and only become visible after the next commit,
// one delta cycle later.
//
type Signal struct {
	name  string
	width uint
	mask  uint64

	cur  uint64
	next uint64
	// dirty is set while a commit is queued. next is the value of the latest
	// queued commit, due at (at, atDelta).
	dirty   bool
	at      Time
	atDelta uint64

	waiters []waiter
	s       *Scheduler
}

type waiter struct {
	p    *Process
	kind TriggerKind
	gen  uint64
}

// NewSignal returns a new single bit signal with the given initial value.
//
func NewSignal(name string, init bool) *Signal {
	var v uint64
	if init {
		v = 1
	}
	return NewBus(name, 1, v)
}

// NewBus returns a new signal of the given bit width. The initial value is
// truncated to width bits.
//
// NewBus panics if width is not in the range [1, 64].
//
func NewBus(name string, width uint, init uint64) *Signal {
	if width == 0 || width > 64 {
		panic(errors.Errorf("signal %s: invalid bus width %d", name, width))
	}
	mask := ^uint64(0)
	if width < 64 {
		mask = 1<<width - 1
	}
	return &Signal{
		name:  name,
		width: width,
		mask:  mask,
		cur:   init & mask,
	}
}

// Name returns the signal name.
//
func (s *Signal) Name() string { return s.name }

// Width returns the signal width in bits.
//
func (s *Signal) Width() uint { return s.width }

// Get returns the committed value of the signal.
//
func (s *Signal) Get() uint64 { return s.cur }

// Bool returns true if the committed value is non-zero.
//
func (s *Signal) Bool() bool { return s.cur != 0 }

// Bit returns the state of bit n of the committed value.
//
func (s *Signal) Bit(n uint) bool { return s.cur&(1<<n) != 0 }

// Pending returns the value waiting to be committed, if any.
//
func (s *Signal) Pending() (uint64, bool) {
	return s.next, s.dirty
}

// Change returns a trigger that fires on any change of s.
//
func (s *Signal) Change() Trigger { return Change(s) }

// Posedge returns a trigger that fires on rising edges of s.
//
func (s *Signal) Posedge() Trigger { return Posedge(s) }

// Negedge returns a trigger that fires on falling edges of s.
//
func (s *Signal) Negedge() Trigger { return Negedge(s) }

func (s *Signal) String() string {
	if s.width == 1 {
		return s.name + "=" + strconv.FormatUint(s.cur, 2)
	}
	return s.name + "=" + strconv.FormatUint(s.cur, 10)
}

// set records v as the value to commit at (t, delta). It reports whether a new
// commit must be scheduled. Writes coalesce only into a commit due at the same
// point in time; a commit queued for an earlier delta keeps its own value.
func (s *Signal) set(v uint64, t Time, delta uint64) bool {
	v &= s.mask
	if s.dirty && s.at == t && s.atDelta == delta {
		s.next = v
		return false
	}
	if !s.dirty && v == s.cur {
		return false
	}
	s.next, s.dirty = v, true
	s.at, s.atDelta = t, delta
	return true
}

// addWaiter registers p as waiting on s for the given trigger kind. Entries
// left over from previous wake generations are pruned.
func (s *Signal) addWaiter(p *Process, kind TriggerKind) {
	ws := s.waiters[:0]
	for _, w := range s.waiters {
		if w.live() {
			ws = append(ws, w)
		}
	}
	for i := len(ws); i < len(s.waiters); i++ {
		s.waiters[i] = waiter{}
	}
	s.waiters = append(ws, waiter{p: p, kind: kind, gen: p.gen})
}

func (w *waiter) live() bool {
	return w.p.state == Waiting && w.gen == w.p.gen
}

func (w *waiter) match(e Edge) bool {
	switch w.kind {
	case OnChange:
		return true
	case OnPosedge:
		return e == Rising
	case OnNegedge:
		return e == Falling
	}
	return false
}
