// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import (
	"math"

	"github.com/db47h/hdlsim/log"
	"github.com/pkg/errors"
)

// An Observer is notified of every resumed process and every effective signal
// commit. Methods are called synchronously from the run loop.
//
type Observer interface {
	Resumed(t Time, delta uint64, p *Process)
	Committed(t Time, delta uint64, s *Signal, old, new uint64)
}

// Scheduler drives a set of processes through simulated time.
//
// Events are executed in (time, delta, insertion) order. Signal writes made
// during a delta cycle are committed in the next one, so that all processes
// woken at the same instant observe the same signal values.
//
// A Scheduler is not safe for concurrent use.
//
type Scheduler struct {
	now   Time
	delta uint64
	q     EventQueue

	procs   Processes
	signals []*Signal

	logger    log.Logger
	observers []Observer
	maxDeltas uint64

	err error
}

// NewScheduler returns a new scheduler with its clock set to 0.
//
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{logger: log.NewNull()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now returns the current simulated time.
//
func (s *Scheduler) Now() Time { return s.now }

// Delta returns the current delta cycle index.
//
func (s *Scheduler) Delta() uint64 { return s.delta }

// Pending returns the number of queued events.
//
func (s *Scheduler) Pending() int { return s.q.Len() }

// Processes returns the registered processes in registration order.
//
func (s *Scheduler) Processes() Processes { return s.procs }

// Signals returns the signals bound to the scheduler, in the order they were
// first referenced.
//
func (s *Scheduler) Signals() []*Signal { return s.signals }

// Err returns the error that stopped the scheduler, if any.
//
func (s *Scheduler) Err() error { return s.err }

// Register adds p to the scheduler and arms its initial sensitivity.
//
func (s *Scheduler) Register(p *Process) error {
	if p == nil {
		return errors.New("nil process")
	}
	if p.s != nil {
		return errors.Errorf("process %s already registered", p)
	}
	if p.body == nil {
		return errors.Errorf("process %s has no body", p)
	}
	if len(p.sens) == 0 {
		p.state = Finished
		return errors.Wrapf(ErrConfiguration, "process %s: empty initial sensitivity", p)
	}
	if err := s.arm(p, p.sens); err != nil {
		return err
	}
	p.id = len(s.procs)
	p.s = s
	s.procs = append(s.procs, p)
	s.logger.Debugf("registered process %s on %v", p, p.sens)
	return nil
}

// owns checks that sig is either unbound or owned by s.
func (s *Scheduler) owns(sig *Signal) error {
	if sig.s != nil && sig.s != s {
		return errors.Wrapf(ErrInvalidTrigger, "signal %s belongs to another scheduler", sig.name)
	}
	return nil
}

// bind makes sig owned by s.
func (s *Scheduler) bind(sig *Signal) error {
	if err := s.owns(sig); err != nil {
		return err
	}
	if sig.s == nil {
		sig.s = s
		s.signals = append(s.signals, sig)
	}
	return nil
}

// arm puts p to sleep on sens.
func (s *Scheduler) arm(p *Process, sens Sensitivity) error {
	if len(sens) == 0 {
		p.state = Finished
		return errors.Wrapf(ErrConfiguration, "process %s at time %d", p, s.now)
	}
	if err := sens.Validate(); err != nil {
		return errors.Wrapf(err, "process %s", p)
	}
	for _, t := range sens {
		if t.Kind == OnDelay {
			if t.Delay > math.MaxInt64-s.now {
				return errors.Wrapf(ErrInvalidTrigger, "process %s: delay %d overflows time %d", p, t.Delay, s.now)
			}
			continue
		}
		if err := s.owns(t.Signal); err != nil {
			return errors.Wrapf(err, "process %s", p)
		}
	}
	for _, t := range sens {
		if t.Signal != nil {
			s.bind(t.Signal)
		}
	}

	p.sens = sens
	p.state = Waiting
	for _, t := range sens {
		switch t.Kind {
		case OnDelay:
			if t.Delay == 0 {
				s.schedule(Event{Time: s.now, Delta: s.delta + 1, Action: Resume, Process: p, gen: p.gen})
			} else {
				s.schedule(Event{Time: s.now + t.Delay, Action: Resume, Process: p, gen: p.gen})
			}
		default:
			t.Signal.addWaiter(p, t.Kind)
		}
	}
	return nil
}

func (s *Scheduler) schedule(e Event) {
	s.q.Schedule(e)
}

// wake marks p runnable. All triggers armed for the previous generation become
// stale.
func (s *Scheduler) wake(p *Process) {
	p.gen++
	p.state = Runnable
}

// write is called by Context.Set.
func (s *Scheduler) write(sig *Signal, v uint64) error {
	if err := s.bind(sig); err != nil {
		return err
	}
	if sig.set(v, s.now, s.delta+1) {
		s.schedule(Event{Time: s.now, Delta: s.delta + 1, Action: Commit, Signal: sig, Value: sig.next})
	}
	return nil
}

// Run runs the simulation for d time units: every event up to and including
// time Now()+d is executed. Events beyond that point stay queued for the next
// call to Run. On return, the clock is set to Now()+d unless an error occurred.
//
// Any error is fatal: once Run has returned an error, all subsequent calls
// return the same error.
//
func (s *Scheduler) Run(d Time) error {
	if s.err != nil {
		return s.err
	}
	if d < 0 {
		return errors.Wrapf(ErrInvalidTrigger, "negative run duration %d", d)
	}
	if d > math.MaxInt64-s.now {
		return errors.Wrapf(ErrInvalidTrigger, "run duration %d overflows time %d", d, s.now)
	}
	stop := s.now + d
	for {
		e, ok := s.q.Peek()
		if !ok || e.Time > stop {
			break
		}
		if err := s.step(); err != nil {
			s.err = err
			s.logger.Errorf("simulation stopped at time %d delta %d: %v", s.now, s.delta, err)
			return err
		}
	}
	s.now, s.delta = stop, 0
	return nil
}

// step pops and executes the earliest event.
func (s *Scheduler) step() error {
	e, err := s.q.PopEarliest()
	if err != nil {
		return err
	}
	if err = s.setTime(e.Time, e.Delta); err != nil {
		return err
	}
	switch e.Action {
	case Resume:
		return s.resume(e.Process, e.gen)
	case Commit:
		s.commit(e.Signal, e.Value)
		return nil
	}
	return errors.Errorf("unknown event action %d", int(e.Action))
}

func (s *Scheduler) setTime(t Time, delta uint64) error {
	if t < s.now || t == s.now && delta < s.delta {
		panic(errors.Errorf("time can't go backwards: %d/%d -> %d/%d", s.now, s.delta, t, delta))
	}
	s.now, s.delta = t, delta
	if s.maxDeltas > 0 && delta > s.maxDeltas {
		return errors.Wrapf(ErrDeltaOverflow, "time %d, delta %d", t, delta)
	}
	return nil
}

func (s *Scheduler) resume(p *Process, gen uint64) error {
	if gen != p.gen {
		return nil
	}
	switch p.state {
	case Waiting:
		// timer expiry
		s.wake(p)
	case Runnable:
	default:
		return nil
	}

	s.logger.Debugf("%d/%d resume %s", s.now, s.delta, p)
	for _, o := range s.observers {
		o.Resumed(s.now, s.delta, p)
	}

	c := Context{s: s, p: p}
	p.wakes++
	next := p.body(&c)
	c.done = true
	if c.err != nil {
		p.state = Finished
		return errors.Wrapf(c.err, "process %s at time %d", p, s.now)
	}
	return s.arm(p, next)
}

// commit makes v the current value of sig. The latest queued commit of a signal
// takes the value of the last write made before it.
func (s *Scheduler) commit(sig *Signal, v uint64) {
	if sig.dirty && sig.at == s.now && sig.atDelta == s.delta {
		v = sig.next
		sig.dirty = false
	}
	old := sig.cur
	if old == v {
		return
	}
	sig.cur = v
	s.logger.Debugf("%d/%d commit %s: %d -> %d", s.now, s.delta, sig.name, old, v)
	for _, o := range s.observers {
		o.Committed(s.now, s.delta, sig, old, v)
	}

	edge := EdgeKind(old, v)
	ws := sig.waiters[:0]
	for _, w := range sig.waiters {
		if !w.live() {
			continue
		}
		if w.match(edge) {
			s.wake(w.p)
			s.schedule(Event{Time: s.now, Delta: s.delta, Action: Resume, Process: w.p, gen: w.p.gen})
			continue
		}
		ws = append(ws, w)
	}
	for i := len(ws); i < len(sig.waiters); i++ {
		sig.waiters[i] = waiter{}
	}
	sig.waiters = ws
}
