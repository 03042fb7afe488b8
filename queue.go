// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdlsim

import "container/heap"

// Action is the kind of work an Event carries.
//
type Action int

// Event actions.
//
const (
	// Resume runs the next reaction of a process.
	Resume Action = iota
	// Commit makes the pending value of a signal visible.
	Commit
)

func (a Action) String() string {
	if a == Commit {
		return "commit"
	}
	return "resume"
}

// An Event is a unit of work for the scheduler at a given point in simulated
// time.
//
type Event struct {
	Time    Time
	Delta   uint64
	Action  Action
	Process *Process // Resume only
	Signal  *Signal  // Commit only
	Value   uint64   // Commit only

	seq uint64
	gen uint64
}

func (e *Event) before(o *Event) bool {
	if e.Time != o.Time {
		return e.Time < o.Time
	}
	if e.Delta != o.Delta {
		return e.Delta < o.Delta
	}
	return e.seq < o.seq
}

// EventQueue is a priority queue of events ordered by time, then delta cycle,
// then insertion order.
//
// The zero value is an empty queue ready to use.
//
type EventQueue struct {
	h   eventHeap
	seq uint64
}

// Schedule adds e to the queue.
//
func (q *EventQueue) Schedule(e Event) {
	e.seq = q.seq
	q.seq++
	heap.Push(&q.h, e)
}

// PopEarliest removes and returns the earliest event in the queue. It returns
// ErrEmptyQueue if the queue is empty.
//
func (q *EventQueue) PopEarliest() (Event, error) {
	if len(q.h) == 0 {
		return Event{}, ErrEmptyQueue
	}
	return heap.Pop(&q.h).(Event), nil
}

// Peek returns the earliest event without removing it. The second return value
// is false if the queue is empty.
//
func (q *EventQueue) Peek() (Event, bool) {
	if len(q.h) == 0 {
		return Event{}, false
	}
	return q.h[0], true
}

// Len returns the number of queued events.
//
func (q *EventQueue) Len() int { return len(q.h) }

type eventHeap []Event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].before(&h[j]) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(Event)) }

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = Event{}
	*h = old[:n-1]
	return e
}
