package hdlsim_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/hdlsim"
)

func TestEventQueue(t *testing.T) {
	var q hw.EventQueue
	if _, err := q.PopEarliest(); err != hw.ErrEmptyQueue {
		t.Fatalf("expected ErrEmptyQueue, got %v", err)
	}
	if _, ok := q.Peek(); ok {
		t.Fatal("Peek on empty queue returned an event")
	}

	// random times and deltas; Delta is also used as a tag to check FIFO order
	// for equal (time, delta) pairs.
	type key struct {
		t hw.Time
		d uint64
	}
	rnd := rand.New(rand.NewSource(42))
	var evs []hw.Event
	for i := 0; i < 1000; i++ {
		k := key{hw.Time(rnd.Intn(10)), uint64(rnd.Intn(3))}
		p := hw.NewProcess("", nil, nil)
		evs = append(evs, hw.Event{Time: k.t, Delta: k.d, Process: p})
	}
	order := make(map[*hw.Process]int)
	for i, e := range evs {
		order[e.Process] = i
		q.Schedule(e)
	}
	if q.Len() != len(evs) {
		t.Fatalf("expected %d events, got %d", len(evs), q.Len())
	}

	prev, err := q.PopEarliest()
	if err != nil {
		t.Fatal(err)
	}
	for q.Len() > 0 {
		peek, _ := q.Peek()
		e, err := q.PopEarliest()
		if err != nil {
			t.Fatal(err)
		}
		if peek.Process != e.Process {
			t.Fatal("Peek and PopEarliest disagree")
		}
		switch {
		case e.Time < prev.Time:
			t.Fatalf("time going backwards: %d -> %d", prev.Time, e.Time)
		case e.Time == prev.Time && e.Delta < prev.Delta:
			t.Fatalf("delta going backwards at %d: %d -> %d", e.Time, prev.Delta, e.Delta)
		case e.Time == prev.Time && e.Delta == prev.Delta && order[e.Process] < order[prev.Process]:
			t.Fatalf("insertion order not preserved at %d/%d", e.Time, e.Delta)
		}
		prev = e
	}
	if _, err := q.PopEarliest(); err != hw.ErrEmptyQueue {
		t.Fatalf("expected ErrEmptyQueue, got %v", err)
	}
}

func TestAction_String(t *testing.T) {
	if hw.Resume.String() != "resume" || hw.Commit.String() != "commit" {
		t.Fatalf("bad action names: %v, %v", hw.Resume, hw.Commit)
	}
}
