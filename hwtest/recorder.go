// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"encoding/binary"
	"hash"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/db47h/hdlsim"
)

// A Change is a committed signal change.
//
type Change struct {
	Time     hdlsim.Time
	Delta    uint64
	Signal   string
	Old, New uint64
}

// A Wake is a resumed process.
//
type Wake struct {
	Time    hdlsim.Time
	Delta   uint64
	Process string
}

// Recorder is an hdlsim.Observer that records every signal change and process
// wake-up, and maintains a running digest of the whole trace.
//
type Recorder struct {
	Changes []Change
	Wakes   []Wake

	h   hash.Hash64
	buf []byte
}

// NewRecorder returns a new, empty Recorder.
//
func NewRecorder() *Recorder {
	return &Recorder{h: xxhash.New()}
}

func (r *Recorder) write(t hdlsim.Time, delta uint64, name string, vs ...uint64) {
	b := r.buf[:0]
	b = binary.LittleEndian.AppendUint64(b, uint64(t))
	b = binary.LittleEndian.AppendUint64(b, delta)
	b = append(b, name...)
	b = append(b, 0)
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint64(b, v)
	}
	r.buf = b
	r.h.Write(b)
}

// Resumed implements hdlsim.Observer.
//
func (r *Recorder) Resumed(t hdlsim.Time, delta uint64, p *hdlsim.Process) {
	r.Wakes = append(r.Wakes, Wake{t, delta, p.String()})
	r.write(t, delta, p.String())
}

// Committed implements hdlsim.Observer.
//
func (r *Recorder) Committed(t hdlsim.Time, delta uint64, s *hdlsim.Signal, old, new uint64) {
	r.Changes = append(r.Changes, Change{t, delta, s.Name(), old, new})
	r.write(t, delta, s.Name(), old, new)
}

// Digest returns the digest of the trace recorded so far. Two runs of the same
// processes yield the same digest.
//
func (r *Recorder) Digest() uint64 {
	return r.h.Sum64()
}

// Values returns the successive values taken by the named signal.
//
func (r *Recorder) Values(signal string) []uint64 {
	var vs []uint64
	for _, c := range r.Changes {
		if c.Signal == signal {
			vs = append(vs, c.New)
		}
	}
	return vs
}

// WakeTimes returns the times at which the named process was resumed.
//
func (r *Recorder) WakeTimes(process string) []hdlsim.Time {
	var ts []hdlsim.Time
	for _, w := range r.Wakes {
		if w.Process == process {
			ts = append(ts, w.Time)
		}
	}
	return ts
}

// CheckReplay builds and runs the processes returned by build twice for d time
// units and fails t if both runs do not produce the exact same trace. It
// returns the recorder of the first run.
//
// build must return fresh signals and processes on every call.
//
func CheckReplay(t testing.TB, d hdlsim.Time, build func() hdlsim.Processes) *Recorder {
	t.Helper()
	var rs [2]*Recorder
	for i := range rs {
		rs[i] = NewRecorder()
		sim, err := hdlsim.NewSimulation(build(), hdlsim.WithObserver(rs[i]))
		if err != nil {
			t.Fatal(err)
		}
		if err = sim.Run(d); err != nil {
			t.Fatal(err)
		}
	}
	if d0, d1 := rs[0].Digest(), rs[1].Digest(); d0 != d1 {
		t.Fatalf("trace digests differ: %016x != %016x", d0, d1)
	}
	return rs[0]
}
