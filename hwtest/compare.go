// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/db47h/hdlsim"
)

// A Builder instantiates a part wired to the given input and output signals.
//
type Builder func(in, out []*hdlsim.Signal) hdlsim.Processes

const (
	comparePeriod    = 10
	compareMaxDeltas = 1000
)

func signals(prefix string, widths []uint) []*hdlsim.Signal {
	s := make([]*hdlsim.Signal, len(widths))
	for i, w := range widths {
		s[i] = hdlsim.NewBus(prefix+strconv.Itoa(i), w, 0)
	}
	return s
}

func mask(w uint) uint64 {
	return ^uint64(0) >> (64 - w)
}

// ComparePart takes two combinational parts and compares their outputs given
// the same inputs. ins and outs are the widths of the input and output
// signals of both parts.
//
// Inputs are driven to all zeros, all ones, then random values. A new input
// vector is applied every 10 time units and outputs are compared 5 time units
// later, once all delta cycles have settled.
//
func ComparePart(t *testing.T, ins, outs []uint, part1, part2 Builder) {
	t.Helper()

	in := signals("in", ins)
	out1, out2 := signals("a", outs), signals("b", outs)

	var vectors [][]uint64
	zeros, ones := make([]uint64, len(in)), make([]uint64, len(in))
	totBits := uint(0)
	for i, w := range ins {
		ones[i] = mask(w)
		totBits += w
	}
	vectors = append(vectors, zeros, ones)

	iter := totBits
	if iter > 12 {
		iter = 12
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 1<<iter; i++ {
		v := make([]uint64, len(in))
		for j, w := range ins {
			v[j] = rnd.Uint64() & mask(w)
		}
		vectors = append(vectors, v)
	}

	var (
		failure string
		n       int
	)
	stim := hdlsim.Always("stimulus", func(c *hdlsim.Context) {
		if n >= len(vectors) {
			return
		}
		for i, s := range in {
			c.Set(s, vectors[n][i])
		}
		n++
	}, hdlsim.Delay(comparePeriod))
	check := hdlsim.NewProcess("check", hdlsim.Sensitivity{hdlsim.Delay(comparePeriod + comparePeriod/2)}, func(c *hdlsim.Context) hdlsim.Sensitivity {
		if failure == "" {
			for o := range out1 {
				if v1, v2 := out1[o].Get(), out2[o].Get(); v1 != v2 {
					failure = errString(in, o, v1, v2)
					break
				}
			}
		}
		return hdlsim.Sensitivity{hdlsim.Delay(comparePeriod)}
	})

	procs := hdlsim.Processes{stim, check}
	procs = append(procs, part1(in, out1)...)
	procs = append(procs, part2(in, out2)...)

	start := time.Now()
	sim, err := hdlsim.NewSimulation(procs, hdlsim.WithMaxDeltas(compareMaxDeltas))
	if err != nil {
		t.Fatal(err)
	}
	if err = sim.Run(hdlsim.Time(len(vectors)*comparePeriod + comparePeriod)); err != nil {
		t.Fatal(err)
	}
	if failure != "" {
		t.Fatal(failure)
	}
	t.Logf("%d processes. %d input vectors in %v", len(procs), len(vectors), time.Since(start))
}

func errString(in []*hdlsim.Signal, o int, ex, got uint64) string {
	var b strings.Builder
	for i, s := range in {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("in" + strconv.Itoa(i))
		b.WriteRune('=')
		b.WriteString(strconv.FormatUint(s.Get(), 10))
	}
	return fmt.Sprintf("\nExpected %s => out%d=%d\nGot %d", b.String(), o, ex, got)
}
