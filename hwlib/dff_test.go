package hwlib_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/hdlsim"
	hl "github.com/db47h/hdlsim/hwlib"
	"github.com/db47h/hdlsim/hwtest"
	"github.com/stretchr/testify/require"
)

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

func TestDFF(t *testing.T) {
	clk, in, out := hw.NewSignal("clk", false), hw.NewBus("in", 4, 0), hw.NewBus("out", 4, 0)
	rec := hwtest.NewRecorder()
	sim, err := hw.NewSimulation(hw.Processes{
		hl.Clock(clk, 5), // rising edges at 5, 15, 25, 35
		hl.Stimulus(in, 10, 9, 3, 12),
		hl.DFF(clk, in, out),
	}, hw.WithObserver(rec))
	require.NoError(t, err)
	require.NoError(t, sim.Run(40))
	require.Equal(t, []uint64{9, 3, 12}, rec.Values("out"))
	var times []hw.Time
	for _, c := range rec.Changes {
		if c.Signal == "out" {
			times = append(times, c.Time)
		}
	}
	require.Equal(t, []hw.Time{15, 25, 35}, times)
}

func Test_bit_register(t *testing.T) {
	clk := hw.NewSignal("clk", false)
	in, load, out := hw.NewSignal("in", false), hw.NewSignal("load", false), hw.NewSignal("out", false)

	var vin, vload, p, failed bool
	sim, err := hw.NewSimulation(hw.Processes{
		hl.Clock(clk, 5),
		hl.Register(clk, in, load, out),
		// change inputs on falling edges and check the output on the next
		// falling edge.
		hw.Always("tb", func(c *hw.Context) {
			if out.Bool() != p {
				failed = true
			}
			vin, vload = randBool(), randBool()
			c.SetBool(in, vin)
			c.SetBool(load, vload)
			if vload {
				p = vin
			}
		}, clk.Negedge()),
	})
	require.NoError(t, err)
	require.NoError(t, sim.Run(10000))
	require.False(t, failed)
}

func TestCounter(t *testing.T) {
	clk, rst, out := hw.NewSignal("clk", false), hw.NewSignal("rst", false), hw.NewBus("cnt", 4, 0)
	rec := hwtest.CheckReplay(t, 200, func() hw.Processes {
		clk, out := hw.NewSignal("clk", false), hw.NewBus("cnt", 4, 0)
		return hw.Processes{hl.Clock(clk, 5), hl.Counter(clk, nil, out)}
	})
	vs := rec.Values("cnt")
	require.Len(t, vs, 20)
	require.Equal(t, []uint64{1, 2, 3}, vs[:3])
	require.Equal(t, uint64(4), vs[19]) // 20 mod 16

	// reset held high between 20 and 40
	sim, err := hw.NewSimulation(hw.Processes{
		hl.Clock(clk, 5),
		hl.Stimulus(rst, 20, 1, 0),
		hl.Counter(clk, rst, out),
	})
	require.NoError(t, err)
	require.NoError(t, sim.Run(60))
	// rising edges at 5, 15 (count 2), 25, 35 (reset), 45, 55 (count 2)
	require.Equal(t, uint64(2), out.Get())
}
