package hwtest_test

import (
	"testing"

	hw "github.com/db47h/hdlsim"
	hl "github.com/db47h/hdlsim/hwlib"
	"github.com/db47h/hdlsim/hwtest"
	"github.com/stretchr/testify/require"
)

func clockAndNot() hw.Processes {
	clk, nclk := hw.NewSignal("clk", false), hw.NewSignal("nclk", false)
	return hw.Processes{
		hl.Clock(clk, 10),
		hl.Not(clk, nclk),
	}
}

func TestRecorder(t *testing.T) {
	rec := hwtest.CheckReplay(t, 45, clockAndNot)

	require.Equal(t, []uint64{1, 0, 1, 0}, rec.Values("clk"))
	require.Equal(t, []uint64{1, 0, 1, 0, 1}, rec.Values("nclk"))
	require.Equal(t, []hw.Time{10, 20, 30, 40}, rec.WakeTimes("Clock"))
	require.Equal(t, []hw.Time{0, 10, 20, 30, 40}, rec.WakeTimes("NOT"))

	// nclk follows clk one delta cycle later
	for _, c := range rec.Changes {
		if c.Signal == "nclk" && c.Time > 0 {
			require.Equal(t, uint64(2), c.Delta)
		}
	}
	require.Empty(t, rec.Values("nope"))
}

func TestRecorder_digest(t *testing.T) {
	a, b := hwtest.NewRecorder(), hwtest.NewRecorder()
	require.Equal(t, a.Digest(), b.Digest())

	for _, r := range []*hwtest.Recorder{a, b} {
		sim, err := hw.NewSimulation(clockAndNot(), hw.WithObserver(r))
		require.NoError(t, err)
		require.NoError(t, sim.Run(20))
	}
	require.Equal(t, a.Digest(), b.Digest())

	sim, err := hw.NewSimulation(clockAndNot(), hw.WithObserver(b))
	require.NoError(t, err)
	require.NoError(t, sim.Run(10))
	require.NotEqual(t, a.Digest(), b.Digest())
}
