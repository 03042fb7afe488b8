package hdlsim_test

import (
	"testing"

	hw "github.com/db47h/hdlsim"
	hl "github.com/db47h/hdlsim/hwlib"
	"github.com/db47h/hdlsim/hwtest"
	"github.com/pkg/errors"
)

type mux4 struct {
	A   [4]*hw.Signal `hw:"in"`
	B   [4]*hw.Signal `hw:"in"`
	Sel *hw.Signal    `hw:"in"`
	Out [4]*hw.Signal `hw:"out"`
}

func (m *mux4) React(c *hw.Context) {
	src := m.A
	if m.Sel.Bool() {
		src = m.B
	}
	for i, s := range src {
		c.Set(m.Out[i], s.Get())
	}
}

func Test_MakeProcess(t *testing.T) {
	// 4 bits in, 1 bit wide signals inside, compared to a 4 bits hwlib.Mux
	hwtest.ComparePart(t, []uint{4, 4, 1}, []uint{4}, func(in, out []*hw.Signal) hw.Processes {
		return hw.Processes{hl.Mux(in[0], in[1], in[2], out[0])}
	}, func(in, out []*hw.Signal) hw.Processes {
		sigs := map[string]*hw.Signal{"sel": in[2]}
		var ps hw.Processes
		for i := 0; i < 4; i++ {
			n := "[" + string(rune('0'+i)) + "]"
			a, b, o := hw.NewSignal("a"+n, false), hw.NewSignal("b"+n, false), hw.NewSignal("out"+n, false)
			sigs["a"+n], sigs["b"+n], sigs["out"+n] = a, b, o
			i := uint(i)
			ps = append(ps, hw.Always("split"+n, func(c *hw.Context) {
				c.SetBool(a, in[0].Bit(i))
				c.SetBool(b, in[1].Bit(i))
			}, in[0].Change(), in[1].Change()))
		}
		ps = append(ps, hw.Always("merge", func(c *hw.Context) {
			var v uint64
			for i := 3; i >= 0; i-- {
				v <<= 1
				if sigs["out["+string(rune('0'+i))+"]"].Bool() {
					v |= 1
				}
			}
			c.Set(out[0], v)
		}, sigs["out[0]"].Change(), sigs["out[1]"].Change(), sigs["out[2]"].Change(), sigs["out[3]"].Change()))
		p, err := hw.MakeProcess(&mux4{}, sigs)
		if err != nil {
			t.Fatal(err)
		}
		return append(ps, p)
	})
}

type edgeCounter struct {
	Clk *hw.Signal `hw:"posedge,clock"`
	N   *hw.Signal `hw:"out,count"`
}

func (e *edgeCounter) React(c *hw.Context) { c.Set(e.N, e.N.Get()+1) }

func Test_MakeProcess_edge(t *testing.T) {
	clk, n := hw.NewSignal("clk", false), hw.NewBus("count", 8, 0)
	p, err := hw.MakeProcess(&edgeCounter{}, map[string]*hw.Signal{"clock": clk, "count": n})
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "edgeCounter" {
		t.Fatalf("bad process name %q", p.Name())
	}
	sim, err := hw.NewSimulation(hw.Processes{hl.Clock(clk, 5), p})
	if err != nil {
		t.Fatal(err)
	}
	if err = sim.Run(100); err != nil {
		t.Fatal(err)
	}
	// rising edges at 5, 15, ..., 95
	if n.Get() != 10 {
		t.Fatalf("expected 10 rising edges, got %d", n.Get())
	}
}

type badTag struct {
	A *hw.Signal `hw:"inout"`
}

func (*badTag) React(*hw.Context) {}

type badType struct {
	A int `hw:"in"`
}

func (*badType) React(*hw.Context) {}

type noInput struct {
	A *hw.Signal `hw:"out"`
}

func (*noInput) React(*hw.Context) {}

type valueReactor struct{}

func (valueReactor) React(*hw.Context) {}

func Test_MakeProcess_errors(t *testing.T) {
	sigs := map[string]*hw.Signal{"a": hw.NewSignal("a", false)}
	for _, r := range []hw.Reactor{&badTag{}, &badType{}, &noInput{}, valueReactor{}, &mux4{}} {
		if _, err := hw.MakeProcess(r, sigs); errors.Cause(err) != hw.ErrConfiguration {
			t.Errorf("%T: expected configuration error, got %v", r, err)
		}
	}
}
