package hwtest_test

import (
	"testing"

	hw "github.com/db47h/hdlsim"
	hl "github.com/db47h/hdlsim/hwlib"
	"github.com/db47h/hdlsim/hwtest"
)

func TestComparePart(t *testing.T) {
	// a NOR built from an OR and a NOT
	hwtest.ComparePart(t, []uint{16, 16}, []uint{16}, func(in, out []*hw.Signal) hw.Processes {
		return hw.Processes{hl.Nor(in[0], in[1], out[0])}
	}, func(in, out []*hw.Signal) hw.Processes {
		or := hw.NewBus("or", 16, 0)
		return hw.Processes{
			hl.Or(in[0], in[1], or),
			hl.Not(or, out[0]),
		}
	})
}
