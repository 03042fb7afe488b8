package hdlsim_test

import (
	"reflect"
	"testing"

	hw "github.com/db47h/hdlsim"
	"github.com/pkg/errors"
)

func TestParseSensitivity(t *testing.T) {
	clk, rst := hw.NewSignal("clk", false), hw.NewSignal("rst", false)
	sigs := map[string]*hw.Signal{"clk": clk, "rst": rst}
	td := []struct {
		in   string
		sens hw.Sensitivity
	}{
		{"negedge(clk)", hw.Sensitivity{clk.Negedge()}},
		{"posedge(clk), rst", hw.Sensitivity{clk.Posedge(), rst.Change()}},
		{"change(rst),delay(20)", hw.Sensitivity{rst.Change(), hw.Delay(20)}},
		{"", hw.Sensitivity{}},
	}
	for _, d := range td {
		sens, err := hw.ParseSensitivity(d.in, sigs)
		if err != nil {
			trace(t, err)
			t.Fatalf("%q: %v", d.in, err)
		}
		if !reflect.DeepEqual(sens, d.sens) {
			t.Fatalf("%q: expected %v, got %v", d.in, d.sens, sens)
		}
	}

	for _, in := range []string{
		"negedge(data)",
		"delay(1), delay(2)",
		"posedge(clk",
		"clk; rst",
		"delay(18446744073709551621)",
	} {
		if _, err := hw.ParseSensitivity(in, sigs); errors.Cause(err) != hw.ErrInvalidTrigger {
			t.Errorf("%q: expected ErrInvalidTrigger, got %v", in, err)
		}
	}
}

func TestMustParseSensitivity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	hw.MustParseSensitivity("posedge(nowhere)", nil)
}
