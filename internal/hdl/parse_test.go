package hdl_test

import (
	"reflect"
	"testing"

	"github.com/db47h/hdlsim/internal/hdl"
)

func TestParse(t *testing.T) {
	td := []struct {
		in  string
		out []hdl.Term
		err string
	}{
		{"", nil, ""},
		{"  ", nil, ""},
		{"clk", []hdl.Term{{Kind: hdl.Change, Name: "clk", Pos: 0}}, ""},
		{"negedge(clk)", []hdl.Term{{Kind: hdl.Negedge, Name: "clk", Pos: 0}}, ""},
		{"posedge( clk ), delay(15)", []hdl.Term{
			{Kind: hdl.Posedge, Name: "clk", Pos: 0},
			{Kind: hdl.Delay, Delay: 15, Pos: 16},
		}, ""},
		{"a, change(b_1)", []hdl.Term{
			{Kind: hdl.Change, Name: "a", Pos: 0},
			{Kind: hdl.Change, Name: "b_1", Pos: 3},
		}, ""},
		{"delay(clk)", nil, `in "delay(clk)" at pos 7: integer delay expected`},
		{"posedge(12)", nil, `in "posedge(12)" at pos 9: signal name expected`},
		{"rising(clk)", nil, `in "rising(clk)" at pos 1: unknown trigger rising`},
		{"delay(9223372036854775807)", []hdl.Term{{Kind: hdl.Delay, Delay: 9223372036854775807, Pos: 0}}, ""},
		{"delay(9223372036854775808)", nil, `in "delay(9223372036854775808)" at pos 7: integer overflow`},
		{"delay(18446744073709551621)", nil, `in "delay(18446744073709551621)" at pos 7: integer overflow`},
		{"delay(-5)", nil, `in "delay(-5)" at pos 7: integer delay expected`},
		{"negedge(clk", nil, `in "negedge(clk" at pos 12: closing ')' expected`},
		{"a b", nil, `in "a b" at pos 3: unexpected b`},
		{"a,", nil, `in "a," at pos 3: expected signal name or trigger`},
		{"42", nil, `in "42" at pos 1: expected signal name or trigger`},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			out, err := hdl.Parse(d.in)
			if d.err != "" {
				if err == nil {
					t.Fatalf("expected error %q, got %v", d.err, out)
				}
				if err.Error() != d.err {
					t.Fatalf("expected error %q, got %q", d.err, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(out, d.out) {
				t.Fatalf("expected %v, got %v", d.out, out)
			}
		})
	}
}
