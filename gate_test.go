package gatesim_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/gatesim"
)

func TestBehavior_Eval(t *testing.T) {
	td := []struct {
		b   gatesim.Behavior
		in  []bool
		out bool
	}{
		{gatesim.And, nil, true},
		{gatesim.And, []bool{true, true, true}, true},
		{gatesim.And, []bool{true, false, true}, false},
		{gatesim.Or, nil, false},
		{gatesim.Or, []bool{false, false}, false},
		{gatesim.Or, []bool{false, true, false}, true},
		{gatesim.Xor, nil, false},
		{gatesim.Xor, []bool{true, true}, false},
		{gatesim.Xor, []bool{true, true, true}, true},
		{gatesim.Not, []bool{false}, true},
		{gatesim.Not, []bool{true}, false},
	}
	for _, d := range td {
		if got := d.b.Eval(d.in); got != d.out {
			t.Errorf("%v%v = %v, expected %v", d.b, d.in, got, d.out)
		}
	}
}

func TestBehavior_Eval_xorParity(t *testing.T) {
	f := func(in []bool) bool {
		n := 0
		for _, v := range in {
			if v {
				n++
			}
		}
		return gatesim.Xor.Eval(in) == (n%2 == 1)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestParseBehavior(t *testing.T) {
	for _, b := range []gatesim.Behavior{gatesim.And, gatesim.Or, gatesim.Xor, gatesim.Not} {
		p, err := gatesim.ParseBehavior(b.String())
		if err != nil || p != b {
			t.Errorf("ParseBehavior(%q) = %v, %v", b.String(), p, err)
		}
	}
	if b, err := gatesim.ParseBehavior(" XOR "); err != nil || b != gatesim.Xor {
		t.Errorf("ParseBehavior(\" XOR \") = %v, %v", b, err)
	}
	if _, err := gatesim.ParseBehavior("nand"); err == nil {
		t.Error("expected an error for nand")
	}
	if s := gatesim.Behavior(42).String(); s != "invalid" {
		t.Errorf("Behavior(42).String() = %q", s)
	}
}
