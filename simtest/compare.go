// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
)

// exhaustive testing above this input count would take too long.
const maxExhaustive = 12

func errString(p *gatelib.PartSpec, in []bool, oname string, ex, got bool) string {
	var b strings.Builder
	for i, pin := range p.Inputs {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", pin.Name, in[i])
	}
	return fmt.Sprintf("%s: Expected %s => %s=%v\nGot %v", p.Name, b.String(), oname, ex, got)
}

// TruthTable checks the outputs of part p against the reference function fn.
// fn receives the input levels in the order of p.Inputs and must return the
// expected output levels in the order of p.Outputs.
//
// Parts with up to 12 inputs are tested for every input combination. Larger
// parts are tested with 4096 random input vectors from a fixed seed.
//
func TruthTable(t testing.TB, p *gatelib.PartSpec, maxSteps int, fn func(in []bool) []bool) {
	t.Helper()

	start := time.Now()
	var w *gatesim.World
	check := func(in, out []bool) {
		t.Helper()
		ex := fn(in)
		if len(ex) != len(out) {
			t.Fatalf("%s: reference function returned %d outputs, expected %d", p.Name, len(ex), len(out))
		}
		for o := range out {
			if out[o] != ex[o] {
				t.Fatal(errString(p, in, p.Outputs[o].Name, ex[o], out[o]))
			}
		}
	}

	if len(p.Inputs) <= maxExhaustive {
		err := gatelib.Sweep(p, maxSteps, func(sw *gatesim.World, in, out []bool) error {
			w = sw
			check(in, out)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	} else {
		var err error
		w, err = p.NewWorld()
		if err != nil {
			t.Fatal(err)
		}
		rnd := rand.New(rand.NewSource(1))
		in := make([]bool, len(p.Inputs))
		for i := 0; i < 1<<maxExhaustive; i++ {
			for k := range in {
				in[k] = rnd.Int63()&(1<<62) != 0
			}
			gatelib.SetPins(w, p.Inputs, in)
			if err = w.SettleWithin(maxSteps); err != nil {
				t.Fatal(err)
			}
			check(in, gatelib.Levels(w, p.Outputs))
		}
	}

	if w != nil {
		t.Logf("%s: %d elements. %d steps, simulation time %d, in %v",
			p.Name, w.Circuit().Size(), w.Steps(), w.Time(), time.Since(start))
	}
}
