// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"sort"
	"strconv"

	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// MaxSweepInputs is the maximum number of inputs accepted by Sweep.
//
const MaxSweepInputs = 16

var builtins = map[string]func() *PartSpec{
	"not":        Not,
	"and":        And,
	"or":         Or,
	"xor":        Xor,
	"mux":        Mux,
	"half-adder": HalfAdder,
	"full-adder": FullAdder,
	"adder4":     func() *PartSpec { return AdderN(4) },
	"adder8":     func() *PartSpec { return AdderN(8) },
}

// Builtin returns a new copy of the named library part.
//
func Builtin(name string) (*PartSpec, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Builtins returns the sorted names of the library parts.
//
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sweep runs the part through every combination of its input levels. For each
// combination, it forces the inputs, settles the circuit within maxSteps steps
// and calls fn with the input and output levels. The same World is used for
// all combinations, starting with all inputs false. The first input is the
// most significant bit of the combination counter.
//
// Sweep stops at the first error returned by fn.
//
func Sweep(p *PartSpec, maxSteps int, fn func(w *gatesim.World, in, out []bool) error, opts ...gatesim.Option) error {
	if len(p.Inputs) > MaxSweepInputs {
		return errors.New(p.Name + ": too many inputs for sweep (" + strconv.Itoa(len(p.Inputs)) + ")")
	}
	w, err := p.NewWorld(opts...)
	if err != nil {
		return err
	}
	in := make([]bool, len(p.Inputs))
	for i, tot := 0, 1<<uint(len(in)); i < tot; i++ {
		for bit := range in {
			in[len(in)-bit-1] = i&(1<<uint(bit)) != 0
		}
		SetPins(w, p.Inputs, in)
		if err = w.SettleWithin(maxSteps); err != nil {
			return errors.Wrap(err, p.Name)
		}
		if err = fn(w, in, Levels(w, p.Outputs)); err != nil {
			return err
		}
	}
	return nil
}
