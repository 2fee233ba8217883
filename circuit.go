// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// Junction identifies a signal line in a circuit.
//
type Junction int

// Time is the simulation clock. Wire delays use the same unit.
//
type Time int64

// A Wire reproduces the committed level of its Input junction at its Output
// junction Delay time units later.
//
type Wire struct {
	Input  Junction
	Output Junction
	Delay  Time
}

// A Gate computes the level of its Output junction from the levels of its
// Inputs. Gates have no propagation delay.
//
type Gate struct {
	Inputs   []Junction
	Output   Junction
	Behavior Behavior
}

// Circuit is an immutable, validated set of wires and gates.
//
type Circuit struct {
	wires []Wire
	gates []Gate
	count int // junction count
}

// NewCircuit validates the given wires and gates and returns a new Circuit.
//
// No junction may be the output of more than one wire or gate; this is
// reported as a *FanInError. Gates must have an input count compatible with
// their behavior (exactly one for Not, at least one for the others),
// otherwise an *ArityError is returned. Negative junctions or delays are
// rejected as well.
//
// The wires and gates are copied; the caller may reuse the slices.
//
func NewCircuit(wires []Wire, gates []Gate) (*Circuit, error) {
	c := &Circuit{
		wires: make([]Wire, len(wires)),
		gates: make([]Gate, len(gates)),
	}
	copy(c.wires, wires)

	drivers := make(map[Junction]Element, len(wires)+len(gates))
	claim := func(j Junction, e Element) error {
		if j < 0 {
			return errors.Wrap(ErrJunction, e.String())
		}
		if prev, ok := drivers[j]; ok {
			return &FanInError{Junction: j, First: prev, Second: e}
		}
		drivers[j] = e
		c.use(j)
		return nil
	}

	for i, w := range wires {
		e := Element{Index: i}
		if err := claim(w.Output, e); err != nil {
			return nil, err
		}
		if w.Input < 0 {
			return nil, errors.Wrap(ErrJunction, e.String())
		}
		if w.Delay < 0 {
			return nil, errors.Wrap(ErrDelay, e.String())
		}
		c.use(w.Input)
	}

	for i, g := range gates {
		e := Element{Gate: true, Index: i}
		if !g.Behavior.Valid() {
			return nil, errors.Errorf("%v: invalid gate behavior %d", e, uint8(g.Behavior))
		}
		if !g.Behavior.arityOK(len(g.Inputs)) {
			return nil, &ArityError{Gate: i, Behavior: g.Behavior, Inputs: len(g.Inputs)}
		}
		if err := claim(g.Output, e); err != nil {
			return nil, err
		}
		for _, in := range g.Inputs {
			if in < 0 {
				return nil, errors.Wrap(ErrJunction, e.String())
			}
			c.use(in)
		}
		c.gates[i] = Gate{
			Inputs:   append([]Junction(nil), g.Inputs...),
			Output:   g.Output,
			Behavior: g.Behavior,
		}
	}

	return c, nil
}

func (c *Circuit) use(j Junction) {
	if n := int(j) + 1; n > c.count {
		c.count = n
	}
}

// JunctionCount returns the number of junctions in the circuit: one more than
// the highest junction index referenced by any wire or gate.
//
func (c *Circuit) JunctionCount() int { return c.count }

// Wires returns a copy of the circuit's wires.
//
func (c *Circuit) Wires() []Wire {
	return append([]Wire(nil), c.wires...)
}

// Gates returns a copy of the circuit's gates.
//
func (c *Circuit) Gates() []Gate {
	gs := make([]Gate, len(c.gates))
	for i, g := range c.gates {
		gs[i] = g
		gs[i].Inputs = append([]Junction(nil), g.Inputs...)
	}
	return gs
}

// Size returns the element count in the circuit.
//
func (c *Circuit) Size() int { return len(c.wires) + len(c.gates) }
