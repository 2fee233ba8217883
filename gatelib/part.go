// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a library of ready made circuits for gatesim,
// together with named input and output pins.
//
package gatelib

import (
	"strconv"

	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// A Pin names a junction of a part.
//
type Pin struct {
	Name     string
	Junction gatesim.Junction
}

// A PartSpec wraps a circuit blueprint: its wires and gates and the
// junctions used as inputs and outputs.
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pins, in the order used by Sweep. Inputs are driven with
	// World.SetJunction.
	Inputs []Pin
	// Output pins.
	Outputs []Pin

	Wires []gatesim.Wire
	Gates []gatesim.Gate
}

// Build validates the part and returns its circuit.
//
func (p *PartSpec) Build() (*gatesim.Circuit, error) {
	name := p.Name
	if name == "" {
		name = "unnamed part"
	}
	c, err := gatesim.NewCircuit(p.Wires, p.Gates)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	seen := make(map[string]bool, len(p.Inputs)+len(p.Outputs))
	for _, pins := range [...][]Pin{p.Inputs, p.Outputs} {
		for _, pin := range pins {
			if pin.Name == "" {
				return nil, errors.New(name + ": empty pin name")
			}
			if seen[pin.Name] {
				return nil, errors.New(name + ": duplicate pin name " + pin.Name)
			}
			seen[pin.Name] = true
			if pin.Junction < 0 || int(pin.Junction) >= c.JunctionCount() {
				return nil, errors.New(name + ": pin " + pin.Name + " on unknown junction " +
					strconv.Itoa(int(pin.Junction)))
			}
		}
	}
	return c, nil
}

// NewWorld builds the part and returns a new World for it.
//
func (p *PartSpec) NewWorld(opts ...gatesim.Option) (*gatesim.World, error) {
	c, err := p.Build()
	if err != nil {
		return nil, err
	}
	return gatesim.NewWorld(c, opts...), nil
}

// Input returns the input pin with the given name.
//
func (p *PartSpec) Input(name string) (Pin, bool) { return findPin(p.Inputs, name) }

// Output returns the output pin with the given name.
//
func (p *PartSpec) Output(name string) (Pin, bool) { return findPin(p.Outputs, name) }

func findPin(pins []Pin, name string) (Pin, bool) {
	for _, p := range pins {
		if p.Name == name {
			return p, true
		}
	}
	return Pin{}, false
}

// SetPins forces the given pins to the levels in v. v must have the same
// length as pins.
//
func SetPins(w *gatesim.World, pins []Pin, v []bool) {
	for i, p := range pins {
		w.SetJunction(p.Junction, v[i])
	}
}

// Levels returns the committed levels of the given pins.
//
func Levels(w *gatesim.World, pins []Pin) []bool {
	out := make([]bool, len(pins))
	for i, p := range pins {
		out[i] = w.Level(p.Junction)
	}
	return out
}

// Int64 returns the levels of pins as an int64. Pin 0 is lsb.
//
func Int64(w *gatesim.World, pins []Pin) int64 {
	var out int64
	for bit, p := range pins {
		if w.Level(p.Junction) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetInt64 forces pins to the bits of v. Pin 0 is lsb.
//
func SetInt64(w *gatesim.World, pins []Pin, v int64) {
	for bit, p := range pins {
		w.SetJunction(p.Junction, v&(1<<uint(bit)) != 0)
	}
}
