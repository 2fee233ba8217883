// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"strconv"

	"github.com/db47h/gatesim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

// builder allocates junctions in order and collects the wires and gates
// connecting them.
type builder struct {
	next  gatesim.Junction
	wires []gatesim.Wire
	gates []gatesim.Gate
}

func (b *builder) alloc() gatesim.Junction {
	n := b.next
	b.next++
	return n
}

// pins allocates n input junctions named name[0] to name[n-1] and appends them
// to dst.
func (b *builder) pins(dst *[]Pin, name string, n int) []gatesim.Junction {
	js := make([]gatesim.Junction, n)
	for i := range js {
		js[i] = b.alloc()
		*dst = append(*dst, Pin{busPinName(name, i), js[i]})
	}
	return js
}

// wire connects in to a new junction and returns it.
func (b *builder) wire(in gatesim.Junction, delay gatesim.Time) gatesim.Junction {
	out := b.alloc()
	b.wires = append(b.wires, gatesim.Wire{Input: in, Output: out, Delay: delay})
	return out
}

// gate adds a gate and returns its output junction.
func (b *builder) gate(bh gatesim.Behavior, in ...gatesim.Junction) gatesim.Junction {
	out := b.alloc()
	b.gates = append(b.gates, gatesim.Gate{Inputs: in, Output: out, Behavior: bh})
	return out
}

func busPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// newGate returns a single gate with its inputs and output behind wires
// with the given delay.
func newGate(name string, bh gatesim.Behavior, inputs []string, delay gatesim.Time) *PartSpec {
	var b builder
	p := &PartSpec{Name: name}
	ins := make([]gatesim.Junction, len(inputs))
	for i, n := range inputs {
		in := b.alloc()
		p.Inputs = append(p.Inputs, Pin{n, in})
		ins[i] = b.wire(in, delay)
	}
	p.Outputs = []Pin{{pOut, b.wire(b.gate(bh, ins...), delay)}}
	p.Wires, p.Gates = b.wires, b.gates
	return p
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not() *PartSpec { return newGate("not", gatesim.Not, []string{pIn}, 1) }

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And() *PartSpec { return newGate("and", gatesim.And, []string{pA, pB}, 1) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or() *PartSpec { return newGate("or", gatesim.Or, []string{pA, pB}, 1) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
//
func Xor() *PartSpec { return newGate("xor", gatesim.Xor, []string{pA, pB}, 1) }

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: If sel=0 then out=a else out=b.
//
func Mux() *PartSpec {
	var b builder
	p := &PartSpec{Name: "mux"}
	a, bb, sel := b.alloc(), b.alloc(), b.alloc()
	p.Inputs = []Pin{{pA, a}, {pB, bb}, {"sel", sel}}
	notSel := b.gate(gatesim.Not, b.wire(sel, 1))
	w0 := b.gate(gatesim.And, b.wire(a, 1), notSel)
	w1 := b.gate(gatesim.And, b.wire(bb, 1), b.wire(sel, 1))
	p.Outputs = []Pin{{pOut, b.wire(b.gate(gatesim.Or, w0, w1), 1)}}
	p.Wires, p.Gates = b.wires, b.gates
	return p
}
