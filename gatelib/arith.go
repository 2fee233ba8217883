// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	"strconv"

	"github.com/db47h/gatesim"
)

type j = []gatesim.Junction

// HalfAdder returns a half adder.
//
//	Inputs: a (0), b (8)
//	Outputs: carry (3), sum (7)
//	Function: sum = a ^ b
//	          carry = a && b
//
func HalfAdder() *PartSpec {
	return &PartSpec{
		Name:    "half-adder",
		Inputs:  []Pin{{"a", 0}, {"b", 8}},
		Outputs: []Pin{{"carry", 3}, {"sum", 7}},
		Wires: []gatesim.Wire{
			{Input: 0, Output: 1, Delay: 4},
			{Input: 0, Output: 5, Delay: 8},
			{Input: 2, Output: 3, Delay: 4},
			{Input: 6, Output: 7, Delay: 3},
			{Input: 8, Output: 4, Delay: 8},
			{Input: 8, Output: 9, Delay: 4},
		},
		Gates: []gatesim.Gate{
			{Inputs: j{1, 9}, Output: 2, Behavior: gatesim.And},
			{Inputs: j{5, 4}, Output: 6, Behavior: gatesim.Xor},
		},
	}
}

// FullAdder returns a 1 bit full adder.
//
//	Inputs: a (0), b (1), cin (2)
//	Outputs: sum (16), carry (17)
//	Function: sum = a ^ b ^ cin
//	          carry = (a && b) || (cin && (a ^ b))
//
func FullAdder() *PartSpec {
	return &PartSpec{
		Name:    "full-adder",
		Inputs:  []Pin{{"a", 0}, {"b", 1}, {"cin", 2}},
		Outputs: []Pin{{"sum", 16}, {"carry", 17}},
		Wires: []gatesim.Wire{
			{Input: 0, Output: 3, Delay: 1},
			{Input: 1, Output: 4, Delay: 1},
			{Input: 0, Output: 5, Delay: 2},
			{Input: 1, Output: 6, Delay: 2},
			{Input: 2, Output: 7, Delay: 1},
			{Input: 2, Output: 8, Delay: 3},
			{Input: 9, Output: 10, Delay: 1},
			{Input: 9, Output: 11, Delay: 1},
			{Input: 12, Output: 16, Delay: 2},
			{Input: 15, Output: 17, Delay: 1},
		},
		Gates: []gatesim.Gate{
			{Inputs: j{3, 4}, Output: 9, Behavior: gatesim.Xor},
			{Inputs: j{10, 7}, Output: 12, Behavior: gatesim.Xor},
			{Inputs: j{5, 6}, Output: 13, Behavior: gatesim.And},
			{Inputs: j{11, 8}, Output: 14, Behavior: gatesim.And},
			{Inputs: j{13, 14}, Output: 15, Behavior: gatesim.Or},
		},
	}
}

// AdderN returns a ripple carry adder of the given bit width.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = lsb(a + b)
//	          c = carry out
//
func AdderN(bits int) *PartSpec {
	var b builder
	p := &PartSpec{Name: "adder" + strconv.Itoa(bits)}
	as := b.pins(&p.Inputs, "a", bits)
	bs := b.pins(&p.Inputs, "b", bits)

	var carry gatesim.Junction = -1
	for i := 0; i < bits; i++ {
		a, bb := b.wire(as[i], 1), b.wire(bs[i], 1)
		prop := b.gate(gatesim.Xor, a, bb)
		gen := b.gate(gatesim.And, a, bb)
		sum := prop
		if carry >= 0 {
			sum = b.gate(gatesim.Xor, prop, carry)
			gen = b.gate(gatesim.Or, gen, b.gate(gatesim.And, prop, carry))
		}
		p.Outputs = append(p.Outputs, Pin{busPinName("out", i), b.wire(sum, 1)})
		carry = b.wire(gen, 1)
	}
	if bits > 0 {
		p.Outputs = append(p.Outputs, Pin{"c", carry})
	}
	p.Wires, p.Gates = b.wires, b.gates
	return p
}
