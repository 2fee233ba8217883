// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strings"

	"github.com/pkg/errors"
)

// Behavior selects the logic function of a gate.
//
type Behavior uint8

// Gate behaviors.
//
const (
	And Behavior = iota // true iff all inputs are true
	Or                  // true iff at least one input is true
	Xor                 // true iff an odd number of inputs are true
	Not                 // negation of the single input
	behaviorCount
)

var behaviorNames = [...]string{
	And: "and",
	Or:  "or",
	Xor: "xor",
	Not: "not",
}

var evalFns = [...]func(in []bool) bool{
	And: evalAnd,
	Or:  evalOr,
	Xor: evalXor,
	Not: evalNot,
}

func evalAnd(in []bool) bool {
	for _, v := range in {
		if !v {
			return false
		}
	}
	return true
}

func evalOr(in []bool) bool {
	for _, v := range in {
		if v {
			return true
		}
	}
	return false
}

func evalXor(in []bool) bool {
	p := false
	for _, v := range in {
		p = p != v
	}
	return p
}

// in must have exactly one element. NewCircuit enforces it.
func evalNot(in []bool) bool { return !in[0] }

// Eval returns the output level of a gate with behavior b given its input
// levels. AND returns true and OR returns false on empty input. Not panics
// if in is empty.
//
func (b Behavior) Eval(in []bool) bool {
	return evalFns[b](in)
}

// Valid returns true if b is one of the known behaviors.
//
func (b Behavior) Valid() bool { return b < behaviorCount }

func (b Behavior) String() string {
	if !b.Valid() {
		return "invalid"
	}
	return behaviorNames[b]
}

// arityOK checks the number of inputs n against b.
func (b Behavior) arityOK(n int) bool {
	if b == Not {
		return n == 1
	}
	return n > 0
}

// ParseBehavior returns the behavior with the given case insensitive name.
//
func ParseBehavior(s string) (Behavior, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range behaviorNames {
		if n == s {
			return Behavior(i), nil
		}
	}
	return 0, errors.Errorf("unknown gate behavior %q", s)
}
