// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Errors returned by NewCircuit and World.SettleWithin. Use errors.Cause to
// compare against these values.
//
var (
	ErrFanIn     = errors.New("junction driven by more than one element")
	ErrGateArity = errors.New("invalid gate input count")
	ErrJunction  = errors.New("negative junction index")
	ErrDelay     = errors.New("negative wire delay")
	ErrUnsettled = errors.New("circuit did not settle")
)

// An Element identifies a wire or gate by its position in the slices given to
// NewCircuit.
//
type Element struct {
	Gate  bool
	Index int
}

func (e Element) String() string {
	if e.Gate {
		return "gate #" + strconv.Itoa(e.Index)
	}
	return "wire #" + strconv.Itoa(e.Index)
}

// FanInError reports two elements driving the same junction.
//
type FanInError struct {
	Junction Junction
	First    Element
	Second   Element
}

func (e *FanInError) Error() string {
	return "junction " + strconv.Itoa(int(e.Junction)) + " driven by both " +
		e.First.String() + " and " + e.Second.String()
}

// Cause returns ErrFanIn.
func (e *FanInError) Cause() error { return ErrFanIn }

// ArityError reports a gate with an input count its behavior cannot handle.
//
type ArityError struct {
	Gate     int
	Behavior Behavior
	Inputs   int
}

func (e *ArityError) Error() string {
	return "gate #" + strconv.Itoa(e.Gate) + ": " + e.Behavior.String() +
		" gate with " + strconv.Itoa(e.Inputs) + " inputs"
}

// Cause returns ErrGateArity.
func (e *ArityError) Cause() error { return ErrGateArity }
