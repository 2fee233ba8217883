// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
)

// An Option configures a World.
//
type Option func(w *World)

// WithLogger makes the World log every step at debug level.
//
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithProbe registers a function called with every signal committed to a
// junction, in commit order.
//
func WithProbe(fn func(s Signal)) Option {
	return func(w *World) { w.probe = fn }
}

// World is a running simulation of a Circuit.
//
// A World is not safe for concurrent use.
//
type World struct {
	c         *Circuit
	junctions []bool // committed levels
	time      Time
	signals   queue
	steps     uint64
	in        []bool // gate input scratch buffer

	log   *slog.Logger
	probe func(Signal)
}

// NewWorld returns a new World for the given circuit with all junctions set
// to false, the clock at 0 and no pending signals.
//
func NewWorld(c *Circuit, opts ...Option) *World {
	w := &World{
		c:         c,
		junctions: make([]bool, c.count),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// New builds a circuit from the given wires and gates and returns a new World
// for it. See NewCircuit for the possible errors.
//
func New(wires []Wire, gates []Gate, opts ...Option) (*World, error) {
	c, err := NewCircuit(wires, gates)
	if err != nil {
		return nil, err
	}
	return NewWorld(c, opts...), nil
}

// Circuit returns the simulated circuit.
//
func (w *World) Circuit() *Circuit { return w.c }

// Time returns the current simulation time.
//
func (w *World) Time() Time { return w.time }

// Steps returns the number of steps that advanced the simulation. Steps
// on a settled world are not counted.
//
func (w *World) Steps() uint64 { return w.steps }

// IsSettled returns true if there are no pending signals.
//
func (w *World) IsSettled() bool { return len(w.signals) == 0 }

// Level returns the committed level of junction j.
//
func (w *World) Level(j Junction) bool { return w.junctions[j] }

// Pending returns a copy of the pending signals in ascending time order.
//
func (w *World) Pending() []Signal {
	return append([]Signal(nil), w.signals...)
}

// Destiny returns the level junction j is heading to: the level of the
// pending signal with the greatest time for j or, if there is none, its
// committed level.
//
func (w *World) Destiny(j Junction) bool {
	if l, ok := w.signals.latest(j); ok {
		return l
	}
	return w.junctions[j]
}

// SetJunction schedules junction j to be set to level at the current time.
// The change is committed by the next call to Step.
//
// j must be a valid junction index. Forcing a junction that is also driven by
// a wire or gate is allowed; the driver will schedule its own level again if
// it disagrees.
//
func (w *World) SetJunction(j Junction, level bool) {
	if j < 0 || int(j) >= len(w.junctions) {
		panic("junction " + strconv.Itoa(int(j)) + " does not exist")
	}
	w.signals.push(Signal{Junction: j, Level: level, Time: w.time})
}

// Step advances the simulation to the time of the earliest pending signals,
// commits all of them, then re-evaluates gates and wires and schedules
// the resulting signals. Step does nothing if the World is settled.
//
func (w *World) Step() {
	if w.IsSettled() {
		return
	}
	w.propagate()
	w.steps++

	for i := range w.c.gates {
		g := &w.c.gates[i]
		in := w.in[:0]
		for _, j := range g.Inputs {
			in = append(in, w.Destiny(j))
		}
		w.in = in
		if v := g.Behavior.Eval(in); v != w.Destiny(g.Output) {
			w.signals.push(Signal{Junction: g.Output, Level: v, Time: w.time})
		}
	}

	for i := range w.c.wires {
		wr := &w.c.wires[i]
		if v := w.junctions[wr.Input]; v != w.Destiny(wr.Output) {
			w.signals.push(Signal{Junction: wr.Output, Level: v, Time: w.time + wr.Delay})
		}
	}

	if w.log != nil {
		w.log.LogAttrs(context.Background(), slog.LevelDebug, "step",
			slog.Int64("time", int64(w.time)),
			slog.Uint64("step", w.steps),
			slog.Int("pending", len(w.signals)))
	}
}

// propagate commits every signal scheduled at the earliest pending time and
// moves the clock to that time.
func (w *World) propagate() {
	t, n := w.signals.due()
	for _, s := range w.signals[:n] {
		w.junctions[s.Junction] = s.Level
		if w.probe != nil {
			w.probe(s)
		}
	}
	w.signals.drop(n)
	w.time = t
}

// StepToSettled steps the simulation until there are no pending signals.
// It never returns for circuits that oscillate; see SettleWithin.
//
func (w *World) StepToSettled() {
	for !w.IsSettled() {
		w.Step()
	}
}

// SettleWithin works like StepToSettled but gives up after maxSteps steps,
// in which case the returned error's cause is ErrUnsettled.
//
func (w *World) SettleWithin(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		if w.IsSettled() {
			return nil
		}
		w.Step()
	}
	if w.IsSettled() {
		return nil
	}
	return errors.Wrapf(ErrUnsettled, "%d pending signals after %d steps at time %d",
		len(w.signals), maxSteps, w.time)
}
