/*
Package gatesim provides an event-driven simulator for two-valued digital logic
circuits.

A circuit is made of junctions (signal lines identified by their index),
wires that copy the level of one junction to another after a fixed delay and
zero-delay combinational gates (AND, OR, XOR, NOT). A World holds the state of
a running simulation: the committed level of each junction, the current time
and the signals that have been scheduled but not committed yet.

A typical session builds a Circuit, wraps it into a World, forces the input
junctions and steps the simulation until it settles:

	c, err := gatesim.NewCircuit(
		[]gatesim.Wire{{Input: 0, Output: 2, Delay: 1}},
		[]gatesim.Gate{{Inputs: []gatesim.Junction{1, 2}, Output: 3, Behavior: gatesim.And}})
	if err != nil {
		// fan-in, bad arity, ...
	}
	w := gatesim.NewWorld(c)
	w.SetJunction(0, true)
	w.SetJunction(1, true)
	w.StepToSettled()
	fmt.Println(w.Level(3), w.Time()) // true 1

No junction may be driven by more than one wire or gate. This is checked once,
when the circuit is built.
*/
package gatesim
