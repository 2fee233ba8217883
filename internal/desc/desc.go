// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package desc reads and writes circuit descriptions in YAML.
//
// A description looks like this:
//
//	name: half-adder
//	inputs:
//	  - {name: a, junction: 0}
//	  - {name: b, junction: 8}
//	outputs:
//	  - {name: carry, junction: 3}
//	  - {name: sum, junction: 7}
//	wires:
//	  - {in: 0, out: 1, delay: 4}
//	gates:
//	  - {type: and, in: [1, 9], out: 2}
//
package desc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type file struct {
	Name    string `yaml:"name"`
	Inputs  []pin  `yaml:"inputs,omitempty"`
	Outputs []pin  `yaml:"outputs,omitempty"`
	Wires   []wire `yaml:"wires,omitempty"`
	Gates   []gate `yaml:"gates,omitempty"`
}

type pin struct {
	Name     string           `yaml:"name"`
	Junction gatesim.Junction `yaml:"junction"`
}

type wire struct {
	In    gatesim.Junction `yaml:"in"`
	Out   gatesim.Junction `yaml:"out"`
	Delay gatesim.Time     `yaml:"delay"`
}

type gate struct {
	Type string             `yaml:"type"`
	In   []gatesim.Junction `yaml:"in,flow"`
	Out  gatesim.Junction   `yaml:"out"`
}

func toPins(ps []pin) []gatelib.Pin {
	if len(ps) == 0 {
		return nil
	}
	out := make([]gatelib.Pin, len(ps))
	for i, p := range ps {
		out[i] = gatelib.Pin{Name: p.Name, Junction: p.Junction}
	}
	return out
}

func fromPins(ps []gatelib.Pin) []pin {
	out := make([]pin, len(ps))
	for i, p := range ps {
		out[i] = pin{p.Name, p.Junction}
	}
	return out
}

// Decode reads a circuit description from r and returns the corresponding
// part. Unknown fields are rejected and the resulting circuit is validated.
//
func Decode(r io.Reader) (*gatelib.PartSpec, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty circuit description")
		}
		return nil, errors.Wrap(err, "decode circuit")
	}

	p := &gatelib.PartSpec{
		Name:    f.Name,
		Inputs:  toPins(f.Inputs),
		Outputs: toPins(f.Outputs),
		Wires:   make([]gatesim.Wire, len(f.Wires)),
		Gates:   make([]gatesim.Gate, len(f.Gates)),
	}
	for i, w := range f.Wires {
		p.Wires[i] = gatesim.Wire{Input: w.In, Output: w.Out, Delay: w.Delay}
	}
	for i, g := range f.Gates {
		b, err := gatesim.ParseBehavior(g.Type)
		if err != nil {
			return nil, errors.Wrap(err, "gate #"+strconv.Itoa(i))
		}
		p.Gates[i] = gatesim.Gate{Inputs: g.In, Output: g.Out, Behavior: b}
	}
	if _, err := p.Build(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads a circuit description file. If the description has no name, the
// file name without extension is used.
//
func Load(name string) (*gatelib.PartSpec, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if p.Name == "" {
		base := filepath.Base(name)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// Encode writes the description of part p to w.
//
func Encode(w io.Writer, p *gatelib.PartSpec) error {
	f := file{
		Name:    p.Name,
		Inputs:  fromPins(p.Inputs),
		Outputs: fromPins(p.Outputs),
		Wires:   make([]wire, len(p.Wires)),
		Gates:   make([]gate, len(p.Gates)),
	}
	for i, wr := range p.Wires {
		f.Wires[i] = wire{wr.Input, wr.Output, wr.Delay}
	}
	for i, g := range p.Gates {
		if !g.Behavior.Valid() {
			return errors.Errorf("gate #%d: invalid gate behavior %d", i, uint8(g.Behavior))
		}
		f.Gates[i] = gate{g.Behavior.String(), g.Inputs, g.Output}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return errors.Wrap(err, "encode circuit")
	}
	return enc.Close()
}
