package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
	"github.com/db47h/gatesim/internal/desc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List library circuits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			names := gatelib.Builtins()
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(names)
			}
			for _, n := range names {
				p, _ := gatelib.Builtin(n)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s in: %s  out: %s\n", n, pinNames(p.Inputs), pinNames(p.Outputs))
			}
			return nil
		},
	}
}

func pinNames(pins []gatelib.Pin) string {
	names := make([]string, len(pins))
	for i, p := range pins {
		names[i] = p.Name
	}
	return strings.Join(names, ",")
}

type stimulus struct {
	pin   gatelib.Pin
	level bool
}

// parseStimuli parses a comma separated list of pin=level assignments. Pins
// are referenced by name or junction number.
func parseStimuli(p *gatelib.PartSpec, s string) ([]stimulus, error) {
	var out []stimulus
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		i := strings.IndexByte(a, '=')
		if i < 0 {
			return nil, errors.Errorf("invalid assignment %q, expected pin=level", a)
		}
		name, val := strings.TrimSpace(a[:i]), strings.TrimSpace(a[i+1:])
		level, err := strconv.ParseBool(val)
		if err != nil {
			return nil, errors.Errorf("invalid level %q for pin %s", val, name)
		}
		pin, ok := p.Input(name)
		if !ok {
			pin, ok = p.Output(name)
		}
		if !ok {
			n, err := strconv.Atoi(name)
			if err != nil {
				return nil, errors.Errorf("unknown pin %q", name)
			}
			if n < 0 || n >= junctionCount(p) {
				return nil, errors.Errorf("junction %d out of range", n)
			}
			pin = gatelib.Pin{Name: name, Junction: gatesim.Junction(n)}
		}
		out = append(out, stimulus{pin, level})
	}
	if len(out) == 0 {
		return nil, errors.Errorf("empty stimulus %q", s)
	}
	return out, nil
}

func junctionCount(p *gatelib.PartSpec) int {
	c, err := p.Build()
	if err != nil {
		return 0
	}
	return c.JunctionCount()
}

type pinLevel struct {
	Name  string `json:"name"`
	Level bool   `json:"level"`
}

type runResult struct {
	Stimulus string     `json:"stimulus"`
	Time     int64      `json:"time"`
	Steps    uint64     `json:"steps"`
	Outputs  []pinLevel `json:"outputs"`
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <circuit>",
		Short: "Apply stimuli to a circuit and print its outputs",
		Long: `Apply stimuli to a circuit and print its outputs once settled.

Each --set flag is one stimulus: a comma separated list of pin=level
assignments applied at the same time. The circuit is settled after each
stimulus. Pins are referenced by name or junction number.

Examples:
  gatesim run half-adder --set a=1 --set b=1
  gatesim run adder.yaml --set a=1,b=1,cin=0 --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			sets, _ := cmd.Flags().GetStringArray("set")

			p, err := loadPart(args[0])
			if err != nil {
				return err
			}
			opts, maxSteps, err := simOptions(cmd)
			if err != nil {
				return err
			}
			w, err := p.NewWorld(opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var results []runResult
			if len(sets) == 0 {
				sets = []string{""}
			}
			for _, s := range sets {
				if s != "" {
					st, err := parseStimuli(p, s)
					if err != nil {
						return err
					}
					for _, a := range st {
						w.SetJunction(a.pin.Junction, a.level)
					}
				}
				if !jsonOut {
					fmt.Fprintf(out, "[%s]\n", s)
				}
				if err = w.SettleWithin(maxSteps); err != nil {
					return err
				}
				r := runResult{Stimulus: s, Time: int64(w.Time()), Steps: w.Steps()}
				for _, o := range p.Outputs {
					r.Outputs = append(r.Outputs, pinLevel{o.Name, w.Level(o.Junction)})
				}
				if jsonOut {
					results = append(results, r)
					continue
				}
				fmt.Fprintf(out, "time=%d steps=%d\n", r.Time, r.Steps)
				for _, o := range r.Outputs {
					fmt.Fprintf(out, "  %s=%s\n", o.Name, bit(o.Level))
				}
			}
			if jsonOut {
				return json.NewEncoder(out).Encode(results)
			}
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "Stimulus: comma separated pin=level assignments (repeatable)")
	return cmd
}

type truthRow struct {
	In  []bool `json:"in"`
	Out []bool `json:"out"`
}

type truthTable struct {
	Inputs  []string   `json:"inputs"`
	Outputs []string   `json:"outputs"`
	Rows    []truthRow `json:"rows"`
}

func newTruthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "truth <circuit>",
		Short: "Print the truth table of a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			p, err := loadPart(args[0])
			if err != nil {
				return err
			}
			opts, maxSteps, err := simOptions(cmd)
			if err != nil {
				return err
			}
			tt := truthTable{}
			for _, pin := range p.Inputs {
				tt.Inputs = append(tt.Inputs, pin.Name)
			}
			for _, pin := range p.Outputs {
				tt.Outputs = append(tt.Outputs, pin.Name)
			}
			err = gatelib.Sweep(p, maxSteps, func(_ *gatesim.World, in, out []bool) error {
				tt.Rows = append(tt.Rows, truthRow{
					In:  append([]bool(nil), in...),
					Out: out,
				})
				return nil
			}, opts...)
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(tt)
			}
			writeTruthTable(cmd.OutOrStdout(), &tt)
			return nil
		},
	}
}

func writeTruthTable(w io.Writer, tt *truthTable) {
	cells := func(names []string, v []bool) string {
		var b strings.Builder
		for i, n := range names {
			if i > 0 {
				b.WriteByte(' ')
			}
			s := n
			if v != nil {
				s = fmt.Sprintf("%-*s", len(n), bit(v[i]))
			}
			b.WriteString(s)
		}
		return b.String()
	}
	fmt.Fprintf(w, "%s | %s\n", cells(tt.Inputs, nil), cells(tt.Outputs, nil))
	for _, r := range tt.Rows {
		fmt.Fprintf(w, "%s | %s\n", cells(tt.Inputs, r.In), cells(tt.Outputs, r.Out))
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <circuit>",
		Short: "Write a circuit description in YAML",
		Long: `Write a circuit description in YAML. Use it on a library circuit to get
a starting point for a custom description file:

  gatesim export full-adder > my-adder.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPart(args[0])
			if err != nil {
				return err
			}
			return desc.Encode(cmd.OutOrStdout(), p)
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a circuit description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			p, err := desc.Load(args[0])
			if err != nil {
				return err
			}
			c, err := p.Build()
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"name":      p.Name,
					"junctions": c.JunctionCount(),
					"wires":     len(p.Wires),
					"gates":     len(p.Gates),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d junctions, %d wires, %d gates)\n",
				p.Name, c.JunctionCount(), len(p.Wires), len(p.Gates))
			return nil
		},
	}
}
