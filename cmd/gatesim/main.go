// Command gatesim runs logic circuit simulations from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
	"github.com/db47h/gatesim/internal/config"
	"github.com/db47h/gatesim/internal/desc"
	"github.com/db47h/gatesim/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gatesim",
		Short: "Event-driven logic circuit simulator",
		Long: `gatesim simulates digital logic circuits made of delay-carrying wires and
zero-delay gates (and, or, xor, not).

Circuits are either library parts (see "gatesim list") or YAML description
files (see "gatesim export" for the format).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level (error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().Int("max-steps", cfg.MaxSteps, "Maximum steps to settle the circuit after each stimulus")
	rootCmd.PersistentFlags().Bool("trace", cfg.Trace, "Print every committed signal")

	rootCmd.AddCommand(
		newListCmd(),
		newRunCmd(),
		newTruthCmd(),
		newExportCmd(),
		newValidateCmd(),
	)
	return rootCmd
}

// loadPart returns the library part with the given name or, failing that,
// loads it as a description file.
func loadPart(name string) (*gatelib.PartSpec, error) {
	if p, ok := gatelib.Builtin(name); ok {
		return p, nil
	}
	return desc.Load(name)
}

// simOptions returns the World options selected by the persistent flags.
func simOptions(cmd *cobra.Command) (opts []gatesim.Option, maxSteps int, err error) {
	level, _ := cmd.Flags().GetString("log-level")
	trace, _ := cmd.Flags().GetBool("trace")
	maxSteps, _ = cmd.Flags().GetInt("max-steps")
	if maxSteps <= 0 {
		return nil, 0, errors.Errorf("--max-steps must be positive, got %d", maxSteps)
	}

	log := logging.NewLogger(level, cmd.ErrOrStderr())
	if log.Enabled(cmd.Context(), slog.LevelDebug) {
		opts = append(opts, gatesim.WithLogger(log))
	}
	if trace {
		out := cmd.OutOrStdout()
		opts = append(opts, gatesim.WithProbe(func(s gatesim.Signal) {
			fmt.Fprintf(out, "  %s\n", s)
		}))
	} else if log.Enabled(cmd.Context(), logging.LevelTrace) {
		opts = append(opts, gatesim.WithProbe(func(s gatesim.Signal) {
			log.Log(cmd.Context(), logging.LevelTrace, "commit",
				"junction", int(s.Junction), "level", s.Level, "time", int64(s.Time))
		}))
	}
	return opts, maxSteps, nil
}
