// Package config loads the gatesim command configuration from the
// environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the settings shared by all gatesim commands. Command line
// flags override these values.
type Config struct {
	// LogLevel is one of error, warn, info, debug or trace.
	LogLevel string `env:"GATESIM_LOG_LEVEL" envDefault:"info"`
	// MaxSteps bounds the number of steps spent settling a circuit after
	// each stimulus. Oscillating circuits never settle.
	MaxSteps int `env:"GATESIM_MAX_STEPS" envDefault:"100000"`
	// Trace prints every committed signal.
	Trace bool `env:"GATESIM_TRACE" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, errors.Wrap(err, "parse env")
	}
	if c.MaxSteps <= 0 {
		return c, errors.Errorf("GATESIM_MAX_STEPS must be positive, got %d", c.MaxSteps)
	}
	return c, nil
}
