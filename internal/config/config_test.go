package config

import (
	"os"
	"testing"
)

func TestLoad_defaults(t *testing.T) {
	for _, k := range []string{"GATESIM_LOG_LEVEL", "GATESIM_MAX_STEPS", "GATESIM_TRACE"} {
		t.Setenv(k, "") // restored on cleanup
		os.Unsetenv(k)
	}
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel != "info" || c.MaxSteps != 100000 || c.Trace {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("GATESIM_LOG_LEVEL", "debug")
	t.Setenv("GATESIM_MAX_STEPS", "42")
	t.Setenv("GATESIM_TRACE", "true")
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel != "debug" || c.MaxSteps != 42 || !c.Trace {
		t.Errorf("got %+v", c)
	}
}

func TestLoad_errors(t *testing.T) {
	for _, v := range []string{"nope", "0", "-3"} {
		t.Setenv("GATESIM_MAX_STEPS", v)
		if _, err := Load(); err == nil {
			t.Errorf("GATESIM_MAX_STEPS=%s: expected an error", v)
		}
	}
}
