package gatesim_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
	"github.com/pkg/errors"
)

func halfAdder(t *testing.T, opts ...gatesim.Option) *gatesim.World {
	t.Helper()
	w, err := gatelib.HalfAdder().NewWorld(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestWorld_halfAdder(t *testing.T) {
	const (
		a, b       = 0, 8
		carry, sum = 3, 7
	)
	w := halfAdder(t)
	if !w.IsSettled() {
		t.Fatal("new world not settled")
	}
	steps := []struct {
		set        gatesim.Junction
		level      bool
		carry, sum bool
	}{
		{a, true, false, true},
		{b, true, true, false},
		{a, false, false, true},
		{b, false, false, false},
	}
	if w.Level(carry) || w.Level(sum) {
		t.Fatal("carry and sum must start false")
	}
	for _, s := range steps {
		w.SetJunction(s.set, s.level)
		w.StepToSettled()
		if !w.IsSettled() {
			t.Fatal("not settled after StepToSettled")
		}
		if w.Level(carry) != s.carry || w.Level(sum) != s.sum {
			t.Fatalf("set %d=%v: carry=%v sum=%v, expected carry=%v sum=%v",
				s.set, s.level, w.Level(carry), w.Level(sum), s.carry, s.sum)
		}
	}
}

// timing of the half adder: a goes through a 8 delay wire then a 3 delay wire
// to sum.
func TestWorld_halfAdder_time(t *testing.T) {
	w := halfAdder(t)
	w.SetJunction(0, true)
	w.StepToSettled()
	if w.Time() != 11 {
		t.Fatalf("time = %d, expected 11", w.Time())
	}
}

func TestWorld_Step_settled(t *testing.T) {
	w := halfAdder(t)
	w.SetJunction(0, true)
	w.StepToSettled()
	tm, steps := w.Time(), w.Steps()
	levels := make([]bool, w.Circuit().JunctionCount())
	for i := range levels {
		levels[i] = w.Level(gatesim.Junction(i))
	}
	for i := 0; i < 3; i++ {
		w.Step()
	}
	if w.Time() != tm || w.Steps() != steps {
		t.Fatalf("Step on a settled world changed time or step count")
	}
	for i, l := range levels {
		if w.Level(gatesim.Junction(i)) != l {
			t.Fatalf("Step on a settled world changed junction %d", i)
		}
	}
}

func TestWorld_SetJunction(t *testing.T) {
	w := halfAdder(t)
	w.SetJunction(0, true)
	if w.Level(0) {
		t.Fatal("SetJunction must not commit immediately")
	}
	if !w.Destiny(0) {
		t.Fatal("destiny of a forced junction must be its forced level")
	}
	p := w.Pending()
	if len(p) != 1 || p[0] != (gatesim.Signal{Junction: 0, Level: true, Time: 0}) {
		t.Fatalf("pending = %v", p)
	}
	w.Step()
	if !w.Level(0) || w.Time() != 0 {
		t.Fatalf("level(0) = %v at time %d", w.Level(0), w.Time())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on out of range junction")
		}
	}()
	w.SetJunction(10, true)
}

// Forcing a junction driven by a wire is allowed. The wire reasserts its
// level after its delay.
func TestWorld_SetJunction_driven(t *testing.T) {
	w, err := gatesim.New([]gatesim.Wire{{Input: 0, Output: 1, Delay: 5}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.SetJunction(1, true)
	w.Step()
	if !w.Level(1) {
		t.Fatal("forced level not committed")
	}
	w.StepToSettled()
	if w.Level(1) || w.Time() != 5 {
		t.Fatalf("level(1) = %v at time %d, expected false at 5", w.Level(1), w.Time())
	}
}

func TestWorld_monotonicTime(t *testing.T) {
	var last gatesim.Time
	var w *gatesim.World
	w = halfAdder(t, gatesim.WithProbe(func(s gatesim.Signal) {
		if s.Time < last {
			t.Fatalf("signal %v committed after time %d", s, last)
		}
		if s.Time < w.Time() {
			t.Fatalf("signal %v committed in the past (%d)", s, w.Time())
		}
		last = s.Time
	}))
	for _, j := range []gatesim.Junction{0, 8, 0, 8, 8, 0} {
		w.SetJunction(j, !w.Level(j))
		prev := w.Time()
		for !w.IsSettled() {
			w.Step()
			if w.Time() < prev {
				t.Fatalf("time went from %d to %d", prev, w.Time())
			}
			prev = w.Time()
		}
	}
}

// run applies a random sequence of stimuli to a full adder and returns its
// final state.
func run(seed int64) (gatesim.Time, uint64, []bool) {
	p := gatelib.FullAdder()
	w, err := p.NewWorld()
	if err != nil {
		panic(err)
	}
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < 20; i++ {
		w.SetJunction(p.Inputs[rnd.Intn(len(p.Inputs))].Junction, rnd.Intn(2) == 1)
		switch rnd.Intn(3) {
		case 0:
			w.Step()
		case 1:
			w.StepToSettled()
		}
	}
	w.StepToSettled()
	levels := make([]bool, w.Circuit().JunctionCount())
	for i := range levels {
		levels[i] = w.Level(gatesim.Junction(i))
	}
	return w.Time(), w.Steps(), levels
}

func TestWorld_deterministic(t *testing.T) {
	f := func(seed int64) bool {
		t0, s0, l0 := run(seed)
		t1, s1, l1 := run(seed)
		if t0 != t1 || s0 != s1 {
			return false
		}
		for i := range l0 {
			if l0[i] != l1[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
		t.Fatal(err)
	}
}

func TestWorld_SettleWithin(t *testing.T) {
	// ring oscillator: a NOT gate feeding itself through a wire.
	w, err := gatesim.New(
		[]gatesim.Wire{{Input: 1, Output: 0, Delay: 2}},
		[]gatesim.Gate{{Inputs: js{0}, Output: 1, Behavior: gatesim.Not}})
	if err != nil {
		t.Fatal(err)
	}
	w.SetJunction(0, false)
	err = w.SettleWithin(100)
	if errors.Cause(err) != gatesim.ErrUnsettled {
		t.Fatalf("expected ErrUnsettled, got %v", err)
	}
	if w.Steps() != 100 {
		t.Errorf("steps = %d, expected 100", w.Steps())
	}

	w = halfAdder(t)
	w.SetJunction(8, true)
	if err = w.SettleWithin(100); err != nil {
		t.Fatal(err)
	}
	if !w.IsSettled() {
		t.Fatal("not settled")
	}
}

func TestWorld_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	w := halfAdder(t, gatesim.WithLogger(l))
	w.SetJunction(0, true)
	w.StepToSettled()
	if n := strings.Count(buf.String(), "msg=step"); uint64(n) != w.Steps() {
		t.Fatalf("got %d step log lines for %d steps:\n%s", n, w.Steps(), buf.String())
	}
}
