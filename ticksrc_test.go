package tickwheel

import (
	"testing"
	"time"
)

func TestTickSrcInit(t *testing.T) {
	var ts TickSrc
	if err := ts.Init(500 * time.Nanosecond); err != ErrTickDurationTooSmall {
		t.Errorf("expected %q, got %v\n", ErrTickDurationTooSmall, err)
	}
	if err := ts.Init(25 * time.Hour); err != ErrTickDurationTooHigh {
		t.Errorf("expected %q, got %v\n", ErrTickDurationTooHigh, err)
	}
	if err := ts.Init(time.Millisecond); err != nil {
		t.Fatalf("Init failed: %s\n", err)
	}
	if ts.TickDuration() != time.Millisecond {
		t.Errorf("wrong tick duration: %s\n", ts.TickDuration())
	}
}

func TestTickSrcConv(t *testing.T) {
	var ts TickSrc
	if err := ts.Init(10 * time.Millisecond); err != nil {
		t.Fatalf("Init failed: %s\n", err)
	}
	ticks, rest := ts.Ticks(25 * time.Millisecond)
	if ticks.NE(NewTicks(2)) || rest != 5*time.Millisecond {
		t.Errorf("Ticks(25ms) => %s + %s\n", ticks, rest)
	}
	if d := ts.Duration(NewTicks(3)); d != 30*time.Millisecond {
		t.Errorf("Duration(3) => %s\n", d)
	}
	// round-up: anything below 1 tick becomes 1 tick
	if ts.TicksRoundUp(0).NE(NewTicks(1)) ||
		ts.TicksRoundUp(4*time.Millisecond).NE(NewTicks(1)) {
		t.Errorf("sub-tick durations not rounded up to 1\n")
	}
	if ts.TicksRoundUp(14 * time.Millisecond).NE(NewTicks(1)) {
		t.Errorf("rest < 1/2 tick should round down\n")
	}
	if ts.TicksRoundUp(15 * time.Millisecond).NE(NewTicks(2)) {
		t.Errorf("rest >= 1/2 tick should round up\n")
	}
}

func TestTickSrcElapsed(t *testing.T) {
	var ts TickSrc
	// huge tick: nothing can have elapsed yet
	if err := ts.Init(time.Hour); err != nil {
		t.Fatalf("Init failed: %s\n", err)
	}
	if e := ts.Elapsed(); e.NE(NewTicks(0)) {
		t.Errorf("elapsed %s ticks right after init\n", e)
	}

	// tiny tick: sleeping must produce ticks
	if err := ts.Init(time.Microsecond); err != nil {
		t.Fatalf("Init failed: %s\n", err)
	}
	time.Sleep(2 * time.Millisecond)
	if e := ts.Elapsed(); e.EQ(NewTicks(0)) {
		t.Errorf("no ticks elapsed after sleeping\n")
	}
}

// host-side driving pattern: sleep according to the wheel, feed it the
// elapsed ticks.
func TestTickSrcDrive(t *testing.T) {
	var ts TickSrc
	if err := ts.Init(time.Microsecond); err != nil {
		t.Fatalf("Init failed: %s\n", err)
	}
	wt := New(NewTicks(0))
	n := 0
	e := NewTimerEvt(func(*TimerWheel, *TimerEvt, interface{}) { n++ }, nil)
	wt.Schedule(e, NewTicks(100))

	for i := 0; i < 100 && n == 0; i++ {
		d := ts.Duration(wt.TicksToNextEvt(NewTicks(1000)))
		time.Sleep(d)
		wt.Advance(ts.Elapsed())
	}
	if n != 1 {
		t.Fatalf("driven timer ran %d times\n", n)
	}
}
