// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package tickwheel

import (
	"time"

	"github.com/intuitivelabs/timestamp"
)

// TickSrc derives wheel ticks from the wall clock: the timer wheel
// itself knows only abstract ticks and it is the host that decides what
// a tick means and when to call Advance(). A typical host loop is
//
//	src.Init(10 * time.Millisecond)
//	for {
//		time.Sleep(src.Duration(wt.TicksToNextEvt(maxSleep)))
//		wt.Advance(src.Elapsed())
//	}
//
// Note that tick durations that are too low would cause high cpu usage
// when idle (too many wakeups); durations in the millisecond range work
// well even for 100k+ active timers.
// A TickSrc is single-threaded, like the wheel it feeds.
type TickSrc struct {
	tickDuration time.Duration
	lastTickT    timestamp.TS // last time ticks were consumed
	badTime      uint32       // count time going backwards
}

// Init initializes the tick source with td as the tick duration and the
// current wall clock as the reference point.
func (ts *TickSrc) Init(td time.Duration) error {
	if td < time.Microsecond {
		return ErrTickDurationTooSmall
	} else if td > (time.Hour * 24) {
		// probably an error
		return ErrTickDurationTooHigh
	}
	ts.tickDuration = td
	ts.lastTickT = timestamp.Now()
	ts.badTime = 0
	return nil
}

// TickDuration returns the configured duration of one tick.
func (ts *TickSrc) TickDuration() time.Duration {
	return ts.tickDuration
}

// Ticks returns the duration d converted to Ticks (round-down) and
// the rest (if the passed duration is not an integer number of ticks).
func (ts *TickSrc) Ticks(d time.Duration) (Ticks, time.Duration) {
	if ts.tickDuration != 0 {
		t := d / ts.tickDuration
		return NewTicks(uint64(t)), d % ts.tickDuration
	}
	return NewTicks(0), d
}

// Duration converts a tick number to a time.Duration (according to the
// configured tick length).
func (ts *TickSrc) Duration(t Ticks) time.Duration {
	return time.Duration(t.Val()) * ts.tickDuration
}

// TicksRoundUp converts a duration into a ticks number rounding-up
// if the duration is less then 1 tick or if the rest is >= 0.5 ticks
// (better to expire 1 tick later then 1 tick too soon).
func (ts *TickSrc) TicksRoundUp(d time.Duration) Ticks {
	dticks, rest := ts.Ticks(d)
	if dticks.Val() == 0 || rest >= 50*ts.tickDuration/100 {
		// round-up if smaller then 1 tick or if value between ticks
		return dticks.AddUint64(1)
	}
	return dticks
}

// Elapsed returns the whole ticks that passed since the last call
// (or since Init()), keeping the fractional rest for the next call.
// Time going backwards (clock adjustments) yields 0 elapsed ticks; if
// it keeps going backwards the reference point is re-initialised to the
// current time.
func (ts *TickSrc) Elapsed() Ticks {
	now := timestamp.Now()
	if now.Before(ts.lastTickT) {
		// time going backwards!!
		ts.badTime++
		if ts.badTime > 10 {
			if ERRon() {
				ERR("trying to recover after time going backward %d times"+
					" with %s\n",
					ts.badTime, ts.lastTickT.Sub(now))
			}
			ts.lastTickT = now
		} else if DBGon() {
			DBG("elapsed: time going backward with %s (%d times)\n",
				ts.lastTickT.Sub(now), ts.badTime)
		}
		return NewTicks(0)
	}
	ts.badTime = 0
	diff := now.Sub(ts.lastTickT)
	if diff < ts.tickDuration {
		// too little time has passed
		return NewTicks(0)
	}
	ticks, rest := ts.Ticks(diff)
	ts.lastTickT = now.Add(-rest)
	return ticks
}
