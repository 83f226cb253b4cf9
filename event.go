// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package tickwheel

// A TimerHandlerF is the callback invoked when a timer event expires.
// The parameters passed are a pointer to the timer wheel that dispatched
// the event, the expired event itself and an opaque parameter registered
// together with the callback.
// Binding a handler to a receiver object is done by passing the receiver
// as the opaque parameter (the handler then invokes the wanted method on
// it); a plain closure can be wrapped with NewFuncTimerEvt().
//
// The event is always inactive (unlinked from its slot) before the
// handler runs. Inside the handler it is safe to re-schedule the expired
// event (including with wt.Schedule(e, ...) on itself), to schedule new
// events and to Cancel() any event, including ones still pending dispatch
// in the current tick. Cancel() on the expired event itself is a no-op
// (it already fired for this deadline).
// A panic inside a handler propagates out of Advance(); events still
// pending in the current tick's dispatch batch stay scheduled and are
// dispatched by the next Advance() call.
type TimerHandlerF func(wt *TimerWheel, e *TimerEvt, arg interface{})

const (
	wheelNone  uint8  = 255   // sentinel value for no wheel
	wheelExp   uint8  = 254   // no wheel, expired list
	wheelNoIdx uint16 = 65535 // sentinel debug value for no index
)

// flags for timer events
const (
	fHead   = 1 // this is a list head (debugging)
	fActive = 2 // event is scheduled on a slot list
)

// A TimerEvt is a single scheduled callback, bound to at most one wheel
// slot at a time. The event owner owns its storage: the high performance
// way of using it is making a TimerEvt part of your data structure and
// initialising it with InitTimerEvt() (NewTimerEvt() involves an extra
// allocation and more GC work). An event embedded in a receiver must be
// Cancel()-ed before the receiver goes away, otherwise the wheel will
// still dispatch it.
type TimerEvt struct {
	next   *TimerEvt
	prev   *TimerEvt
	expire Ticks     // absolute expire "time" in ticks
	info   tInfo     // internal information (wheel no, idx, flags ...)
	lst    *timerLst // owner slot list while scheduled

	f   TimerHandlerF // callback function
	arg interface{}   // callback function parameter
}

// InitTimerEvt initialises a TimerEvt before use, binding it to a
// callback and an opaque callback parameter.
// Note: never call it on a scheduled event, Cancel() it first.
func InitTimerEvt(e *TimerEvt, f TimerHandlerF, arg interface{}) error {
	if e == nil || f == nil {
		return ErrInvalidParameters
	}
	if e.info.flags()&fActive != 0 {
		return ErrActiveTimer
	}
	*e = TimerEvt{}
	e.info.setAll(0, wheelNone, wheelNoIdx)
	e.f = f
	e.arg = arg
	return nil
}

// NewTimerEvt allocates and returns a new initialised timer event.
// It returns nil on invalid parameters.
func NewTimerEvt(f TimerHandlerF, arg interface{}) *TimerEvt {
	e := &TimerEvt{}
	if InitTimerEvt(e, f, arg) != nil {
		return nil
	}
	return e
}

// NewFuncTimerEvt allocates and returns a new timer event bound to a
// plain closure.
// It returns nil on invalid parameters.
func NewFuncTimerEvt(f func()) *TimerEvt {
	if f == nil {
		return nil
	}
	return NewTimerEvt(
		func(*TimerWheel, *TimerEvt, interface{}) { f() }, nil)
}

// Active returns true if the event is currently scheduled.
func (e *TimerEvt) Active() bool {
	return e.info.flags()&fActive != 0
}

// Exp returns the absolute expire "time" in ticks.
// The value is meaningful only while Active() (and inside the event
// handler, where it holds the deadline the event fired for).
func (e *TimerEvt) Exp() Ticks {
	return e.expire
}

// Detached checks if the event is part of a list and returns true if not.
func (e *TimerEvt) Detached() bool {
	return e == e.next || (e.next == nil && e.prev == nil)
}

// Cancel unlinks the event from its slot, guaranteeing the callback will
// not run for the current schedule. It returns true if the event was
// scheduled and false if it was already inactive (no-op).
// Cancel is idempotent and O(1). It is safe to call from inside timer
// handlers, including on events still pending dispatch in the current
// tick; on the event whose handler is currently running it is a no-op
// (the wheel unlinks an event before invoking it).
func (e *TimerEvt) Cancel() bool {
	if e.info.flags()&fActive == 0 {
		return false
	}
	lst := e.lst
	if lst == nil || e.Detached() {
		BUG("active timer evt %p not on any list: n %p p %p info %s\n",
			e, e.next, e.prev, e.info)
		e.info.resetFlags(fActive)
		return false
	}
	lst.rm(e)
	e.next = nil
	e.prev = nil
	e.info.resetFlags(fActive)
	return true
}
