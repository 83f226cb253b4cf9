// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package tickwheel

// timerLst is a sentinel-headed circular doubly-linked list of TimerEvt
// entries. Membership is intrusive: the entries hold their own links, so
// append and rm are O(1) and allocation free.
type timerLst struct {
	head     TimerEvt // used only as list head (only next & prev)
	wheelNo  uint8    // mostly for debugging
	wheelIdx uint16
}

// init initialises a list head (circular list).
func (lst *timerLst) init(wheelNo uint8, wheelIdx uint16) {
	lst.forceEmpty()
	lst.wheelNo = wheelNo
	lst.wheelIdx = wheelIdx
	lst.head.info.setFlags(fHead)
	lst.head.info.setWheel(wheelNo, wheelIdx)
}

// forceEmpty will completely empty the list (re-init the list head).
func (lst *timerLst) forceEmpty() {
	lst.head.next = &lst.head
	lst.head.prev = &lst.head
}

// isEmpty returns true if the list is empty.
func (lst *timerLst) isEmpty() bool {
	return lst.head.next == &lst.head
}

// append adds a TimerEvt entry at the end of the list and records the
// list as the entry's owner.
func (lst *timerLst) append(e *TimerEvt) {
	// DBG checks:
	if !e.Detached() {
		w, idx := e.info.wheelPos()
		PANIC("timerLst append called on an entry not detached: "+
			" t wheel %d idx %d , lst wheel %d idx %d next %p prev %p\n",
			w, idx, lst.wheelNo, lst.wheelIdx,
			e.next, e.prev)
	}

	e.prev = lst.head.prev
	e.next = &lst.head
	e.prev.next = e
	lst.head.prev = e

	// DBG checks:
	w, idx := e.info.wheelPos()
	if w != wheelNone || idx != wheelNoIdx {
		PANIC("timerLst append called on an entry already on a diff. list: "+
			" t wheel %d idx %d , lst wheel %d idx %d\n",
			w, idx, lst.wheelNo, lst.wheelIdx)
	}
	e.info.setWheel(lst.wheelNo, lst.wheelIdx)
	e.lst = lst
}

// rm removes a TimerEvt entry from the list.
func (lst *timerLst) rm(e *TimerEvt) {
	if e == nil || e.next == nil || e.prev == nil {
		PANIC("called with nil-detached element %p\n", e)
	}
	if e.next == e || e.prev == e {
		if e == &lst.head {
			PANIC("trying to rm list head  %p\n", e)
		} else {
			PANIC("called with detached element %p:"+
				" expire %s %s\n",
				e, e.expire, e.info)
		}
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	// "mark" e as detached
	e.next = e
	e.prev = e

	// DBG checks:
	w, idx := e.info.wheelPos()
	if w != lst.wheelNo || idx != lst.wheelIdx {
		PANIC("timerLst rm called on an entry from a different list: "+
			" t wheel %d idx %d , lst wheel %d idx %d\n",
			w, idx, lst.wheelNo, lst.wheelIdx)
	}
	e.info.setWheel(wheelNone, wheelNoIdx)
	e.lst = nil
}

// rmSubList removes a sub list defined by all the elements between
// s & e (including s & e). It returns a pointer to the detached
// sub list (which will still be a circular list) or nil if the sub list
// is empty.
// Note: s & e must be different from lst (from the list head address).
// Examples:
//   - detach the entire list:  l := lst.rmSubList(lst.head.next, lst.head.prev)
//   - detach from start to e:  l := lst.rmSubList(lst.head.next, e)
//   - detach from e to end:    l := lst.rmSubList(e, lst.head.prev)
func (lst *timerLst) rmSubList(s, e *TimerEvt) *TimerEvt {
	if e == nil || e.next == nil || e.prev == nil ||
		s == nil || s.next == nil || s.prev == nil {
		PANIC("called with nil-detached sublist %p - %p\n", s, e)
	}

	if s == &lst.head || e == &lst.head {
		return nil // empty list or &head passed as parameters (wrong)
	}
	// detach
	s.prev.next = e.next
	e.next.prev = s.prev
	// make the detached part circular
	s.prev = e
	e.next = s

	// mark all the elements as detached
	for v := s; v != e; v = v.next {
		v.info.setWheel(wheelNone, wheelNoIdx)
		v.lst = nil
	}
	e.info.setWheel(wheelNone, wheelNoIdx)
	e.lst = nil

	return s
}

// appendSubList adds an entire sublist specified by the starting and
// ending element (s & e) at the end of lst (immediately before lst.head).
func (lst *timerLst) appendSubList(s, e *TimerEvt) {
	s.prev = lst.head.prev
	e.next = &lst.head
	lst.head.prev.next = s
	lst.head.prev = e

	// mark all elements as belonging to this list: wheel & idx
	// (needed for finding the owner list on cancel and for the
	//  consistency checks)
	for v := s; v != e; v = v.next {
		v.info.setWheel(lst.wheelNo, lst.wheelIdx)
		v.lst = lst
	}
	e.info.setWheel(lst.wheelNo, lst.wheelIdx)
	e.lst = lst
}

// mv moves all the elements of the current lst to the end of dst.
// Returns true if any elements where moved.
func (lst *timerLst) mv(dst *timerLst) bool {
	s := lst.head.next
	e := lst.head.prev
	if lst.rmSubList(s, e) == nil {
		return false
	}
	dst.appendSubList(s, e)
	return true
}

// forEach iterates on the entire list calling f(e) for each element.
// It stops immediately if f() returns false.
// WARNING: it does not support removing the current list element
// from f().
func (lst *timerLst) forEach(f func(e *TimerEvt) bool) {
	cont := true
	for v := lst.head.next; v != &lst.head && cont; v = v.next {
		cont = f(v)
	}
}
