// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package tickwheel

import (
	"fmt"
)

// tInfo encodes the list/wheel a timer event is on and its current flags
// (which are in fact a combination of state + flags) in one word.
// The maximum wheel size is 2^16.
// The wheel is single-threaded by contract, so plain (non-atomic) access
// is enough.
//
// Internal encoding format:
//   31    24    16      0
//   | flgs | wNo | wIdx |
// where flgs = flags, wNo = wheel number and wIdx = index inside the wheel.
type tInfo struct {
	v uint32
}

const (
	flgsMask = 255
	wNoMask  = 255
	wIdxMask = 65535
	flgsBpos = 24
	wNoBpos  = 16
)

func (t *tInfo) setFlags(mask uint8) {
	t.v |= uint32(mask) << flgsBpos
}

func (t *tInfo) resetFlags(mask uint8) {
	t.v &= ^(uint32(mask) << flgsBpos)
}

func (t *tInfo) setWheel(w uint8, idx uint16) {
	resetM := uint32(wNoMask)<<wNoBpos | uint32(wIdxMask)
	t.v = (t.v & ^resetM) | uint32(w)<<wNoBpos | uint32(idx)
}

func (t *tInfo) setAll(flgs uint8, w uint8, idx uint16) {
	t.v = uint32(flgs)<<flgsBpos | uint32(w)<<wNoBpos | uint32(idx)
}

func (t *tInfo) flags() uint8 {
	f, _, _ := t.getAll()
	return f
}

// wheelPos returns the wheel number and the index inside the wheel.
func (t *tInfo) wheelPos() (uint8, uint16) {
	_, w, idx := t.getAll()
	return w, idx
}

// getAll returns flags, wheel number and index.
func (t *tInfo) getAll() (uint8, uint8, uint16) {
	f := t.v >> flgsBpos
	w := (t.v >> wNoBpos) & wNoMask
	idx := t.v & wIdxMask
	return uint8(f), uint8(w), uint16(idx)
}

// String converts to a string, useful for debugging.
func (t tInfo) String() string {
	f, w, i := t.getAll()
	return fmt.Sprintf("%02x:%02x:%d", f, w, i)
}
