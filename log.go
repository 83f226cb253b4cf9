// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package tickwheel

import (
	"github.com/intuitivelabs/slog"
)

// Log is the generic log used by the package.
var Log slog.Log = slog.New(slog.LNOTICE, slog.LbackTraceS|slog.LlocInfoS,
	slog.LStdErr)

// PANIC is a shorthand for Log.PANIC
func PANIC(f string, a ...interface{}) {
	Log.PANIC(f, a...)
}

// BUG is a shorthand for Log.BUG
func BUG(f string, a ...interface{}) {
	Log.BUG(f, a...)
}

// ERR is a shorthand for Log.ERR
func ERR(f string, a ...interface{}) {
	Log.ERR(f, a...)
}

// WARN is a shorthand for Log.WARN
func WARN(f string, a ...interface{}) {
	Log.WARN(f, a...)
}

// DBG is a shorthand for Log.DBG
func DBG(f string, a ...interface{}) {
	Log.DBG(f, a...)
}

// ERRon returns true if logging errors is enabled
func ERRon() bool {
	return Log.ERRon()
}

// WARNon returns true if logging warnings is enabled
func WARNon() bool {
	return Log.WARNon()
}

// DBGon returns true if generic debugging is enabled
func DBGon() bool {
	return Log.DBGon()
}
