// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// PALCallbacks is the platform-abstraction hook table: logging, the
// debug trap triggered by failed assertions, and the current-time
// source. All three have working defaults; hosts override what they
// need via SetPALCallbacks.
type PALCallbacks struct {
	// Log receives every precondition-violation and assertion message.
	// Default is a logrus.Logger at warn level.
	Log func(args ...any)

	// DebugTrap is invoked in addition to Log when an assertion fails.
	// Default is a no-op; control always continues either way.
	DebugTrap func(condition string)

	// CurrentTime supplies the value used by control types whose
	// frame-begin hook stamps "now" (e.g. DeltaAxisTwoWay,
	// DeltaVector2D). Default is time.Now-derived.
	CurrentTime func() Timestamp
}

var defaultLogger = logrus.New()

func defaultPAL() PALCallbacks {
	return PALCallbacks{
		Log:         func(args ...any) { defaultLogger.Warn(args...) },
		DebugTrap:   func(string) {},
		CurrentTime: currentTime,
	}
}

// warnf logs a precondition violation with the caller's file and line,
// then returns: every call site still returns its own documented neutral
// value (no-op, false, invalid ref, zero) immediately afterward.
func (ctx *Context) warnf(format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	msg := fmt.Sprintf(format, args...)
	ctx.pal.Log(fmt.Sprintf("%s:%d: %s", file, line, msg))
}

// assertf is warnf's sibling for conditions that should never occur
// given correct callers; it additionally triggers the debug trap.
func (ctx *Context) assertf(condition string, format string, args ...any) {
	ctx.warnf(format, args...)
	ctx.pal.DebugTrap(condition)
}

// SetPALCallbacks replaces the platform-abstraction hooks. Any
// unpopulated field falls back to its default. Must be called before
// Init to take effect for the coming session; calling it mid-session is
// safe but only affects behavior going forward.
func (ctx *Context) SetPALCallbacks(pal PALCallbacks) {
	if pal.Log == nil {
		pal.Log = defaultPAL().Log
	}
	if pal.DebugTrap == nil {
		pal.DebugTrap = defaultPAL().DebugTrap
	}
	if pal.CurrentTime == nil {
		pal.CurrentTime = defaultPAL().CurrentTime
	}
	ctx.pal = pal
}
