// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package spinlock implements a non-recursive busy-wait lock for the
// process-wide guard described by the input package's concurrency model.
// There is no suspension point and no OS wait primitive: unlike
// sync.Mutex, a goroutine blocked on Lock never parks, it spins.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Spinlock is a non-recursive exchange-based spinlock. The zero value is
// an unlocked lock, ready to use.
type Spinlock struct {
	held atomic.Bool
}

// Lock acquires the lock, busy-waiting (yielding the processor between
// attempts) while it is held by another caller. Calling Lock again from
// the same goroutine while already holding it deadlocks; callers that
// may re-enter must route through an exemption instead of calling Lock
// twice.
func (s *Spinlock) Lock() {
	for {
		if !s.held.Swap(true) {
			return
		}
		for s.held.Load() {
			runtime.Gosched()
		}
	}
}

// TryLock attempts to acquire the lock without blocking.
func (s *Spinlock) TryLock() bool {
	return !s.held.Load() && !s.held.Swap(true)
}

// Unlock releases the lock. Unlock on a lock not held by the caller is
// undefined, as with sync.Mutex.
func (s *Spinlock) Unlock() {
	s.held.Store(false)
}
