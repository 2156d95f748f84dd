// Package waitgroup provides a counted completion barrier whose Add and Done
// report the new count, plus a callback-running Wait variant.
package waitgroup

import "sync"

// WaitGroup blocks waiters until a known number of concurrent operations
// have all signaled completion. Unlike sync.WaitGroup, Add and Done return
// the updated count, a starting count can be set at construction, and
// WaitFunc composes a follow-up action with the wait.
//
// Waiting is condition-variable backed: a blocked Wait costs no CPU.
type WaitGroup struct {
	mu    sync.Mutex
	cond  sync.Cond
	count int64
}

// New creates a WaitGroup with the given starting count. A zero or negative
// initial count means Wait returns immediately until Add raises it.
func New(initial int64) *WaitGroup {
	wg := &WaitGroup{count: initial}
	wg.cond.L = &wg.mu
	return wg
}

// Add increments the counter by one and returns the new count.
func (wg *WaitGroup) Add() int64 {
	return wg.AddN(1)
}

// AddN adds n (which may be negative) and returns the new count. It panics
// if the counter would drop below zero: underflow is a caller bug, surfaced
// loudly rather than left to wrap around.
func (wg *WaitGroup) AddN(n int64) int64 {
	wg.mu.Lock()
	defer wg.mu.Unlock()

	if wg.count+n < 0 {
		panic("waitgroup: negative counter")
	}
	wg.count += n
	if wg.count <= 0 {
		wg.cond.Broadcast()
	}
	return wg.count
}

// Done decrements the counter by one and returns the new count. It panics if
// the counter is already zero.
func (wg *WaitGroup) Done() int64 {
	return wg.AddN(-1)
}

// Count returns the current counter value.
func (wg *WaitGroup) Count() int64 {
	wg.mu.Lock()
	defer wg.mu.Unlock()
	return wg.count
}

// Wait blocks until the counter is zero or below. If it already is, Wait
// returns immediately.
func (wg *WaitGroup) Wait() {
	wg.mu.Lock()
	for wg.count > 0 {
		wg.cond.Wait()
	}
	wg.mu.Unlock()
}

// WaitFunc waits and then runs f on the calling goroutine.
func (wg *WaitGroup) WaitFunc(f func()) {
	wg.Wait()
	f()
}
