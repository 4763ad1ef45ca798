// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package debounce holds filter and search input until it settles.
//
// A Value[T] receives every keystroke through Set and emits the normalized
// value only once no newer value arrived within the delay (trailing edge).
// Services read Current to build query keys, and the CLI reads C to start
// a search once typing stops.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the delay used for search inputs.
const DefaultDelay = 400 * time.Millisecond

// Option configures a Value.
type Option[T comparable] func(*Value[T])

// WithNormalize applies fn to every input before comparison and emission.
func WithNormalize[T comparable](fn func(T) T) Option[T] {
	return func(v *Value[T]) {
		v.normalize = fn
	}
}

// Value is a debounced value. It is safe for concurrent use.
type Value[T comparable] struct {
	mu        sync.Mutex
	delay     time.Duration
	normalize func(T) T

	current T
	pending T
	waiting bool
	timer   *time.Timer
	stopped bool

	out chan T
}

// New returns a Value holding the normalized initial value. A delay of zero
// or less emits every change immediately.
func New[T comparable](initial T, delay time.Duration, opts ...Option[T]) *Value[T] {
	v := &Value[T]{
		delay: delay,
		out:   make(chan T, 1),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.current = v.norm(initial)
	return v
}

func (v *Value[T]) norm(in T) T {
	if v.normalize == nil {
		return in
	}
	return v.normalize(in)
}

// Set feeds a new input. Inputs that normalize to the value already waiting
// do not restart the delay.
func (v *Value[T]) Set(in T) {
	n := v.norm(in)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stopped {
		return
	}
	if v.waiting && n == v.pending {
		return
	}
	v.cancelLocked()

	if n == v.current {
		return
	}
	if v.delay <= 0 {
		v.emitLocked(n)
		return
	}

	v.pending = n
	v.waiting = true
	var timer *time.Timer
	timer = time.AfterFunc(v.delay, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		// A Set that raced with the timer firing has already replaced it.
		if v.timer != timer || v.stopped {
			return
		}
		v.timer = nil
		v.waiting = false
		v.emitLocked(v.pending)
	})
	v.timer = timer
}

func (v *Value[T]) cancelLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.waiting = false
}

// emitLocked publishes n. A reader that has not drained the previous
// emission only ever sees the newest one.
func (v *Value[T]) emitLocked(n T) {
	v.current = n
	select {
	case <-v.out:
	default:
	}
	v.out <- n
}

// Current returns the last emitted value.
func (v *Value[T]) Current() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Pending reports whether an input is waiting for the delay to pass.
func (v *Value[T]) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.waiting
}

// C delivers emitted values. The channel is closed by Stop.
func (v *Value[T]) C() <-chan T {
	return v.out
}

// Flush emits the waiting input now, as when the user presses enter.
func (v *Value[T]) Flush() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.waiting || v.stopped {
		return
	}
	n := v.pending
	v.cancelLocked()
	v.emitLocked(n)
}

// Stop drops any waiting input and closes C. Further Sets are ignored.
func (v *Value[T]) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.stopped {
		return
	}
	v.cancelLocked()
	v.stopped = true
	close(v.out)
}
