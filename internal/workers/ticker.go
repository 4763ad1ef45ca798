// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// Ticker calls fn every interval in a background goroutine. With
// immediate set the first call happens right after Start.
type Ticker struct {
	fn        func(context.Context)
	interval  time.Duration
	immediate bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTicker(interval time.Duration, immediate bool, fn func(context.Context)) *Ticker {
	return &Ticker{fn: fn, interval: interval, immediate: immediate}
}

// Start stops a previous loop, then launches a new one. The loop exits
// when ctx is cancelled or Stop is called. A non-positive interval panics
// in time.NewTicker, so callers must default it.
func (t *Ticker) Start(ctx context.Context) {
	t.Stop()

	t.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		if t.immediate {
			t.fn(loopCtx)
		}

		tick := time.NewTicker(t.interval)
		defer tick.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-tick.C:
				t.fn(loopCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. It is a no-op when the
// loop is not running.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}
