// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTicker_CallsOnEveryTick(t *testing.T) {
	var calls atomic.Int64
	tk := NewTicker(10*time.Millisecond, false, func(context.Context) { calls.Add(1) })

	tk.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	tk.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no calls after Stop")
}

func TestTicker_Immediate(t *testing.T) {
	var calls atomic.Int64
	tk := NewTicker(time.Hour, true, func(context.Context) { calls.Add(1) })

	tk.Start(context.Background())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	tk.Stop()
}

func TestTicker_RestartStopsPrevious(t *testing.T) {
	var calls atomic.Int64
	tk := NewTicker(5*time.Millisecond, false, func(context.Context) { calls.Add(1) })

	tk.Start(context.Background())
	tk.Start(context.Background())
	tk.Stop()
	// Stop without a running loop is a no-op.
	tk.Stop()
}

func TestTicker_ContextCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := NewTicker(5*time.Millisecond, false, func(context.Context) {})

	tk.Start(ctx)
	cancel()
	done := make(chan struct{})
	go func() {
		tk.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}
