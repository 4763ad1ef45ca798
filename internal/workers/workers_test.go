// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker records Start and Stop calls into a shared log.
type mockWorker struct {
	id  int
	log *[]int
}

func (m *mockWorker) Start(context.Context) { *m.log = append(*m.log, m.id) }
func (m *mockWorker) Stop()                 { *m.log = append(*m.log, -m.id) }

func TestWorkers_StartStop_Order(t *testing.T) {
	var log []int
	ws := NewWorkers(
		&mockWorker{id: 1, log: &log},
		&mockWorker{id: 2, log: &log},
		&mockWorker{id: 3, log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	expected := []int{1, 2, 3, -3, -2, -1}
	if len(log) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, log)
	}
	for i, v := range expected {
		if log[i] != v {
			t.Errorf("expected log[%d]=%d, got %d", i, v, log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}
