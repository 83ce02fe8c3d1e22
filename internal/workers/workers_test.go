// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(_ context.Context) { m.runCount++ }
func (m *mockWorker) Stop()                 { m.stopCount++ }

func TestWorkers_RunAndStop_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

// orderWorker records its index into the shared order slice.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(_ context.Context) { *o.order = append(*o.order, o.id) }
func (o *orderWorker) Stop()                 { *o.order = append(*o.order, -o.id) }

func TestWorkers_RunOrder_StopReversed(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Run(context.Background())
	ws.Stop()

	want := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}
