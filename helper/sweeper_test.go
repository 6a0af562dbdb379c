package helper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPendingSweeperDisabledByDefault(t *testing.T) {
	called := false
	if err := StartPendingSweeper(0, func(context.Context) (int, error) { called = true; return 0, nil }); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer StopPendingSweeper()
	if sweepScheduler != nil || called {
		t.Fatalf("zero interval must not schedule anything")
	}
}

func TestPendingSweeperRuns(t *testing.T) {
	var runs atomic.Int32
	err := StartPendingSweeper(20*time.Millisecond, func(context.Context) (int, error) {
		runs.Add(1)
		return 1, nil
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer StopPendingSweeper()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("sweep never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
