package sweep

import (
	"context"
	"testing"
	"time"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.TickInterval = time.Millisecond
	return cfg
}

func waitTicks(t *testing.T, task *Task, n uint64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for task.Ticks() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %d ticks, got %d", n, task.Ticks())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStartStop(t *testing.T) {
	r := New(400, 400, fastConfig(), nil)
	task := r.Start(context.Background())

	waitTicks(t, task, 3)
	if !r.Sweeping() {
		t.Error("Expected radar to be sweeping")
	}

	task.Stop()
	select {
	case <-task.Done():
	default:
		t.Fatal("Expected Done to be closed after Stop")
	}
	if r.Sweeping() {
		t.Error("Expected radar to stop sweeping")
	}

	// No ticks after Stop returns
	ticks := task.Ticks()
	time.Sleep(10 * time.Millisecond)
	if task.Ticks() != ticks {
		t.Errorf("Expected tick count frozen at %d, got %d", ticks, task.Ticks())
	}

	// Stop is idempotent
	task.Stop()
}

func TestStartTwiceReturnsRunningTask(t *testing.T) {
	r := New(400, 400, fastConfig(), nil)
	first := r.Start(context.Background())
	defer first.Stop()

	second := r.Start(context.Background())
	if first != second {
		t.Error("Expected second Start to return the running task")
	}
}

func TestRestartAfterStop(t *testing.T) {
	r := New(400, 400, fastConfig(), nil)
	first := r.Start(context.Background())
	first.Stop()

	second := r.Start(context.Background())
	defer second.Stop()
	if first == second {
		t.Error("Expected a fresh task after Stop")
	}
	waitTicks(t, second, 1)
}

func TestContextCancelStops(t *testing.T) {
	r := New(400, 400, fastConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	task := r.Start(ctx)

	waitTicks(t, task, 1)
	cancel()

	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Expected task to exit after context cancel")
	}
	task.Stop()
}

func TestTaskIlluminatesWhileRunning(t *testing.T) {
	cfg := fastConfig()
	cfg.Period = 200 * time.Millisecond
	cfg.IndicatorSpacing = 5 * time.Millisecond
	r := New(400, 400, cfg, nil)

	lit := make(chan Point, 16)
	r.OnIlluminate(func(p Point) {
		select {
		case lit <- p:
		default:
		}
	})
	r.UpdatePoints([]Coord{coordAt(135)})

	task := r.Start(context.Background())
	defer task.Stop()

	select {
	case p := <-lit:
		if p.Bearing != 135 {
			t.Errorf("Expected bearing 135, got %d", p.Bearing)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Expected the point to be illuminated within a few rotations")
	}
}
