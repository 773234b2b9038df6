package sweep

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-radar/core"
)

// Task is the running sweep loop, stopped by Stop or by cancelling the context passed to Start
type Task struct {
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	ticks    atomic.Uint64
}

// Stop halts the loop and waits for the in-flight tick to finish
func (t *Task) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	<-t.done
}

// Done is closed once the loop has exited
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Ticks returns the number of completed polling cycles
func (t *Task) Ticks() uint64 {
	return t.ticks.Load()
}

// Start moves the radar into sweeping mode
// A radar already sweeping returns its running task
func (r *Radar) Start(ctx context.Context) *Task {
	r.taskMu.Lock()
	defer r.taskMu.Unlock()

	if r.task != nil {
		select {
		case <-r.task.done:
		default:
			return r.task
		}
	}

	t := &Task{
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	r.task = t
	core.Go(func() { r.loop(ctx, t) })
	return t
}

// Sweeping reports whether a tick task is running
func (r *Radar) Sweeping() bool {
	r.taskMu.Lock()
	defer r.taskMu.Unlock()
	if r.task == nil {
		return false
	}
	select {
	case <-r.task.done:
		return false
	default:
		return true
	}
}

// loop ticks at the configured cadence; a single goroutine means ticks never overlap
func (r *Radar) loop(ctx context.Context, t *Task) {
	defer close(t.done)

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopChan:
			return
		case <-ticker.C:
			r.Tick(r.clock.Now())
			t.ticks.Add(1)
		}
	}
}
