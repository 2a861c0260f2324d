package schedule

import (
	"context"
	"sync"
	"time"
)

// Poster hands a callback to the event loop that owns application state.
// fyne.Do satisfies it in the desktop build.
type Poster func(func())

// Task fires a callback at a fixed interval on the event loop.
type Task struct {
	mu         sync.Mutex
	interval   time.Duration
	post       Poster
	run        func()
	cancel     context.CancelFunc
	generation uint64
}

// NewTask creates a stopped recurring task.
func NewTask(interval time.Duration, post Poster, run func()) *Task {
	if interval <= 0 {
		interval = time.Second
	}
	return &Task{
		interval: interval,
		post:     post,
		run:      run,
	}
}

// Start begins firing. A running task restarts its cadence.
func (task *Task) Start() {
	task.mu.Lock()
	if task.cancel != nil {
		task.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	task.cancel = cancel
	task.generation++
	generation := task.generation
	task.mu.Unlock()

	go task.loop(ctx, generation)
}

// Stop cancels the task. Callbacks already posted by the stopped run
// are dropped when they reach the event loop.
func (task *Task) Stop() {
	task.mu.Lock()
	defer task.mu.Unlock()
	if task.cancel != nil {
		task.cancel()
		task.cancel = nil
	}
	task.generation++
}

// Running reports whether the task is currently scheduled.
func (task *Task) Running() bool {
	task.mu.Lock()
	defer task.mu.Unlock()
	return task.cancel != nil
}

func (task *Task) loop(ctx context.Context, generation uint64) {
	ticker := time.NewTicker(task.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			task.post(func() {
				if task.current(generation) {
					task.run()
				}
			})
		}
	}
}

func (task *Task) current(generation uint64) bool {
	task.mu.Lock()
	defer task.mu.Unlock()
	return task.generation == generation
}
