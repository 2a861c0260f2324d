package schedule

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopClosed is returned when posting to a loop that has stopped.
var ErrLoopClosed = errors.New("event loop closed")

// Loop runs posted callbacks one at a time on a single goroutine.
// It stands in for a UI main loop when none is available.
type Loop struct {
	mu     sync.Mutex
	queue  chan func()
	done   chan struct{}
	closed bool
}

// NewLoop creates a loop with the given queue capacity.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 1
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run drains the queue until the context is cancelled or Close is called.
// The loop is closed when Run returns.
func (loop *Loop) Run(ctx context.Context) {
	defer loop.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case <-loop.done:
			return
		case fn := <-loop.queue:
			fn()
		}
	}
}

// Post queues a callback, blocking while the queue is full.
func (loop *Loop) Post(fn func()) {
	_ = loop.TryPost(fn)
}

// TryPost queues a callback or reports that the loop is closed.
func (loop *Loop) TryPost(fn func()) error {
	loop.mu.Lock()
	closed := loop.closed
	loop.mu.Unlock()
	if closed {
		return ErrLoopClosed
	}

	select {
	case loop.queue <- fn:
		return nil
	case <-loop.done:
		return ErrLoopClosed
	}
}

// Call runs fn on the loop and waits for it to finish.
func (loop *Loop) Call(fn func()) error {
	finished := make(chan struct{})
	if err := loop.TryPost(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-loop.done:
		return ErrLoopClosed
	}
}

// Close stops the loop. Pending callbacks are discarded.
func (loop *Loop) Close() {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	if loop.closed {
		return
	}
	loop.closed = true
	close(loop.done)
}
