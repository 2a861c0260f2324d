package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsCallbacksInOrder(t *testing.T) {
	loop := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	var order []int
	for i := 0; i < 5; i++ {
		value := i
		loop.Post(func() { order = append(order, value) })
	}
	require.NoError(t, loop.Call(func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	loop.Close()
}

func TestLoopRejectsAfterClose(t *testing.T) {
	loop := NewLoop(1)
	loop.Close()
	loop.Close()

	assert.ErrorIs(t, loop.TryPost(func() {}), ErrLoopClosed)
	assert.ErrorIs(t, loop.Call(func() {}), ErrLoopClosed)
}

func TestTaskFiresUntilStopped(t *testing.T) {
	var count atomic.Int32
	direct := func(fn func()) { fn() }
	task := NewTask(time.Millisecond, direct, func() { count.Add(1) })

	assert.False(t, task.Running())
	task.Start()
	assert.True(t, task.Running())
	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	task.Stop()
	assert.False(t, task.Running())
	time.Sleep(5 * time.Millisecond)
	stopped := count.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, count.Load())
}

func TestTaskDropsCallbacksFromStoppedRun(t *testing.T) {
	var queued []func()
	capture := make(chan func(), 16)
	var ran atomic.Int32
	task := NewTask(time.Millisecond, func(fn func()) { capture <- fn }, func() { ran.Add(1) })

	task.Start()
	queued = append(queued, <-capture)
	task.Stop()

	for _, fn := range queued {
		fn()
	}
	assert.Equal(t, int32(0), ran.Load())
}

func TestCallReturnsWhenRunContextEnds(t *testing.T) {
	loop := NewLoop(1)
	result := make(chan error, 1)
	go func() {
		result <- loop.Call(func() {})
	}()
	require.Eventually(t, func() bool { return len(loop.queue) == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loop.Run(ctx)

	select {
	case <-result:
	case <-time.After(time.Second):
		t.Fatal("Call still waiting after Run returned")
	}
	assert.ErrorIs(t, loop.TryPost(func() {}), ErrLoopClosed)
}
