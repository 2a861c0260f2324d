package timekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomobar/internal/core/model"
)

func pomodoroConfig() model.TimerConfig {
	return model.TimerConfig{Work: 25 * time.Minute, Break: 5 * time.Minute}
}

func tickN(keeper *TimeKeeper, count int) {
	for i := 0; i < count; i++ {
		keeper.Tick()
	}
}

func stepN(keeper *TimeKeeper, count int) {
	for i := 0; i < count; i++ {
		keeper.StepTransition()
	}
}

func TestNewStartsAtWork(t *testing.T) {
	keeper := New(pomodoroConfig())

	assert.Equal(t, SessionState{Kind: KindWork, Total: 1500}, keeper.Snapshot().Session)
	assert.False(t, keeper.Snapshot().Animation.Active)
}

func TestTickAdvancesElapsed(t *testing.T) {
	keeper := New(pomodoroConfig())

	tickN(keeper, 10)

	assert.Equal(t, 10, keeper.Snapshot().Session.Elapsed)
	assert.Equal(t, 1490, keeper.Snapshot().Remaining())
}

func TestTickWhilePausedIsInert(t *testing.T) {
	keeper := New(pomodoroConfig())
	tickN(keeper, 3)

	require.True(t, keeper.TogglePause())
	tickN(keeper, 100)
	assert.Equal(t, 3, keeper.Snapshot().Session.Elapsed)

	require.False(t, keeper.TogglePause())
	keeper.Tick()
	assert.Equal(t, 4, keeper.Snapshot().Session.Elapsed)
}

func TestResetFromAnyState(t *testing.T) {
	keeper := New(pomodoroConfig())
	tickN(keeper, 1500)
	stepN(keeper, TransitionSteps)
	tickN(keeper, 300)
	stepN(keeper, 10)
	keeper.TogglePause()
	require.True(t, keeper.Snapshot().Animation.Active)

	keeper.Reset()

	assert.Equal(t, Snapshot{
		Session: SessionState{Kind: KindWork, Elapsed: 0, Total: 1500, CompletedSets: 0, Paused: false},
	}, keeper.Snapshot())
}

func TestWorkSessionCompletesIntoBreak(t *testing.T) {
	keeper := New(pomodoroConfig())

	tickN(keeper, 1499)
	assert.False(t, keeper.Snapshot().Animation.Active)

	assert.True(t, keeper.Tick())
	assert.True(t, keeper.Snapshot().Animation.Active)
	assert.Equal(t, KindWork, keeper.Snapshot().Session.Kind)

	stepN(keeper, TransitionSteps)

	assert.Equal(t, SessionState{Kind: KindBreak, Elapsed: 0, Total: 300, CompletedSets: 1}, keeper.Snapshot().Session)
	assert.False(t, keeper.Snapshot().Animation.Active)
}

func TestTransitionTakesExactlySixtySteps(t *testing.T) {
	keeper := New(pomodoroConfig())
	switches := 0
	keeper.Subscribe(func(event Event) {
		if event.Type == EventSessionSwitch {
			switches++
		}
	})
	keeper.StartTransition()

	for step := 1; step < TransitionSteps; step++ {
		assert.False(t, keeper.StepTransition())
		assert.Equal(t, step, keeper.Snapshot().Animation.Progress)
	}
	assert.Equal(t, 0, switches)

	assert.True(t, keeper.StepTransition())
	assert.Equal(t, 1, switches)
	assert.Equal(t, 0, keeper.Snapshot().Session.Elapsed)

	assert.False(t, keeper.StepTransition())
	assert.Equal(t, 1, switches)
}

func TestTickDuringTransitionIsInert(t *testing.T) {
	keeper := New(model.TimerConfig{Work: time.Minute, Break: time.Minute})
	tickN(keeper, 60)
	require.True(t, keeper.Snapshot().Animation.Active)

	assert.False(t, keeper.Tick())
	assert.Equal(t, 60, keeper.Snapshot().Session.Elapsed)
}

func TestCompletedSetsCountOnlyWork(t *testing.T) {
	keeper := New(model.TimerConfig{Work: 2 * time.Minute, Break: time.Minute})

	for cycle := 1; cycle <= 3; cycle++ {
		tickN(keeper, 120)
		stepN(keeper, TransitionSteps)
		assert.Equal(t, KindBreak, keeper.Snapshot().Session.Kind)
		assert.Equal(t, cycle, keeper.Snapshot().Session.CompletedSets)

		tickN(keeper, 60)
		stepN(keeper, TransitionSteps)
		assert.Equal(t, KindWork, keeper.Snapshot().Session.Kind)
		assert.Equal(t, cycle, keeper.Snapshot().Session.CompletedSets)
		assert.Equal(t, 120, keeper.Snapshot().Session.Total)
	}
}

func TestZeroLengthSessionTransitionsOnFirstTick(t *testing.T) {
	keeper := New(model.TimerConfig{Work: 0, Break: time.Minute})

	assert.True(t, keeper.Tick())
	assert.Equal(t, 0, keeper.Snapshot().Remaining())
}

func TestUpdateConfigRederivesTotal(t *testing.T) {
	keeper := New(pomodoroConfig())
	tickN(keeper, 1500)
	stepN(keeper, TransitionSteps)

	keeper.UpdateConfig(model.TimerConfig{Work: 50 * time.Minute, Break: 10 * time.Minute})

	assert.Equal(t, KindBreak, keeper.Snapshot().Session.Kind)
	assert.Equal(t, 600, keeper.Snapshot().Session.Total)

	keeper.Reset()
	assert.Equal(t, 3000, keeper.Snapshot().Session.Total)
}

func TestListenersReceiveEvents(t *testing.T) {
	keeper := New(model.TimerConfig{Work: 2 * time.Second, Break: time.Second})
	var types []EventType
	keeper.Subscribe(func(event Event) {
		types = append(types, event.Type)
	})

	keeper.Tick()
	keeper.Tick()
	keeper.StepTransition()
	keeper.TogglePause()
	keeper.Reset()

	assert.Equal(t, []EventType{
		EventTick,
		EventTransitionStart,
		EventTransitionFrame,
		EventPause,
		EventReset,
	}, types)
}
