package timekeeper

import (
	"time"

	"pomobar/internal/core/model"
)

// TransitionSteps is the number of animation steps between two sessions.
const TransitionSteps = 60

// Listener observes TimeKeeper events.
type Listener func(Event)

// TimeKeeper is the work/break session state machine.
//
// It is not safe for concurrent use: every method must run on the single
// event loop that also renders the bar. Driver posts its ticks there.
type TimeKeeper struct {
	config    model.TimerConfig
	session   SessionState
	animation AnimationState
	listeners []Listener
	now       func() time.Time
}

// New creates a TimeKeeper positioned at the start of a work session.
func New(config model.TimerConfig) *TimeKeeper {
	keeper := &TimeKeeper{
		config: config,
		now:    time.Now,
	}
	keeper.resetSession()
	return keeper
}

// Subscribe registers an observer called after every state change.
func (keeper *TimeKeeper) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	keeper.listeners = append(keeper.listeners, listener)
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	return Snapshot{Session: keeper.session, Animation: keeper.animation}
}

// Tick advances the session by one second.
// It returns true when this tick started a transition.
func (keeper *TimeKeeper) Tick() bool {
	if keeper.session.Paused || keeper.animation.Active {
		return false
	}

	keeper.session.Elapsed++
	if keeper.session.Elapsed >= keeper.session.Total {
		keeper.StartTransition()
		return true
	}

	keeper.emit(EventTick)
	return false
}

// Reset returns to the start of a work session and clears completed sets.
func (keeper *TimeKeeper) Reset() {
	keeper.resetSession()
	keeper.emit(EventReset)
}

// TogglePause flips the paused flag and returns the new value.
func (keeper *TimeKeeper) TogglePause() bool {
	keeper.session.Paused = !keeper.session.Paused
	keeper.emit(EventPause)
	return keeper.session.Paused
}

// StartTransition begins the session handoff animation.
// It does nothing if a transition is already playing.
func (keeper *TimeKeeper) StartTransition() {
	if keeper.animation.Active {
		return
	}
	keeper.animation = AnimationState{Active: true}
	keeper.emit(EventTransitionStart)
}

// StepTransition advances the animation by one frame.
// It returns true when the animation finished and the session was switched.
func (keeper *TimeKeeper) StepTransition() bool {
	if !keeper.animation.Active {
		return false
	}

	keeper.animation.Progress++
	if keeper.animation.Progress < TransitionSteps {
		keeper.emit(EventTransitionFrame)
		return false
	}

	keeper.animation = AnimationState{}
	keeper.SwitchSession()
	return true
}

// SwitchSession flips between work and break.
// Finishing a work session counts one completed set.
func (keeper *TimeKeeper) SwitchSession() {
	keeper.session.Elapsed = 0
	if keeper.session.Kind == KindWork {
		keeper.session.CompletedSets++
		keeper.session.Kind = KindBreak
	} else {
		keeper.session.Kind = KindWork
	}
	keeper.session.Total = keeper.totalFor(keeper.session.Kind)
	keeper.emit(EventSessionSwitch)
}

// UpdateConfig applies new durations to the running session.
// Total follows the current session kind, so a break keeps the break length.
func (keeper *TimeKeeper) UpdateConfig(config model.TimerConfig) {
	keeper.config = config
	keeper.session.Total = keeper.totalFor(keeper.session.Kind)
	keeper.emit(EventConfigChange)
}

func (keeper *TimeKeeper) resetSession() {
	keeper.animation = AnimationState{}
	keeper.session = SessionState{
		Kind:  KindWork,
		Total: keeper.config.WorkSeconds(),
	}
}

func (keeper *TimeKeeper) totalFor(kind Kind) int {
	if kind == KindBreak {
		return keeper.config.BreakSeconds()
	}
	return keeper.config.WorkSeconds()
}

func (keeper *TimeKeeper) emit(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.Snapshot(),
		At:       keeper.now(),
	}
	for _, listener := range keeper.listeners {
		listener(event)
	}
}
