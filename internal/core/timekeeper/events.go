package timekeeper

import "time"

// Kind identifies the current session.
type Kind string

const (
	KindWork  Kind = "work"
	KindBreak Kind = "break"
)

// Label returns the display name of the session kind.
func (kind Kind) Label() string {
	if kind == KindBreak {
		return "Break"
	}
	return "Work"
}

// SessionState is the timer position inside the current session.
type SessionState struct {
	Kind          Kind
	Elapsed       int
	Total         int
	CompletedSets int
	Paused        bool
}

// AnimationState tracks a running transition between sessions.
type AnimationState struct {
	Active   bool
	Progress int
}

// Snapshot is a copy of the full timer state handed to observers.
type Snapshot struct {
	Session   SessionState
	Animation AnimationState
}

// Remaining returns the seconds left in the current session, never negative.
func (snapshot Snapshot) Remaining() int {
	remaining := snapshot.Session.Total - snapshot.Session.Elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventTransitionStart EventType = "transition_start"
	EventTransitionFrame EventType = "transition_frame"
	EventSessionSwitch   EventType = "session_switch"
	EventReset           EventType = "reset"
	EventPause           EventType = "pause"
	EventConfigChange    EventType = "config_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
