package model

import "time"

// TimerConfig contains the configured session lengths.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration
}

// WorkSeconds returns the work session length in whole seconds.
func (config TimerConfig) WorkSeconds() int {
	return wholeSeconds(config.Work)
}

// BreakSeconds returns the break session length in whole seconds.
func (config TimerConfig) BreakSeconds() int {
	return wholeSeconds(config.Break)
}

func wholeSeconds(value time.Duration) int {
	if value <= 0 {
		return 0
	}
	return int(value / time.Second)
}
