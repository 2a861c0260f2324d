package timekeeper

import (
	"time"

	"pomobar/internal/core/schedule"
)

// DriverConfig contains the cadence of the two periodic drivers.
type DriverConfig struct {
	TickInterval       time.Duration
	TransitionInterval time.Duration
}

// DefaultDriverConfig returns the one-second tick and 50ms transition cadence.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		TickInterval:       time.Second,
		TransitionInterval: 50 * time.Millisecond,
	}
}

// Driver runs a TimeKeeper from recurring tasks posted to the event loop.
// Its methods must be called on that same loop.
type Driver struct {
	keeper     *TimeKeeper
	tick       *schedule.Task
	transition *schedule.Task
}

// NewDriver creates a stopped driver for keeper.
func NewDriver(keeper *TimeKeeper, post schedule.Poster, config DriverConfig) *Driver {
	defaults := DefaultDriverConfig()
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	if config.TransitionInterval <= 0 {
		config.TransitionInterval = defaults.TransitionInterval
	}

	driver := &Driver{keeper: keeper}
	driver.tick = schedule.NewTask(config.TickInterval, post, driver.onTick)
	driver.transition = schedule.NewTask(config.TransitionInterval, post, driver.onStep)
	return driver
}

// Start launches the tick driver.
func (driver *Driver) Start() {
	driver.tick.Start()
	if driver.keeper.Snapshot().Animation.Active {
		driver.transition.Start()
	}
}

// Stop halts both drivers.
func (driver *Driver) Stop() {
	driver.tick.Stop()
	driver.transition.Stop()
}

// Reset stops ticking, resets the session and restarts ticking.
func (driver *Driver) Reset() {
	driver.Stop()
	driver.keeper.Reset()
	driver.tick.Start()
}

// TogglePause flips the pause flag. The tick driver keeps running.
func (driver *Driver) TogglePause() bool {
	return driver.keeper.TogglePause()
}

func (driver *Driver) onTick() {
	if driver.keeper.Tick() {
		driver.transition.Start()
	}
}

func (driver *Driver) onStep() {
	if driver.keeper.StepTransition() {
		driver.transition.Stop()
	}
}
