package bar

import "time"

// DoubleClickWindow is the longest gap between two clicks of a double click.
const DoubleClickWindow = 250 * time.Millisecond

// ClickDetector pairs single clicks into double clicks.
type ClickDetector struct {
	window  time.Duration
	armed   bool
	firstAt time.Time
}

// NewClickDetector creates a detector; a non-positive window uses the default.
func NewClickDetector(window time.Duration) *ClickDetector {
	if window <= 0 {
		window = DoubleClickWindow
	}
	return &ClickDetector{window: window}
}

// Click records a click at now and reports whether it completed a double click.
func (detector *ClickDetector) Click(now time.Time) bool {
	if detector.armed && now.Sub(detector.firstAt) <= detector.window {
		detector.armed = false
		return true
	}
	detector.armed = true
	detector.firstAt = now
	return false
}
