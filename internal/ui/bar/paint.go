package bar

import (
	"fmt"
	"image/color"

	"pomobar/internal/core/timekeeper"
	"pomobar/internal/ui/animation"
)

// Colors holds the configured fill colour per session kind.
type Colors struct {
	Work  color.NRGBA
	Break color.NRGBA
}

// For returns the fill colour of kind.
func (colors Colors) For(kind timekeeper.Kind) color.NRGBA {
	if kind == timekeeper.KindBreak {
		return colors.Break
	}
	return colors.Work
}

// Frame is everything drawn on the bar for one repaint.
// Readout is empty while a transition plays.
type Frame struct {
	FillWidth int
	FillColor color.NRGBA
	Readout   string
}

// Compute maps timer state onto a drawable frame for a bar of width pixels.
func Compute(snapshot timekeeper.Snapshot, width int, colors Colors) Frame {
	if snapshot.Animation.Active {
		sweep := animation.TransitionFrame(width, snapshot.Animation.Progress)
		return Frame{FillWidth: sweep.Width, FillColor: sweep.Color}
	}

	return Frame{
		FillWidth: ProgressWidth(width, snapshot.Session.Elapsed, snapshot.Session.Total),
		FillColor: colors.For(snapshot.Session.Kind),
		Readout:   Readout(snapshot),
	}
}

// ProgressWidth returns width*elapsed/total truncated to whole pixels.
// An empty session renders as a full bar.
func ProgressWidth(width, elapsed, total int) int {
	if width <= 0 || elapsed <= 0 {
		return 0
	}
	if total <= 0 || elapsed >= total {
		return width
	}
	return int(float64(width) * (float64(elapsed) / float64(total)))
}

// Readout formats "<Work|Break> MM:SS | Sets: N" with the remaining time.
func Readout(snapshot timekeeper.Snapshot) string {
	remaining := snapshot.Remaining()
	return fmt.Sprintf("%s %02d:%02d | Sets: %d",
		snapshot.Session.Kind.Label(),
		remaining/60,
		remaining%60,
		snapshot.Session.CompletedSets,
	)
}

// FontSize scales the readout with the bar height.
func FontSize(height float32) float32 {
	return float32(int(height / 2))
}
