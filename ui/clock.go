package ui

import (
	"fmt"
	"time"
)

// gameClock tracks elapsed play time. It starts on the first reveal, freezes
// while the game is paused and stops for good at a terminal state.
type gameClock struct {
	accumulated  time.Duration
	runningSince time.Time
	running      bool
}

func (clock *gameClock) resume() {
	if clock.running {
		return
	}
	clock.runningSince = time.Now()
	clock.running = true
}

func (clock *gameClock) halt() {
	if !clock.running {
		return
	}
	clock.accumulated += time.Since(clock.runningSince)
	clock.running = false
}

func (clock *gameClock) started() bool {
	return clock.running || clock.accumulated > 0
}

func (clock *gameClock) elapsed() time.Duration {
	if clock.running {
		return clock.accumulated + time.Since(clock.runningSince)
	}
	return clock.accumulated
}

func formatClock(elapsed time.Duration) string {
	seconds := int(elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
