// Package tui hosts the arcade in a Bubble Tea program: it runs the scene
// state machine on a fixed tick, feeds it terminal input and draws the
// render area letterboxed in the terminal. It also serves the same app
// over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a scene update.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Clock returns the current time. Tests substitute a fake one.
type Clock func() time.Time

// fpsCounter measures updates per second over one-second windows.
type fpsCounter struct {
	frames int
	since  time.Time
	fps    float64
}

// tick counts a frame at now and reports whether a new reading is ready.
func (c *fpsCounter) tick(now time.Time) bool {
	if c.since.IsZero() {
		c.since = now
		return false
	}
	c.frames++
	elapsed := now.Sub(c.since)
	if elapsed < time.Second {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.since = now
	return true
}
