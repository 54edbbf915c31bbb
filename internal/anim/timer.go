// Package anim provides time-based helpers for scenes: tick timers,
// frame animations and eased tweens.
package anim

import "time"

// Timer fires once immediately and then every delay.
type Timer struct {
	delay   time.Duration
	ticks   int
	count   int
	last    time.Duration
	started bool
	done    bool
}

// NewTimer creates a timer. ticks limits how many times it fires after the
// first check before it is done; -1 means unlimited.
func NewTimer(delay time.Duration, ticks int) *Timer {
	return &Timer{delay: delay, ticks: ticks}
}

// CheckTick reports whether a tick's worth of time has passed.
// The first call always returns true.
func (t *Timer) CheckTick(now time.Duration) bool {
	if !t.started {
		t.started = true
		t.last = now
		return true
	}
	if t.done || now-t.last <= t.delay {
		return false
	}

	t.count++
	t.last = now
	if t.ticks != -1 && t.count >= t.ticks {
		t.done = true
	}
	return true
}

// Done reports whether the tick limit was reached.
func (t *Timer) Done() bool {
	return t.done
}

// Reset returns the timer to its initial state.
func (t *Timer) Reset() {
	t.count = 0
	t.started = false
	t.done = false
}

// Anim cycles through frames at a fixed rate.
type Anim[T any] struct {
	frames    []T
	interval  time.Duration
	loops     int
	frame     int
	loopCount int
	last      time.Duration
	started   bool
	done      bool
}

// NewAnim creates an animation over frames at fps. loops is the number of
// full cycles before it stops on the last frame; -1 loops forever.
func NewAnim[T any](frames []T, fps float64, loops int) *Anim[T] {
	interval := time.Duration(float64(time.Second) / fps)
	return &Anim[T]{frames: frames, interval: interval, loops: loops}
}

// Next advances the frame if enough time has elapsed and returns the
// current frame.
func (a *Anim[T]) Next(now time.Duration) T {
	if !a.started {
		a.started = true
		a.last = now
	}
	if !a.done && now-a.last > a.interval {
		a.frame = (a.frame + 1) % len(a.frames)
		if a.frame == 0 {
			a.loopCount++
			if a.loops != -1 && a.loopCount >= a.loops {
				a.done = true
				a.frame = len(a.frames) - 1
			}
		}
		a.last = now
	}
	return a.frames[a.frame]
}

// Frame returns the current frame index.
func (a *Anim[T]) Frame() int {
	return a.frame
}

// Done reports whether the animation finished looping.
func (a *Anim[T]) Done() bool {
	return a.done
}

// Reset rewinds the animation.
func (a *Anim[T]) Reset() {
	a.frame = 0
	a.loopCount = 0
	a.started = false
	a.done = false
}
