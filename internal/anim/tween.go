package anim

import (
	"fmt"
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// InOutCubic is a steeper InOutQuad.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// InOutQuint is the lobby's page-scroll curve.
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

var easings = map[string]Easing{
	"linear":       Linear,
	"in_quad":      InQuad,
	"out_quad":     OutQuad,
	"in_out_quad":  InOutQuad,
	"in_out_cubic": InOutCubic,
	"in_out_quint": InOutQuint,
}

// EasingByName looks up an easing by its config name.
func EasingByName(name string) (Easing, error) {
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("anim: unknown transition %q", name)
	}
	return e, nil
}

// Tween interpolates a value from one number to another over a duration.
type Tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	onUpdate func(v float64)
}

// NewTween creates a tween. A nil easing is linear.
func NewTween(from, to float64, duration time.Duration, ease Easing) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease}
}

// OnUpdate registers a callback invoked with the value after every Update.
func (t *Tween) OnUpdate(fn func(v float64)) *Tween {
	t.onUpdate = fn
	return t
}

// Update advances the tween by dt and returns the new value.
func (t *Tween) Update(dt time.Duration) float64 {
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	v := t.Value()
	if t.onUpdate != nil {
		t.onUpdate(v)
	}
	return v
}

// Value returns the current value.
func (t *Tween) Value() float64 {
	if t.duration <= 0 {
		return t.to
	}
	p := float64(t.elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*t.ease(p)
}

// Done reports whether the tween reached its end value.
func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Group updates a set of tweens together and drops finished ones.
type Group struct {
	tweens []*Tween
}

// Add starts tracking tw.
func (g *Group) Add(tw *Tween) {
	g.tweens = append(g.tweens, tw)
}

// Update advances every running tween.
func (g *Group) Update(dt time.Duration) {
	running := g.tweens[:0]
	for _, tw := range g.tweens {
		tw.Update(dt)
		if !tw.Done() {
			running = append(running, tw)
		}
	}
	clear(g.tweens[len(running):])
	g.tweens = running
}

// Running reports whether any tween is still in progress.
func (g *Group) Running() bool {
	return len(g.tweens) > 0
}
