package screens

import (
	"time"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
)

const maxAlpha = 255

// Splash fades the studio art in, then moves on to the title screen.
type Splash struct {
	statemachine.Base
	image    sprite.Image
	timeout  time.Duration
	fadeStep int
	alpha    int
	now      time.Duration
}

// NewSplash creates the opening splash scene.
func NewSplash(env *registry.Env) *Splash {
	cfg := env.Cfg().Splash
	s := &Splash{
		image:    artImage(splashArt),
		timeout:  cfg.Timeout,
		fadeStep: cfg.FadeStep,
	}
	s.SetNext(TitleID)
	return s
}

// Startup restarts the fade.
func (s *Splash) Startup(now time.Duration, persist statemachine.Persist) {
	s.Base.Startup(now, persist)
	s.alpha = 0
	s.now = now
}

// HandleEvent skips the splash on any key or click; Esc quits.
func (s *Splash) HandleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventQuit:
		s.Exit()
	case core.EventKey:
		if ev.Key == "esc" {
			s.Exit()
			return
		}
		s.Finish(TitleID)
	case core.EventMouseUp:
		s.Finish(TitleID)
	}
}

// Update advances the fade and times out.
func (s *Splash) Update(f core.Frame) {
	s.now = f.Now
	s.alpha = min(s.alpha+s.fadeStep, maxAlpha)
	if s.now-s.StartTime() > s.timeout {
		s.Finish(TitleID)
	}
}

// Alpha returns the current fade level out of 255.
func (s *Splash) Alpha() int {
	return s.alpha
}

// Render draws the art centered in its current shade.
func (s *Splash) Render(dst *core.Screen) {
	dst.Clear()
	r := core.RectCentered(dst.Width()/2, dst.Height()/2, s.image.Width(), s.image.Height())
	s.image.Draw(dst, r.X, r.Y, core.GrayAlpha(s.alpha))
}
