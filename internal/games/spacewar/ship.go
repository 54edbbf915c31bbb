package spacewar

import (
	"math"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
)

// rowAspect is how many columns of distance one row covers.
// Terminal cells are about twice as tall as they are wide.
const rowAspect = 2.0

// Headings in sheet order, clockwise from east. Screen y grows downward so
// angles grow clockwise too.
const headings = 8

// Controls are the flight inputs held during one update.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
}

// Ship is the player's craft. Its position is kept in float so slow
// movement accumulates across updates.
type Ship struct {
	Rect         core.Rect
	Velocity     core.Vec2 // columns per second
	Angle        float64   // degrees, 0 is east
	TopSpeed     float64
	Acceleration float64
	AngularSpeed float64

	pos    core.Vec2
	frames []sprite.Image
}

// NewShip creates a ship pointing up. frames holds one image per heading.
func NewShip(frames []sprite.Image, topSpeed, angularSpeed float64) *Ship {
	w, h := 1, 1
	if len(frames) > 0 {
		w, h = frames[0].Width(), frames[0].Height()
	}
	return &Ship{
		Rect:         core.NewRect(0, 0, w, h),
		Angle:        270,
		TopSpeed:     topSpeed,
		Acceleration: topSpeed * 2,
		AngularSpeed: angularSpeed,
		frames:       frames,
	}
}

// SetMidBottom places the ship so the middle of its bottom edge is at (x, y).
func (s *Ship) SetMidBottom(x, y int) {
	s.Rect.X = x - s.Rect.W/2
	s.Rect.Y = y - s.Rect.H
	s.syncPos()
}

// Pos returns the float center of the ship.
func (s *Ship) Pos() core.Vec2 {
	return s.pos
}

// Center returns the cell center of the ship.
func (s *Ship) Center() core.Point {
	x, y := s.Rect.Center()
	return core.Point{X: x, Y: y}
}

func (s *Ship) syncPos() {
	x, y := s.Rect.Center()
	s.pos = core.Vec2{X: float64(x), Y: float64(y)}
}

// Update steers and moves the ship, keeping it inside bounds.
func (s *Ship) Update(c Controls, bounds core.Rect, dt float64) {
	s.rotate(c, dt)
	s.thrust(c, dt)

	s.pos.X += s.Velocity.X * dt
	s.pos.Y += s.Velocity.Y * dt / rowAspect
	s.Rect = core.RectCentered(int(math.Round(s.pos.X)), int(math.Round(s.pos.Y)), s.Rect.W, s.Rect.H)
	if !bounds.ContainsRect(s.Rect) {
		s.onBoundaryCollision(bounds)
	}
}

func (s *Ship) rotate(c Controls, dt float64) {
	turn := 0.0
	if c.Right {
		turn++
	}
	if c.Left {
		turn--
	}
	if turn == 0 {
		return
	}
	s.Angle = math.Mod(s.Angle+s.AngularSpeed*turn*dt, 360)
	if s.Angle < 0 {
		s.Angle += 360
	}
}

func (s *Ship) thrust(c Controls, dt float64) {
	if !c.Thrust {
		return
	}
	rads := s.Angle * math.Pi / 180
	s.Velocity.X += s.Acceleration * math.Cos(rads) * dt
	s.Velocity.Y += s.Acceleration * math.Sin(rads) * dt
	s.restrictSpeed()
}

// restrictSpeed caps the speed while keeping the direction of motion,
// which may differ from the way the ship points.
func (s *Ship) restrictSpeed() {
	if s.Velocity.Len() <= s.TopSpeed {
		return
	}
	angle := math.Atan2(s.Velocity.Y, s.Velocity.X)
	s.Velocity = core.Vec2{X: s.TopSpeed * math.Cos(angle), Y: s.TopSpeed * math.Sin(angle)}
}

// onBoundaryCollision stops motion along each axis the ship left bounds on.
func (s *Ship) onBoundaryCollision(bounds core.Rect) {
	if s.Rect.X < bounds.X || s.Rect.Right() > bounds.Right() {
		s.Velocity.X = 0
	}
	if s.Rect.Y < bounds.Y || s.Rect.Bottom() > bounds.Bottom() {
		s.Velocity.Y = 0
	}
	s.Rect = s.Rect.ClampInside(bounds)
	s.syncPos()
}

// Heading returns the sheet index of the frame closest to the ship's angle.
func (s *Ship) Heading() int {
	return int(math.Round(s.Angle/(360/headings))) % headings
}

// Image returns the frame for the current heading.
func (s *Ship) Image() sprite.Image {
	if len(s.frames) == 0 {
		return sprite.New(s.Rect.W, s.Rect.H)
	}
	return s.frames[s.Heading()%len(s.frames)]
}
