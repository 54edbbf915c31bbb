package spacewar

import (
	"math"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
)

// Star tiles for the three layers, nearest first.
var (
	frontStars = sprite.FromString(`
   *                  .
           .
 .                *
                          +
         *     .
    .                 .
`)
	midStars = sprite.FromString(`
  .          .
        +
.           .    .
     .
`)
	baseStars = sprite.FromString(`
 .      .
     .
`)
)

// Layer colors, nearest first.
var (
	frontColor = core.ColorWhite
	midColor   = core.Gray(14)
	baseColor  = core.Gray(7)
)

// Level is the star field the ship flies through. The front layer scrolls
// with the ship while the mid and base layers trail behind for depth.
type Level struct {
	World    core.Rect
	Viewport core.Rect
	Mid      core.Rect
	Base     core.Rect
	Ship     *Ship

	midFactor  float64
	baseFactor float64
	midTrue    core.Vec2
	baseTrue   core.Vec2

	front     sprite.Image
	midLayer  sprite.Image
	baseLayer sprite.Image
}

// NewLevel builds a world of the given size, places the ship startOffset
// rows above its bottom edge and centers the viewport on it.
func NewLevel(world core.Rect, viewport core.Rect, ship *Ship, startOffset int, midFactor, baseFactor float64) *Level {
	l := &Level{
		World:      world,
		Viewport:   viewport,
		Ship:       ship,
		midFactor:  midFactor,
		baseFactor: baseFactor,
		front:      sprite.Tile(world.W, world.H, frontStars),
		midLayer:   sprite.Tile(world.W, world.H, midStars),
		baseLayer:  sprite.Tile(world.W, world.H, baseStars),
	}
	cx, _ := world.Center()
	ship.SetMidBottom(cx, world.Bottom()-startOffset)

	l.updateViewport(true)
	l.Mid = l.Viewport
	l.midTrue = core.Vec2{X: float64(l.Mid.X), Y: float64(l.Mid.Y)}
	l.Base = l.Viewport
	l.baseTrue = core.Vec2{X: float64(l.Base.X), Y: float64(l.Base.Y)}
	return l
}

// Update moves the ship and then follows it with the viewport.
func (l *Level) Update(c Controls, dt float64) {
	l.Ship.Update(c, l.World, dt)
	l.updateViewport(false)
}

// updateViewport centers the viewport on the ship unless that would show
// past the edge of the world. The trailing layers move by a fraction of
// the change, except on the initial placement.
func (l *Level) updateViewport(start bool) {
	oldX, oldY := l.Viewport.Center()
	center := l.Ship.Center()
	l.Viewport = core.RectCentered(center.X, center.Y, l.Viewport.W, l.Viewport.H).ClampInside(l.World)
	if start {
		return
	}

	newX, newY := l.Viewport.Center()
	dx, dy := float64(newX-oldX), float64(newY-oldY)
	l.midTrue = l.midTrue.Add(core.Vec2{X: dx, Y: dy}.Scale(l.midFactor))
	l.Mid.X, l.Mid.Y = int(math.Round(l.midTrue.X)), int(math.Round(l.midTrue.Y))
	l.baseTrue = l.baseTrue.Add(core.Vec2{X: dx, Y: dy}.Scale(l.baseFactor))
	l.Base.X, l.Base.Y = int(math.Round(l.baseTrue.X)), int(math.Round(l.baseTrue.Y))
}

// Draw renders the layers back to front, then the ship.
func (l *Level) Draw(dst *core.Screen) {
	l.baseLayer.DrawView(dst, l.Base, baseColor)
	l.midLayer.DrawView(dst, l.Mid, midColor)
	l.front.DrawView(dst, l.Viewport, frontColor)

	img := l.Ship.Image()
	x, y := l.Ship.Rect.X-l.Viewport.X, l.Ship.Rect.Y-l.Viewport.Y
	for iy := 0; iy < img.Height(); iy++ {
		for ix := 0; ix < img.Width(); ix++ {
			// The hull hides the stars behind it.
			dst.SetColor(x+ix, y+iy, ' ', core.ColorDefault)
		}
	}
	img.Draw(dst, x, y, core.ColorCyan)
}
