package snake

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/arcade-collab/internal/config"
	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
	"github.com/vovakirdan/arcade-collab/internal/ui"
)

// Nested state names.
const (
	stateStartup = "STARTUP"
	stateGame    = "GAME"
	stateDead    = "DEAD"
)

// Persist keys.
const (
	persistScreen = "screen"
	persistScore  = "score"
)

// KeyMap defines the steering keys.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// DefaultKeyMap steers with the arrows or WASD.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
	}
}

// Direction maps a key event to a direction.
func (k KeyMap) Direction(ev core.Event) (Direction, bool) {
	switch {
	case key.Matches(ev, k.Up):
		return DirUp, true
	case key.Matches(ev, k.Down):
		return DirDown, true
	case key.Matches(ev, k.Left):
		return DirLeft, true
	case key.Matches(ev, k.Right):
		return DirRight, true
	}
	return 0, false
}

// anyKey shows a title over a blank screen or the last game frame and waits
// for a key.
type anyKey struct {
	statemachine.Base
	title  *ui.Label
	anykey *ui.FlashingText
	screen *core.Screen
	final  bool
}

func newAnyKey(title string, final bool, cfg *config.Config) *anyKey {
	cx := cfg.Display.Width / 2
	return &anyKey{
		title:  ui.NewLabel(title, ui.MidTop, core.Point{X: cx, Y: 3}, core.ColorWhite),
		anykey: ui.NewFlashingText(cfg.Credits.Prompt, ui.Center, core.Point{X: cx, Y: cfg.Display.Height - 4}, core.ColorWhite, cfg.Title.BlinkInterval),
		final:  final,
	}
}

func (a *anyKey) Startup(now time.Duration, persist statemachine.Persist) {
	a.Base.Startup(now, persist)
	a.screen, _ = a.Persisted()[persistScreen].(*core.Screen)
}

// HandleEvent starts the game, or on the death screen ends the run.
func (a *anyKey) HandleEvent(ev core.Event) {
	if !ev.IsKey() {
		return
	}
	if a.final {
		a.Exit()
		return
	}
	a.Finish(stateGame)
}

func (a *anyKey) Update(f core.Frame) {
	a.anykey.Update(f.Now)
}

func (a *anyKey) Render(dst *core.Screen) {
	dst.Clear()
	if a.screen != nil {
		dst.Blit(a.screen, 0, 0)
	}
	a.title.Draw(dst)
	a.anykey.Draw(dst)
}

// play is the running game. Its board is rebuilt on cleanup so every visit
// starts a fresh run.
type play struct {
	statemachine.Base
	env        *registry.Env
	cfg        config.SnakeConfig
	width      int
	height     int
	keys       KeyMap
	difficulty *config.DifficultyManager
	board      *Board
	now        time.Duration
}

func newPlay(env *registry.Env) *play {
	cfg := env.Cfg()
	p := &play{
		env:        env,
		cfg:        cfg.Snake,
		width:      cfg.Display.Width,
		height:     cfg.Display.Height,
		keys:       DefaultKeyMap(),
		difficulty: config.NewDifficultyManager(cfg.Snake.Difficulty),
	}
	p.reset()
	return p
}

// boardSize is the render area minus a one-cell border.
func (p *play) boardSize() (int, int) {
	cw := p.cfg.CellWidth
	return (p.width - 2*cw) / cw, p.height - 2
}

func (p *play) reset() {
	w, h := p.boardSize()
	p.board = NewBoard(w, h, p.cfg.GrowthPerApple, p.cfg.DirectionQueue, p.env.Rand())
}

func (p *play) Startup(now time.Duration, persist statemachine.Persist) {
	p.Base.Startup(now, persist)
	p.now = now
}

// Cleanup hands the final frame and score to the death screen and resets
// the board for the next run.
func (p *play) Cleanup() statemachine.Persist {
	last := core.NewScreen(p.width, p.height)
	p.Render(last)

	persist := p.Persisted()
	persist[persistScreen] = last
	persist[persistScore] = p.board.Score
	p.reset()
	return p.Base.Cleanup()
}

func (p *play) HandleEvent(ev core.Event) {
	if d, ok := p.keys.Direction(ev); ok {
		p.board.Snake.Queue(d)
	}
}

// Speed returns the current snake speed in cells per second.
func (p *play) Speed() float64 {
	seconds := int((p.now - p.StartTime()) / time.Second)
	return p.difficulty.Speed(p.cfg.Speed, p.board.Score, seconds)
}

func (p *play) Update(f core.Frame) {
	p.now = f.Now
	p.board.Snake.Update(f.Now, p.Speed())
	p.board.CheckCollisions()
	if p.board.Snake.Dead {
		p.env.RecordPlay(ID, p.board.Score)
		p.Finish(stateDead)
	}
}

// cell converts a board position to screen coordinates.
func (p *play) cell(c core.Point) (int, int) {
	cw := p.cfg.CellWidth
	return cw + c.X*cw, 1 + c.Y
}

func (p *play) drawCell(dst *core.Screen, c core.Point, r rune, col core.Color) {
	x, y := p.cell(c)
	for i := 0; i < p.cfg.CellWidth; i++ {
		dst.SetColor(x+i, y, r, col)
	}
}

func (p *play) Render(dst *core.Screen) {
	dst.Clear()
	b := p.board
	p.drawCell(dst, b.Apple, '●', core.ColorTomato)
	for w := range b.Walls {
		p.drawCell(dst, w, '▓', core.ColorSlateGrey)
	}
	for _, c := range b.Snake.Body {
		p.drawCell(dst, c, '█', core.ColorLimeGreen)
	}
	p.drawCell(dst, b.Snake.Head(), '█', core.ColorDarkGreen)

	dst.DrawTextColor(2*p.cfg.CellWidth, 0, fmt.Sprintf(" Score: %d ", b.Score), core.ColorWhite)
}
