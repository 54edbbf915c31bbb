package screens

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collab/internal/anim"
	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
	"github.com/vovakirdan/arcade-collab/internal/ui"
)

// Lobby layout in cells.
const (
	lobbySpacerX   = 6
	lobbySpacerY   = 1
	lobbyTop       = 2
	navWidth       = 5
	navHeight      = 3
	navFromCenter  = 2
	mainButtonsPad = 1
)

// Lobby lets the player pick a game, open the credits or high scores, or
// leave. Games are laid out in pages side by side; the nav buttons scroll
// them with a tween and wrap around at either end.
type Lobby struct {
	statemachine.Base
	env    *registry.Env
	log    *log.Logger
	width  int
	height int

	perPage    int
	columns    int
	duration   time.Duration
	ease       anim.Easing
	loopLength int

	gameButtons []*ui.Button
	left, right *ui.Button
	buttons     *ui.ButtonGroup
	tweens      *anim.Group
	heading     *ui.Label
	empty       *ui.Label
}

// NewLobby creates the lobby scene.
func NewLobby(env *registry.Env) *Lobby {
	cfg := env.Cfg()
	ease, err := anim.EasingByName(cfg.Lobby.Transition)
	if err != nil {
		env.Log().Warn("unknown lobby transition, using linear", "transition", cfg.Lobby.Transition)
		ease = anim.Linear
	}

	l := &Lobby{
		env:      env,
		log:      env.Log(),
		width:    cfg.Display.Width,
		height:   cfg.Display.Height,
		perPage:  max(cfg.Lobby.PerPage, 1),
		columns:  max(cfg.Lobby.Columns, 1),
		duration: cfg.Lobby.ScrollDuration,
		ease:     ease,
		tweens:   &anim.Group{},
	}
	l.heading = ui.NewLabel("Choose a game", ui.MidTop, core.Point{X: l.width / 2, Y: 0}, core.ColorLimeGreen)
	l.empty = ui.NewLabel("No games installed", ui.Center, core.Point{X: l.width / 2, Y: l.height / 2 - 3}, core.ColorGray)
	l.build(env.Games)
	return l
}

// Startup rebuilds the buttons so pages start at the first one.
func (l *Lobby) Startup(now time.Duration, persist statemachine.Persist) {
	l.Base.Startup(now, persist)
	l.tweens = &anim.Group{}
	l.build(l.env.Games)
}

func (l *Lobby) build(games []registry.Info) {
	pages := (len(games) + l.perPage - 1) / l.perPage
	l.loopLength = l.width * pages
	l.gameButtons = l.makeGamePages(games)
	l.left, l.right = l.makeNavButtons()

	l.buttons = ui.NewButtonGroup(l.gameButtons...)
	l.buttons.Add(l.left, l.right)
	l.buttons.Add(l.makeMainButtons()...)
	l.updateVisibility()
}

func (l *Lobby) makeGamePages(games []registry.Info) []*ui.Button {
	w, h := ui.GameButtonWidth, ui.GameButtonHeight
	startX := (l.width - w*l.columns - lobbySpacerX*(l.columns-1)) / 2
	stepX, stepY := w+lobbySpacerX, h+lobbySpacerY

	buttons := make([]*ui.Button, 0, len(games))
	for i, g := range games {
		page, slot := i/l.perPage, i%l.perPage
		row, col := slot/l.columns, slot%l.columns
		pos := core.Point{
			X: startX + stepX*col + page*l.width,
			Y: lobbyTop + stepY*row,
		}
		buttons = append(buttons, ui.NewGameButton(pos, g.ID, g.Thumb, l.changeState))
	}
	return buttons
}

func navLook(arrow string, c core.Color) ui.Look {
	img := sprite.FromLines([]string{"┌───┐", "│   │", "└───┘"})
	return ui.Look{Image: img, Color: c, Text: arrow, TextColor: c, TextRow: 1}
}

func (l *Lobby) makeNavButtons() (*ui.Button, *ui.Button) {
	y := l.height - ui.NeonHeight - mainButtonsPad - navHeight - 1
	cx := l.width / 2

	left := ui.NewButton(core.NewRect(cx-navFromCenter-navWidth, y, navWidth, navHeight),
		navLook("◄", core.ColorLowLight), navLook("◄", core.ColorHighLight),
		func(string) { l.scrollPage(1) }, "")
	left.Keys = key.NewBinding(key.WithKeys("left", "4"), key.WithHelp("←", "previous page"))

	right := ui.NewButton(core.NewRect(cx+navFromCenter, y, navWidth, navHeight),
		navLook("►", core.ColorLowLight), navLook("►", core.ColorHighLight),
		func(string) { l.scrollPage(-1) }, "")
	right.Keys = key.NewBinding(key.WithKeys("right", "6"), key.WithHelp("→", "next page"))

	return left, right
}

func (l *Lobby) makeMainButtons() []*ui.Button {
	y := l.height - ui.NeonHeight - mainButtonsPad
	credits := ui.NewNeonButton(core.Point{X: 1, Y: y}, "Credits", l.changeState, CreditsID)
	scores := ui.NewNeonButton(core.Point{X: l.width - ui.NeonWidth - 1, Y: y}, "High_Scores", l.changeState, HighScoresID)
	exit := ui.NewNeonButton(core.Point{X: l.width/2 - ui.NeonWidth/2, Y: y}, "Exit", func(string) { l.Exit() }, "")
	exit.Keys = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit"))
	return []*ui.Button{credits, scores, exit}
}

// scrollPage slides every game button one screen width in direction mag.
// It does nothing while a scroll is running or when all games fit one page.
func (l *Lobby) scrollPage(mag int) {
	if l.tweens.Running() || len(l.gameButtons) <= l.perPage {
		return
	}
	for _, b := range l.gameButtons {
		l.normalizeScroll(b, mag)
		from := float64(b.Rect.X)
		to := from + float64(l.width*mag)
		l.tweens.Add(anim.NewTween(from, to, l.duration, l.ease).OnUpdate(func(v float64) {
			b.Rect.X = int(math.Round(v))
		}))
	}
	l.log.Debug("lobby scroll", "direction", mag)
}

// normalizeScroll wraps a button to the far side of the page loop before it
// scrolls so that paging never runs out.
func (l *Lobby) normalizeScroll(b *ui.Button, mag int) {
	switch {
	case b.Rect.X < 0 && mag == -1:
		b.Rect.X += l.loopLength
	case b.Rect.X >= l.width && mag == 1:
		b.Rect.X -= l.loopLength
	}
}

func (l *Lobby) changeState(next string) {
	l.Finish(next)
}

func (l *Lobby) updateVisibility() {
	screen := core.NewRect(0, 0, l.width, l.height)
	for _, b := range l.gameButtons {
		b.Visible = b.Rect.Intersects(screen)
	}
}

// HandleEvent routes input to the buttons.
func (l *Lobby) HandleEvent(ev core.Event) {
	if ev.Type == core.EventQuit {
		l.Exit()
		return
	}
	l.buttons.HandleEvent(ev)
}

// Update advances page scrolling and hover state.
func (l *Lobby) Update(f core.Frame) {
	l.tweens.Update(f.Dt)
	l.updateVisibility()
	l.buttons.Update(f.Mouse)
}

// Render draws the buttons on screen.
func (l *Lobby) Render(dst *core.Screen) {
	dst.Clear()
	l.heading.Draw(dst)
	if len(l.gameButtons) == 0 {
		l.empty.Draw(dst)
	}
	l.buttons.Draw(dst)
}

// GameButtons exposes the game buttons in registry order.
func (l *Lobby) GameButtons() []*ui.Button {
	return l.gameButtons
}

// Scrolling reports whether a page scroll is in progress.
func (l *Lobby) Scrolling() bool {
	return l.tweens.Running()
}
