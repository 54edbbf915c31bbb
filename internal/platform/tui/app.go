package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-collab/internal/config"
	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
)

// AppOption configures an App.
type AppOption func(*App)

// WithClock replaces the wall clock.
func WithClock(c Clock) AppOption {
	return func(a *App) { a.clock = c }
}

// WithStartScene starts at id instead of the configured start scene.
func WithStartScene(id string) AppOption {
	return func(a *App) {
		if id != "" {
			a.startScene = id
		}
	}
}

// WithScreenshotDir sets where screenshots are written.
func WithScreenshotDir(dir string) AppOption {
	return func(a *App) { a.screenshotDir = dir }
}

// WithRenderer sets the output renderer.
func WithRenderer(r *Renderer) AppOption {
	return func(a *App) { a.renderer = r }
}

// App is the Bubble Tea model that runs the scene state machine. It owns
// the clock and the render buffer and turns terminal input into events.
type App struct {
	cfg      *config.Config
	runtime  core.RuntimeConfig
	machine  *statemachine.Machine
	screen   *core.Screen
	renderer *Renderer
	held     *core.HeldKeys
	keys     KeyMap
	logger   *log.Logger

	clock      Clock
	start      time.Time
	last       time.Time
	startScene string

	mouse        core.Point
	termW, termH int
	showFPS      bool
	fps          fpsCounter

	screenshotDir string
	quitting      bool
	err           error
}

// NewApp builds the top-level machine from every registered scene and
// starts it at the start scene.
func NewApp(env *registry.Env, opts ...AppOption) (*App, error) {
	cfg := env.Cfg()
	a := &App{
		cfg: cfg,
		runtime: core.RuntimeConfig{
			ScreenW:  cfg.Display.Width,
			ScreenH:  cfg.Display.Height,
			TickRate: cfg.Display.TickRate,
			Seed:     env.Seed,
		},
		screen:        core.NewScreen(cfg.Display.Width, cfg.Display.Height),
		held:          core.NewHeldKeys(cfg.Input.HoldWindow),
		keys:          DefaultKeyMap(),
		logger:        env.Log(),
		clock:         time.Now,
		startScene:    cfg.Display.StartScene,
		showFPS:       cfg.Display.ShowFPS,
		screenshotDir: config.UserPath("screenshots"),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.renderer == nil {
		a.renderer = NewRenderer(nil)
	}

	a.machine = statemachine.New(statemachine.WithLogger(a.logger))
	a.machine.Setup(registry.Factories(env))
	a.start = a.clock()
	a.last = a.start
	if err := a.machine.StartAt(0, a.startScene, nil); err != nil {
		return nil, fmt.Errorf("tui: start scene: %w", err)
	}
	a.logger.Debug("app started", "scene", a.startScene, "size", fmt.Sprintf("%dx%d", a.runtime.ScreenW, a.runtime.ScreenH))
	return a, nil
}

// Init starts the tick loop and sets the window title.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tickCmd(a.runtime.TickRate), a.titleCmd())
}

// Update handles messages and updates the app state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg, a.offset()); ok {
			a.mouse = ev.Pos()
			a.machine.HandleEvent(ev)
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.termW, a.termH = msg.Width, msg.Height
		return a, nil

	case TickMsg:
		return a, a.tick()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.machine.HandleEvent(core.Event{Type: core.EventQuit})
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.keys.ToggleFPS):
		a.showFPS = !a.showFPS
		return a.titleCmd()
	case key.Matches(msg, a.keys.Screenshot):
		if path, err := a.SaveScreenshot(); err != nil {
			a.logger.Warn("screenshot failed", "error", err)
		} else {
			a.logger.Info("screenshot saved", "path", path)
		}
		return nil
	}

	ev := KeyEvent(msg)
	a.held.Press(ev.Action, a.elapsed())
	a.machine.HandleEvent(ev)
	return nil
}

// tick advances the machine by one frame.
func (a *App) tick() tea.Cmd {
	// Keys held in a finishing scene must not steer the next one.
	if cur := a.machine.Current(); cur != nil && cur.Done() {
		a.held.Reset()
	}
	scene := a.machine.CurrentName()

	now := a.clock()
	elapsed := now.Sub(a.start)
	f := core.Frame{
		Now:   elapsed,
		Dt:    now.Sub(a.last),
		Held:  a.held.Frame(elapsed),
		Mouse: a.mouse,
	}
	a.last = now

	if err := a.machine.Update(f); err != nil {
		a.logger.Error("scene update failed", "scene", a.machine.CurrentName(), "error", err)
		a.err = err
		a.quitting = true
		return tea.Quit
	}
	if a.machine.Done() {
		a.logger.Debug("machine done", "scene", a.machine.CurrentName())
		a.quitting = true
		return tea.Quit
	}
	if a.machine.CurrentName() != scene {
		a.held.Reset()
	}

	cmds := []tea.Cmd{tickCmd(a.runtime.TickRate)}
	if a.fps.tick(now) && a.showFPS {
		cmds = append(cmds, a.titleCmd())
	}
	return tea.Batch(cmds...)
}

func (a *App) elapsed() time.Duration {
	return a.clock().Sub(a.start)
}

// Title returns the window caption, with the frame rate when enabled.
func (a *App) Title() string {
	if a.showFPS {
		return fmt.Sprintf("%s - %.2f FPS", a.cfg.Display.Caption, a.fps.fps)
	}
	return a.cfg.Display.Caption
}

func (a *App) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(a.Title())
}

// offset is the letterbox shift of the render area in the terminal.
func (a *App) offset() core.Point {
	return letterboxOffset(a.runtime.ScreenW, a.runtime.ScreenH, a.termW, a.termH)
}

func (a *App) tooSmall() bool {
	return a.termW > 0 && a.termH > 0 &&
		(a.termW < a.runtime.ScreenW || a.termH < a.runtime.ScreenH)
}

// View renders the current state to a string for display.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.tooSmall() {
		msg := fmt.Sprintf("Terminal too small\n\nneed %dx%d, have %dx%d",
			a.runtime.ScreenW, a.runtime.ScreenH, a.termW, a.termH)
		return lipgloss.Place(a.termW, a.termH, lipgloss.Center, lipgloss.Center, msg)
	}

	var body string
	if sv, ok := a.machine.Current().(core.StyledView); ok {
		body = sv.View(a.runtime.ScreenW, a.runtime.ScreenH)
	} else {
		a.screen.Clear()
		a.machine.Render(a.screen)
		body = a.renderer.Render(a.screen)
	}
	return Letterbox(body, a.runtime.ScreenW, a.runtime.ScreenH, a.termW, a.termH)
}

// SaveScreenshot writes the current frame as plain text and returns its path.
func (a *App) SaveScreenshot() (string, error) {
	if err := os.MkdirAll(a.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}
	a.screen.Clear()
	a.machine.Render(a.screen)

	name := fmt.Sprintf("%s_%s.txt", a.machine.CurrentName(), uuid.NewString())
	path := filepath.Join(a.screenshotDir, name)
	if err := os.WriteFile(path, []byte(a.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// Scene returns the name of the active scene.
func (a *App) Scene() string {
	return a.machine.CurrentName()
}

// Err returns the error that stopped the app, if any.
func (a *App) Err() error {
	return a.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(app *App) error {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		app.termW, app.termH = w, h
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Buttons react to hover and clicks
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return app.Err()
}
