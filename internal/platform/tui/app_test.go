package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/screens"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"

	_ "github.com/vovakirdan/arcade-collab/internal/games/snake"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestApp(t *testing.T, opts ...AppOption) (*App, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	env := registry.NewEnv(nil, nil, nil, 1)
	opts = append([]AppOption{
		WithClock(clock.Now),
		WithRenderer(NewRenderer(lipgloss.NewRenderer(io.Discard))),
		WithScreenshotDir(t.TempDir()),
	}, opts...)
	app, err := NewApp(env, opts...)
	require.NoError(t, err)
	return app, clock
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "f5":
		return tea.KeyMsg{Type: tea.KeyF5}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewAppUnknownScene(t *testing.T) {
	env := registry.NewEnv(nil, nil, nil, 1)
	_, err := NewApp(env, WithStartScene("nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, statemachine.ErrUnknownState)
}

func TestAppSceneFlow(t *testing.T) {
	app, clock := newTestApp(t)
	assert.Equal(t, screens.SplashID, app.Scene())

	app.Update(keyMsg("x"))
	clock.advance(16 * time.Millisecond)
	_, cmd := app.Update(TickMsg{})
	assert.Equal(t, screens.TitleID, app.Scene())
	assert.False(t, isQuit(cmd))

	app.Update(keyMsg("esc"))
	clock.advance(16 * time.Millisecond)
	_, cmd = app.Update(TickMsg{})
	assert.True(t, isQuit(cmd), "machine done ends the program")
	assert.Empty(t, app.View())
	assert.NoError(t, app.Err())
}

func TestAppSceneChangeReleasesHeldKeys(t *testing.T) {
	app, clock := newTestApp(t, WithStartScene(screens.TitleID))

	app.Update(keyMsg("up"))
	assert.True(t, app.held.Frame(app.elapsed()).Has(core.ActionUp))

	clock.advance(16 * time.Millisecond)
	app.Update(TickMsg{})
	require.Equal(t, screens.LobbyID, app.Scene())
	assert.False(t, app.held.Frame(app.elapsed()).Has(core.ActionUp), "held keys do not follow into the lobby")

	app.Update(keyMsg("up"))
	clock.advance(16 * time.Millisecond)
	app.Update(TickMsg{})
	assert.True(t, app.held.Frame(app.elapsed()).Has(core.ActionUp), "keys held within a scene stay held")
}

func TestAppStraightStart(t *testing.T) {
	app, _ := newTestApp(t, WithStartScene(screens.LobbyID))
	assert.Equal(t, screens.LobbyID, app.Scene())
}

func TestAppQuitKey(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(keyMsg("ctrl+c"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, app.View())
}

func TestAppToggleFPS(t *testing.T) {
	app, clock := newTestApp(t)
	assert.Equal(t, "Arcade Collab", app.Title())

	_, cmd := app.Update(keyMsg("f5"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Arcade Collab - 0.00 FPS", app.Title())

	for i := 0; i <= 31; i++ {
		app.Update(TickMsg{})
		clock.advance(time.Second / 30)
	}
	assert.Contains(t, app.Title(), "30.00 FPS")

	app.Update(keyMsg("f5"))
	assert.Equal(t, "Arcade Collab", app.Title())
}

func TestFPSCounter(t *testing.T) {
	var c fpsCounter
	start := time.Unix(0, 0)
	assert.False(t, c.tick(start))
	for i := 1; i < 60; i++ {
		assert.False(t, c.tick(start.Add(time.Duration(i)*time.Second/60)))
	}
	assert.True(t, c.tick(start.Add(time.Second)))
	assert.InDelta(t, 60, c.fps, 1e-9)
}

func TestAppTooSmall(t *testing.T) {
	app, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, app.View(), "Terminal too small")
	assert.Contains(t, app.View(), "need 80x24, have 40x10")
}

func TestAppLetterbox(t *testing.T) {
	app, _ := newTestApp(t, WithStartScene(screens.LobbyID))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, core.Point{X: 10, Y: 3}, app.offset())

	lines := strings.Split(app.View(), "\n")
	require.GreaterOrEqual(t, len(lines), 27)
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[5], strings.Repeat(" ", 10)), "render area shifted right")

	// Hovering the credits button through the letterbox.
	app.Update(tea.MouseMsg{X: 13, Y: 24, Action: tea.MouseActionMotion})
	assert.Equal(t, core.Point{X: 3, Y: 21}, app.mouse)
}

func TestMouseEvent(t *testing.T) {
	off := core.Point{X: 10, Y: 3}
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Event
		ok   bool
	}{
		{"motion", tea.MouseMsg{X: 15, Y: 8, Action: tea.MouseActionMotion}, core.MouseEvent(core.EventMouseMove, 5, 5), true},
		{"left press", tea.MouseMsg{X: 15, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.MouseEvent(core.EventMouseDown, 5, 5), true},
		{"release", tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionRelease}, core.MouseEvent(core.EventMouseUp, 0, 0), true},
		{"wheel", tea.MouseMsg{X: 15, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MouseEvent(tt.msg, off)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapKey(t *testing.T) {
	tests := map[string]core.Action{
		"up":    core.ActionUp,
		"w":     core.ActionUp,
		"s":     core.ActionDown,
		"a":     core.ActionLeft,
		"d":     core.ActionRight,
		"enter": core.ActionConfirm,
		"esc":   core.ActionBack,
		"x":     core.ActionNone,
		"r":     core.ActionNone,
	}
	for k, want := range tests {
		assert.Equal(t, want, MapKey(keyMsg(k)), "key %q", k)
	}

	ev := KeyEvent(keyMsg("up"))
	assert.Equal(t, "up", ev.Key)
	assert.True(t, ev.IsKey())
}

func TestAppScreenshot(t *testing.T) {
	dir := t.TempDir()
	app, _ := newTestApp(t, WithScreenshotDir(dir))

	path, err := app.SaveScreenshot()
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), screens.SplashID+"_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 24)
}

func TestRendererPlain(t *testing.T) {
	r := NewRenderer(lipgloss.NewRenderer(io.Discard))
	scr := core.NewScreen(4, 2)
	scr.SetColor(0, 0, 'a', core.ColorRed)
	scr.SetColor(1, 0, 'b', core.ColorRed)
	scr.SetColor(3, 1, 'c', core.ColorGold)

	assert.Equal(t, scr.String(), r.Render(scr))
}

func TestLetterbox(t *testing.T) {
	assert.Equal(t, "ab", Letterbox("ab", 2, 1, 2, 1))

	lines := strings.Split(Letterbox("ab", 2, 1, 6, 3), "\n")
	require.Len(t, lines, 2)
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Equal(t, "  ab", strings.TrimRight(lines[1], " "))
}

func TestSessionEnv(t *testing.T) {
	base := registry.NewEnv(nil, nil, nil, 9)
	srv := &SSHServer{env: base, logger: base.Log()}

	env := srv.sessionEnv("ada", "abc-123")
	assert.Equal(t, "ada", env.Player)
	assert.Equal(t, "abc-123", env.Session)
	assert.Zero(t, env.Seed, "sessions draw from the clock")

	assert.Equal(t, int64(9), base.Seed)
	assert.Empty(t, base.Player, "the shared env stays untouched")
}
