package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
	"github.com/vovakirdan/arcade-collab/internal/storage"
	"github.com/vovakirdan/arcade-collab/internal/ui"
)

// High score layout constants
const (
	scoresTableHeight = 12
	rankWidth         = 6
	scoreWidth        = 10
	playerWidth       = 12
	dateWidth         = 14
)

// ScoresKeyMap defines the key bindings for the high score table.
type ScoresKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevGame, k.NextGame, k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevGame, k.NextGame},
		{k.Up, k.Down, k.Back},
	}
}

// DefaultScoresKeyMap returns default key bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc/any", "lobby"),
		),
	}
}

// HighScores shows the best scores per game from the score store.
// Left/Right switch games; any other key returns to the lobby.
type HighScores struct {
	statemachine.Base
	env    *registry.Env
	games  []registry.Info
	cursor int
	limit  int
	scores []storage.Play
	err    error

	table  table.Model
	help   help.Model
	keys   ScoresKeyMap
	anykey *ui.FlashingText
}

// NewHighScores creates the high score scene.
func NewHighScores(env *registry.Env) *HighScores {
	cfg := env.Cfg()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.Display.Width

	s := &HighScores{
		env:   env,
		games: env.Games,
		limit: cfg.Scores.Limit,
		help:  h,
		keys:  DefaultScoresKeyMap(),
		anykey: ui.NewFlashingText(cfg.Credits.Prompt, ui.Center,
			core.Point{X: cfg.Display.Width / 2, Y: cfg.Display.Height - 2}, core.ColorGold, cfg.Title.BlinkInterval),
	}
	s.table = newScoresTable()
	return s
}

func newScoresTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Player", Width: playerWidth},
		{Title: "Date", Width: dateWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(scoresTableHeight),
	)

	// Table styles
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// Startup loads the scores of the selected game.
func (s *HighScores) Startup(now time.Duration, persist statemachine.Persist) {
	s.Base.Startup(now, persist)
	s.load()
}

// Game returns the selected game, if any.
func (s *HighScores) Game() (registry.Info, bool) {
	if len(s.games) == 0 {
		return registry.Info{}, false
	}
	return s.games[s.cursor], true
}

// Scores returns the loaded entries.
func (s *HighScores) Scores() []storage.Play {
	return s.scores
}

func (s *HighScores) load() {
	s.scores, s.err = nil, nil
	g, ok := s.Game()
	if ok && s.env.Scores != nil {
		s.scores, s.err = s.env.Scores.TopPlays(g.ID, s.limit)
		if s.err != nil {
			s.env.Log().Warn("could not load scores", "game", g.ID, "error", s.err)
		}
	}

	rows := make([]table.Row, len(s.scores))
	for i, e := range s.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Player,
			e.PlayedAt.Format("Jan 02 15:04"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

func (s *HighScores) cycle(step int) {
	if len(s.games) == 0 {
		return
	}
	n := len(s.games)
	s.cursor = ((s.cursor+step)%n + n) % n
	s.load()
}

// HandleEvent switches games, scrolls, or leaves for the lobby.
func (s *HighScores) HandleEvent(ev core.Event) {
	switch ev.Type {
	case core.EventQuit:
		s.Exit()
	case core.EventKey:
		switch {
		case key.Matches(ev, s.keys.NextGame):
			s.cycle(1)
		case key.Matches(ev, s.keys.PrevGame):
			s.cycle(-1)
		case key.Matches(ev, s.keys.Up):
			s.table.MoveUp(1)
		case key.Matches(ev, s.keys.Down):
			s.table.MoveDown(1)
		default:
			s.Finish(LobbyID)
		}
	}
}

// Update blinks the prompt.
func (s *HighScores) Update(f core.Frame) {
	s.anykey.Update(f.Now)
}

func (s *HighScores) heading() string {
	if g, ok := s.Game(); ok {
		return fmt.Sprintf("HIGH SCORES - %s", g.Title)
	}
	return "HIGH SCORES"
}

func (s *HighScores) message() string {
	switch {
	case len(s.games) == 0:
		return "No games installed."
	case s.env.Scores == nil:
		return "Score keeping is disabled."
	case s.err != nil:
		return "Scores could not be loaded."
	case len(s.scores) == 0:
		return "No scores recorded yet.\nPlay a game to set a high score!"
	}
	return ""
}

// Render draws a plain text version of the table.
func (s *HighScores) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(1, s.heading(), core.ColorGold)

	if msg := s.message(); msg != "" {
		for i, line := range strings.Split(msg, "\n") {
			dst.DrawTextCentered(dst.Height()/2-1+i, line, core.ColorGray)
		}
	} else {
		for i, e := range s.scores {
			if i >= dst.Height()-6 {
				break
			}
			line := fmt.Sprintf("%-*s%-*d%-*s%s", rankWidth, fmt.Sprintf("#%d", i+1), scoreWidth, e.Score,
				playerWidth, truncate.StringWithTail(e.Player, playerWidth-1, "…"), e.PlayedAt.Format("Jan 02 15:04"))
			dst.DrawTextCentered(3+i, line, core.ColorWhite)
		}
	}
	s.anykey.Draw(dst)
}

// View renders the table with lipgloss styling.
func (s *HighScores) View(width, height int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render(s.heading())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if msg := s.message(); msg != "" {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render(msg)
	} else {
		content = s.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tableStyle.Render(content)))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, helpStyle.Render(s.help.View(s.keys))))
	b.WriteString("\n\n")

	// The blank line keeps the layout still while the prompt blinks off.
	prompt := strings.Repeat(" ", lipgloss.Width(s.anykey.Text))
	if s.anykey.Visible() {
		prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render(s.anykey.Text)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *HighScores) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Padding(0, 1)

	tabs := make([]string, len(s.games))
	for i, g := range s.games {
		if i == s.cursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}
