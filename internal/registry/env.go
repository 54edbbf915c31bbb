package registry

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-collab/internal/config"
	"github.com/vovakirdan/arcade-collab/internal/storage"
)

// Scoreboard is the part of the play history scenes use.
type Scoreboard interface {
	RecordPlay(p storage.Play) (int64, error)
	TopPlays(game string, limit int) ([]storage.Play, error)
}

// Env carries shared dependencies to scene factories.
type Env struct {
	Config *config.Config
	Scores Scoreboard // nil when no database is available
	Logger *log.Logger
	// Games lists the games the lobby offers, in display order.
	Games []Info
	// Seed fixes random choices; 0 seeds from the clock.
	Seed int64
	// Player and Session label recorded plays. Local play leaves both
	// empty; SSH sessions fill them in.
	Player  string
	Session string

	// runs counts Rand calls so each run gets its own sequence.
	runs int64
}

// NewEnv builds an Env for the registered games.
func NewEnv(cfg *config.Config, scores Scoreboard, logger *log.Logger, seed int64) *Env {
	return &Env{
		Config: cfg,
		Scores: scores,
		Logger: logger,
		Games:  ListKind(KindGame),
		Seed:   seed,
	}
}

// Cfg returns the configuration, falling back to defaults.
func (e *Env) Cfg() *config.Config {
	if e == nil || e.Config == nil {
		def := config.DefaultConfig()
		return &def
	}
	return e.Config
}

// Log returns the logger, or one that discards everything.
func (e *Env) Log() *log.Logger {
	if e == nil || e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// Rand returns a new random source for one run of a scene. With a fixed
// Seed the n-th call is seeded with Seed+n, so a process replays the same
// runs in order without every run repeating the first. An Env is not safe
// for concurrent use; SSH sessions each get their own copy.
func (e *Env) Rand() *rand.Rand {
	if e == nil || e.Seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seed := e.Seed + e.runs
	e.runs++
	return rand.New(rand.NewSource(seed))
}

// RecordPlay stores a finished run if a store is available. Failures are
// logged.
func (e *Env) RecordPlay(game string, score int) {
	if e == nil || e.Scores == nil {
		return
	}
	p := storage.Play{Game: game, Score: score, Player: e.Player, Session: e.Session}
	if _, err := e.Scores.RecordPlay(p); err != nil {
		e.Log().Warn("could not record play", "game", game, "score", score, "error", err)
		return
	}
	e.Log().Info("play recorded", "game", game, "score", score, "player", p.Player)
}
