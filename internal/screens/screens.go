// Package screens contains the navigation scenes around the games:
// the splash, the title, the lobby, the credits and the high score table.
package screens

import (
	_ "embed"

	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/sprite"
	"github.com/vovakirdan/arcade-collab/internal/statemachine"
)

// Scene IDs.
const (
	SplashID     = "snake_splash"
	TitleID      = "title_screen"
	LobbyID      = "lobby"
	CreditsID    = "credits"
	HighScoresID = "high_scores"
)

var (
	//go:embed art/splash.txt
	splashArt string
	//go:embed art/title.txt
	titleArt string
)

func init() {
	register(SplashID, "Splash", func(env *registry.Env) statemachine.State { return NewSplash(env) })
	register(TitleID, "Title", func(env *registry.Env) statemachine.State { return NewTitle(env) })
	register(LobbyID, "Lobby", func(env *registry.Env) statemachine.State { return NewLobby(env) })
	register(CreditsID, "Credits", func(env *registry.Env) statemachine.State { return NewCredits(env) })
	register(HighScoresID, "High Scores", func(env *registry.Env) statemachine.State { return NewHighScores(env) })
}

func register(id, title string, f registry.Factory) {
	registry.Register(registry.Info{ID: id, Title: title, Kind: registry.KindScreen}, f)
}

func artImage(s string) sprite.Image {
	return sprite.FromString(s)
}
