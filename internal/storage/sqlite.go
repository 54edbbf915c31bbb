// Package storage keeps the arcade's play history in SQLite. Every finished
// run of a game is one row; high score tables and statistics are queries
// over that history.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// LocalPlayer names plays made at the local terminal.
const LocalPlayer = "local"

// defaultTop is the table size used when a caller asks for none.
const defaultTop = 10

const playedAtLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS plays (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	game      TEXT    NOT NULL,
	score     INTEGER NOT NULL,
	player    TEXT    NOT NULL DEFAULT 'local',
	session   TEXT    NOT NULL DEFAULT '',
	played_at TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS plays_ranking ON plays(game, score DESC, id);
`

// Store is the play history database.
type Store struct {
	db *sql.DB
}

// Play is one finished run of a game.
type Play struct {
	ID    int64
	Game  string
	Score int
	// Player is the SSH user name, or LocalPlayer.
	Player string
	// Session ties plays made over one SSH connection together.
	Session  string
	PlayedAt time.Time
}

// GameStats summarizes the plays of one game.
type GameStats struct {
	Game       string
	Plays      int
	Best       int
	Average    float64
	Total      int64
	Players    int
	LastPlayed time.Time
}

// Open opens the database at path, creating it and its directory when
// missing. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: resolve home: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordPlay stores a finished run and returns its row ID. An empty player
// is recorded as LocalPlayer.
func (s *Store) RecordPlay(p Play) (int64, error) {
	if p.Player == "" {
		p.Player = LocalPlayer
	}
	res, err := s.db.Exec(
		`INSERT INTO plays (game, score, player, session) VALUES (?, ?, ?, ?)`,
		p.Game, p.Score, p.Player, p.Session,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: record %s play: %w", p.Game, err)
	}
	return res.LastInsertId()
}

// TopPlays returns the best runs of game, highest score first. Equal
// scores rank by who got there first.
func (s *Store) TopPlays(game string, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = defaultTop
	}
	rows, err := s.db.Query(
		`SELECT id, game, score, player, session, played_at FROM plays
		 WHERE game = ? ORDER BY score DESC, id LIMIT ?`,
		game, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: top %s plays: %w", game, err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var at any
		if err := rows.Scan(&p.ID, &p.Game, &p.Score, &p.Player, &p.Session, &at); err != nil {
			return nil, fmt.Errorf("storage: scan play: %w", err)
		}
		p.PlayedAt = parsePlayedAt(at)
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// ClearGame forgets every play of game and reports how many were removed.
func (s *Store) ClearGame(game string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM plays WHERE game = ?`, game)
	if err != nil {
		return 0, fmt.Errorf("storage: clear %s: %w", game, err)
	}
	return res.RowsAffected()
}

const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), COUNT(DISTINCT player), MAX(played_at)`

// Stats summarizes game. A game never played has zero stats.
func (s *Store) Stats(game string) (*GameStats, error) {
	st := &GameStats{Game: game}
	var last any
	err := s.db.QueryRow(`SELECT `+statsColumns+` FROM plays WHERE game = ?`, game).
		Scan(&st.Plays, &st.Best, &st.Average, &st.Total, &st.Players, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: %s stats: %w", game, err)
	}
	st.LastPlayed = parsePlayedAt(last)
	return st, nil
}

// AllStats summarizes every game with at least one play, keyed by game.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT game, ` + statsColumns + ` FROM plays GROUP BY game`)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		st := &GameStats{}
		var last any
		if err := rows.Scan(&st.Game, &st.Plays, &st.Best, &st.Average, &st.Total, &st.Players, &last); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.LastPlayed = parsePlayedAt(last)
		all[st.Game] = st
	}
	return all, rows.Err()
}

// parsePlayedAt accepts a driver-decoded time or SQLite's timestamp text.
// NULL and unparseable values give the zero time.
func parsePlayedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(playedAtLayout, t); err == nil {
			return parsed
		}
	case []byte:
		return parsePlayedAt(string(t))
	}
	return time.Time{}
}
