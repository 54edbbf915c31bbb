package snake

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-collab/internal/core"
	"github.com/vovakirdan/arcade-collab/internal/registry"
	"github.com/vovakirdan/arcade-collab/internal/storage"
)

const (
	boardW = 38
	boardH = 22
	step   = 125 * time.Millisecond // one move at 8 cells per second
)

func newTestBoard(seed int64) *Board {
	return NewBoard(boardW, boardH, 3, 5, rand.New(rand.NewSource(seed)))
}

func TestDeterminism(t *testing.T) {
	// Two boards with the same seed should produce identical snapshots
	b1 := newTestBoard(12345)
	b2 := newTestBoard(12345)

	turns := map[int]Direction{3: DirRight, 9: DirUp, 14: DirLeft}
	for i := 1; i <= 20; i++ {
		now := time.Duration(i) * step
		for _, b := range []*Board{b1, b2} {
			if d, ok := turns[i]; ok {
				b.Snake.Queue(d)
			}
			b.Snake.Update(now, 8)
			b.CheckCollisions()
		}
	}

	if s1, s2 := b1.Snapshot(), b2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestStartPosition(t *testing.T) {
	b := newTestBoard(1)
	want := []core.Point{{X: 10, Y: boardH - 4}, {X: 10, Y: boardH - 5}}
	for i, c := range want {
		if b.Snake.Body[i] != c {
			t.Errorf("Body[%d] = %v, want %v", i, b.Snake.Body[i], c)
		}
	}
	if b.Snake.Direction != DirUp {
		t.Errorf("initial direction = %v, want up", b.Snake.Direction)
	}
	if b.Snake.Head() != want[1] {
		t.Errorf("head should be the last cell")
	}
}

func TestMoveTiming(t *testing.T) {
	s := NewSnake(boardH, 3, 5)

	tests := []struct {
		now   time.Duration
		moved bool
	}{
		{0, false},
		{step - time.Millisecond, false},
		{step, true},
		{step + 100*time.Millisecond, false},
		{2 * step, true},
	}
	for _, tt := range tests {
		if got := s.Update(tt.now, 8); got != tt.moved {
			t.Errorf("Update(%v) moved = %v, want %v", tt.now, got, tt.moved)
		}
	}
	if s.Head() != (core.Point{X: 10, Y: boardH - 7}) {
		t.Errorf("head = %v after two moves up", s.Head())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	s := NewSnake(boardH, 3, 5)

	s.Queue(DirDown)
	s.Update(step, 8)
	if s.Direction != DirUp {
		t.Errorf("Should not allow immediate reversal from up to down, got %v", s.Direction)
	}

	s.Queue(DirUp)
	s.Queue(DirLeft)
	s.Update(2*step, 8)
	if s.Direction != DirUp {
		t.Errorf("same direction consumes a move without turning, got %v", s.Direction)
	}
	s.Update(3*step, 8)
	if s.Direction != DirLeft {
		t.Errorf("Expected left after queued turn, got %v", s.Direction)
	}
}

func TestDirectionQueueCapacity(t *testing.T) {
	s := NewSnake(boardH, 3, 5)
	for i := 0; i < 5; i++ {
		if !s.Queue(DirLeft) {
			t.Fatalf("press %d should be queued", i)
		}
	}
	if s.Queue(DirRight) {
		t.Error("presses beyond capacity should be dropped")
	}
	if s.Queued() != 5 {
		t.Errorf("Queued() = %d, want 5", s.Queued())
	}

	s.Update(step, 8)
	if s.Queued() != 4 {
		t.Errorf("one queued turn is consumed per move, %d left", s.Queued())
	}
}

func TestAppleSpawnValidity(t *testing.T) {
	b := newTestBoard(999)

	// Respawn many times and verify it never lands on snake or walls
	for i := 0; i < 200; i++ {
		p := b.respawn()
		if b.Walls[p] {
			t.Errorf("Apple spawned on wall at %v", p)
		}
		if b.Snake.Occupies(p) {
			t.Errorf("Apple spawned on snake at %v", p)
		}
		if p.X < 0 || p.X >= b.W || p.Y < 0 || p.Y >= b.H {
			t.Errorf("Apple spawned out of bounds at %v", p)
		}
	}
}

func TestSnakeGrowth(t *testing.T) {
	b := newTestBoard(222)
	b.Apple = b.Snake.Head().Add(core.Point{Y: -1})

	b.Snake.Update(step, 8)
	b.CheckCollisions()
	if b.Score != 1 {
		t.Fatalf("Score should be 1 after eating the apple, got %d", b.Score)
	}
	if !b.Snake.Growing {
		t.Fatal("Snake should be growing after eating")
	}
	if b.Apple == b.Snake.Head() {
		t.Error("Apple should respawn")
	}

	wantLens := []int{3, 4, 5, 5, 5}
	for i, want := range wantLens {
		b.Snake.Update(time.Duration(i+2)*step, 8)
		if got := len(b.Snake.Body); got != want {
			t.Errorf("move %d: len = %d, want %d", i+1, got, want)
		}
	}
	if b.Snake.Growing {
		t.Error("growth should stop after growth_per_apple moves")
	}
}

func TestWallCollision(t *testing.T) {
	b := newTestBoard(789)
	b.Snake.Body = []core.Point{{X: 0, Y: 1}, {X: 0, Y: 0}}
	b.Apple = core.Point{X: 5, Y: 5}

	b.Snake.Update(step, 8)
	b.CheckCollisions()
	if !b.Snake.Dead {
		t.Error("Snake should be dead after hitting the border")
	}
	if b.Snake.Update(2*step, 8) {
		t.Error("dead snake should not move")
	}
}

func TestSelfCollision(t *testing.T) {
	b := newTestBoard(111)
	b.Apple = core.Point{X: 30, Y: 3}
	// Spiral whose next move lands on its own body
	b.Snake.Body = []core.Point{
		{X: 5, Y: 4},
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6},
	}
	b.Snake.Direction = DirUp
	b.Snake.Growing = true

	b.Snake.Update(step, 8)
	b.CheckCollisions()
	if !b.Snake.Dead {
		t.Error("Snake should be dead after self collision")
	}
}

func TestMakeWalls(t *testing.T) {
	for level := 0; level < LevelCount; level++ {
		walls := MakeWalls(boardW, boardH, level)

		for _, corner := range []core.Point{{X: -1, Y: -1}, {X: boardW, Y: -1}, {X: -1, Y: boardH}, {X: boardW, Y: boardH}} {
			if !walls[corner] {
				t.Errorf("level %d: missing border corner %v", level, corner)
			}
		}

		inner := 0
		for p := range walls {
			if p.X >= 0 && p.X < boardW && p.Y >= 0 && p.Y < boardH {
				inner++
			}
		}
		if inner == 0 {
			t.Errorf("level %d has no walls inside the board", level)
		}

		start := NewSnake(boardH, 3, 5)
		for _, c := range start.Body {
			if walls[c] {
				t.Errorf("level %d: wall on the start cell %v", level, c)
			}
		}
	}
}

type fakeScores struct {
	saved []int
}

func (f *fakeScores) RecordPlay(p storage.Play) (int64, error) {
	f.saved = append(f.saved, p.Score)
	return int64(len(f.saved)), nil
}

func (f *fakeScores) TopPlays(string, int) ([]storage.Play, error) {
	return nil, nil
}

func frameAt(now time.Duration) core.Frame {
	return core.Frame{Now: now, Dt: 16 * time.Millisecond}
}

func TestSceneFlow(t *testing.T) {
	scores := &fakeScores{}
	s := New(&registry.Env{Seed: 7, Scores: scores})
	s.Startup(0, nil)

	if s.Phase() != stateStartup {
		t.Fatalf("phase = %s, want %s", s.Phase(), stateStartup)
	}
	screen := core.NewScreen(80, 24)
	s.Update(frameAt(0))
	s.Render(screen)
	if !strings.Contains(screen.String(), "Start!") {
		t.Error("start screen should show its title")
	}

	s.HandleEvent(core.KeyEvent("x", core.ActionNone))
	s.Update(frameAt(0))
	if s.Phase() != stateGame {
		t.Fatalf("phase = %s, want %s", s.Phase(), stateGame)
	}

	// Steer straight into the top border.
	s.play.board.Snake.Body = []core.Point{{X: 0, Y: 1}, {X: 0, Y: 0}}
	s.play.board.Apple = core.Point{X: 20, Y: 20}
	s.Update(frameAt(time.Second))
	s.Update(frameAt(time.Second + 16*time.Millisecond))
	if s.Phase() != stateDead {
		t.Fatalf("phase = %s, want %s", s.Phase(), stateDead)
	}
	if len(scores.saved) != 1 || scores.saved[0] != 0 {
		t.Errorf("saved scores = %v, want [0]", scores.saved)
	}

	screen.Clear()
	s.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Dead.") || !strings.Contains(out, "Score: 0") {
		t.Errorf("death screen should show the last game frame:\n%s", out)
	}

	if snap := s.play.board.Snapshot(); snap.Dead || snap.SnakeLen != 2 {
		t.Errorf("board should be reset for the next run: %+v", snap)
	}

	s.HandleEvent(core.KeyEvent("x", core.ActionNone))
	s.Update(frameAt(2 * time.Second))
	s.Update(frameAt(2*time.Second + 16*time.Millisecond))
	if !s.Done() || s.Next() != "lobby" {
		t.Errorf("scene should return to the lobby, done=%v next=%q", s.Done(), s.Next())
	}
	if s.Quit() {
		t.Error("leaving the game should not quit the program")
	}
}

func TestSceneRegistered(t *testing.T) {
	info, ok := registry.Lookup(ID)
	if !ok {
		t.Fatal("snake should register itself")
	}
	if info.Kind != registry.KindGame {
		t.Errorf("kind = %v, want game", info.Kind)
	}
	if len(info.Thumb) != registry.ThumbH {
		t.Errorf("thumbnail has %d rows", len(info.Thumb))
	}
}
