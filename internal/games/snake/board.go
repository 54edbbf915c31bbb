package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-collab/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var vectors = map[Direction]core.Point{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Snake is the player. Body runs tail to head, so the head is the last cell.
type Snake struct {
	Body      []core.Point
	Direction Direction
	Growing   bool
	Dead      bool

	growthPerApple int
	growNumber     int
	timer          time.Duration
	queue          chan Direction
}

// NewSnake creates a two-cell snake near the bottom left of a board of
// height h, heading up.
func NewSnake(h, growthPerApple, queueSize int) *Snake {
	return &Snake{
		Body:           []core.Point{{X: 10, Y: h - 4}, {X: 10, Y: h - 5}},
		Direction:      DirUp,
		growthPerApple: growthPerApple,
		queue:          make(chan Direction, queueSize),
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.Body[len(s.Body)-1]
}

// Occupies reports whether any body cell is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, c := range s.Body {
		if c == p {
			return true
		}
	}
	return false
}

// Queue adds a direction to the turn queue. Presses beyond its capacity are
// dropped and Queue returns false.
func (s *Snake) Queue(d Direction) bool {
	select {
	case s.queue <- d:
		return true
	default:
		return false
	}
}

// Queued returns the number of turns waiting.
func (s *Snake) Queued() int {
	return len(s.queue)
}

// Update moves the snake one cell if a step's worth of time has passed at
// the given speed in cells per second. It reports whether the snake moved.
func (s *Snake) Update(now time.Duration, speed float64) bool {
	step := time.Duration(float64(time.Second) / speed)
	if s.Dead || now-s.timer < step {
		return false
	}

	s.timer = now
	s.changeDirection()
	s.Body = append(s.Body, s.Head().Add(vectors[s.Direction]))
	if s.Growing {
		s.grow()
	} else {
		s.Body = s.Body[1:]
	}
	return true
}

// changeDirection takes one queued turn. Turns along the current axis are
// ignored.
func (s *Snake) changeDirection() {
	select {
	case d := <-s.queue:
		if d != s.Direction && d != s.Direction.Opposite() {
			s.Direction = d
		}
	default:
	}
}

func (s *Snake) grow() {
	s.growNumber++
	if s.growNumber == s.growthPerApple {
		s.growNumber = 0
		s.Growing = false
	}
}

// Board is one run of the game: the snake, the walls and the apple.
type Board struct {
	W, H  int
	Walls map[core.Point]bool
	Snake *Snake
	Apple core.Point
	Score int
	Level int

	rng *rand.Rand
}

// NewBoard creates a board of w x h cells with a bordered random level.
func NewBoard(w, h, growthPerApple, queueSize int, rng *rand.Rand) *Board {
	b := &Board{W: w, H: h, rng: rng}
	b.Level = rng.Intn(LevelCount)
	b.Walls = MakeWalls(w, h, b.Level)
	b.Snake = NewSnake(h, growthPerApple, queueSize)
	b.Apple = b.respawn()
	return b
}

// respawn picks a random cell outside the walls and the snake.
func (b *Board) respawn() core.Point {
	for {
		p := core.Point{X: b.rng.Intn(b.W), Y: b.rng.Intn(b.H)}
		if !b.Walls[p] && !b.Snake.Occupies(p) {
			return p
		}
	}
}

// CheckCollisions handles the head landing on the apple, a wall or the
// snake's own body, in that order.
func (b *Board) CheckCollisions() {
	head := b.Snake.Head()
	switch {
	case head == b.Apple:
		b.Snake.Growing = true
		b.Apple = b.respawn()
		b.Score++
	case b.Walls[head]:
		b.Snake.Dead = true
	case hasDuplicate(b.Snake.Body):
		b.Snake.Dead = true
	}
}

func hasDuplicate(cells []core.Point) bool {
	seen := make(map[core.Point]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}
