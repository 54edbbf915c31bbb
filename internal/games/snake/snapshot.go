package snake

// Snapshot captures the board state for determinism testing and debugging.
type Snapshot struct {
	Level    int
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	AppleX   int
	AppleY   int
	Growing  bool
	Dead     bool
	Queued   int
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	head := b.Snake.Head()
	return Snapshot{
		Level:    b.Level,
		Score:    b.Score,
		SnakeLen: len(b.Snake.Body),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      b.Snake.Direction,
		AppleX:   b.Apple.X,
		AppleY:   b.Apple.Y,
		Growing:  b.Snake.Growing,
		Dead:     b.Snake.Dead,
		Queued:   b.Snake.Queued(),
	}
}
