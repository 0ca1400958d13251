package engine

import "time"

// Snapshot captures the gameplay-relevant state in a comparable value,
// used for determinism verification and replay checks. Cosmetic particle
// state is not part of the snapshot.
type Snapshot struct {
	Tick  uint64
	Alive bool

	Score         int
	Level         int
	NextThreshold int

	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction

	FoodX int
	FoodY int

	ObstacleCount   int
	PowerUpCount    int
	EffectKind      string // Empty when no effect is active
	EffectRemaining int

	BaseDelay time.Duration
}

// Snapshot returns the current gameplay snapshot.
func (e *Engine) Snapshot() Snapshot {
	head := e.snake.Head()
	s := Snapshot{
		Tick:          e.tick,
		Alive:         e.alive,
		Score:         e.score,
		Level:         e.level,
		NextThreshold: e.nextThreshold,
		SnakeLen:      e.snake.Len(),
		HeadX:         head.X,
		HeadY:         head.Y,
		Dir:           e.snake.Dir(),
		FoodX:         e.food.X,
		FoodY:         e.food.Y,
		ObstacleCount: len(e.obstacles),
		PowerUpCount:  len(e.powerUps),
		BaseDelay:     e.baseDelay,
	}
	if e.effect != nil {
		s.EffectKind = e.effect.Kind.String()
		s.EffectRemaining = e.effect.Remaining
	}
	return s
}
