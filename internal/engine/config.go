package engine

import (
	"fmt"
	"time"
)

// Config holds every tunable of a single run. Construct it with
// DefaultConfig and override fields; New validates the result.
type Config struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // Gameplay RNG seed; 0 is replaced by the platform layer

	BaseDelay  time.Duration // Initial delay between ticks
	MinDelay   time.Duration // Decay floor for the base delay
	SpeedDecay float64       // Per-food multiplier on the base delay, 1.0 disables

	FoodScore  int // Points per food
	SlowScore  int // Bonus for picking up a slow fruit
	BoostScore int // Bonus for picking up a boost

	SlowEffectTicks  int     // Slow effect duration
	BoostEffectTicks int     // Boost effect duration
	SlowDelayFactor  float64 // Delay multiplier while slowed
	BoostDelayFactor float64 // Delay multiplier while boosted

	PowerUpFieldTicks int     // Field lifetime of an unconsumed pickup
	PowerUpChance     float64 // Spawn probability per food eaten

	FirstLevelThreshold int // Score needed for level 2
	LevelThresholdStep  int // Threshold increase per level
	MaxObstacles        int // Obstacle count cap

	Particles bool // Spawn cosmetic particles
}

// DefaultConfig returns the standard gameplay tuning.
func DefaultConfig() Config {
	return Config{
		ScreenW: 80,
		ScreenH: 24,

		BaseDelay:  150 * time.Millisecond,
		MinDelay:   50 * time.Millisecond,
		SpeedDecay: 0.98,

		FoodScore:  10,
		SlowScore:  5,
		BoostScore: 15,

		SlowEffectTicks:  100,
		BoostEffectTicks: 50,
		SlowDelayFactor:  1.5,
		BoostDelayFactor: 0.5,

		PowerUpFieldTicks: 200,
		PowerUpChance:     0.05,

		FirstLevelThreshold: 100,
		LevelThresholdStep:  50,
		MaxObstacles:        5,

		Particles: true,
	}
}

// Validate reports the first configuration problem, if any.
func (c Config) Validate() error {
	switch {
	case c.BaseDelay <= 0:
		return fmt.Errorf("engine: base delay must be positive, got %v", c.BaseDelay)
	case c.MinDelay <= 0 || c.MinDelay > c.BaseDelay:
		return fmt.Errorf("engine: min delay %v must be in (0, %v]", c.MinDelay, c.BaseDelay)
	case c.SpeedDecay <= 0 || c.SpeedDecay > 1:
		return fmt.Errorf("engine: speed decay %v must be in (0, 1]", c.SpeedDecay)
	case c.PowerUpChance < 0 || c.PowerUpChance > 1:
		return fmt.Errorf("engine: power-up chance %v must be in [0, 1]", c.PowerUpChance)
	case c.SlowEffectTicks <= 0 || c.BoostEffectTicks <= 0:
		return fmt.Errorf("engine: effect durations must be positive")
	case c.SlowDelayFactor <= 0 || c.BoostDelayFactor <= 0:
		return fmt.Errorf("engine: delay factors must be positive")
	case c.PowerUpFieldTicks <= 0:
		return fmt.Errorf("engine: power-up field lifetime must be positive")
	case c.FirstLevelThreshold <= 0 || c.LevelThresholdStep <= 0:
		return fmt.Errorf("engine: level thresholds must be positive")
	case c.MaxObstacles < 0:
		return fmt.Errorf("engine: obstacle cap must not be negative")
	}
	return nil
}
