package config

import (
	_ "embed"
)

//go:embed defaults/cybersnake.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration. It mirrors the
// embedded YAML and is the fallback when that fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Speed: SpeedConfig{
			BaseDelayMs: 150,
			MinDelayMs:  50,
			Decay:       0.98,
		},
		Scoring: ScoringConfig{
			Food:  10,
			Slow:  5,
			Boost: 15,
		},
		PowerUps: PowerUpConfig{
			Chance:        0.05,
			FieldLifetime: 200,
			SlowDuration:  100,
			BoostDuration: 50,
			SlowFactor:    1.5,
			BoostFactor:   0.5,
		},
		Levels: LevelConfig{
			FirstThreshold: 100,
			ThresholdStep:  50,
			MaxObstacles:   5,
		},
		UI: UIConfig{
			Theme:     "cyberpunk",
			Sound:     true,
			Particles: true,
		},
		Storage: StorageConfig{
			Path: "~/.cybersnake/scores.db",
		},
	}
}
