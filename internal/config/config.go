// Package config provides YAML-based game configuration loading and
// difficulty presets for cyber-snake.
package config

import (
	"time"

	"github.com/vovakirdan/cyber-snake/internal/engine"
)

// GameConfig contains all tunables for a cyber-snake session.
type GameConfig struct {
	Speed    SpeedConfig   `yaml:"speed"`
	Scoring  ScoringConfig `yaml:"scoring"`
	PowerUps PowerUpConfig `yaml:"power_ups"`
	Levels   LevelConfig   `yaml:"levels"`
	UI       UIConfig      `yaml:"ui"`
	Storage  StorageConfig `yaml:"storage"`
}

// SpeedConfig defines the tick delay model.
type SpeedConfig struct {
	BaseDelayMs int     `yaml:"base_delay_ms"`
	MinDelayMs  int     `yaml:"min_delay_ms"`
	Decay       float64 `yaml:"decay"` // per-meal multiplier, 1.0 disables speed-up
}

// ScoringConfig defines points awarded per pickup.
type ScoringConfig struct {
	Food  int `yaml:"food"`
	Slow  int `yaml:"slow"`
	Boost int `yaml:"boost"`
}

// PowerUpConfig defines power-up spawn odds and durations.
type PowerUpConfig struct {
	Chance        float64 `yaml:"chance"` // spawn roll per meal
	FieldLifetime int     `yaml:"field_lifetime"`
	SlowDuration  int     `yaml:"slow_duration"`
	BoostDuration int     `yaml:"boost_duration"`
	SlowFactor    float64 `yaml:"slow_factor"`
	BoostFactor   float64 `yaml:"boost_factor"`
}

// LevelConfig defines the score thresholds and obstacle cap.
type LevelConfig struct {
	FirstThreshold int `yaml:"first_threshold"`
	ThresholdStep  int `yaml:"threshold_step"`
	MaxObstacles   int `yaml:"max_obstacles"`
}

// UIConfig defines presentation defaults the flags can override.
type UIConfig struct {
	Theme     string `yaml:"theme"`
	Sound     bool   `yaml:"sound"`
	Particles bool   `yaml:"particles"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ToEngine maps the YAML tunables onto an engine configuration for the
// given screen and seed.
func (c GameConfig) ToEngine(screenW, screenH int, seed int64) engine.Config {
	return engine.Config{
		ScreenW:             screenW,
		ScreenH:             screenH,
		Seed:                seed,
		BaseDelay:           time.Duration(c.Speed.BaseDelayMs) * time.Millisecond,
		MinDelay:            time.Duration(c.Speed.MinDelayMs) * time.Millisecond,
		SpeedDecay:          c.Speed.Decay,
		FoodScore:           c.Scoring.Food,
		SlowScore:           c.Scoring.Slow,
		BoostScore:          c.Scoring.Boost,
		SlowEffectTicks:     c.PowerUps.SlowDuration,
		BoostEffectTicks:    c.PowerUps.BoostDuration,
		SlowDelayFactor:     c.PowerUps.SlowFactor,
		BoostDelayFactor:    c.PowerUps.BoostFactor,
		PowerUpFieldTicks:   c.PowerUps.FieldLifetime,
		PowerUpChance:       c.PowerUps.Chance,
		FirstLevelThreshold: c.Levels.FirstThreshold,
		LevelThresholdStep:  c.Levels.ThresholdStep,
		MaxObstacles:        c.Levels.MaxObstacles,
		Particles:           c.UI.Particles,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns all known difficulty presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ValidPreset reports whether name is a known difficulty preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
