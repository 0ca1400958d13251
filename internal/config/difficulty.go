package config

// ApplyPreset adjusts the config for a named difficulty. Normal keeps
// the loaded values; fixed pins the tick delay by disabling decay.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseDelayMs = 200
		cfg.Speed.MinDelayMs = 80
		cfg.Speed.Decay = 0.99
		cfg.PowerUps.Chance = 0.08
	case DifficultyHard:
		cfg.Speed.BaseDelayMs = 110
		cfg.Speed.MinDelayMs = 35
		cfg.Speed.Decay = 0.96
		cfg.Levels.FirstThreshold = 80
	case DifficultyFixed:
		cfg.Speed.Decay = 1.0
	}
}
