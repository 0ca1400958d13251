package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.cybersnake/config.yaml -> ./configs/cybersnake.yaml -> embedded default
//
// Every unmarshal starts from DefaultGameConfig, so partial files only
// override the keys they set.
func Load(customPath string) (GameConfig, error) {
	// An explicit path must work or the run fails loudly.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := DefaultGameConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultGameConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfg := userConfigPath(); userCfg != "" {
		if cfg, ok := tryLoad(userCfg); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "cybersnake.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and parses one candidate file. Unreadable or broken
// files are skipped so the search can continue.
func tryLoad(path string) (GameConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, false
	}
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cybersnake", "config.yaml")
}
