package engine

import "testing"

func TestPowerUpKindGlyphs(t *testing.T) {
	cases := map[PowerUpKind]rune{
		PowerSlow:  'S',
		PowerBoost: 'B',
		PowerTrap:  'X',
	}
	for kind, want := range cases {
		if kind.Glyph() != want {
			t.Errorf("%v.Glyph() = %q, want %q", kind, kind.Glyph(), want)
		}
	}
}

func TestPowerUpKindStrings(t *testing.T) {
	cases := map[PowerUpKind]string{
		PowerSlow:  "slow",
		PowerBoost: "boost",
		PowerTrap:  "trap",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("PowerUpKind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		cfg := DefaultConfig()
		f(&cfg)
		return cfg
	}

	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", DefaultConfig(), true},
		{"zero base delay", mutate(func(c *Config) { c.BaseDelay = 0 }), false},
		{"min above base", mutate(func(c *Config) { c.MinDelay = c.BaseDelay * 2 }), false},
		{"zero decay", mutate(func(c *Config) { c.SpeedDecay = 0 }), false},
		{"decay above one", mutate(func(c *Config) { c.SpeedDecay = 1.01 }), false},
		{"decay disabled", mutate(func(c *Config) { c.SpeedDecay = 1.0 }), true},
		{"negative chance", mutate(func(c *Config) { c.PowerUpChance = -0.1 }), false},
		{"chance above one", mutate(func(c *Config) { c.PowerUpChance = 1.5 }), false},
		{"chance zero", mutate(func(c *Config) { c.PowerUpChance = 0 }), true},
		{"zero effect ticks", mutate(func(c *Config) { c.SlowEffectTicks = 0 }), false},
		{"zero field ticks", mutate(func(c *Config) { c.PowerUpFieldTicks = 0 }), false},
		{"zero threshold", mutate(func(c *Config) { c.FirstLevelThreshold = 0 }), false},
		{"negative obstacle cap", mutate(func(c *Config) { c.MaxObstacles = -1 }), false},
		{"no obstacles", mutate(func(c *Config) { c.MaxObstacles = 0 }), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate should have failed")
			}
		})
	}
}
