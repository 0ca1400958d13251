package theme

// The built-in skins. Glyph sets follow the classic neon look of the
// game; palettes are 256-color ANSI so they degrade gracefully on basic
// terminals.

// DefaultID is the skin used when none is configured.
const DefaultID = "cyberpunk"

func init() {
	Register(Theme{
		ID:    "cyberpunk",
		Title: "CYBERPUNK 2077",

		Head:     '◈',
		Body:     '◇',
		Food:     '⧫',
		Obstacle: '█',
		Border: BorderSet{
			Horizontal: '━', Vertical: '┃',
			TopLeft: '┏', TopRight: '┓',
			BottomLeft: '┗', BottomRight: '┛',
		},
		Colors: Palette{
			Head:      "201",
			Body:      "51",
			Food:      "226",
			PowerUp:   "213",
			Obstacle:  "165",
			Border:    "197",
			HUD:       "87",
			Overlay:   "213",
			Particles: [3]string{"201", "51", "226"},
		},
	})

	Register(Theme{
		ID:    "matrix",
		Title: "MATRIX CODE",

		Head:     '⬢',
		Body:     '⬡',
		Food:     '◉',
		Obstacle: '█',
		Border: BorderSet{
			Horizontal: '▓', Vertical: '▓',
			TopLeft: '▓', TopRight: '▓',
			BottomLeft: '▓', BottomRight: '▓',
		},
		Colors: Palette{
			Head:      "46",
			Body:      "34",
			Food:      "201",
			PowerUp:   "118",
			Obstacle:  "22",
			Border:    "40",
			HUD:       "82",
			Overlay:   "46",
			Particles: [3]string{"46", "118", "22"},
		},
	})

	Register(Theme{
		ID:    "tron",
		Title: "TRON LEGACY",

		Head:     '●',
		Body:     '○',
		Food:     '◆',
		Obstacle: '█',
		Border: BorderSet{
			Horizontal: '═', Vertical: '║',
			TopLeft: '╔', TopRight: '╗',
			BottomLeft: '╚', BottomRight: '╝',
		},
		Colors: Palette{
			Head:      "51",
			Body:      "39",
			Food:      "220",
			PowerUp:   "123",
			Obstacle:  "24",
			Border:    "45",
			HUD:       "87",
			Overlay:   "51",
			Particles: [3]string{"51", "39", "220"},
		},
	})

	Register(Theme{
		ID:    "hologram",
		Title: "HOLOGRAM",

		Head:     '⬢',
		Body:     '⬣',
		Food:     '✧',
		Obstacle: '█',
		Border: BorderSet{
			Horizontal: '━', Vertical: '┃',
			TopLeft: '┏', TopRight: '┓',
			BottomLeft: '┗', BottomRight: '┛',
		},
		Colors: Palette{
			Head:      "207",
			Body:      "159",
			Food:      "123",
			PowerUp:   "225",
			Obstacle:  "60",
			Border:    "111",
			HUD:       "195",
			Overlay:   "207",
			Particles: [3]string{"207", "159", "123"},
		},
	})

	Register(Theme{
		ID:    "vaporwave",
		Title: "VAPORWAVE",

		Head:     '◉',
		Body:     '◎',
		Food:     '★',
		Obstacle: '█',
		Border: BorderSet{
			Horizontal: '─', Vertical: '│',
			TopLeft: '╭', TopRight: '╮',
			BottomLeft: '╰', BottomRight: '╯',
		},
		Colors: Palette{
			Head:      "213",
			Body:      "141",
			Food:      "219",
			PowerUp:   "123",
			Obstacle:  "97",
			Border:    "177",
			HUD:       "225",
			Overlay:   "219",
			Particles: [3]string{"213", "123", "219"},
		},
	})
}
