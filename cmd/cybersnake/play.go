package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cyber-snake/internal/audio"
	"github.com/vovakirdan/cyber-snake/internal/config"
	"github.com/vovakirdan/cyber-snake/internal/platform/tui"
	"github.com/vovakirdan/cyber-snake/internal/storage"
	"github.com/vovakirdan/cyber-snake/internal/theme"
)

var (
	flagDifficulty  string
	flagTheme       string
	flagNoSound     bool
	flagNoParticles bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a snake run in the current terminal.

Controls:
  Arrows/WASD - Steer the snake
  Space       - Pause
  T           - Cycle theme
  M           - Toggle sound
  R           - Restart
  Ctrl+S      - Save a screenshot
  Q/Esc       - Quit

Difficulty options:
  easy   - Slower start, gentler speed ramp, more power-ups
  normal - Standard tuning
  hard   - Faster start, steeper speed ramp, earlier obstacles
  fixed  - No speed progression at all

Examples:
  cybersnake play
  cybersnake play --difficulty easy
  cybersnake play --theme matrix --no-sound
  cybersnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	registerPlayFlags(playCmd)
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Visual theme (see 'cybersnake themes')")
	cmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	cmd.Flags().BoolVar(&flagNoParticles, "no-particles", false, "Disable particle effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		if !config.ValidPreset(flagDifficulty) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Valid presets: easy, normal, hard, fixed.")
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagNoParticles {
		cfg.UI.Particles = false
	}

	themeID := cfg.UI.Theme
	if flagTheme != "" {
		themeID = flagTheme
	}
	th, err := theme.Get(themeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'cybersnake themes' to see available themes.")
		os.Exit(1)
	}

	// Get terminal size, fall back to a conservative default
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := newLogger()

	// Open score storage
	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	sound := audio.NewPlayer(cfg.UI.Sound && !flagNoSound)
	if sound.Enabled() {
		if initErr := sound.Init(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open audio device: %v\n", initErr)
			sound.SetEnabled(false)
		}
	}

	// Run the game
	runErr := tui.Run(tui.Options{
		GameConfig: cfg,
		Theme:      th,
		Seed:       flagSeed,
		ScreenW:    width,
		ScreenH:    height,
		Store:      store,
		Sound:      sound,
		Logger:     logger,
	})

	sound.Close()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger builds the session logger. Log output must not reach the
// terminal while Bubble Tea owns it, so without --debug everything is
// discarded.
func newLogger() (*log.Logger, func()) {
	if flagDebug == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagDebug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cybersnake",
	})
	return logger, func() { f.Close() }
}
