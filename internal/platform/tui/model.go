package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyber-snake/internal/audio"
	"github.com/vovakirdan/cyber-snake/internal/config"
	"github.com/vovakirdan/cyber-snake/internal/engine"
	"github.com/vovakirdan/cyber-snake/internal/render"
	"github.com/vovakirdan/cyber-snake/internal/storage"
	"github.com/vovakirdan/cyber-snake/internal/theme"
)

// Minimum terminal size for a playable board plus the HUD rows.
const (
	minScreenW = 20
	minScreenH = 10
)

// Options bundles everything a game session needs.
type Options struct {
	GameConfig config.GameConfig
	Theme      theme.Theme
	Seed       int64 // 0 picks a time-based seed
	ScreenW    int
	ScreenH    int
	Store      *storage.Store // nil disables score persistence
	Sound      *audio.Player  // nil disables sound
	Logger     *log.Logger    // nil discards log output
}

// Model is the Bubble Tea model for a game session. It owns the engine,
// feeds it buffered input on every tick and re-arms the tick timer with
// whatever delay the engine reports, so the terminal loop speeds up as
// the simulation does.
type Model struct {
	eng      *engine.Engine
	out      engine.StepOutcome
	renderer *render.Renderer
	keys     *KeyMapper
	store    *storage.Store
	sound    *audio.Player
	logger   *log.Logger

	gameCfg   config.GameConfig
	baseDelay time.Duration // delay at level 1, baseline for the speed readout

	width  int
	height int

	pending    engine.Input
	paused     bool
	ticking    bool // a tick message is scheduled
	quitting   bool
	scoreSaved bool // whether the score has been saved for the current run
	tooSmall   bool
	topScores  []storage.ScoreEntry
}

// NewModel builds a session model and its first engine instance.
func NewModel(opts Options) (Model, error) {
	if opts.ScreenW < minScreenW || opts.ScreenH < minScreenH {
		return Model{}, fmt.Errorf("tui: terminal %dx%d is below the %dx%d minimum",
			opts.ScreenW, opts.ScreenH, minScreenW, minScreenH)
	}

	// Use a time-based seed if not specified
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engCfg := opts.GameConfig.ToEngine(opts.ScreenW, opts.ScreenH, seed)
	eng, err := engine.New(engCfg)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.NewPlayer(false)
	}

	return Model{
		eng:       eng,
		out:       eng.Outcome(),
		renderer:  render.NewRenderer(opts.ScreenW, opts.ScreenH, opts.Theme),
		keys:      NewKeyMapper(),
		store:     opts.Store,
		sound:     sound,
		logger:    logger,
		gameCfg:   opts.GameConfig,
		baseDelay: engCfg.BaseDelay,
		width:     opts.ScreenW,
		height:    opts.ScreenH,
		ticking:   true, // Init arms the first tick
	}, nil
}

// Init schedules the first simulation tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.out.Delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// After a crash any key besides the utility actions starts a new run.
	if m.eng != nil && !m.out.Alive {
		switch action {
		case ActionTheme, ActionSound, ActionScreenshot:
		default:
			return m.restart()
		}
	}

	switch action {
	case ActionTurnUp, ActionTurnDown, ActionTurnLeft, ActionTurnRight:
		if dir, ok := action.Direction(); ok {
			// Only the most recent turn before a tick counts.
			m.pending = engine.Turn(dir)
		}
	case ActionPause:
		return m.togglePause()
	case ActionRestart:
		return m.restart()
	case ActionTheme:
		next := theme.Next(m.renderer.Theme().ID)
		m.renderer.SetTheme(next)
		if m.eng != nil {
			m.eng.EmitSparkle()
		}
	case ActionSound:
		m.sound.Toggle()
	case ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.paused = true
		return m, nil
	}
	m.paused = false
	// The tick chain stops while paused, so resuming may need to re-arm it.
	if !m.ticking && m.eng != nil && m.out.Alive {
		m.ticking = true
		return m, tickCmd(m.eng.TickDelay())
	}
	return m, nil
}

// restart throws the current engine away and builds a fresh one with a new
// seed, so every run gets its own obstacle and food layout.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.pending = engine.Input{}
	m.paused = false
	m.scoreSaved = false
	m.topScores = nil

	m.rebuild()
	if m.tooSmall || m.eng == nil {
		m.ticking = false
		return m, nil
	}
	if !m.ticking {
		m.ticking = true
		return m, tickCmd(m.out.Delay)
	}
	return m, nil
}

// handleResize processes window resize events. Bubble Tea reports the
// size once at startup; that first message matches the probed size and
// must not throw away the seeded engine.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.width && msg.Height == m.height {
		return m, nil
	}
	m.width, m.height = msg.Width, msg.Height
	m.renderer.Resize(msg.Width, msg.Height)

	// Leave the final screen up when the run already ended.
	if m.eng != nil && !m.out.Alive && !m.tooSmall {
		return m, nil
	}

	m.rebuild()
	if m.tooSmall || m.eng == nil {
		m.ticking = false
		return m, nil
	}
	if !m.ticking {
		m.ticking = true
		return m, tickCmd(m.out.Delay)
	}
	return m, nil
}

// rebuild constructs a new engine for the current terminal size. Too small
// a terminal parks the session behind an overlay until the next resize.
func (m *Model) rebuild() {
	if m.width < minScreenW || m.height < minScreenH {
		m.tooSmall = true
		m.eng = nil
		return
	}

	engCfg := m.gameCfg.ToEngine(m.width, m.height, time.Now().UnixNano())
	eng, err := engine.New(engCfg)
	if err != nil {
		m.logger.Warn("could not rebuild game for terminal size",
			"width", m.width, "height", m.height, "error", err)
		m.tooSmall = true
		m.eng = nil
		return
	}

	m.tooSmall = false
	m.eng = eng
	m.baseDelay = engCfg.BaseDelay
	m.out = eng.Outcome()
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.eng == nil || m.tooSmall || m.paused || !m.out.Alive {
		m.ticking = false
		return m, nil
	}

	m.out = m.eng.Step(m.pending)
	m.pending = engine.Input{}

	m.sound.PlayAll(m.out.Events)

	if !m.out.Alive {
		m.finishRun()
		m.ticking = false
		return m, nil
	}

	// Continue ticking at whatever pace the simulation reached.
	return m, tickCmd(m.out.Delay)
}

// finishRun persists the score once per run and loads the leaderboard for
// the game over overlay. Storage problems are logged and otherwise ignored.
func (m *Model) finishRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}
	if m.out.Score > 0 {
		if _, err := m.store.SaveScore(m.out.Score, len(m.out.Snake), m.out.Level); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	scores, err := m.store.TopScores(storage.KeepTop)
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		return
	}
	m.topScores = scores
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall || m.eng == nil {
		m.renderer.Clear()
		m.renderer.Overlay("TERMINAL TOO SMALL", "Resize to continue")
		return m.renderer.Styled()
	}

	m.renderer.Compose(m.out, m.eng.Arena(), m.hud())
	switch {
	case !m.out.Alive:
		m.renderer.Overlay("GAME OVER!", m.gameOverLines()...)
	case m.paused:
		m.renderer.Overlay("PAUSED", "Press SPACE to continue")
	}
	return m.renderer.Styled()
}

func (m Model) hud() render.HUD {
	hud := render.HUD{
		Score:    m.out.Score,
		Length:   len(m.out.Snake),
		Level:    m.out.Level,
		SpeedPct: speedPercent(m.out.Delay, m.baseDelay),
		Muted:    !m.sound.Enabled(),
	}
	if m.out.Effect != nil {
		hud.Effect = m.out.Effect.Kind.String()
		hud.EffectTicks = m.out.Effect.Remaining
	}
	return hud
}

// speedPercent reports how far the tick delay dropped from its starting
// value. A slow effect can push it negative.
func speedPercent(delay, base time.Duration) int {
	if base <= 0 {
		return 0
	}
	return int((1 - float64(delay)/float64(base)) * 100)
}

func (m Model) gameOverLines() []string {
	lines := []string{
		fmt.Sprintf("Final Score: %d", m.out.Score),
		fmt.Sprintf("Snake Length: %d", len(m.out.Snake)),
	}
	if len(m.topScores) > 0 {
		parts := make([]string, len(m.topScores))
		for i, s := range m.topScores {
			parts[i] = strconv.Itoa(s.Score)
		}
		lines = append(lines, "High Scores: "+strings.Join(parts, ", "))
	}
	lines = append(lines, "Press any key to play again • 'q' to quit")
	return lines
}

// saveScreenshot saves the current frame without colors to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	if m.eng != nil && !m.tooSmall {
		m.renderer.Compose(m.out, m.eng.Arena(), m.hud())
	}

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".cybersnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("cybersnake_%s.txt", timestamp))

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.renderer.Plain()), 0o600)
}

// Run starts a full screen Bubble Tea program for one game session and
// blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
