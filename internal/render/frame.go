package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cyber-snake/internal/engine"
	"github.com/vovakirdan/cyber-snake/internal/theme"
)

// HUD carries the status values shown around the arena. The renderer
// only formats them; computing speed percentage and effect labels is
// the caller's job.
type HUD struct {
	Score       int
	Length      int
	Level       int
	SpeedPct    int
	Effect      string // active effect name, empty when none
	EffectTicks int
	Muted       bool
}

// Renderer composes engine state into a themed screen buffer.
type Renderer struct {
	screen *Screen
	theme  theme.Theme
}

// NewRenderer returns a renderer drawing into a width x height buffer.
func NewRenderer(width, height int, th theme.Theme) *Renderer {
	return &Renderer{
		screen: NewScreen(width, height),
		theme:  th,
	}
}

// SetTheme swaps the active theme. Takes effect on the next Compose.
func (r *Renderer) SetTheme(th theme.Theme) {
	r.theme = th
}

// Theme returns the active theme.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// Resize adjusts the buffer to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// Size returns the current buffer dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.screen.Width(), r.screen.Height()
}

// Clear blanks the buffer without composing a frame.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Compose redraws the whole frame from a step outcome. Particles go
// last so bursts read on top of the playfield.
func (r *Renderer) Compose(out engine.StepOutcome, arena engine.Arena, hud HUD) {
	r.screen.Clear()
	r.drawBorder(arena)
	r.drawObstacles(out.Obstacles)
	r.drawSnake(out.Snake, out.Dir)
	r.drawFood(out.Food)
	r.drawPowerUps(out.PowerUps)
	r.drawHUD(hud)
	r.drawParticles(out.Particles, arena)
}

// Styled returns the current frame with ANSI styling applied.
func (r *Renderer) Styled() string {
	return r.screen.Styled()
}

// Plain returns the current frame without styling. Used for
// screenshots and tests.
func (r *Renderer) Plain() string {
	return r.screen.String()
}

// drawBorder draws the frame one cell outside the playable interior.
func (r *Renderer) drawBorder(arena engine.Arena) {
	frame := arena.Inset(-1)
	b := r.theme.Border
	color := r.theme.Colors.Border

	for x := frame.MinX + 1; x < frame.MaxX; x++ {
		r.screen.Set(x, frame.MinY, b.Horizontal, color)
		r.screen.Set(x, frame.MaxY, b.Horizontal, color)
	}
	for y := frame.MinY + 1; y < frame.MaxY; y++ {
		r.screen.Set(frame.MinX, y, b.Vertical, color)
		r.screen.Set(frame.MaxX, y, b.Vertical, color)
	}
	r.screen.Set(frame.MinX, frame.MinY, b.TopLeft, color)
	r.screen.Set(frame.MaxX, frame.MinY, b.TopRight, color)
	r.screen.Set(frame.MinX, frame.MaxY, b.BottomLeft, color)
	r.screen.Set(frame.MaxX, frame.MaxY, b.BottomRight, color)
}

func (r *Renderer) drawObstacles(obstacles []engine.Cell) {
	for _, c := range obstacles {
		r.screen.Set(c.X, c.Y, '█', r.theme.Colors.Obstacle)
	}
}

// drawSnake draws the body then the head. The head glyph points in
// the travel direction.
func (r *Renderer) drawSnake(body []engine.Cell, dir engine.Direction) {
	for i := len(body) - 1; i >= 1; i-- {
		c := body[i]
		r.screen.Set(c.X, c.Y, r.theme.Body, r.theme.Colors.Body)
	}
	if len(body) == 0 {
		return
	}
	head := body[0]
	r.screen.Set(head.X, head.Y, headGlyph(dir, r.theme.Head), r.theme.Colors.Head)
}

func headGlyph(dir engine.Direction, fallback rune) rune {
	switch dir {
	case engine.DirRight:
		return '▶'
	case engine.DirLeft:
		return '◀'
	case engine.DirUp:
		return '▲'
	case engine.DirDown:
		return '▼'
	default:
		return fallback
	}
}

func (r *Renderer) drawFood(food engine.Cell) {
	r.screen.Set(food.X, food.Y, r.theme.Food, r.theme.Colors.Food)
}

func (r *Renderer) drawPowerUps(ups []engine.PowerUp) {
	for _, p := range ups {
		r.screen.Set(p.Cell.X, p.Cell.Y, p.Kind.Glyph(), r.theme.Colors.PowerUp)
	}
}

// drawParticles clips to the arena interior so bursts never bleed
// into the frame or the HUD.
func (r *Renderer) drawParticles(parts []engine.Particle, arena engine.Arena) {
	for _, p := range parts {
		c := p.Cell()
		if !arena.Contains(c) {
			continue
		}
		tint := r.theme.Colors.Particles[p.Tint%len(r.theme.Colors.Particles)]
		r.screen.Set(c.X, c.Y, p.Glyph(), tint)
	}
}

// drawHUD lays out the status rows above the arena and the key hints
// below it. Wider terminals get more stats.
func (r *Renderer) drawHUD(hud HUD) {
	width := r.screen.Width()
	height := r.screen.Height()
	colors := r.theme.Colors

	r.screen.DrawText(2, 0, r.theme.Title, colors.HUD)

	r.screen.DrawText(2, 1, fmt.Sprintf("◢◤ SCORE: %04d ◥◣", hud.Score), colors.HUD)
	if width > 40 {
		r.screen.DrawText(25, 1, fmt.Sprintf("◢◤ LENGTH: %02d ◥◣", hud.Length), colors.HUD)
	}
	if width > 60 {
		r.screen.DrawText(45, 1, fmt.Sprintf("◢◤ LEVEL: %02d ◥◣", hud.Level), colors.HUD)
	}
	if width > 80 {
		r.screen.DrawText(65, 1, fmt.Sprintf("◢◤ SPEED: %02d%% ◥◣", hud.SpeedPct), colors.HUD)
	}

	if hud.Effect != "" {
		status := fmt.Sprintf("⚡ %s: %d", strings.ToUpper(hud.Effect), hud.EffectTicks)
		r.screen.DrawText(width-len([]rune(status))-2, 0, status, colors.PowerUp)
	}
	if hud.Muted {
		r.screen.DrawText(width-8, 0, "♪ OFF", colors.HUD)
	}

	hints := "◢ SPACE:Pause ◤ T:Theme ◢ M:Audio ◤ ESC/Q:Quit ◢ R:Restart ◤"
	if len([]rune(hints)) > width-4 {
		hints = "SPACE:Pause • T:Theme • Q:Quit"
	}
	r.screen.DrawTextCentered(height-1, hints, colors.HUD)
}

// Overlay draws a centered box over the current frame using the
// theme's border glyphs. The title sits on its own row above the
// remaining lines.
func (r *Renderer) Overlay(title string, lines ...string) {
	width := r.screen.Width()
	height := r.screen.Height()
	b := r.theme.Border
	color := r.theme.Colors.Overlay

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 4
	boxX := (width - boxW) / 2
	boxY := (height - boxH) / 2

	for y := boxY; y < boxY+boxH && y < height; y++ {
		for x := boxX; x < boxX+boxW && x < width; x++ {
			if x < 0 || y < 0 {
				continue
			}
			top := y == boxY
			bottom := y == boxY+boxH-1
			left := x == boxX
			right := x == boxX+boxW-1
			switch {
			case top && left:
				r.screen.Set(x, y, b.TopLeft, color)
			case top && right:
				r.screen.Set(x, y, b.TopRight, color)
			case bottom && left:
				r.screen.Set(x, y, b.BottomLeft, color)
			case bottom && right:
				r.screen.Set(x, y, b.BottomRight, color)
			case top || bottom:
				r.screen.Set(x, y, b.Horizontal, color)
			case left || right:
				r.screen.Set(x, y, b.Vertical, color)
			default:
				r.screen.Set(x, y, ' ', "")
			}
		}
	}

	r.screen.DrawTextCentered(boxY+1, title, color)
	for i, line := range lines {
		r.screen.DrawTextCentered(boxY+3+i, line, color)
	}
}
