package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyber-snake/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyTurns(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want engine.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, engine.DirUp},
		{"w key", runeKey('w'), engine.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, engine.DirDown},
		{"s key", runeKey('s'), engine.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, engine.DirLeft},
		{"a key", runeKey('a'), engine.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, engine.DirRight},
		{"d key", runeKey('d'), engine.DirRight},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if isQuit {
				t.Fatalf("MapKey(%q) reported quit", tt.msg.String())
			}
			dir, ok := action.Direction()
			if !ok {
				t.Fatalf("action %d carries no direction", action)
			}
			if dir != tt.want {
				t.Errorf("direction = %v, want %v", dir, tt.want)
			}
		})
	}
}

func TestMapKeyQuitKeys(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		runeKey('q'),
	} {
		action, isQuit := km.MapKey(msg)
		if !isQuit {
			t.Errorf("MapKey(%q) should report quit", msg.String())
		}
		if action != ActionQuit {
			t.Errorf("MapKey(%q) = %d, want ActionQuit", msg.String(), action)
		}
	}
}

func TestMapKeyUtilityActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionPause},
		{"r restarts", runeKey('r'), ActionRestart},
		{"shift r restarts", runeKey('R'), ActionRestart},
		{"t cycles theme", runeKey('t'), ActionTheme},
		{"m toggles sound", runeKey('m'), ActionSound},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if isQuit {
				t.Fatalf("MapKey(%q) reported quit", tt.msg.String())
			}
			if action != tt.want {
				t.Errorf("MapKey(%q) = %d, want %d", tt.msg.String(), action, tt.want)
			}
		})
	}
}

func TestMapKeyUnknownIsNone(t *testing.T) {
	km := NewKeyMapper()
	action, isQuit := km.MapKey(runeKey('x'))
	if isQuit || action != ActionNone {
		t.Errorf("MapKey('x') = (%d, %v), want (ActionNone, false)", action, isQuit)
	}
}

func TestDirectionOnlyForTurnActions(t *testing.T) {
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionTheme, ActionSound, ActionQuit} {
		if _, ok := a.Direction(); ok {
			t.Errorf("action %d should not carry a direction", a)
		}
	}
}
