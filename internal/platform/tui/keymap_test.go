package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/console-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCode(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
		ok       bool
	}{
		{"w", runeKey('w'), core.KeyW, true},
		{"shifted W", runeKey('W'), core.KeyW, true},
		{"s", runeKey('s'), core.KeyS, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true},
		{"unbound", runeKey('x'), core.KeyNone, false},
		{"quit is not a paddle key", runeKey('q'), core.KeyNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := km.Code(tc.msg)
			if code != tc.expected || ok != tc.ok {
				t.Errorf("Code(%q) = (%s, %v), expected (%s, %v)", tc.msg.String(), code, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 6 {
		t.Errorf("ShortHelp() has %d bindings, expected 6", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 3 {
		t.Errorf("FullHelp() has %d columns, expected 3", len(km.FullHelp()))
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	ks := NewKeyState(100 * time.Millisecond)
	ks.now = func() time.Time { return now }

	if ks.IsKeyDown(core.KeyW) {
		t.Error("untouched key should be up")
	}

	ks.Press(core.KeyW)
	if !ks.IsKeyDown(core.KeyW) {
		t.Error("key should be down right after a press")
	}
	if ks.IsKeyDown(core.KeyS) {
		t.Error("other keys should stay up")
	}

	now = now.Add(99 * time.Millisecond)
	if !ks.IsKeyDown(core.KeyW) {
		t.Error("key should be down inside the hold window")
	}

	now = now.Add(time.Millisecond)
	if ks.IsKeyDown(core.KeyW) {
		t.Error("key should be up once the hold window has passed")
	}

	// auto-repeat extends the hold
	ks.Press(core.KeyW)
	now = now.Add(50 * time.Millisecond)
	ks.Press(core.KeyW)
	now = now.Add(80 * time.Millisecond)
	if !ks.IsKeyDown(core.KeyW) {
		t.Error("repeated presses should keep the key down")
	}
}

func TestKeyStateSpansRepeatDelay(t *testing.T) {
	now := time.Unix(1000, 0)
	ks := NewKeyState(500 * time.Millisecond)
	ks.now = func() time.Time { return now }

	// first press, then the terminal waits before auto-repeating
	ks.Press(core.KeyUp)
	for elapsed := time.Duration(0); elapsed < 450*time.Millisecond; elapsed += 20 * time.Millisecond {
		if !ks.IsKeyDown(core.KeyUp) {
			t.Fatalf("key released %v after the press, before auto-repeat started", elapsed)
		}
		now = now.Add(20 * time.Millisecond)
	}

	for i := 0; i < 10; i++ {
		ks.Press(core.KeyUp)
		now = now.Add(33 * time.Millisecond)
		if !ks.IsKeyDown(core.KeyUp) {
			t.Fatalf("key released during auto-repeat %d", i)
		}
	}
}

func TestKeyStateBothPlayers(t *testing.T) {
	ks := NewKeyState(time.Hour)
	ks.Press(core.KeyS)
	ks.Press(core.KeyUp)

	if !ks.IsKeyDown(core.KeyS) || !ks.IsKeyDown(core.KeyUp) {
		t.Error("keys of both players should be down at once")
	}
}
