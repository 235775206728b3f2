package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/console-pong/internal/core"
)

// KeyMap defines the key bindings of a match.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Code translates a key message to the paddle key code it stands for.
func (k KeyMap) Code(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.KeyW, true
	case key.Matches(msg, k.LeftDown):
		return core.KeyS, true
	case key.Matches(msg, k.RightUp):
		return core.KeyUp, true
	case key.Matches(msg, k.RightDown):
		return core.KeyDown, true
	}
	return core.KeyNone, false
}

// KeyState turns terminal key events into held-key state. Terminals send a
// press (and auto-repeats) but no release, so a key counts as down for a
// hold window after its latest event.
type KeyState struct {
	mu   sync.Mutex
	hold time.Duration
	now  func() time.Time
	last map[core.Key]time.Time
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold: hold,
		now:  time.Now,
		last: make(map[core.Key]time.Time),
	}
}

// Press records an event for k.
func (s *KeyState) Press(k core.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[k] = s.now()
}

// IsKeyDown reports whether k had an event within the hold window.
func (s *KeyState) IsKeyDown(k core.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.last[k]
	if !ok {
		return false
	}
	return s.now().Sub(t) < s.hold
}
