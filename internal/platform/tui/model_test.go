package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/game"
	"github.com/vovakirdan/console-pong/internal/shape"
)

func newTestModel(t *testing.T) (Model, *game.Processor, *KeyState) {
	t.Helper()

	screen := core.NewScreen(game.Surface())
	keys := NewKeyState(time.Hour)
	proc := game.NewProcessor(game.Options{
		Shapes:   shape.NewLoader(""),
		Renderer: screen,
		Input:    keys,
		Rand:     rand.New(rand.NewSource(1)),
	})
	if err := proc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	m := NewModel(Options{
		Processor: proc,
		Screen:    screen,
		Keys:      keys,
		TickDelay: 20 * time.Millisecond,
	})
	return m, proc, keys
}

func TestModelTickAdvancesSimulation(t *testing.T) {
	m, proc, _ := newTestModel(t)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}

	updated, cmd := m.Update(TickMsg(time.Now()))
	if proc.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", proc.Ticks())
	}
	if cmd == nil {
		t.Error("a tick should schedule the next tick")
	}

	updated.Update(TickMsg(time.Now()))
	if proc.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", proc.Ticks())
	}
}

func TestModelKeysReachPaddles(t *testing.T) {
	m, proc, keys := newTestModel(t)

	m.Update(runeKey('w'))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	if !keys.IsKeyDown(core.KeyW) || !keys.IsKeyDown(core.KeyDown) {
		t.Fatal("key messages should mark keys as held")
	}

	m.Update(TickMsg(time.Now()))
	left, right := proc.Planks()
	if left.Position().Y != 16 || right.Position().Y != 18 {
		t.Errorf("planks at y=%f and y=%f, expected 16 and 18", left.Position().Y, right.Position().Y)
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, proc, _ := newTestModel(t)

		updated, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q: expected a quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: command should quit", msg.String())
		}

		// ticks already in flight are ignored
		updated.Update(TickMsg(time.Now()))
		if proc.Ticks() != 0 {
			t.Errorf("%q: Ticks() = %d after quit, expected 0", msg.String(), proc.Ticks())
		}
		if updated.View() != "" {
			t.Errorf("%q: View() after quit should be empty", msg.String())
		}
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Init()

	view := m.View()
	if !strings.Contains(view, "|") {
		t.Error("View() should contain the center line")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should contain the help line")
	}

	small, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(small.View(), "needs at least 101x37") {
		t.Errorf("View() on a small terminal = %q, expected a size warning", small.View())
	}

	large, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if strings.Contains(large.View(), "needs at least") {
		t.Error("View() on a large terminal should show the playfield")
	}
}

func TestModelFrameFitsWithFullHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Init()

	tests := []struct {
		name     string
		fullHelp bool
		width    int
		height   int
		warn     bool
	}{
		{"short help at minimum size", false, 101, 37, false},
		{"full help at minimum size", true, 101, 37, true},
		{"full help with room", true, 101, 40, false},
		{"short help too narrow", false, 100, 40, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var updated tea.Model = m
			if tc.fullHelp {
				updated, _ = updated.Update(runeKey('?'))
			}
			updated, _ = updated.Update(tea.WindowSizeMsg{Width: tc.width, Height: tc.height})

			view := updated.View()
			warned := strings.Contains(view, "needs at least")
			if warned != tc.warn {
				t.Fatalf("size warning = %v, expected %v", warned, tc.warn)
			}
			if !warned && lipgloss.Height(view) > tc.height {
				t.Errorf("frame is %d rows, terminal has %d", lipgloss.Height(view), tc.height)
			}
		})
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(runeKey('?'))
	if !updated.(Model).help.ShowAll {
		t.Error("? should expand the help")
	}
	updated, _ = updated.Update(runeKey('?'))
	if updated.(Model).help.ShowAll {
		t.Error("second ? should collapse the help")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawString(0, 0, "ab")
	s.DrawColoredString(3, 0, "12", core.ColorBlue)
	s.DrawString(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "12", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in %q", want, out)
		}
	}
}
