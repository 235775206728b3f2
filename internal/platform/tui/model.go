package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/game"
)

// Options wires a model to a started processor.
type Options struct {
	// Processor must already be started and must paint into Screen.
	Processor *game.Processor
	Screen    *core.Screen
	// Keys must be the InputProvider the processor polls.
	Keys      *KeyState
	TickDelay time.Duration
}

// Model is the Bubble Tea model running one match.
type Model struct {
	proc     *game.Processor
	screen   *core.Screen
	keys     *KeyState
	keymap   KeyMap
	help     help.Model
	delay    time.Duration
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given processor.
func NewModel(opts Options) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		proc:   opts.Processor,
		screen: opts.Screen,
		keys:   opts.Keys,
		keymap: DefaultKeyMap(),
		help:   h,
		delay:  opts.TickDelay,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.proc.Draw()
	return tea.Batch(
		tea.SetWindowTitle(game.Title),
		tickCmd(m.delay),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.proc.Update()
		return m, tickCmd(m.delay)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if code, ok := m.keymap.Code(msg); ok {
		m.keys.Press(code)
	}
	return m, nil
}

// tooSmall reports whether the last known terminal size cannot hold the
// playfield.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	w, h := m.frameSize()
	return m.width < w || m.height < h
}

// frameSize returns the terminal size needed for the playfield plus the
// help shown under it, which grows when the full help is toggled on.
func (m Model) frameSize() (width, height int) {
	return m.screen.Width(), m.screen.Height() + lipgloss.Height(m.help.View(m.keymap))
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.frameSize()
		msg := fmt.Sprintf("Terminal is %dx%d, %s needs at least %dx%d.",
			m.width, m.height, game.Title, w, h)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, warningStyle.Render(msg))
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keymap)
}

// Run starts the Bubble Tea program and blocks until the players quit or
// ctx is cancelled. The processor is shut down before Run returns.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	opts.Processor.Shutdown()

	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
