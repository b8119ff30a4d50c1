package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racket/internal/core"
	"github.com/vovakirdan/tui-racket/internal/games/racket"
)

var tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

// Model is the Bubble Tea model running a racket session. It is the game
// loop driver, the input collaborator and the renderer for the terminal.
type Model struct {
	session  *racket.Session
	screen   *core.Screen
	tracker  *core.KeyTracker
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the session. width and height are the initial
// terminal size; a window size message replaces them.
func NewModel(session *racket.Session, logger *log.Logger, width, height int) Model {
	board := session.BoardSize()
	return Model{
		session: session,
		screen:  core.NewScreen(board.W, board.H),
		tracker: core.NewKeyTracker(session.Config().Loop.FirstHoldTicks, session.Config().Loop.HoldTicks),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		width:   width,
		height:  height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Game().LoopInterval)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.tracker.Reset()
		m.keys.Reset.SetEnabled(false)
		m.logger.Info("game reset")
		return m, nil
	}

	code := m.keys.KeyCode(msg)
	m.tracker.Press(code)
	if m.session.KeyDown(code) {
		m.logger.Info("game started", "key", int(code))
	}
	return m, nil
}

// handleTick releases keys that stopped repeating and runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, code := range m.tracker.Advance() {
		m.session.KeyUp(code)
	}

	wasRunning := m.session.Game().IsRunning()
	res := m.session.Tick()

	if res.Hit {
		m.logger.Debug("paddle hit", "score", res.Game.Score, "tick", m.session.Ticks())
	}
	if wasRunning && res.Game.IsGameOver() {
		m.keys.Reset.SetEnabled(true)
		m.logger.Info("game over", "score", res.Game.Score, "ticks", m.session.Ticks())
	}

	return m, tickCmd(m.session.Game().LoopInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := m.session.BoardSize()
	if m.width > 0 && m.height > 0 && (m.width < board.W || m.height <= board.H) {
		return tooSmallStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", board.W, board.H+1, m.width, m.height))
	}

	m.session.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits.
func Run(session *racket.Session, logger *log.Logger, width, height int) error {
	model := NewModel(session, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
