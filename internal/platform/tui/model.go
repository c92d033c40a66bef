package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/feedback"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/scene"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one kitchen.
type Model struct {
	session  *scene.Session
	board    *feedback.Board
	screen   *core.Screen
	grid     Grid
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	last     time.Time // Time of the previous tick
	quitting bool
}

// NewModel creates a model for a terminal of rt.ScreenW x rt.ScreenH cells.
// A nil logger discards logs.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := NewGrid(cfg.Terminal)
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		session: scene.New(cfg, grid.Viewport(rt.ScreenW, rt.ScreenH), logger),
		board:   feedback.NewBoard(cfg.Feedback.PromptMs, cfg.Feedback.MarkerMs),
		screen:  core.NewScreen(rt.ScreenW, grid.SceneRows(rt.ScreenH)),
		grid:    grid,
		runtime: rt,
		keys:    DefaultKeyMap(len(cfg.Scene.Stations)),
		help:    h,
		logger:  logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Station):
		if i, ok := stationIndex(msg); ok {
			if err := m.session.MoveToStationIndex(i); err != nil {
				m.logger.Debug("station key ignored", "key", msg.String(), "error", err)
			}
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// Clicks on the help footer are not scene clicks.
	if msg.Y >= m.screen.Height() {
		return m, nil
	}

	m.session.Click(m.grid.Pixel(msg.X, msg.Y))
	return m, nil
}

// handleResize keeps the scene in step with the terminal. The session
// rescales positions before the next tick runs.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.grid.SceneRows(msg.Height))
	m.help.Width = msg.Width
	m.session.Resize(m.grid.Viewport(msg.Width, msg.Height))
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var measured float64
	if !m.last.IsZero() {
		measured = float64(now.Sub(m.last)) / float64(time.Millisecond)
	}
	m.last = now

	m.step(m.runtime.FrameDelta(measured))
	return m, tickCmd(m.runtime.TickRate)
}

// step advances the scene and its feedback by deltaMs.
func (m Model) step(deltaMs float64) {
	m.session.Tick(deltaMs)
	m.board.Apply(m.session.Events().Drain())
	m.board.Advance(deltaMs)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.session, m.board, m.grid)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Session returns the scene driven by this model.
func (m Model) Session() *scene.Session {
	return m.session
}

// Run starts the Bubble Tea program for a kitchen.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
