package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
)

func newTestModel() Model {
	return NewModel(config.Default(), core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		MaxDeltaMs: 100,
	}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func leftClick(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func TestNewModelViewport(t *testing.T) {
	m := newTestModel()

	if got := m.Session().Viewport(); got != core.Sz(800, 440) {
		t.Errorf("Viewport() = %v, expected 800x440", got)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 22 {
		t.Errorf("screen = %dx%d, expected 80x22", m.screen.Width(), m.screen.Height())
	}
}

func TestModelMouseClick(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.MouseMsg
		moving  bool
		station string
	}{
		{"station", leftClick(40, 4), true, "fogao"},
		{"floor", leftClick(10, 18), true, ""},
		{"help footer", leftClick(10, 22), false, ""},
		{"right button", tea.MouseMsg{X: 40, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, false, ""},
		{"release", tea.MouseMsg{X: 40, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := update(t, newTestModel(), tc.msg)

			intent, moving := m.Session().Intent()
			if moving != tc.moving {
				t.Fatalf("IsMoving() = %v, expected %v", moving, tc.moving)
			}
			if intent.StationID != tc.station {
				t.Errorf("StationID = %q, expected %q", intent.StationID, tc.station)
			}
		})
	}
}

func TestModelStationKeys(t *testing.T) {
	m, _ := update(t, newTestModel(), runeKey('4'))
	if intent, _ := m.Session().Intent(); intent.StationID != "mesa" {
		t.Errorf("key 4 StationID = %q, expected mesa", intent.StationID)
	}

	m, _ = update(t, newTestModel(), runeKey('9'))
	if m.Session().IsMoving() {
		t.Error("key 9 should not dispatch with four stations")
	}
}

func TestModelQuit(t *testing.T) {
	m, cmd := update(t, newTestModel(), tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := update(t, newTestModel(), runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should show the full help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should hide the full help again")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()
	start := m.Session().Actor().Position

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 46})

	if got := m.Session().Viewport(); got != core.Sz(1600, 880) {
		t.Errorf("Viewport() = %v, expected 1600x880", got)
	}
	if m.screen.Width() != 160 || m.screen.Height() != 44 {
		t.Errorf("screen = %dx%d, expected 160x44", m.screen.Width(), m.screen.Height())
	}
	if got := m.Session().Actor().Position; got != core.Pt(start.X*2, start.Y*2) {
		t.Errorf("Position = %v, expected %v scaled by 2", got, start)
	}
}

func TestModelTickClampsDelta(t *testing.T) {
	m, _ := update(t, newTestModel(), leftClick(75, 13))

	t0 := time.Unix(1000, 0)
	before := m.Session().Actor().Position
	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next frame")
	}

	// First frame has no previous tick and runs at the nominal rate.
	moved := before.Dist(m.Session().Actor().Position)
	if math.Abs(moved-200.0/60) > 1e-6 {
		t.Errorf("first tick moved %v px, expected %v", moved, 200.0/60)
	}

	// A 5 s stall is clamped to 100 ms.
	before = m.Session().Actor().Position
	m, _ = update(t, m, TickMsg(t0.Add(5*time.Second)))
	moved = before.Dist(m.Session().Actor().Position)
	if math.Abs(moved-20) > 1e-6 {
		t.Errorf("stalled tick moved %v px, expected 20", moved)
	}
}

func TestModelArrivalShowsPrompt(t *testing.T) {
	m, _ := update(t, newTestModel(), runeKey('4'))

	for i := 0; i < 500 && m.Session().IsMoving(); i++ {
		m.step(16)
	}
	if m.Session().IsMoving() {
		t.Fatal("actor never reached the mesa")
	}

	if !strings.Contains(m.View(), "Mesa: em breve, receitas!") {
		t.Error("View() should show the mesa prompt after arrival")
	}
}
