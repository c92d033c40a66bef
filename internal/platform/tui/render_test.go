package tui

import (
	"strings"
	"testing"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/event"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/feedback"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/scene"
)

// newTestScene builds an 80x24 terminal kitchen (800x440 px scene).
func newTestScene() (*core.Screen, *scene.Session, *feedback.Board, Grid) {
	cfg := config.Default()
	g := NewGrid(cfg.Terminal)
	sess := scene.New(cfg, g.Viewport(80, 24), nil)
	board := feedback.NewBoard(cfg.Feedback.PromptMs, cfg.Feedback.MarkerMs)
	return core.NewScreen(80, g.SceneRows(24)), sess, board, g
}

func TestDrawSceneBackground(t *testing.T) {
	s, sess, board, g := newTestScene()
	DrawScene(s, sess, board, g)

	if got := s.Get(0, 0); got != glyphWall {
		t.Errorf("Get(0, 0) = %q, expected wall", got)
	}
	if got := s.Get(0, 4); got != glyphWall {
		t.Errorf("Get(0, 4) = %q, expected wall above the walk area", got)
	}
	if got := s.Get(0, 5); got != glyphFloor {
		t.Errorf("Get(0, 5) = %q, expected floor", got)
	}
	if got := s.Get(79, 21); got != glyphFloor {
		t.Errorf("Get(79, 21) = %q, expected floor", got)
	}
}

func TestDrawSceneStations(t *testing.T) {
	s, sess, board, g := newTestScene()
	DrawScene(s, sess, board, g)

	out := s.String()
	for _, label := range []string{"Geladeira", "Fogão", "Pia", "Mesa"} {
		if !strings.Contains(out, label) {
			t.Errorf("scene is missing station label %q", label)
		}
	}

	// Fogão covers cells 34..45 x 1..6.
	if got := s.Get(34, 1); got != '┌' {
		t.Errorf("Get(34, 1) = %q, expected box corner", got)
	}
	if got := s.Get(35, 1); got != '2' {
		t.Errorf("Get(35, 1) = %q, expected key hint 2", got)
	}
	if !strings.Contains(s.Row(4), "Fogão") {
		t.Errorf("Row(4) = %q, expected the Fogão label", s.Row(4))
	}
}

func TestDrawSceneActorAndShadow(t *testing.T) {
	s, sess, board, g := newTestScene()
	DrawScene(s, sess, board, g)

	// Actor spawns at (400, 264).
	if got := s.Get(40, 13); got != '>' {
		t.Errorf("Get(40, 13) = %q, expected actor facing right", got)
	}
	if got := s.Get(40, 14); got != glyphShadow {
		t.Errorf("Get(40, 14) = %q, expected shadow", got)
	}

	sess.Click(core.Pt(100, 264))
	sess.Tick(16)
	DrawScene(s, sess, board, g)

	col, row := g.Cell(sess.Actor().Position)
	if got := s.Get(col, row); got != '<' {
		t.Errorf("Get(%d, %d) = %q, expected actor facing left", col, row, got)
	}
}

func TestDrawSceneMarker(t *testing.T) {
	s, sess, board, g := newTestScene()

	sess.Click(g.Pixel(10, 18))
	board.Apply(sess.Events().Drain())
	DrawScene(s, sess, board, g)

	if got := s.Get(10, 18); got != glyphMarker {
		t.Errorf("Get(10, 18) = %q, expected marker", got)
	}

	board.Advance(550)
	DrawScene(s, sess, board, g)
	if got := s.Get(10, 18); got != glyphMarkerFaded {
		t.Errorf("Get(10, 18) = %q, expected faded marker", got)
	}

	board.Advance(100)
	DrawScene(s, sess, board, g)
	if got := s.Get(10, 18); got != glyphFloor {
		t.Errorf("Get(10, 18) = %q, expected the marker to expire", got)
	}
}

func TestDrawScenePrompt(t *testing.T) {
	s, sess, board, g := newTestScene()

	board.Apply([]event.Event{event.StationArrived{StationID: "mesa", Label: "Mesa", Prompt: "Mesa: em breve, receitas!"}})
	DrawScene(s, sess, board, g)

	if !strings.Contains(s.Row(5), "Mesa: em breve, receitas!") {
		t.Errorf("Row(5) = %q, expected the mesa prompt", s.Row(5))
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorActor)
	s.DrawText(2, 0, "cd", core.ColorFloor)
	s.DrawText(0, 1, "xyz", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, expected to contain %q", out, want)
		}
	}
}
