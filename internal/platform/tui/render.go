package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/feedback"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/movement"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/scene"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorFloor:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWall:         lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColorStation:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorStationLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorActor:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	core.ColorShadow:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorMarker:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorPrompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("125")),
	core.ColorHUD:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// Scene glyphs.
const (
	glyphWall        = '▒'
	glyphFloor       = '·'
	glyphShadow      = '_'
	glyphMarker      = 'X'
	glyphMarkerFaded = 'x'
)

// DrawScene draws the kitchen into s.
func DrawScene(s *core.Screen, sess *scene.Session, board *feedback.Board, g Grid) {
	s.Clear()

	// The strip above the walkable area is the back wall.
	_, wallRows := g.Cell(core.Pt(0, sess.WalkArea().Y))
	wallRows = core.Clamp(wallRows, 0, s.Height())
	s.DrawRect(core.NewRect(0, 0, s.Width(), wallRows), glyphWall, core.ColorWall)
	s.DrawRect(core.NewRect(0, wallRows, s.Width(), s.Height()-wallRows), glyphFloor, core.ColorFloor)

	for i, st := range sess.Stations() {
		drawStation(s, st, i, g)
	}

	if m, ok := board.Marker(); ok {
		glyph := glyphMarker
		if m.Alpha() < 0.5 {
			glyph = glyphMarkerFaded
		}
		col, row := g.Cell(m.At)
		s.Set(col, row, glyph, core.ColorMarker)
	}

	actor := sess.Actor()
	col, row := g.Cell(actor.Shadow())
	s.Set(col, row, glyphShadow, core.ColorShadow)
	col, row = g.Cell(actor.Position)
	s.Set(col, row, actorGlyph(actor.Facing), core.ColorActor)

	if p, ok := board.Prompt(); ok {
		color := core.ColorPrompt
		if p.Alpha() < 0.5 {
			color = core.ColorHUD
		}
		s.DrawTextCentered(s.Width()/2, wallRows, " "+p.Text+" ", color)
	}
}

func drawStation(s *core.Screen, st scene.Station, index int, g Grid) {
	r := g.RectOf(st.Box())
	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorStation)
	if index < maxStationKeys && r.W > 3 {
		s.DrawText(r.X+1, r.Y, strconv.Itoa(index+1), core.ColorHUD)
	}
	s.DrawTextCentered(r.X+r.W/2, r.Y+r.H/2, st.Label, core.ColorStationLabel)
}

func actorGlyph(f movement.Facing) rune {
	if f == movement.FacingLeft {
		return '<'
	}
	return '>'
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
