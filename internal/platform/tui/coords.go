package tui

import (
	"math"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
)

// footerRows is reserved below the scene for the help view. The full
// help is two rows tall.
const footerRows = 2

// Grid converts between terminal cells and scene pixels. Each cell stands
// for a CellW x CellH pixel block, so the scene keeps its pixel contract
// (margins, speed, hit boxes) in the terminal.
type Grid struct {
	CellW float64
	CellH float64
}

// NewGrid creates a grid from the terminal config.
func NewGrid(tc config.TerminalConfig) Grid {
	return Grid{CellW: tc.CellWidth, CellH: tc.CellHeight}
}

// SceneRows returns how many terminal rows the scene may use.
func (g Grid) SceneRows(rows int) int {
	return max(rows-footerRows, 0)
}

// Viewport returns the pixel viewport for a terminal of cols x rows.
func (g Grid) Viewport(cols, rows int) core.Size {
	return core.Sz(float64(max(cols, 0))*g.CellW, float64(g.SceneRows(rows))*g.CellH)
}

// Pixel returns the pixel at the center of a cell.
func (g Grid) Pixel(col, row int) core.Point {
	return core.Pt((float64(col)+0.5)*g.CellW, (float64(row)+0.5)*g.CellH)
}

// Cell returns the cell containing p.
func (g Grid) Cell(p core.Point) (col, row int) {
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y / g.CellH))
}

// RectOf returns the smallest cell rectangle covering b, at least 1x1.
func (g Grid) RectOf(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X / g.CellW))
	y0 := int(math.Floor(b.Y / g.CellH))
	x1 := int(math.Ceil((b.X + b.W) / g.CellW))
	y1 := int(math.Ceil((b.Y + b.H) / g.CellH))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
