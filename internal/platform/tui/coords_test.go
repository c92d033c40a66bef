package tui

import (
	"testing"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
)

func testGrid() Grid {
	return NewGrid(config.Default().Terminal)
}

func TestGridViewport(t *testing.T) {
	g := testGrid()

	tests := []struct {
		cols, rows int
		expected   core.Size
	}{
		{80, 24, core.Sz(800, 440)},
		{160, 46, core.Sz(1600, 880)},
		{10, 1, core.Sz(100, 0)},
		{0, 0, core.Sz(0, 0)},
		{-5, -5, core.Sz(0, 0)},
	}

	for _, tc := range tests {
		if got := g.Viewport(tc.cols, tc.rows); got != tc.expected {
			t.Errorf("Viewport(%d, %d) = %v, expected %v", tc.cols, tc.rows, got, tc.expected)
		}
	}
}

func TestGridCellRoundTrip(t *testing.T) {
	g := testGrid()

	for _, c := range [][2]int{{0, 0}, {40, 13}, {79, 21}} {
		p := g.Pixel(c[0], c[1])
		col, row := g.Cell(p)
		if col != c[0] || row != c[1] {
			t.Errorf("Cell(Pixel(%d, %d)) = (%d, %d), expected the same cell", c[0], c[1], col, row)
		}
	}

	if p := g.Pixel(0, 0); p != core.Pt(5, 10) {
		t.Errorf("Pixel(0, 0) = %v, expected (5, 10)", p)
	}
	if col, row := g.Cell(core.Pt(-1, -1)); col != -1 || row != -1 {
		t.Errorf("Cell(-1, -1) = (%d, %d), expected (-1, -1)", col, row)
	}
}

func TestGridRectOf(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name     string
		box      core.Box
		expected core.Rect
	}{
		{"aligned", core.Box{X: 100, Y: 40, W: 120, H: 100}, core.NewRect(10, 2, 12, 5)},
		{"unaligned", core.Box{X: 340, Y: 29.2, W: 120, H: 100}, core.NewRect(34, 1, 12, 6)},
		{"sub-cell", core.Box{X: 3, Y: 3, W: 1, H: 1}, core.NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.RectOf(tc.box); got != tc.expected {
				t.Errorf("RectOf(%+v) = %+v, expected %+v", tc.box, got, tc.expected)
			}
		})
	}
}
