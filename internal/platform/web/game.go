// Package web is the graphical frontend of the kitchen, built on Ebitengine.
// It runs as a desktop window or, compiled to WebAssembly, in the browser.
// Mouse clicks, touches and digit keys drive a scene.Session; the window
// size is the viewport.
package web

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/feedback"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/movement"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/scene"
)

// Palette.
var (
	colorFloor   = color.RGBA{0xfc, 0xe4, 0xec, 0xff}
	colorWall    = color.RGBA{0xf8, 0xbb, 0xd0, 0xff}
	colorStation = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorOutline = color.RGBA{0x88, 0x4d, 0x6a, 0xff}
	colorLabel   = color.RGBA{0x4a, 0x23, 0x37, 0xff}
	colorActor   = color.RGBA{0xff, 0x5c, 0x9d, 0xff}
	colorBow     = color.RGBA{0xe0, 0x1e, 0x5a, 0xff}
	colorShadow  = color.RGBA{0x00, 0x00, 0x00, 0x40}
	colorMarker  = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	colorPrompt  = color.RGBA{0x4a, 0x23, 0x37, 0xe0}
	colorText    = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Sprite sizes in px.
const (
	actorRadius  = 18
	shadowRadius = 14
	markerRadius = 10
	promptPad    = 12
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game implements ebiten.Game for one kitchen.
type Game struct {
	session   *scene.Session
	board     *feedback.Board
	runtime   core.RuntimeConfig
	labelFace *text.GoTextFace
	textFace  *text.GoTextFace
	logger    *log.Logger
	last      time.Time // Time of the previous Update
	touches   []ebiten.TouchID
}

// NewGame creates a kitchen for a width x height px window.
// A nil logger discards logs.
func NewGame(cfg config.Config, width, height int, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("web: failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("web: failed to load bold font: %w", err)
	}

	return &Game{
		session: scene.New(cfg, core.Sz(float64(width), float64(height)), logger),
		board:   feedback.NewBoard(cfg.Feedback.PromptMs, cfg.Feedback.MarkerMs),
		runtime: core.RuntimeConfig{
			ScreenW:    width,
			ScreenH:    height,
			TickRate:   cfg.Terminal.TickRate,
			MaxDeltaMs: cfg.Terminal.MaxDeltaMs,
		},
		labelFace: &text.GoTextFace{Source: bold, Size: 16},
		textFace:  &text.GoTextFace{Source: regular, Size: 18},
		logger:    logger,
	}, nil
}

// Update handles input and advances the scene by the measured frame time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleInput()

	now := time.Now()
	var measured float64
	if !g.last.IsZero() {
		measured = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last = now

	dt := g.runtime.FrameDelta(measured)
	g.session.Tick(dt)
	g.board.Apply(g.session.Events().Drain())
	g.board.Advance(dt)
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Click(core.Pt(float64(x), float64(y)))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.session.Click(core.Pt(float64(x), float64(y)))
	}

	for i, k := range digitKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if err := g.session.MoveToStationIndex(i); err != nil {
			g.logger.Debug("station key ignored", "key", i+1, "error", err)
		}
	}
}

// Layout uses the window size as the viewport. A change is applied to the
// session here, before the next Update ticks it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.runtime.ScreenW || outsideHeight != g.runtime.ScreenH {
		g.runtime.ScreenW = outsideWidth
		g.runtime.ScreenH = outsideHeight
		g.session.Resize(core.Sz(float64(outsideWidth), float64(outsideHeight)))
	}
	return outsideWidth, outsideHeight
}

// Draw renders the kitchen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorFloor)

	walk := g.session.WalkArea()
	vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(walk.Y), colorWall, false)

	for i, st := range g.session.Stations() {
		g.drawStation(screen, st, i)
	}

	if m, ok := g.board.Marker(); ok {
		c := fade(colorMarker, m.Alpha())
		vector.StrokeCircle(screen, float32(m.At.X), float32(m.At.Y), markerRadius, 3, c, true)
		vector.DrawFilledCircle(screen, float32(m.At.X), float32(m.At.Y), 3, c, true)
	}

	g.drawActor(screen, g.session.Actor())

	if p, ok := g.board.Prompt(); ok {
		g.drawPrompt(screen, p)
	}
}

func (g *Game) drawStation(dst *ebiten.Image, st scene.Station, index int) {
	b := st.Box()
	vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorStation, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colorOutline, false)

	g.drawText(dst, st.Label, g.labelFace, st.Position, colorLabel)
	if index < len(digitKeys) {
		corner := core.Pt(b.X+12, b.Y+12)
		g.drawText(dst, fmt.Sprint(index+1), g.textFace, corner, colorOutline)
	}
}

func (g *Game) drawActor(dst *ebiten.Image, a movement.Actor) {
	sh := a.Shadow()
	vector.DrawFilledCircle(dst, float32(sh.X), float32(sh.Y), shadowRadius, colorShadow, true)

	p := a.Position
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), actorRadius, colorActor, true)

	// The bow sits on the side the actor faces.
	side := float32(1)
	if a.Facing == movement.FacingLeft {
		side = -1
	}
	vector.DrawFilledCircle(dst, float32(p.X)+side*10, float32(p.Y)-12, 6, colorBow, true)
}

func (g *Game) drawPrompt(dst *ebiten.Image, p feedback.Prompt) {
	alpha := p.Alpha()
	w, h := text.Measure(p.Text, g.textFace, 0)
	cx := float64(dst.Bounds().Dx()) / 2
	cy := g.session.WalkArea().Y / 2

	vector.FillRect(dst,
		float32(cx-w/2-promptPad), float32(cy-h/2-promptPad/2),
		float32(w+2*promptPad), float32(h+promptPad),
		fade(colorPrompt, alpha), false)
	g.drawText(dst, p.Text, g.textFace, core.Pt(cx, cy), fade(colorText, alpha))
}

// drawText draws s centered on at.
func (g *Game) drawText(dst *ebiten.Image, s string, face text.Face, at core.Point, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// fade scales c's alpha by a in [0, 1].
func fade(c color.RGBA, a float64) color.RGBA {
	a = core.ClampF(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
