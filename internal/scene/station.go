package scene

import (
	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
)

// Station is a fixed interactive spot in the kitchen.
type Station struct {
	ID       string
	Label    string
	Prompt   string
	Anchor   core.Point // Viewport fractions
	Bounds   core.Size  // Sprite bounding box in px
	Position core.Point // Current pixel position, recomputed on resize
}

// Box returns the sprite bounding box at the current position.
func (s Station) Box() core.Box {
	return core.BoxAround(s.Position, s.Bounds)
}

// HitTester decides whether a click lands on a station.
type HitTester interface {
	Hit(s Station, p core.Point) bool
}

// BoxHit matches clicks inside the station's sprite bounding box.
type BoxHit struct{}

// Hit implements HitTester.
func (BoxHit) Hit(s Station, p core.Point) bool {
	return s.Box().Contains(p)
}

// CircleHit matches clicks within Radius px of the station position.
type CircleHit struct {
	Radius float64
}

// Hit implements HitTester.
func (c CircleHit) Hit(s Station, p core.Point) bool {
	return s.Position.Dist(p) <= c.Radius
}

// NewHitTester returns the hit test selected by the scene config.
func NewHitTester(sc config.SceneConfig) HitTester {
	if sc.HitTest == config.HitTestCircle {
		return CircleHit{Radius: sc.HitRadius}
	}
	return BoxHit{}
}

func stationsFromConfig(sc config.SceneConfig) []*Station {
	out := make([]*Station, 0, len(sc.Stations))
	for _, s := range sc.Stations {
		out = append(out, &Station{
			ID:     s.ID,
			Label:  s.Label,
			Prompt: s.Prompt,
			Anchor: core.Pt(s.Anchor.X, s.Anchor.Y),
			Bounds: core.Sz(s.Width, s.Height),
		})
	}
	return out
}
