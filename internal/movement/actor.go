// Package movement drives the single walking actor of a scene: it owns the
// actor's position, the active movement intent and the per-frame kinematic
// update. It has no engine dependency; a scheduler calls Tick every frame.
package movement

import "github.com/MauroGutMB/jogo-hello-kitty/internal/core"

// Facing is the horizontal orientation of the actor sprite.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ShadowOffset is where the shadow sits relative to the actor position.
var ShadowOffset = core.Pt(0, 28)

// Actor is the moving character.
type Actor struct {
	Position core.Point
	Facing   Facing
}

// Shadow returns the shadow anchor. It is derived from the position on
// demand so it can never lag behind a rescale.
func (a Actor) Shadow() core.Point {
	return a.Position.Add(ShadowOffset)
}

// Intent is the active movement order. An empty StationID means free
// movement: arrival fires no station callback.
type Intent struct {
	Target    core.Point
	StationID string
}

// Bound reports whether the intent walks toward a station.
func (i Intent) Bound() bool {
	return i.StationID != ""
}
