// Package layout maps scene-fraction anchors onto the pixel viewport and
// rescales in-flight positions when the viewport changes size.
package layout

import "github.com/MauroGutMB/jogo-hello-kitty/internal/core"

// Anchor ties a station id to its position as viewport fractions.
type Anchor struct {
	ID       string
	Fraction core.Point
}

// Layout is the pixel placement of the scene for one viewport.
type Layout struct {
	Actor    core.Point
	Stations map[string]core.Point
}

// Mapper computes layouts from a fixed set of fractional anchors.
type Mapper struct {
	actor    core.Point
	stations []Anchor
}

// NewMapper creates a mapper. The anchors are copied.
func NewMapper(actor core.Point, stations []Anchor) *Mapper {
	return &Mapper{
		actor:    actor,
		stations: append([]Anchor(nil), stations...),
	}
}

// Anchors returns the station anchors in their configured order.
func (m *Mapper) Anchors() []Anchor {
	return append([]Anchor(nil), m.stations...)
}

// ComputeLayout places the actor spawn point and every station for v.
func (m *Mapper) ComputeLayout(v core.Size) Layout {
	l := Layout{
		Actor:    place(m.actor, v),
		Stations: make(map[string]core.Point, len(m.stations)),
	}
	for _, a := range m.stations {
		l.Stations[a.ID] = place(a.Fraction, v)
	}
	return l
}

func place(f core.Point, v core.Size) core.Point {
	return core.Point{X: f.X * v.Width, Y: f.Y * v.Height}
}

// Positions is the moving state that survives a resize.
type Positions struct {
	Actor  core.Point
	Target *core.Point // nil when the actor is idle
}

// Rescale scales positions from the old viewport to the new one, each axis
// independently. A zero-sized old viewport leaves positions unchanged.
// The returned Target never aliases the input.
func Rescale(oldV, newV core.Size, p Positions) Positions {
	if oldV.Width == 0 || oldV.Height == 0 {
		return Positions{Actor: p.Actor, Target: clonePoint(p.Target)}
	}

	sx := newV.Width / oldV.Width
	sy := newV.Height / oldV.Height
	out := Positions{Actor: core.Point{X: p.Actor.X * sx, Y: p.Actor.Y * sy}}
	if p.Target != nil {
		out.Target = &core.Point{X: p.Target.X * sx, Y: p.Target.Y * sy}
	}
	return out
}

func clonePoint(p *core.Point) *core.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
