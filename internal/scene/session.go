// Package scene ties the kitchen together: one Session owns the viewport,
// the stations, the walking actor and the outgoing event queue. Frontends
// feed it clicks, resizes and frame ticks from a single goroutine.
package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/config"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/event"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/layout"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/movement"
)

// Session is one player's kitchen.
type Session struct {
	cfg      config.Config
	viewport core.Size
	mapper   *layout.Mapper
	stations []*Station
	byID     map[string]*Station
	hit      HitTester
	offset   core.Point // Where the actor stops relative to a station
	ctrl     *movement.Controller
	speed    *config.SpeedScaler
	events   *event.Queue
	logger   *log.Logger
}

// New creates a session for the given viewport. A nil logger discards logs.
func New(cfg config.Config, viewport core.Size, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:      cfg,
		viewport: viewport,
		stations: stationsFromConfig(cfg.Scene),
		hit:      NewHitTester(cfg.Scene),
		offset:   core.Pt(0, cfg.Scene.ApproachOffset),
		speed:    config.NewSpeedScaler(cfg.Movement, cfg.Scene),
		events:   event.NewQueue(),
		logger:   logger,
	}

	s.byID = make(map[string]*Station, len(s.stations))
	anchors := make([]layout.Anchor, 0, len(s.stations))
	for _, st := range s.stations {
		s.byID[st.ID] = st
		anchors = append(anchors, layout.Anchor{ID: st.ID, Fraction: st.Anchor})
	}
	s.mapper = layout.NewMapper(core.Pt(cfg.Scene.Actor.X, cfg.Scene.Actor.Y), anchors)

	l := s.mapper.ComputeLayout(viewport)
	s.ctrl = movement.NewController(l.Actor, viewport, movement.Options{
		Speed:          s.speed.Speed(viewport.Width, viewport.Height),
		ArrivalEpsilon: cfg.Movement.ArrivalEpsilon,
		Margins: movement.Margins{
			Left:   cfg.Movement.Margins.Left,
			Right:  cfg.Movement.Margins.Right,
			Top:    cfg.Movement.Margins.Top,
			Bottom: cfg.Movement.Margins.Bottom,
		},
		OnArrived: s.stationArrived,
		OnMarker: func(p core.Point) {
			s.events.Push(event.MarkerRequested{At: p})
		},
	})
	s.placeStations(l)

	return s
}

// Tick advances the simulation by deltaMs.
func (s *Session) Tick(deltaMs float64) {
	before := s.ctrl.Actor()
	s.ctrl.Tick(deltaMs)
	if after := s.ctrl.Actor(); after != before {
		s.events.Push(event.ActorMoved{Actor: after})
	}
}

// Resize rescales the actor and any in-flight target proportionally, then
// lays the stations out fresh for the new viewport. It completes before
// the next Tick can observe the session.
func (s *Session) Resize(v core.Size) {
	if v == s.viewport {
		return
	}
	old := s.viewport

	var target *core.Point
	if intent, ok := s.ctrl.Intent(); ok {
		target = &intent.Target
	}
	p := layout.Rescale(old, v, layout.Positions{Actor: s.ctrl.Actor().Position, Target: target})

	s.ctrl.Reposition(p.Actor, p.Target)
	s.ctrl.SetViewport(v)
	s.ctrl.SetSpeed(s.speed.Speed(v.Width, v.Height))
	s.viewport = v
	s.placeStations(s.mapper.ComputeLayout(v))

	s.events.Push(event.ViewportResized{From: old, To: v})
	s.events.Push(event.ActorMoved{Actor: s.ctrl.Actor()})
	s.logger.Debug("viewport resized",
		"from", old,
		"to", v,
		"speed", s.ctrl.Speed(),
	)
}

func (s *Session) placeStations(l layout.Layout) {
	for _, st := range s.stations {
		st.Position = l.Stations[st.ID]
	}
}

func (s *Session) stationArrived(id string) {
	ev := event.StationArrived{StationID: id}
	if st, ok := s.byID[id]; ok {
		ev.Label = st.Label
		ev.Prompt = st.Prompt
	} else {
		s.logger.Warn("arrival for unregistered station", "station", id)
	}
	s.events.Push(ev)
	s.logger.Info("station reached", "station", id)
}

// Events returns the outgoing event queue.
func (s *Session) Events() *event.Queue {
	return s.events
}

// Viewport returns the current viewport size.
func (s *Session) Viewport() core.Size {
	return s.viewport
}

// Actor returns the actor state.
func (s *Session) Actor() movement.Actor {
	return s.ctrl.Actor()
}

// IsMoving reports whether the actor is walking.
func (s *Session) IsMoving() bool {
	return s.ctrl.IsMoving()
}

// Intent returns the active movement intent, if any.
func (s *Session) Intent() (movement.Intent, bool) {
	return s.ctrl.Intent()
}

// Speed returns the current walking speed in px/s.
func (s *Session) Speed() float64 {
	return s.ctrl.Speed()
}

// Stations returns copies of the stations in configured order.
func (s *Session) Stations() []Station {
	out := make([]Station, len(s.stations))
	for i, st := range s.stations {
		out[i] = *st
	}
	return out
}

// Station returns a copy of the station with the given id.
func (s *Session) Station(id string) (Station, bool) {
	st, ok := s.byID[id]
	if !ok {
		return Station{}, false
	}
	return *st, true
}

// WalkArea returns the rectangle the actor may walk in.
func (s *Session) WalkArea() core.Box {
	tl := s.ctrl.Clamp(core.Pt(0, 0))
	br := s.ctrl.Clamp(core.Pt(s.viewport.Width, s.viewport.Height))
	return core.Box{X: tl.X, Y: tl.Y, W: br.X - tl.X, H: br.Y - tl.Y}
}
