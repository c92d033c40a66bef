package scene

import (
	"errors"
	"fmt"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
)

// ErrUnknownStation is returned when a station id is not registered.
var ErrUnknownStation = errors.New("unknown station")

// StationAt returns the first station, in configured order, whose hit
// region contains p.
func (s *Session) StationAt(p core.Point) (Station, bool) {
	for _, st := range s.stations {
		if s.hit.Hit(*st, p) {
			return *st, true
		}
	}
	return Station{}, false
}

// Click resolves a clicked point: a hit on a station walks to the spot in
// front of it, anything else walks freely to the (clamped) point.
// It returns the station id walked to, or "" for free movement.
func (s *Session) Click(p core.Point) string {
	if st, ok := s.StationAt(p); ok {
		s.walkTo(st)
		return st.ID
	}

	s.ctrl.MoveTo(p, "")
	s.logger.Debug("free walk", "x", p.X, "y", p.Y)
	return ""
}

// MoveToStation walks to the station with the given id.
func (s *Session) MoveToStation(id string) error {
	st, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("scene: move to %q: %w", id, ErrUnknownStation)
	}
	s.walkTo(*st)
	return nil
}

// MoveToStationIndex walks to the i-th station (0-based, configured order).
func (s *Session) MoveToStationIndex(i int) error {
	if i < 0 || i >= len(s.stations) {
		return fmt.Errorf("scene: station #%d: %w", i+1, ErrUnknownStation)
	}
	s.walkTo(*s.stations[i])
	return nil
}

// ApproachPoint is where the actor stops when walking to st.
func (s *Session) ApproachPoint(st Station) core.Point {
	return st.Position.Add(s.offset)
}

func (s *Session) walkTo(st Station) {
	s.ctrl.MoveTo(s.ApproachPoint(st), st.ID)
	s.logger.Debug("walking to station", "station", st.ID)
}
