package config

import "math"

// SpeedScaler derives the actor's walking speed for a viewport.
//
// With scaling disabled the speed is a fixed pixel rate, so crossing a
// larger window takes longer. With scaling enabled the rate is multiplied by
// the smaller of the two viewport/reference ratios, which keeps traversal
// time roughly constant across window sizes without overshooting on the
// stretched axis.
type SpeedScaler struct {
	base      float64
	enabled   bool
	reference Viewport
}

// NewSpeedScaler creates a scaler from movement and scene settings.
func NewSpeedScaler(m MovementConfig, s SceneConfig) *SpeedScaler {
	return &SpeedScaler{
		base:      m.Speed,
		enabled:   m.ScaleWithViewport,
		reference: s.Reference,
	}
}

// SetEnabled toggles viewport scaling.
func (s *SpeedScaler) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// IsEnabled returns whether the speed follows the viewport size.
func (s *SpeedScaler) IsEnabled() bool {
	return s.enabled && s.reference.Width > 0 && s.reference.Height > 0
}

// Speed returns the speed in px/s for a viewport of width w and height h.
func (s *SpeedScaler) Speed(w, h float64) float64 {
	if !s.IsEnabled() || w <= 0 || h <= 0 {
		return s.base
	}
	factor := math.Min(w/s.reference.Width, h/s.reference.Height)
	return s.base * factor
}
