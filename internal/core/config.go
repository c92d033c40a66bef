package core

// RuntimeConfig contains the platform settings a frontend runs the scene with.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in cells (terminal) or pixels (window)
	ScreenH    int     // Screen height in cells (terminal) or pixels (window)
	TickRate   int     // Frames per second the scheduler aims for
	MaxDeltaMs float64 // Upper bound for a single frame delta
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		MaxDeltaMs: 100,
	}
}

// FrameDelta clamps a measured frame delta into (0, MaxDeltaMs].
// Non-positive measurements fall back to the nominal frame time.
func (c RuntimeConfig) FrameDelta(measuredMs float64) float64 {
	nominal := 1000.0 / float64(max(c.TickRate, 1))
	if measuredMs <= 0 {
		return nominal
	}
	if c.MaxDeltaMs > 0 && measuredMs > c.MaxDeltaMs {
		return c.MaxDeltaMs
	}
	return measuredMs
}
