package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the kitchen configuration.
// Search order: customPath -> ~/.kitchen/configs/kitchen.yaml -> ./configs/kitchen.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kitchen.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "kitchen.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultKitchenYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Fields missing from data keep their default values; a stations list in
// data replaces the default list entirely.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the scene relies on.
func (c Config) Validate() error {
	if len(c.Scene.Stations) == 0 {
		return fmt.Errorf("%w: scene.stations is empty", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Scene.Stations))
	for i, s := range c.Scene.Stations {
		if s.ID == "" {
			return fmt.Errorf("%w: scene.stations[%d].id is empty", ErrInvalid, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate station id %q", ErrInvalid, s.ID)
		}
		seen[s.ID] = true

		if !fraction(s.Anchor.X) || !fraction(s.Anchor.Y) {
			return fmt.Errorf("%w: station %q anchor (%v, %v) outside 0..1", ErrInvalid, s.ID, s.Anchor.X, s.Anchor.Y)
		}
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: station %q needs a positive width and height", ErrInvalid, s.ID)
		}
	}

	if !fraction(c.Scene.Actor.X) || !fraction(c.Scene.Actor.Y) {
		return fmt.Errorf("%w: scene.actor outside 0..1", ErrInvalid)
	}

	switch c.Scene.HitTest {
	case HitTestBox:
	case HitTestCircle:
		if c.Scene.HitRadius <= 0 {
			return fmt.Errorf("%w: scene.hit_radius must be positive for circle hit tests", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: scene.hit_test %q (want %q or %q)", ErrInvalid, c.Scene.HitTest, HitTestBox, HitTestCircle)
	}

	if c.Movement.Speed <= 0 {
		return fmt.Errorf("%w: movement.speed must be positive", ErrInvalid)
	}
	if c.Movement.ArrivalEpsilon <= 0 {
		return fmt.Errorf("%w: movement.arrival_epsilon must be positive", ErrInvalid)
	}
	if c.Movement.ScaleWithViewport && (c.Scene.Reference.Width <= 0 || c.Scene.Reference.Height <= 0) {
		return fmt.Errorf("%w: scene.reference is required when movement.scale_with_viewport is set", ErrInvalid)
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell size must be positive", ErrInvalid)
	}

	return nil
}

func fraction(v float64) bool {
	return v >= 0 && v <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kitchen", "configs", filename)
}
