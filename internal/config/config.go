// Package config provides YAML-based scene configuration loading for the
// kitchen: station layout, movement tuning, feedback timing and terminal
// cell geometry.
package config

// Config is the full scene configuration.
type Config struct {
	Scene    SceneConfig    `yaml:"scene"`
	Movement MovementConfig `yaml:"movement"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// SceneConfig describes the static scene: where things sit and how clicks
// are matched against stations.
type SceneConfig struct {
	Reference      Viewport        `yaml:"reference"`       // Resolution the speed is tuned for
	Actor          Anchor          `yaml:"actor"`           // Actor spawn as viewport fractions
	HitTest        HitTest         `yaml:"hit_test"`        // "box" or "circle"
	HitRadius      float64         `yaml:"hit_radius"`      // Circle radius in px (hit_test: circle)
	ApproachOffset float64         `yaml:"approach_offset"` // Px below a station the actor stops at
	Stations       []StationConfig `yaml:"stations"`
}

// Viewport is a width/height pair in pixels.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Anchor is a position expressed as fractions (0..1) of the viewport.
type Anchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// StationConfig describes one interactive station.
type StationConfig struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Anchor Anchor  `yaml:"anchor"`
	Width  float64 `yaml:"width"`  // Sprite bounding box width in px
	Height float64 `yaml:"height"` // Sprite bounding box height in px
	Prompt string  `yaml:"prompt"` // Placeholder feedback shown on arrival
}

// HitTest selects the geometry used to match a click to a station.
type HitTest string

const (
	HitTestBox    HitTest = "box"
	HitTestCircle HitTest = "circle"
)

// MovementConfig tunes the walking actor.
type MovementConfig struct {
	Speed             float64 `yaml:"speed"`               // px/s at the reference resolution
	ScaleWithViewport bool    `yaml:"scale_with_viewport"` // Scale speed by viewport/reference
	ArrivalEpsilon    float64 `yaml:"arrival_epsilon"`     // px
	Margins           Margins `yaml:"margins"`
}

// Margins are the insets of the walkable area in px.
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// FeedbackConfig controls how long transient feedback stays visible.
type FeedbackConfig struct {
	PromptMs float64 `yaml:"prompt_ms"`
	MarkerMs float64 `yaml:"marker_ms"`
}

// TerminalConfig maps terminal cells onto the pixel space of the scene.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	TickRate   int     `yaml:"tick_rate"`
	MaxDeltaMs float64 `yaml:"max_delta_ms"`
}

// Station returns the station with the given id.
func (c Config) Station(id string) (StationConfig, bool) {
	for _, s := range c.Scene.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return StationConfig{}, false
}
