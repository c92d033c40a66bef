package config

import (
	_ "embed"
)

//go:embed defaults/kitchen.yaml
var defaultKitchenYAML []byte

// Default returns the hardcoded kitchen configuration. It mirrors
// defaults/kitchen.yaml and is used when the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Scene: SceneConfig{
			Reference:      Viewport{Width: 800, Height: 600},
			Actor:          Anchor{X: 0.50, Y: 0.60},
			HitTest:        HitTestBox,
			HitRadius:      80,
			ApproachOffset: 80,
			Stations: []StationConfig{
				{ID: "geladeira", Label: "Geladeira", Anchor: Anchor{X: 0.25, Y: 0.18}, Width: 120, Height: 100, Prompt: "Geladeira: o que vamos pegar?"},
				{ID: "fogao", Label: "Fogão", Anchor: Anchor{X: 0.50, Y: 0.18}, Width: 120, Height: 100, Prompt: "Fogão: hora de cozinhar!"},
				{ID: "pia", Label: "Pia", Anchor: Anchor{X: 0.75, Y: 0.18}, Width: 120, Height: 100, Prompt: "Pia: lavar antes de começar."},
				{ID: "mesa", Label: "Mesa", Anchor: Anchor{X: 0.78, Y: 0.70}, Width: 140, Height: 90, Prompt: "Mesa: em breve, receitas!"},
			},
		},
		Movement: MovementConfig{
			Speed:             200,
			ScaleWithViewport: false,
			ArrivalEpsilon:    5,
			Margins:           Margins{Left: 50, Right: 50, Top: 100, Bottom: 50},
		},
		Feedback: FeedbackConfig{
			PromptMs: 2000,
			MarkerMs: 600,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			TickRate:   60,
			MaxDeltaMs: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultKitchenYAML
}
