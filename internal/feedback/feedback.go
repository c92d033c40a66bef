// Package feedback keeps the transient visual feedback of the kitchen: the
// destination marker and the placeholder prompt shown when the actor
// reaches a station. It consumes scene events and expires entries by
// elapsed frame time, so animation timing never touches the movement core.
package feedback

import (
	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/event"
)

// Prompt is the arrival message currently on screen.
type Prompt struct {
	StationID   string
	Text        string
	RemainingMs float64
	TotalMs     float64
}

// Alpha returns the fade level in [0, 1], fading out over the last third.
func (p Prompt) Alpha() float64 {
	return fade(p.RemainingMs, p.TotalMs)
}

// Marker is the destination marker currently on screen.
type Marker struct {
	At          core.Point
	RemainingMs float64
	TotalMs     float64
}

// Alpha returns the fade level in [0, 1].
func (m Marker) Alpha() float64 {
	return fade(m.RemainingMs, m.TotalMs)
}

func fade(remaining, total float64) float64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	tail := total / 3
	if remaining >= tail {
		return 1
	}
	return remaining / tail
}

// Board holds at most one prompt and one marker. A newer event replaces the
// current entry of the same kind.
type Board struct {
	promptMs float64
	markerMs float64
	prompt   *Prompt
	marker   *Marker
}

// NewBoard creates a board with the given display durations.
func NewBoard(promptMs, markerMs float64) *Board {
	return &Board{promptMs: promptMs, markerMs: markerMs}
}

// Apply updates the board from a batch of scene events.
func (b *Board) Apply(events []event.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case event.MarkerRequested:
			if b.markerMs > 0 {
				b.marker = &Marker{At: ev.At, RemainingMs: b.markerMs, TotalMs: b.markerMs}
			}
		case event.StationArrived:
			if b.promptMs > 0 {
				text := ev.Prompt
				if text == "" {
					text = ev.Label
				}
				b.prompt = &Prompt{StationID: ev.StationID, Text: text, RemainingMs: b.promptMs, TotalMs: b.promptMs}
			}
		case event.ViewportResized:
			// The marker is in pixel space of the old viewport.
			b.marker = nil
		}
	}
}

// Advance ages the board by deltaMs and drops expired entries.
func (b *Board) Advance(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	if b.prompt != nil {
		b.prompt.RemainingMs -= deltaMs
		if b.prompt.RemainingMs <= 0 {
			b.prompt = nil
		}
	}
	if b.marker != nil {
		b.marker.RemainingMs -= deltaMs
		if b.marker.RemainingMs <= 0 {
			b.marker = nil
		}
	}
}

// Prompt returns the visible prompt, if any.
func (b *Board) Prompt() (Prompt, bool) {
	if b.prompt == nil {
		return Prompt{}, false
	}
	return *b.prompt, true
}

// Marker returns the visible marker, if any.
func (b *Board) Marker() (Marker, bool) {
	if b.marker == nil {
		return Marker{}, false
	}
	return *b.marker, true
}
