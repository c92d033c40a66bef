// Package event carries presentation feedback out of the scene core.
// The core pushes events as things happen; a frontend drains the queue once
// per frame and decides how to show them.
package event

import (
	"fmt"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
	"github.com/MauroGutMB/jogo-hello-kitty/internal/movement"
)

// Event is something the presentation layer may want to render.
type Event interface {
	sceneEvent()
}

// MarkerRequested asks for a transient destination marker.
type MarkerRequested struct {
	At core.Point
}

func (MarkerRequested) sceneEvent() {}

// StationArrived is emitted once per completed station-bound walk.
type StationArrived struct {
	StationID string
	Label     string
	Prompt    string
}

func (StationArrived) sceneEvent() {}

// ActorMoved reports the actor's new placement after a tick or a rescale.
type ActorMoved struct {
	Actor movement.Actor
}

func (ActorMoved) sceneEvent() {}

// ViewportResized reports a completed resize.
type ViewportResized struct {
	From, To core.Size
}

func (ViewportResized) sceneEvent() {}

// Describe returns a short human-readable form of e for logs.
func Describe(e Event) string {
	switch ev := e.(type) {
	case MarkerRequested:
		return fmt.Sprintf("marker at (%.0f, %.0f)", ev.At.X, ev.At.Y)
	case StationArrived:
		return fmt.Sprintf("arrived at %s", ev.StationID)
	case ActorMoved:
		return fmt.Sprintf("actor at (%.1f, %.1f) facing %s", ev.Actor.Position.X, ev.Actor.Position.Y, ev.Actor.Facing)
	case ViewportResized:
		return fmt.Sprintf("viewport %.0fx%.0f -> %.0fx%.0f", ev.From.Width, ev.From.Height, ev.To.Width, ev.To.Height)
	default:
		return "unknown event"
	}
}

// Queue is a FIFO of pending events. It is not safe for concurrent use;
// a scene and its frontend share one goroutine.
type Queue struct {
	items []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.items = append(q.items, e)
}

// Drain returns all pending events in order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.items)
}
