package movement

import (
	"math"

	"github.com/MauroGutMB/jogo-hello-kitty/internal/core"
)

// Defaults for the kitchen scene.
const (
	DefaultSpeed          = 200.0 // px/s
	DefaultArrivalEpsilon = 5.0   // px
)

// Margins are the insets of the walkable area inside the viewport.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins keep the sprite on screen and clear of the top UI strip.
var DefaultMargins = Margins{Left: 50, Right: 50, Top: 100, Bottom: 50}

// Options configure a Controller.
type Options struct {
	Speed          float64 // px/s, DefaultSpeed if zero
	ArrivalEpsilon float64 // px, DefaultArrivalEpsilon if zero
	Margins        Margins

	// OnArrived is called once per completed station-bound intent.
	OnArrived func(stationID string)
	// OnMarker is called on every MoveTo with the clamped destination.
	OnMarker func(target core.Point)
}

// Controller moves one actor toward the latest intent at constant speed.
//
// State machine: Idle -> Moving on MoveTo; Moving -> Moving on a new MoveTo
// (the intent is replaced, never queued); Moving -> Idle on arrival.
type Controller struct {
	actor    Actor
	intent   Intent
	moving   bool
	speed    float64
	epsilon  float64
	margins  Margins
	viewport core.Size

	onArrived func(string)
	onMarker  func(core.Point)
}

// NewController creates an idle controller with the actor at start.
func NewController(start core.Point, viewport core.Size, opts Options) *Controller {
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.ArrivalEpsilon <= 0 {
		opts.ArrivalEpsilon = DefaultArrivalEpsilon
	}

	return &Controller{
		actor:     Actor{Position: start, Facing: FacingRight},
		speed:     opts.Speed,
		epsilon:   opts.ArrivalEpsilon,
		margins:   opts.Margins,
		viewport:  viewport,
		onArrived: opts.OnArrived,
		onMarker:  opts.OnMarker,
	}
}

// MoveTo replaces any in-flight intent with a walk toward target.
// Targets outside the walkable area are clamped onto it.
func (c *Controller) MoveTo(target core.Point, stationID string) {
	clamped := c.Clamp(target)
	c.intent = Intent{Target: clamped, StationID: stationID}
	c.moving = true

	if c.onMarker != nil {
		c.onMarker(clamped)
	}
}

// Tick advances the actor by deltaMs of simulated time.
func (c *Controller) Tick(deltaMs float64) {
	if !c.moving {
		return
	}

	pos := c.actor.Position
	target := c.intent.Target
	distance := pos.Dist(target)

	if distance < c.epsilon {
		c.arrive()
		return
	}
	if deltaMs <= 0 {
		return
	}

	// Never step past the target: a long frame lands exactly on it and the
	// next tick reports arrival.
	step := math.Min(c.speed*deltaMs/1000, distance)
	angle := math.Atan2(target.Y-pos.Y, target.X-pos.X)
	c.actor.Position = core.Point{
		X: pos.X + step*math.Cos(angle),
		Y: pos.Y + step*math.Sin(angle),
	}

	if target.X < c.actor.Position.X {
		c.actor.Facing = FacingLeft
	} else {
		c.actor.Facing = FacingRight
	}
}

func (c *Controller) arrive() {
	intent := c.intent
	c.actor.Position = intent.Target
	c.moving = false
	c.intent = Intent{}

	if intent.Bound() && c.onArrived != nil {
		c.onArrived(intent.StationID)
	}
}

// Clamp restricts p to the walkable area of the current viewport.
func (c *Controller) Clamp(p core.Point) core.Point {
	return core.Point{
		X: core.ClampF(p.X, c.margins.Left, c.viewport.Width-c.margins.Right),
		Y: core.ClampF(p.Y, c.margins.Top, c.viewport.Height-c.margins.Bottom),
	}
}

// Reposition overwrites the actor position and, when target is non-nil and
// an intent is active, the intent target. Used after a viewport rescale;
// the intent's station binding is kept.
func (c *Controller) Reposition(actor core.Point, target *core.Point) {
	c.actor.Position = actor
	if target != nil && c.moving {
		c.intent.Target = *target
	}
}

// SetViewport updates the area used for clamping future targets.
func (c *Controller) SetViewport(v core.Size) {
	c.viewport = v
}

// SetSpeed changes the walking speed in px/s. Non-positive values are ignored.
func (c *Controller) SetSpeed(speed float64) {
	if speed > 0 {
		c.speed = speed
	}
}

// Speed returns the walking speed in px/s.
func (c *Controller) Speed() float64 {
	return c.speed
}

// IsMoving reports whether an intent is active.
func (c *Controller) IsMoving() bool {
	return c.moving
}

// Intent returns the active intent, if any.
func (c *Controller) Intent() (Intent, bool) {
	return c.intent, c.moving
}

// Actor returns a copy of the actor state.
func (c *Controller) Actor() Actor {
	return c.actor
}
