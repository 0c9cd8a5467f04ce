package globe

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glyph-globe/status"
	"github.com/lixenwraith/glyph-globe/vmath"
)

// State is the controller phase
type State int

const (
	StateIdle State = iota
	StateTracking
	StateDecaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateDecaying:
		return "decaying"
	}
	return "unknown"
}

// Scheduler runs fn once after d on the same goroutine that delivers pointer events
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Controller maps pointer events to the vertical and horizontal angular velocities
// and decays them back to the idle spin after the pointer leaves
// Not safe for concurrent use: all methods and scheduled ticks run on one goroutine
type Controller struct {
	vel    *Velocity
	sched  Scheduler
	tuning Tuning

	width, height float64

	// Last pointer offset relative to surface center
	px, py float64
	over   bool

	state State
	gen   uint64

	// Captured on leave
	theta    float64
	dirY     float64
	dirZ     float64
	settledY bool
	settledZ bool

	statMoves    *atomic.Int64
	statLeaves   *atomic.Int64
	statTicks    *atomic.Int64
	statCanceled *atomic.Int64
	statVY       *status.Float
	statVZ       *status.Float
}

// NewController resets vel to the idle spin and returns a controller writing to it
// reg may be nil
func NewController(vel *Velocity, sched Scheduler, tuning Tuning, reg *status.Registry) *Controller {
	if reg == nil {
		reg = status.NewRegistry()
	}
	*vel = Velocity{X: tuning.MinSpeed, Y: tuning.MinSpeed, Z: tuning.MinSpeed}

	c := &Controller{
		vel:          vel,
		sched:        sched,
		tuning:       tuning,
		state:        StateIdle,
		statMoves:    reg.Int(status.PointerMoves),
		statLeaves:   reg.Int(status.PointerLeaves),
		statTicks:    reg.Int(status.DecayTicks),
		statCanceled: reg.Int(status.DecayCanceled),
		statVY:       reg.Float(status.VelocityY),
		statVZ:       reg.Float(status.VelocityZ),
	}
	c.publish()
	return c
}

// Resize sets the surface layout size used by the pointer mapping
func (c *Controller) Resize(width, height float64) {
	c.width, c.height = width, height
}

// PointerMove maps a pointer offset from the surface top-left to vy and vz
// vx is never touched
func (c *Controller) PointerMove(offsetX, offsetY float64) {
	c.statMoves.Add(1)
	if c.width <= 0 || c.height <= 0 || !vmath.Finite(offsetX) || !vmath.Finite(offsetY) {
		return
	}

	c.px = offsetX - c.width/2
	c.py = offsetY - c.height/2
	c.over = true
	c.gen++

	c.vel.Y = c.tuning.MouseSpeed * c.px / c.width
	c.vel.Z = c.tuning.MouseSpeed * c.py / c.height

	if c.state != StateTracking {
		log.Printf("globe: %s -> %s", c.state, StateTracking)
		c.state = StateTracking
	}
	c.publish()
}

// PointerLeave starts a decay run toward the idle spin, superseding any run in progress
func (c *Controller) PointerLeave() {
	c.statLeaves.Add(1)
	c.over = false
	c.gen++

	// Angle from the corner-relative reading of the center-relative offset
	c.theta = math.Atan2(c.py-c.height/2, c.px-c.width/2)
	c.dirY = math.Cos(c.theta) * c.tuning.DecayDirectionGain
	c.dirZ = math.Sin(c.theta) * c.tuning.DecayDirectionGain
	c.settledY, c.settledZ = false, false

	if c.state != StateDecaying {
		log.Printf("globe: %s -> %s (theta %.3f)", c.state, StateDecaying, c.theta)
		c.state = StateDecaying
	}

	gen := c.gen
	c.decayTick(gen)
}

// decayTick runs one step of the run tagged gen and reschedules itself until both axes settle
func (c *Controller) decayTick(gen uint64) {
	if gen != c.gen || c.over {
		c.statCanceled.Add(1)
		return
	}
	c.statTicks.Add(1)

	if !c.settledY {
		c.vel.Y, c.settledY = c.decayAxis(c.vel.Y)
	}
	if !c.settledZ {
		c.vel.Z, c.settledZ = c.decayAxis(c.vel.Z)
	}
	c.publish()

	if c.settledY && c.settledZ {
		log.Printf("globe: %s -> %s", c.state, StateIdle)
		c.state = StateIdle
		return
	}
	c.sched.After(c.tuning.DecayInterval, func() { c.decayTick(gen) })
}

// decayAxis divides v by the decay factor and clamps to the idle magnitude once at or below it
func (c *Controller) decayAxis(v float64) (float64, bool) {
	if !vmath.Finite(v) {
		return c.tuning.MinSpeed, true
	}
	v /= c.tuning.DecayFactor
	if math.Abs(v) <= c.tuning.MinSpeed {
		return vmath.Sign(v) * c.tuning.MinSpeed, true
	}
	return v, false
}

func (c *Controller) publish() {
	c.statVY.Set(c.vel.Y)
	c.statVZ.Set(c.vel.Z)
}

// State returns the current phase
func (c *Controller) State() State { return c.state }

// Over reports whether the pointer is currently over the surface
func (c *Controller) Over() bool { return c.over }

// Theta returns the angle captured at the last pointer leave
func (c *Controller) Theta() float64 { return c.theta }

// DecayDirection returns the (vy, vz) direction captured at the last pointer leave
// Recorded for inspection; decay itself preserves each axis sign
func (c *Controller) DecayDirection() (float64, float64) { return c.dirY, c.dirZ }

// Generation returns the counter bumped by every move and leave
func (c *Controller) Generation() uint64 { return c.gen }
