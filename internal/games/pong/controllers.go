package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Controller IDs registered by this package.
const (
	ControllerHuman = "human"
	ControllerCPU   = "cpu"
)

// humanController leaves the paddle to the keyboard.
type humanController struct{}

func (humanController) ID() string    { return ControllerHuman }
func (humanController) Title() string { return "Human (keyboard)" }
func (humanController) Manual() bool  { return true }
func (humanController) Reset(int64)   {}

func (humanController) Decide(registry.Observation) registry.Intent {
	return registry.Intent{}
}

// cpuController tracks the ball when it approaches its side and drifts back
// to the middle otherwise. Each tick it only reacts with probability Skill.
// Every approach it rolls a new aim point within aimSpread of the ball centre.
type cpuController struct {
	side       core.PlayerID
	deadZone   int
	serveDelay int
	aimSpread  int
	rng        *rand.Rand

	tracking bool
	aim      int
}

func newCPUController(opts registry.Options) *cpuController {
	c := &cpuController{
		side:       opts.Side,
		deadZone:   opts.DeadZone,
		serveDelay: opts.ServeDelay,
		aimSpread:  opts.AimSpread,
	}
	c.Reset(opts.Seed)
	return c
}

func (c *cpuController) ID() string    { return ControllerCPU }
func (c *cpuController) Title() string { return "CPU" }
func (c *cpuController) Manual() bool  { return false }

// Reset reseeds the RNG; each side gets its own stream.
func (c *cpuController) Reset(seed int64) {
	c.rng = rand.New(rand.NewSource(seed + int64(c.side))) //#nosec G404 -- gameplay randomness
	c.tracking = false
	c.aim = 0
}

// Decide picks this tick's inputs.
func (c *cpuController) Decide(obs registry.Observation) registry.Intent {
	if !obs.Playing {
		c.tracking = false
		return registry.Intent{Serve: obs.WaitingTicks >= c.serveDelay}
	}

	approaching := c.approaching(obs.BallVelocity)
	if approaching && !c.tracking {
		c.aim = c.rollAim()
	}
	c.tracking = approaching

	if c.rng.Float64() >= obs.Skill {
		return registry.Intent{}
	}

	target := obs.Viewport.H / 2
	if approaching {
		target = obs.Ball.Center().Y + c.aim
	}

	diff := target - obs.Paddle.Center().Y
	switch {
	case diff < -c.deadZone:
		return registry.Intent{Up: true}
	case diff > c.deadZone:
		return registry.Intent{Down: true}
	default:
		return registry.Intent{}
	}
}

// rollAim picks an offset in [-aimSpread, aimSpread].
func (c *cpuController) rollAim() int {
	if c.aimSpread <= 0 {
		return 0
	}
	return c.rng.Intn(2*c.aimSpread+1) - c.aimSpread
}

// approaching reports whether the ball travels toward this controller's wall.
func (c *cpuController) approaching(v core.Vec2) bool {
	if c.side == core.Player2 {
		return v.X > 0
	}
	return v.X < 0
}

// Register the controllers with the registry
func init() {
	registry.Register(ControllerHuman, func(registry.Options) registry.Controller {
		return humanController{}
	})
	registry.Register(ControllerCPU, func(opts registry.Options) registry.Controller {
		return newCPUController(opts)
	})
}
