// Package pong implements a two-player Pong match: paddle and ball entities,
// the serve/score state machine and the fixed-tick driver that advances them.
// Either paddle can be driven by the keyboard or by a registered controller.
package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Game adapts the Driver to the platform: it merges keyboard and controller
// inputs, handles pause and renders snapshots.
type Game struct {
	cfg          config.PongConfig
	driver       *Driver
	controllers  [2]registry.Controller
	difficulty   *config.DifficultyManager
	runtime      core.RuntimeConfig
	paused       bool
	waitingTicks int
	last         Result
}

// New creates a match where p1 and p2 name registered controllers.
func New(cfg config.PongConfig, p1, p2 string) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		driver:     NewDriver(cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.CPU),
		runtime:    core.DefaultConfig(),
	}

	for i, id := range [2]string{p1, p2} {
		c, err := registry.Create(id, registry.Options{
			Side:       core.PlayerID(i + 1),
			Seed:       g.runtime.Seed,
			DeadZone:   cfg.Physics.PaddleSpeed,
			ServeDelay: cfg.CPU.ServeDelay,
			AimSpread:  cfg.CPU.AimSpread,
		})
		if err != nil {
			return nil, fmt.Errorf("pong: player %d: %w", i+1, err)
		}
		g.controllers[i] = c
	}

	return g, nil
}

// ID returns the identifier used for storage.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Reset restarts the match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.driver.Reset()
	g.paused = false
	g.waitingTicks = 0
	g.last = Result{}

	for _, c := range g.controllers {
		c.Reset(runtime.Seed)
	}
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputSet) core.StepResult {
	if in.Has(core.InputPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State(), Tick: g.driver.Ticks()}
	}

	g.last = g.driver.Tick(g.collectInputs(in))

	if g.last.Phase == PhaseLive {
		g.waitingTicks = 0
	} else {
		g.waitingTicks++
	}

	return core.StepResult{State: g.State(), Tick: g.last.Tick}
}

// collectInputs keeps keyboard input for manual sides and adds the
// decisions of automated controllers.
func (g *Game) collectInputs(keys core.InputSet) core.InputSet {
	var merged core.InputSet
	if keys.Has(core.InputServe) {
		merged.Set(core.InputServe)
	}

	snap := g.driver.Snapshot()
	points := int(snap.Scores.P1 + snap.Scores.P2)
	skill := g.difficulty.Skill(points, snap.Tick)

	for i, c := range g.controllers {
		side := core.PlayerID(i + 1)
		controls := g.driver.Paddle(side).Controls()

		if c.Manual() {
			if keys.Has(controls.Up) {
				merged.Set(controls.Up)
			}
			if keys.Has(controls.Down) {
				merged.Set(controls.Down)
			}
			continue
		}

		intent := c.Decide(registry.Observation{
			Side:         side,
			Viewport:     snap.Viewport,
			Paddle:       snap.Paddle(side),
			Ball:         snap.Ball,
			BallVelocity: snap.BallVelocity,
			Playing:      snap.Playing,
			WaitingTicks: g.waitingTicks,
			Skill:        skill,
		})
		if intent.Up {
			merged.Set(controls.Up)
		}
		if intent.Down {
			merged.Set(controls.Down)
		}
		if intent.Serve {
			merged.Set(core.InputServe)
		}
	}

	return merged
}

// State returns the current match state for the platform.
func (g *Game) State() core.GameState {
	scores := g.driver.Scores()
	return core.GameState{
		Score1:  int(scores.P1),
		Score2:  int(scores.P2),
		Playing: g.driver.Phase() == PhaseLive,
		Paused:  g.paused,
	}
}

// LastResult returns the outcome of the most recent tick.
func (g *Game) LastResult() Result {
	return g.last
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.driver.Snapshot()
}

// ControllerIDs returns the controller IDs of player 1 and player 2.
func (g *Game) ControllerIDs() [2]string {
	return [2]string{g.controllers[0].ID(), g.controllers[1].ID()}
}

// Render draws the current match into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.driver.Snapshot(), RenderOptions{
		Labels: [2]string{
			"P1 " + g.controllers[0].ID(),
			"P2 " + g.controllers[1].ID(),
		},
		Paused: g.paused,
	})
}
