// Package registry provides a global registry for paddle controller factories.
// Controllers register themselves in init() functions, allowing the platform
// to pick who drives each paddle by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrUnknownController is returned (wrapped) by Create for unregistered IDs.
var ErrUnknownController = errors.New("unknown controller")

// Observation is what a controller may see of the match on one tick.
type Observation struct {
	Side         core.PlayerID
	Viewport     core.Size
	Paddle       core.Rect // The controlled paddle
	Ball         core.Rect
	BallVelocity core.Vec2
	Playing      bool
	WaitingTicks int     // Ticks spent waiting for a serve
	Skill        float64 // Current reaction probability (0-1) for automated controllers
}

// Intent is a controller's decision for one tick.
type Intent struct {
	Up    bool
	Down  bool
	Serve bool
}

// Controller decides paddle movement for one side of the table.
type Controller interface {
	// ID returns the unique identifier used on the command line (e.g., "cpu").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Manual reports whether keyboard input drives this side.
	// The platform ignores keyboard paddle input for non-manual sides.
	Manual() bool

	// Reset reseeds any internal randomness before a match starts.
	Reset(seed int64)

	// Decide returns the inputs to hold for this tick.
	Decide(obs Observation) Intent
}

// Options configures a controller instance.
type Options struct {
	Side       core.PlayerID
	Seed       int64
	DeadZone   int // Distance within which a tracking controller holds still
	ServeDelay int // Ticks an automated controller waits before serving
	AimSpread  int // Max offset from the ball centre a tracking controller aims at
}

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new controller.
type Factory func(opts Options) Controller

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a controller factory to the registry.
// Typically called from an init() function.
// Panics if a controller with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: controller %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(Options{Side: core.Player1}).Title()
}

// List returns information about all registered controllers, sorted by ID.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ControllerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a controller by its ID.
// Returns an error if the ID is not registered.
func Create(id string, opts Options) (Controller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownController, id)
	}

	return f(opts), nil
}

// Exists checks if a controller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
