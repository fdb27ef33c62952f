// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/lavabreak/internal/core"
)

// Game is the interface every registered simulation implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform owns timing, input polling and presentation, and drives a
// game through Initialize, then Step and Render once per frame, then Finalize.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "lava").
	// Used for CLI commands and the run log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Initialize builds the session. The host answers key queries and
	// receives the termination request. Called once before any frame.
	Initialize(cfg core.RuntimeConfig, host core.Host) error

	// Field returns the playfield size; valid after Initialize.
	Field() core.Field

	// Step advances the simulation by one frame. dt is the time elapsed
	// since the previous frame as measured by the host.
	Step(dt time.Duration) core.StepResult

	// Render paints the current state into the frame buffer.
	Render(dst *core.FrameBuffer)

	// Terminate ends the session on behalf of the host, for example when
	// the window closes. The host is not notified back.
	Terminate(reason core.EndReason)

	// Finalize releases session resources. Called once after the loop ends.
	Finalize()

	// State returns the current session status.
	State() core.GameState

	// Stats returns the run summary; it remains valid after Finalize.
	Stats() core.RunStats
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game package's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
