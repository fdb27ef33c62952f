package core

import "time"

// RuntimeConfig contains configuration passed to games by the platform.
type RuntimeConfig struct {
	TermW    int // Terminal width in characters
	TermH    int // Terminal height in characters
	TickRate int // Frames per second requested from the host loop (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TermW:    80,
		TermH:    24,
		TickRate: 60,
	}
}

// EndReason records why a session terminated.
type EndReason string

const (
	EndNone   EndReason = ""
	EndHazard EndReason = "hazard" // Ball touched the lava strip
	EndQuit   EndReason = "quit"   // Quit key held during a step
	EndHost   EndReason = "host"   // Host closed the session (window closed, ctrl+c, disconnect)
)

// GameState is the externally visible status of a session.
type GameState struct {
	Frame           uint64    // Steps executed so far
	BricksAlive     int       // Bricks still standing
	BricksTotal     int       // Bricks allocated at initialize
	Terminated      bool      // Whether the session has ended
	Reason          EndReason // Why it ended, EndNone while running
	TerminationSent bool      // Whether the host has been notified
}

// StepResult is returned by Step after each frame.
type StepResult struct {
	State GameState
}

// RunStats summarizes a finished session for the run log.
type RunStats struct {
	Frames          uint64
	BricksDestroyed int
	BricksTotal     int
	Elapsed         time.Duration // Sum of step durations
	Reason          EndReason
}
