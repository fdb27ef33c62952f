package lava

import (
	"math"

	"github.com/vovakirdan/lavabreak/internal/core"
)

// Snapshot contains the complete dynamic state of a session for replay
// comparison and debugging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame      uint64
	State      string
	Reason     string
	Destroyed  int
	PaddleX    float64
	PaddleY    float64
	PaddleVX   int
	BallX      float64
	BallY      float64
	BallVX     int
	BallVY     int
	BrickAlive []bool // row-major, one entry per slot
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	alive := make([]bool, len(s.bricks))
	for i := range s.bricks {
		alive[i] = s.bricks[i].Alive
	}

	return Snapshot{
		Frame:      s.frame,
		State:      s.state,
		Reason:     string(s.reason),
		Destroyed:  s.destroyed,
		PaddleX:    s.paddle.Pos.X,
		PaddleY:    s.paddle.Pos.Y,
		PaddleVX:   s.paddle.Vel.X,
		BallX:      s.ball.Pos.X,
		BallY:      s.ball.Pos.Y,
		BallVX:     s.ball.Vel.X,
		BallVY:     s.ball.Vel.Y,
		BrickAlive: alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + hashString(snap.State)
	h = h*31 + hashString(snap.Reason)
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)
	h = h*31 + uint64(snap.PaddleVX) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + uint64(snap.BallVX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY) //#nosec G115 -- hash computation

	for _, alive := range snap.BrickAlive {
		h *= 31
		if alive {
			h++
		}
	}

	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

// Stats returns the run summary. BricksTotal is the grid size allocated at
// Initialize and survives Finalize.
func (s *Session) Stats() core.RunStats {
	return core.RunStats{
		Frames:          s.frame,
		BricksDestroyed: s.destroyed,
		BricksTotal:     s.rows * s.columns,
		Elapsed:         s.elapsed,
		Reason:          s.reason,
	}
}
