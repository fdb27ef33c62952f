// Package lava implements the lava breakout simulation: a paddle deflects a
// ball into a grid of bricks, and touching the lava strip ends the session.
package lava

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
)

// Session lifecycle states
const (
	StateIdle       = "idle"       // Created, Initialize not called yet
	StateRunning    = "running"    // Accepting steps
	StateTerminated = "terminated" // Hazard, quit key or host ended the session
	StateFinalized  = "finalized"  // Bricks released
)

// maxBricks caps the grid allocation.
const maxBricks = 1 << 20

var (
	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("lava: session already initialized")

	// ErrInvalidLayout is returned when the brick grid cannot be allocated.
	ErrInvalidLayout = errors.New("lava: invalid brick layout")
)

// Session owns every body of one run, from Initialize to Finalize.
// It is not safe for concurrent use; the host drives it from one goroutine.
type Session struct {
	cfg   config.LavaConfig
	field core.Field
	rule  core.CollisionRule
	host  core.Host

	paddle Paddle
	ball   Ball
	hazard Hazard
	bricks []Brick

	columns  int
	rows     int
	maxScale float64 // Upper bound of the scaled motion multiplier

	state     string
	reason    core.EndReason
	notified  bool
	frame     uint64
	elapsed   time.Duration
	destroyed int
}

// NewSession creates an idle session. A nil host never reports held keys
// and drops termination requests.
func NewSession(cfg config.LavaConfig, host core.Host) *Session {
	if host == nil {
		host = nopHost{}
	}
	return &Session{
		cfg:   cfg,
		field: cfg.FieldSize(),
		rule:  cfg.CollisionRule(),
		host:  host,
		state: StateIdle,
	}
}

// Initialize constructs the bodies and allocates the brick grid.
// Columns are field.W / (brick width + spacing); bricks are laid out row by
// row from the top margin. It may only be called once.
func (s *Session) Initialize() error {
	if s.state != StateIdle {
		return ErrAlreadyInitialized
	}

	rows, columns, err := gridSize(s.field, s.cfg.Bricks)
	if err != nil {
		return err
	}

	s.paddle = NewPaddle(s.cfg.Paddle)
	s.ball = NewBall(s.cfg.Ball)
	s.hazard = NewHazard(s.cfg.Hazard, s.field)
	s.maxScale = scaleLimit(s.ball, s.paddle, s.hazard, s.cfg.Bricks)

	s.rows = rows
	s.columns = columns
	s.bricks = make([]Brick, rows*columns)

	bc := s.cfg.Bricks
	for row := range rows {
		for col := range columns {
			x := col * (bc.Width + bc.Spacing)
			y := bc.TopMargin + row*(bc.Height+bc.Spacing)
			s.bricks[row*columns+col] = NewBrick(bc, x, y)
		}
	}

	s.frame = 0
	s.elapsed = 0
	s.destroyed = 0
	s.state = StateRunning
	return nil
}

// gridSize computes the brick grid dimensions for a field.
func gridSize(field core.Field, bc config.BricksConfig) (rows, columns int, err error) {
	stride := bc.Width + bc.Spacing
	if bc.Width <= 0 || bc.Height <= 0 || bc.Spacing < 0 || bc.Rows <= 0 {
		return 0, 0, fmt.Errorf("%w: brick %dx%d spacing %d rows %d",
			ErrInvalidLayout, bc.Width, bc.Height, bc.Spacing, bc.Rows)
	}
	columns = field.W / stride
	if columns <= 0 {
		return 0, 0, fmt.Errorf("%w: field width %d narrower than one brick stride %d",
			ErrInvalidLayout, field.W, stride)
	}
	if bc.Rows > maxBricks/columns {
		return 0, 0, fmt.Errorf("%w: %d x %d bricks exceeds %d",
			ErrInvalidLayout, bc.Rows, columns, maxBricks)
	}
	return bc.Rows, columns, nil
}

// Finalize releases the brick grid. Further steps are ignored.
func (s *Session) Finalize() {
	s.bricks = nil
	s.state = StateFinalized
}

// Terminate ends the session on behalf of the host (window closed,
// disconnect). The host is not notified since it initiated the stop.
func (s *Session) Terminate(reason core.EndReason) {
	if s.state != StateRunning {
		return
	}
	s.state = StateTerminated
	s.reason = reason
	s.notified = true
}

// terminate ends the session and sends the single termination request.
func (s *Session) terminate(reason core.EndReason) {
	if s.state != StateRunning {
		return
	}
	s.state = StateTerminated
	s.reason = reason
	s.notified = true
	s.host.ScheduleQuit(reason)
}

// State returns the externally visible status of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Frame:           s.frame,
		BricksAlive:     s.BricksAlive(),
		BricksTotal:     len(s.bricks),
		Terminated:      s.state == StateTerminated || s.state == StateFinalized,
		Reason:          s.reason,
		TerminationSent: s.notified,
	}
}

// Field returns the playfield size.
func (s *Session) Field() core.Field {
	return s.field
}

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle {
	return s.paddle
}

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball {
	return s.ball
}

// Hazard returns a copy of the lava strip.
func (s *Session) Hazard() Hazard {
	return s.hazard
}

// Bricks returns the brick grid in row-major order. The slice aliases
// session state and must not be modified.
func (s *Session) Bricks() []Brick {
	return s.bricks
}

// BricksAlive counts bricks still standing.
func (s *Session) BricksAlive() int {
	count := 0
	for i := range s.bricks {
		if s.bricks[i].Alive {
			count++
		}
	}
	return count
}

// Destroyed returns the number of bricks destroyed so far.
func (s *Session) Destroyed() int {
	return s.destroyed
}

// Elapsed returns the sum of the step durations supplied by the host.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// nopHost is used when a session is created without a host.
type nopHost struct{}

func (nopHost) KeyHeld(core.Key) bool { return false }

func (nopHost) ScheduleQuit(core.EndReason) {}
