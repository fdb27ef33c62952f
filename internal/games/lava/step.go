package lava

import (
	"math"
	"time"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
)

// Step advances the session by one frame. Each stage mutates state read by
// the next, so the order matters:
//
//  1. ball border reflection
//  2. ball vs paddle
//  3. ball vs bricks (speculative kill)
//  4. ball movement
//  5. ball vs lava
//  6. input
//  7. paddle movement
//
// Step does nothing unless the session is running.
func (s *Session) Step(dt time.Duration) core.StepResult {
	if s.state != StateRunning {
		return core.StepResult{State: s.State()}
	}

	s.frame++
	s.elapsed += dt
	scale := s.motionScale(dt)

	s.ball.CollideBorders(s.field)

	// Any paddle contact sends the ball up the screen, whatever its
	// approach direction.
	if s.ball.CheckCollideRule(s.paddle.Body, s.rule) != core.NotCollide {
		s.ball.Vel.Y = -1
	}

	s.collideBricks()

	s.ball.PosUpdate(s.field, scale)

	if s.ball.CheckCollideRule(s.hazard.Body, s.rule) != core.NotCollide {
		s.terminate(core.EndHazard)
	}

	s.applyInput()
	s.paddle.PosUpdate(s.field, scale)

	return core.StepResult{State: s.State()}
}

// collideBricks tests the ball against every living brick. A brick is killed
// before its test and revived when the test finds no collision; dead bricks
// are skipped so a revive never resurrects one.
func (s *Session) collideBricks() {
	for i := range s.bricks {
		brick := &s.bricks[i]
		if !brick.Alive {
			continue
		}

		hit := s.ball.CheckCollideRule(brick.Body, s.rule)
		brick.Alive = false

		switch hit {
		case core.Horizontal:
			s.ball.Vel.Y = -s.ball.Vel.Y
		case core.Vertical:
			s.ball.Vel.X = -s.ball.Vel.X
		case core.NotCollide:
			brick.Alive = true
		}

		if !brick.Alive {
			s.destroyed++
		}
	}
}

// applyInput maps held keys to paddle velocity. Quit beats left, left beats
// right, and no key stops the paddle.
func (s *Session) applyInput() {
	switch {
	case s.host.KeyHeld(core.KeyQuit):
		s.terminate(core.EndQuit)
	case s.host.KeyHeld(core.KeyLeft):
		s.paddle.Vel.X = -1
	case s.host.KeyHeld(core.KeyRight):
		s.paddle.Vel.X = 1
	default:
		s.paddle.Vel.X = 0
	}
}

// motionScale converts the frame duration into a displacement multiplier.
// Scaled motion caps the frame time at motion.max_step_ms and keeps the
// ball's displacement below its size plus the thinnest body it can hit.
func (s *Session) motionScale(dt time.Duration) float64 {
	if s.cfg.Motion.Mode != config.MotionScaled {
		return 1
	}
	dt = min(dt, s.cfg.Motion.MaxStep())
	return min(dt.Seconds()*s.cfg.Motion.ReferenceRate, s.maxScale)
}

// scaleLimit is the largest multiplier that keeps one ball displacement
// shorter than the ball plus the thinnest body it collides with.
func scaleLimit(ball Ball, paddle Paddle, hazard Hazard, bc config.BricksConfig) float64 {
	if ball.Speed <= 0 {
		return math.Inf(1)
	}
	thinnest := min(paddle.Size.H, hazard.Size.H, bc.Height, paddle.Size.W, bc.Width)
	return float64(min(ball.Size.W, ball.Size.H)+thinnest-1) / ball.Speed
}
