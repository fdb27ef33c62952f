package lava

import (
	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
)

// Paddle is the player's bat. Its vertical velocity is always zero and its
// horizontal velocity is driven only by input.
type Paddle struct {
	core.Body
}

// Ball bounces off borders, the paddle and bricks. It never stops.
type Ball struct {
	core.Body
}

// Brick is a breakable block. Dead bricks keep their slot in the grid.
type Brick struct {
	core.Body
	Alive bool
}

// Hazard is the static lava strip along the bottom of the field.
type Hazard struct {
	core.Body
}

// NewPaddle creates a paddle from config defaults.
func NewPaddle(c config.BodyConfig) Paddle {
	return Paddle{Body: core.Body{
		Pos:   core.Vec2{X: c.X, Y: c.Y},
		Size:  core.Size{W: c.Width, H: c.Height},
		Vel:   core.Velocity{X: c.VX},
		Speed: c.Speed,
		Color: parseColor(c.Color, core.ColorBlue),
	}}
}

// NewBall creates a ball from config defaults.
func NewBall(c config.BodyConfig) Ball {
	return Ball{Body: core.Body{
		Pos:   core.Vec2{X: c.X, Y: c.Y},
		Size:  core.Size{W: c.Width, H: c.Height},
		Vel:   core.Velocity{X: c.VX, Y: c.VY},
		Speed: c.Speed,
		Color: parseColor(c.Color, core.ColorYellow),
	}}
}

// NewBrick creates a live brick at (x, y).
func NewBrick(c config.BricksConfig, x, y int) Brick {
	return Brick{
		Body: core.Body{
			Pos:   core.Vec2{X: float64(x), Y: float64(y)},
			Size:  core.Size{W: c.Width, H: c.Height},
			Color: parseColor(c.Color, core.ColorGreen),
		},
		Alive: true,
	}
}

// NewHazard creates the lava strip spanning the bottom of the field.
func NewHazard(c config.HazardConfig, field core.Field) Hazard {
	return Hazard{Body: core.Body{
		Pos:   core.Vec2{X: 0, Y: float64(field.H - c.Height)},
		Size:  core.Size{W: field.W, H: c.Height},
		Color: parseColor(c.Color, core.ColorRed),
	}}
}

// CollideBorders reflects the ball off the four field edges using its
// current position, snapping it back onto the edge it crossed. It runs
// before the ball moves, so reflections apply to the next displacement.
func (b *Ball) CollideBorders(field core.Field) {
	maxX := float64(field.W - b.Size.W)
	maxY := float64(field.H - b.Size.H)

	// Vertical borders
	if b.Pos.X >= maxX {
		b.Vel.X = -b.Vel.X
		b.Pos.X = maxX
	} else if b.Pos.X <= 0 {
		b.Vel.X = -b.Vel.X
		b.Pos.X = 0
	}

	// Horizontal borders
	if b.Pos.Y >= maxY {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = maxY
	} else if b.Pos.Y <= 0 {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = 0
	}
}

func parseColor(s string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(s); ok {
		return c
	}
	return fallback
}
