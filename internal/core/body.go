package core

import "math"

// CollideType classifies which face of another body was hit.
type CollideType int

const (
	NotCollide CollideType = iota
	Horizontal             // top or bottom face; caller flips vertical velocity
	Vertical               // left or right face; caller flips horizontal velocity
)

// String returns a human-readable name for the collision class.
func (c CollideType) String() string {
	switch c {
	case NotCollide:
		return "NotCollide"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// CollisionRule selects how overlapping bodies are classified.
type CollisionRule int

const (
	// CollisionClassic reports every overlap as Horizontal. Its Vertical
	// branch requires the body to be both left and right of the other, so
	// it never fires and balls only reflect vertically off bricks.
	CollisionClassic CollisionRule = iota
	// CollisionFaces reports Vertical when the horizontal penetration is
	// shallower than the vertical one. Ties go to Horizontal.
	CollisionFaces
)

// String returns the config name of the rule.
func (r CollisionRule) String() string {
	switch r {
	case CollisionClassic:
		return "classic"
	case CollisionFaces:
		return "faces"
	default:
		return "unknown"
	}
}

// ParseCollisionRule converts a config name to a rule.
func ParseCollisionRule(s string) (CollisionRule, bool) {
	switch s {
	case "", "classic":
		return CollisionClassic, true
	case "faces":
		return CollisionFaces, true
	}
	return CollisionClassic, false
}

// Body is an axis-aligned rectangle with motion state. It is the unit of
// collision and rendering; every game object embeds one by value.
type Body struct {
	Pos   Vec2
	Size  Size
	Vel   Velocity
	Speed float64
	Color Color
}

// Left returns the x-coordinate of the left edge.
func (b Body) Left() float64 { return b.Pos.X }

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 { return b.Pos.X + float64(b.Size.W) }

// Top returns the y-coordinate of the top edge.
func (b Body) Top() float64 { return b.Pos.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 { return b.Pos.Y + float64(b.Size.H) }

// Rect returns the pixel footprint of the body. Positions are truncated
// toward zero, matching how the frame buffer is painted.
func (b Body) Rect() Rect {
	return NewRect(int(b.Pos.X), int(b.Pos.Y), b.Size.W, b.Size.H)
}

// overlapX reports whether the horizontal spans overlap.
func (b Body) overlapX(o Body) bool {
	return b.Right() > o.Left() && b.Left() < o.Right()
}

// overlapY reports whether the vertical spans overlap.
func (b Body) overlapY(o Body) bool {
	return b.Bottom() > o.Top() && b.Top() < o.Bottom()
}

// CheckCollide classifies the overlap of b with other using the classic rule.
func (b Body) CheckCollide(other Body) CollideType {
	return b.CheckCollideRule(other, CollisionClassic)
}

// CheckCollideRule classifies the overlap of b with other.
// It is a pure function of the two bodies.
func (b Body) CheckCollideRule(other Body, rule CollisionRule) CollideType {
	if rule == CollisionFaces {
		return b.collideFaces(other)
	}

	if b.overlapX(other) {
		if b.overlapY(other) {
			return Horizontal
		}
	} else if b.overlapY(other) {
		if b.Right() < other.Left() && b.Left() > other.Right() {
			return Vertical
		}
	}
	return NotCollide
}

// collideFaces picks the face with the smaller penetration depth.
func (b Body) collideFaces(other Body) CollideType {
	if !b.overlapX(other) || !b.overlapY(other) {
		return NotCollide
	}
	depthX := math.Min(b.Right()-other.Left(), other.Right()-b.Left())
	depthY := math.Min(b.Bottom()-other.Top(), other.Bottom()-b.Top())
	if depthX < depthY {
		return Vertical
	}
	return Horizontal
}

// PosUpdate moves the body by Vel*Speed*scale and clamps each axis into
// [0, field - size]. The clamp is max(min(new, upper), 0) so a body at
// least as large as the field ends up at 0 instead of a negative position.
func (b *Body) PosUpdate(field Field, scale float64) {
	b.Pos.X = clampAxis(b.Pos.X+float64(b.Vel.X)*b.Speed*scale, field.W, b.Size.W)
	b.Pos.Y = clampAxis(b.Pos.Y+float64(b.Vel.Y)*b.Speed*scale, field.H, b.Size.H)
}

func clampAxis(v float64, fieldDim, size int) float64 {
	return math.Max(math.Min(v, float64(fieldDim-size)), 0)
}
