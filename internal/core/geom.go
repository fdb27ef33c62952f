// Package core provides the geometry, body physics, frame buffer and input
// types shared by the simulation and its hosts. It does not depend on any
// host library (especially not Bubble Tea) to keep game logic pure and testable.
package core

// Field is the size of the playfield in pixels. It defines the coordinate
// space every body lives in and the dimensions of the frame buffer.
type Field struct {
	W, H int
}

// DefaultField is the classic 1024x768 playfield.
var DefaultField = Field{W: 1024, H: 768}

// Vec2 is a real-valued position. Sub-pixel precision is required because
// velocity times speed is fractional.
type Vec2 struct {
	X, Y float64
}

// Size is an integral pixel extent.
type Size struct {
	W, H int
}

// Velocity is a small signed direction selector, typically in {-1, 0, 1}.
type Velocity struct {
	X, Y int
}

// Rect represents an integer axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the part of r that lies inside a w x h area anchored at the origin.
// The result may be empty (W or H <= 0).
func (r Rect) Clip(w, h int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), w), min(r.Bottom(), h)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
