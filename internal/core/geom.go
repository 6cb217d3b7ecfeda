// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Vec2 is an integer 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y int
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Size holds the dimensions of an entity or of the viewport.
type Size struct {
	W, H int
}

// Center returns the midpoint of an area of this size anchored at the origin.
func (s Size) Center() Vec2 {
	return Vec2{X: s.W / 2, Y: s.H / 2}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds the rectangle covering an entity at pos with the given size.
func RectAt(pos Vec2, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Overlaps reports whether a and b intersect with inclusive bounds,
// so rectangles whose edges touch are considered in contact.
func Overlaps(a, b Rect) bool {
	return a.X <= b.Right() &&
		a.Right() >= b.X &&
		a.Y <= b.Bottom() &&
		a.Bottom() >= b.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
