// Package core provides fundamental types and utilities shared by the game and its hosts.
// It has no external dependencies (especially no Bubble Tea) so game logic stays pure
// and testable.
package core

// Vec is a point or offset in play-area units.
// X grows to the right, Y grows downward.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a width/height pair in play-area units.
type Size struct {
	W, H float64
}

// Empty reports whether the size has no usable area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle in screen cells.
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

// Span is a closed interval [Lo, Hi] on one axis.
type Span struct {
	Lo, Hi float64
}

// Contains reports whether v lies within the closed interval.
func (s Span) Contains(v float64) bool {
	return v >= s.Lo && v <= s.Hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
