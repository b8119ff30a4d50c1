// Package core provides fundamental types and utilities shared by the racket
// simulation and its collaborators. It has no external dependencies (no Bubble
// Tea) so the game logic stays pure and testable.
package core

import "fmt"

// Size is a width/height pair in pixels or cells, depending on the caller.
type Size struct {
	W, H int
}

// NewSize creates a new size.
func NewSize(w, h int) Size {
	return Size{W: w, H: h}
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect represents an axis-aligned bounding box (left, top, width, height).
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

// WithX returns a copy of the rectangle moved to the given left offset.
func (r Rect) WithX(x int) Rect {
	r.X = x
	return r
}

// Scale maps a pixel rectangle onto a coarser grid where each cell covers
// cellW x cellH pixels. Non-empty rectangles always cover at least one cell.
func (r Rect) Scale(cellW, cellH int) Rect {
	out := Rect{
		X: FloorDiv(r.X, cellW),
		Y: FloorDiv(r.Y, cellH),
		W: r.W / cellW,
		H: r.H / cellH,
	}
	if r.W > 0 && out.W == 0 {
		out.W = 1
	}
	if r.H > 0 && out.H == 0 {
		out.H = 1
	}
	return out
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
