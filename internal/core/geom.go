// Package core holds the types shared by games and the platform: the screen
// buffer, input frames and runtime config. It has no Bubble Tea dependency,
// so game logic stays testable without a terminal.
package core

// Rect is a screen-space box, half-open on the right and bottom edges.
// Games keep one per clickable object to map mouse clicks back to it.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the box with top-left corner (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies in the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
