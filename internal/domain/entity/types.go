package entity

import "errors"

// EntityID is a unique identifier for an entity (never recycled within a World)
type EntityID uint64

var (
	// ErrInvalidGeometry is returned for degenerate arena or platform shapes.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInvalidEntity is returned for entities that cannot be simulated.
	ErrInvalidEntity = errors.New("invalid entity")
)

// Rect is an axis-aligned rectangle in canvas units (top-left origin, y down)
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap with positive area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Facing is the horizontal direction a body looks toward
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Side identifies which team an attacker belongs to
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)
