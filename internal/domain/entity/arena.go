package entity

import "fmt"

// Platform is a static solid rectangle bodies can stand on
type Platform struct {
	Rect
}

// Arena is the bounded play area and its ordered platforms.
// Platform order matters: the collision pass visits them in this order.
type Arena struct {
	Width     float64
	Height    float64
	Platforms []Platform
}

// NewArena validates the geometry and returns an arena.
// Platforms must have positive size and must not overlap each other.
func NewArena(width, height float64, platforms []Rect) (*Arena, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: arena size %.1fx%.1f", ErrInvalidGeometry, width, height)
	}

	a := &Arena{
		Width:     width,
		Height:    height,
		Platforms: make([]Platform, 0, len(platforms)),
	}
	for i, r := range platforms {
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("%w: platform %d size %.1fx%.1f", ErrInvalidGeometry, i, r.W, r.H)
		}
		for j, p := range a.Platforms {
			if p.Intersects(r) {
				return nil, fmt.Errorf("%w: platform %d intersects platform %d", ErrInvalidGeometry, i, j)
			}
		}
		a.Platforms = append(a.Platforms, Platform{Rect: r})
	}
	return a, nil
}
