package config

import "github.com/younwookim/stickman/internal/domain/entity"

// ArenaConfig describes the play area. Platform order is significant.
type ArenaConfig struct {
	Width     float64          `yaml:"width"`
	Height    float64          `yaml:"height"`
	Platforms []PlatformConfig `yaml:"platforms"`
}

type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Build validates the geometry and returns a domain arena
func (c ArenaConfig) Build() (*entity.Arena, error) {
	rects := make([]entity.Rect, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		rects = append(rects, entity.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height})
	}
	return entity.NewArena(c.Width, c.Height, rects)
}
