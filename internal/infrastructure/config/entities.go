package config

// SizeConfig is a width/height pair
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PositionConfig is a spawn point (top-left corner)
type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerConfig struct {
	Name      string         `yaml:"name"`
	Spawn     PositionConfig `yaml:"spawn"`
	Size      SizeConfig     `yaml:"size"`
	MaxHealth int            `yaml:"max_health"`
}

type EnemySpawnConfig struct {
	Spawn     PositionConfig `yaml:"spawn"`
	Size      SizeConfig     `yaml:"size"`
	MaxHealth int            `yaml:"max_health"`
	Patrol    PatrolConfig   `yaml:"patrol"`
	AITimer   int            `yaml:"ai_timer"` // initial countdown, staggered per enemy
}

type PatrolConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}
