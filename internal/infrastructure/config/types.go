package config

// MatchConfig is the root config for match.yaml
type MatchConfig struct {
	Arena   ArenaConfig        `yaml:"arena"`
	Tuning  TuningConfig       `yaml:"tuning"`
	Player  PlayerConfig       `yaml:"player"`
	Enemies []EnemySpawnConfig `yaml:"enemies"`
}

// TuningConfig holds the simulation constants. Units are canvas units and ticks.
type TuningConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Combat  CombatConfig  `yaml:"combat"`
	AI      AIConfig      `yaml:"ai"`
}

type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // added to vy every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
	PlayerSpeed float64 `yaml:"player_speed"`
	PatrolSpeed float64 `yaml:"patrol_speed"`
	ChaseSpeed  float64 `yaml:"chase_speed"`
}

type CombatConfig struct {
	AttackDuration int     `yaml:"attack_duration"` // ticks
	AttackWidth    float64 `yaml:"attack_width"`
	AttackHeight   float64 `yaml:"attack_height"`
	HitStun        int     `yaml:"hit_stun"` // ticks
	PlayerDamage   int     `yaml:"player_damage"`
	EnemyDamage    int     `yaml:"enemy_damage"`
	KillBonus      int     `yaml:"kill_bonus"`
}

type AIConfig struct {
	Interval     int     `yaml:"interval"` // ticks between classifier requests
	MeleeRange   float64 `yaml:"melee_range"`
	NearDistance float64 `yaml:"near_distance"`
	FarDistance  float64 `yaml:"far_distance"`
}
