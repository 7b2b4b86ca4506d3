// Package config provides YAML-based game configuration loading and
// difficulty management for the rocket game.
package config

import (
	"errors"
	"fmt"
)

// RocketConfig contains all configuration for the rocket game.
// Distances are world units (one unit is one terminal column) and
// durations are seconds.
type RocketConfig struct {
	World      RocketWorld      `yaml:"world"`
	Player     RocketPlayer     `yaml:"player"`
	Enemies    RocketEnemies    `yaml:"enemies"`
	Weapons    RocketWeapons    `yaml:"weapons"`
	Effects    RocketEffects    `yaml:"effects"`
	Scoring    RocketScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RocketWorld defines how the world maps onto the terminal.
type RocketWorld struct {
	Aspect float64 `yaml:"aspect"` // World units per terminal row
	HUD    int     `yaml:"hud"`    // Rows reserved for the HUD at the top
}

// RocketPlayer defines the player craft.
type RocketPlayer struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	Hold          float64 `yaml:"hold"` // How long a key press keeps steering
	Lives         int     `yaml:"lives"`
	TrailInterval float64 `yaml:"trail_interval"`
	SafeRadius    float64 `yaml:"safe_radius"` // Spawn exclusion around the player
}

// RocketEnemies defines enemy spawning and movement.
type RocketEnemies struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Max           int     `yaml:"max"`
}

// RocketWeapons defines bullets and waves.
type RocketWeapons struct {
	BulletRadius    float64    `yaml:"bullet_radius"`
	BulletSpeed     float64    `yaml:"bullet_speed"`
	FireInterval    float64    `yaml:"fire_interval"`
	WaveStartRadius float64    `yaml:"wave_start_radius"`
	WaveThickness   float64    `yaml:"wave_thickness"`
	WaveInterval    float64    `yaml:"wave_interval"`
	WaveGrowth      WaveGrowth `yaml:"wave_growth"`
}

// WaveGrowth is the expansion speed of each wave kind.
type WaveGrowth struct {
	Plain float64 `yaml:"plain"`
	Grass float64 `yaml:"grass"`
	Fire  float64 `yaml:"fire"`
	Water float64 `yaml:"water"`
}

// RocketEffects defines particle effects.
type RocketEffects struct {
	ParticleSpeed  float64 `yaml:"particle_speed"` // k in speed = k*ttl²
	TrailTTL       float64 `yaml:"trail_ttl"`
	KillIntensity  int     `yaml:"kill_intensity"`
	DeathIntensity int     `yaml:"death_intensity"`
	MaxParticles   int     `yaml:"max_particles"`
}

// RocketScoring defines points per event.
type RocketScoring struct {
	BulletKill int `yaml:"bullet_kill"`
	WaveKill   int `yaml:"wave_kill"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks that sizes, speeds and intervals are usable.
func (c RocketConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"world.aspect", c.World.Aspect},
		{"player.radius", c.Player.Radius},
		{"player.speed", c.Player.Speed},
		{"player.trail_interval", c.Player.TrailInterval},
		{"enemies.radius", c.Enemies.Radius},
		{"enemies.spawn_interval", c.Enemies.SpawnInterval},
		{"weapons.bullet_radius", c.Weapons.BulletRadius},
		{"weapons.bullet_speed", c.Weapons.BulletSpeed},
		{"weapons.fire_interval", c.Weapons.FireInterval},
		{"weapons.wave_interval", c.Weapons.WaveInterval},
		{"weapons.wave_start_radius", c.Weapons.WaveStartRadius},
		{"weapons.wave_growth.plain", c.Weapons.WaveGrowth.Plain},
		{"weapons.wave_growth.grass", c.Weapons.WaveGrowth.Grass},
		{"weapons.wave_growth.fire", c.Weapons.WaveGrowth.Fire},
		{"weapons.wave_growth.water", c.Weapons.WaveGrowth.Water},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.value, ErrInvalid)
		}
	}
	// The safe zone must cover the craft or spawns could land on it.
	if c.Player.SafeRadius < c.Player.Radius {
		return fmt.Errorf("config: player.safe_radius %v is smaller than player.radius %v: %w",
			c.Player.SafeRadius, c.Player.Radius, ErrInvalid)
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("config: player.lives must be at least 1, got %d: %w", c.Player.Lives, ErrInvalid)
	}
	if c.Weapons.WaveThickness < 0 {
		return fmt.Errorf("config: weapons.wave_thickness must not be negative: %w", ErrInvalid)
	}
	if c.World.HUD < 0 {
		return fmt.Errorf("config: world.hud must not be negative: %w", ErrInvalid)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to enemy speed at max difficulty
	SpawnRateMultiplier float64 `yaml:"spawn_rate_multiplier"` // Added to spawn rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
