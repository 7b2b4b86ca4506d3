package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the default rocket game configuration.
// It mirrors defaults/rocket.yaml and is used if the embedded file cannot be parsed.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		World: RocketWorld{
			Aspect: 2.0,
			HUD:    1,
		},
		Player: RocketPlayer{
			Radius:        1.0,
			Speed:         32.0,
			Hold:          0.15,
			Lives:         3,
			TrailInterval: 0.05,
			SafeRadius:    8.0,
		},
		Enemies: RocketEnemies{
			Radius:        1.2,
			Speed:         8.0,
			SpawnInterval: 1.0,
			Max:           40,
		},
		Weapons: RocketWeapons{
			BulletRadius:    0.5,
			BulletSpeed:     42.0,
			FireInterval:    0.3,
			WaveStartRadius: 2.5,
			WaveThickness:   1.5,
			WaveInterval:    0.6,
			WaveGrowth: WaveGrowth{
				Plain: 8.0,
				Grass: 6.0,
				Fire:  12.0,
				Water: 9.0,
			},
		},
		Effects: RocketEffects{
			ParticleSpeed:  42.0,
			TrailTTL:       0.5,
			KillIntensity:  10,
			DeathIntensity: 8,
			MaxParticles:   2000,
		},
		Scoring: RocketScoring{
			BulletKill: 10,
			WaveKill:   5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				SpawnRateMultiplier: 2.0,
			},
		},
	}
}
