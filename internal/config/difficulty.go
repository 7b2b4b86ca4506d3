package config

import "math"

// minSpawnInterval keeps enemy spawning from flooding the field.
const minSpawnInterval = 0.2

// DifficultyManager maps how far a run has got to a level between the
// configured initial level and 1, and scales enemy parameters by it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager. The initial level
// is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clamp01(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// progress is the fraction of the way to max difficulty, or 0 when the
// level is fixed.
func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var at int
	switch d.cfg.Progression.Type {
	case "score":
		at = score
	case "time":
		at = ticks
	default:
		return 0
	}
	return clamp01(float64(at) / math.Max(float64(d.cfg.Progression.MaxAt), 1))
}

// Level returns the current difficulty level in [0, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	return start + d.progress(score, ticks)*(1-start)
}

// Speed scales a base speed from base up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a base interval as the spawn rate rises with difficulty.
// The result never drops below minSpawnInterval unless the base already does.
func (d *DifficultyManager) Interval(baseInterval float64, score, ticks int) float64 {
	result := baseInterval / (1 + d.Level(score, ticks)*d.cfg.Scaling.SpawnRateMultiplier)
	return math.Max(result, math.Min(baseInterval, minSpawnInterval))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
