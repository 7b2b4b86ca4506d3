package rocket

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-rocket/internal/entity"
	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// maxSpawnAttempts bounds how often a spawn is re-rolled before giving up.
const maxSpawnAttempts = 64

// World holds every entity on the field.
type World struct {
	Bounds    entity.Bounds
	Player    *entity.Player
	Enemies   []*entity.Enemy
	Bullets   []*entity.Bullet
	Waves     []*entity.Wave
	Particles []*entity.Particle
}

func newWorld(bounds entity.Bounds, player *entity.Player) *World {
	return &World{
		Bounds:    bounds,
		Player:    player,
		Enemies:   make([]*entity.Enemy, 0, 32),
		Bullets:   make([]*entity.Bullet, 0, 16),
		Waves:     make([]*entity.Wave, 0, 4),
		Particles: make([]*entity.Particle, 0, 256),
	}
}

// updateParticles ages particles, drops dead ones and keeps at most
// capacity of the newest.
func (w *World) updateParticles(dt, speed float64, capacity int) {
	for _, p := range w.Particles {
		p.Update(dt, speed)
	}
	w.Particles = slices.DeleteFunc(w.Particles, func(p *entity.Particle) bool {
		return !p.Alive()
	})
	if capacity > 0 && len(w.Particles) > capacity {
		w.Particles = slices.Delete(w.Particles, 0, len(w.Particles)-capacity)
	}
}

// updateBullets moves bullets forward and drops those that left the field.
func (w *World) updateBullets(units float64) {
	for _, b := range w.Bullets {
		b.Advance(units)
	}
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b *entity.Bullet) bool {
		return !w.Bounds.Contains(b.Pos)
	})
}

// updateWaves grows each wave and drops those that outgrew the field.
func (w *World) updateWaves(dt float64, growth func(entity.WaveKind) float64) {
	limit := (w.Bounds.W + w.Bounds.H) * 0.75
	for _, wave := range w.Waves {
		wave.Grow(dt * growth(wave.Kind))
	}
	w.Waves = slices.DeleteFunc(w.Waves, func(wave *entity.Wave) bool {
		return wave.Radius() >= limit
	})
}

// spawnEnemy places a new enemy at a random pose outside the safe zone.
// Reports false if no free spot was found.
func (w *World) spawnEnemy(rng *rand.Rand, radius float64, safe entity.Collider) (*entity.Enemy, bool) {
	for range maxSpawnAttempts {
		e := entity.NewEnemy(entity.RandomPose(rng, w.Bounds), radius)
		if !entity.Collides(safe, e) {
			return e, true
		}
	}
	return nil, false
}

// chase moves every enemy toward the player.
func (w *World) chase(units float64) {
	target := w.Player.Pos
	for _, e := range w.Enemies {
		e.Chase(target, units)
	}
}

// shotEnemies removes enemies hit by a bullet, together with the bullet
// that hit them, and returns the enemies.
func (w *World) shotEnemies() []*entity.Enemy {
	var hit []*entity.Enemy
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *entity.Enemy) bool {
		i := slices.IndexFunc(w.Bullets, func(b *entity.Bullet) bool {
			return entity.Collides(b, e)
		})
		if i < 0 {
			return false
		}
		w.Bullets = slices.Delete(w.Bullets, i, i+1)
		hit = append(hit, e)
		return true
	})
	return hit
}

// sweptEnemies removes enemies touched by the band of any wave and returns them.
func (w *World) sweptEnemies() []*entity.Enemy {
	var hit []*entity.Enemy
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *entity.Enemy) bool {
		for _, wave := range w.Waves {
			if wave.Hits(e) {
				hit = append(hit, e)
				return true
			}
		}
		return false
	})
	return hit
}

// playerHit reports whether any enemy touches the player.
func (w *World) playerHit() bool {
	return slices.ContainsFunc(w.Enemies, func(e *entity.Enemy) bool {
		return entity.Collides(w.Player, e)
	})
}

// explode adds an explosion burst at the given point.
func (w *World) explode(at geom.Point, intensity int) {
	w.Particles = append(w.Particles, entity.Explosion(at, intensity)...)
}
