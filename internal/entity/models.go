package entity

import (
	"math"

	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// Player is the craft steered by the user.
type Player struct {
	Pose
	radius float64
}

// NewPlayer returns a player at pose with the given collision radius.
func NewPlayer(pose Pose, radius float64) *Player {
	return &Player{Pose: pose, radius: radius}
}

// Radius implements Collider.
func (p *Player) Radius() float64 { return p.radius }

// Nose returns the tip of the hull, where bullets leave the craft.
func (p *Player) Nose() geom.Point {
	return p.Pos.Add(p.Direction().Scale(p.radius * noseLength))
}

// noseLength is the hull tip distance in multiples of the radius.
const noseLength = 20.0 / 6.0

// Hull returns the arrowhead outline of the craft in world coordinates.
// The outline is a triangle twice as long as it is wide, pointing along
// the heading, sized relative to the collision radius.
func (p *Player) Hull() geom.Polygon {
	k := p.radius / 6
	return geom.MustPolygon(
		geom.Pt(0, -8*k),
		geom.Pt(20*k, 0),
		geom.Pt(0, 8*k),
	).Rotate(p.Heading).Translate(p.Pos)
}

// Enemy chases the player.
type Enemy struct {
	Pose
	radius float64
}

// NewEnemy returns an enemy at pose.
func NewEnemy(pose Pose, radius float64) *Enemy {
	return &Enemy{Pose: pose, radius: radius}
}

// Radius implements Collider.
func (e *Enemy) Radius() float64 { return e.radius }

// Chase turns the enemy toward target and moves it forward by units.
func (e *Enemy) Chase(target geom.Point, units float64) {
	e.PointTo(target)
	e.Advance(units)
}

// Bullet flies in a straight line until it leaves the field or hits an enemy.
type Bullet struct {
	Pose
	radius float64
}

// NewBullet returns a bullet at pose.
func NewBullet(pose Pose, radius float64) *Bullet {
	return &Bullet{Pose: pose, radius: radius}
}

// Radius implements Collider.
func (b *Bullet) Radius() float64 { return b.radius }

// WaveKind selects the look and growth rate of a wave.
type WaveKind int

const (
	WavePlain WaveKind = iota
	WaveGrass
	WaveFire
	WaveWater
)

// String returns the wave kind name.
func (k WaveKind) String() string {
	switch k {
	case WavePlain:
		return "plain"
	case WaveGrass:
		return "grass"
	case WaveFire:
		return "fire"
	case WaveWater:
		return "water"
	default:
		return "unknown"
	}
}

// Wave is an expanding ring centred where it was fired.
type Wave struct {
	Pose
	Kind      WaveKind
	Thickness float64
	radius    float64
}

// NewWave returns a wave of the given kind starting at radius.
func NewWave(pose Pose, kind WaveKind, radius, thickness float64) *Wave {
	return &Wave{Pose: pose, Kind: kind, radius: radius, Thickness: thickness}
}

// Radius implements Collider. It is the outer radius of the ring.
func (w *Wave) Radius() float64 { return w.radius }

// Grow widens the ring by units.
func (w *Wave) Grow(units float64) {
	w.radius += units
}

// Ring returns the band the wave currently occupies.
func (w *Wave) Ring() geom.Arc {
	inner := math.Max(0, w.radius-w.Thickness)
	return geom.Arc{
		AngleStart: 0,
		AngleEnd:   2 * math.Pi,
		Thickness:  w.radius - inner,
		Inner:      geom.NewCircle(w.Pos, inner),
	}
}

// Hits reports whether the ring band overlaps c. The radius-only
// Collides check is used first to reject distant colliders.
func (w *Wave) Hits(c Collider) bool {
	if !Collides(w, c) {
		return false
	}
	return w.Ring().IntersectsCircle(CircleOf(c))
}

// Particle is a short-lived visual effect. It slows down as it ages.
type Particle struct {
	Pose
	TTL float64
}

// NewParticle returns a particle with ttl seconds to live.
func NewParticle(pose Pose, ttl float64) *Particle {
	return &Particle{Pose: pose, TTL: ttl}
}

// Update ages the particle by dt and moves it at speed k*ttl².
func (p *Particle) Update(dt, k float64) {
	p.TTL -= dt
	speed := k * p.TTL * p.TTL
	p.Advance(dt * speed)
}

// Alive reports whether the particle still has time left.
func (p *Particle) Alive() bool {
	return p.TTL > 0
}

// Explosion returns the particles of a burst centred on at: 30 evenly
// spaced headings, each with ttls 0.1, 0.2 ... (intensity-1)/10.
func Explosion(at geom.Point, intensity int) []*Particle {
	const rays = 30
	if intensity < 2 {
		return nil
	}
	out := make([]*Particle, 0, rays*(intensity-1))
	for i := range rays {
		heading := 2 * math.Pi * float64(i) / float64(rays-1)
		for ttl := 1; ttl < intensity; ttl++ {
			out = append(out, NewParticle(Pose{Pos: at, Heading: heading}, float64(ttl)/10))
		}
	}
	return out
}
