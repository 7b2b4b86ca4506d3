package rocket

import (
	"math"

	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/entity"
	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// probeRadii are the probe sizes the collision lab cycles through.
var probeRadii = []float64{0.5, 1, 2, 4}

// sceneShape is one fixed shape of the collision lab.
type sceneShape struct {
	name  string
	shape geom.Shape
}

// probeResult is what the predicates report for one shape.
type probeResult struct {
	name       string
	contains   bool // shape contains the probe centre
	intersects bool // shape intersects the probe circle
	hull       bool // shape intersects the craft outline
	hullTested bool // false for shapes without a hull test
}

// defaultScene lays out one of each shape kind, scaled to the field.
func defaultScene(b entity.Bounds) []sceneShape {
	at := func(fx, fy float64) geom.Point {
		return geom.Pt(fx*b.W, fy*b.H)
	}
	unit := math.Min(b.W, b.H)

	scene := []sceneShape{
		{name: "circle", shape: geom.NewCircle(at(0.15, 0.3), 0.2*unit)},
		{name: "wedge", shape: geom.Arc{
			AngleStart: math.Pi / 4,
			AngleEnd:   math.Pi/4 + 3*math.Pi/2,
			Thickness:  0.12 * unit,
			Inner:      geom.NewCircle(at(0.82, 0.3), 0.1*unit),
		}},
		{name: "quarter", shape: geom.Arc{
			AngleStart: -math.Pi / 2,
			AngleEnd:   0,
			Thickness:  0.15 * unit,
			Inner:      geom.NewCircle(at(0.72, 0.85), 0.1*unit),
		}},
		{name: "segment", shape: geom.Seg(at(0.42, 0.9), at(0.55, 0.6))},
	}

	if tri, err := geom.NewPolygon(at(0.06, 0.92), at(0.36, 0.92), at(0.2, 0.6)); err == nil {
		scene = append(scene, sceneShape{name: "triangle", shape: tri})
	}
	if hex, err := geom.RegularPolygon(at(0.48, 0.3), 0.22*unit, 6, 0); err == nil {
		scene = append(scene, sceneShape{name: "hexagon", shape: hex})
	}
	return scene
}

// stepLab runs one tick of the collision lab: the craft flies freely and
// the fire key cycles the probe size.
func (g *Game) stepLab(in core.InputFrame, dt float64) {
	g.movePlayer(dt)
	g.emitTrail(dt)
	if in.Has(core.ActionFire) {
		g.probe = (g.probe + 1) % len(probeRadii)
	}
	g.world.updateParticles(dt, g.cfg.Effects.ParticleSpeed, g.cfg.Effects.MaxParticles)
}

// probeCircle returns the lab probe centred on the craft.
func (g *Game) probeCircle() geom.Circle {
	return geom.NewCircle(g.world.Player.Pos, probeRadii[g.probe])
}

// probeResults evaluates every predicate of every scene shape against the
// probe and the craft outline.
func (g *Game) probeResults() []probeResult {
	probe := g.probeCircle()
	hull := g.world.Player.Hull()

	out := make([]probeResult, 0, len(g.scene))
	for _, s := range g.scene {
		r := probeResult{
			name:       s.name,
			contains:   s.shape.ContainsPoint(probe.Centre),
			intersects: s.shape.IntersectsCircle(probe),
		}
		// Outline tests exist for everything but arcs.
		if _, isArc := s.shape.(geom.Arc); !isArc {
			r.hull = geom.Intersects(hull, s.shape)
			r.hullTested = true
		}
		out = append(out, r)
	}
	return out
}
