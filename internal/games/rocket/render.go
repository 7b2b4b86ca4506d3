package rocket

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/entity"
	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// Glyphs
const (
	HullChar     = '▓'
	EnemyChar    = '●'
	EnemyBody    = '○'
	BulletChar   = '•'
	WaveChar     = '░'
	ParticleChar = '·'
	ProbeChar    = '∘'
	ShapeChar    = '░'
	HitChar      = '▒'
	InsideChar   = '█'
	LifeChar     = '♥'
)

// headingArrows are indexed by heading in eighths of a turn, clockwise
// from +X on a screen whose Y axis points down.
var headingArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var waveColors = map[entity.WaveKind]core.Color{
	entity.WavePlain: core.ColorWhite,
	entity.WaveGrass: core.ColorGreen,
	entity.WaveFire:  core.ColorOrange,
	entity.WaveWater: core.ColorBlue,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.mode == ModeCollision {
		g.renderScene(dst)
	} else {
		g.renderWaves(dst)
		g.renderEnemies(dst)
		g.renderBullets(dst)
	}
	g.renderParticles(dst)
	g.renderPlayer(dst)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.mode == ModeCollision {
		dst.DrawText(0, 0, g.labStatus())
		return
	}

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	lives := strings.Repeat(string(LifeChar), g.lives)
	dst.DrawTextColor((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorBrightRed)

	level := g.difficulty.Level(g.score, g.tickCount)
	levelText := fmt.Sprintf("Kills: %d  Heat: %3.0f%%", g.kills, level*100)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// labStatus lists the predicate results per scene shape: C when the shape
// contains the probe centre, I when it intersects the probe, H when it
// touches the craft outline.
func (g *Game) labStatus() string {
	var b strings.Builder
	fmt.Fprintf(&b, "r=%.1f", probeRadii[g.probe])
	for _, r := range g.probeResults() {
		flags := ""
		if r.contains {
			flags += "C"
		}
		if r.intersects {
			flags += "I"
		}
		if r.hull {
			flags += "H"
		}
		if flags == "" {
			flags = "-"
		}
		fmt.Fprintf(&b, " %s:%s", r.name, flags)
	}
	return b.String()
}

// renderScene draws the lab shapes, shaded by how they relate to the probe.
func (g *Game) renderScene(dst *core.Screen) {
	results := g.probeResults()
	for i, s := range g.scene {
		glyph, color := ShapeChar, core.ColorBlue
		switch r := results[i]; {
		case r.contains:
			glyph, color = InsideChar, core.ColorBrightYellow
		case r.intersects || r.hull:
			glyph, color = HitChar, core.ColorBrightRed
		}

		if seg, ok := s.shape.(geom.Segment); ok {
			g.view.line(dst, seg, glyph, color)
		} else {
			g.view.fill(dst, s.shape, glyph, color)
		}

		// Label just above the shape.
		x, y := g.view.toCell(s.shape.Bounds().Min)
		if y-1 >= g.view.field.Y {
			dst.DrawTextColor(max(x, 0), y-1, s.name, core.ColorGray)
		}
	}

	g.view.fill(dst, g.probeCircle(), ProbeChar, core.ColorBrightCyan)
}

// renderWaves draws each ring. Bands thinner than a row are widened so
// they never fall between cell centres.
func (g *Game) renderWaves(dst *core.Screen) {
	for _, w := range g.world.Waves {
		ring := w.Ring()
		if ring.Thickness < g.view.aspect {
			outer := ring.Outer().Radius
			inner := math.Max(0, outer-g.view.aspect)
			ring.Inner = geom.NewCircle(ring.Centre(), inner)
			ring.Thickness = outer - inner
		}
		g.view.fill(dst, ring, WaveChar, waveColors[w.Kind])
	}
}

// renderEnemies draws enemy bodies with a marker on the centre.
func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.world.Enemies {
		g.view.fill(dst, entity.CircleOf(e), EnemyBody, core.ColorRed)
		g.view.plot(dst, e.Pos, EnemyChar, core.ColorBrightRed)
	}
}

// renderBullets draws all bullets.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.world.Bullets {
		g.view.plot(dst, b.Pos, BulletChar, core.ColorBrightYellow)
	}
}

// renderParticles draws particles, cooling in color as they age.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.world.Particles {
		color := core.ColorRed
		switch {
		case p.TTL > 0.5:
			color = core.ColorBrightYellow
		case p.TTL > 0.25:
			color = core.ColorOrange
		}
		g.view.plot(dst, p.Pos, ParticleChar, color)
	}
}

// renderPlayer draws the craft outline and a heading arrow on its centre.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.world.Player
	g.view.fill(dst, p.Hull(), HullChar, core.ColorCyan)
	g.view.plot(dst, p.Pos, headingArrow(p.Heading), core.ColorBrightWhite)
}

// headingArrow returns the arrow closest to heading.
func headingArrow(heading float64) rune {
	eighth := int(math.Round(heading/(math.Pi/4))) % 8
	if eighth < 0 {
		eighth += 8
	}
	return headingArrows[eighth]
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	box := core.CenteredRect(max(len(title), len(subtitle))+4, 5, dst.Width(), dst.Height())
	dst.DrawPanel(box)

	dst.DrawText(box.X+(box.W-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
