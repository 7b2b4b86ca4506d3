// Package rocket implements the rocket arcade game: a craft flying around a
// wrapping field, shooting bullets and expanding waves at enemies that hunt
// it down. A second mode, the collision lab, shows the geometric predicates
// live against the craft.
package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-rocket/internal/config"
	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/entity"
	"github.com/vovakirdan/tui-rocket/internal/geom"
	"github.com/vovakirdan/tui-rocket/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Mode selects the level being played.
type Mode int

const (
	ModeClassic   Mode = iota // Enemies, bullets, waves and lives
	ModeCollision             // Collision lab with fixed shapes
)

// Minimum playable terminal size.
const (
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the rocket game logic.
type Game struct {
	mode Mode

	world *World
	view  viewport
	input *controls
	scene []sceneShape
	probe int // index into probeRadii (collision lab)

	// Timers, seconds since the event last happened
	sinceTrail float64
	sinceFire  float64
	sinceWave  float64
	sinceSpawn float64

	state     string
	score     int
	lives     int
	kills     int
	tickCount int
	rng       *rand.Rand

	runtime    core.RuntimeConfig
	cfg        config.RocketConfig
	preset     config.DifficultyPreset // overrides the CLI preset when set
	difficulty *config.DifficultyManager

	screenTooSmall bool
}

// New creates a classic rocket game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewCollisionLab creates the collision lab level.
func NewCollisionLab() *Game {
	return &Game{mode: ModeCollision}
}

// SetDifficulty picks a preset for this instance only, taking effect on the
// next Reset. Unknown names fall back to the CLI preset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeCollision {
		return "rocket_collision"
	}
	return "rocket"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeCollision {
		return "Rocket (Collision Lab)"
	}
	return "Rocket"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeCollision {
		return "Fly a probe through shapes and watch the hit tests"
	}
	return "Shoot down the swarm before it reaches you"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRocket(configPath)
	if err != nil {
		cfg = config.DefaultRocketConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyRocketPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH, cfg.World.HUD, cfg.World.Aspect)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.input = newControls(cfg.Player.Hold)

	bounds := g.view.bounds()
	player := entity.NewPlayer(entity.Pose{Pos: bounds.Centre(), Heading: -math.Pi / 2}, cfg.Player.Radius)
	g.world = newWorld(bounds, player)

	g.sinceTrail = 0
	g.sinceFire = cfg.Weapons.FireInterval
	g.sinceWave = cfg.Weapons.WaveInterval
	g.sinceSpawn = 0

	g.state = StatePlaying
	g.score = 0
	g.lives = cfg.Player.Lives
	g.kills = 0
	g.tickCount = 0

	g.probe = 1
	g.scene = nil
	if g.mode == ModeCollision && !g.screenTooSmall {
		g.scene = defaultScene(bounds)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
			g.input.reset()
		case StatePaused:
			g.state = StatePlaying
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.Dt()
	g.input.update(in, dt)

	if g.mode == ModeCollision {
		g.stepLab(in, dt)
	} else {
		g.stepClassic(in, dt)
	}

	return core.StepResult{State: g.State()}
}

// stepClassic runs one tick of the classic level.
func (g *Game) stepClassic(in core.InputFrame, dt float64) {
	g.movePlayer(dt)
	g.emitTrail(dt)
	g.fire(in, dt)

	g.world.updateParticles(dt, g.cfg.Effects.ParticleSpeed, g.cfg.Effects.MaxParticles)
	g.world.updateBullets(dt * g.cfg.Weapons.BulletSpeed)
	g.world.updateWaves(dt, g.waveGrowth)

	g.spawnEnemies(dt)
	speed := g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, g.tickCount)
	g.world.chase(dt * speed)

	g.resolveCollisions()
}

// movePlayer steers the craft from held input and wraps it at the edges.
func (g *Game) movePlayer(dt float64) {
	dir := g.input.direction()
	if dir == (geom.Point{}) {
		return
	}
	p := g.world.Player
	p.Turn(dir)
	p.Displace(dir.Scale(g.cfg.Player.Speed*dt), g.world.Bounds)
}

// emitTrail leaves an exhaust particle behind the craft at a fixed rate.
func (g *Game) emitTrail(dt float64) {
	g.sinceTrail += dt
	if g.sinceTrail < g.cfg.Player.TrailInterval {
		return
	}
	g.sinceTrail = 0
	g.world.Particles = append(g.world.Particles,
		entity.NewParticle(g.world.Player.Inverted(), g.cfg.Effects.TrailTTL))
}

// fire shoots bullets while the fire key is held and launches waves on
// the special keys, each gated by its own interval.
func (g *Game) fire(in core.InputFrame, dt float64) {
	g.sinceFire += dt
	g.sinceWave += dt
	p := g.world.Player

	if g.input.active(core.ActionFire) && g.sinceFire >= g.cfg.Weapons.FireInterval {
		g.sinceFire = 0
		pose := entity.Pose{Pos: p.Nose(), Heading: p.Heading}
		g.world.Bullets = append(g.world.Bullets, entity.NewBullet(pose, g.cfg.Weapons.BulletRadius))
	}

	kind, ok := waveKindFor(in)
	if ok && g.sinceWave >= g.cfg.Weapons.WaveInterval {
		g.sinceWave = 0
		g.launchWave(p.Pos, kind)
	}
}

// waveKindFor maps the special actions to wave kinds.
func waveKindFor(in core.InputFrame) (entity.WaveKind, bool) {
	switch {
	case in.Has(core.ActionSpecial1):
		return entity.WaveGrass, true
	case in.Has(core.ActionSpecial2):
		return entity.WaveFire, true
	case in.Has(core.ActionSpecial3):
		return entity.WaveWater, true
	}
	return entity.WavePlain, false
}

func (g *Game) launchWave(at geom.Point, kind entity.WaveKind) {
	w := g.cfg.Weapons
	g.world.Waves = append(g.world.Waves,
		entity.NewWave(entity.Pose{Pos: at}, kind, w.WaveStartRadius, w.WaveThickness))
}

// waveGrowth returns the expansion speed of a wave kind.
func (g *Game) waveGrowth(kind entity.WaveKind) float64 {
	growth := g.cfg.Weapons.WaveGrowth
	switch kind {
	case entity.WaveGrass:
		return growth.Grass
	case entity.WaveFire:
		return growth.Fire
	case entity.WaveWater:
		return growth.Water
	default:
		return growth.Plain
	}
}

// spawnEnemies adds an enemy every spawn interval, never inside the
// player's safe zone.
func (g *Game) spawnEnemies(dt float64) {
	g.sinceSpawn += dt
	interval := g.difficulty.Interval(g.cfg.Enemies.SpawnInterval, g.score, g.tickCount)
	if g.sinceSpawn < interval {
		return
	}
	g.sinceSpawn = 0

	if g.cfg.Enemies.Max > 0 && len(g.world.Enemies) >= g.cfg.Enemies.Max {
		return
	}

	safe := zone{centre: g.world.Player.Pos, radius: g.cfg.Player.SafeRadius}
	if e, ok := g.world.spawnEnemy(g.rng, g.cfg.Enemies.Radius, safe); ok {
		g.world.Enemies = append(g.world.Enemies, e)
	}
}

// resolveCollisions applies the gameplay consequences of this tick's overlaps.
func (g *Game) resolveCollisions() {
	fx := g.cfg.Effects

	for _, e := range g.world.shotEnemies() {
		g.world.explode(e.Pos, fx.KillIntensity)
		g.score += g.cfg.Scoring.BulletKill
		g.kills++
	}
	for _, e := range g.world.sweptEnemies() {
		g.world.explode(e.Pos, fx.KillIntensity/2)
		g.score += g.cfg.Scoring.WaveKill
		g.kills++
	}

	if g.world.playerHit() {
		g.loseLife()
	}
}

// loseLife blows up the craft. With lives left it respawns at a random
// spot on a cleared field; otherwise the game ends.
func (g *Game) loseLife() {
	p := g.world.Player
	g.world.explode(p.Pos, g.cfg.Effects.DeathIntensity)
	g.lives--

	g.world.Enemies = g.world.Enemies[:0]
	g.world.Bullets = g.world.Bullets[:0]
	g.input.reset()

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return
	}

	p.Pose = entity.RandomPose(g.rng, g.world.Bounds)
	g.sinceSpawn = 0
	g.launchWave(p.Pos, entity.WavePlain)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// zone is a bare circle used as a collider.
type zone struct {
	centre geom.Point
	radius float64
}

func (z zone) Position() geom.Point { return z.centre }
func (z zone) Radius() float64      { return z.radius }

// Register the games with the registry
func init() {
	registry.Register("rocket", func() registry.Game {
		return New()
	})
	registry.Register("rocket_collision", func() registry.Game {
		return NewCollisionLab()
	})
}
