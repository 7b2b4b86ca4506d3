package rocket

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the game state that matters for replay comparison.
// Positions are flattened to float pairs for stable hashing.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Kills int
	State string
	Mode  int // 0=Classic, 1=Collision
	Probe int

	// Player pose: X, Y, Heading
	Player [3]float64

	// Each enemy is 2 floats: X, Y
	EnemyData []float64
	// Each bullet is 3 floats: X, Y, Heading
	BulletData []float64
	// Each wave is 4 floats: X, Y, Radius, Kind
	WaveData []float64

	ParticleCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemyData := make([]float64, 0, len(w.Enemies)*2)
	for _, e := range w.Enemies {
		enemyData = append(enemyData, e.Pos.X, e.Pos.Y)
	}

	bulletData := make([]float64, 0, len(w.Bullets)*3)
	for _, b := range w.Bullets {
		bulletData = append(bulletData, b.Pos.X, b.Pos.Y, b.Heading)
	}

	waveData := make([]float64, 0, len(w.Waves)*4)
	for _, wave := range w.Waves {
		waveData = append(waveData, wave.Pos.X, wave.Pos.Y, wave.Radius(), float64(wave.Kind))
	}

	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score: g.score,
		Lives: g.lives,
		Kills: g.kills,
		State: g.state,
		Mode:  int(g.mode),
		Probe: g.probe,

		Player: [3]float64{w.Player.Pos.X, w.Player.Pos.Y, w.Player.Heading},

		EnemyData:     enemyData,
		BulletData:    bulletData,
		WaveData:      waveData,
		ParticleCount: len(w.Particles),
	}
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putFloats := func(vs []float64) {
		putInt(uint64(len(vs)))
		for _, v := range vs {
			putInt(math.Float64bits(v))
		}
	}

	putInt(snap.Tick)
	putInt(uint64(snap.Score))         //#nosec G115 -- hash computation
	putInt(uint64(snap.Lives))         //#nosec G115 -- hash computation
	putInt(uint64(snap.Kills))         //#nosec G115 -- hash computation
	putInt(uint64(snap.Mode))          //#nosec G115 -- hash computation
	putInt(uint64(snap.Probe))         //#nosec G115 -- hash computation
	putInt(uint64(snap.ParticleCount)) //#nosec G115 -- hash computation
	_, _ = d.WriteString(snap.State)

	putFloats(snap.Player[:])
	putFloats(snap.EnemyData)
	putFloats(snap.BulletData)
	putFloats(snap.WaveData)

	return d.Sum64()
}
