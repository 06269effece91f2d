package shooter

import (
	"math/rand"

	"github.com/feldrin/starfall/internal/config"
	"github.com/feldrin/starfall/internal/core"
	"github.com/feldrin/starfall/internal/difficulty"
)

// Enemy descends from the top of the playfield at a column fixed at
// spawn time.
type Enemy struct {
	X int
	Y float64
}

// EnemySpawner handles spawning, movement, and removal of enemies.
// Descent speed and spawn cadence follow the current difficulty level.
type EnemySpawner struct {
	enemies  []Enemy
	rng      *rand.Rand
	screenW  int
	tickRate int
	cooldown int // ticks until the next spawn
	cfg      *config.ShooterConfig
}

// NewEnemySpawner creates a new spawner with the given RNG seed.
func NewEnemySpawner(seed int64, screenW, tickRate int, cfg *config.ShooterConfig) *EnemySpawner {
	s := &EnemySpawner{
		enemies:  make([]Enemy, 0, 32),
		screenW:  screenW,
		tickRate: tickRate,
		cfg:      cfg,
	}
	s.Reset(seed)
	return s
}

// Reset clears all enemies and reseeds the RNG.
func (s *EnemySpawner) Reset(seed int64) {
	s.enemies = s.enemies[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.cooldown = 0
}

// Arm starts the spawn countdown for the given level.
func (s *EnemySpawner) Arm(level difficulty.Level) {
	s.cooldown = s.intervalTicks(level)
}

// UpdateConfig updates the configuration.
func (s *EnemySpawner) UpdateConfig(cfg *config.ShooterConfig) {
	s.cfg = cfg
}

// UpdateScreenSize updates the screen width.
func (s *EnemySpawner) UpdateScreenSize(screenW int) {
	s.screenW = screenW
}

// Advance moves enemies down by the level's descent speed and spawns a
// new enemy whenever the countdown for the level's cadence expires.
func (s *EnemySpawner) Advance(level difficulty.Level) {
	step := s.cfg.Enemies.DescentRowsPS.For(level) / float64(s.tickRate)
	for i := range s.enemies {
		s.enemies[i].Y += step
	}

	s.cooldown--
	if s.cooldown <= 0 {
		s.spawn()
		s.cooldown = s.intervalTicks(level)
	}
}

// spawn places a new enemy just below the HUD at a random column.
func (s *EnemySpawner) spawn() {
	span := s.screenW - s.cfg.Enemies.Width - 2
	if span < 1 {
		span = 1
	}
	s.enemies = append(s.enemies, Enemy{
		X: 1 + s.rng.Intn(span),
		Y: 1.0,
	})
}

// ClaimBypassed removes enemies at or past the danger row and returns
// how many crossed.
func (s *EnemySpawner) ClaimBypassed(dangerY float64) int {
	crossed := 0
	alive := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Y >= dangerY {
			crossed++
			continue
		}
		alive = append(alive, e)
	}
	s.enemies = alive
	return crossed
}

// KillAt removes the first enemy intersecting the given rectangle and
// reports whether one was hit.
func (s *EnemySpawner) KillAt(r core.Rect) bool {
	for i, e := range s.enemies {
		if r.Intersects(s.rect(e)) {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Enemies returns the current list of enemies.
func (s *EnemySpawner) Enemies() []Enemy {
	return s.enemies
}

// rect returns the collision rectangle for an enemy.
func (s *EnemySpawner) rect(e Enemy) core.Rect {
	return core.NewRect(e.X, int(e.Y), s.cfg.Enemies.Width, s.cfg.Enemies.Height)
}

// intervalTicks converts the level's spawn interval to ticks.
func (s *EnemySpawner) intervalTicks(level difficulty.Level) int {
	return ticksFromMS(s.cfg.Enemies.SpawnIntervalMS.For(level), s.tickRate)
}
