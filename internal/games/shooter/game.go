// Package shooter implements Starfall, a fixed shooter where enemies
// descend toward a danger line and the difficulty level adapts to the
// player's recent performance.
//
// Two variants register with the registry: "classic" runs the adaptive
// difficulty engine, "practice" pins the level to a preset and only
// uses the difficulty mapping for spawn cadence.
package shooter

import (
	"fmt"
	"strings"

	"github.com/feldrin/starfall/internal/config"
	"github.com/feldrin/starfall/internal/core"
	"github.com/feldrin/starfall/internal/difficulty"
	"github.com/feldrin/starfall/internal/registry"
)

// Visual characters for rendering
const (
	ShipBody   = '█'
	ShipNose   = '▲'
	ShipWingL  = '◢'
	ShipWingR  = '◣'
	EnemyCore  = '▼'
	EnemyWing  = '▒'
	BulletChar = '•'
	DangerChar = '─'
)

// Bullet is a projectile travelling up the screen in a fixed column.
type Bullet struct {
	X int
	Y float64
}

// Game implements the Starfall shooter logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig

	engine *difficulty.Engine // nil in practice mode
	level  difficulty.Level   // current difficulty
	peak   difficulty.Level   // highest difficulty reached this run

	playerX float64
	bullets []Bullet
	spawner *EnemySpawner

	score    int
	kills    int // since the last difficulty change
	shots    int
	bypassed int

	totalKills    int // whole-run counters, never reset mid-run
	totalShots    int
	totalBypassed int

	lastEvalScore int // score at the previous evaluation
	evalEvery     int // ticks between difficulty evaluations
	fireCooldown  int
	flashTicks    int // remaining ticks of the difficulty flash

	tickCount int
	gameOver  bool
	paused    bool
	practice  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the practice difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates the adaptive shooter.
func New() *Game {
	return &Game{}
}

// NewPractice creates the pinned-difficulty shooter.
func NewPractice() *Game {
	return &Game{practice: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.practice {
		return "practice"
	}
	return "classic"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.practice {
		return "Starfall Practice"
	}
	return "Starfall Classic"
}

// Reset initializes or restarts the game. A restart always builds a
// fresh difficulty engine; no engine state survives across runs.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	g.cfg = cfg

	if g.practice {
		g.engine = nil
		g.level = config.PinnedLevel(config.ParsePreset(difficultyPreset))
	} else {
		g.engine = difficulty.New()
		g.level = g.engine.Current()
	}
	g.peak = g.level

	g.playerX = float64(runtime.ScreenW-g.cfg.Player.Width) / 2.0
	g.bullets = g.bullets[:0]

	g.score = 0
	g.kills = 0
	g.shots = 0
	g.bypassed = 0
	g.totalKills = 0
	g.totalShots = 0
	g.totalBypassed = 0

	g.lastEvalScore = 0
	g.evalEvery = ticksFromMS(g.cfg.Gameplay.EvalIntervalMS, runtime.TickRate)
	g.fireCooldown = 0
	g.flashTicks = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false

	if g.spawner == nil {
		g.spawner = NewEnemySpawner(runtime.Seed, runtime.ScreenW, runtime.TickRate, &g.cfg)
	} else {
		g.spawner.UpdateConfig(&g.cfg)
		g.spawner.UpdateScreenSize(runtime.ScreenW)
		g.spawner.Reset(runtime.Seed)
	}
	g.spawner.Arm(g.level)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.flashTicks > 0 {
		g.flashTicks--
	}
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}

	g.movePlayer(in)
	if in.Has(core.ActionFire) && g.fireCooldown == 0 {
		g.fire()
	}
	g.moveBullets()
	g.spawner.Advance(g.level)
	g.resolveHits()
	g.resolveBypasses()

	if g.engine != nil && g.tickCount%g.evalEvery == 0 {
		g.evaluate()
	}

	if g.bypassed >= g.bypassLimit() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// movePlayer applies held left/right input at the configured speed.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Player.SpeedColsPS / float64(g.runtime.TickRate)
	if in.Has(core.ActionLeft) {
		g.playerX -= speed
	}
	if in.Has(core.ActionRight) {
		g.playerX += speed
	}
	g.playerX = core.ClampF(g.playerX, 0, float64(g.runtime.ScreenW-g.cfg.Player.Width))
}

// fire spawns a bullet above the ship nose and counts the shot.
func (g *Game) fire() {
	x := int(g.playerX) + g.cfg.Player.Width/2
	g.bullets = append(g.bullets, Bullet{X: x, Y: float64(g.noseY() - 1)})
	g.shots++
	g.totalShots++
	g.fireCooldown = g.cfg.Bullets.CooldownTicks
}

// moveBullets advances bullets upward and drops the ones that left the
// playfield (row 0 is the HUD).
func (g *Game) moveBullets() {
	step := g.cfg.Bullets.SpeedRowsPS / float64(g.runtime.TickRate)
	flying := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= step
		if b.Y >= 1 {
			flying = append(flying, b)
		}
	}
	g.bullets = flying
}

// resolveHits removes bullet/enemy pairs that collide. One bullet
// kills one enemy.
func (g *Game) resolveHits() {
	flying := g.bullets[:0]
	for _, b := range g.bullets {
		if g.spawner.KillAt(core.NewRect(b.X, int(b.Y), 1, 1)) {
			g.kills++
			g.totalKills++
			g.score += g.cfg.Gameplay.KillPoints
			continue
		}
		flying = append(flying, b)
	}
	g.bullets = flying
}

// resolveBypasses removes enemies that crossed the danger line and
// applies the score penalty.
func (g *Game) resolveBypasses() {
	crossed := g.spawner.ClaimBypassed(float64(g.dangerY()))
	if crossed == 0 {
		return
	}
	g.bypassed += crossed
	g.totalBypassed += crossed
	g.score -= crossed * g.cfg.Gameplay.BypassPenalty
}

// evaluate feeds the interval's stats to the difficulty engine. On a
// level change the interval counters reset (score is kept) and the
// flash cue starts.
func (g *Game) evaluate() {
	delta := g.score - g.lastEvalScore
	g.lastEvalScore = g.score
	stats := difficulty.NewAggregateStats(uint(g.kills), uint(g.shots), uint(g.bypassed), delta)
	next := g.engine.Evaluate(stats)
	if next == g.level {
		return
	}
	g.level = next
	if next > g.peak {
		g.peak = next
	}
	g.kills = 0
	g.shots = 0
	g.bypassed = 0
	g.flashTicks = ticksFromMS(g.cfg.Gameplay.FlashMS, g.runtime.TickRate)
}

func (g *Game) bypassLimit() int {
	return g.cfg.Gameplay.BypassLimit.For(g.level)
}

// dangerY is the row enemies must not cross.
func (g *Game) dangerY() int {
	return g.runtime.ScreenH - g.cfg.Gameplay.DangerOffset
}

// shipBodyY is the row of the ship body, noseY the row of its nose.
func (g *Game) shipBodyY() int {
	return g.runtime.ScreenH - 2
}

func (g *Game) noseY() int {
	return g.shipBodyY() - (g.cfg.Player.Height - 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawDangerLine(dst)
	for _, e := range g.spawner.Enemies() {
		g.drawEnemy(dst, e)
	}
	for _, b := range g.bullets {
		dst.SetCell(b.X, int(b.Y), BulletChar, core.ColorWhite)
	}
	g.drawShip(dst)
	g.drawHUD(dst)

	if g.flashTicks > 0 {
		g.drawFlash(dst)
	}
	if g.paused {
		g.drawOverlay(dst, "PAUSED", []string{"Press P to resume"})
	}
	if g.gameOver {
		g.drawOverlay(dst, "GAME OVER", g.summaryLines())
	}
}

// drawHUD renders the status line: score, interval accuracy, bypass
// budget, bullets in flight and the current difficulty.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Accuracy: %d%%  Bypassed: %d/%d  Bullets: %d ",
		g.score, int(accuracy(g.kills, g.shots)*100), g.bypassed, g.bypassLimit(), len(g.bullets))
	dst.DrawText(1, 0, hud)

	label := fmt.Sprintf(" %s ", g.level.String())
	dst.DrawTextColored(dst.Width()-len(label)-1, 0, label, levelColor(g.level))
}

func (g *Game) drawDangerLine(dst *core.Screen) {
	y := g.dangerY()
	for x := 0; x < dst.Width(); x += 2 {
		dst.SetCell(x, y, DangerChar, core.ColorRed)
	}
}

func (g *Game) drawShip(dst *core.Screen) {
	x := int(g.playerX)
	w := g.cfg.Player.Width
	bodyY := g.shipBodyY()
	for dx := 0; dx < w; dx++ {
		ch := ShipBody
		if dx == 0 {
			ch = ShipWingL
		} else if dx == w-1 {
			ch = ShipWingR
		}
		dst.SetCell(x+dx, bodyY, ch, core.ColorCyan)
	}
	if g.cfg.Player.Height > 1 {
		dst.SetCell(x+w/2, bodyY-1, ShipNose, core.ColorCyan)
	}
}

// drawEnemy renders a single enemy tinted with the current level color.
func (g *Game) drawEnemy(dst *core.Screen, e Enemy) {
	w := g.cfg.Enemies.Width
	color := levelColor(g.level)
	for dy := 0; dy < g.cfg.Enemies.Height; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := EnemyWing
			if dx == w/2 {
				ch = EnemyCore
			}
			dst.SetCell(e.X+dx, int(e.Y)+dy, ch, color)
		}
	}
}

// drawFlash paints the border and a banner in the new level's color
// for a short time after a difficulty change.
func (g *Game) drawFlash(dst *core.Screen) {
	color := levelColor(g.level)
	dst.DrawBoxColored(core.NewRect(0, 0, dst.Width(), dst.Height()), color)
	dst.DrawTextCenteredColored(2, fmt.Sprintf(" DIFFICULTY: %s ", g.level.String()), color)
}

// summaryLines builds the game-over overlay: final score, bypass
// budget, and the session summary from the engine diagnostics.
func (g *Game) summaryLines() []string {
	lines := []string{
		fmt.Sprintf("Final score: %d", g.score),
		fmt.Sprintf("Bypassed: %d/%d", g.bypassed, g.bypassLimit()),
	}
	if g.engine != nil && g.engine.Evaluations() > 0 {
		lines = append(lines, fmt.Sprintf("Intervals evaluated: %d", g.engine.Evaluations()))
		if lo, hi, ok := g.engine.ScoreRange(); ok {
			scores := g.engine.ArchivedScores()
			median := scores[len(scores)/2]
			lines = append(lines, fmt.Sprintf("Interval scores: %d / %d / %d", lo, median, hi))
		}
		recent := g.engine.RecentByGoodness()
		if len(recent) > 8 {
			recent = recent[:8]
		}
		if len(recent) > 0 {
			parts := make([]string, len(recent))
			for i, s := range recent {
				parts[i] = fmt.Sprintf("%d%%", int(s.Accuracy()*100))
			}
			lines = append(lines, "Worst to best accuracy: "+strings.Join(parts, " "))
		}
	}
	return append(lines, "Press R to restart")
}

// drawOverlay draws a bordered message box in the center of the screen.
func (g *Game) drawOverlay(dst *core.Screen, title string, lines []string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), levelColor(g.level))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}

// State returns the whole-run counters; Difficulty reports the peak
// level reached, which is what the run archive stores.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.gameOver,
		Paused:     g.paused,
		Kills:      g.totalKills,
		Shots:      g.totalShots,
		Bypassed:   g.totalBypassed,
		Accuracy:   accuracy(g.totalKills, g.totalShots),
		Difficulty: g.peak.String(),
	}
}

// accuracy is kills/shots with the zero-shot case defined as 0.
func accuracy(kills, shots int) float64 {
	if shots == 0 {
		return 0
	}
	return float64(kills) / float64(shots)
}

// levelColor maps a difficulty level to its signature color.
func levelColor(level difficulty.Level) core.Color {
	switch level {
	case difficulty.Medium:
		return core.ColorYellow
	case difficulty.Hard:
		return core.ColorRed
	default:
		return core.ColorGreen
	}
}

// ticksFromMS converts a duration in milliseconds to ticks, never less
// than one.
func ticksFromMS(ms, tickRate int) int {
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Register both variants with the registry
func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("practice", func() registry.Game {
		return NewPractice()
	})
}
