// Package config provides YAML-based game tuning for the platform.
// It covers the presentation layer only: spawn cadence, movement speeds,
// bypass limits and visual timings. Difficulty transition thresholds are
// not configurable and live in the difficulty package.
package config

// ShooterConfig contains all configuration for the Starfall shooter.
type ShooterConfig struct {
	Player   ShooterPlayer   `yaml:"player"`
	Bullets  ShooterBullets  `yaml:"bullets"`
	Enemies  ShooterEnemies  `yaml:"enemies"`
	Gameplay ShooterGameplay `yaml:"gameplay"`
}

// ShooterPlayer defines the player ship parameters.
type ShooterPlayer struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpeedColsPS float64 `yaml:"speed_cols_per_sec"`
}

// ShooterBullets defines bullet parameters.
type ShooterBullets struct {
	SpeedRowsPS   float64 `yaml:"speed_rows_per_sec"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

// ShooterEnemies defines enemy dimensions and per-difficulty descent
// and spawn cadence.
type ShooterEnemies struct {
	Width           int        `yaml:"width"`
	Height          int        `yaml:"height"`
	DescentRowsPS   LevelFloat `yaml:"descent_rows_per_sec"`
	SpawnIntervalMS LevelInt   `yaml:"spawn_interval_ms"`
}

// ShooterGameplay defines scoring, bypass limits and timing rules.
type ShooterGameplay struct {
	KillPoints     int      `yaml:"kill_points"`
	BypassPenalty  int      `yaml:"bypass_penalty"`
	BypassLimit    LevelInt `yaml:"bypass_limit"`
	EvalIntervalMS int      `yaml:"eval_interval_ms"`
	FlashMS        int      `yaml:"flash_ms"`
	DangerOffset   int      `yaml:"danger_offset"` // Rows between screen bottom and danger line
}

// LevelFloat holds one float parameter per difficulty level.
type LevelFloat struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// LevelInt holds one integer parameter per difficulty level.
type LevelInt struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// DifficultyPreset represents a named practice difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
