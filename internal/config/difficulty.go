package config

import "github.com/feldrin/starfall/internal/difficulty"

// For returns the value configured for the given difficulty level.
func (v LevelFloat) For(level difficulty.Level) float64 {
	switch level {
	case difficulty.Medium:
		return v.Medium
	case difficulty.Hard:
		return v.Hard
	default:
		return v.Easy
	}
}

// For returns the value configured for the given difficulty level.
func (v LevelInt) For(level difficulty.Level) int {
	switch level {
	case difficulty.Medium:
		return v.Medium
	case difficulty.Hard:
		return v.Hard
	default:
		return v.Easy
	}
}

// ParsePreset maps a preset name to a DifficultyPreset. Unknown names
// fall back to normal.
func ParsePreset(name string) DifficultyPreset {
	switch name {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}

// PinnedLevel returns the difficulty level a practice preset pins the
// game to: easy -> EASY, normal -> MEDIUM, hard -> HARD.
func PinnedLevel(preset DifficultyPreset) difficulty.Level {
	switch preset {
	case DifficultyEasy:
		return difficulty.Easy
	case DifficultyHard:
		return difficulty.Hard
	default:
		return difficulty.Medium
	}
}
