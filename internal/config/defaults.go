package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration,
// matching the embedded defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Width:       5,
			Height:      2,
			SpeedColsPS: 32.0,
		},
		Bullets: ShooterBullets{
			SpeedRowsPS:   20.0,
			CooldownTicks: 6,
		},
		Enemies: ShooterEnemies{
			Width:  3,
			Height: 1,
			DescentRowsPS: LevelFloat{
				Easy:   1.2,
				Medium: 1.7,
				Hard:   2.3,
			},
			SpawnIntervalMS: LevelInt{
				Easy:   1200,
				Medium: 850,
				Hard:   500,
			},
		},
		Gameplay: ShooterGameplay{
			KillPoints:    10,
			BypassPenalty: 2,
			BypassLimit: LevelInt{
				Easy:   10,
				Medium: 15,
				Hard:   20,
			},
			EvalIntervalMS: 5000,
			FlashMS:        700,
			DangerOffset:   4,
		},
	}
}
