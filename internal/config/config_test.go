package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/feldrin/starfall/internal/difficulty"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	var fromYAML ShooterConfig
	if err := yaml.Unmarshal(defaultShooterYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultShooterConfig()) {
		t.Errorf("embedded yaml and DefaultShooterConfig disagree:\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultShooterConfig())
	}
}

func TestLoadShooterExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.yaml")
	data := []byte(`
enemies:
  width: 4
  descent_rows_per_sec:
    easy: 0.5
    medium: 1.0
    hard: 2.0
gameplay:
  kill_points: 25
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter(%s) returned error: %v", path, err)
	}
	if cfg.Enemies.Width != 4 {
		t.Errorf("expected enemy width 4, got %d", cfg.Enemies.Width)
	}
	if cfg.Gameplay.KillPoints != 25 {
		t.Errorf("expected kill points 25, got %d", cfg.Gameplay.KillPoints)
	}
	if cfg.Enemies.DescentRowsPS.Hard != 2.0 {
		t.Errorf("expected hard descent 2.0, got %f", cfg.Enemies.DescentRowsPS.Hard)
	}
}

func TestLoadShooterMissingPath(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLevelSelectors(t *testing.T) {
	f := LevelFloat{Easy: 1.0, Medium: 2.0, Hard: 3.0}
	if got := f.For(difficulty.Easy); got != 1.0 {
		t.Errorf("For(Easy) = %f, want 1.0", got)
	}
	if got := f.For(difficulty.Medium); got != 2.0 {
		t.Errorf("For(Medium) = %f, want 2.0", got)
	}
	if got := f.For(difficulty.Hard); got != 3.0 {
		t.Errorf("For(Hard) = %f, want 3.0", got)
	}

	n := LevelInt{Easy: 10, Medium: 15, Hard: 20}
	if got := n.For(difficulty.Hard); got != 20 {
		t.Errorf("For(Hard) = %d, want 20", got)
	}
	if got := n.For(difficulty.Level(99)); got != 10 {
		t.Errorf("For(unknown) = %d, want easy fallback 10", got)
	}
}

func TestPresets(t *testing.T) {
	cases := []struct {
		name  string
		level difficulty.Level
	}{
		{"easy", difficulty.Easy},
		{"normal", difficulty.Medium},
		{"hard", difficulty.Hard},
		{"bogus", difficulty.Medium},
	}
	for _, tc := range cases {
		if got := PinnedLevel(ParsePreset(tc.name)); got != tc.level {
			t.Errorf("preset %q pins %v, want %v", tc.name, got, tc.level)
		}
	}
}
