package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save runs for two games
	_, err = store.SaveRun(Run{GameID: "classic", Score: 100, Kills: 8, Shots: 10, Accuracy: 0.8, Bypassed: 2, PeakDifficulty: "MEDIUM"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(Run{GameID: "classic", Score: 50, Kills: 3, Shots: 9, Accuracy: 0.33, Bypassed: 10, PeakDifficulty: "EASY"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(Run{GameID: "classic", Score: 200, Kills: 17, Shots: 20, Accuracy: 0.85, Bypassed: 5, PeakDifficulty: "HARD"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(Run{GameID: "practice", Score: 500, PeakDifficulty: "HARD"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Retrieve top runs for classic
	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending by score
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %d %d %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}

	// Counters and peak survive the round trip
	if runs[0].Kills != 17 || runs[0].Shots != 20 || runs[0].Bypassed != 5 {
		t.Errorf("Counters wrong: %+v", runs[0])
	}
	if runs[0].PeakDifficulty != "HARD" {
		t.Errorf("Expected peak HARD, got %q", runs[0].PeakDifficulty)
	}
	if runs[0].Accuracy != 0.85 {
		t.Errorf("Expected accuracy 0.85, got %f", runs[0].Accuracy)
	}

	// Practice runs are a separate board
	practice, err := store.TopRuns("practice", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(practice) != 1 {
		t.Errorf("Expected 1 practice run, got %d", len(practice))
	}
}

func TestStoreAssignsRunUID(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{GameID: "classic", Score: 1})
	store.SaveRun(Run{GameID: "classic", Score: 2})

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunUID == "" || runs[1].RunUID == "" {
		t.Error("SaveRun should assign a run UID")
	}
	if runs[0].RunUID == runs[1].RunUID {
		t.Errorf("Run UIDs should be unique, both %q", runs[0].RunUID)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "classic", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "classic", Score: 100})
	store.SaveRun(Run{GameID: "classic", Score: 300})
	store.SaveRun(Run{GameID: "classic", Score: 200})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{GameID: "classic", Score: 100})
	store.SaveRun(Run{GameID: "classic", Score: 200})
	store.SaveRun(Run{GameID: "practice", Score: 300})

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.TopRuns("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}

	practice, _ := store.TopRuns("practice", 10)
	if len(practice) != 1 {
		t.Errorf("Practice runs should not be affected by clearing classic")
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Stats for a game nobody played
	stats, err := store.GetGameStats("classic")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{GameID: "classic", Score: 100, Accuracy: 0.5})
	store.SaveRun(Run{GameID: "classic", Score: 300, Accuracy: 0.9})

	stats, err = store.GetGameStats("classic")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %f", stats.AvgScore)
	}
	if stats.AvgAccuracy < 0.69 || stats.AvgAccuracy > 0.71 {
		t.Errorf("Expected avg accuracy near 0.7, got %f", stats.AvgAccuracy)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after a run")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
