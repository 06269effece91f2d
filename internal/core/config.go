package core

// RuntimeConfig contains configuration passed to games at
// initialization. Games use it to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the current state of a game as reported to the
// platform. Besides the score it carries the run counters the
// platform records on game over.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool

	Kills      int
	Shots      int
	Bypassed   int
	Accuracy   float64 // kills over shots, 0 with no shots
	Difficulty string  // highest level reached, e.g. "MEDIUM"
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
