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

// GameState represents the current state of a game, returned by
// Game.State() to communicate status to the platform. The platform
// builds run records from it, so it carries everything a finished run
// persists except the duration, which the platform times itself.
type GameState struct {
	Score    int     // Current score
	Lives    int     // Respawns left before the run ends
	Level    int     // Current level number, starting at 1
	Cleared  int     // Levels completed this run
	Height   float64 // Best height above spawn this run, in cells
	Theme    string  // Texture theme of the current run
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
