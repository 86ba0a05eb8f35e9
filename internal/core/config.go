package core

// RuntimeConfig contains the settings a backend needs to host a game.
type RuntimeConfig struct {
	ScreenW  int         // Initial screen width in cells
	ScreenH  int         // Initial screen height in cells
	Cells    CellMetrics // Logical units per cell
	TickRate int         // Frames per second (default 60)
	Seed     int64       // RNG seed for the serve; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Cells:    CellMetrics{W: 8, H: 16},
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible state of a game.
type GameState struct {
	Score  int  // Current score, may be negative
	Placed bool // Whether the layout-dependent placement has happened
}
