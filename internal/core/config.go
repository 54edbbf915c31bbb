package core

// RuntimeConfig contains the settings the platform derives from the loaded
// configuration for one running app.
type RuntimeConfig struct {
	ScreenW  int   // Render width in characters
	ScreenH  int   // Render height in characters
	TickRate int   // Updates per second
	Seed     int64 // RNG seed; 0 means seeded from the clock
}
