package parameter

import "time"

// Frame timing
const (
	// TargetFPS drives the frame ticker; the simulation itself is
	// delta-timed and tolerates missed frames
	TargetFPS = 60
)

// Launch scheduling
const (
	// AutoLaunchInterval is the default period between automatic rockets
	AutoLaunchInterval = 800 * time.Millisecond
)
