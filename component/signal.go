package component

import (
	"time"

	"cortexview/core"
)

// SignalComponent is a token travelling along a path's curve.
// Destroyed when Progress reaches 1, after activating the target
// region exactly once.
type SignalComponent struct {
	// Path is the owning path entity
	Path core.Entity

	// Progress in [0,1] along the curve
	Progress float64

	// Speed is progress gained per tick (randomized per signal)
	Speed float64

	CreatedAt time.Time
}
