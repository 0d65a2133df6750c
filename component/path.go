package component

import (
	"time"

	"cortexview/core"
)

// PathComponent is a directed curve between two regions. Signals
// reference their path by entity id; a destroyed path orphans its
// signals, which are then dropped without side effects.
type PathComponent struct {
	// Source and Target are region entities
	Source, Target core.Entity

	// Control is the perturbed midpoint of the quadratic Bezier
	Control core.Vec3

	// Ephemeral paths (fallback generator) expire on an unconditional
	// wall-clock timer. Topology paths never expire.
	Ephemeral bool
	CreatedAt time.Time
}
