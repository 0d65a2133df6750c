package component

import (
	"time"

	"cortexview/core"
)

// PulseComponent is an expanding ring effect centered on a region.
// Purely visual: owns no simulation semantics, never reactivated.
type PulseComponent struct {
	Origin core.Vec3
	Radius float64

	Duration  time.Duration
	Remaining time.Duration
}
