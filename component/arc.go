package component

import (
	"time"

	"cortexview/core"
)

// ArcComponent is a transient jittered polyline between two points
type ArcComponent struct {
	// Points is the fixed polyline computed at spawn time
	Points []core.Vec3

	Duration  time.Duration
	Remaining time.Duration
}
