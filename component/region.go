package component

import (
	"time"

	"cortexview/core"
)

// RegionComponent is a fixed anatomical zone bound to exactly one
// external component identifier. Regions are created once at startup
// and never destroyed; only the ActivationSystem mutates them.
type RegionComponent struct {
	// ComponentID is the external identifier this region answers to
	ComponentID string

	// Name is the display label
	Name string

	// Anchor is the spatial position of the region's center
	Anchor core.Vec3

	// Scale sizes the region and its neuron activation radius
	Scale float64

	// Active and ActivatedAt drive the linear decay window
	Active      bool
	ActivatedAt time.Time
}
