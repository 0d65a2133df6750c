package component

import (
	"time"

	"cortexview/core"
)

// NeuronComponent is one background node of the decorative mesh.
// Position is fixed at build time; activation is probabilistic.
type NeuronComponent struct {
	Position core.Vec3

	Active      bool
	ActivatedAt time.Time
}
