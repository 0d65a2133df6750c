package component

import (
	"time"

	"cortexview/core"
)

// SynapseComponent is an undirected pairing of two distinct neurons.
// Active is a derived condition: it may only hold while both endpoint
// neurons are active, re-evaluated every tick rather than pushed.
type SynapseComponent struct {
	A, B core.Entity

	Active      bool
	ActivatedAt time.Time
}
