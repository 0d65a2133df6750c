package engine

import (
	"log/slog"
	"time"

	"cortexview/core"
	"cortexview/status"
)

// TimeResource carries time data for systems. The FrameDriver updates
// it at the start of every tick; systems never read the wall clock.
type TimeResource struct {
	// Now is the current simulation instant
	Now time.Time

	// Delta is the duration since the last tick
	Delta time.Duration

	// Frame is the current tick count
	Frame int64
}

// SimResource holds config-derived simulation tunables
type SimResource struct {
	// PulseDuration is the activation decay window for regions,
	// neurons and synapses
	PulseDuration time.Duration
}

// GraphResource is the immutable product of the geometry builder
type GraphResource struct {
	// Regions in topology order
	Regions []core.Entity

	// ByComponent resolves an external component id to its region
	ByComponent map[string]core.Entity
}

// ActivityRecord is one entry of the component activity log
type ActivityRecord struct {
	LastActivation time.Time
	Intensity      float64
}

// ActivityResource maps external component ids to their most recent
// activation. Used only to compute recency-windowed health boosts.
type ActivityResource struct {
	Log map[string]ActivityRecord
}

// Record stores the latest activation for a component
func (a *ActivityResource) Record(component string, now time.Time, intensity float64) {
	a.Log[component] = ActivityRecord{LastActivation: now, Intensity: intensity}
}

// HealthMetrics are the four gauges, each clamped to [0,100].
// Overall is always the arithmetic mean of the three categories.
type HealthMetrics struct {
	Overall     float64
	Memory      float64
	Training    float64
	Connections float64
	LastUpdate  time.Time
}

// HealthResource wraps the mutable health state
type HealthResource struct {
	Metrics HealthMetrics
}

// Chime is the optional audio sink for activation feedback.
// A nil Chime is silently ignored.
type Chime interface {
	Activation(intensity float64)
}

// Resources holds the singleton resources systems share. Populated
// once during world construction; pointers remain valid for the
// application lifetime.
type Resources struct {
	Time     *TimeResource
	Sim      *SimResource
	Graph    *GraphResource
	Activity *ActivityResource
	Health   *HealthResource
	Rand     *core.Rand
	Status   *status.Registry
	Log      *slog.Logger
	Chime    Chime
}
