package system

import (
	"strings"

	"cortexview/constant"
	"cortexview/engine"
	"cortexview/event"
	"cortexview/status"
)

// HealthSystem derives a rolling 0-100 health score per subsystem
// category from decay-over-time plus recency-windowed activity boosts.
// The result fluctuates continuously but responds to activity: the
// gauges communicate "the system is alive", they do not count.
type HealthSystem struct {
	world *engine.World

	gaugeOverall     *status.AtomicFloat
	gaugeMemory      *status.AtomicFloat
	gaugeTraining    *status.AtomicFloat
	gaugeConnections *status.AtomicFloat
}

// NewHealthSystem creates the health aggregator with all gauges at
// their initial value
func NewHealthSystem(world *engine.World) *HealthSystem {
	h := &world.Resource.Health.Metrics
	h.Memory = constant.HealthInitial
	h.Training = constant.HealthInitial
	h.Connections = constant.HealthInitial
	h.Overall = constant.HealthInitial

	reg := world.Resource.Status
	return &HealthSystem{
		world:            world,
		gaugeOverall:     reg.Floats.Get("health.overall"),
		gaugeMemory:      reg.Floats.Get("health.memory"),
		gaugeTraining:    reg.Floats.Get("health.training"),
		gaugeConnections: reg.Floats.Get("health.connections"),
	}
}

// Name returns the system's name
func (s *HealthSystem) Name() string {
	return "health"
}

func (s *HealthSystem) Priority() int {
	return constant.PriorityHealth
}

// EventTypes defines the events this system subscribes to
func (s *HealthSystem) EventTypes() []event.Type {
	return []event.Type{event.TypeHealthUpdate}
}

// HandleEvent shallow-merges an external health update. Category
// fields overwrite; Overall stays derived and is recomputed, never
// accepted from outside.
func (s *HealthSystem) HandleEvent(ev event.Event) {
	p, ok := ev.Payload.(*event.HealthUpdatePayload)
	if !ok {
		return
	}

	h := &s.world.Resource.Health.Metrics
	if p.Memory != nil {
		h.Memory = clamp(*p.Memory)
	}
	if p.Training != nil {
		h.Training = clamp(*p.Training)
	}
	if p.Connections != nil {
		h.Connections = clamp(*p.Connections)
	}
	h.Overall = (h.Memory + h.Training + h.Connections) / 3
	h.LastUpdate = s.world.Resource.Time.Now
}

// Update applies time-proportional decay, random fluctuation, and
// activity boosts, then clamps and recomputes the overall mean.
func (s *HealthSystem) Update() {
	w := s.world
	now := w.Resource.Time.Now
	h := &w.Resource.Health.Metrics

	if h.LastUpdate.IsZero() {
		h.LastUpdate = now
		s.publish()
		return
	}

	dt := now.Sub(h.LastUpdate).Seconds()
	if dt <= 0 {
		return
	}
	rng := w.Resource.Rand

	decay := constant.HealthDecayPerSecond * dt
	h.Memory += -decay + rng.Jitter(constant.HealthFluctuationPerSecond)*dt
	h.Training += -decay + rng.Jitter(constant.HealthFluctuationPerSecond)*dt
	h.Connections += -decay + rng.Jitter(constant.HealthFluctuationPerSecond)*dt

	// Recent activity boosts the category implied by the component
	// identifier; unmatched identifiers boost nothing
	for componentID, rec := range w.Resource.Activity.Log {
		if now.Sub(rec.LastActivation) > constant.HealthRecencyWindow {
			continue
		}
		switch CategoryFor(componentID) {
		case CategoryMemory:
			h.Memory += constant.HealthBoost
		case CategoryTraining:
			h.Training += constant.HealthBoost
		case CategoryConnections:
			h.Connections += constant.HealthBoost
		}
	}

	h.Memory = clamp(h.Memory)
	h.Training = clamp(h.Training)
	h.Connections = clamp(h.Connections)
	h.Overall = (h.Memory + h.Training + h.Connections) / 3
	h.LastUpdate = now

	s.publish()
}

// publish mirrors the gauges into the status registry for the overlay
func (s *HealthSystem) publish() {
	h := &s.world.Resource.Health.Metrics
	s.gaugeOverall.Set(h.Overall)
	s.gaugeMemory.Set(h.Memory)
	s.gaugeTraining.Set(h.Training)
	s.gaugeConnections.Set(h.Connections)
}

// Category identifies a health gauge
type Category int

const (
	CategoryNone Category = iota
	CategoryMemory
	CategoryTraining
	CategoryConnections
)

// CategoryFor matches a component identifier against the fixed keyword
// rules; first matching rule wins
func CategoryFor(componentID string) Category {
	id := strings.ToLower(componentID)
	switch {
	case strings.Contains(id, "memory"):
		return CategoryMemory
	case strings.Contains(id, "training"):
		return CategoryTraining
	case strings.Contains(id, "controller"), strings.Contains(id, "browser"):
		return CategoryConnections
	default:
		return CategoryNone
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
