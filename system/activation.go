// Package system contains the per-tick simulation stages: activation
// and decay, signal propagation, transient effects, health
// aggregation, and the fallback activity generator.
package system

import (
	"math"
	"sync/atomic"
	"time"

	"cortexview/component"
	"cortexview/constant"
	"cortexview/engine"
	"cortexview/event"
)

// pendingActivation is one staggered entry of a bulk update
type pendingActivation struct {
	due       time.Time
	component string
	intensity float64
}

// ActivationSystem owns the activation state of regions, neurons and
// synapses, and the linear decay that returns them to dormancy. It is
// the single entry point for external activity.
type ActivationSystem struct {
	world *engine.World

	// pending holds bulk-update entries waiting for their stagger
	// deadline; executed in Update on the tick goroutine
	pending []pendingActivation

	statActivations *atomic.Int64
	statDropped     *atomic.Int64
}

// NewActivationSystem creates the activation engine
func NewActivationSystem(world *engine.World) *ActivationSystem {
	reg := world.Resource.Status
	return &ActivationSystem{
		world:           world,
		statActivations: reg.Ints.Get("activation.total"),
		statDropped:     reg.Ints.Get("ingress.dropped"),
	}
}

// Name returns the system's name
func (s *ActivationSystem) Name() string {
	return "activation"
}

func (s *ActivationSystem) Priority() int {
	return constant.PriorityActivation
}

// EventTypes defines the events this system subscribes to
func (s *ActivationSystem) EventTypes() []event.Type {
	return []event.Type{
		event.TypeComponentActivity,
		event.TypeBulkUpdate,
	}
}

// HandleEvent processes inbound activity. Malformed payloads are
// dropped without state changes.
func (s *ActivationSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.TypeComponentActivity:
		p, ok := ev.Payload.(*event.ComponentActivityPayload)
		if !ok || !validActivity(p) {
			s.statDropped.Add(1)
			return
		}
		s.Activate(p.Component, p.Intensity)

	case event.TypeBulkUpdate:
		p, ok := ev.Payload.(*event.BulkUpdatePayload)
		if !ok {
			s.statDropped.Add(1)
			return
		}
		s.scheduleBulk(p)
	}
}

// validActivity rejects payloads missing a component or carrying a
// non-finite intensity
func validActivity(p *event.ComponentActivityPayload) bool {
	if p.Component == "" {
		return false
	}
	return !math.IsNaN(p.Intensity) && !math.IsInf(p.Intensity, 0)
}

// scheduleBulk queues each entry at an independent random delay in
// [0, BulkStaggerMax), staggered rather than simultaneous
func (s *ActivationSystem) scheduleBulk(p *event.BulkUpdatePayload) {
	now := s.world.Resource.Time.Now
	rng := s.world.Resource.Rand

	for i := range p.Components {
		entry := p.Components[i]
		if !validActivity(&entry) {
			s.statDropped.Add(1)
			continue
		}
		delay := time.Duration(rng.Float64() * float64(constant.BulkStaggerMax))
		s.pending = append(s.pending, pendingActivation{
			due:       now.Add(delay),
			component: entry.Component,
			intensity: entry.Intensity,
		})
	}
}

// Activate marks the region bound to componentID active and spreads
// the activation into the surrounding mesh. Unknown components are
// tolerated as a no-op.
func (s *ActivationSystem) Activate(componentID string, intensity float64) {
	w := s.world
	regionEntity, ok := w.Resource.Graph.ByComponent[componentID]
	if !ok {
		return
	}
	region, ok := w.Component.Region.Get(regionEntity)
	if !ok {
		return
	}

	now := w.Resource.Time.Now

	region.Active = true
	region.ActivatedAt = now
	w.Component.Region.Set(regionEntity, region)

	w.Resource.Activity.Record(componentID, now, intensity)
	s.statActivations.Add(1)

	if w.Resource.Chime != nil {
		w.Resource.Chime.Activation(intensity)
	}

	// Probabilistic neuron co-activation within the region's reach
	radius := constant.NeuronActivationRadius * region.Scale
	rng := w.Resource.Rand
	for _, e := range w.Component.Neuron.All() {
		n, ok := w.Component.Neuron.Get(e)
		if !ok {
			continue
		}
		if n.Position.Dist(region.Anchor) > radius {
			continue
		}
		if !rng.Chance(constant.NeuronActivationChance) {
			continue
		}
		n.Active = true
		n.ActivatedAt = now
		w.Component.Neuron.Set(e, n)
	}

	s.rescanSynapses(now)

	SpawnPulse(w, region.Anchor, region.Scale)
	SpawnArc(w, region.Anchor, nil)

	// Propagate along every long-lived path leaving this region
	for _, e := range w.Component.Path.All() {
		p, ok := w.Component.Path.Get(e)
		if !ok || p.Ephemeral {
			continue
		}
		if p.Source == regionEntity {
			TriggerSignalAlongPath(w, e)
		}
	}
}

// rescanSynapses derives synapse activation from endpoint state: any
// synapse whose both endpoints are currently active is marked active.
// This is a re-evaluated condition, never a push notification, so it
// can lag by one tick when only one endpoint was active.
func (s *ActivationSystem) rescanSynapses(now time.Time) {
	w := s.world
	for _, e := range w.Component.Synapse.All() {
		syn, ok := w.Component.Synapse.Get(e)
		if !ok || syn.Active {
			continue
		}
		if s.bothEndpointsActive(syn) {
			syn.Active = true
			syn.ActivatedAt = now
			w.Component.Synapse.Set(e, syn)
		}
	}
}

func (s *ActivationSystem) bothEndpointsActive(syn component.SynapseComponent) bool {
	a, okA := s.world.Component.Neuron.Get(syn.A)
	b, okB := s.world.Component.Neuron.Get(syn.B)
	return okA && okB && a.Active && b.Active
}

// Update applies the per-tick decay rule and releases due bulk
// entries. Decay is the single source of truth for "still active":
// elapsed beyond the pulse window reverts the entity to dormancy.
func (s *ActivationSystem) Update() {
	w := s.world
	now := w.Resource.Time.Now
	window := w.Resource.Sim.PulseDuration

	// Staggered bulk activations whose deadline has passed
	if len(s.pending) > 0 {
		remaining := s.pending[:0]
		for _, p := range s.pending {
			if now.Before(p.due) {
				remaining = append(remaining, p)
				continue
			}
			s.Activate(p.component, p.intensity)
		}
		s.pending = remaining
	}

	for _, e := range w.Component.Region.All() {
		r, ok := w.Component.Region.Get(e)
		if !ok || !r.Active {
			continue
		}
		if now.Sub(r.ActivatedAt) > window {
			r.Active = false
			w.Component.Region.Set(e, r)
		}
	}

	for _, e := range w.Component.Neuron.All() {
		n, ok := w.Component.Neuron.Get(e)
		if !ok || !n.Active {
			continue
		}
		if now.Sub(n.ActivatedAt) > window {
			n.Active = false
			w.Component.Neuron.Set(e, n)
		}
	}

	// Synapses decay on their own window and additionally lose
	// activation the moment either endpoint went dormant, so the
	// invariant holds after every completed tick.
	for _, e := range w.Component.Synapse.All() {
		syn, ok := w.Component.Synapse.Get(e)
		if !ok || !syn.Active {
			continue
		}
		if now.Sub(syn.ActivatedAt) > window || !s.bothEndpointsActive(syn) {
			syn.Active = false
			w.Component.Synapse.Set(e, syn)
		}
	}
}
