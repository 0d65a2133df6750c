package system

import (
	"time"

	"cortexview/component"
	"cortexview/constant"
	"cortexview/engine"
	"cortexview/event"
	"cortexview/geometry"
)

// GeneratorSystem is the randomized fallback activity source. It is
// dormant while the ingress feed is healthy and takes over permanently
// once the connection is reported down (or was never enabled).
type GeneratorSystem struct {
	world      *engine.World
	activation *ActivationSystem

	enabled bool

	nextActivate time.Time
	nextPath     time.Time
}

// NewGeneratorSystem creates the fallback generator. enabled controls
// whether it drives the scene from the first tick (no ingress
// configured) or waits for an ingress-down event.
func NewGeneratorSystem(world *engine.World, activation *ActivationSystem, enabled bool) *GeneratorSystem {
	return &GeneratorSystem{
		world:      world,
		activation: activation,
		enabled:    enabled,
	}
}

// Name returns the system's name
func (s *GeneratorSystem) Name() string {
	return "generator"
}

func (s *GeneratorSystem) Priority() int {
	return constant.PriorityGenerator
}

// EventTypes defines the events this system subscribes to
func (s *GeneratorSystem) EventTypes() []event.Type {
	return []event.Type{
		event.TypeIngressConnected,
		event.TypeIngressDown,
	}
}

// HandleEvent toggles the generator with the ingress state. The
// fallback is permanent: once the connection is down, no reconnect is
// attempted for the remainder of the session.
func (s *GeneratorSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.TypeIngressConnected:
		s.enabled = false
	case event.TypeIngressDown:
		if !s.enabled {
			s.world.Resource.Log.Warn("ingress down, falling back to generated activity")
		}
		s.enabled = true
	}
}

// Update emits one random component activation every activate
// interval, and one ephemeral path with a signal every path interval
func (s *GeneratorSystem) Update() {
	if !s.enabled {
		return
	}

	w := s.world
	now := w.Resource.Time.Now
	rng := w.Resource.Rand

	if s.nextActivate.IsZero() {
		s.nextActivate = now.Add(constant.GeneratorActivateInterval)
		s.nextPath = now.Add(constant.GeneratorPathInterval)
		return
	}

	if !now.Before(s.nextActivate) {
		s.nextActivate = now.Add(constant.GeneratorActivateInterval)
		spec := geometry.Topology[rng.Intn(len(geometry.Topology))]
		s.activation.Activate(spec.ComponentID, rng.Range(constant.GeneratorIntensityMin, constant.GeneratorIntensityMax))
	}

	if !now.Before(s.nextPath) {
		s.nextPath = now.Add(constant.GeneratorPathInterval)
		s.spawnEphemeralPath(now)
	}
}

// spawnEphemeralPath connects two distinct random regions with a
// self-destructing path and launches a signal on it
func (s *GeneratorSystem) spawnEphemeralPath(now time.Time) {
	w := s.world
	rng := w.Resource.Rand
	regions := w.Resource.Graph.Regions
	if len(regions) < 2 {
		return
	}

	src := regions[rng.Intn(len(regions))]
	dst := regions[rng.Intn(len(regions))]
	for dst == src {
		dst = regions[rng.Intn(len(regions))]
	}

	rs, okS := w.Component.Region.Get(src)
	rt, okT := w.Component.Region.Get(dst)
	if !okS || !okT {
		return
	}

	e := w.CreateEntity()
	w.Component.Path.Set(e, component.PathComponent{
		Source:    src,
		Target:    dst,
		Control:   geometry.PerturbedMidpoint(rs.Anchor, rt.Anchor, rng),
		Ephemeral: true,
		CreatedAt: now,
	})

	TriggerSignalAlongPath(w, e)
}
