package system

import (
	"cortexview/component"
	"cortexview/constant"
	"cortexview/core"
	"cortexview/engine"
)

// SpawnPulse creates an expanding ring effect at origin
func SpawnPulse(w *engine.World, origin core.Vec3, radius float64) core.Entity {
	e := w.CreateEntity()
	w.Component.Pulse.Set(e, component.PulseComponent{
		Origin:    origin,
		Radius:    radius,
		Duration:  constant.PulseEffectDuration,
		Remaining: constant.PulseEffectDuration,
	})
	return e
}

// SpawnArc creates a jittered polyline effect from start to end.
// A nil end synthesizes a random nearby endpoint.
func SpawnArc(w *engine.World, start core.Vec3, end *core.Vec3) core.Entity {
	rng := w.Resource.Rand

	var target core.Vec3
	if end != nil {
		target = *end
	} else {
		target = start.Add(core.Vec3{
			X: rng.Jitter(constant.ArcNearbyRadius),
			Y: rng.Jitter(constant.ArcNearbyRadius),
			Z: rng.Jitter(constant.ArcNearbyRadius),
		})
	}

	segLen := target.Sub(start).Length() / constant.ArcSegments
	jitter := segLen * constant.ArcJitterScale

	// Interpolate linearly, jitter each interior point independently
	points := make([]core.Vec3, constant.ArcSegments+1)
	for i := 0; i <= constant.ArcSegments; i++ {
		t := float64(i) / constant.ArcSegments
		p := core.Lerp(start, target, t)
		if i > 0 && i < constant.ArcSegments {
			p = p.Add(core.Vec3{
				X: rng.Jitter(jitter),
				Y: rng.Jitter(jitter),
				Z: rng.Jitter(jitter),
			})
		}
		points[i] = p
	}

	e := w.CreateEntity()
	w.Component.Arc.Set(e, component.ArcComponent{
		Points:    points,
		Duration:  constant.ArcEffectDuration,
		Remaining: constant.ArcEffectDuration,
	})
	return e
}

// EffectSystem manages the lifecycle of transient visual effects.
// Effects are decoupled from the entities that spawned them; expiry
// is unconditional and removal immediate.
type EffectSystem struct {
	world *engine.World
}

// NewEffectSystem creates the effect manager
func NewEffectSystem(world *engine.World) *EffectSystem {
	return &EffectSystem{world: world}
}

// Name returns the system's name
func (s *EffectSystem) Name() string {
	return "effect"
}

func (s *EffectSystem) Priority() int {
	return constant.PriorityEffect
}

// Update retires expired effects. Remaining is delta-tracked so the
// lifecycle is robust against clock jumps.
func (s *EffectSystem) Update() {
	w := s.world
	dt := w.Resource.Time.Delta

	var toDestroy []core.Entity

	for _, e := range w.Component.Pulse.All() {
		p, ok := w.Component.Pulse.Get(e)
		if !ok {
			continue
		}
		p.Remaining -= dt
		if p.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		} else {
			w.Component.Pulse.Set(e, p)
		}
	}

	for _, e := range w.Component.Arc.All() {
		a, ok := w.Component.Arc.Get(e)
		if !ok {
			continue
		}
		a.Remaining -= dt
		if a.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		} else {
			w.Component.Arc.Set(e, a)
		}
	}

	for _, e := range toDestroy {
		w.DestroyEntity(e)
	}
}
