package system

import (
	"sync/atomic"
	"time"

	"cortexview/component"
	"cortexview/constant"
	"cortexview/core"
	"cortexview/engine"
)

// TriggerSignalAlongPath enqueues a new signal at the start of the
// given path with randomized speed variance
func TriggerSignalAlongPath(w *engine.World, path core.Entity) core.Entity {
	rng := w.Resource.Rand
	e := w.CreateEntity()
	w.Component.Signal.Set(e, component.SignalComponent{
		Path:      path,
		Progress:  0,
		Speed:     constant.BaseSignalSpeed * rng.Range(constant.SignalSpeedVarianceMin, constant.SignalSpeedVarianceMax),
		CreatedAt: w.Resource.Time.Now,
	})
	return e
}

// SignalSystem advances signals along their path curves and chains
// activation into the target region on arrival.
type SignalSystem struct {
	world      *engine.World
	activation *ActivationSystem

	statArrivals *atomic.Int64
}

// NewSignalSystem creates the signal scheduler. It calls into the
// activation engine directly so an arrival activates its target within
// the same tick, exactly once.
func NewSignalSystem(world *engine.World, activation *ActivationSystem) *SignalSystem {
	return &SignalSystem{
		world:        world,
		activation:   activation,
		statArrivals: world.Resource.Status.Ints.Get("signal.arrivals"),
	}
}

// Name returns the system's name
func (s *SignalSystem) Name() string {
	return "signal"
}

func (s *SignalSystem) Priority() int {
	return constant.PrioritySignal
}

// Update advances every live signal, then expires ephemeral paths.
// Signal arrival effects complete before path expiry is evaluated, so
// a just-arrived activation is never dropped by its path's timer.
func (s *SignalSystem) Update() {
	w := s.world
	now := w.Resource.Time.Now
	rng := w.Resource.Rand

	var remove []core.Entity
	var arrivedTargets []string

	for _, e := range w.Component.Signal.All() {
		sig, ok := w.Component.Signal.Get(e)
		if !ok {
			continue
		}

		// Orphan rule: a signal whose path no longer exists is
		// dropped silently, no activation side effects
		path, ok := w.Component.Path.Get(sig.Path)
		if !ok {
			remove = append(remove, e)
			continue
		}

		sig.Progress += sig.Speed
		if sig.Progress >= 1 {
			// At-most-one terminal transition: the signal is removed
			// and the target activated exactly once
			remove = append(remove, e)
			s.statArrivals.Add(1)
			if target, ok := w.Component.Region.Get(path.Target); ok {
				arrivedTargets = append(arrivedTargets, target.ComponentID)
			}
			continue
		}
		w.Component.Signal.Set(e, sig)

		pos, ok := engine.SignalPosition(w, sig.Path, sig.Progress)
		if !ok {
			continue
		}

		// Cosmetic density: occasional sparkle arc just ahead of the
		// signal, occasional neuron graze near its position
		if rng.Chance(constant.SignalSparkleChance) {
			ahead, ok := engine.SignalPosition(w, sig.Path, minFloat(sig.Progress+0.05, 1))
			if ok {
				SpawnArc(w, pos, &ahead)
			}
		}
		if rng.Chance(constant.SignalGrazeChance) {
			s.grazeNeuron(pos, now)
		}
	}

	for _, e := range remove {
		w.DestroyEntity(e)
	}

	// Downstream activation chains across regions
	for _, componentID := range arrivedTargets {
		s.activation.Activate(componentID, constant.SignalActivationIntensity)
	}

	s.expireEphemeralPaths(now)
}

// grazeNeuron activates the first neuron found within the graze radius
func (s *SignalSystem) grazeNeuron(pos core.Vec3, now time.Time) {
	w := s.world
	for _, e := range w.Component.Neuron.All() {
		n, ok := w.Component.Neuron.Get(e)
		if !ok {
			continue
		}
		if n.Position.Dist(pos) > constant.SignalGrazeRadius {
			continue
		}
		n.Active = true
		n.ActivatedAt = now
		w.Component.Neuron.Set(e, n)
		return
	}
}

// expireEphemeralPaths removes generator-created paths past their
// unconditional wall-clock lifetime. Topology paths never expire, so
// in-flight signals on the fixed topology are never dropped.
func (s *SignalSystem) expireEphemeralPaths(now time.Time) {
	w := s.world
	for _, e := range w.Component.Path.All() {
		p, ok := w.Component.Path.Get(e)
		if !ok || !p.Ephemeral {
			continue
		}
		if now.Sub(p.CreatedAt) > constant.EphemeralPathLifetime {
			w.DestroyEntity(e)
		}
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
