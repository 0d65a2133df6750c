package engine

import (
	"time"

	"cortexview/core"
)

// Snapshot is the read-only view handed to the renderer after each
// tick. All slices are deep copies: the renderer never aliases live
// component storage.
type Snapshot struct {
	Regions  []RegionView
	Neurons  []NeuronView
	Synapses []SynapseView
	Signals  []SignalView
	Pulses   []PulseView
	Arcs     []ArcView

	Health HealthMetrics

	Frame       int64
	SignalCount int
	EntityCount int
}

// RegionView is a region's render state
type RegionView struct {
	ComponentID string
	Name        string
	Anchor      core.Vec3
	Scale       float64
	Intensity   float64 // 0 dormant .. 1 just activated
}

// NeuronView is a neuron's render state
type NeuronView struct {
	Position  core.Vec3
	Intensity float64
}

// SynapseView is a synapse's render state with resolved endpoints
type SynapseView struct {
	A, B      core.Vec3
	Intensity float64
}

// SignalView is a signal's current position on its path curve
type SignalView struct {
	Position core.Vec3
}

// PulseView is an expanding ring
type PulseView struct {
	Origin  core.Vec3
	Radius  float64
	Scale   float64 // grows 0..max over the effect lifetime
	Opacity float64 // falls 1..0
}

// ArcView is a jittered polyline
type ArcView struct {
	Points  []core.Vec3
	Opacity float64
}

// DecayIntensity is the single decay function: linear from 1 at
// activation to 0 at the end of the pulse window
func DecayIntensity(now, activatedAt time.Time, window time.Duration) float64 {
	elapsed := now.Sub(activatedAt)
	if elapsed < 0 || elapsed > window {
		return 0
	}
	return 1 - float64(elapsed)/float64(window)
}

// BuildSnapshot assembles the render view under the world update lock
func BuildSnapshot(w *World) *Snapshot {
	snap := &Snapshot{}

	w.RunSafe(func() {
		now := w.Resource.Time.Now
		window := w.Resource.Sim.PulseDuration

		for _, e := range w.Component.Region.All() {
			r, ok := w.Component.Region.Get(e)
			if !ok {
				continue
			}
			view := RegionView{
				ComponentID: r.ComponentID,
				Name:        r.Name,
				Anchor:      r.Anchor,
				Scale:       r.Scale,
			}
			if r.Active {
				view.Intensity = DecayIntensity(now, r.ActivatedAt, window)
			}
			snap.Regions = append(snap.Regions, view)
		}

		for _, e := range w.Component.Neuron.All() {
			n, ok := w.Component.Neuron.Get(e)
			if !ok {
				continue
			}
			view := NeuronView{Position: n.Position}
			if n.Active {
				view.Intensity = DecayIntensity(now, n.ActivatedAt, window)
			}
			snap.Neurons = append(snap.Neurons, view)
		}

		for _, e := range w.Component.Synapse.All() {
			s, ok := w.Component.Synapse.Get(e)
			if !ok || !s.Active {
				continue
			}
			na, okA := w.Component.Neuron.Get(s.A)
			nb, okB := w.Component.Neuron.Get(s.B)
			if !okA || !okB {
				continue
			}
			snap.Synapses = append(snap.Synapses, SynapseView{
				A:         na.Position,
				B:         nb.Position,
				Intensity: DecayIntensity(now, s.ActivatedAt, window),
			})
		}

		for _, e := range w.Component.Signal.All() {
			sig, ok := w.Component.Signal.Get(e)
			if !ok {
				continue
			}
			pos, ok := SignalPosition(w, sig.Path, sig.Progress)
			if !ok {
				continue
			}
			snap.Signals = append(snap.Signals, SignalView{Position: pos})
		}

		for _, e := range w.Component.Pulse.All() {
			p, ok := w.Component.Pulse.Get(e)
			if !ok || p.Duration <= 0 {
				continue
			}
			progress := 1 - float64(p.Remaining)/float64(p.Duration)
			snap.Pulses = append(snap.Pulses, PulseView{
				Origin:  p.Origin,
				Radius:  p.Radius,
				Scale:   progress,
				Opacity: 1 - progress,
			})
		}

		for _, e := range w.Component.Arc.All() {
			a, ok := w.Component.Arc.Get(e)
			if !ok || a.Duration <= 0 {
				continue
			}
			points := make([]core.Vec3, len(a.Points))
			copy(points, a.Points)
			snap.Arcs = append(snap.Arcs, ArcView{
				Points:  points,
				Opacity: float64(a.Remaining) / float64(a.Duration),
			})
		}

		snap.Health = w.Resource.Health.Metrics
		snap.Frame = w.Resource.Time.Frame
		snap.SignalCount = w.Component.Signal.Count()
		snap.EntityCount = w.EntityCount()
	})

	return snap
}

// SignalPosition evaluates the owning path's quadratic Bezier at the
// signal's progress. Returns false when the path or either region is
// gone (orphaned signal).
func SignalPosition(w *World, path core.Entity, progress float64) (core.Vec3, bool) {
	p, ok := w.Component.Path.Get(path)
	if !ok {
		return core.Vec3{}, false
	}
	src, okS := w.Component.Region.Get(p.Source)
	dst, okT := w.Component.Region.Get(p.Target)
	if !okS || !okT {
		return core.Vec3{}, false
	}
	return core.QuadBezier(src.Anchor, p.Control, dst.Anchor, progress), true
}
