// Package geometry constructs the static region/neuron/synapse graph
// once at startup. The output is immutable spatial data; only
// activation flags and timestamps mutate afterwards.
package geometry

import (
	"fmt"

	"cortexview/component"
	"cortexview/config"
	"cortexview/constant"
	"cortexview/core"
	"cortexview/engine"
)

// Build populates the world from the fixed topology table and the
// configured counts. Runs exactly once; an invalid configuration is a
// fatal setup error, not retried.
func Build(w *engine.World, cfg config.SimConfig) error {
	if cfg.NeuronCount <= 0 {
		return fmt.Errorf("geometry: neuron count must be positive, got %d", cfg.NeuronCount)
	}
	if cfg.ShellRadiusMax <= cfg.ShellRadiusMin || cfg.ShellRadiusMin <= 0 {
		return fmt.Errorf("geometry: invalid shell radii [%v, %v]", cfg.ShellRadiusMin, cfg.ShellRadiusMax)
	}

	rng := w.Resource.Rand
	graph := w.Resource.Graph

	// Regions: one per topology row, never destroyed
	for _, spec := range Topology {
		e := w.CreateEntity()
		w.Component.Region.Set(e, component.RegionComponent{
			ComponentID: spec.ComponentID,
			Name:        spec.Name,
			Anchor:      spec.Anchor,
			Scale:       spec.Scale,
		})
		graph.Regions = append(graph.Regions, e)
		graph.ByComponent[spec.ComponentID] = e
	}

	// Neurons: uniform by solid angle, radius uniform in the annulus
	// so the pool clusters in a shell rather than at the center
	neurons := make([]core.Entity, 0, cfg.NeuronCount)
	for i := 0; i < cfg.NeuronCount; i++ {
		dir := rng.UnitSphere()
		radius := rng.Range(cfg.ShellRadiusMin, cfg.ShellRadiusMax)
		e := w.CreateEntity()
		w.Component.Neuron.Set(e, component.NeuronComponent{
			Position: dir.Scale(radius),
		})
		neurons = append(neurons, e)
	}

	// Synapses: two distinct neurons uniformly at random, retry on
	// self-pair
	for i := 0; i < cfg.SynapseCount; i++ {
		a := neurons[rng.Intn(len(neurons))]
		b := neurons[rng.Intn(len(neurons))]
		for b == a {
			b = neurons[rng.Intn(len(neurons))]
		}
		e := w.CreateEntity()
		w.Component.Synapse.Set(e, component.SynapseComponent{A: a, B: b})
	}

	// Long-lived paths from the edge list, each with a perturbed
	// midpoint control point
	for _, edge := range Edges {
		src, okS := graph.ByComponent[edge.Source]
		dst, okT := graph.ByComponent[edge.Target]
		if !okS || !okT {
			return fmt.Errorf("geometry: edge references unknown region %q -> %q", edge.Source, edge.Target)
		}
		rs, _ := w.Component.Region.Get(src)
		rt, _ := w.Component.Region.Get(dst)

		e := w.CreateEntity()
		w.Component.Path.Set(e, component.PathComponent{
			Source:  src,
			Target:  dst,
			Control: PerturbedMidpoint(rs.Anchor, rt.Anchor, rng),
		})
	}

	return nil
}

// PerturbedMidpoint offsets the straight midpoint of a->b by a random
// vector, giving each path curve an individual arc
func PerturbedMidpoint(a, b core.Vec3, rng *core.Rand) core.Vec3 {
	mid := core.Lerp(a, b, 0.5)
	return mid.Add(core.Vec3{
		X: rng.Jitter(constant.PathMidpointPerturb),
		Y: rng.Jitter(constant.PathMidpointPerturb),
		Z: rng.Jitter(constant.PathMidpointPerturb),
	})
}
