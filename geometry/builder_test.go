package geometry

import (
	"testing"
	"time"

	"cortexview/config"
	"cortexview/core"
	"cortexview/engine"
)

func testSimConfig() config.SimConfig {
	return config.SimConfig{
		NeuronCount:    200,
		SynapseCount:   80,
		ShellRadiusMin: 6.0,
		ShellRadiusMax: 14.0,
	}
}

func TestBuildCounts(t *testing.T) {
	w := engine.NewWorld(core.NewRand(7), 2*time.Second)
	if err := Build(w, testSimConfig()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := w.Component.Region.Count(); got != len(Topology) {
		t.Errorf("regions = %d, want %d", got, len(Topology))
	}
	if got := w.Component.Neuron.Count(); got != 200 {
		t.Errorf("neurons = %d", got)
	}
	if got := w.Component.Synapse.Count(); got != 80 {
		t.Errorf("synapses = %d", got)
	}
	if got := w.Component.Path.Count(); got != len(Edges) {
		t.Errorf("paths = %d, want %d", got, len(Edges))
	}
}

func TestBuildRegistersAllComponents(t *testing.T) {
	w := engine.NewWorld(core.NewRand(7), 2*time.Second)
	if err := Build(w, testSimConfig()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	graph := w.Resource.Graph
	for _, spec := range Topology {
		e, ok := graph.ByComponent[spec.ComponentID]
		if !ok {
			t.Fatalf("component %q not registered", spec.ComponentID)
		}
		r, ok := w.Component.Region.Get(e)
		if !ok || r.Name != spec.Name || r.Anchor != spec.Anchor {
			t.Fatalf("region for %q = %+v", spec.ComponentID, r)
		}
	}
	if len(graph.Regions) != len(Topology) {
		t.Fatalf("graph regions = %d", len(graph.Regions))
	}
}

func TestBuildNeuronShell(t *testing.T) {
	cfg := testSimConfig()
	w := engine.NewWorld(core.NewRand(11), 2*time.Second)
	if err := Build(w, cfg); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, e := range w.Component.Neuron.All() {
		n, _ := w.Component.Neuron.Get(e)
		r := n.Position.Length()
		if r < cfg.ShellRadiusMin-1e-9 || r >= cfg.ShellRadiusMax+1e-9 {
			t.Fatalf("neuron radius %v outside [%v, %v)", r, cfg.ShellRadiusMin, cfg.ShellRadiusMax)
		}
	}
}

func TestBuildSynapsesNoSelfPair(t *testing.T) {
	w := engine.NewWorld(core.NewRand(13), 2*time.Second)
	if err := Build(w, testSimConfig()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, e := range w.Component.Synapse.All() {
		s, _ := w.Component.Synapse.Get(e)
		if s.A == s.B {
			t.Fatalf("synapse %d pairs neuron %d with itself", e, s.A)
		}
		if !w.Component.Neuron.Has(s.A) || !w.Component.Neuron.Has(s.B) {
			t.Fatalf("synapse %d references missing neuron", e)
		}
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SimConfig)
	}{
		{"zero neurons", func(c *config.SimConfig) { c.NeuronCount = 0 }},
		{"negative neurons", func(c *config.SimConfig) { c.NeuronCount = -1 }},
		{"inverted radii", func(c *config.SimConfig) { c.ShellRadiusMin, c.ShellRadiusMax = 10, 5 }},
		{"zero min radius", func(c *config.SimConfig) { c.ShellRadiusMin = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSimConfig()
			tt.mutate(&cfg)
			w := engine.NewWorld(core.NewRand(1), 2*time.Second)
			if err := Build(w, cfg); err == nil {
				t.Fatal("Build accepted invalid config")
			}
		})
	}
}
