package engine

import (
	"testing"
	"time"

	"cortexview/component"
	"cortexview/core"
)

func TestDecayIntensity(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	window := 2 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"just activated", 0, 1},
		{"quarter", 500 * time.Millisecond, 0.75},
		{"half", time.Second, 0.5},
		{"window edge", 2 * time.Second, 0},
		{"past window", 3 * time.Second, 0},
		{"future activation", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecayIntensity(base.Add(tt.elapsed), base, window)
			if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("DecayIntensity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignalPosition(t *testing.T) {
	w := NewWorld(core.NewRand(1), 2*time.Second)

	src := w.CreateEntity()
	dst := w.CreateEntity()
	w.Component.Region.Set(src, component.RegionComponent{
		ComponentID: "a", Anchor: core.Vec3{X: 0, Y: 0, Z: 0},
	})
	w.Component.Region.Set(dst, component.RegionComponent{
		ComponentID: "b", Anchor: core.Vec3{X: 10, Y: 0, Z: 0},
	})

	path := w.CreateEntity()
	w.Component.Path.Set(path, component.PathComponent{
		Source: src, Target: dst,
		Control: core.Vec3{X: 5, Y: 4, Z: 0},
	})

	pos, ok := SignalPosition(w, path, 0)
	if !ok || pos != (core.Vec3{}) {
		t.Fatalf("start position = %v, %v", pos, ok)
	}
	pos, ok = SignalPosition(w, path, 1)
	if !ok || pos != (core.Vec3{X: 10, Y: 0, Z: 0}) {
		t.Fatalf("end position = %v, %v", pos, ok)
	}

	// Orphaned lookups report not-ok
	if _, ok := SignalPosition(w, core.Entity(999), 0.5); ok {
		t.Fatal("position on missing path reported ok")
	}
	w.DestroyEntity(dst)
	if _, ok := SignalPosition(w, path, 0.5); ok {
		t.Fatal("position with missing target region reported ok")
	}
}

func TestBuildSnapshot(t *testing.T) {
	w := NewWorld(core.NewRand(1), 2*time.Second)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	w.Resource.Time.Now = now
	w.Resource.Time.Frame = 9

	active := w.CreateEntity()
	w.Component.Region.Set(active, component.RegionComponent{
		ComponentID: "memory", Name: "Hippocampus",
		Active: true, ActivatedAt: now.Add(-time.Second),
	})
	dormant := w.CreateEntity()
	w.Component.Region.Set(dormant, component.RegionComponent{
		ComponentID: "training", Name: "Cerebellum",
	})

	a := w.CreateEntity()
	b := w.CreateEntity()
	w.Component.Neuron.Set(a, component.NeuronComponent{Active: true, ActivatedAt: now})
	w.Component.Neuron.Set(b, component.NeuronComponent{})

	// Only active synapses appear
	syn := w.CreateEntity()
	w.Component.Synapse.Set(syn, component.SynapseComponent{A: a, B: b})

	snap := BuildSnapshot(w)
	if len(snap.Regions) != 2 {
		t.Fatalf("regions = %d", len(snap.Regions))
	}
	for _, r := range snap.Regions {
		switch r.ComponentID {
		case "memory":
			if r.Intensity < 0.49 || r.Intensity > 0.51 {
				t.Errorf("active region intensity = %v", r.Intensity)
			}
		case "training":
			if r.Intensity != 0 {
				t.Errorf("dormant region intensity = %v", r.Intensity)
			}
		}
	}
	if len(snap.Synapses) != 0 {
		t.Errorf("inactive synapse included in snapshot")
	}
	if snap.Frame != 9 {
		t.Errorf("frame = %d", snap.Frame)
	}
}
