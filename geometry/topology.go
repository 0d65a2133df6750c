package geometry

import "cortexview/core"

// RegionSpec is one row of the fixed topology table
type RegionSpec struct {
	ComponentID string
	Name        string
	Anchor      core.Vec3
	Scale       float64
}

// EdgeSpec is one directed long-lived path between two regions
type EdgeSpec struct {
	Source, Target string // component ids
}

// Topology binds each external component to exactly one anatomical
// zone. Anchors are laid out roughly like a sagittal brain section:
// frontal structures forward (+Z), occipital back, brainstem low.
var Topology = []RegionSpec{
	{ComponentID: "main.py", Name: "Brainstem", Anchor: core.Vec3{X: 0, Y: -5, Z: 0}, Scale: 1.4},
	{ComponentID: "controller", Name: "Frontal Cortex", Anchor: core.Vec3{X: 0, Y: 3, Z: 6}, Scale: 1.2},
	{ComponentID: "memory", Name: "Hippocampus", Anchor: core.Vec3{X: -3, Y: -1, Z: -1}, Scale: 1.0},
	{ComponentID: "training", Name: "Cerebellum", Anchor: core.Vec3{X: 0, Y: -3, Z: -6}, Scale: 1.1},
	{ComponentID: "browser", Name: "Occipital Lobe", Anchor: core.Vec3{X: 0, Y: 2, Z: -7}, Scale: 1.0},
	{ComponentID: "parietal", Name: "Parietal Lobe", Anchor: core.Vec3{X: 0, Y: 5, Z: -2}, Scale: 0.9},
	{ComponentID: "temporal", Name: "Temporal Lobe", Anchor: core.Vec3{X: 5, Y: 0, Z: 0}, Scale: 0.9},
}

// Edges is the long-lived path set. Activity propagates outward from
// the brainstem and between cooperating components.
var Edges = []EdgeSpec{
	{Source: "main.py", Target: "controller"},
	{Source: "main.py", Target: "memory"},
	{Source: "controller", Target: "memory"},
	{Source: "controller", Target: "browser"},
	{Source: "controller", Target: "training"},
	{Source: "memory", Target: "temporal"},
	{Source: "training", Target: "parietal"},
	{Source: "browser", Target: "temporal"},
}
