package constant

import "time"

// Entity decay
const (
	// PulseDuration is how long a region, neuron or synapse stays
	// active after activation. Decay is linear over this window and is
	// the single source of truth for "still active".
	PulseDuration = 2000 * time.Millisecond
)

// Activation spread
const (
	// NeuronActivationRadius is scaled by the region's scale factor to
	// select neurons for probabilistic co-activation
	NeuronActivationRadius = 4.0

	// NeuronActivationChance is the Bernoulli probability per selected
	// neuron
	NeuronActivationChance = 0.7

	// SignalActivationIntensity is the intensity passed downstream
	// when a signal arrives at its target region
	SignalActivationIntensity = 0.8
)

// Effects
const (
	PulseEffectDuration = 1000 * time.Millisecond
	ArcEffectDuration   = 500 * time.Millisecond

	// ArcSegments is the number of polyline points per arc
	ArcSegments = 10

	// ArcJitterScale scales per-point jitter to the segment length
	ArcJitterScale = 0.35

	// ArcNearbyRadius bounds the synthesized endpoint when an arc is
	// spawned without an explicit end position
	ArcNearbyRadius = 3.0

	// PulseMaxScale is the final scale of an expanding pulse ring
	PulseMaxScale = 3.0
)

// Signals
const (
	// BaseSignalSpeed is progress gained per tick before variance
	BaseSignalSpeed = 0.02

	// SignalSpeedVarianceMin/Max bound the per-signal speed multiplier
	SignalSpeedVarianceMin = 0.75
	SignalSpeedVarianceMax = 1.25

	// SignalSparkleChance spawns a cosmetic arc ahead of the signal
	SignalSparkleChance = 0.1

	// SignalGrazeChance activates a neuron near the signal's position
	SignalGrazeChance = 0.02

	// SignalGrazeRadius bounds the neuron graze search
	SignalGrazeRadius = 1.5

	// EphemeralPathLifetime is the unconditional wall-clock expiry for
	// generator-created paths. Topology paths never expire.
	EphemeralPathLifetime = 5000 * time.Millisecond

	// PathMidpointPerturb bounds the random offset of a path's control
	// point from the straight midpoint
	PathMidpointPerturb = 4.0
)

// Health aggregation
const (
	// HealthDecayPerSecond is the linear gauge decay rate
	HealthDecayPerSecond = 2.0

	// HealthFluctuationPerSecond scales the symmetric random term
	HealthFluctuationPerSecond = 3.0

	// HealthBoost is the flat additive boost per recent activity entry
	HealthBoost = 0.8

	// HealthRecencyWindow bounds which activity entries still boost
	HealthRecencyWindow = 5000 * time.Millisecond

	// HealthInitial is the starting value of every category gauge
	HealthInitial = 75.0
)

// Fallback generator
const (
	GeneratorActivateInterval = 3000 * time.Millisecond
	GeneratorPathInterval     = 5000 * time.Millisecond

	GeneratorIntensityMin = 0.5
	GeneratorIntensityMax = 1.0
)

// Ingress
const (
	// BulkStaggerMax bounds the random per-entry delay of a bulk
	// update; each entry activates independently within [0, max)
	BulkStaggerMax = 1000 * time.Millisecond
)
