package engine

import (
	"cortexview/component"
	"cortexview/core"
)

// ComponentStore holds the typed stores for every component kind.
// Systems cache the pointers they need at construction time.
type ComponentStore struct {
	// Static graph
	Region  *Store[component.RegionComponent]
	Neuron  *Store[component.NeuronComponent]
	Synapse *Store[component.SynapseComponent]

	// Propagation
	Path   *Store[component.PathComponent]
	Signal *Store[component.SignalComponent]

	// Transient effects
	Pulse *Store[component.PulseComponent]
	Arc   *Store[component.ArcComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Region:  NewStore[component.RegionComponent](),
		Neuron:  NewStore[component.NeuronComponent](),
		Synapse: NewStore[component.SynapseComponent](),
		Path:    NewStore[component.PathComponent](),
		Signal:  NewStore[component.SignalComponent](),
		Pulse:   NewStore[component.PulseComponent](),
		Arc:     NewStore[component.ArcComponent](),
	}
}

// removeFromAll strips an entity from every store
func (cs *ComponentStore) removeFromAll(e core.Entity) {
	cs.Region.Remove(e)
	cs.Neuron.Remove(e)
	cs.Synapse.Remove(e)
	cs.Path.Remove(e)
	cs.Signal.Remove(e)
	cs.Pulse.Remove(e)
	cs.Arc.Remove(e)
}

// clearAll empties every store
func (cs *ComponentStore) clearAll() {
	cs.Region.Clear()
	cs.Neuron.Clear()
	cs.Synapse.Clear()
	cs.Path.Clear()
	cs.Signal.Clear()
	cs.Pulse.Clear()
	cs.Arc.Clear()
}

// liveCount returns the total number of live component instances
func (cs *ComponentStore) liveCount() int {
	return cs.Region.Count() + cs.Neuron.Count() + cs.Synapse.Count() +
		cs.Path.Count() + cs.Signal.Count() + cs.Pulse.Count() + cs.Arc.Count()
}
