package engine

import "cortexview/event"

// System is one per-tick simulation stage
type System interface {
	// Name identifies the system in logs and metrics
	Name() string

	// Priority orders execution within a tick; lower runs first
	Priority() int

	// Update advances the system by one tick. Runs on the tick
	// goroutine under the world update lock.
	Update()
}

// EventHandler is optionally implemented by systems that consume
// queued events. Dispatch happens at the start of a tick, before any
// system's Update, in FIFO order.
type EventHandler interface {
	EventTypes() []event.Type
	HandleEvent(ev event.Event)
}
