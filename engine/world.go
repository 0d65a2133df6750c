package engine

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cortexview/core"
	"cortexview/event"
	"cortexview/status"
)

// World contains all entities and their components using typed stores,
// plus the shared resources and the event queue feeding the tick loop.
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Component ComponentStore
	Resource  Resources

	eventQueue *event.Queue
	frame      atomic.Int64

	systems  []System
	handlers map[event.Type][]EventHandler

	updateMutex sync.Mutex
}

// NewWorld creates a world with initialized stores and resources
func NewWorld(rng *core.Rand, pulseDuration time.Duration) *World {
	w := &World{
		nextEntityID: 1,
		Component:    newComponentStore(),
		eventQueue:   event.NewQueue(),
		handlers:     make(map[event.Type][]EventHandler),
	}

	w.Resource = Resources{
		Time:     &TimeResource{},
		Sim:      &SimResource{PulseDuration: pulseDuration},
		Graph:    &GraphResource{ByComponent: make(map[string]core.Entity)},
		Activity: &ActivityResource{Log: make(map[string]ActivityRecord)},
		Health:   &HealthResource{},
		Rand:     rng,
		Status:   status.NewRegistry(),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return w
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Component.removeFromAll(e)
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Component.clearAll()
}

// EntityCount returns a coarse count of live component instances
func (w *World) EntityCount() int {
	return w.Component.liveCount()
}

// AddSystem registers a system, kept sorted by priority
func (w *World) AddSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, s)

	// Insertion sort, small N
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() > w.systems[i].Priority() {
			w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
		}
	}

	if h, ok := s.(EventHandler); ok {
		for _, t := range h.EventTypes() {
			w.handlers[t] = append(w.handlers[t], h)
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller holds the update
// lock via RunSafe
func (w *World) UpdateLocked() {
	for _, s := range w.Systems() {
		s.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent queues an event from any goroutine
func (w *World) PushEvent(t event.Type, payload any) {
	w.eventQueue.Push(event.Event{
		Type:    t,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// DispatchEventsLocked drains the queue and routes events to handler
// systems in FIFO order. Caller holds the update lock.
func (w *World) DispatchEventsLocked() {
	for _, ev := range w.eventQueue.Consume() {
		for _, h := range w.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// advanceFrame bumps the tick counter; called by the FrameDriver
func (w *World) advanceFrame() int64 {
	return w.frame.Add(1)
}
