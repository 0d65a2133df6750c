package constant

import "time"

// Engine Timing
const (
	// TickInterval is the simulation update interval (~30 ticks/s)
	TickInterval = 33 * time.Millisecond

	// RenderInterval caps the render loop when the driver is idle
	RenderInterval = 33 * time.Millisecond

	// ViewYawPerFrame is the camera rotation per rendered frame (radians)
	ViewYawPerFrame = 0.004
)

// Event queue sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo (EventQueueSize - 1)
	EventBufferMask = EventQueueSize - 1
)
