package event

import (
	"sync/atomic"

	"cortexview/constant"
)

// Queue is a lock-free MPSC ring buffer for simulation events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (tick loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [constant.EventQueueSize]Event
	published [constant.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                        // Read index
	tail      atomic.Uint64                        // Write index
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using lock-free CAS with published flags.
// Safe for concurrent producers. O(1) amortized.
func (q *Queue) Push(ev Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constant.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > constant.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-constant.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single-consumer design (tick loop). Checks published flags for safety.
func (q *Queue) Consume() []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constant.EventQueueSize {
			maxAvailable = constant.EventQueueSize
			currentHead = currentTail - constant.EventQueueSize
		}

		result := make([]Event, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constant.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
