package event

import (
	"sync"
	"testing"

	"cortexview/constant"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	if got := q.Consume(); got != nil {
		t.Fatalf("Consume on empty queue = %v", got)
	}

	for i := 0; i < 10; i++ {
		q.Push(Event{Type: TypeComponentActivity, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("consumed %d events, want 10", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Fatalf("event %d out of order: frame %d", i, ev.Frame)
		}
	}

	if got := q.Consume(); got != nil {
		t.Fatalf("second Consume = %v, want nil", got)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()

	total := constant.EventQueueSize + 50
	for i := 0; i < total; i++ {
		q.Push(Event{Type: TypeComponentActivity, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) == 0 || len(events) > constant.EventQueueSize {
		t.Fatalf("consumed %d events, want at most %d", len(events), constant.EventQueueSize)
	}

	// The newest event always survives an overflow
	last := events[len(events)-1]
	if last.Frame != int64(total-1) {
		t.Fatalf("newest event lost: last frame %d", last.Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 16 // stays under capacity so nothing drops

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: TypeComponentActivity})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Fatalf("consumed %d events, want %d", len(events), producers*perProducer)
	}
}
