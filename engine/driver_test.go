package engine

import (
	"testing"
	"time"

	"cortexview/core"
	"cortexview/event"
)

type recordingSystem struct {
	priority int
	updates  int
	events   []event.Event
	order    *[]string
	name     string
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update() {
	s.updates++
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}
func (s *recordingSystem) EventTypes() []event.Type {
	return []event.Type{event.TypeComponentActivity}
}
func (s *recordingSystem) HandleEvent(ev event.Event) {
	s.events = append(s.events, ev)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld(core.NewRand(1), time.Second)
	var order []string
	w.AddSystem(&recordingSystem{name: "late", priority: 50, order: &order})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, order: &order})
	w.AddSystem(&recordingSystem{name: "mid", priority: 30, order: &order})

	w.RunSafe(w.UpdateLocked)

	want := []string{"early", "mid", "late"}
	for i, n := range want {
		if order[i] != n {
			t.Fatalf("run order = %v, want %v", order, want)
		}
	}
}

func TestTickDispatchesQueuedEvents(t *testing.T) {
	w := NewWorld(core.NewRand(1), time.Second)
	sys := &recordingSystem{name: "sink", priority: 10}
	w.AddSystem(sys)

	d := NewFrameDriver(w, 33*time.Millisecond)

	w.PushEvent(event.TypeComponentActivity, &event.ComponentActivityPayload{Component: "memory", Intensity: 1})
	w.PushEvent(event.TypeComponentActivity, &event.ComponentActivityPayload{Component: "training", Intensity: 0.5})

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d.Tick(now)

	if len(sys.events) != 2 {
		t.Fatalf("dispatched events = %d, want 2", len(sys.events))
	}
	if sys.updates != 1 {
		t.Fatalf("updates = %d, want 1", sys.updates)
	}
	if w.Resource.Time.Now != now {
		t.Fatalf("time resource not advanced: %v", w.Resource.Time.Now)
	}
	if w.FrameNumber() != 1 {
		t.Fatalf("frame = %d, want 1", w.FrameNumber())
	}

	// Events drain: second tick dispatches nothing new
	d.Tick(now.Add(33 * time.Millisecond))
	if len(sys.events) != 2 {
		t.Fatalf("events redelivered: %d", len(sys.events))
	}
	if w.Resource.Time.Delta != 33*time.Millisecond {
		t.Fatalf("delta = %v", w.Resource.Time.Delta)
	}
}

func TestTickSignalsFrameDone(t *testing.T) {
	w := NewWorld(core.NewRand(1), time.Second)
	d := NewFrameDriver(w, 33*time.Millisecond)

	d.Tick(time.Now())
	select {
	case <-d.FrameDone():
	default:
		t.Fatal("no frame-done signal after tick")
	}

	// A never-drained channel must not block ticking
	d.Tick(time.Now())
	d.Tick(time.Now())
}

func TestStartStopIdempotent(t *testing.T) {
	w := NewWorld(core.NewRand(1), time.Second)
	d := NewFrameDriver(w, time.Millisecond)

	d.Start()
	d.Start()
	time.Sleep(10 * time.Millisecond)
	d.Stop()
	d.Stop()

	if w.FrameNumber() == 0 {
		t.Fatal("driver never ticked")
	}
}
