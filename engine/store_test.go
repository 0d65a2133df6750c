package engine

import (
	"testing"

	"cortexview/component"
	"cortexview/core"
)

type testComp struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[testComp]()
	e := core.Entity(1)

	if _, ok := s.Get(e); ok {
		t.Fatal("Get on empty store returned ok")
	}

	s.Set(e, testComp{Value: 7})
	got, ok := s.Get(e)
	if !ok || got.Value != 7 {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	// Overwrite must not duplicate the entity
	s.Set(e, testComp{Value: 9})
	if s.Count() != 1 {
		t.Fatalf("Count after overwrite = %d", s.Count())
	}
	got, _ = s.Get(e)
	if got.Value != 9 {
		t.Fatalf("overwritten value = %d", got.Value)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore[testComp]()
	a, b, c := core.Entity(1), core.Entity(2), core.Entity(3)
	s.Set(a, testComp{Value: 1})
	s.Set(b, testComp{Value: 2})
	s.Set(c, testComp{Value: 3})

	s.Remove(b)
	if s.Has(b) {
		t.Fatal("Has after Remove")
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}

	// Removing a missing entity is a no-op
	s.Remove(core.Entity(99))
	if s.Count() != 2 {
		t.Fatalf("Count after no-op remove = %d", s.Count())
	}

	seen := map[core.Entity]bool{}
	for _, e := range s.All() {
		seen[e] = true
	}
	if !seen[a] || !seen[c] || seen[b] {
		t.Fatalf("All = %v", seen)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testComp]()
	for i := 1; i <= 5; i++ {
		s.Set(core.Entity(i), testComp{Value: i})
	}
	s.Clear()
	if s.Count() != 0 || len(s.All()) != 0 {
		t.Fatalf("store not empty after Clear: %d", s.Count())
	}
}

func TestWorldEntityLifecycle(t *testing.T) {
	w := NewWorld(core.NewRand(1), 0)

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	if e1 == e2 {
		t.Fatal("duplicate entity ids")
	}
	if e1 == core.None || e2 == core.None {
		t.Fatal("CreateEntity returned None")
	}

	w.Component.Neuron.Set(e1, component.NeuronComponent{})
	w.Component.Signal.Set(e1, component.SignalComponent{})
	w.DestroyEntity(e1)

	if w.Component.Neuron.Has(e1) || w.Component.Signal.Has(e1) {
		t.Fatal("DestroyEntity left components behind")
	}
}
