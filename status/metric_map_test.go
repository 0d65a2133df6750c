package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get("engine.ticks")
	b := m.Get("engine.ticks")
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}

	a.Store(5)
	if b.Load() != 5 {
		t.Fatal("cached pointer does not observe writes")
	}
	if m.Count() != 1 {
		t.Fatalf("Count = %d", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"zebra", "alpha", "mid"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	want := []string{"alpha", "mid", "zebra"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Range order = %v", keys)
		}
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get("shared").Load(); got != 1600 {
		t.Fatalf("shared counter = %d, want 1600", got)
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat

	if f.Get() != 0 {
		t.Fatalf("zero value = %v", f.Get())
	}

	f.Set(73.5)
	if f.Get() != 73.5 {
		t.Fatalf("Get after Set = %v", f.Get())
	}

	if got := f.Add(-3.5); got != 70 {
		t.Fatalf("Add = %v", got)
	}
	if f.Get() != 70 {
		t.Fatalf("Get after Add = %v", f.Get())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := f.Get(); got != 8000 {
		t.Fatalf("concurrent adds = %v, want 8000", got)
	}
}
