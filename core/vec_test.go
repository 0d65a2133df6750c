package core

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 8}

	if got := a.Add(b); got != (Vec3{X: 5, Y: 8, Z: 11}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := (Vec3{X: 3, Y: 4, Z: 0}).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Dist(a); got != 0 {
		t.Errorf("Dist to self = %v", got)
	}
}

func TestNormalized(t *testing.T) {
	v := Vec3{X: 10, Y: 0, Z: 0}.Normalized()
	if v != (Vec3{X: 1, Y: 0, Z: 0}) {
		t.Errorf("Normalized = %v", v)
	}

	// Zero vector must not produce NaN
	z := Vec3{}.Normalized()
	if math.IsNaN(z.X) || math.IsNaN(z.Y) || math.IsNaN(z.Z) {
		t.Errorf("Normalized zero vector = %v", z)
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 10, Y: 20, Z: -10}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp t=0 = %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp t=1 = %v", got)
	}
	if got := Lerp(a, b, 0.5); got != (Vec3{X: 5, Y: 10, Z: -5}) {
		t.Errorf("Lerp t=0.5 = %v", got)
	}
}

func TestQuadBezierEndpoints(t *testing.T) {
	p0 := Vec3{X: 0, Y: 0, Z: 0}
	p1 := Vec3{X: 5, Y: 10, Z: 0}
	p2 := Vec3{X: 10, Y: 0, Z: 0}

	if got := QuadBezier(p0, p1, p2, 0); got != p0 {
		t.Errorf("bezier t=0 = %v, want %v", got, p0)
	}
	if got := QuadBezier(p0, p1, p2, 1); got != p2 {
		t.Errorf("bezier t=1 = %v, want %v", got, p2)
	}

	// Midpoint pulls toward the control point
	mid := QuadBezier(p0, p1, p2, 0.5)
	if mid.Y <= 0 {
		t.Errorf("bezier t=0.5 Y = %v, want > 0", mid.Y)
	}
}

func TestRandJitterRange(t *testing.T) {
	rng := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := rng.Jitter(2.5)
		if v < -2.5 || v >= 2.5 {
			t.Fatalf("Jitter out of range: %v", v)
		}
	}
}

func TestRandRange(t *testing.T) {
	rng := NewRand(2)
	for i := 0; i < 1000; i++ {
		v := rng.Range(0.75, 1.25)
		if v < 0.75 || v >= 1.25 {
			t.Fatalf("Range out of bounds: %v", v)
		}
	}
}

func TestRandChanceExtremes(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestRandUnitSphere(t *testing.T) {
	rng := NewRand(4)
	for i := 0; i < 1000; i++ {
		v := rng.UnitSphere()
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("UnitSphere length = %v", v.Length())
		}
	}
}

func TestRandReproducible(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed diverged")
		}
	}
}
