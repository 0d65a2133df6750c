package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"cortexview/core"
)

func TestBufferDepthOrdering(t *testing.T) {
	b := NewBuffer(10, 10)
	style := tcell.StyleDefault

	b.Set(5, 5, 'a', style, 1.0)
	b.Set(5, 5, 'b', style, 0.5) // farther, must lose
	if b.cells[5*10+5].ch != 'a' {
		t.Fatalf("farther write overwrote nearer cell: %c", b.cells[5*10+5].ch)
	}

	b.Set(5, 5, 'c', style, 2.0) // nearer, must win
	if b.cells[5*10+5].ch != 'c' {
		t.Fatalf("nearer write lost: %c", b.cells[5*10+5].ch)
	}

	// Overlay ignores depth entirely
	b.SetOver(5, 5, 'x', style)
	if b.cells[5*10+5].ch != 'x' {
		t.Fatal("overlay write lost")
	}
}

func TestBufferOutOfBoundsIgnored(t *testing.T) {
	b := NewBuffer(4, 4)
	style := tcell.StyleDefault

	// Must not panic
	b.Set(-1, 0, 'a', style, 0)
	b.Set(0, -1, 'a', style, 0)
	b.Set(4, 0, 'a', style, 0)
	b.Set(0, 4, 'a', style, 0)
	b.Line(-5, -5, 10, 10, '/', style, 0)
}

func TestBufferLineEndpoints(t *testing.T) {
	b := NewBuffer(20, 20)
	style := tcell.StyleDefault

	b.Line(2, 3, 15, 11, '-', style, 0)
	if !b.cells[3*20+2].set {
		t.Fatal("line start not drawn")
	}
	if !b.cells[11*20+15].set {
		t.Fatal("line end not drawn")
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(1, 1, 'a', tcell.StyleDefault, 0)
	b.Clear()
	for i := range b.cells {
		if b.cells[i].set {
			t.Fatal("cell survived Clear")
		}
	}
}

func TestViewProjectCentersOrigin(t *testing.T) {
	v := NewView(80, 24, 14)

	x, y, _ := v.Project(core.Vec3{})
	if x != 40 || y != 12 {
		t.Fatalf("origin projects to (%d, %d), want (40, 12)", x, y)
	}

	// +Y is up on screen
	_, up, _ := v.Project(core.Vec3{Y: 5})
	if up >= y {
		t.Fatalf("positive Y projected downward: %d", up)
	}
}

func TestViewRotationChangesDepth(t *testing.T) {
	v := NewView(80, 24, 14)
	p := core.Vec3{X: 10}

	_, _, d0 := v.Project(p)
	v.Rotate(1.5)
	_, _, d1 := v.Project(p)
	if d0 == d1 {
		t.Fatal("rotation did not affect depth")
	}
}
