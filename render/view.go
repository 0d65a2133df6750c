package render

import (
	"math"

	"cortexview/core"
)

// View projects simulation space onto the terminal cell grid with a
// slowly rotating yaw. Terminal cells are roughly twice as tall as
// wide, so X gets double scale.
type View struct {
	Width, Height int

	// Yaw is the current rotation around the vertical axis
	Yaw float64

	// CellsPerUnit scales simulation units to rows
	CellsPerUnit float64
}

// NewView creates a view fitted to the given terminal size so the
// neuron shell stays on screen
func NewView(width, height int, shellRadius float64) *View {
	fit := float64(height) / (2.2 * 2 * shellRadius)
	if fit <= 0 {
		fit = 1
	}
	return &View{
		Width:        width,
		Height:       height,
		CellsPerUnit: fit * 2,
	}
}

// Resize refits the view to a new terminal size
func (v *View) Resize(width, height int, shellRadius float64) {
	fitted := NewView(width, height, shellRadius)
	fitted.Yaw = v.Yaw
	*v = *fitted
}

// Rotate advances the yaw
func (v *View) Rotate(delta float64) {
	v.Yaw += delta
	if v.Yaw > 2*math.Pi {
		v.Yaw -= 2 * math.Pi
	}
}

// Project maps a simulation point to cell coordinates plus a depth
// value (positive = nearer the viewer)
func (v *View) Project(p core.Vec3) (x, y int, depth float64) {
	sin, cos := math.Sincos(v.Yaw)
	rx := p.X*cos - p.Z*sin
	depth = p.X*sin + p.Z*cos

	x = v.Width/2 + int(math.Round(rx*v.CellsPerUnit*2))
	y = v.Height/2 - int(math.Round(p.Y*v.CellsPerUnit))
	return x, y, depth
}
