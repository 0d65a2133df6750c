package render

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"cortexview/constant"
	"cortexview/engine"
	"cortexview/status"
)

// Renderer draws snapshots onto a tcell screen. It runs on its own
// goroutine and touches no live component storage.
type Renderer struct {
	screen tcell.Screen
	buffer *Buffer
	view   *View
	log    *slog.Logger

	shellRadius float64
	color       bool
	overlay     bool
}

func NewRenderer(screen tcell.Screen, shellRadius float64, color bool, log *slog.Logger) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:      screen,
		buffer:      NewBuffer(w, h),
		view:        NewView(w, h, shellRadius),
		log:         log,
		shellRadius: shellRadius,
		color:       color,
	}
}

// HandleResize refits the buffer and view after a terminal resize
func (r *Renderer) HandleResize() {
	r.screen.Sync()
	w, h := r.screen.Size()
	r.buffer.Resize(w, h)
	r.view.Resize(w, h, r.shellRadius)
	r.log.Debug("terminal resized", "width", w, "height", h)
}

// ToggleOverlay flips the status metric overlay
func (r *Renderer) ToggleOverlay() {
	r.overlay = !r.overlay
}

// Draw renders one snapshot
func (r *Renderer) Draw(snap *engine.Snapshot, reg *status.Registry) {
	r.view.Rotate(constant.ViewYawPerFrame)
	r.buffer.Clear()

	for _, s := range snap.Synapses {
		ax, ay, ad := r.view.Project(s.A)
		bx, by, bd := r.view.Project(s.B)
		r.buffer.Line(ax, ay, bx, by, '·', r.synapseStyle(s.Intensity), math.Min(ad, bd)-0.5)
	}

	for _, n := range snap.Neurons {
		x, y, d := r.view.Project(n.Position)
		ch := '·'
		if n.Intensity > 0.5 {
			ch = '•'
		}
		r.buffer.Set(x, y, ch, r.neuronStyle(n.Intensity), d)
	}

	for _, a := range snap.Arcs {
		for i := 0; i+1 < len(a.Points); i++ {
			ax, ay, ad := r.view.Project(a.Points[i])
			bx, by, bd := r.view.Project(a.Points[i+1])
			r.buffer.Line(ax, ay, bx, by, '/', r.arcStyle(a.Opacity), math.Max(ad, bd)+0.2)
		}
	}

	for _, p := range snap.Pulses {
		r.drawPulse(p)
	}

	for _, s := range snap.Signals {
		x, y, d := r.view.Project(s.Position)
		r.buffer.Set(x, y, 'o', r.signalStyle(), d+0.5)
	}

	for _, rv := range snap.Regions {
		x, y, d := r.view.Project(rv.Anchor)
		r.buffer.Set(x, y, '◉', r.regionStyle(rv.Intensity), d+1)
		r.buffer.Text(x+2, y, rv.Name, r.labelStyle(rv.Intensity))
	}

	r.drawHealthBar(snap)
	if r.overlay && reg != nil {
		r.drawOverlay(reg)
	}

	r.buffer.Flush(r.screen)
}

// drawPulse plots a ring of cells around the projected origin
func (r *Renderer) drawPulse(p engine.PulseView) {
	cx, cy, d := r.view.Project(p.Origin)
	ringRadius := p.Radius * p.Scale * constant.PulseMaxScale * r.view.CellsPerUnit
	if ringRadius < 1 {
		return
	}
	style := r.pulseStyle(p.Opacity)
	steps := int(ringRadius * 8)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(math.Cos(a)*ringRadius*2))
		y := cy + int(math.Round(math.Sin(a)*ringRadius))
		r.buffer.Set(x, y, '∘', style, d)
	}
}

func (r *Renderer) drawHealthBar(snap *engine.Snapshot) {
	h := snap.Health
	y := r.view.Height - 1
	line := fmt.Sprintf(" health %5.1f │ mem %5.1f │ trn %5.1f │ con %5.1f │ signals %d │ frame %d ",
		h.Overall, h.Memory, h.Training, h.Connections, snap.SignalCount, snap.Frame)
	r.buffer.Text(0, y, line, r.barStyle(h.Overall))

	barWidth := r.view.Width - len(line) - 2
	if barWidth > 4 {
		filled := int(float64(barWidth) * h.Overall / 100)
		for i := 0; i < barWidth; i++ {
			ch := '░'
			if i < filled {
				ch = '█'
			}
			r.buffer.SetOver(len(line)+1+i, y, ch, r.barStyle(h.Overall))
		}
	}
}

func (r *Renderer) drawOverlay(reg *status.Registry) {
	row := 1
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		r.buffer.Text(1, row, fmt.Sprintf("%-22s %d", key, ptr.Load()), style)
		row++
	})
	reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		r.buffer.Text(1, row, fmt.Sprintf("%-22s %.1f", key, ptr.Get()), style)
		row++
	})
}

func (r *Renderer) synapseStyle(intensity float64) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	if intensity > 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	return tcell.StyleDefault.Foreground(tcell.Color238)
}

func (r *Renderer) neuronStyle(intensity float64) tcell.Style {
	if !r.color {
		if intensity > 0 {
			return tcell.StyleDefault.Bold(true)
		}
		return tcell.StyleDefault
	}
	switch {
	case intensity > 0.66:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case intensity > 0.33:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case intensity > 0:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	default:
		return tcell.StyleDefault.Foreground(tcell.Color240)
	}
}

func (r *Renderer) arcStyle(opacity float64) tcell.Style {
	if !r.color {
		return tcell.StyleDefault.Bold(opacity > 0.5)
	}
	if opacity > 0.5 {
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorOlive)
}

func (r *Renderer) pulseStyle(opacity float64) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	if opacity > 0.5 {
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	}
	return tcell.StyleDefault.Foreground(tcell.Color90)
}

func (r *Renderer) signalStyle() tcell.Style {
	if !r.color {
		return tcell.StyleDefault.Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
}

func (r *Renderer) regionStyle(intensity float64) tcell.Style {
	if !r.color {
		return tcell.StyleDefault.Bold(intensity > 0)
	}
	if intensity > 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorSilver)
}

func (r *Renderer) labelStyle(intensity float64) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	if intensity > 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	return tcell.StyleDefault.Foreground(tcell.Color245)
}

func (r *Renderer) barStyle(overall float64) tcell.Style {
	if !r.color {
		return tcell.StyleDefault
	}
	switch {
	case overall >= 70:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case overall >= 40:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}
