package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"cortexview/core"
)

// FrameDriver runs the simulation on a fixed tick. Each tick, under
// the world update lock: time advances, queued events dispatch to
// handler systems, then all systems run in priority order. The render
// loop is signalled after the lock is released; no component observes
// a half-updated tick.
type FrameDriver struct {
	world        *World
	tickInterval time.Duration

	nextDeadline time.Time
	lastTick     time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// frameDone signals the render loop that a tick completed.
	// Capacity 1, non-blocking send: a slow renderer drops frames
	// instead of stalling the simulation.
	frameDone chan struct{}

	statTicks    *atomic.Int64
	statEntities *atomic.Int64
}

// NewFrameDriver creates a driver for the given world
func NewFrameDriver(world *World, tickInterval time.Duration) *FrameDriver {
	reg := world.Resource.Status
	return &FrameDriver{
		world:        world,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		frameDone:    make(chan struct{}, 1),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statEntities: reg.Ints.Get("engine.entities"),
	}
}

// FrameDone returns the channel signalled after each completed tick
func (d *FrameDriver) FrameDone() <-chan struct{} {
	return d.frameDone
}

// Start begins the tick loop
func (d *FrameDriver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		core.Go(d.loop)
	}
}

// Stop halts the tick loop and waits for the current tick to finish
func (d *FrameDriver) Stop() {
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
		}
	})
}

func (d *FrameDriver) loop() {
	defer d.wg.Done()

	now := time.Now()
	d.lastTick = now
	d.nextDeadline = now.Add(d.tickInterval)

	timer := time.NewTimer(d.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-timer.C:
		}

		now = time.Now()
		d.Tick(now)

		// Drift correction: schedule against the deadline, but never
		// fall more than two intervals behind
		d.nextDeadline = d.nextDeadline.Add(d.tickInterval)
		if now.Sub(d.nextDeadline) > 2*d.tickInterval {
			d.nextDeadline = now.Add(d.tickInterval)
		}

		sleep := time.Until(d.nextDeadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Tick executes one full simulation step at the given instant.
// Exposed so tests and headless soak runs can drive the world without
// the timer loop.
func (d *FrameDriver) Tick(now time.Time) {
	delta := now.Sub(d.lastTick)
	if delta <= 0 {
		delta = d.tickInterval
	}
	d.lastTick = now

	frame := d.world.advanceFrame()

	d.world.RunSafe(func() {
		tr := d.world.Resource.Time
		tr.Now = now
		tr.Delta = delta
		tr.Frame = frame

		d.world.DispatchEventsLocked()
		d.world.UpdateLocked()
	})

	d.statTicks.Store(frame)
	d.statEntities.Store(int64(d.world.EntityCount()))

	select {
	case d.frameDone <- struct{}{}:
	default:
	}
}
