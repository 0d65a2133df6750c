// Package telemetry samples host CPU and memory usage and feeds them
// into the simulation as component activity, giving the scene a live
// pulse even without the observed application attached.
package telemetry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"cortexview/config"
	"cortexview/core"
	"cortexview/engine"
	"cortexview/event"
)

// Sampler polls host metrics on its own goroutine and pushes activity
// events; nothing here runs on the tick thread.
type Sampler struct {
	cfg   config.TelemetryConfig
	world *engine.World
	log   *slog.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSampler creates a host metrics sampler
func NewSampler(cfg config.TelemetryConfig, world *engine.World, log *slog.Logger) *Sampler {
	return &Sampler{
		cfg:      cfg,
		world:    world,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sampling loop
func (s *Sampler) Start() {
	s.wg.Add(1)
	core.Go(s.loop)
}

// Stop halts the sampling loop
func (s *Sampler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}

func (s *Sampler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.SampleInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sample()
		}
	}
}

// sample reads host metrics and emits activity scaled to the load.
// Read errors are logged and skipped; the next tick tries again.
func (s *Sampler) sample() {
	if usage, err := cpu.Percent(0, false); err == nil && len(usage) > 0 {
		s.world.PushEvent(event.TypeComponentActivity, &event.ComponentActivityPayload{
			Component: "controller",
			Intensity: usage[0] / 100,
		})
	} else if err != nil {
		s.log.Debug("cpu sample failed", "error", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.world.PushEvent(event.TypeComponentActivity, &event.ComponentActivityPayload{
			Component: "memory",
			Intensity: vm.UsedPercent / 100,
		})
	} else {
		s.log.Debug("memory sample failed", "error", err)
	}
}
