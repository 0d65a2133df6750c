// Package status provides a lock-free metrics registry. Systems cache
// metric pointers during construction; update loops write directly to
// atomics, and the render overlay reads them without coordination.
package status

import "sync/atomic"

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
