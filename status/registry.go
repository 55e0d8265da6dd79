package status

import (
	"strconv"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeySimSteps     = "sim.steps"
	KeyFrameUpdates = "frame.updates"
	KeyFrameRenders = "frame.renders"
	KeySceneBodies  = "scene.bodies"
	KeySceneNodes   = "scene.nodes"
	KeyRunMode      = "testbed.mode"
)

// Registry is the central metrics facade
// Components cache pointers during construction; frame handlers write the atomics directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Snapshot renders every metric as a string, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = strconv.FormatInt(v.Load(), 10)
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out[key] = v.Load()
	})
	return out
}
