// Package status is a small metrics registry shared by the frame loop, the velocity
// controller and the HUD. Writers cache metric pointers once and update atomics directly.
package status

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Well-known metric keys
const (
	Frames        = "render.frames"
	DotsPainted   = "render.dots_painted"
	RegionsFilled = "render.regions_filled"
	PointerMoves  = "input.pointer_moves"
	PointerLeaves = "input.pointer_leaves"
	DecayTicks    = "velocity.decay_ticks"
	DecayCanceled = "velocity.decay_canceled"
	VelocityY     = "velocity.vy"
	VelocityZ     = "velocity.vz"
	FrameMillis   = "loop.frame_ms"
)

// Float is an atomic float64 stored as bits, zero value is 0.0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// metricMap lazily allocates one metric per key
// Registration locks; cached pointers are lock-free afterwards
type metricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func (m *metricMap[T]) get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	if m.items == nil {
		m.items = make(map[string]*T)
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

func (m *metricMap[T]) keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Registry holds integer counters and float gauges
type Registry struct {
	ints   metricMap[atomic.Int64]
	floats metricMap[Float]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Int returns the counter for key, creating it on first use
func (r *Registry) Int(key string) *atomic.Int64 {
	return r.ints.get(key)
}

// Float returns the gauge for key, creating it on first use
func (r *Registry) Float(key string) *Float {
	return r.floats.get(key)
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return len(r.ints.keys()) + len(r.floats.keys())
}

// Summary renders all metrics as sorted key=value pairs
func (r *Registry) Summary() string {
	var parts []string
	for _, k := range r.ints.keys() {
		parts = append(parts, fmt.Sprintf("%s=%d", k, r.Int(k).Load()))
	}
	for _, k := range r.floats.keys() {
		parts = append(parts, fmt.Sprintf("%s=%.5f", k, r.Float(k).Get()))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
