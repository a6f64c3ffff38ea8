// Package registry holds the per-architecture biquad block kernels and
// selects the best one for the host CPU at runtime.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// BlockFunc processes buf in-place with one biquad section and returns the
// updated delay-line state.
type BlockFunc func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// Kernel is one registered block-processing implementation.
type Kernel struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Run       BlockFunc
}

// KernelRegistry stores the available implementations. Registration
// happens from package init functions; Lookup is called once per process.
type KernelRegistry struct {
	mu      sync.RWMutex
	kernels []Kernel
	sorted  bool
}

// Global is the default biquad kernel registry.
var Global = &KernelRegistry{}

// Register adds a kernel. Higher Priority wins when multiple kernels are
// supported by the host CPU.
func (r *KernelRegistry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kernels = append(r.kernels, k)
	r.sorted = false
}

// Lookup returns the highest-priority kernel supported by features,
// or nil if none is registered.
func (r *KernelRegistry) Lookup(features cpu.Features) *Kernel {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.kernels {
		k := &r.kernels[i]
		if cpu.Supports(features, k.SIMDLevel) {
			return k
		}
	}

	return nil
}

func (r *KernelRegistry) sortByPriority() {
	// Insertion sort; the registry holds a handful of entries at most.
	for i := 1; i < len(r.kernels); i++ {
		key := r.kernels[i]
		j := i - 1
		for j >= 0 && r.kernels[j].Priority < key.Priority {
			r.kernels[j+1] = r.kernels[j]
			j--
		}
		r.kernels[j+1] = key
	}
}

// List returns a copy of the registered kernels for tests and debugging.
func (r *KernelRegistry) List() []Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kernels := make([]Kernel, len(r.kernels))
	copy(kernels, r.kernels)

	return kernels
}

// Reset clears all kernels. Intended for tests.
func (r *KernelRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kernels = nil
	r.sorted = false
}
