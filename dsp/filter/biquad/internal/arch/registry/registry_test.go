package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestLookupPrefersHigherPriority(t *testing.T) {
	reg := &KernelRegistry{}
	reg.Register(Kernel{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(Kernel{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(Kernel{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	k := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if k == nil || k.Name != "avx2" {
		t.Fatalf("expected avx2, got %#v", k)
	}

	k = reg.Lookup(cpu.Features{HasSSE2: true})
	if k == nil || k.Name != "sse2" {
		t.Fatalf("expected sse2, got %#v", k)
	}

	k = reg.Lookup(cpu.Features{})
	if k == nil || k.Name != "generic" {
		t.Fatalf("expected generic fallback, got %#v", k)
	}
}

func TestLookupRegistrationOrderIndependent(t *testing.T) {
	reg := &KernelRegistry{}
	reg.Register(Kernel{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(Kernel{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})

	k := reg.Lookup(cpu.Features{})
	if k == nil || k.Name != "generic" {
		t.Fatalf("expected generic, got %#v", k)
	}
}

func TestLookupEmptyRegistry(t *testing.T) {
	reg := &KernelRegistry{}
	if k := reg.Lookup(cpu.Features{HasAVX2: true}); k != nil {
		t.Fatalf("expected nil from empty registry, got %#v", k)
	}
}

func TestReset(t *testing.T) {
	reg := &KernelRegistry{}
	reg.Register(Kernel{Name: "generic", SIMDLevel: cpu.SIMDNone})

	reg.Reset()

	if got := len(reg.List()); got != 0 {
		t.Fatalf("registry not empty after Reset: %d entries", got)
	}
}
