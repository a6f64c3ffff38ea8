package biquad

import (
	"sync"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns unity-gain coefficients (B0=1, all else 0).
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing. The zero value is a
// silent filter; use [NewSection] or assign Coefficients directly.
type Section struct {
	Coefficients

	d0, d1 float64
}

var (
	blockKernel     registry.BlockFunc
	blockKernelOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero delay state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// SetCoefficients replaces the transfer coefficients while preserving the
// delay-line state. This is the per-parameter-change update path: keeping
// d0/d1 avoids the output discontinuity a state reset would cause.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one input sample and returns the output.
//
// One multiply-accumulate chain per call, no branches, no allocation;
// safe for per-sample use on a real-time thread.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	blockKernelOnce.Do(selectBlockKernel)

	coeffs := registry.Coefficients{
		B0: s.B0,
		B1: s.B1,
		B2: s.B2,
		A1: s.A1,
		A2: s.A2,
	}

	s.d0, s.d1 = blockKernel(coeffs, s.d0, s.d1, buf)
}

func selectBlockKernel() {
	kernel := registry.Global.Lookup(cpu.DetectFeatures())
	if kernel == nil {
		panic("biquad: no block kernel registered (missing generic fallback?)")
	}

	if kernel.Run == nil {
		panic("biquad: selected block kernel has no Run function")
	}

	blockKernel = kernel.Run
}

// ProcessBlockTo filters src into dst using the same kernel as
// [Section.ProcessBlock]. dst must be at least as long as src. Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	dst = dst[:len(src)]
	copy(dst, src)
	s.ProcessBlock(dst)
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}

// FlushDenormals zeroes delay registers that have decayed into the
// denormal range. Called between blocks to keep subnormal arithmetic out
// of the per-sample path.
func (s *Section) FlushDenormals() {
	const epsilon = 1e-30
	if s.d0 > -epsilon && s.d0 < epsilon {
		s.d0 = 0
	}

	if s.d1 > -epsilon && s.d1 < epsilon {
		s.d1 = 0
	}
}
