// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficient design (RBJ
// lowpass, highpass, peaking EQ) lives in dsp/filter/design; the equalizer
// topology built on top of sections lives in dsp/eq.
//
// Block processing dispatches to the best kernel registered for the host
// CPU (generic, AVX2-class, NEON-class); selection happens once on first
// use and is free of locks afterwards.
package biquad
