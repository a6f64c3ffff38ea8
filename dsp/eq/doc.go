// Package eq implements the real-time core of a multiband equalizer and
// gain stage: a serial cascade of biquad filter units (one highpass, a
// fixed number of parametric peak bands, one lowpass) driven by a flat,
// host-automatable parameter vector, with exponential parameter smoothing
// for the output gain and the bypass crossfade.
//
// The [Engine] is the single entry point for hosts. Its Process method is
// real-time safe: no allocation, no locks, no I/O, bounded work per
// sample. Parameter writes may arrive from the audio thread or a control
// thread; see the Engine documentation for the exact contract.
package eq
