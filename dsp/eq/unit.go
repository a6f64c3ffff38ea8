package eq

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// FilterType tags the functional role of a filter unit.
type FilterType int

const (
	// FilterHighpass removes content below the cutoff.
	FilterHighpass FilterType = iota
	// FilterLowpass removes content above the cutoff.
	FilterLowpass
	// FilterPeak boosts or cuts a band around the center frequency.
	FilterPeak
)

// Stability bounds for the normalized cutoff (fraction of the sample
// rate) and the quality factor. Frequencies are clamped into this range
// before coefficient design; near DC or Nyquist the RBJ designs become
// numerically singular.
const (
	minNormalizedFreq = 0.0005
	maxNormalizedFreq = 0.42

	minQ = 0.5
	maxQ = 1.0
)

// Unit is a single second-order filter section together with the raw
// control values it was derived from. Units are stored by value inside
// the [Bank]; they are never shared and never reallocated after
// construction.
//
// Changing frequency, Q, or gain recomputes the coefficients but leaves
// the two delay registers untouched, so a running signal passes through
// a parameter change without a discontinuity.
type Unit struct {
	section biquad.Section

	typ        FilterType
	freqHz     float64 // raw requested frequency in Hz
	q          float64
	gainDB     float64 // peak units only
	enabled    bool
	sampleRate float64
}

// Configure sets all control values at once and derives the coefficients.
// The delay state is preserved.
func (u *Unit) Configure(typ FilterType, freqHz, q, gainDB, sampleRate float64) {
	u.typ = typ
	u.freqHz = freqHz
	u.q = q
	u.gainDB = gainDB

	if sampleRate > 0 {
		u.sampleRate = sampleRate
	}

	u.update()
}

// Type returns the functional role of the unit.
func (u *Unit) Type() FilterType { return u.typ }

// SetFrequency updates the cutoff/center frequency (Hz) and recomputes
// the coefficients without resetting the delay state.
func (u *Unit) SetFrequency(freqHz float64) {
	u.freqHz = freqHz
	u.update()
}

// Frequency returns the raw requested frequency in Hz (before clamping).
func (u *Unit) Frequency() float64 { return u.freqHz }

// NormalizedFrequency returns the effective cutoff as a fraction of the
// sample rate, after the stability clamp.
func (u *Unit) NormalizedFrequency() float64 {
	return core.Clamp(u.effectiveFreqHz()/u.sampleRate, minNormalizedFreq, maxNormalizedFreq)
}

// SetQ updates the quality factor and recomputes the coefficients
// without resetting the delay state.
func (u *Unit) SetQ(q float64) {
	u.q = q
	u.update()
}

// Q returns the raw requested quality factor (before clamping).
func (u *Unit) Q() float64 { return u.q }

// SetPeakGain updates the gain (dB) of a peak unit, leaving frequency and
// Q untouched. It is a no-op for highpass and lowpass units.
func (u *Unit) SetPeakGain(gainDB float64) {
	if u.typ != FilterPeak {
		return
	}

	u.gainDB = gainDB
	u.update()
}

// PeakGain returns the stored peak gain in dB. The effective gain is
// 0 dB while the unit is disabled.
func (u *Unit) PeakGain() float64 { return u.gainDB }

// SetEnabled switches the unit in or out of the signal path without a
// topology change: a disabled highpass is driven to the minimum cutoff,
// a disabled lowpass to the maximum cutoff, and a disabled peak unit to
// 0 dB effective gain. The delay state stays continuous either way.
func (u *Unit) SetEnabled(enabled bool) {
	u.enabled = enabled
	u.update()
}

// Enabled reports whether the unit is active in the signal path.
func (u *Unit) Enabled() bool { return u.enabled }

// SetSampleRate re-derives the coefficients from the stored raw values
// for a new sample rate. Must not be called concurrently with processing.
func (u *Unit) SetSampleRate(rate float64) {
	if rate <= 0 {
		return
	}

	u.sampleRate = rate
	u.update()
}

// Coefficients returns the currently active transfer coefficients.
func (u *Unit) Coefficients() biquad.Coefficients {
	return u.section.Coefficients
}

// ProcessSample filters one sample. Bounded, allocation-free.
func (u *Unit) ProcessSample(x float64) float64 {
	return u.section.ProcessSample(x)
}

// Reset clears the delay state.
func (u *Unit) Reset() {
	u.section.Reset()
}

// FlushDenormals zeroes decayed delay registers; called between blocks.
func (u *Unit) FlushDenormals() {
	u.section.FlushDenormals()
}

// State returns the delay-line state; used by tests to verify that
// coefficient updates leave it untouched.
func (u *Unit) State() [2]float64 {
	return u.section.State()
}

func (u *Unit) effectiveFreqHz() float64 {
	if !u.enabled {
		switch u.typ {
		case FilterHighpass:
			return minNormalizedFreq * u.sampleRate
		case FilterLowpass:
			return maxNormalizedFreq * u.sampleRate
		case FilterPeak:
			// Disabled peak units keep their frequency; only the
			// effective gain changes.
		}
	}

	return u.freqHz
}

func (u *Unit) update() {
	if u.sampleRate <= 0 {
		return
	}

	norm := core.Clamp(u.effectiveFreqHz()/u.sampleRate, minNormalizedFreq, maxNormalizedFreq)
	freq := norm * u.sampleRate
	q := core.Clamp(u.q, minQ, maxQ)

	var c biquad.Coefficients

	switch u.typ {
	case FilterHighpass:
		c = design.Highpass(freq, q, u.sampleRate)
	case FilterLowpass:
		c = design.Lowpass(freq, q, u.sampleRate)
	case FilterPeak:
		gain := u.gainDB
		if !u.enabled {
			gain = 0
		}

		c = design.Peak(freq, gain, q, u.sampleRate)
	}

	u.section.SetCoefficients(c)
}
