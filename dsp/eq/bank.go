package eq

import "math"

// Default band layout: peak centers are spaced geometrically across this
// range when the caller does not override them.
const (
	defaultBandLowHz  = 100.0
	defaultBandHighHz = 10000.0

	defaultHighpassHz = 20.0
	defaultLowpassHz  = 20000.0
	defaultQValue     = 1 / math.Sqrt2
)

// Bank is a fixed serial cascade of filter units: one highpass, a fixed
// number of parametric peak bands in ascending index order, then one
// lowpass. The order is part of the contract — it is identical on every
// call and never changes at runtime. Units are held by value; updating
// one unit's coefficients never touches another unit's delay state.
type Bank struct {
	highpass Unit
	bands    []Unit
	lowpass  Unit
}

// NewBank builds a bank with numBands peak bands at the given sample
// rate. Band centers are spaced geometrically between 100 Hz and 10 kHz;
// the highpass defaults to 20 Hz and the lowpass to 20 kHz, all enabled
// with 0 dB band gain, which makes the initial bank transparent.
func NewBank(numBands int, sampleRate float64) *Bank {
	if numBands < 1 {
		numBands = 1
	}

	b := &Bank{bands: make([]Unit, numBands)}

	b.highpass.Configure(FilterHighpass, defaultHighpassHz, defaultQValue, 0, sampleRate)
	b.highpass.SetEnabled(true)

	for i := range b.bands {
		b.bands[i].Configure(FilterPeak, DefaultBandFrequency(i, numBands), defaultQValue, 0, sampleRate)
		b.bands[i].SetEnabled(true)
	}

	b.lowpass.Configure(FilterLowpass, defaultLowpassHz, defaultQValue, 0, sampleRate)
	b.lowpass.SetEnabled(true)

	return b
}

// DefaultBandFrequency returns the default center frequency (Hz) of band
// i out of numBands, spaced geometrically across the default band range.
func DefaultBandFrequency(i, numBands int) float64 {
	if numBands <= 1 {
		return math.Sqrt(defaultBandLowHz * defaultBandHighHz)
	}

	ratio := defaultBandHighHz / defaultBandLowHz
	exp := float64(i) / float64(numBands-1)

	return defaultBandLowHz * math.Pow(ratio, exp)
}

// ProcessSample pushes one sample through highpass, then the peak bands
// in ascending index order, then the lowpass.
func (b *Bank) ProcessSample(x float64) float64 {
	x = b.highpass.ProcessSample(x)
	for i := range b.bands {
		x = b.bands[i].ProcessSample(x)
	}

	return b.lowpass.ProcessSample(x)
}

// Highpass returns the highpass unit.
func (b *Bank) Highpass() *Unit { return &b.highpass }

// Lowpass returns the lowpass unit.
func (b *Bank) Lowpass() *Unit { return &b.lowpass }

// Band returns the i-th peak band. The index must be in [0, NumBands).
func (b *Bank) Band(i int) *Unit { return &b.bands[i] }

// NumBands returns the number of peak bands.
func (b *Bank) NumBands() int { return len(b.bands) }

// SetSampleRate re-derives every unit's coefficients from its stored raw
// frequency for the new rate. Must not run concurrently with processing.
func (b *Bank) SetSampleRate(rate float64) {
	b.highpass.SetSampleRate(rate)
	for i := range b.bands {
		b.bands[i].SetSampleRate(rate)
	}

	b.lowpass.SetSampleRate(rate)
}

// Reset clears the delay state of every unit.
func (b *Bank) Reset() {
	b.highpass.Reset()
	for i := range b.bands {
		b.bands[i].Reset()
	}

	b.lowpass.Reset()
}

// FlushDenormals zeroes decayed delay registers across all units; called
// once per processed block.
func (b *Bank) FlushDenormals() {
	b.highpass.FlushDenormals()
	for i := range b.bands {
		b.bands[i].FlushDenormals()
	}

	b.lowpass.FlushDenormals()
}
