// Package response measures magnitude frequency responses from impulse
// responses. It is an offline verification tool (tests, CLI rendering),
// not part of the real-time path, so it may allocate and return errors.
package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude computes the single-sided magnitude spectrum of an impulse
// response. It returns the bin center frequencies in Hz and the linear
// magnitudes, one pair per bin from DC up to and including Nyquist. The
// impulse response is zero-padded to the next power of two.
func Magnitude(ir []float64, sampleRate float64) (freqs, mags []float64, err error) {
	if len(ir) == 0 {
		return nil, nil, fmt.Errorf("response: empty impulse response")
	}

	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("response: sample rate must be > 0: %v", sampleRate)
	}

	fftSize := nextPowerOf2(len(ir))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range ir {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	mags = make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	freqs = make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * sampleRate / float64(fftSize)
	}

	return freqs, mags, nil
}

// MagnitudeDB is like [Magnitude] but returns the magnitudes in dB.
// Zero-magnitude bins map to -Inf.
func MagnitudeDB(ir []float64, sampleRate float64) (freqs, mags []float64, err error) {
	freqs, mags, err = Magnitude(ir, sampleRate)
	if err != nil {
		return nil, nil, err
	}

	for i, m := range mags {
		if m == 0 {
			mags[i] = math.Inf(-1)
			continue
		}

		mags[i] = 20 * math.Log10(m)
	}

	return freqs, mags, nil
}

// MagnitudeAt returns the linear magnitude at the bin closest to freqHz.
// The frequency resolution is sampleRate divided by the padded FFT size,
// so longer impulse responses give finer answers.
func MagnitudeAt(ir []float64, freqHz, sampleRate float64) (float64, error) {
	if freqHz < 0 || freqHz > sampleRate/2 {
		return 0, fmt.Errorf("response: frequency %v outside [0, Nyquist]", freqHz)
	}

	freqs, mags, err := Magnitude(ir, sampleRate)
	if err != nil {
		return 0, err
	}

	// A one-sample impulse response yields a single DC bin; it is the
	// nearest bin to every frequency.
	if len(freqs) < 2 {
		return mags[0], nil
	}

	binWidth := freqs[1] - freqs[0]
	bin := int(math.Round(freqHz / binWidth))

	if bin >= len(mags) {
		bin = len(mags) - 1
	}

	return mags[bin], nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
