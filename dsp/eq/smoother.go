package eq

import "math"

// Smoother is an exponential one-pole smoother that drives a control
// value toward a target without audible stepping. Next advances one
// sample; SetTarget may be called from the real-time thread (plain field
// write, non-blocking); SetSampleRate and ClearToTarget may only run
// while processing is stopped.
type Smoother struct {
	value  float64
	target float64
	coeff  float64
	tau    float64 // time constant in seconds
}

// NewSmoother returns a smoother with the given time constant (seconds).
// A non-positive time constant or sample rate degenerates to an instant
// snap (coefficient 1) rather than dividing by zero.
func NewSmoother(tauSeconds, sampleRate float64) Smoother {
	s := Smoother{tau: tauSeconds}
	s.SetSampleRate(sampleRate)

	return s
}

// SetSampleRate recomputes the decay coefficient
// 1 - exp(-1/(tau*rate)), clamped into [0, 1].
func (s *Smoother) SetSampleRate(rate float64) {
	if s.tau <= 0 || rate <= 0 {
		s.coeff = 1
		return
	}

	coeff := 1 - math.Exp(-1/(s.tau*rate))
	if coeff < 0 {
		coeff = 0
	}

	if coeff > 1 {
		coeff = 1
	}

	s.coeff = coeff
}

// SetTarget sets the value the smoother decays toward.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
}

// Target returns the current target value.
func (s *Smoother) Target() float64 { return s.target }

// Value returns the current smoothed value without advancing.
func (s *Smoother) Value() float64 { return s.value }

// Coefficient returns the per-sample decay coefficient in [0, 1].
func (s *Smoother) Coefficient() float64 { return s.coeff }

// Next advances the smoothed value one sample toward the target and
// returns it. Called exactly once per sample on the real-time thread.
func (s *Smoother) Next() float64 {
	s.value += (s.target - s.value) * s.coeff
	return s.value
}

// ClearToTarget snaps the value to the target instantly. Used on
// activation so a transport restart does not ramp from stale state.
func (s *Smoother) ClearToTarget() {
	s.value = s.target
}
