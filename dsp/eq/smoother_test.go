package eq

import (
	"math"
	"testing"
)

func TestSmootherCoefficientRange(t *testing.T) {
	s := NewSmoother(0.02, 48000)
	c := s.Coefficient()
	if c <= 0 || c >= 1 {
		t.Fatalf("coefficient = %v, want in (0, 1)", c)
	}
}

func TestSmootherDegenerateCases(t *testing.T) {
	tests := []struct {
		name string
		tau  float64
		rate float64
	}{
		{"zero time constant", 0, 48000},
		{"negative time constant", -1, 48000},
		{"zero sample rate", 0.02, 0},
		{"negative sample rate", 0.02, -48000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoother(tt.tau, tt.rate)
			if got := s.Coefficient(); got != 1 {
				t.Fatalf("coefficient = %v, want 1 (instant snap)", got)
			}

			s.SetTarget(0.75)
			if got := s.Next(); got != 0.75 {
				t.Fatalf("Next() = %v, want instant 0.75", got)
			}
			if math.IsNaN(s.Value()) {
				t.Fatal("degenerate smoother produced NaN")
			}
		})
	}
}

func TestSmootherConvergence(t *testing.T) {
	// Exponential decay property: after 5/coeff steps the remaining
	// error is e^-5 of the initial distance, below 1% of |target|.
	s := NewSmoother(0.02, 48000)
	const target = 2.5
	s.SetTarget(target)

	steps := int(5 / s.Coefficient())

	var got float64
	for range steps {
		got = s.Next()
	}

	if math.Abs(got-target) >= 0.01*math.Abs(target) {
		t.Fatalf("after %d steps: value %v, want within 1%% of %v", steps, got, target)
	}
}

func TestSmootherMonotoneApproach(t *testing.T) {
	s := NewSmoother(0.01, 48000)
	s.SetTarget(1)

	prev := 0.0
	for i := range 1000 {
		v := s.Next()
		if v < prev || v > 1 {
			t.Fatalf("step %d: non-monotone or overshoot: %v after %v", i, v, prev)
		}
		prev = v
	}
}

func TestSmootherClearToTarget(t *testing.T) {
	s := NewSmoother(0.02, 48000)
	s.SetTarget(1)
	s.Next()
	s.SetTarget(-0.5)

	s.ClearToTarget()

	if got := s.Next(); got != -0.5 {
		t.Fatalf("Next() after ClearToTarget = %v, want exactly -0.5", got)
	}
}

func TestSmootherStableAtTarget(t *testing.T) {
	s := NewSmoother(0.02, 48000)
	s.SetTarget(0.25)
	s.ClearToTarget()

	for range 100 {
		if got := s.Next(); got != 0.25 {
			t.Fatalf("settled smoother drifted to %v", got)
		}
	}
}

func TestSmootherSetSampleRateRecomputesCoefficient(t *testing.T) {
	s := NewSmoother(0.02, 48000)
	c48 := s.Coefficient()

	s.SetSampleRate(96000)
	c96 := s.Coefficient()

	if c96 >= c48 {
		t.Fatalf("coefficient did not shrink at higher rate: %v -> %v", c48, c96)
	}

	want := 1 - math.Exp(-1/(0.02*96000))
	if math.Abs(c96-want) > 1e-15 {
		t.Fatalf("coefficient = %v, want %v", c96, want)
	}
}

func TestSmootherSetSampleRatePreservesValue(t *testing.T) {
	s := NewSmoother(0.02, 48000)
	s.SetTarget(1)
	for range 10 {
		s.Next()
	}
	v := s.Value()

	s.SetSampleRate(44100)

	if s.Value() != v {
		t.Fatalf("value changed on sample-rate change: %v -> %v", v, s.Value())
	}
}
