package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"at lower bound", 0, 0, 1, 0},
		{"at upper bound", 1, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
		{"negative range", -5, -10, -1, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("values within eps reported unequal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("distant values reported equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero comparison with default eps failed")
	}
	// Relative comparison for large magnitudes.
	if !NearlyEqual(1e15, 1e15+1, 1e-12) {
		t.Fatal("large values within relative eps reported unequal")
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-31); got != 0 {
		t.Fatalf("FlushDenormals(1e-31) = %v, want 0", got)
	}
	if got := FlushDenormals(-1e-31); got != 0 {
		t.Fatalf("FlushDenormals(-1e-31) = %v, want 0", got)
	}
	if got := FlushDenormals(1e-20); got != 1e-20 {
		t.Fatalf("FlushDenormals(1e-20) = %v, want unchanged", got)
	}
	if got := FlushDenormals(-0.5); got != -0.5 {
		t.Fatalf("FlushDenormals(-0.5) = %v, want unchanged", got)
	}
}

func TestDBToLinear(t *testing.T) {
	tests := []struct {
		db   float64
		want float64
	}{
		{0, 1},
		{20, 10},
		{-20, 0.1},
		{6.0205999132796239, 2},
	}
	for _, tt := range tests {
		got := DBToLinear(tt.db)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
		}
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}
	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}
}

func TestDBLinearRoundTrip(t *testing.T) {
	for _, db := range []float64{-90, -24, -6, 0, 6, 24, 30} {
		back := LinearToDB(DBToLinear(db))
		if math.Abs(back-db) > 1e-9 {
			t.Fatalf("round trip %v dB -> %v dB", db, back)
		}
	}
}
