package score

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"several", []float64{1, 2, 3}, 2},
		{"negative", []float64{-2, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.xs); got != tt.expected {
				t.Errorf("Mean(%v) = %f, want %f", tt.xs, got, tt.expected)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		expected float64
		delta    float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{5}, 0, 0},
		{"uniform", []float64{3, 3, 3}, 0, 0.0001},
		// population form: sqrt(2/3)
		{"one two three", []float64{1, 2, 3}, 0.8165, 0.0001},
		{"pair", []float64{0, 2}, 1, 0.0001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StdDev(tt.xs)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("StdDev(%v) = %f, want %f (±%f)", tt.xs, got, tt.expected, tt.delta)
			}
		})
	}
}
