package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":      EaseLinear,
		"in-quad":     EaseInQuad,
		"out-quad":    EaseOutQuad,
		"in-out-cube": EaseInOutCubic,
	}
	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("f(0) = %v, 期望 0", got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("f(1) = %v, 期望 1", got)
			}
			if got := fn(-0.5); math.Abs(got) > 1e-9 {
				t.Errorf("f(-0.5) = %v, should clamp to 0", got)
			}
			if got := fn(1.5); math.Abs(got-1) > 1e-9 {
				t.Errorf("f(1.5) = %v, should clamp to 1", got)
			}
		})
	}
}

func TestEaseMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    float64
		expected float64
	}{
		{"linear 中点", EaseLinear, 0.5, 0.5},
		{"in-quad 中点", EaseInQuad, 0.5, 0.25},
		{"out-quad 中点", EaseOutQuad, 0.5, 0.75},
		{"in-out-cubic 四分之一", EaseInOutCubic, 0.25, 0.0625},
		{"in-out-cubic 中点", EaseInOutCubic, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{1, 0, 0.25, 0.75},
		{2, 4, 0.5, 3},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
