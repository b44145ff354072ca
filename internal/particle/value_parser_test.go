package particle

import (
	"testing"
)

// TestParseRange tests fixed values and [min max] ranges
func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
		wantErr bool
	}{
		{"Integer", "1500", 1500, 1500, false},
		{"Float", "3.14", 3.14, 3.14, false},
		{"Negative", "-10.5", -10.5, -10.5, false},
		{"Float range", "[0.7 0.9]", 0.7, 0.9, false},
		{"Integer range", "[10 20]", 10, 20, false},
		{"Padded range", "  [ 150   350 ] ", 150, 350, false},
		{"Inverted range kept", "[5 1]", 5, 1, false},
		{"Empty", "", 0, 0, true},
		{"Missing bracket", "[1 2", 0, 0, true},
		{"Three values", "[1 2 3]", 0, 0, true},
		{"Garbage", "fast", 0, 0, true},
		{"Bad max", "[1 x]", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, err := ParseRange(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("ParseRange(%q) = (%v, %v), want (%v, %v)", tt.input, min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

// TestParseCurve tests constant and start/end curves
func TestParseCurve(t *testing.T) {
	tests := []struct {
		input     string
		wantStart float64
		wantEnd   float64
		wantErr   bool
	}{
		{"1 0", 1, 0, false},
		{".5", 0.5, 0.5, false},
		{"0.6 2", 0.6, 2, false},
		{"", 0, 0, true},
		{"1 2 3", 0, 0, true},
		{"a b", 0, 0, true},
	}

	for _, tt := range tests {
		start, end, err := ParseCurve(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCurve(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (start != tt.wantStart || end != tt.wantEnd) {
			t.Errorf("ParseCurve(%q) = (%v, %v), want (%v, %v)", tt.input, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

// TestParseDuration tests the duration keywords
func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"2.5", 2.5, false},
		{"-1", ContinuousDuration, false},
		{"continuous", ContinuousDuration, false},
		{"Infinite", ContinuousDuration, false},
		{"forever", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
