package particle

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"orange", color.NRGBA{R: 255, G: 165, B: 0, A: 255}, false},
		{"Gold", color.NRGBA{R: 255, G: 215, B: 0, A: 255}, false},
		{"#ff8800", color.NRGBA{R: 255, G: 136, B: 0, A: 255}, false},
		{"#f80", color.NRGBA{R: 255, G: 136, B: 0, A: 255}, false},
		{"#ffffff80", color.NRGBA{R: 255, G: 255, B: 255, A: 128}, false},
		{"", color.NRGBA{}, true},
		{"notacolor", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
		{"#ffffffzz", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}
