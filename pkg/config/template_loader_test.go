package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/sparkfx/internal/particle"
)

func TestFromSpec(t *testing.T) {
	drag := 0.9
	spec := particle.EmitterSpec{
		Name:     "ember",
		Duration: "continuous",
		Rate:     15,
		Speed:    "[20 60]",
		Life:     "[1 2]",
		Spin:     "45",
		Colors:   []string{"orangered", "#ffcc00"},
		Alpha:    "1 0",
		Ease:     "ease-out",
		Drag:     &drag,
		Blend:    "additive",
		Glow:     true,
	}

	tpl, err := FromSpec(spec)
	if err != nil {
		t.Fatalf("FromSpec: %v", err)
	}
	if !tpl.IsContinuous() || tpl.Rate != 15 {
		t.Errorf("expected continuous at 15/s, got duration=%v rate=%v", tpl.Duration, tpl.Rate)
	}
	if tpl.Speed != (Range{Min: 20, Max: 60}) || tpl.RotationSpeed != Fixed(45) {
		t.Errorf("ranges decoded wrong: speed=%+v spin=%+v", tpl.Speed, tpl.RotationSpeed)
	}
	if tpl.AlphaStart != 1 || tpl.AlphaEnd != 0 || tpl.ScaleStart != 1 || tpl.ScaleEnd != 1 {
		t.Errorf("curves decoded wrong: %+v", tpl)
	}
	if tpl.Drag != 0.9 || tpl.Mass != 1 || tpl.Blend != BlendAdditive || tpl.Ease != EaseOut {
		t.Errorf("physics/blend decoded wrong: %+v", tpl)
	}
	if tpl.GlowScale != 2 {
		t.Errorf("expected default glow scale 2, got %v", tpl.GlowScale)
	}
	if len(tpl.Colors) != 2 || tpl.Colors[1].G != 0xcc {
		t.Errorf("colors decoded wrong: %v", tpl.Colors)
	}
}

func TestFromSpec_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec particle.EmitterSpec
	}{
		{"bad range", particle.EmitterSpec{Name: "a", Burst: 1, Speed: "[1"}},
		{"bad color", particle.EmitterSpec{Name: "a", Burst: 1, Colors: []string{"nope"}}},
		{"bad blend", particle.EmitterSpec{Name: "a", Burst: 1, Blend: "multiply"}},
		{"inverted life", particle.EmitterSpec{Name: "a", Burst: 1, Life: "[2 1]"}},
		{"negative duration", particle.EmitterSpec{Name: "a", Burst: 1, Duration: "-3"}},
		{"nan life", particle.EmitterSpec{Name: "a", Burst: 1, Life: "NaN"}},
		{"inf speed", particle.EmitterSpec{Name: "a", Burst: 1, Speed: "[0 Inf]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSpec(tt.spec)
			if !errors.Is(err, ErrInvalidTemplate) {
				t.Errorf("expected ErrInvalidTemplate, got %v", err)
			}
		})
	}
}

// TestLoadEmitterTemplates_BundledFile 验证仓库自带的模板文件可以加载
func TestLoadEmitterTemplates_BundledFile(t *testing.T) {
	templates, err := LoadEmitterTemplates("../../data/emitters.yaml")
	if err != nil {
		t.Fatalf("failed to load bundled templates: %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("bundled template file is empty")
	}
	for _, tpl := range templates {
		if err := tpl.Validate(); err != nil {
			t.Errorf("%s: %v", tpl.Name, err)
		}
	}
}

func TestLoadEmitterTemplates_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "emitters:\n  - name: broken\n    duration: continuous\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadEmitterTemplates(path); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("expected ErrInvalidTemplate for continuous emitter without rate, got %v", err)
	}
}
