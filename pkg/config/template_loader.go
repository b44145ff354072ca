package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/sparkfx/internal/particle"
)

// FromSpec converts a decoded template file entry into a validated template.
//
// Omitted fields take these defaults: life 1s, size 4px, scale and alpha
// curves "1 1", drag 1, mass 1, glow scale 2, one white color.
func FromSpec(spec particle.EmitterSpec) (*EmitterTemplate, error) {
	t := &EmitterTemplate{
		Name:        spec.Name,
		BurstCount:  spec.Burst,
		Rate:        spec.Rate,
		Direction:   spec.Direction,
		Spread:      spec.Spread,
		SpawnRadius: spec.SpawnRadius,
		Life:        Fixed(1),
		Size:        Fixed(4),
		Gravity:     spec.Gravity,
		Wind:        spec.Wind,
		Drag:        1,
		Bounce:      spec.Bounce,
		Mass:        1,
		Trail:       spec.Trail,
		Glow:        spec.Glow,
		GlowScale:   spec.GlowScale,
		MaxActive:   spec.MaxActive,
		ScaleStart:  1,
		ScaleEnd:    1,
		AlphaStart:  1,
		AlphaEnd:    1,
	}
	if spec.Drag != nil {
		t.Drag = *spec.Drag
	}
	if spec.Mass != nil {
		t.Mass = *spec.Mass
	}
	if t.Glow && t.GlowScale == 0 {
		t.GlowScale = defaultGlowScale
	}

	var err error
	if t.Duration, err = particle.ParseDuration(spec.Duration); err != nil {
		return nil, specError(spec.Name, "duration", err)
	}

	ranges := []struct {
		field string
		src   string
		dst   *Range
	}{
		{"speed", spec.Speed, &t.Speed},
		{"life", spec.Life, &t.Life},
		{"size", spec.Size, &t.Size},
		{"spin", spec.Spin, &t.RotationSpeed},
	}
	for _, r := range ranges {
		if r.src == "" {
			continue
		}
		if r.dst.Min, r.dst.Max, err = particle.ParseRange(r.src); err != nil {
			return nil, specError(spec.Name, r.field, err)
		}
	}

	if spec.Scale != "" {
		if t.ScaleStart, t.ScaleEnd, err = particle.ParseCurve(spec.Scale); err != nil {
			return nil, specError(spec.Name, "scale", err)
		}
	}
	if spec.Alpha != "" {
		if t.AlphaStart, t.AlphaEnd, err = particle.ParseCurve(spec.Alpha); err != nil {
			return nil, specError(spec.Name, "alpha", err)
		}
	}
	if t.Ease, err = ParseEase(spec.Ease); err != nil {
		return nil, specError(spec.Name, "ease", err)
	}
	if t.Blend, err = ParseBlendMode(spec.Blend); err != nil {
		return nil, specError(spec.Name, "blend", err)
	}

	for _, name := range spec.Colors {
		c, err := particle.ParseColor(name)
		if err != nil {
			return nil, specError(spec.Name, "colors", err)
		}
		t.Colors = append(t.Colors, c)
	}
	if len(t.Colors) == 0 {
		t.Colors = []color.NRGBA{{R: 255, G: 255, B: 255, A: 255}}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// defaultGlowScale is the glow radius multiplier used when none is given.
const defaultGlowScale = 2.0

func specError(name, field string, err error) error {
	return fmt.Errorf("%w: %s: %s: %v", ErrInvalidTemplate, name, field, err)
}

// LoadEmitterTemplates 加载发射器模板文件
//
// 参数:
//   - path: 模板文件路径（如 "data/emitters.yaml"）
//
// 返回:
//   - []*EmitterTemplate: 按文件顺序排列的已验证模板
//   - error: 读取、解析或验证失败时返回错误
func LoadEmitterTemplates(path string) ([]*EmitterTemplate, error) {
	file, err := particle.LoadTemplateFile(path)
	if err != nil {
		return nil, err
	}

	templates := make([]*EmitterTemplate, 0, len(file.Emitters))
	for _, spec := range file.Emitters {
		t, err := FromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}
