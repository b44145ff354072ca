package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Names of the built-in templates.
const (
	TemplateExplosion = "explosion"
	TemplateFire      = "fire"
	TemplateSmoke     = "smoke"
	TemplateSparks    = "sparks"
	TemplateMagic     = "magic"
)

func rgb(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// DefaultTemplates returns fresh copies of the five built-in templates.
func DefaultTemplates() []*EmitterTemplate {
	return []*EmitterTemplate{
		{
			// 爆炸：一次性径向爆发，受重力影响
			Name:          TemplateExplosion,
			BurstCount:    30,
			Duration:      0,
			Spread:        360,
			Speed:         Range{Min: 150, Max: 350},
			Life:          Range{Min: 0.4, Max: 0.9},
			Size:          Range{Min: 4, Max: 9},
			RotationSpeed: Range{Min: -180, Max: 180},
			Colors:        []color.NRGBA{rgb(colornames.Orangered), rgb(colornames.Orange), rgb(colornames.Gold), rgb(colornames.Yellow)},
			ScaleStart:    1, ScaleEnd: 0.3,
			AlphaStart: 1, AlphaEnd: 0,
			Ease:    EaseOut,
			Gravity: true,
			Drag:    0.95,
			Mass:    1,
			Blend:   BlendAdditive,
		},
		{
			// 火焰：持续向上的锥形发射，随风飘动，缩小到零
			Name:          TemplateFire,
			Duration:      ContinuousDuration,
			Rate:          40,
			Direction:     270,
			Spread:        30,
			Speed:         Range{Min: 40, Max: 90},
			SpawnRadius:   6,
			Life:          Range{Min: 0.5, Max: 1.0},
			Size:          Range{Min: 6, Max: 12},
			RotationSpeed: Range{Min: -60, Max: 60},
			Colors:        []color.NRGBA{rgb(colornames.Red), rgb(colornames.Orangered), rgb(colornames.Orange)},
			ScaleStart:    1, ScaleEnd: 0,
			AlphaStart: 0.9, AlphaEnd: 0.2,
			Wind:  true,
			Drag:  0.98,
			Mass:  0.5,
			Blend: BlendAdditive,
		},
		{
			// 烟雾：持续向上，逐渐变大，寿命长，阻力大
			Name:          TemplateSmoke,
			Duration:      ContinuousDuration,
			Rate:          12,
			Direction:     270,
			Spread:        40,
			Speed:         Range{Min: 20, Max: 50},
			SpawnRadius:   8,
			Life:          Range{Min: 1.5, Max: 3.0},
			Size:          Range{Min: 10, Max: 18},
			RotationSpeed: Range{Min: -30, Max: 30},
			Colors:        []color.NRGBA{rgb(colornames.Dimgray), rgb(colornames.Gray), rgb(colornames.Darkgray)},
			ScaleStart:    0.6, ScaleEnd: 2,
			AlphaStart: 0.6, AlphaEnd: 0,
			Ease:  EaseOut,
			Wind:  true,
			Drag:  0.9,
			Mass:  0.3,
			Blend: BlendNormal,
		},
		{
			// 火花：一次性爆发，受重力，会反弹，带拖尾
			Name:       TemplateSparks,
			BurstCount: 25,
			Duration:   0,
			Spread:     360,
			Speed:      Range{Min: 200, Max: 400},
			Life:       Range{Min: 0.3, Max: 0.8},
			Size:       Range{Min: 2, Max: 4},
			Colors:     []color.NRGBA{rgb(colornames.White), rgb(colornames.Lightyellow), rgb(colornames.Gold)},
			ScaleStart: 1, ScaleEnd: 0.5,
			AlphaStart: 1, AlphaEnd: 0,
			Gravity: true,
			Drag:    0.97,
			Bounce:  0.3,
			Mass:    0.2,
			Trail:   true,
			Blend:   BlendAdditive,
		},
		{
			// 魔法：一次性爆发，无重力，发光，缩小并淡出
			Name:          TemplateMagic,
			BurstCount:    20,
			Duration:      0,
			Spread:        360,
			Speed:         Range{Min: 30, Max: 120},
			SpawnRadius:   4,
			Life:          Range{Min: 0.8, Max: 1.6},
			Size:          Range{Min: 4, Max: 8},
			RotationSpeed: Range{Min: -90, Max: 90},
			Colors:        []color.NRGBA{rgb(colornames.Mediumpurple), rgb(colornames.Violet), rgb(colornames.Deepskyblue), rgb(colornames.White)},
			ScaleStart:    1, ScaleEnd: 0,
			AlphaStart: 1, AlphaEnd: 0,
			Ease:      EaseInOut,
			Drag:      0.96,
			Mass:      1,
			Glow:      true,
			GlowScale: 2.5,
			Blend:     BlendAdditive,
		},
	}
}
