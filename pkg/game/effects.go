package game

import (
	"image/color"
	"math"

	"github.com/decker502/sparkfx/pkg/config"
)

// CreateExplosion creates an explosion scaled by intensity (1 = template
// default). Burst size grows linearly with intensity, speed with its square
// root.
func (e *ParticleEngine) CreateExplosion(x, y, intensity float64) (EmitterID, error) {
	if intensity <= 0 {
		intensity = 1
	}
	tpl, err := e.Template(config.TemplateExplosion)
	if err != nil {
		return 0, err
	}
	burst := int(math.Max(1, math.Round(float64(tpl.BurstCount)*intensity)))
	return e.CreateEmitter(config.TemplateExplosion, x, y,
		config.WithBurstCount(burst),
		config.WithSpeedScale(math.Sqrt(intensity)),
	)
}

// CreateFire creates a continuous fire scaled by size (1 = template
// default). Bigger fires have bigger flames and a higher emission rate.
func (e *ParticleEngine) CreateFire(x, y, size float64) (EmitterID, error) {
	if size <= 0 {
		size = 1
	}
	return e.CreateEmitter(config.TemplateFire, x, y,
		config.WithSizeScale(size),
		config.WithRateScale(size),
	)
}

// CreateSparks creates a burst of count sparks. count <= 0 uses the
// template's burst.
func (e *ParticleEngine) CreateSparks(x, y float64, count int) (EmitterID, error) {
	if count <= 0 {
		return e.CreateEmitter(config.TemplateSparks, x, y)
	}
	return e.CreateEmitter(config.TemplateSparks, x, y, config.WithBurstCount(count))
}

// trailBurst is the number of particles one CreateTrail call drops.
const trailBurst = 6

// CreateTrail drops a small, slow, single-colored glowing puff at (x, y).
// Calling it every frame along a path leaves a trail. A nil color keeps the
// magic template's palette.
func (e *ParticleEngine) CreateTrail(x, y float64, c color.Color) (EmitterID, error) {
	overrides := []config.Override{
		config.WithTrail(true),
		config.WithBurstCount(trailBurst),
		config.WithSpeedScale(0.3),
	}
	if c != nil {
		overrides = append(overrides, config.WithColors(color.NRGBAModel.Convert(c).(color.NRGBA)))
	}
	return e.CreateEmitter(config.TemplateMagic, x, y, overrides...)
}
