package config

import "image/color"

// Override adjusts a private copy of a template for one emitter instance.
//
// Overrides are applied to a clone; the registered template is never
// touched. The merged result is validated like any other template.
type Override func(*EmitterTemplate)

// Merge returns base when there are no overrides, otherwise a validated
// clone with every override applied in order.
func Merge(base *EmitterTemplate, overrides ...Override) (*EmitterTemplate, error) {
	if len(overrides) == 0 {
		return base, nil
	}
	merged := base.Clone()
	for _, o := range overrides {
		if o != nil {
			o(merged)
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// WithBurstCount sets the immediate burst emitted on creation.
func WithBurstCount(n int) Override {
	return func(t *EmitterTemplate) { t.BurstCount = n }
}

// WithRate sets the continuous emission rate in particles per second.
func WithRate(rate float64) Override {
	return func(t *EmitterTemplate) { t.Rate = rate }
}

// WithRateScale multiplies the template rate by f.
func WithRateScale(f float64) Override {
	return func(t *EmitterTemplate) { t.Rate *= f }
}

// WithDuration sets the emitter lifetime; ContinuousDuration never expires.
func WithDuration(seconds float64) Override {
	return func(t *EmitterTemplate) { t.Duration = seconds }
}

// WithDirection sets the launch direction and cone.
func WithDirection(degrees, spread float64) Override {
	return func(t *EmitterTemplate) {
		t.Direction = degrees
		t.Spread = spread
	}
}

// WithSpeedScale multiplies both launch speed bounds by f.
func WithSpeedScale(f float64) Override {
	return func(t *EmitterTemplate) { t.Speed = t.Speed.Scale(f) }
}

// WithSizeScale multiplies the particle size range and spawn radius by f.
func WithSizeScale(f float64) Override {
	return func(t *EmitterTemplate) {
		t.Size = t.Size.Scale(f)
		t.SpawnRadius *= f
	}
}

// WithLife replaces the particle lifetime range in seconds.
func WithLife(r Range) Override {
	return func(t *EmitterTemplate) { t.Life = r }
}

// WithColors replaces the color set.
func WithColors(colors ...color.NRGBA) Override {
	return func(t *EmitterTemplate) {
		t.Colors = append([]color.NRGBA(nil), colors...)
	}
}

// WithTrail toggles position history for trail rendering.
func WithTrail(on bool) Override {
	return func(t *EmitterTemplate) { t.Trail = on }
}

// WithGlow toggles the halo. A template without a glow scale gets the
// default of 2.
func WithGlow(on bool) Override {
	return func(t *EmitterTemplate) {
		t.Glow = on
		if on && t.GlowScale <= 0 {
			t.GlowScale = defaultGlowScale
		}
	}
}

// WithBlend sets the blend mode used to draw the particles.
func WithBlend(b BlendMode) Override {
	return func(t *EmitterTemplate) { t.Blend = b }
}

// WithMaxActive caps live particles for this instance; 0 removes the cap.
func WithMaxActive(n int) Override {
	return func(t *EmitterTemplate) { t.MaxActive = n }
}
