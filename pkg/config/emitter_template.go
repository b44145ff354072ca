package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

// ErrInvalidTemplate is wrapped by every template validation failure.
var ErrInvalidTemplate = errors.New("invalid emitter template")

// ContinuousDuration marks an emitter that never expires on its own.
const ContinuousDuration = -1.0

// Range 数值范围
//
// Each spawned particle draws one uniform value per Range field.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a degenerate range that always samples v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Sample draws a uniform value in [Min, Max].
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Scale returns the range multiplied by f.
func (r Range) Scale(f float64) Range {
	return Range{Min: r.Min * f, Max: r.Max * f}
}

// EmitterTemplate 发射器模板
//
// Immutable once registered: the catalog stores its own copy and every
// emitter instance of that type shares it by pointer. Per-instance changes
// go through Override and produce a separate merged copy.
type EmitterTemplate struct {
	Name string

	// Emission
	BurstCount int     // particles emitted when the emitter is created
	Duration   float64 // seconds; ContinuousDuration = never expires
	Rate       float64 // particles per second while active

	// Launch
	Direction   float64 // degrees, 0 = +X, 90 = +Y (down)
	Spread      float64 // full cone angle in degrees
	Speed       Range   // px/s
	SpawnRadius float64 // particles start inside a disc of this radius

	// Particle
	Life          Range // seconds
	Size          Range // base size in px
	RotationSpeed Range // deg/s
	Colors        []color.NRGBA

	// Curves over normalized progress t = 1 - life
	ScaleStart, ScaleEnd float64
	AlphaStart, AlphaEnd float64
	Ease                 Ease

	// Physics
	Gravity bool
	Wind    bool
	Drag    float64 // retention per 1/60 s in (0,1]; 1 = none
	Bounce  float64 // velocity kept (and reversed) on a bounds hit
	Mass    float64

	// Effects
	Trail     bool
	Glow      bool
	GlowScale float64 // glow radius = size * GlowScale
	Blend     BlendMode

	// MaxActive caps the live particles of one emitter instance; 0 = no cap.
	MaxActive int
}

// IsContinuous reports whether the template never expires.
func (t *EmitterTemplate) IsContinuous() bool {
	return t.Duration == ContinuousDuration
}

// IsOneShot reports whether creating an instance emits an immediate burst.
func (t *EmitterTemplate) IsOneShot() bool {
	return !t.IsContinuous() && t.BurstCount > 0
}

// Clone returns a deep copy (the color slice is not shared).
func (t *EmitterTemplate) Clone() *EmitterTemplate {
	c := *t
	if t.Colors != nil {
		c.Colors = append([]color.NRGBA(nil), t.Colors...)
	}
	return &c
}

// Validate 验证模板
//
// Authoring mistakes are rejected, never clamped. Every error wraps
// ErrInvalidTemplate and names the offending field.
func (t *EmitterTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidTemplate)
	}
	if field, ok := t.firstNonFinite(); !ok {
		return t.fail("%s is not a finite number", field)
	}
	if t.Duration < 0 && t.Duration != ContinuousDuration {
		return t.fail("duration %.2f is negative (use %v for continuous)", t.Duration, ContinuousDuration)
	}
	if t.BurstCount < 0 {
		return t.fail("burst count %d is negative", t.BurstCount)
	}
	if t.Rate < 0 {
		return t.fail("rate %.2f is negative", t.Rate)
	}
	if t.IsContinuous() && t.Rate == 0 {
		return t.fail("continuous emitter has no rate")
	}

	ranges := []struct {
		field string
		r     Range
	}{
		{"speed", t.Speed},
		{"life", t.Life},
		{"size", t.Size},
		{"rotation speed", t.RotationSpeed},
	}
	for _, fr := range ranges {
		if fr.r.Min > fr.r.Max {
			return t.fail("%s range invalid: min(%.1f) > max(%.1f)", fr.field, fr.r.Min, fr.r.Max)
		}
	}
	if t.Life.Min <= 0 {
		return t.fail("life min(%.2f) must be positive", t.Life.Min)
	}

	if t.Drag <= 0 || t.Drag > 1 {
		return t.fail("drag %.3f outside (0, 1]", t.Drag)
	}
	if t.Bounce < 0 {
		return t.fail("bounce %.2f is negative", t.Bounce)
	}
	if t.Mass <= 0 {
		return t.fail("mass %.2f must be positive", t.Mass)
	}
	if t.SpawnRadius < 0 {
		return t.fail("spawn radius %.1f is negative", t.SpawnRadius)
	}
	if t.MaxActive < 0 {
		return t.fail("max active %d is negative", t.MaxActive)
	}
	if !t.Blend.Valid() {
		return t.fail("unknown blend mode %v", t.Blend)
	}
	if !t.Ease.Valid() {
		return t.fail("unknown ease %v", t.Ease)
	}
	return nil
}

// firstNonFinite 找出第一个 NaN/Inf 字段
//
// NaN 会让所有比较都为 false，必须在区间检查之前单独拦截。
func (t *EmitterTemplate) firstNonFinite() (string, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"duration", t.Duration},
		{"rate", t.Rate},
		{"direction", t.Direction},
		{"spread", t.Spread},
		{"speed min", t.Speed.Min},
		{"speed max", t.Speed.Max},
		{"spawn radius", t.SpawnRadius},
		{"life min", t.Life.Min},
		{"life max", t.Life.Max},
		{"size min", t.Size.Min},
		{"size max", t.Size.Max},
		{"rotation speed min", t.RotationSpeed.Min},
		{"rotation speed max", t.RotationSpeed.Max},
		{"scale start", t.ScaleStart},
		{"scale end", t.ScaleEnd},
		{"alpha start", t.AlphaStart},
		{"alpha end", t.AlphaEnd},
		{"drag", t.Drag},
		{"bounce", t.Bounce},
		{"mass", t.Mass},
		{"glow scale", t.GlowScale},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return f.name, false
		}
	}
	return "", true
}

func (t *EmitterTemplate) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidTemplate, t.Name, fmt.Sprintf(format, args...))
}
