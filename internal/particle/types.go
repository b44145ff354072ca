// Package particle provides the on-disk schema and value parsing for
// particle emitter template files.
//
// Template files are YAML documents holding a list of emitters. Numeric
// fields that describe a random spread use the compact value syntax shared
// by all effect files:
//   - Fixed value: "200"
//   - Range: "[150 350]" (uniform random value between min and max)
//   - Curve: "1 0.2" (start value, end value over the particle's life)
//
// The strings are parsed once, when a file is loaded, and turned into typed
// templates by pkg/config. Nothing here is evaluated per frame.
package particle

// TemplateFile represents the root structure of an emitter template file.
type TemplateFile struct {
	Emitters []EmitterSpec `yaml:"emitters"`
}

// EmitterSpec represents a single emitter template as written in a file.
//
// Range, curve, and duration fields keep the string form so that "[min max]"
// and keywords such as "continuous" survive YAML decoding unchanged.
type EmitterSpec struct {
	// Name is the unique identifier for this template
	Name string `yaml:"name"`

	// Emission (发射参数)
	Burst    int     `yaml:"burst,omitempty"`    // Particles emitted at creation
	Duration string  `yaml:"duration,omitempty"` // Seconds, or "continuous" / "-1"
	Rate     float64 `yaml:"rate,omitempty"`     // Particles per second

	// Launch (发射方向)
	Direction   float64 `yaml:"direction,omitempty"`    // Degrees, 0 = right, 90 = down
	Spread      float64 `yaml:"spread,omitempty"`       // Full cone angle in degrees
	Speed       string  `yaml:"speed,omitempty"`        // px/s range
	SpawnRadius float64 `yaml:"spawn_radius,omitempty"` // Spawn disc radius in px

	// Particle properties (粒子属性)
	Life   string   `yaml:"life,omitempty"`   // Seconds range
	Size   string   `yaml:"size,omitempty"`   // Base size range in px
	Spin   string   `yaml:"spin,omitempty"`   // Rotation speed range in deg/s
	Colors []string `yaml:"colors,omitempty"` // Names ("orange") or hex ("#ff8800")

	// Curves (动画曲线)
	Scale string `yaml:"scale,omitempty"` // "start end" multiplier of base size
	Alpha string `yaml:"alpha,omitempty"` // "start end" opacity
	Ease  string `yaml:"ease,omitempty"`  // linear, ease-in, ease-out, ease-in-out

	// Physics (物理参数)
	Gravity bool     `yaml:"gravity,omitempty"`
	Wind    bool     `yaml:"wind,omitempty"`
	Drag    *float64 `yaml:"drag,omitempty"` // Retention per 1/60 s, omitted = no drag
	Bounce  float64  `yaml:"bounce,omitempty"`
	Mass    *float64 `yaml:"mass,omitempty"` // Omitted = 1

	// Rendering (渲染模式)
	Blend     string  `yaml:"blend,omitempty"` // normal, additive, screen
	Trail     bool    `yaml:"trail,omitempty"`
	Glow      bool    `yaml:"glow,omitempty"`
	GlowScale float64 `yaml:"glow_scale,omitempty"`

	// Limits
	MaxActive int `yaml:"max_active,omitempty"` // Per-emitter live ceiling, 0 = none
}
