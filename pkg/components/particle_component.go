package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/ecs"
)

// TrailLength is the number of past positions a trail-enabled particle keeps.
const TrailLength = 4

// Particle represents a single particle slot in the pool.
//
// A Particle is either pooled (Active == false, every other field stale) or
// live (Active == true, attributed to exactly one emitter). Records are
// stored by value in the pool's backing slice and are never allocated
// individually.
//
// All spawn-time values are copied from the emitter's template so the
// per-frame update never dereferences the template.
type Particle struct {
	// Kinematics (运动学, 像素 / 像素每秒)
	Pos mgl64.Vec2
	Vel mgl64.Vec2
	Acc mgl64.Vec2 // force accumulator, cleared after every integration step

	// Visual (视觉属性)
	BaseSize      float64
	Size          float64
	Color         color.NRGBA
	Alpha         float64 // 0 = fully transparent, 1 = fully opaque
	Rotation      float64 // degrees, wrapped into (-360, 360) keeping the sign of the spin
	RotationSpeed float64 // degrees per second

	// Lifecycle (生命周期, 秒)
	Age     float64
	MaxLife float64
	Life    float64 // normalized remaining life, 1 → 0
	Active  bool

	// Behavior (物理行为)
	Mass              float64
	Drag              float64 // retention per 1/60 s
	Bounce            float64
	AffectedByGravity bool
	AffectedByWind    bool

	// Effects (视觉效果)
	Trail      bool
	Glow       bool
	GlowScale  float64
	GlowRadius float64
	Blend      config.BlendMode

	// Curves (动画曲线端点)
	ScaleStart, ScaleEnd float64
	AlphaStart, AlphaEnd float64
	Ease                 config.Ease

	// Emitter is a back-reference for bookkeeping only; it never controls
	// the particle's lifetime.
	Emitter ecs.EntityID

	// Trail history ring, most recent write at TrailHead-1.
	TrailPoints [TrailLength]mgl64.Vec2
	TrailCount  int
	TrailHead   int
}

// PushTrail records the current position in the trail ring.
func (p *Particle) PushTrail() {
	p.TrailPoints[p.TrailHead] = p.Pos
	p.TrailHead = (p.TrailHead + 1) % TrailLength
	if p.TrailCount < TrailLength {
		p.TrailCount++
	}
}

// TrailPoint returns the i-th trail position, 0 being the oldest.
func (p *Particle) TrailPoint(i int) mgl64.Vec2 {
	start := p.TrailHead - p.TrailCount
	if start < 0 {
		start += TrailLength
	}
	return p.TrailPoints[(start+i)%TrailLength]
}
