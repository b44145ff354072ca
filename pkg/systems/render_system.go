package systems

import (
	"image/color"

	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/config"
)

// DrawPrimitive is one particle as seen by a draw backend.
type DrawPrimitive struct {
	X, Y     float64
	Size     float64 // diameter in px
	Rotation float64 // degrees
	Color    color.NRGBA
	Alpha    float64 // 0..1, multiplies Color.A
	Blend    config.BlendMode
	Glow     float64 // glow radius in px, 0 = no glow
	Trail    bool    // a fading trail point drawn behind its particle
}

// DrawBackend turns primitives into pixels.
//
// Render calls SetBlendMode once per non-empty blend group and then
// DrawParticle for each primitive in that group.
type DrawBackend interface {
	SetBlendMode(mode config.BlendMode)
	DrawParticle(p DrawPrimitive)
}

// RenderSystem 粒子批量渲染
//
// Groups live particles by blend mode so the backend sees the minimum number
// of blend state changes. Groups are emitted in BlendMode order (normal
// first, so additive and screen glows land on top). Rendering never changes
// particle state.
type RenderSystem struct {
	particles *ParticleSystem
	groups    [config.BlendModeCount][]*components.Particle
}

// NewRenderSystem creates a renderer for ps. Group buffers are sized to the
// pool, so Render does not allocate.
func NewRenderSystem(ps *ParticleSystem) *RenderSystem {
	rs := &RenderSystem{particles: ps}
	for i := range rs.groups {
		rs.groups[i] = make([]*components.Particle, 0, ps.pool.Cap())
	}
	return rs
}

// Render draws every live particle and returns the number of primitives
// sent to backend (trail points included).
func (rs *RenderSystem) Render(backend DrawBackend) int {
	ps := rs.particles
	for i := range rs.groups {
		rs.groups[i] = rs.groups[i][:0]
	}
	rs.collect(ps.live)
	rs.collect(ps.pending)

	drawn := 0
	for mode := range rs.groups {
		group := rs.groups[mode]
		if len(group) == 0 {
			continue
		}
		backend.SetBlendMode(config.BlendMode(mode))
		for _, p := range group {
			drawn += drawParticle(backend, p)
		}
		// 清除引用，避免保留已回收粒子的指针
		clear(rs.groups[mode])
	}
	return drawn
}

func (rs *RenderSystem) collect(handles []ParticleHandle) {
	for _, h := range handles {
		p := rs.particles.pool.Get(h)
		if p == nil || !p.Blend.Valid() {
			continue
		}
		rs.groups[p.Blend] = append(rs.groups[p.Blend], p)
	}
}

// drawParticle sends p's trail (oldest first) and then p itself.
func drawParticle(backend DrawBackend, p *components.Particle) int {
	n := 0
	if p.Trail && p.TrailCount > 0 {
		for i := 0; i < p.TrailCount; i++ {
			// 越旧的拖尾点越淡、越小
			f := float64(i+1) / float64(p.TrailCount+1)
			pt := p.TrailPoint(i)
			backend.DrawParticle(DrawPrimitive{
				X:        pt.X(),
				Y:        pt.Y(),
				Size:     p.Size * (0.5 + 0.5*f),
				Rotation: p.Rotation,
				Color:    p.Color,
				Alpha:    p.Alpha * 0.5 * f,
				Blend:    p.Blend,
				Trail:    true,
			})
			n++
		}
	}

	prim := DrawPrimitive{
		X:        p.Pos.X(),
		Y:        p.Pos.Y(),
		Size:     p.Size,
		Rotation: p.Rotation,
		Color:    p.Color,
		Alpha:    p.Alpha,
		Blend:    p.Blend,
	}
	if p.Glow {
		prim.Glow = p.GlowRadius
	}
	backend.DrawParticle(prim)
	return n + 1
}
