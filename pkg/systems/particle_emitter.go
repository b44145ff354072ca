package systems

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/ecs"
)

var defaultParticleColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// CreateEmitter inserts an active emitter at pos. A one-shot template emits
// its whole burst before CreateEmitter returns; those particles start
// integrating on the next Update.
//
// params is the template the emitter spawns with: tpl itself, or a merged
// copy when the caller applied overrides.
func (ps *ParticleSystem) CreateEmitter(tpl, params *config.EmitterTemplate, pos mgl64.Vec2) ecs.EntityID {
	e := ps.emitters.Create(tpl, params, pos)
	if params.IsOneShot() {
		ps.emit(e, params.BurstCount)
	}
	return e.ID
}

// updateEmitters advances every active emitter once, in slot order.
func (ps *ParticleSystem) updateEmitters(dt float64) {
	for i := range ps.emitters.slots {
		e := &ps.emitters.slots[i]
		if e.ID == ecs.InvalidEntity || !e.Active {
			continue
		}
		params := e.Params

		if !params.IsContinuous() {
			e.Age += dt
			if e.Age >= params.Duration {
				e.Active = false
				continue
			}
		}

		if params.Rate > 0 {
			ps.emitByRate(e, params.Rate, dt)
		}
	}
}

// emitByRate accumulates emission credit and drains it in whole particles.
// The drain is computed in closed form, so a huge dt costs no more than the
// capacity it can fill; credit beyond that is counted as dropped, never
// carried over.
func (ps *ParticleSystem) emitByRate(e *components.EmitterInstance, rate, dt float64) {
	e.EmitTimer += dt
	due := math.Floor(e.EmitTimer * rate)
	if math.IsNaN(due) {
		e.EmitTimer = 0
		return
	}
	if due < 1 {
		return
	}
	e.EmitTimer -= due / rate
	// 溢出时 Inf-Inf 得到 NaN，积分清零而不是一直卡住
	if e.EmitTimer < 0 || math.IsNaN(e.EmitTimer) || math.IsInf(e.EmitTimer, 0) {
		e.EmitTimer = 0
	}

	n := math.MaxInt32
	if due < math.MaxInt32 {
		n = int(due)
	}
	ps.emit(e, n)
}

// emit spawns up to n particles for e. Attempts beyond the particle cap,
// the pool or the emitter's own MaxActive are dropped silently and counted.
func (ps *ParticleSystem) emit(e *components.EmitterInstance, n int) int {
	room := ps.maxParticles - ps.LiveCount()
	if avail := ps.pool.Available(); avail < room {
		room = avail
	}
	if limit := e.Params.MaxActive; limit > 0 && limit-e.Live < room {
		room = limit - e.Live
	}
	if room < 0 {
		room = 0
	}

	spawned := 0
	for spawned < n && spawned < room {
		if !ps.spawnParticle(e) {
			break
		}
		spawned++
	}

	if dropped := n - spawned; dropped > 0 {
		e.Dropped += dropped
		ps.stats.dropped += dropped
	}
	return spawned
}

// spawnParticle acquires one pool slot and initialises it from e's params.
func (ps *ParticleSystem) spawnParticle(e *components.EmitterInstance) bool {
	h, p, ok := ps.pool.Acquire()
	if !ok {
		return false
	}
	params := e.Params
	rng := ps.rng

	// 发射位置：发射器中心的圆盘内均匀分布
	pos := e.Pos
	if params.SpawnRadius > 0 {
		r := params.SpawnRadius * math.Sqrt(rng.Float64())
		a := rng.Float64() * 2 * math.Pi
		pos = pos.Add(mgl64.Vec2{r * math.Cos(a), r * math.Sin(a)})
	}

	// 发射角度：Direction ± Spread/2
	angle := mgl64.DegToRad(params.Direction + (rng.Float64()-0.5)*params.Spread)
	speed := params.Speed.Sample(rng)

	p.Pos = pos
	p.Vel = mgl64.Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed}

	p.BaseSize = params.Size.Sample(rng)
	p.Size = p.BaseSize * params.ScaleStart
	p.Color = defaultParticleColor
	if len(params.Colors) > 0 {
		p.Color = params.Colors[rng.Intn(len(params.Colors))]
	}
	p.Alpha = params.AlphaStart
	p.Rotation = rng.Float64() * 360
	p.RotationSpeed = params.RotationSpeed.Sample(rng)

	p.MaxLife = params.Life.Sample(rng)
	p.Life = 1

	p.Mass = params.Mass
	p.Drag = params.Drag
	p.Bounce = params.Bounce
	p.AffectedByGravity = params.Gravity
	p.AffectedByWind = params.Wind

	p.Trail = params.Trail
	p.Glow = params.Glow
	p.GlowScale = params.GlowScale
	if p.Glow {
		p.GlowRadius = p.Size * p.GlowScale
	}
	p.Blend = params.Blend

	p.ScaleStart, p.ScaleEnd = params.ScaleStart, params.ScaleEnd
	p.AlphaStart, p.AlphaEnd = params.AlphaStart, params.AlphaEnd
	p.Ease = params.Ease
	p.Emitter = e.ID

	ps.pending = append(ps.pending, h)
	e.Emitted++
	e.Live++
	return true
}

// reapFinishedEmitters removes emitters that stopped and own no live
// particles.
func (ps *ParticleSystem) reapFinishedEmitters() {
	for i := range ps.emitters.slots {
		e := &ps.emitters.slots[i]
		if e.ID != ecs.InvalidEntity && e.Finished() {
			ps.emitters.Remove(e.ID)
		}
	}
}
