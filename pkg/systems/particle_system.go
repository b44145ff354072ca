package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/utils"
)

// dragReferenceFPS is the frame rate a template's drag coefficient is
// expressed against: drag is the velocity kept per 1/60 s.
const dragReferenceFPS = 60.0

// ParticleSystem simulates every live particle.
//
// Update runs three phases in a fixed order:
//  1. Particles emitted since the previous Update join the live list
//  2. Emitters advance and may emit (new particles wait for the next Update)
//  3. Live particles are integrated, expired ones go back to the pool and
//     the live list is compacted in one pass
//
// The live and pending lists are allocated at pool capacity up front, so a
// steady-state Update does not allocate.
type ParticleSystem struct {
	pool     *ParticlePool
	emitters *EmitterTable

	live    []ParticleHandle
	pending []ParticleHandle
	cursor  int // round-robin start for capped batches

	gravity mgl64.Vec2
	wind    mgl64.Vec2
	bounds  config.Bounds

	maxParticles int
	batchSize    int
	reap         bool

	rng   *rand.Rand
	stats frameStats
}

// NewParticleSystem creates a system that spawns from pool and reads
// emitters from table. A cfg.MaxParticles of 0 means the pool size;
// SetMaxParticles(0) afterwards is a real zero cap.
func NewParticleSystem(pool *ParticlePool, table *EmitterTable, cfg config.EngineConfig) *ParticleSystem {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ps := &ParticleSystem{
		pool:      pool,
		emitters:  table,
		live:      make([]ParticleHandle, 0, pool.Cap()),
		pending:   make([]ParticleHandle, 0, pool.Cap()),
		gravity:   cfg.Gravity.Vec2(),
		wind:      cfg.Wind.Vec2(),
		bounds:    cfg.Bounds,
		batchSize: cfg.BatchSize,
		reap:      cfg.ReapFinishedEmitters,
		rng:       rand.New(rand.NewSource(seed)),
	}
	// 配置里未填写上限时取池容量
	ps.maxParticles = pool.Cap()
	if cfg.MaxParticles > 0 {
		ps.maxParticles = ps.effectiveCap(cfg.MaxParticles)
	}
	return ps
}

func (ps *ParticleSystem) effectiveCap(n int) int {
	if n > ps.pool.Cap() {
		return ps.pool.Cap()
	}
	return n
}

// SetForces replaces the global gravity and wind vectors.
func (ps *ParticleSystem) SetForces(gravity, wind mgl64.Vec2) {
	ps.gravity = gravity
	ps.wind = wind
}

// Forces returns the global gravity and wind vectors.
func (ps *ParticleSystem) Forces() (gravity, wind mgl64.Vec2) {
	return ps.gravity, ps.wind
}

// SetMaxParticles sets the live-particle cap, clamped to the pool size.
// Particles already above a lowered cap live out their lives.
func (ps *ParticleSystem) SetMaxParticles(n int) error {
	if n < 0 {
		return fmt.Errorf("max particles must not be negative, got %d", n)
	}
	ps.maxParticles = ps.effectiveCap(n)
	if ps.maxParticles != n {
		log.Printf("[ParticleSystem] 粒子上限 %d 超过池容量，实际上限 %d", n, ps.maxParticles)
	}
	return nil
}

// MaxParticles returns the effective live-particle cap.
func (ps *ParticleSystem) MaxParticles() int {
	return ps.maxParticles
}

// SetBounds replaces the world rectangle. A zero-area rectangle disables
// collision.
func (ps *ParticleSystem) SetBounds(b config.Bounds) {
	ps.bounds = b
}

// SetBatchSize caps the particles integrated per Update; 0 = no cap.
func (ps *ParticleSystem) SetBatchSize(n int) {
	if n < 0 {
		n = 0
	}
	ps.batchSize = n
}

// LiveCount returns the number of live particles, including those emitted
// this frame that have not been integrated yet.
func (ps *ParticleSystem) LiveCount() int {
	return len(ps.live) + len(ps.pending)
}

// Update advances the simulation by dt seconds. Any dt is accepted; the
// work done is bounded by the pool size, never by dt. Negative or
// non-finite steps (NaN, ±Inf) advance nothing.
func (ps *ParticleSystem) Update(dt float64) {
	start := time.Now()
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	ps.flushPending()
	ps.updateEmitters(dt)
	updated := ps.updateParticles(dt)
	if ps.reap {
		ps.reapFinishedEmitters()
	}

	ps.stats.lastUpdated = updated
	ps.stats.lastCost = time.Since(start)
}

func (ps *ParticleSystem) flushPending() {
	if len(ps.pending) == 0 {
		return
	}
	ps.live = append(ps.live, ps.pending...)
	ps.pending = ps.pending[:0]
}

// updateParticles integrates the live list, or a round-robin window of
// batchSize particles when the list is longer than that, then compacts.
func (ps *ParticleSystem) updateParticles(dt float64) int {
	n := len(ps.live)
	if n == 0 {
		ps.cursor = 0
		return 0
	}

	count, start := n, 0
	if ps.batchSize > 0 && n > ps.batchSize {
		count = ps.batchSize
		start = ps.cursor % n
	}

	for k := 0; k < count; k++ {
		i := start + k
		if i >= n {
			i -= n
		}
		h := ps.live[i]
		if p := ps.pool.Get(h); p != nil {
			ps.integrate(h, p, dt)
		}
	}

	ps.compact((start + count) % n)
	return count
}

// compact drops released handles from the live list in a single stable
// pass. next is the pre-compaction index the next batch starts at.
func (ps *ParticleSystem) compact(next int) {
	w := 0
	cursor := 0
	for r, h := range ps.live {
		if r == next {
			cursor = w
		}
		if ps.pool.IsLive(h) {
			ps.live[w] = h
			w++
		}
	}
	ps.live = ps.live[:w]
	if cursor >= w {
		cursor = 0
	}
	ps.cursor = cursor
}

// integrate advances one particle by dt.
func (ps *ParticleSystem) integrate(h ParticleHandle, p *components.Particle, dt float64) {
	// 1. 生命周期
	p.Age += dt
	p.Life = 1 - p.Age/p.MaxLife
	if p.Life <= 0 {
		ps.release(h, p)
		return
	}

	// 2. 累加外力
	if p.AffectedByGravity {
		p.Acc = p.Acc.Add(ps.gravity)
	}
	if p.AffectedByWind {
		p.Acc = p.Acc.Add(ps.wind)
	}

	// 3-4. 速度与阻力
	p.Vel = p.Vel.Add(p.Acc.Mul(dt))
	if p.Drag < 1 {
		p.Vel = p.Vel.Mul(math.Pow(p.Drag, dt*dragReferenceFPS))
	}

	// 5-6. 位置与旋转
	if p.Trail {
		p.PushTrail()
	}
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Rotation = math.Mod(p.Rotation+p.RotationSpeed*dt, 360)

	// 7. 边界碰撞
	if ps.bounds.Enabled() {
		ps.collide(p)
	}

	// 8. 透明度与尺寸
	t := applyEase(p.Ease, 1-p.Life)
	p.Alpha = utils.Lerp(p.AlphaStart, p.AlphaEnd, t)
	p.Size = utils.Lerp(p.ScaleStart, p.ScaleEnd, t) * p.BaseSize
	if p.Glow {
		p.GlowRadius = p.Size * p.GlowScale
	}

	// 9. 清空力累加器
	p.Acc = mgl64.Vec2{}
}

// collide clamps p to the world rectangle and reflects the crossing
// velocity component, keeping Bounce of its magnitude.
func (ps *ParticleSystem) collide(p *components.Particle) {
	b := ps.bounds
	if p.Pos[0] < b.MinX {
		p.Pos[0] = b.MinX
		p.Vel[0] *= -p.Bounce
	} else if p.Pos[0] > b.MaxX {
		p.Pos[0] = b.MaxX
		p.Vel[0] *= -p.Bounce
	}
	if p.Pos[1] < b.MinY {
		p.Pos[1] = b.MinY
		p.Vel[1] *= -p.Bounce
	} else if p.Pos[1] > b.MaxY {
		p.Pos[1] = b.MaxY
		p.Vel[1] *= -p.Bounce
	}
}

func applyEase(e config.Ease, t float64) float64 {
	switch e {
	case config.EaseIn:
		return utils.EaseInQuad(t)
	case config.EaseOut:
		return utils.EaseOutQuad(t)
	case config.EaseInOut:
		return utils.EaseInOutCubic(t)
	default:
		return utils.EaseLinear(t)
	}
}

// release returns p to the pool and updates its emitter's live count.
// The emitter may already be gone; the generation check makes that safe.
func (ps *ParticleSystem) release(h ParticleHandle, p *components.Particle) {
	if e := ps.emitters.Get(p.Emitter); e != nil {
		e.Live--
	}
	ps.pool.Release(h)
}

// ClearParticles returns every live particle to the pool. Emitters keep
// running.
func (ps *ParticleSystem) ClearParticles() {
	ps.pool.ReleaseAll()
	ps.live = ps.live[:0]
	ps.pending = ps.pending[:0]
	ps.cursor = 0
	for i := range ps.emitters.slots {
		ps.emitters.slots[i].Live = 0
	}
}

// ApplyImpulse pushes live particles within radius of center away from it.
// The velocity change is strength/mass, falling off linearly to zero at
// radius. Returns the number of particles affected.
func (ps *ParticleSystem) ApplyImpulse(center mgl64.Vec2, radius, strength float64) int {
	if radius <= 0 {
		return 0
	}
	affected := ps.impulse(ps.live, center, radius, strength)
	affected += ps.impulse(ps.pending, center, radius, strength)
	return affected
}

func (ps *ParticleSystem) impulse(handles []ParticleHandle, center mgl64.Vec2, radius, strength float64) int {
	n := 0
	for _, h := range handles {
		p := ps.pool.Get(h)
		if p == nil {
			continue
		}
		d := p.Pos.Sub(center)
		dist := d.Len()
		if dist > radius {
			continue
		}
		dir := mgl64.Vec2{0, -1}
		if dist > 0 {
			dir = d.Mul(1 / dist)
		}
		falloff := 1 - dist/radius
		p.Vel = p.Vel.Add(dir.Mul(strength * falloff / p.Mass))
		n++
	}
	return n
}

// EachLive calls fn for every live particle, integrated ones first.
func (ps *ParticleSystem) EachLive(fn func(p *components.Particle)) {
	for _, h := range ps.live {
		if p := ps.pool.Get(h); p != nil {
			fn(p)
		}
	}
	for _, h := range ps.pending {
		if p := ps.pool.Get(h); p != nil {
			fn(p)
		}
	}
}

// Particle returns the live particle for h, or nil.
func (ps *ParticleSystem) Particle(h ParticleHandle) *components.Particle {
	return ps.pool.Get(h)
}

// LiveHandles appends the handles of every live particle to dst.
func (ps *ParticleSystem) LiveHandles(dst []ParticleHandle) []ParticleHandle {
	dst = append(dst, ps.live...)
	return append(dst, ps.pending...)
}
