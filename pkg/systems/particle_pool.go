package systems

import (
	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/ecs"
)

// ParticleHandle identifies an acquired pool slot. The generation part makes
// handles from before a release stale.
type ParticleHandle = ecs.EntityID

// ParticlePool 粒子对象池
//
// Owns every particle record for the engine's lifetime. The backing slice
// and the slot allocator are sized once in NewParticlePool; Acquire and
// Release never allocate and the pool never grows.
//
// Pool exhaustion is a normal condition under load: Acquire reports false
// and the caller drops the emission.
type ParticlePool struct {
	slots     *ecs.EntityManager
	particles []components.Particle
}

// NewParticlePool pre-allocates size default-constructed particles.
func NewParticlePool(size int) *ParticlePool {
	if size < 0 {
		size = 0
	}
	return &ParticlePool{
		slots:     ecs.NewFixedEntityManager(size),
		particles: make([]components.Particle, size),
	}
}

// Acquire takes an inactive slot, resets it and marks it active.
// Returns false when the pool is exhausted.
func (p *ParticlePool) Acquire() (ParticleHandle, *components.Particle, bool) {
	h, ok := p.slots.CreateEntity()
	if !ok {
		return ecs.InvalidEntity, nil, false
	}
	part := &p.particles[h.Index()]
	*part = components.Particle{Active: true}
	return h, part, true
}

// Release returns a slot to the pool. Releasing a stale, foreign or already
// released handle is a no-op that returns false; the free list is never
// corrupted by a double release.
func (p *ParticlePool) Release(h ParticleHandle) bool {
	if !p.slots.DestroyEntity(h) {
		return false
	}
	p.particles[h.Index()].Active = false
	return true
}

// Get returns the live particle for h, or nil when h is stale.
func (p *ParticlePool) Get(h ParticleHandle) *components.Particle {
	if !p.slots.IsAlive(h) {
		return nil
	}
	return &p.particles[h.Index()]
}

// IsLive reports whether h refers to an acquired slot.
func (p *ParticlePool) IsLive(h ParticleHandle) bool {
	return p.slots.IsAlive(h)
}

// Cap returns the fixed pool size.
func (p *ParticlePool) Cap() int {
	return len(p.particles)
}

// Active returns the number of acquired slots.
func (p *ParticlePool) Active() int {
	return p.slots.Count()
}

// Available returns the number of pooled slots.
func (p *ParticlePool) Available() int {
	return len(p.particles) - p.slots.Count()
}

// ReleaseAll returns every slot to the pool. Outstanding handles go stale.
func (p *ParticlePool) ReleaseAll() {
	p.slots.Reset()
	for i := range p.particles {
		p.particles[i].Active = false
	}
}
