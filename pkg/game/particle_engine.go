package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/ecs"
	"github.com/decker502/sparkfx/pkg/systems"
)

// ErrEngineDestroyed is returned by calls made after Destroy.
var ErrEngineDestroyed = errors.New("particle engine destroyed")

// EmitterID identifies a live emitter. Ids of removed emitters never
// resolve again, even after their slot is reused.
type EmitterID = ecs.EntityID

// ParticleEngine 粒子引擎
//
// The host-facing facade: owns the template catalog, the particle pool, the
// emitter table, the simulator and the batch renderer. All calls are
// synchronous and must come from one goroutine (or be serialized by the
// host); the engine has no internal locking.
//
// Typical frame:
//
//	engine.Update(dt)
//	engine.Render(backend)
type ParticleEngine struct {
	catalog   *systems.EmitterCatalog
	pool      *systems.ParticlePool
	emitters  *systems.EmitterTable
	particles *systems.ParticleSystem
	renderer  *systems.RenderSystem
	destroyed bool
}

// NewParticleEngine creates an engine with the built-in templates registered
// and the whole particle pool allocated.
func NewParticleEngine(cfg config.EngineConfig) (*ParticleEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := systems.NewParticlePool(cfg.PoolSize)
	table := systems.NewEmitterTable()
	ps := systems.NewParticleSystem(pool, table, cfg)

	log.Printf("[ParticleEngine] 初始化: pool=%d, maxParticles=%d, batchSize=%d",
		cfg.PoolSize, ps.MaxParticles(), cfg.BatchSize)

	return &ParticleEngine{
		catalog:   systems.NewDefaultCatalog(),
		pool:      pool,
		emitters:  table,
		particles: ps,
		renderer:  systems.NewRenderSystem(ps),
	}, nil
}

// RegisterTemplate validates and stores a template under name, replacing
// any template with the same name. Emitters already created keep the
// template they were created with.
func (e *ParticleEngine) RegisterTemplate(name string, t config.EmitterTemplate) error {
	if e.destroyed {
		return ErrEngineDestroyed
	}
	if err := e.catalog.Register(name, t); err != nil {
		return fmt.Errorf("failed to register template %q: %w", name, err)
	}
	return nil
}

// LoadTemplates registers every template in a YAML template file and
// returns how many were registered. Nothing is registered if any template
// in the file is invalid.
func (e *ParticleEngine) LoadTemplates(path string) (int, error) {
	if e.destroyed {
		return 0, ErrEngineDestroyed
	}
	templates, err := config.LoadEmitterTemplates(path)
	if err != nil {
		return 0, err
	}
	for _, t := range templates {
		if err := e.catalog.Register(t.Name, *t); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	log.Printf("[ParticleEngine] 从 %s 加载了 %d 个模板", path, len(templates))
	return len(templates), nil
}

// Templates returns the registered template names in sorted order.
func (e *ParticleEngine) Templates() []string {
	if e.destroyed {
		return nil
	}
	return e.catalog.Names()
}

// Template returns the registered template for name.
func (e *ParticleEngine) Template(name string) (*config.EmitterTemplate, error) {
	if e.destroyed {
		return nil, ErrEngineDestroyed
	}
	return e.catalog.Get(name)
}

// CreateEmitter starts an emitter of the named template at (x, y).
// Overrides apply to this instance only. A one-shot template emits its whole
// burst before CreateEmitter returns; particles the pool or the particle cap
// cannot hold are dropped silently.
func (e *ParticleEngine) CreateEmitter(name string, x, y float64, overrides ...config.Override) (EmitterID, error) {
	if e.destroyed {
		return ecs.InvalidEntity, ErrEngineDestroyed
	}
	tpl, err := e.catalog.Get(name)
	if err != nil {
		return ecs.InvalidEntity, err
	}
	params, err := config.Merge(tpl, overrides...)
	if err != nil {
		log.Printf("[ParticleEngine] 创建发射器失败: %v", err)
		return ecs.InvalidEntity, err
	}
	return e.particles.CreateEmitter(tpl, params, mgl64.Vec2{x, y}), nil
}

// StopEmitter stops emission but keeps the record for inspection. Unknown
// ids are a no-op; the result reports whether id was live.
func (e *ParticleEngine) StopEmitter(id EmitterID) bool {
	if e.destroyed {
		return false
	}
	em := e.emitters.Get(id)
	if em == nil {
		return false
	}
	em.Active = false
	return true
}

// RemoveEmitter deletes the emitter record. Its particles live out their
// lives. Unknown ids are a no-op.
func (e *ParticleEngine) RemoveEmitter(id EmitterID) bool {
	if e.destroyed {
		return false
	}
	return e.emitters.Remove(id)
}

// MoveEmitter repositions a live emitter. Unknown ids are a no-op.
func (e *ParticleEngine) MoveEmitter(id EmitterID, x, y float64) bool {
	if e.destroyed {
		return false
	}
	em := e.emitters.Get(id)
	if em == nil {
		return false
	}
	em.Pos = mgl64.Vec2{x, y}
	return true
}

// Emitter returns a copy of the emitter record for id.
func (e *ParticleEngine) Emitter(id EmitterID) (components.EmitterInstance, bool) {
	if e.destroyed {
		return components.EmitterInstance{}, false
	}
	em := e.emitters.Get(id)
	if em == nil {
		return components.EmitterInstance{}, false
	}
	return *em, true
}

// SetGlobalForces replaces the gravity and wind vectors (px/s²).
func (e *ParticleEngine) SetGlobalForces(gravity, wind mgl64.Vec2) {
	if e.destroyed {
		return
	}
	e.particles.SetForces(gravity, wind)
}

// GlobalForces returns the gravity and wind vectors.
func (e *ParticleEngine) GlobalForces() (gravity, wind mgl64.Vec2) {
	if e.destroyed {
		return mgl64.Vec2{}, mgl64.Vec2{}
	}
	return e.particles.Forces()
}

// SetMaxParticles sets the live-particle cap. The effective cap is never
// larger than the pool.
func (e *ParticleEngine) SetMaxParticles(n int) error {
	if e.destroyed {
		return ErrEngineDestroyed
	}
	if err := e.particles.SetMaxParticles(n); err != nil {
		return err
	}
	log.Printf("[ParticleEngine] 粒子上限设置为 %d", e.particles.MaxParticles())
	return nil
}

// SetBounds replaces the world rectangle particles bounce inside.
func (e *ParticleEngine) SetBounds(b config.Bounds) {
	if e.destroyed {
		return
	}
	e.particles.SetBounds(b)
}

// Stats returns a telemetry snapshot. A destroyed engine reports zeros.
func (e *ParticleEngine) Stats() systems.Stats {
	if e.destroyed {
		return systems.Stats{}
	}
	return e.particles.Stats()
}

// Update advances emitters and particles by dt seconds.
func (e *ParticleEngine) Update(dt float64) {
	if e.destroyed {
		return
	}
	e.particles.Update(dt)
}

// Render sends every live particle to backend, grouped by blend mode, and
// returns the number of primitives drawn.
func (e *ParticleEngine) Render(backend systems.DrawBackend) int {
	if e.destroyed {
		return 0
	}
	return e.renderer.Render(backend)
}

// ApplyImpulse pushes particles within radius of (x, y) outward.
func (e *ParticleEngine) ApplyImpulse(x, y, radius, strength float64) int {
	if e.destroyed {
		return 0
	}
	return e.particles.ApplyImpulse(mgl64.Vec2{x, y}, radius, strength)
}

// ClearParticles returns every live particle to the pool. Emitters keep
// running.
func (e *ParticleEngine) ClearParticles() {
	if e.destroyed {
		return
	}
	e.particles.ClearParticles()
}

// ClearAll drops every particle and every emitter.
func (e *ParticleEngine) ClearAll() {
	if e.destroyed {
		return
	}
	e.particles.ClearParticles()
	e.emitters.Reset()
}

// Destroy releases every engine resource. The engine is unusable afterwards:
// calls that return an error report ErrEngineDestroyed, the rest are no-ops.
func (e *ParticleEngine) Destroy() {
	if e.destroyed {
		return
	}
	e.ClearAll()
	e.catalog = nil
	e.pool = nil
	e.emitters = nil
	e.particles = nil
	e.renderer = nil
	e.destroyed = true
	log.Printf("[ParticleEngine] 已销毁")
}

// Destroyed reports whether Destroy has been called.
func (e *ParticleEngine) Destroyed() bool {
	return e.destroyed
}
