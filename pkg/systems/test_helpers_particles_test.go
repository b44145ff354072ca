package systems

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/ecs"
)

// testEngine bundles the pieces a ParticleEngine would own.
type testEngine struct {
	pool    *ParticlePool
	table   *EmitterTable
	ps      *ParticleSystem
	catalog *EmitterCatalog
}

func newTestEngine(t *testing.T, poolSize int, mutate func(*config.EngineConfig)) *testEngine {
	t.Helper()
	cfg := config.DefaultEngineConfig()
	cfg.PoolSize = poolSize
	cfg.MaxParticles = poolSize
	cfg.Gravity = config.Vec{}
	cfg.Seed = 42
	if mutate != nil {
		mutate(&cfg)
	}
	pool := NewParticlePool(cfg.PoolSize)
	table := NewEmitterTable()
	return &testEngine{
		pool:    pool,
		table:   table,
		ps:      NewParticleSystem(pool, table, cfg),
		catalog: NewDefaultCatalog(),
	}
}

// spawn creates an emitter from a registered template.
func (te *testEngine) spawn(t *testing.T, name string, x, y float64, overrides ...config.Override) ecs.EntityID {
	t.Helper()
	tpl, err := te.catalog.Get(name)
	if err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	params, err := config.Merge(tpl, overrides...)
	if err != nil {
		t.Fatalf("Merge(%q): %v", name, err)
	}
	return te.ps.CreateEmitter(tpl, params, mgl64.Vec2{x, y})
}

// testTemplate returns a valid one-particle template moving along +X at
// 100 px/s with no forces, drag or randomness.
func testTemplate(name string, mods ...func(*config.EmitterTemplate)) *config.EmitterTemplate {
	t := &config.EmitterTemplate{
		Name:       name,
		BurstCount: 1,
		Speed:      config.Fixed(100),
		Life:       config.Fixed(10),
		Size:       config.Fixed(4),
		Colors:     []color.NRGBA{{R: 255, G: 255, B: 255, A: 255}},
		ScaleStart: 1, ScaleEnd: 1,
		AlphaStart: 1, AlphaEnd: 1,
		Drag: 1,
		Mass: 1,
	}
	for _, m := range mods {
		m(t)
	}
	return t
}

// register adds a template built by testTemplate to the catalog.
func (te *testEngine) register(t *testing.T, tpl *config.EmitterTemplate) {
	t.Helper()
	if err := te.catalog.Register(tpl.Name, *tpl); err != nil {
		t.Fatalf("Register(%q): %v", tpl.Name, err)
	}
}

// only returns the single live particle.
func (te *testEngine) only(t *testing.T) ParticleHandle {
	t.Helper()
	handles := te.ps.LiveHandles(nil)
	if len(handles) != 1 {
		t.Fatalf("expected exactly 1 live particle, got %d", len(handles))
	}
	return handles[0]
}

func checkConservation(t *testing.T, pool *ParticlePool) {
	t.Helper()
	if pool.Active()+pool.Available() != pool.Cap() {
		t.Fatalf("pool conservation broken: active %d + pooled %d != cap %d",
			pool.Active(), pool.Available(), pool.Cap())
	}
}
