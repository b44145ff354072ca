package systems

import (
	"math/rand"
	"testing"
)

func TestParticlePool_AcquireUntilExhausted(t *testing.T) {
	pool := NewParticlePool(8)
	if pool.Cap() != 8 || pool.Available() != 8 {
		t.Fatalf("new pool: cap=%d available=%d, want 8/8", pool.Cap(), pool.Available())
	}

	for i := 0; i < 8; i++ {
		_, p, ok := pool.Acquire()
		if !ok {
			t.Fatalf("acquire %d failed before exhaustion", i)
		}
		if !p.Active {
			t.Errorf("acquired particle %d is not marked active", i)
		}
	}

	if _, _, ok := pool.Acquire(); ok {
		t.Error("acquire should fail on an exhausted pool")
	}
	if pool.Cap() != 8 {
		t.Errorf("pool grew to %d", pool.Cap())
	}
}

// TestParticlePool_DoubleRelease 验证重复释放不会破坏空闲列表
func TestParticlePool_DoubleRelease(t *testing.T) {
	pool := NewParticlePool(2)
	h, _, _ := pool.Acquire()

	if !pool.Release(h) {
		t.Fatal("first release should succeed")
	}
	if pool.Release(h) {
		t.Error("second release should be a no-op")
	}
	if pool.Get(h) != nil {
		t.Error("Get on a released handle should return nil")
	}
	checkConservation(t, pool)

	// 空闲列表中只能有两个槽位
	a, _, okA := pool.Acquire()
	b, _, okB := pool.Acquire()
	if !okA || !okB || a.Index() == b.Index() {
		t.Fatalf("expected two distinct slots, got %v %v (ok %v %v)", a, b, okA, okB)
	}
	if _, _, ok := pool.Acquire(); ok {
		t.Error("double release must not create a third slot")
	}

	// 旧句柄不能释放复用后的槽位
	if a.Index() == h.Index() && pool.Release(h) {
		t.Error("stale handle released a reused slot")
	}
}

// TestParticlePool_Conservation 随机 acquire/release 序列下 active + pooled == size
func TestParticlePool_Conservation(t *testing.T) {
	const size = 64
	pool := NewParticlePool(size)
	rng := rand.New(rand.NewSource(7))
	var held []ParticleHandle

	for step := 0; step < 5000; step++ {
		switch {
		case len(held) > 0 && rng.Intn(3) == 0:
			i := rng.Intn(len(held))
			pool.Release(held[i])
			if rng.Intn(4) == 0 {
				pool.Release(held[i]) // misuse must stay harmless
			}
			held[i] = held[len(held)-1]
			held = held[:len(held)-1]
		default:
			if h, _, ok := pool.Acquire(); ok {
				held = append(held, h)
			}
		}

		checkConservation(t, pool)
		if pool.Active() != len(held) {
			t.Fatalf("step %d: active %d, want %d", step, pool.Active(), len(held))
		}
	}
}

func TestParticlePool_ReleaseAll(t *testing.T) {
	pool := NewParticlePool(4)
	h, _, _ := pool.Acquire()
	pool.Acquire()

	pool.ReleaseAll()
	if pool.Active() != 0 || pool.Available() != 4 {
		t.Errorf("after ReleaseAll: active=%d available=%d", pool.Active(), pool.Available())
	}
	if pool.IsLive(h) {
		t.Error("handles from before ReleaseAll should be stale")
	}
}

func TestParticlePool_NoAllocs(t *testing.T) {
	pool := NewParticlePool(128)
	allocs := testing.AllocsPerRun(100, func() {
		var hs [16]ParticleHandle
		for i := range hs {
			hs[i], _, _ = pool.Acquire()
		}
		for _, h := range hs {
			pool.Release(h)
		}
	})
	if allocs != 0 {
		t.Errorf("acquire/release allocated %.1f times per run", allocs)
	}
}
