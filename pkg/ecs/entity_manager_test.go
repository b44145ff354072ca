package ecs

import "testing"

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1, ok1 := em.CreateEntity()
	id2, ok2 := em.CreateEntity()

	if !ok1 || !ok2 {
		t.Fatal("growable manager should always create entities")
	}

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("InvalidEntity must never be handed out")
	}
	if id1.Index() != 0 || id2.Index() != 1 {
		t.Errorf("slot indices: got %d,%d, want 0,1", id1.Index(), id2.Index())
	}
	if em.Count() != 2 {
		t.Errorf("Count: got %d, want 2", em.Count())
	}
}

func TestEntityIDPacking(t *testing.T) {
	id := NewEntityID(7, 3)
	if id.Index() != 7 {
		t.Errorf("Index: got %d, want 7", id.Index())
	}
	if id.Generation() != 3 {
		t.Errorf("Generation: got %d, want 3", id.Generation())
	}
}

func TestDestroyEntity_StaleIDRejected(t *testing.T) {
	em := NewEntityManager()
	id, _ := em.CreateEntity()

	if !em.DestroyEntity(id) {
		t.Fatal("first destroy should succeed")
	}
	if em.DestroyEntity(id) {
		t.Error("second destroy of the same id should be a no-op")
	}
	if em.IsAlive(id) {
		t.Error("destroyed id should not be alive")
	}

	// 槽位复用后旧ID仍然无效
	reused, _ := em.CreateEntity()
	if reused.Index() != id.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", id.Index(), reused.Index())
	}
	if reused == id {
		t.Error("reused slot must carry a new generation")
	}
	if em.IsAlive(id) {
		t.Error("stale id must not alias the reused slot")
	}
	if !em.IsAlive(reused) {
		t.Error("reused id should be alive")
	}
}

func TestFixedEntityManager_NeverGrows(t *testing.T) {
	em := NewFixedEntityManager(3)

	ids := make([]EntityID, 0, 3)
	for i := 0; i < 3; i++ {
		id, ok := em.CreateEntity()
		if !ok {
			t.Fatalf("create %d should succeed", i)
		}
		ids = append(ids, id)
	}
	if ids[0].Index() != 0 {
		t.Errorf("first slot: got %d, want 0", ids[0].Index())
	}

	if _, ok := em.CreateEntity(); ok {
		t.Error("fixed manager should report exhaustion")
	}
	if em.Capacity() != 3 {
		t.Errorf("Capacity: got %d, want 3", em.Capacity())
	}

	em.DestroyEntity(ids[1])
	em.DestroyEntity(ids[1])
	if em.Count() != 2 {
		t.Errorf("Count after double destroy: got %d, want 2", em.Count())
	}

	if _, ok := em.CreateEntity(); !ok {
		t.Error("freed slot should be reusable")
	}
	if _, ok := em.CreateEntity(); ok {
		t.Error("double destroy must not have freed the slot twice")
	}
}

func TestIsAlive_UnknownIDs(t *testing.T) {
	em := NewFixedEntityManager(2)
	tests := []struct {
		name string
		id   EntityID
	}{
		{"invalid", InvalidEntity},
		{"out of range", NewEntityID(10, 1)},
		{"never created", NewEntityID(0, 1)},
		{"wrong generation", NewEntityID(0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if em.IsAlive(tt.id) {
				t.Errorf("IsAlive(%v) = true, want false", tt.id)
			}
		})
	}
}

func TestReset(t *testing.T) {
	em := NewFixedEntityManager(4)
	a, _ := em.CreateEntity()
	b, _ := em.CreateEntity()

	em.Reset()

	if em.Count() != 0 {
		t.Errorf("Count after reset: got %d, want 0", em.Count())
	}
	if em.IsAlive(a) || em.IsAlive(b) {
		t.Error("ids created before Reset must be stale")
	}
	for i := 0; i < 4; i++ {
		if _, ok := em.CreateEntity(); !ok {
			t.Fatalf("slot %d should be free after reset", i)
		}
	}
}
