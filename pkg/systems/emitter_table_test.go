package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/ecs"
)

func TestEmitterTable_CreateGetRemove(t *testing.T) {
	table := NewEmitterTable()
	tpl := testTemplate("a")

	e := table.Create(tpl, tpl, mgl64.Vec2{10, 20})
	id := e.ID
	if !e.Active || e.Pos != (mgl64.Vec2{10, 20}) {
		t.Errorf("new emitter state wrong: %+v", e)
	}
	if got := table.Get(id); got == nil || got.Template != tpl {
		t.Fatal("Get did not return the created emitter")
	}

	if !table.Remove(id) {
		t.Fatal("Remove of a live id should succeed")
	}
	if table.Remove(id) {
		t.Error("second Remove should be a no-op")
	}
	if table.Get(id) != nil {
		t.Error("removed id still resolves")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d after removal", table.Len())
	}
}

// TestEmitterTable_StaleIDAfterReuse 槽位复用后旧 ID 必须失效
func TestEmitterTable_StaleIDAfterReuse(t *testing.T) {
	table := NewEmitterTable()
	tpl := testTemplate("a")

	old := table.Create(tpl, tpl, mgl64.Vec2{}).ID
	table.Remove(old)
	fresh := table.Create(tpl, tpl, mgl64.Vec2{1, 1}).ID

	if old.Index() != fresh.Index() {
		t.Fatalf("expected slot reuse, got %d and %d", old.Index(), fresh.Index())
	}
	if old == fresh {
		t.Fatal("reused slot handed out the same id")
	}
	if table.Get(old) != nil {
		t.Error("stale id aliases the reused slot")
	}
	if table.Remove(old) {
		t.Error("stale id removed the new emitter")
	}
	if table.Get(fresh) == nil {
		t.Error("fresh id lost")
	}
}

func TestEmitterTable_EachAndActiveCount(t *testing.T) {
	table := NewEmitterTable()
	tpl := testTemplate("a")
	var ids []ecs.EntityID
	for i := 0; i < 4; i++ {
		ids = append(ids, table.Create(tpl, tpl, mgl64.Vec2{}).ID)
	}
	table.Get(ids[1]).Active = false
	table.Remove(ids[2])

	seen := map[ecs.EntityID]int{}
	table.Each(func(e *components.EmitterInstance) { seen[e.ID]++ })
	if len(seen) != 3 {
		t.Errorf("Each visited %d emitters, want 3", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("emitter %v visited %d times", id, n)
		}
	}
	if table.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, want 2", table.ActiveCount())
	}

	table.Reset()
	if table.Len() != 0 || table.Get(ids[0]) != nil {
		t.Error("Reset left emitters behind")
	}
}
