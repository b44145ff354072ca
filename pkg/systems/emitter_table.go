package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/components"
	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/ecs"
)

// EmitterTable 发射器表
//
// A generational slot map of emitter instances. Ids of removed emitters stay
// stale even after their slot is reused. Iteration walks slots in index
// order, so every live emitter is visited exactly once per pass.
type EmitterTable struct {
	ids   *ecs.EntityManager
	slots []components.EmitterInstance
}

// NewEmitterTable creates an empty table.
func NewEmitterTable() *EmitterTable {
	return &EmitterTable{ids: ecs.NewEntityManager()}
}

// Create inserts an active emitter and returns its record. The pointer is
// valid until the next Create, which may grow the backing slice.
func (t *EmitterTable) Create(tpl, params *config.EmitterTemplate, pos mgl64.Vec2) *components.EmitterInstance {
	id, _ := t.ids.CreateEntity()
	idx := int(id.Index())
	if idx == len(t.slots) {
		t.slots = append(t.slots, components.EmitterInstance{})
	}
	t.slots[idx] = components.EmitterInstance{
		ID:       id,
		Template: tpl,
		Params:   params,
		Pos:      pos,
		Active:   true,
	}
	return &t.slots[idx]
}

// Get returns the live record for id, or nil when id is unknown or stale.
func (t *EmitterTable) Get(id ecs.EntityID) *components.EmitterInstance {
	if !t.ids.IsAlive(id) {
		return nil
	}
	return &t.slots[id.Index()]
}

// Remove deletes the record for id. Unknown ids are a no-op.
func (t *EmitterTable) Remove(id ecs.EntityID) bool {
	if !t.ids.DestroyEntity(id) {
		return false
	}
	t.slots[id.Index()] = components.EmitterInstance{}
	return true
}

// Each calls fn for every live emitter in slot order.
func (t *EmitterTable) Each(fn func(e *components.EmitterInstance)) {
	for i := range t.slots {
		e := &t.slots[i]
		if e.ID != ecs.InvalidEntity {
			fn(e)
		}
	}
}

// Len returns the number of records in the table, active or not.
func (t *EmitterTable) Len() int {
	return t.ids.Count()
}

// ActiveCount returns the number of emitters still emitting.
func (t *EmitterTable) ActiveCount() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].ID != ecs.InvalidEntity && t.slots[i].Active {
			n++
		}
	}
	return n
}

// Reset removes every record. Outstanding ids go stale.
func (t *EmitterTable) Reset() {
	t.ids.Reset()
	for i := range t.slots {
		t.slots[i] = components.EmitterInstance{}
	}
}
