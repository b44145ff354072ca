// Package ecs provides generation-checked entity ids.
//
// An EntityID packs a slot index (low 32 bits) and a generation counter
// (high 32 bits). Destroying an entity bumps the slot's generation, so an id
// kept past destruction is detected as stale instead of aliasing whatever
// entity reuses the slot later.
package ecs

// EntityID 是实体的唯一标识符（槽位索引 + 代数）
type EntityID uint64

// InvalidEntity is the zero id. It is never handed out.
const InvalidEntity EntityID = 0

// NewEntityID packs a slot index and generation into an id.
func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index encoded in the id.
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation returns the slot generation encoded in the id.
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

// EntityManager allocates and recycles entity ids.
//
// A manager created with NewFixedEntityManager owns a fixed number of slots
// and never grows: CreateEntity reports false once every slot is in use.
// NewEntityManager returns a manager that appends a slot when the free list
// is empty.
type EntityManager struct {
	generations []uint32 // current generation per slot
	alive       []bool
	free        []uint32 // LIFO free list of slot indices
	fixed       bool
	count       int
}

// NewEntityManager 创建一个可增长的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		generations: make([]uint32, 0, 16),
		alive:       make([]bool, 0, 16),
		free:        make([]uint32, 0, 16),
	}
}

// NewFixedEntityManager creates a manager with exactly capacity slots. All
// bookkeeping storage is allocated here; CreateEntity and DestroyEntity never
// allocate afterwards.
func NewFixedEntityManager(capacity int) *EntityManager {
	if capacity < 0 {
		capacity = 0
	}
	em := &EntityManager{
		generations: make([]uint32, capacity),
		alive:       make([]bool, capacity),
		free:        make([]uint32, capacity),
		fixed:       true,
	}
	// Slot 0 is handed out first.
	for i := 0; i < capacity; i++ {
		em.generations[i] = 1
		em.free[i] = uint32(capacity - 1 - i)
	}
	return em
}

// CreateEntity 创建新实体并返回唯一ID
//
// Returns false only for a fixed manager with no free slot.
func (em *EntityManager) CreateEntity() (EntityID, bool) {
	var index uint32
	if n := len(em.free); n > 0 {
		index = em.free[n-1]
		em.free = em.free[:n-1]
	} else {
		if em.fixed {
			return InvalidEntity, false
		}
		index = uint32(len(em.generations))
		em.generations = append(em.generations, 1)
		em.alive = append(em.alive, false)
	}
	em.alive[index] = true
	em.count++
	return NewEntityID(index, em.generations[index]), true
}

// DestroyEntity releases the slot held by id. Destroying a stale or unknown
// id is a no-op and returns false, so a double destroy can never push the
// same slot onto the free list twice.
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if !em.IsAlive(id) {
		return false
	}
	index := id.Index()
	em.alive[index] = false
	em.generations[index]++
	if em.generations[index] == 0 {
		// 代数回绕时跳过 0，保证 InvalidEntity 永远不会被分配
		em.generations[index] = 1
	}
	em.free = append(em.free, index)
	em.count--
	return true
}

// IsAlive reports whether id refers to a currently allocated slot.
func (em *EntityManager) IsAlive(id EntityID) bool {
	index := id.Index()
	if id == InvalidEntity || int(index) >= len(em.generations) {
		return false
	}
	return em.alive[index] && em.generations[index] == id.Generation()
}

// Count returns the number of live entities.
func (em *EntityManager) Count() int {
	return em.count
}

// Capacity returns the number of slots currently owned by the manager.
func (em *EntityManager) Capacity() int {
	return len(em.generations)
}

// Reset destroys every live entity. Generations are bumped so ids handed out
// before the reset stay stale.
func (em *EntityManager) Reset() {
	em.free = em.free[:0]
	for i := len(em.generations) - 1; i >= 0; i-- {
		if em.alive[i] {
			em.alive[i] = false
			em.generations[i]++
			if em.generations[i] == 0 {
				em.generations[i] = 1
			}
		}
		em.free = append(em.free, uint32(i))
	}
	em.count = 0
}
