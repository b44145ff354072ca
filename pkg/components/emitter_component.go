package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/sparkfx/pkg/config"
	"github.com/decker502/sparkfx/pkg/ecs"
)

// EmitterInstance 发射器实例
//
// Mutable live state of one emission source. Template is the shared,
// registered template; Params is what the emitter actually spawns with,
// which is Template itself unless the instance was created with overrides.
type EmitterInstance struct {
	ID       ecs.EntityID
	Template *config.EmitterTemplate
	Params   *config.EmitterTemplate

	Pos    mgl64.Vec2 // may be moved after creation
	Active bool       // false once expired or stopped; inactive emitters emit nothing

	Age       float64 // seconds since creation, only advanced for finite durations
	EmitTimer float64 // fractional emission credit in seconds

	Emitted int // particles actually spawned
	Dropped int // emission attempts lost to capacity limits
	Live    int // particles attributed to this emitter that are still live
}

// Finished reports whether the emitter is inactive and owns no live particles.
func (e *EmitterInstance) Finished() bool {
	return !e.Active && e.Live == 0
}
