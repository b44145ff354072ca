package systems

import "time"

// Stats is a read-only snapshot of engine telemetry.
type Stats struct {
	ActiveParticles int // live particles, including those not yet integrated
	PooledParticles int // free pool slots
	PoolCapacity    int
	MaxParticles    int // effective live-particle cap

	ActiveEmitters int // emitters still emitting
	Emitters       int // records in the emitter table, active or not

	DroppedEmissions int           // emission attempts lost to capacity, cumulative
	LastFrameCost    time.Duration // wall time of the last Update
	LastFrameUpdated int           // particles integrated by the last Update
}

type frameStats struct {
	dropped     int
	lastCost    time.Duration
	lastUpdated int
}

// Stats returns the current telemetry.
func (ps *ParticleSystem) Stats() Stats {
	return Stats{
		ActiveParticles:  ps.LiveCount(),
		PooledParticles:  ps.pool.Available(),
		PoolCapacity:     ps.pool.Cap(),
		MaxParticles:     ps.maxParticles,
		ActiveEmitters:   ps.emitters.ActiveCount(),
		Emitters:         ps.emitters.Len(),
		DroppedEmissions: ps.stats.dropped,
		LastFrameCost:    ps.stats.lastCost,
		LastFrameUpdated: ps.stats.lastUpdated,
	}
}

// ResetDropped zeroes the cumulative dropped-emission counter.
func (ps *ParticleSystem) ResetDropped() {
	ps.stats.dropped = 0
}
