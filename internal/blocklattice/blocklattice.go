// Package blocklattice sequences one simulation time step over a single
// AtomicBlock3D: pre-step bulk processors, collide, stream, post-step
// envelope processors, then publish statistics and advance the time
// counter. It mirrors Palabos's BlockLatticeBase3D, minus the
// multi-block/parallel bookkeeping that type also carries.
package blocklattice

import (
	"github.com/san-kum/lbmcore/internal/block"
	"github.com/san-kum/lbmcore/internal/geom"
)

// TimeCounter tracks the number of completed steps, the way Palabos's
// TimeCounter does for checkpoint/restart bookkeeping.
type TimeCounter struct {
	time int64
}

func (t *TimeCounter) Time() int64  { return t.time }
func (t *TimeCounter) Increment()   { t.time++ }
func (t *TimeCounter) Reset(v int64) { t.time = v }

// BlockLattice drives one AtomicBlock3D through its step sequence.
type BlockLattice struct {
	Block       *block.AtomicBlock3D
	timeCounter TimeCounter
}

func New(b *block.AtomicBlock3D) *BlockLattice {
	return &BlockLattice{Block: b}
}

func (l *BlockLattice) TimeCounter() *TimeCounter { return &l.timeCounter }

// Collide runs collision over domain only (no processors, no streaming,
// no time increment) -- exposed for callers assembling a custom step
// sequence, e.g. a test that checks collide is a no-op on equilibrium
// populations.
func (l *BlockLattice) Collide(domain geom.Box3D) error {
	return l.Block.Collide(domain)
}

// CollideAll runs Collide over the block's full bounding box.
func (l *BlockLattice) CollideAll() error {
	return l.Block.Collide(l.Block.BoundingBox())
}

// Stream runs streaming over domain only.
func (l *BlockLattice) Stream(domain geom.Box3D) error {
	return l.Block.Stream(domain)
}

// StreamAll runs Stream over the block's full bounding box.
func (l *BlockLattice) StreamAll() error {
	return l.Block.Stream(l.Block.BoundingBox())
}

// CollideAndStream runs the full step over domain: pre-step bulk
// processors, collide, stream, post-step envelope processors, publish
// statistics, increment time. Statistics are only published once the
// full step has settled, so a reader never observes a partially-updated
// accumulator.
func (l *BlockLattice) CollideAndStream(domain geom.Box3D) error {
	if err := l.Block.ExecuteInternalProcessors(); err != nil {
		return err
	}
	if err := l.Block.Collide(domain); err != nil {
		return err
	}
	if err := l.Block.Stream(domain); err != nil {
		return err
	}
	if err := l.Block.ExecuteEnvelopeProcessors(); err != nil {
		return err
	}
	l.Block.Statistics().Publish()
	l.timeCounter.Increment()
	return nil
}

// CollideAndStreamAll runs CollideAndStream over the block's full
// bounding box -- the normal per-timestep entry point.
func (l *BlockLattice) CollideAndStreamAll() error {
	return l.CollideAndStream(l.Block.BoundingBox())
}

func (l *BlockLattice) GetStoredAverageDensity() float64 {
	return l.Block.Statistics().StoredAverageDensity()
}

func (l *BlockLattice) GetStoredAverageEnergy() float64 {
	return l.Block.Statistics().StoredAverageEnergy()
}

func (l *BlockLattice) GetStoredAverageVelocity() float64 {
	return l.Block.Statistics().StoredAverageVelocity()
}
