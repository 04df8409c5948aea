// Package block implements the single-block lattice container: a dense
// array of cells over a Box3D, plus the ordered list of data processors
// attached to it and the collide/stream primitives that drive one
// simulation step. It corresponds to Palabos's AtomicBlock3D /
// BlockLatticeBase3D pair, minus the multi-block/MPI machinery those
// types also carry.
package block

import (
	"github.com/san-kum/lbmcore/internal/cell"
	"github.com/san-kum/lbmcore/internal/compute"
	"github.com/san-kum/lbmcore/internal/dataproc"
	"github.com/san-kum/lbmcore/internal/descriptor"
	"github.com/san-kum/lbmcore/internal/dynamics"
	"github.com/san-kum/lbmcore/internal/geom"
	"github.com/san-kum/lbmcore/internal/stats"
)

// serialThreshold is the cell count below which Collide runs inline
// instead of spawning goroutines (via compute.ParallelFor).
const serialThreshold = 4096

// AtomicBlock3D is a dense 3D array of cells over a bounding box, with a
// list of scheduled data processors and its own statistics accumulator.
type AtomicBlock3D struct {
	domain     geom.Box3D
	desc       descriptor.Descriptor
	cells      []*cell.Cell
	statistics *stats.BlockStatistics

	// Periodic, when set, makes Stream wrap any population whose target
	// falls outside domain back around modulo the block's extent along
	// the axis it crossed, instead of dropping it. A single AtomicBlock3D
	// stands in for the infinite periodic lattice this way; multi-block
	// setups would instead fill the envelope from a neighboring block.
	Periodic bool

	bulkProcessors     []dataproc.DataProcessor3D
	envelopeProcessors []dataproc.DataProcessor3D

	// nextF is the streaming target buffer, indexed the same way as
	// cells; Stream writes into it before swapping, so no cell is
	// overwritten while still being read as a source mid-sweep.
	nextF [][]float64
}

// NewAtomicBlock3D allocates a block over domain, initializing every cell
// with a clone of defaultDyn.
func NewAtomicBlock3D(domain geom.Box3D, defaultDyn dynamics.Dynamics) *AtomicBlock3D {
	n := domain.NCells()
	b := &AtomicBlock3D{
		domain:     domain,
		desc:       defaultDyn.Descriptor(),
		cells:      make([]*cell.Cell, n),
		statistics: stats.New(),
		nextF:      make([][]float64, n),
	}
	for i := range b.cells {
		dyn := defaultDyn.Clone().(dynamics.Dynamics)
		b.cells[i] = cell.New(dyn)
		b.nextF[i] = make([]float64, dyn.Descriptor().Q())
	}
	return b
}

// NewPeriodicAtomicBlock3D is NewAtomicBlock3D with Periodic set, for
// single-block simulations of an infinite or wrap-around domain (Taylor-
// Green vortex, periodic channel flow).
func NewPeriodicAtomicBlock3D(domain geom.Box3D, defaultDyn dynamics.Dynamics) *AtomicBlock3D {
	b := NewAtomicBlock3D(domain, defaultDyn)
	b.Periodic = true
	return b
}

func (b *AtomicBlock3D) BoundingBox() geom.Box3D    { return b.domain }
func (b *AtomicBlock3D) Descriptor() descriptor.Descriptor { return b.desc }
func (b *AtomicBlock3D) Statistics() *stats.BlockStatistics { return b.statistics }

func (b *AtomicBlock3D) index(x, y, z int) int {
	return (x-b.domain.X0)*b.domain.Ny()*b.domain.Nz() + (y-b.domain.Y0)*b.domain.Nz() + (z - b.domain.Z0)
}

// Get returns the cell at (x,y,z), which must lie within the block's
// bounding box.
func (b *AtomicBlock3D) Get(x, y, z int) *cell.Cell {
	return b.cells[b.index(x, y, z)]
}

// SetDynamics installs dyn (cloned) on every cell in sub.
func (b *AtomicBlock3D) SetDynamics(sub geom.Box3D, dyn dynamics.Dynamics) {
	inter, ok := b.domain.Intersect(sub)
	if !ok {
		return
	}
	for x := inter.X0; x <= inter.X1; x++ {
		for y := inter.Y0; y <= inter.Y1; y++ {
			for z := inter.Z0; z <= inter.Z1; z++ {
				b.cells[b.index(x, y, z)].Dyn = dyn.Clone().(dynamics.Dynamics)
			}
		}
	}
}

// SpecifyStatisticsStatus toggles whether cells in sub feed the block's
// statistics accumulator during Collide.
func (b *AtomicBlock3D) SpecifyStatisticsStatus(sub geom.Box3D, status bool) {
	inter, ok := b.domain.Intersect(sub)
	if !ok {
		return
	}
	for x := inter.X0; x <= inter.X1; x++ {
		for y := inter.Y0; y <= inter.Y1; y++ {
			for z := inter.Z0; z <= inter.Z1; z++ {
				b.cells[b.index(x, y, z)].TakesStatistics = status
			}
		}
	}
}

// AddInternalProcessor appends a bulk-domain processor, executed before
// collide on every step.
func (b *AtomicBlock3D) AddInternalProcessor(p dataproc.DataProcessor3D) {
	b.bulkProcessors = append(b.bulkProcessors, p)
}

// AddEnvelopeProcessor appends an envelope-domain processor, executed
// after streaming (boundary conditions, typically).
func (b *AtomicBlock3D) AddEnvelopeProcessor(p dataproc.DataProcessor3D) {
	b.envelopeProcessors = append(b.envelopeProcessors, p)
}

// AttachInternalProcessor resolves gen against this block and, on
// success, registers the resulting processor the same way
// AddInternalProcessor would. This is the generator/Generate path
// spec'd for the framework; AddInternalProcessor remains for callers
// that already hold a bound DataProcessor3D.
func (b *AtomicBlock3D) AttachInternalProcessor(gen dataproc.Generator3D) error {
	p, err := gen.Generate([]dataproc.Target{b})
	if err != nil {
		return err
	}
	b.AddInternalProcessor(p)
	return nil
}

// AttachEnvelopeProcessor is AttachInternalProcessor for the envelope
// processor list.
func (b *AtomicBlock3D) AttachEnvelopeProcessor(gen dataproc.Generator3D) error {
	p, err := gen.Generate([]dataproc.Target{b})
	if err != nil {
		return err
	}
	b.AddEnvelopeProcessor(p)
	return nil
}

// ExecuteInternalProcessors runs every registered bulk processor, in
// registration order -- ordering is part of the scheduling contract, so
// callers that need commutative processors must say so themselves.
func (b *AtomicBlock3D) ExecuteInternalProcessors() error {
	for _, p := range b.bulkProcessors {
		if err := p.Process(); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteEnvelopeProcessors runs every registered envelope processor.
func (b *AtomicBlock3D) ExecuteEnvelopeProcessors() error {
	for _, p := range b.envelopeProcessors {
		if err := p.Process(); err != nil {
			return err
		}
	}
	return nil
}

// Collide relaxes every cell in domain toward equilibrium, gathering
// statistics into b.statistics. Work is partitioned across z-slabs via
// compute.ParallelFor.
func (b *AtomicBlock3D) Collide(domain geom.Box3D) error {
	inter, ok := b.domain.Intersect(domain)
	if !ok {
		return nil
	}
	partials := make([]*stats.BlockStatistics, inter.Nz())
	var firstErr error
	compute.ParallelFor(inter.Nz(), serialThreshold/max(1, inter.Nx()*inter.Ny()), func(zStart, zEnd int) {
		// local snapshots b.statistics' currently published values so
		// dynamics like ConstRhoBGK read the previous step's average
		// even while every goroutine accumulates into its own sums.
		local := stats.Snapshot(b.statistics)
		for zi := zStart; zi < zEnd; zi++ {
			z := inter.Z0 + zi
			for x := inter.X0; x <= inter.X1; x++ {
				for y := inter.Y0; y <= inter.Y1; y++ {
					c := b.cells[b.index(x, y, z)]
					if err := c.Dyn.(dynamics.Dynamics).Collide(c, local, c.TakesStatistics); err != nil && firstErr == nil {
						firstErr = err
					}
				}
			}
		}
		partials[zStart] = local
	})
	if firstErr != nil {
		return firstErr
	}
	merged := stats.Merge(nonNil(partials)...)
	b.statistics.Accumulate(merged)
	return nil
}

func nonNil(parts []*stats.BlockStatistics) []*stats.BlockStatistics {
	out := make([]*stats.BlockStatistics, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// wrapCoord folds v back into [lo, lo+n) by modular arithmetic, used to
// carry a streaming target back onto the opposite face of the domain.
func wrapCoord(v, lo, n int) int {
	rel := ((v-lo)%n + n) % n
	return lo + rel
}

// Stream propagates every population one lattice step along its
// direction, writing into b.nextF so no cell's incoming populations are
// overwritten mid-sweep (the classic push/pull streaming aliasing
// hazard). When Periodic is set, a target that falls outside domain
// wraps around modulo the block's extent on the axis it crossed; when it
// is not, such populations are dropped; an incoming link that no source
// streams into keeps its pre-stream value, for a boundary processor to
// overwrite afterward, matching Palabos's per-block edge handling.
func (b *AtomicBlock3D) Stream(domain geom.Box3D) error {
	inter, ok := b.domain.Intersect(domain)
	if !ok {
		return nil
	}
	desc := b.desc
	// touched records every destination index actually written below, so
	// the copy-back pass can commit exactly those cells: with a proper
	// sub-box of b.domain, a destination can fall inside b.domain but
	// outside inter, and still receive a streamed population.
	touched := make(map[int]struct{})
	for x := inter.X0; x <= inter.X1; x++ {
		for y := inter.Y0; y <= inter.Y1; y++ {
			for z := inter.Z0; z <= inter.Z1; z++ {
				src := b.cells[b.index(x, y, z)]
				for i := 0; i < desc.Q(); i++ {
					var dx, dy, dz int
					dx = desc.C(i, 0)
					if desc.D() > 1 {
						dy = desc.C(i, 1)
					}
					if desc.D() > 2 {
						dz = desc.C(i, 2)
					}
					tx, ty, tz := x+dx, y+dy, z+dz
					if !b.domain.Contains(tx, ty, tz) {
						if !b.Periodic {
							continue
						}
						tx = wrapCoord(tx, b.domain.X0, b.domain.Nx())
						ty = wrapCoord(ty, b.domain.Y0, b.domain.Ny())
						tz = wrapCoord(tz, b.domain.Z0, b.domain.Nz())
					}
					idx := b.index(tx, ty, tz)
					if _, seen := touched[idx]; !seen {
						copy(b.nextF[idx], b.cells[idx].F)
						touched[idx] = struct{}{}
					}
					b.nextF[idx][i] = src.F[i]
				}
			}
		}
	}
	for idx := range touched {
		copy(b.cells[idx].F, b.nextF[idx])
	}
	return nil
}

// CollideAndStream runs Collide and then Stream over domain.
func (b *AtomicBlock3D) CollideAndStream(domain geom.Box3D) error {
	if err := b.Collide(domain); err != nil {
		return err
	}
	return b.Stream(domain)
}
