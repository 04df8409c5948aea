// Package cell defines the per-site storage of a lattice: q populations
// plus a small block of external scalars, and a non-owning reference to
// the site's dynamics.
//
// Cell only depends on the minimal capability a storage layer needs from a
// dynamics object (cloning and descriptor lookup); the full collision
// contract lives in package dynamics, which imports Cell rather than the
// other way around, mirroring how Palabos's Cell holds a Dynamics* without
// the dynamics header needing to know about storage layout.
package cell

import "github.com/san-kum/lbmcore/internal/descriptor"

// Dynamics is the minimal capability Cell needs from its collision
// operator: enough to size storage and to deep-copy a cell.
type Dynamics interface {
	Descriptor() descriptor.Descriptor
	Clone() Dynamics
}

// Cell holds one grid site's state. F has length Descriptor.Q(); External
// has length Descriptor.External().NumScalars. Dyn is shared: it may be a
// per-site override or the block's default dynamics.
type Cell struct {
	F        []float64
	External []float64
	Dyn      Dynamics

	// TakesStatistics gates whether Collide feeds this cell's (rhoBar,
	// uSqr) reading into the block's statistics accumulator; boundary
	// and envelope cells are typically excluded via
	// AtomicBlock3D.SpecifyStatisticsStatus.
	TakesStatistics bool
}

// New allocates a cell for the given dynamics, sizing F and External from
// the dynamics' descriptor. TakesStatistics defaults to true.
func New(dyn Dynamics) *Cell {
	d := dyn.Descriptor()
	return &Cell{
		F:               make([]float64, d.Q()),
		External:        make([]float64, d.External().NumScalars),
		Dyn:             dyn,
		TakesStatistics: true,
	}
}

// Clone returns a deep copy of the cell, including a clone of its dynamics.
func (c *Cell) Clone() *Cell {
	out := &Cell{
		F:               append([]float64(nil), c.F...),
		External:        append([]float64(nil), c.External...),
		TakesStatistics: c.TakesStatistics,
	}
	if c.Dyn != nil {
		out.Dyn = c.Dyn.Clone()
	}
	return out
}

// SumF returns the full density rho = sum_i F[i].
func (c *Cell) SumF() float64 {
	sum := 0.0
	for _, f := range c.F {
		sum += f
	}
	return sum
}

// GetExternal reads the scalar at offset off.
func (c *Cell) GetExternal(off int) float64 { return c.External[off] }

// SetExternal writes the scalar at offset off.
func (c *Cell) SetExternal(off int, v float64) { c.External[off] = v }
