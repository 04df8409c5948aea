// Package boundary implements the concrete boundary conditions built on
// top of package dataproc: bounce-back walls, a constant-velocity inlet
// using the equilibrium scheme, and a constant body force. Each processor
// can be built directly against a known block (the New* constructors) or
// via a dataproc.Generator3D (the New*Generator constructors), which
// defers binding to a block until AtomicBlock3D.AttachInternalProcessor/
// AttachEnvelopeProcessor calls Generate -- the path multi-block
// scheduling and rescaling both go through.
package boundary

import (
	"github.com/san-kum/lbmcore/internal/block"
	"github.com/san-kum/lbmcore/internal/dataproc"
	"github.com/san-kum/lbmcore/internal/geom"
)

// BounceBack reverses every outgoing population at wall cells in domain,
// implementing a no-slip solid boundary via the full-way bounce-back
// rule: f_i <-> f_opposite(i), applied in place after streaming.
type BounceBack struct {
	Block  *block.AtomicBlock3D
	Domain geom.Box3D
}

// NewBounceBack builds the processor directly, bypassing the
// generator/Generate indirection for the common case of a single static
// block (no multi-block regridding needed).
func NewBounceBack(b *block.AtomicBlock3D, domain geom.Box3D) *BounceBack {
	return &BounceBack{Block: b, Domain: domain}
}

func (p *BounceBack) Process() error {
	desc := p.Block.Descriptor()
	q := desc.Q()
	for x := p.Domain.X0; x <= p.Domain.X1; x++ {
		for y := p.Domain.Y0; y <= p.Domain.Y1; y++ {
			for z := p.Domain.Z0; z <= p.Domain.Z1; z++ {
				c := p.Block.Get(x, y, z)
				for i := 1; i < q; i++ {
					j := desc.Opposite(i)
					if j > i {
						c.F[i], c.F[j] = c.F[j], c.F[i]
					}
				}
			}
		}
	}
	return nil
}

func (p *BounceBack) Clone() dataproc.DataProcessor3D {
	c := *p
	return &c
}

func (p *BounceBack) Extent() int                       { return 0 }
func (p *BounceBack) ExtentDirection(direction int) int { return 0 }

// NewBounceBackGenerator builds a dataproc.Generator3D that resolves to a
// BounceBack processor once Generate is called with a single
// *block.AtomicBlock3D target.
func NewBounceBackGenerator(domain geom.Box3D) *dataproc.BoxedGenerator3D {
	g := dataproc.NewBoxedGenerator3D(domain)
	g.NewProcessor = func(d geom.Box3D, blocks []dataproc.Target) (dataproc.DataProcessor3D, error) {
		b, err := singleBlock(blocks, "NewBounceBackGenerator")
		if err != nil {
			return nil, err
		}
		return NewBounceBack(b, d), nil
	}
	return g
}

// singleBlock extracts the lone *block.AtomicBlock3D a boxed boundary
// generator expects Generate to be called with.
func singleBlock(blocks []dataproc.Target, op string) (*block.AtomicBlock3D, error) {
	if len(blocks) != 1 {
		return nil, &dataproc.PreconditionError{Op: op, Message: "expected exactly one target block"}
	}
	b, ok := blocks[0].(*block.AtomicBlock3D)
	if !ok {
		return nil, &dataproc.PreconditionError{Op: op, Message: "target is not an *block.AtomicBlock3D"}
	}
	return b, nil
}
