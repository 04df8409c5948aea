package boundary

import (
	"github.com/san-kum/lbmcore/internal/block"
	"github.com/san-kum/lbmcore/internal/dataproc"
	"github.com/san-kum/lbmcore/internal/geom"
)

// ConstantBodyForce writes a fixed force vector into the external-scalar
// force slot of every cell in domain, every step, driving flows like
// Poiseuille channel or Kolmogorov shear without an explicit pressure
// boundary. Dynamics variants that read the force slot (ForcedEntropic)
// pick it up on their next Collide; ExternalMomentBGK reads only the
// density and momentum slots.
type ConstantBodyForce struct {
	Block  *block.AtomicBlock3D
	Domain geom.Box3D
	Force  []float64
}

func NewConstantBodyForce(b *block.AtomicBlock3D, domain geom.Box3D, force []float64) *ConstantBodyForce {
	return &ConstantBodyForce{Block: b, Domain: domain, Force: append([]float64(nil), force...)}
}

func (p *ConstantBodyForce) Process() error {
	desc := p.Block.Descriptor()
	forceBase := desc.External().ForceBeginsAt
	for x := p.Domain.X0; x <= p.Domain.X1; x++ {
		for y := p.Domain.Y0; y <= p.Domain.Y1; y++ {
			for z := p.Domain.Z0; z <= p.Domain.Z1; z++ {
				c := p.Block.Get(x, y, z)
				for k, fk := range p.Force {
					c.SetExternal(forceBase+k, fk)
				}
			}
		}
	}
	return nil
}

func (p *ConstantBodyForce) Clone() dataproc.DataProcessor3D {
	c := *p
	c.Force = append([]float64(nil), p.Force...)
	return &c
}

func (p *ConstantBodyForce) Extent() int                       { return 0 }
func (p *ConstantBodyForce) ExtentDirection(direction int) int { return 0 }

// NewConstantBodyForceGenerator builds a dataproc.Generator3D that
// resolves to a ConstantBodyForce once Generate is called with a single
// *block.AtomicBlock3D target.
func NewConstantBodyForceGenerator(domain geom.Box3D, force []float64) *dataproc.BoxedGenerator3D {
	g := dataproc.NewBoxedGenerator3D(domain)
	g.NewProcessor = func(d geom.Box3D, blocks []dataproc.Target) (dataproc.DataProcessor3D, error) {
		b, err := singleBlock(blocks, "NewConstantBodyForceGenerator")
		if err != nil {
			return nil, err
		}
		return NewConstantBodyForce(b, d, force), nil
	}
	return g
}
